package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pianostyle/internal/models"
)

// ErrNotFound is returned when a directory lookup matches nothing.
var ErrNotFound = errors.New("record not found")

// VenueRepository reads venue rows for payload generation.
type VenueRepository interface {
	GetBySlug(ctx context.Context, slug string) (*models.Venue, error)
}

// ProfileRepository reads user profile rows for payload generation.
type ProfileRepository interface {
	GetByWallet(ctx context.Context, address string) (*models.Profile, error)
}

type venueRepository struct {
	db *gorm.DB
}

// NewVenueRepository creates a venue directory reader.
func NewVenueRepository(db *gorm.DB) VenueRepository {
	if db == nil {
		panic("db is required")
	}
	return &venueRepository{db: db}
}

func (r *venueRepository) GetBySlug(ctx context.Context, slug string) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&venue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query venue: %w", err)
	}
	return &venue, nil
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a profile directory reader.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	if db == nil {
		panic("db is required")
	}
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByWallet(ctx context.Context, address string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Where("lower(wallet_address) = lower(?)", address).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return &profile, nil
}
