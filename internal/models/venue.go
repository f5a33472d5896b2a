package models

import "gorm.io/gorm"

// Venue is the directory row the identity payloads are built from.
// The directory itself (CRUD, reviews, curation) lives in the main
// application; this service only reads it.
type Venue struct {
	gorm.Model
	Slug          string `gorm:"uniqueIndex;not null"`
	Name          string `gorm:"not null"`
	City          string
	Address       string
	Description   string
	HasPiano      bool `gorm:"not null;default:false"`
	PianoVerified bool `gorm:"not null;default:false"`
	ContactEmail  string
	Website       string
	Instagram     string
	WalletAddress string `gorm:"index"`
}
