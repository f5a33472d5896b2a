package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Profile is a user profile row keyed by wallet address.
type Profile struct {
	gorm.Model
	WalletAddress    string `gorm:"uniqueIndex;not null"`
	Username         string `gorm:"index"`
	DisplayName      string
	Bio              string
	Title            string
	Location         string
	PointsEarned     int64          `gorm:"not null;default:0"`
	VenuesDiscovered int            `gorm:"not null;default:0"`
	ReviewCount      int            `gorm:"not null;default:0"`
	Badges           pq.StringArray `gorm:"type:text[]"`
	Skills           pq.StringArray `gorm:"type:text[]"`
	Twitter          string
	Instagram        string
}
