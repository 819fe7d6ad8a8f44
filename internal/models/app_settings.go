package models

import "time"

// AppSettings remembers where the user left off.
type AppSettings struct {
	ID            uint   `gorm:"primaryKey"` // single-row table (ID=1)
	Version       int    `gorm:"not null;default:1"`
	LastProfileID string `gorm:"size:255;not null;default:default"`
	LastModifier  string `gorm:"size:32;not null;default:plain"`
	UpdatedAt     time.Time
}
