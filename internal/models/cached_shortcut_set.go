package models

import "time"

// CachedShortcutSet mirrors a profile's shortcut set in the local cache database.
type CachedShortcutSet struct {
	ProfileID string `gorm:"primaryKey;size:255"`
	Payload   string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
