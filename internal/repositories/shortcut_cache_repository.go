package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"keyforest/internal/models"
)

// ShortcutCacheRepository mirrors each profile's shortcut set in sqlite.
type ShortcutCacheRepository interface {
	// Get returns nil with no error when nothing is cached for profileID.
	Get(ctx context.Context, profileID string) (*models.CachedShortcutSet, error)
	Put(ctx context.Context, entry *models.CachedShortcutSet) error
	Delete(ctx context.Context, profileID string) error
}

type shortcutCacheRepository struct {
	db *gorm.DB
}

func NewShortcutCacheRepository(db *gorm.DB) ShortcutCacheRepository {
	return &shortcutCacheRepository{db: db}
}

func (r *shortcutCacheRepository) Get(ctx context.Context, profileID string) (*models.CachedShortcutSet, error) {
	var entry models.CachedShortcutSet
	err := r.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *shortcutCacheRepository) Put(ctx context.Context, entry *models.CachedShortcutSet) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(entry).Error
}

func (r *shortcutCacheRepository) Delete(ctx context.Context, profileID string) error {
	return r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Delete(&models.CachedShortcutSet{}).Error
}
