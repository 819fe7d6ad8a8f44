package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"keyforest/internal/models"
)

type AppSettingsRepository interface {
	Get(ctx context.Context) (*models.AppSettings, error)
	Update(ctx context.Context, settings *models.AppSettings) error
}

type appSettingsRepository struct {
	db *gorm.DB
}

func NewAppSettingsRepository(db *gorm.DB) AppSettingsRepository {
	return &appSettingsRepository{db: db}
}

func (r *appSettingsRepository) Get(ctx context.Context) (*models.AppSettings, error) {
	var settings models.AppSettings
	if err := r.db.WithContext(ctx).First(&settings, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.AppSettings{
				ID:            1,
				Version:       1,
				LastProfileID: models.DefaultProfileID,
				LastModifier:  string(models.ModifierPlain),
			}, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *appSettingsRepository) Update(ctx context.Context, settings *models.AppSettings) error {
	// single-row table
	settings.ID = 1
	return r.db.WithContext(ctx).Save(settings).Error
}
