package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"keyforest/internal/models"
	"keyforest/internal/repositories"
)

type AppSettingsService interface {
	Get(ctx context.Context) (*models.AppSettings, error)
	Remember(ctx context.Context, profileID string, modifier models.Modifier) (*models.AppSettings, error)
}

type appSettingsService struct {
	appSettings repositories.AppSettingsRepository
	now         func() time.Time
}

func NewAppSettingsService(appSettings repositories.AppSettingsRepository) AppSettingsService {
	return &appSettingsService{appSettings: appSettings, now: time.Now}
}

func (s *appSettingsService) Get(ctx context.Context) (*models.AppSettings, error) {
	return s.appSettings.Get(ctx)
}

// Remember stores the view the user was on so the next start restores it.
func (s *appSettingsService) Remember(ctx context.Context, profileID string, modifier models.Modifier) (*models.AppSettings, error) {
	if strings.TrimSpace(profileID) == "" {
		return nil, errors.New("profile id is required")
	}
	if !modifier.Valid() {
		return nil, errors.New("modifier must be one of plain, ctrl, alt, ctrl_shift, ctrl_alt, ctrl_alt_shift")
	}

	current, err := s.appSettings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if current.LastProfileID == profileID && current.LastModifier == string(modifier) {
		return current, nil
	}

	current.LastProfileID = profileID
	current.LastModifier = string(modifier)
	current.UpdatedAt = s.now()

	if err := s.appSettings.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}
