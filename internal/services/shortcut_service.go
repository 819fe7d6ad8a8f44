package services

import (
	"context"
	"strings"

	"keyforest/internal/models"
	"keyforest/internal/repositories"
)

type ShortcutService interface {
	Load(ctx context.Context, profileID string) (models.ShortcutSet, error)
	Save(ctx context.Context, profileID string, set models.ShortcutSet) error
	SetAction(ctx context.Context, profileID string, m models.Modifier, key, label string) (models.ShortcutSet, error)
	ClearAction(ctx context.Context, profileID string, m models.Modifier, key string) (models.ShortcutSet, error)
}

type shortcutService struct {
	shortcuts repositories.ShortcutRepository
}

func NewShortcutService(shortcuts repositories.ShortcutRepository) ShortcutService {
	return &shortcutService{shortcuts: shortcuts}
}

// Load returns the profile's set with all six categories present. A profile
// without stored shortcuts gets an empty set.
func (s *shortcutService) Load(ctx context.Context, profileID string) (models.ShortcutSet, error) {
	set, found, err := s.shortcuts.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !found {
		return models.NewShortcutSet(), nil
	}
	set.Normalize()
	return set, nil
}

func (s *shortcutService) Save(ctx context.Context, profileID string, set models.ShortcutSet) error {
	if strings.TrimSpace(profileID) == "" {
		return ErrInvalidProfile
	}
	if set == nil {
		return ErrInvalidShortcuts
	}
	set.Normalize()
	return s.shortcuts.Put(ctx, profileID, set)
}

func (s *shortcutService) SetAction(ctx context.Context, profileID string, m models.Modifier, key, label string) (models.ShortcutSet, error) {
	if !m.Valid() || strings.TrimSpace(key) == "" {
		return nil, ErrInvalidShortcuts
	}
	set, err := s.Load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	set.Set(m, key, label)
	if err := s.Save(ctx, profileID, set); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *shortcutService) ClearAction(ctx context.Context, profileID string, m models.Modifier, key string) (models.ShortcutSet, error) {
	return s.SetAction(ctx, profileID, m, key, "")
}
