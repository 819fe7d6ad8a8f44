package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"keyforest/internal/models"
	"keyforest/internal/repositories"
)

type ProfileService interface {
	List(ctx context.Context) ([]models.Profile, error)
	Get(ctx context.Context, id string) (models.Profile, error)
	Save(ctx context.Context, p models.Profile) error
	Create(ctx context.Context, name string) (models.Profile, error)
	Rename(ctx context.Context, id, name string) (models.Profile, error)
	Delete(ctx context.Context, id string) error
}

type profileService struct {
	profiles  repositories.ProfileRepository
	shortcuts repositories.ShortcutRepository
	cache     CacheService
	log       *zap.Logger
}

// NewProfileService wires the profile store. cache may be nil.
func NewProfileService(
	profiles repositories.ProfileRepository,
	shortcuts repositories.ShortcutRepository,
	cache CacheService,
	log *zap.Logger,
) ProfileService {
	if log == nil {
		log = zap.NewNop()
	}
	return &profileService{profiles: profiles, shortcuts: shortcuts, cache: cache, log: log}
}

// List returns the stored profiles, seeding the default profile on first use.
func (s *profileService) List(ctx context.Context) ([]models.Profile, error) {
	list, found, err := s.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		return list, nil
	}

	seeded := []models.Profile{models.DefaultProfile()}
	if err := s.profiles.SaveAll(ctx, seeded); err != nil {
		return nil, fmt.Errorf("seeding default profile: %w", err)
	}
	s.log.Info("seeded default profile")
	return seeded, nil
}

func (s *profileService) Get(ctx context.Context, id string) (models.Profile, error) {
	list, err := s.List(ctx)
	if err != nil {
		return models.Profile{}, err
	}
	p, ok := models.FindProfile(list, id)
	if !ok {
		return models.Profile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, id)
	}
	return p, nil
}

func (s *profileService) Save(ctx context.Context, p models.Profile) error {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	if !p.Valid() {
		return ErrInvalidProfile
	}
	// Make sure the default profile exists before the first custom one is appended.
	if _, err := s.List(ctx); err != nil {
		return err
	}
	return s.profiles.Save(ctx, p)
}

func (s *profileService) Create(ctx context.Context, name string) (models.Profile, error) {
	p := models.Profile{ID: "app_" + uuid.NewString(), Name: strings.TrimSpace(name)}
	if err := s.Save(ctx, p); err != nil {
		return models.Profile{}, err
	}
	s.log.Info("profile created", zap.String("profile", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (s *profileService) Rename(ctx context.Context, id, name string) (models.Profile, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return models.Profile{}, err
	}
	p.Name = strings.TrimSpace(name)
	if err := s.Save(ctx, p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// Delete removes the profile, then its shortcut set, then its cache entry.
func (s *profileService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProfile
	}
	if id == models.DefaultProfileID {
		return ErrDefaultProfile
	}

	if err := s.profiles.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNoProfilesFile
		}
		return err
	}
	if err := s.shortcuts.Delete(ctx, id); err != nil {
		return fmt.Errorf("removing shortcuts for %q: %w", id, err)
	}
	if s.cache != nil {
		if err := s.cache.Forget(ctx, id); err != nil {
			s.log.Warn("failed to drop cached shortcuts", zap.String("profile", id), zap.Error(err))
		}
	}
	s.log.Info("profile deleted", zap.String("profile", id))
	return nil
}
