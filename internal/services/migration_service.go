package services

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"keyforest/internal/models"
	"keyforest/internal/repositories"
)

const legacyIconField = "icon"

// MigrationResult reports what a migration did.
type MigrationResult struct {
	Changed bool   `json:"changed"`
	Message string `json:"message,omitempty"`
}

type MigrationService interface {
	// MigrateLegacyProfiles strips the deprecated icon field from stored profiles.
	MigrateLegacyProfiles(ctx context.Context) (MigrationResult, error)
	// MigrateLegacyShortcuts moves a top-level shortcut set under the default profile.
	MigrateLegacyShortcuts(ctx context.Context) (MigrationResult, error)
	RunAll(ctx context.Context) error
}

type migrationService struct {
	profiles  repositories.ProfileRepository
	shortcuts repositories.ShortcutRepository
	log       *zap.Logger
}

func NewMigrationService(
	profiles repositories.ProfileRepository,
	shortcuts repositories.ShortcutRepository,
	log *zap.Logger,
) MigrationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &migrationService{profiles: profiles, shortcuts: shortcuts, log: log}
}

func (s *migrationService) MigrateLegacyProfiles(ctx context.Context) (MigrationResult, error) {
	docs, found, err := s.profiles.RawList(ctx)
	if err != nil {
		return MigrationResult{}, err
	}
	if !found {
		return MigrationResult{Message: "No apps file to migrate"}, nil
	}

	changed := false
	for _, doc := range docs {
		if _, ok := doc[legacyIconField]; ok {
			delete(doc, legacyIconField)
			changed = true
		}
	}
	if !changed {
		return MigrationResult{}, nil
	}

	if err := s.profiles.ReplaceRaw(ctx, docs); err != nil {
		return MigrationResult{}, err
	}
	s.log.Info("removed legacy icon field from profiles", zap.Int("profiles", len(docs)))
	return MigrationResult{Changed: true, Message: "Removed legacy profile icons"}, nil
}

func (s *migrationService) MigrateLegacyShortcuts(ctx context.Context) (MigrationResult, error) {
	doc, found, err := s.shortcuts.All(ctx)
	if err != nil {
		return MigrationResult{}, err
	}
	if !found || len(doc) == 0 || !isLegacyShortcutDocument(doc) {
		return MigrationResult{}, nil
	}

	var set models.ShortcutSet
	raw, err := json.Marshal(doc)
	if err != nil {
		return MigrationResult{}, err
	}
	if err := json.Unmarshal(raw, &set); err != nil {
		return MigrationResult{}, fmt.Errorf("decoding legacy shortcuts: %w", err)
	}
	set.Normalize()

	wrapped, err := json.Marshal(set)
	if err != nil {
		return MigrationResult{}, err
	}
	if err := s.shortcuts.ReplaceAll(ctx, repositories.ShortcutDocument{models.DefaultProfileID: wrapped}); err != nil {
		return MigrationResult{}, err
	}
	s.log.Info("moved legacy shortcut set under the default profile", zap.Int("shortcuts", set.Count()))
	return MigrationResult{Changed: true, Message: "Moved legacy shortcuts to the default profile"}, nil
}

// isLegacyShortcutDocument reports whether every top-level key is a modifier
// name, which only the single-profile format produced.
func isLegacyShortcutDocument(doc repositories.ShortcutDocument) bool {
	for key := range doc {
		if !models.Modifier(key).Valid() {
			return false
		}
	}
	return true
}

func (s *migrationService) RunAll(ctx context.Context) error {
	if _, err := s.MigrateLegacyShortcuts(ctx); err != nil {
		return fmt.Errorf("migrating shortcuts: %w", err)
	}
	if _, err := s.MigrateLegacyProfiles(ctx); err != nil {
		return fmt.Errorf("migrating profiles: %w", err)
	}
	return nil
}
