package services

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"keyforest/internal/repositories"
)

// Paths locates the JSON store on disk.
type Paths struct {
	Profiles  string
	Shortcuts string
	Backups   string
}

// Services aggregates the domain services over one data directory.
type Services struct {
	Profiles  ProfileService
	Shortcuts ShortcutService
	Cache     CacheService
	Transfer  TransferService
	Migration MigrationService
	Settings  AppSettingsService
	Backups   BackupService
}

// NewServices constructs the service container. dialogs may be nil for
// headless callers.
func NewServices(db *gorm.DB, paths Paths, dialogs Dialogs, log *zap.Logger) *Services {
	if log == nil {
		log = zap.NewNop()
	}

	profileRepo := repositories.NewProfileRepository(paths.Profiles)
	shortcutRepo := repositories.NewShortcutRepository(paths.Shortcuts, log.Named("store"))
	cacheRepo := repositories.NewShortcutCacheRepository(db)
	settingsRepo := repositories.NewAppSettingsRepository(db)

	cache := NewCacheService(cacheRepo, log.Named("cache"))
	transfer := NewTransferService(dialogs, log.Named("transfer"))

	return &Services{
		Profiles:  NewProfileService(profileRepo, shortcutRepo, cache, log.Named("profiles")),
		Shortcuts: NewShortcutService(shortcutRepo),
		Cache:     cache,
		Transfer:  transfer,
		Migration: NewMigrationService(profileRepo, shortcutRepo, log.Named("migration")),
		Settings:  NewAppSettingsService(settingsRepo),
		Backups:   NewBackupService(paths.Backups, transfer, log.Named("backups")),
	}
}
