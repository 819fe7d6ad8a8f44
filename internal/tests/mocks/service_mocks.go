package mocks

import (
	"context"

	"keyforest/internal/events"
	"keyforest/internal/models"
	"keyforest/internal/services"
)

type CacheServiceMock struct {
	LoadFunc   func(ctx context.Context, profileID string) (models.ShortcutSet, bool)
	StoreFunc  func(ctx context.Context, profileID string, set models.ShortcutSet) error
	ForgetFunc func(ctx context.Context, profileID string) error
}

func (m *CacheServiceMock) Load(ctx context.Context, profileID string) (models.ShortcutSet, bool) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, profileID)
	}
	return nil, false
}

func (m *CacheServiceMock) Store(ctx context.Context, profileID string, set models.ShortcutSet) error {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, profileID, set)
	}
	return nil
}

func (m *CacheServiceMock) Forget(ctx context.Context, profileID string) error {
	if m.ForgetFunc != nil {
		return m.ForgetFunc(ctx, profileID)
	}
	return nil
}

type AppSettingsServiceMock struct {
	GetFunc      func(ctx context.Context) (*models.AppSettings, error)
	RememberFunc func(ctx context.Context, profileID string, modifier models.Modifier) (*models.AppSettings, error)
}

func (m *AppSettingsServiceMock) Get(ctx context.Context) (*models.AppSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return &models.AppSettings{ID: 1, LastProfileID: models.DefaultProfileID, LastModifier: string(models.ModifierPlain)}, nil
}

func (m *AppSettingsServiceMock) Remember(ctx context.Context, profileID string, modifier models.Modifier) (*models.AppSettings, error) {
	if m.RememberFunc != nil {
		return m.RememberFunc(ctx, profileID, modifier)
	}
	return &models.AppSettings{ID: 1, LastProfileID: profileID, LastModifier: string(modifier)}, nil
}

type BackupServiceMock struct {
	SnapshotFunc func(ctx context.Context, p models.Profile, set models.ShortcutSet) (services.Backup, error)
	ListFunc     func(ctx context.Context, profileID string) ([]services.Backup, error)
}

func (m *BackupServiceMock) Snapshot(ctx context.Context, p models.Profile, set models.ShortcutSet) (services.Backup, error) {
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc(ctx, p, set)
	}
	return services.Backup{ProfileID: p.ID}, nil
}

func (m *BackupServiceMock) List(ctx context.Context, profileID string) ([]services.Backup, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, profileID)
	}
	return []services.Backup{}, nil
}

type MigrationServiceMock struct {
	MigrateLegacyProfilesFunc  func(ctx context.Context) (services.MigrationResult, error)
	MigrateLegacyShortcutsFunc func(ctx context.Context) (services.MigrationResult, error)
	RunAllFunc                 func(ctx context.Context) error
}

func (m *MigrationServiceMock) MigrateLegacyProfiles(ctx context.Context) (services.MigrationResult, error) {
	if m.MigrateLegacyProfilesFunc != nil {
		return m.MigrateLegacyProfilesFunc(ctx)
	}
	return services.MigrationResult{}, nil
}

func (m *MigrationServiceMock) MigrateLegacyShortcuts(ctx context.Context) (services.MigrationResult, error) {
	if m.MigrateLegacyShortcutsFunc != nil {
		return m.MigrateLegacyShortcutsFunc(ctx)
	}
	return services.MigrationResult{}, nil
}

func (m *MigrationServiceMock) RunAll(ctx context.Context) error {
	if m.RunAllFunc != nil {
		return m.RunAllFunc(ctx)
	}
	return nil
}

// NotifierMock keeps the events it was asked to publish.
type NotifierMock struct {
	Statuses []events.Status
	Changes  []string
}

func (m *NotifierMock) Status(status events.Status) error {
	m.Statuses = append(m.Statuses, status)
	return nil
}

func (m *NotifierMock) StoreChanged(file string) error {
	m.Changes = append(m.Changes, file)
	return nil
}
