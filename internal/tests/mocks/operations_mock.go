package mocks

import (
	"context"

	"keyforest/internal/models"
	"keyforest/internal/services"
)

type OperationsMock struct {
	SaveShortcutsFunc   func(ctx context.Context, profileID string, set models.ShortcutSet) error
	LoadShortcutsFunc   func(ctx context.Context, profileID string) (models.ShortcutSet, error)
	GetAppsFunc         func(ctx context.Context) ([]models.Profile, error)
	SaveAppFunc         func(ctx context.Context, p models.Profile) error
	DeleteAppFunc       func(ctx context.Context, profileID string) error
	ExportShortcutsFunc func(ctx context.Context, doc *models.ExportDocument) (string, error)
	ImportShortcutsFunc func(ctx context.Context) (*models.ExportDocument, error)
	MigrateAppsDataFunc func(ctx context.Context) (services.MigrationResult, error)
}

func (m *OperationsMock) SaveShortcuts(ctx context.Context, profileID string, set models.ShortcutSet) error {
	if m.SaveShortcutsFunc != nil {
		return m.SaveShortcutsFunc(ctx, profileID, set)
	}
	return nil
}

func (m *OperationsMock) LoadShortcuts(ctx context.Context, profileID string) (models.ShortcutSet, error) {
	if m.LoadShortcutsFunc != nil {
		return m.LoadShortcutsFunc(ctx, profileID)
	}
	return models.NewShortcutSet(), nil
}

func (m *OperationsMock) GetApps(ctx context.Context) ([]models.Profile, error) {
	if m.GetAppsFunc != nil {
		return m.GetAppsFunc(ctx)
	}
	return []models.Profile{models.DefaultProfile()}, nil
}

func (m *OperationsMock) SaveApp(ctx context.Context, p models.Profile) error {
	if m.SaveAppFunc != nil {
		return m.SaveAppFunc(ctx, p)
	}
	return nil
}

func (m *OperationsMock) DeleteApp(ctx context.Context, profileID string) error {
	if m.DeleteAppFunc != nil {
		return m.DeleteAppFunc(ctx, profileID)
	}
	return nil
}

func (m *OperationsMock) ExportShortcuts(ctx context.Context, doc *models.ExportDocument) (string, error) {
	if m.ExportShortcutsFunc != nil {
		return m.ExportShortcutsFunc(ctx, doc)
	}
	return "", nil
}

func (m *OperationsMock) ImportShortcuts(ctx context.Context) (*models.ExportDocument, error) {
	if m.ImportShortcutsFunc != nil {
		return m.ImportShortcutsFunc(ctx)
	}
	return nil, services.ErrImportCanceled
}

func (m *OperationsMock) MigrateAppsData(ctx context.Context) (services.MigrationResult, error) {
	if m.MigrateAppsDataFunc != nil {
		return m.MigrateAppsDataFunc(ctx)
	}
	return services.MigrationResult{}, nil
}
