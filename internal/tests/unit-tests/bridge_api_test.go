package unit_tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyforest/internal/bridge"
	"keyforest/internal/models"
	"keyforest/internal/services"
	"keyforest/internal/tests/mocks"
)

func TestAPI_LoadShortcuts_Success(t *testing.T) {
	set := models.NewShortcutSet()
	set.Set(models.ModifierCtrl, "c", "Copy")
	api := bridge.NewAPI(&mocks.OperationsMock{
		LoadShortcutsFunc: func(ctx context.Context, profileID string) (models.ShortcutSet, error) {
			assert.Equal(t, "default", profileID)
			return set, nil
		},
	}, nil)

	resp := api.LoadShortcuts("default")
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)
	assert.Equal(t, set, resp.Data)
}

func TestAPI_ErrorsBecomeMessages(t *testing.T) {
	ops := &mocks.OperationsMock{
		DeleteAppFunc: func(ctx context.Context, profileID string) error {
			return services.ErrDefaultProfile
		},
		SaveAppFunc: func(ctx context.Context, p models.Profile) error {
			return services.ErrInvalidProfile
		},
		ExportShortcutsFunc: func(ctx context.Context, doc *models.ExportDocument) (string, error) {
			return "", services.ErrExportCanceled
		},
		ImportShortcutsFunc: func(ctx context.Context) (*models.ExportDocument, error) {
			return nil, errors.Join(services.ErrInvalidImport, errors.New("missing appId"))
		},
		SaveShortcutsFunc: func(ctx context.Context, profileID string, set models.ShortcutSet) error {
			return errors.New("disk full")
		},
	}
	api := bridge.NewAPI(ops, nil)

	cases := []struct {
		name string
		resp bridge.Response
		want string
	}{
		{"delete-app", api.DeleteApp("default"), "Cannot delete the default app"},
		{"save-app", api.SaveApp(models.Profile{}), "Invalid app data"},
		{"export", api.ExportShortcuts(models.ExportDocument{}), "Export canceled"},
		{"import", api.ImportShortcuts(), "Invalid import file format"},
		{"save-shortcuts", api.SaveShortcuts("default", nil), "disk full"},
	}
	for _, tc := range cases {
		assert.False(t, tc.resp.Success, tc.name)
		assert.Equal(t, tc.want, tc.resp.Error, tc.name)
		assert.Nil(t, tc.resp.Data, tc.name)
	}
}

func TestAPI_RecoversFromPanics(t *testing.T) {
	api := bridge.NewAPI(&mocks.OperationsMock{
		GetAppsFunc: func(ctx context.Context) ([]models.Profile, error) {
			panic("boom")
		},
	}, nil)

	resp := api.GetApps()
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "boom")
}

func TestAPI_MigrateAppsData_CarriesMessage(t *testing.T) {
	api := bridge.NewAPI(&mocks.OperationsMock{
		MigrateAppsDataFunc: func(ctx context.Context) (services.MigrationResult, error) {
			return services.MigrationResult{Message: "No apps file to migrate"}, nil
		},
	}, nil)

	resp := api.MigrateAppsData()
	require.True(t, resp.Success)
	assert.Equal(t, "No apps file to migrate", resp.Message)
}

func TestGateway_DelegatesToServices(t *testing.T) {
	profiles := services.NewProfileService(&mocks.ProfileRepositoryMock{}, &mocks.ShortcutRepositoryMock{}, nil, nil)
	shortcuts := services.NewShortcutService(&mocks.ShortcutRepositoryMock{})
	transfer := services.NewTransferService(&mocks.DialogsMock{}, nil)
	migration := services.NewMigrationService(&mocks.ProfileRepositoryMock{}, &mocks.ShortcutRepositoryMock{}, nil)
	gateway := bridge.NewGateway(profiles, shortcuts, transfer, migration)
	ctx := context.Background()

	list, err := gateway.GetApps(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Profile{models.DefaultProfile()}, list)

	set, err := gateway.LoadShortcuts(ctx, "default")
	require.NoError(t, err)
	assert.Len(t, set, 6)

	assert.ErrorIs(t, gateway.DeleteApp(ctx, "default"), services.ErrDefaultProfile)

	_, err = gateway.ImportShortcuts(ctx)
	assert.True(t, bridge.IsCanceled(err))

	res, err := gateway.MigrateAppsData(ctx)
	require.NoError(t, err)
	assert.Equal(t, "No apps file to migrate", res.Message)
}
