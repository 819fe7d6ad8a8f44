package bridge

import (
	"context"
	"errors"

	"keyforest/internal/models"
	"keyforest/internal/services"
)

// Operations is the complete set of privileged calls the user interface may make.
type Operations interface {
	SaveShortcuts(ctx context.Context, profileID string, set models.ShortcutSet) error
	LoadShortcuts(ctx context.Context, profileID string) (models.ShortcutSet, error)
	GetApps(ctx context.Context) ([]models.Profile, error)
	SaveApp(ctx context.Context, p models.Profile) error
	DeleteApp(ctx context.Context, profileID string) error
	ExportShortcuts(ctx context.Context, doc *models.ExportDocument) (string, error)
	ImportShortcuts(ctx context.Context) (*models.ExportDocument, error)
	MigrateAppsData(ctx context.Context) (services.MigrationResult, error)
}

// ErrorMessage turns an operation error into the text shown to the user.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, services.ErrExportCanceled):
		return "Export canceled"
	case errors.Is(err, services.ErrImportCanceled):
		return "Import canceled"
	case errors.Is(err, services.ErrInvalidImport):
		return "Invalid import file format"
	case errors.Is(err, services.ErrInvalidExport):
		return "Invalid export data"
	case errors.Is(err, services.ErrDefaultProfile):
		return "Cannot delete the default app"
	case errors.Is(err, services.ErrNoProfilesFile):
		return "No apps file found"
	case errors.Is(err, services.ErrInvalidProfile):
		return "Invalid app data"
	case errors.Is(err, services.ErrInvalidShortcuts):
		return "Invalid shortcut data"
	default:
		return err.Error()
	}
}

// IsCanceled reports whether err is a user canceling a dialog.
func IsCanceled(err error) bool {
	return errors.Is(err, services.ErrCanceled)
}
