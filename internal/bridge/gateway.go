package bridge

import (
	"context"

	"keyforest/internal/models"
	"keyforest/internal/services"
)

// Gateway implements Operations over the domain services.
type Gateway struct {
	profiles  services.ProfileService
	shortcuts services.ShortcutService
	transfer  services.TransferService
	migration services.MigrationService
}

func NewGateway(
	profiles services.ProfileService,
	shortcuts services.ShortcutService,
	transfer services.TransferService,
	migration services.MigrationService,
) *Gateway {
	return &Gateway{profiles: profiles, shortcuts: shortcuts, transfer: transfer, migration: migration}
}

// NewGatewayFromServices is a convenience over a service container.
func NewGatewayFromServices(s *services.Services) *Gateway {
	return NewGateway(s.Profiles, s.Shortcuts, s.Transfer, s.Migration)
}

func (g *Gateway) SaveShortcuts(ctx context.Context, profileID string, set models.ShortcutSet) error {
	return g.shortcuts.Save(ctx, profileID, set)
}

func (g *Gateway) LoadShortcuts(ctx context.Context, profileID string) (models.ShortcutSet, error) {
	return g.shortcuts.Load(ctx, profileID)
}

func (g *Gateway) GetApps(ctx context.Context) ([]models.Profile, error) {
	return g.profiles.List(ctx)
}

func (g *Gateway) SaveApp(ctx context.Context, p models.Profile) error {
	return g.profiles.Save(ctx, p)
}

func (g *Gateway) DeleteApp(ctx context.Context, profileID string) error {
	return g.profiles.Delete(ctx, profileID)
}

func (g *Gateway) ExportShortcuts(ctx context.Context, doc *models.ExportDocument) (string, error) {
	return g.transfer.Export(ctx, doc)
}

func (g *Gateway) ImportShortcuts(ctx context.Context) (*models.ExportDocument, error) {
	return g.transfer.Import(ctx)
}

func (g *Gateway) MigrateAppsData(ctx context.Context) (services.MigrationResult, error) {
	return g.migration.MigrateLegacyProfiles(ctx)
}

var _ Operations = (*Gateway)(nil)
