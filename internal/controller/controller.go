package controller

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"keyforest/internal/bridge"
	"keyforest/internal/events"
	"keyforest/internal/keyboard"
	"keyforest/internal/models"
	"keyforest/internal/services"
)

// cycleOrder is the Alt+M rotation.
var cycleOrder = []models.Modifier{
	models.ModifierPlain,
	models.ModifierCtrl,
	models.ModifierAlt,
	models.ModifierCtrlAlt,
	models.ModifierCtrlShift,
	models.ModifierCtrlAltShift,
}

// Dependencies are the collaborators of a Controller. Only Ops is required.
type Dependencies struct {
	Ops       bridge.Operations
	Cache     services.CacheService
	Settings  services.AppSettingsService
	Backups   services.BackupService
	Migration services.MigrationService
	Dialogs   services.Dialogs
	Notifier  services.Notifier
	Logger    *zap.Logger
}

// Controller owns the state of the editor window: the active profile, the
// active modifier and the shortcut set being edited. It is bound to the
// webview and every method is safe for concurrent use.
type Controller struct {
	mu sync.Mutex

	ops       bridge.Operations
	cache     services.CacheService
	settings  services.AppSettingsService
	backups   services.BackupService
	migration services.MigrationService
	dialogs   services.Dialogs
	notifier  services.Notifier
	log       *zap.Logger
	now       func() time.Time

	context   context.Context
	profiles  []models.Profile
	profileID string
	modifier  models.Modifier
	shortcuts models.ShortcutSet
}

func New(deps Dependencies) *Controller {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		ops:       deps.Ops,
		cache:     deps.Cache,
		settings:  deps.Settings,
		backups:   deps.Backups,
		migration: deps.Migration,
		dialogs:   deps.Dialogs,
		notifier:  deps.Notifier,
		log:       log,
		now:       time.Now,
		context:   context.Background(),
		profiles:  []models.Profile{models.DefaultProfile()},
		profileID: models.DefaultProfileID,
		modifier:  models.ModifierPlain,
		shortcuts: models.NewShortcutSet(),
	}
}

func (c *Controller) Startup(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.context = ctx
}

// Start migrates old data, loads the profiles and restores the last view.
func (c *Controller) Start() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx := c.context
	if c.migration != nil {
		if _, err := c.migration.MigrateLegacyShortcuts(ctx); err != nil {
			c.log.Error("legacy shortcut migration failed", zap.Error(err))
		}
	}
	if res, err := c.ops.MigrateAppsData(ctx); err != nil {
		c.log.Error("profile migration failed", zap.Error(err))
	} else if res.Message != "" {
		c.log.Debug(res.Message)
	}

	c.loadProfiles()
	c.profileID = models.DefaultProfileID
	c.modifier = models.ModifierPlain

	if c.settings != nil {
		if saved, err := c.settings.Get(ctx); err != nil {
			c.log.Warn("reading app settings", zap.Error(err))
		} else {
			if _, ok := models.FindProfile(c.profiles, saved.LastProfileID); ok {
				c.profileID = saved.LastProfileID
			}
			if m, err := models.ParseModifier(saved.LastModifier); err == nil {
				c.modifier = m
			}
		}
	}

	c.loadShortcuts(false)
	c.log.Info("editor started",
		zap.String("profile", c.profileID),
		zap.String("modifier", c.modifier.String()),
		zap.Int("profiles", len(c.profiles)))
	return c.view(nil)
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view(nil)
}

// SwitchModifier selects a modifier view. Unknown names select plain, and
// selecting the active non-plain modifier again returns to plain.
func (c *Controller) SwitchModifier(name string) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, err := models.ParseModifier(name)
	if err != nil {
		c.log.Warn("unknown modifier, using plain", zap.String("modifier", name))
		m = models.ModifierPlain
	}
	if m == c.modifier && m != models.ModifierPlain {
		m = models.ModifierPlain
	}
	c.setModifier(m)
	return c.view(nil)
}

// CycleModifier moves to the next modifier in the Alt+M rotation.
func (c *Controller) CycleModifier() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := cycleOrder[0]
	for i, m := range cycleOrder {
		if m == c.modifier {
			next = cycleOrder[(i+1)%len(cycleOrder)]
			break
		}
	}
	c.setModifier(next)
	return c.view(nil)
}

func (c *Controller) setModifier(m models.Modifier) {
	c.modifier = m
	c.remember()
}

// OpenKey returns the editor contents for key under the active modifier.
func (c *Controller) OpenKey(key string) (EditDialog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !keyboard.Has(key) {
		return EditDialog{}, fmt.Errorf("unknown key %q", key)
	}
	return EditDialog{
		Key:   key,
		Title: c.modifier.Prefix() + keyboard.DisplayLabel(key),
		Value: c.shortcuts.Get(c.modifier, key),
	}, nil
}

// SaveAction assigns text to key under the active modifier. Blank text
// removes the assignment.
func (c *Controller) SaveAction(key, text string) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !keyboard.Has(key) {
		c.log.Warn("ignoring action for unknown key", zap.String("key", key))
		return c.view(nil)
	}
	c.shortcuts.Set(c.modifier, key, text)
	c.persist()
	return c.view(nil)
}

func (c *Controller) ClearAction(key string) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.shortcuts.Clear(c.modifier, key)
	c.persist()
	return c.view(nil)
}

func (c *Controller) SelectProfile(id string) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := models.FindProfile(c.profiles, id); !ok {
		c.log.Warn("ignoring unknown profile", zap.String("profile", id))
		return c.view(nil)
	}
	c.profileID = id
	c.loadShortcuts(false)
	c.remember()
	return c.view(nil)
}

// AddProfile creates a profile and makes it active.
func (c *Controller) AddProfile(name string) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		c.alert("Please enter an application name")
		return c.view(nil)
	}

	p := models.Profile{ID: "app_" + uuid.NewString(), Name: name}
	if err := c.ops.SaveApp(c.context, p); err != nil {
		c.log.Error("saving profile", zap.Error(err))
		c.fail("Error saving app: " + bridge.ErrorMessage(err))
		return c.view(nil)
	}

	c.loadProfiles()
	c.profileID = p.ID
	c.loadShortcuts(false)
	c.remember()
	return c.view(c.status(events.NewSuccess(fmt.Sprintf("Added \"%s\"", name))))
}

// RenameProfile renames the active profile. The default profile is fixed.
func (c *Controller) RenameProfile(name string) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.profileID == models.DefaultProfileID {
		c.alert("Cannot edit the default application")
		return c.view(nil)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		c.alert("Please enter an application name")
		return c.view(nil)
	}

	if err := c.ops.SaveApp(c.context, models.Profile{ID: c.profileID, Name: name}); err != nil {
		c.log.Error("renaming profile", zap.Error(err))
		c.fail("Error saving app: " + bridge.ErrorMessage(err))
		return c.view(nil)
	}
	c.loadProfiles()
	return c.view(nil)
}

// DeleteProfile removes the active profile after confirmation and returns
// to the default profile.
func (c *Controller) DeleteProfile() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.profileID == models.DefaultProfileID {
		c.alert("Cannot delete the default application")
		return c.view(nil)
	}

	name := c.activeProfile().Name
	question := fmt.Sprintf("Are you sure you want to delete \"%s\"? This will permanently delete all shortcuts for this application.", name)
	if !c.confirm("Delete Application", question) {
		return c.view(nil)
	}

	if err := c.ops.DeleteApp(c.context, c.profileID); err != nil {
		c.log.Error("deleting profile", zap.String("profile", c.profileID), zap.Error(err))
		c.fail("Error deleting app: " + bridge.ErrorMessage(err))
		return c.view(nil)
	}

	c.profileID = models.DefaultProfileID
	c.loadProfiles()
	c.loadShortcuts(false)
	c.remember()
	return c.view(c.status(events.NewSuccess(fmt.Sprintf("Deleted \"%s\"", name))))
}

// Export writes the active profile's shortcuts to a file the user picks.
func (c *Controller) Export() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.activeProfile()
	if strings.TrimSpace(p.Name) == "" {
		p.Name = models.DefaultProfileName
	}
	doc := models.NewExportDocument(p, c.shortcuts.Clone(), c.now())

	path, err := c.ops.ExportShortcuts(c.context, doc)
	if err != nil {
		if bridge.IsCanceled(err) {
			return c.view(c.status(events.NewInfo(bridge.ErrorMessage(err))))
		}
		c.log.Error("exporting shortcuts", zap.Error(err))
		c.fail("Error exporting shortcuts: " + bridge.ErrorMessage(err))
		return c.view(nil)
	}

	c.info("Export Shortcuts", "Shortcuts exported successfully to "+path)
	return c.view(c.status(events.NewSuccess("Exported to " + path)))
}

// Import replaces the active profile's shortcuts with the content of a file
// the user picks, after confirmation. The previous set is backed up first.
func (c *Controller) Import() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, err := c.ops.ImportShortcuts(c.context)
	if err != nil {
		if bridge.IsCanceled(err) {
			return c.view(c.status(events.NewInfo(bridge.ErrorMessage(err))))
		}
		c.log.Error("importing shortcuts", zap.Error(err))
		c.fail("Error importing shortcuts: " + bridge.ErrorMessage(err))
		return c.view(nil)
	}

	question := fmt.Sprintf("Import shortcuts from \"%s\"? This will replace your current shortcuts for the selected application.", doc.AppName)
	if !c.confirm("Import Shortcuts", question) {
		return c.view(nil)
	}

	if c.backups != nil {
		if _, err := c.backups.Snapshot(c.context, c.activeProfile(), c.shortcuts.Clone()); err != nil {
			c.log.Warn("backing up shortcuts before import", zap.Error(err))
		}
	}

	imported := doc.Shortcuts.Clone()
	imported.Normalize()
	c.shortcuts = imported
	c.persist()

	c.info("Import Shortcuts", "Shortcuts imported successfully")
	return c.view(c.status(events.NewSuccess(fmt.Sprintf("Imported %d shortcuts", imported.Count()))))
}

// Reload re-reads profiles and shortcuts after the store changed on disk.
func (c *Controller) Reload() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loadProfiles()
	_, stillThere := models.FindProfile(c.profiles, c.profileID)
	if !stillThere {
		c.profileID = models.DefaultProfileID
	}
	// A half-written file must not wipe the set being edited.
	c.loadShortcuts(stillThere)
	return c.view(nil)
}

// Backups lists the import backups of the active profile, newest first.
func (c *Controller) Backups() ([]services.Backup, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.backups == nil {
		return []services.Backup{}, nil
	}
	return c.backups.List(c.context, c.profileID)
}
