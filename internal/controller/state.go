package controller

import (
	"go.uber.org/zap"

	"keyforest/internal/events"
	"keyforest/internal/keyboard"
	"keyforest/internal/models"
)

// The helpers below expect c.mu to be held.

func (c *Controller) view(status *events.Status) View {
	p := c.activeProfile()
	profiles := make([]models.Profile, len(c.profiles))
	copy(profiles, c.profiles)

	return View{
		Profiles:          profiles,
		ActiveProfileID:   p.ID,
		ActiveProfileName: p.Name,
		CanEditProfile:    !p.IsDefault(),
		Modifier:          c.modifier,
		Modifiers:         modifierButtons(c.modifier),
		Keyboard:          keyboard.Render(c.shortcuts, c.modifier),
		ShortcutCount:     c.shortcuts.Count(),
		Status:            status,
	}
}

func (c *Controller) activeProfile() models.Profile {
	if p, ok := models.FindProfile(c.profiles, c.profileID); ok {
		return p
	}
	if c.profileID == models.DefaultProfileID {
		return models.DefaultProfile()
	}
	return models.Profile{ID: c.profileID}
}

func (c *Controller) loadProfiles() {
	list, err := c.ops.GetApps(c.context)
	if err != nil {
		c.log.Error("loading profiles", zap.Error(err))
		if len(c.profiles) == 0 {
			c.profiles = []models.Profile{models.DefaultProfile()}
		}
		return
	}
	if len(list) == 0 {
		list = []models.Profile{models.DefaultProfile()}
	}
	c.profiles = list
}

// loadShortcuts reads the active profile's set from the store and refreshes
// the cache. When the store cannot be read the current set is kept if
// keepOnError is set, otherwise the cached copy is used, then an empty set.
func (c *Controller) loadShortcuts(keepOnError bool) {
	set, err := c.ops.LoadShortcuts(c.context, c.profileID)
	if err != nil {
		c.log.Error("loading shortcuts", zap.String("profile", c.profileID), zap.Error(err))
		if keepOnError {
			return
		}
		if c.cache != nil {
			if cached, ok := c.cache.Load(c.context, c.profileID); ok {
				c.shortcuts = cached
				return
			}
		}
		c.shortcuts = models.NewShortcutSet()
		return
	}
	if set == nil {
		set = models.NewShortcutSet()
	}
	set.Normalize()
	c.shortcuts = set

	if c.cache != nil {
		if err := c.cache.Store(c.context, c.profileID, set); err != nil {
			c.log.Warn("refreshing shortcut cache", zap.String("profile", c.profileID), zap.Error(err))
		}
	}
}

// persist writes the in-memory set to the cache and the store.
func (c *Controller) persist() {
	c.shortcuts.Normalize()

	if c.cache != nil {
		if err := c.cache.Store(c.context, c.profileID, c.shortcuts); err != nil {
			c.log.Warn("caching shortcuts", zap.String("profile", c.profileID), zap.Error(err))
		}
	}
	if err := c.ops.SaveShortcuts(c.context, c.profileID, c.shortcuts.Clone()); err != nil {
		c.log.Error("saving shortcuts", zap.String("profile", c.profileID), zap.Error(err))
		c.status(events.NewError("Shortcuts could not be saved"))
	}
}

func (c *Controller) remember() {
	if c.settings == nil {
		return
	}
	if _, err := c.settings.Remember(c.context, c.profileID, c.modifier); err != nil {
		c.log.Warn("remembering view", zap.Error(err))
	}
}

func (c *Controller) status(s events.Status) *events.Status {
	if c.notifier != nil {
		if err := c.notifier.Status(s); err != nil {
			c.log.Debug("status not delivered", zap.Error(err))
		}
	}
	return &s
}

func (c *Controller) alert(message string) {
	c.info("KeyForest", message)
}

func (c *Controller) info(title, message string) {
	if c.dialogs == nil {
		c.log.Info(message)
		return
	}
	if err := c.dialogs.Info(title, message); err != nil {
		c.log.Warn("showing dialog", zap.Error(err))
	}
}

func (c *Controller) fail(message string) {
	if c.dialogs == nil {
		c.log.Error(message)
		return
	}
	if err := c.dialogs.Error("KeyForest", message); err != nil {
		c.log.Warn("showing dialog", zap.Error(err))
	}
}

// confirm asks a yes/no question. Without dialogs nothing is confirmed.
func (c *Controller) confirm(title, question string) bool {
	if c.dialogs == nil {
		return false
	}
	ok, err := c.dialogs.Confirm(title, question)
	if err != nil {
		c.log.Warn("showing confirmation", zap.Error(err))
		return false
	}
	return ok
}
