package controller

import (
	"keyforest/internal/events"
	"keyforest/internal/keyboard"
	"keyforest/internal/models"
)

// ModifierButton is one entry of the modifier selector.
type ModifierButton struct {
	ID       string          `json:"id"`
	Modifier models.Modifier `json:"modifier"`
	Label    string          `json:"label"`
	Active   bool            `json:"active"`
}

// View is everything the webview needs to draw the window.
type View struct {
	Profiles          []models.Profile `json:"profiles"`
	ActiveProfileID   string           `json:"activeProfileId"`
	ActiveProfileName string           `json:"activeProfileName"`
	CanEditProfile    bool             `json:"canEditProfile"`
	Modifier          models.Modifier  `json:"modifier"`
	Modifiers         []ModifierButton `json:"modifiers"`
	Keyboard          keyboard.View    `json:"keyboard"`
	ShortcutCount     int              `json:"shortcutCount"`
	Status            *events.Status   `json:"status,omitempty"`
}

// EditDialog describes the action editor opened for a key.
type EditDialog struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Value string `json:"value"`
}

func modifierButtons(active models.Modifier) []ModifierButton {
	all := models.Modifiers()
	out := make([]ModifierButton, len(all))
	for i, m := range all {
		out[i] = ModifierButton{
			ID:       m.ButtonID(),
			Modifier: m,
			Label:    m.Label(),
			Active:   m == active,
		}
	}
	return out
}
