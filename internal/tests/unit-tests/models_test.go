package unit_tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyforest/internal/models"
)

func TestParseModifier(t *testing.T) {
	cases := map[string]models.Modifier{
		"plain":          models.ModifierPlain,
		"ctrl-alt":       models.ModifierCtrlAlt,
		" ctrl_shift ":   models.ModifierCtrlShift,
		"ctrl-alt-shift": models.ModifierCtrlAltShift,
	}
	for in, want := range cases {
		got, err := models.ParseModifier(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	got, err := models.ParseModifier("shift")
	assert.Error(t, err)
	assert.Equal(t, models.ModifierPlain, got)
}

func TestModifier_Presentation(t *testing.T) {
	assert.Equal(t, "", models.ModifierPlain.Prefix())
	assert.Equal(t, "Ctrl + Alt + Shift + ", models.ModifierCtrlAltShift.Prefix())
	assert.Equal(t, "Plain", models.ModifierPlain.Label())
	assert.Equal(t, "Ctrl + Shift", models.ModifierCtrlShift.Label())
	assert.Equal(t, "ctrl-alt-view", models.ModifierCtrlAlt.ButtonID())

	assert.True(t, models.ModifierCtrlAltShift.Includes(models.PhysicalShift))
	assert.False(t, models.ModifierCtrlAlt.Includes(models.PhysicalShift))
	assert.False(t, models.ModifierPlain.Includes(models.PhysicalCtrl))
}

func TestShortcutSet_Operations(t *testing.T) {
	set := models.NewShortcutSet()
	assert.Len(t, set, 6)
	assert.False(t, set.Normalize())

	set.Set(models.ModifierAlt, "F4", "  Close  ")
	assert.Equal(t, "Close", set.Get(models.ModifierAlt, "F4"))
	assert.Equal(t, 1, set.Count())

	clone := set.Clone()
	clone.Set(models.ModifierAlt, "F4", "Quit")
	assert.Equal(t, "Close", set.Get(models.ModifierAlt, "F4"))

	set.Set(models.ModifierAlt, "F4", " ")
	assert.Equal(t, 0, set.Count())

	partial := models.ShortcutSet{models.ModifierCtrl: {"c": "Copy"}}
	assert.True(t, partial.Normalize())
	assert.Len(t, partial, 6)
	assert.Equal(t, "Copy", partial.Get(models.ModifierCtrl, "c"))
}

func TestExportDocument(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	doc := models.NewExportDocument(models.Profile{ID: "app_1", Name: "Visual  Studio Code"}, models.NewShortcutSet(), now)

	require.NoError(t, doc.Validate())
	assert.Equal(t, "2026-03-01T12:00:00Z", doc.ExportDate)
	assert.Equal(t, "keyforest-visual-studio-code.json", doc.FileName())

	assert.Error(t, (&models.ExportDocument{AppID: "a", AppName: "b"}).Validate())
	assert.Error(t, (&models.ExportDocument{AppName: "b", Shortcuts: models.NewShortcutSet()}).Validate())
	assert.Error(t, (*models.ExportDocument)(nil).Validate())
}

func TestProfile(t *testing.T) {
	assert.True(t, models.DefaultProfile().IsDefault())
	assert.False(t, models.Profile{ID: "app_1", Name: " "}.Valid())

	list := []models.Profile{models.DefaultProfile(), {ID: "app_1", Name: "Vim"}}
	p, ok := models.FindProfile(list, "app_1")
	assert.True(t, ok)
	assert.Equal(t, "Vim", p.Name)
	_, ok = models.FindProfile(list, "app_2")
	assert.False(t, ok)
}
