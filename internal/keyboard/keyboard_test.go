package keyboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyforest/internal/models"
)

func TestLayout_RowsAndEdges(t *testing.T) {
	layout := Layout()
	require.Len(t, layout, 6)

	assert.Equal(t, "Escape", layout[0][0].ID)
	assert.Equal(t, "Esc", layout[0][0].Label)
	assert.Equal(t, "Delete", layout[0][len(layout[0])-1].ID)
	assert.Equal(t, "Home", layout[1][len(layout[1])-1].ID)
	assert.Equal(t, "PageUp", layout[2][len(layout[2])-1].ID)
	assert.Equal(t, "PageDown", layout[3][len(layout[3])-1].ID)
	assert.Equal(t, "End", layout[4][len(layout[4])-1].ID)
	assert.Equal(t, "ControlLeft", layout[5][0].ID)
	assert.Equal(t, "ArrowRight", layout[5][len(layout[5])-1].ID)
}

func TestDisplayLabel(t *testing.T) {
	assert.Equal(t, "⌫", DisplayLabel("Backspace"))
	assert.Equal(t, "Win", DisplayLabel("Meta"))
	assert.Equal(t, "PgDn", DisplayLabel("PageDown"))
	assert.Equal(t, "q", DisplayLabel("q"))
	assert.Equal(t, "F5", DisplayLabel("F5"))
}

func TestHas(t *testing.T) {
	assert.True(t, Has("Space"))
	assert.True(t, Has("\\"))
	assert.False(t, Has("Insert"))
	assert.False(t, Has("NumLock"))
}

func TestMaxLabelLength(t *testing.T) {
	cases := []struct {
		key  string
		mod  models.Modifier
		want int
	}{
		{"Space", models.ModifierCtrlShift, 50},
		{"Backspace", models.ModifierPlain, 25},
		{"Enter", models.ModifierCtrlAltShift, 25},
		{"ShiftLeft", models.ModifierCtrlShift, 18},
		{"ShiftRight", models.ModifierPlain, 18},
		{"a", models.ModifierCtrlShift, 10},
		{"a", models.ModifierCtrlAltShift, 10},
		{"a", models.ModifierCtrlAlt, 12},
		{"F1", models.ModifierPlain, 12},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MaxLabelLength(tc.key, tc.mod), "%s/%s", tc.key, tc.mod)
	}
}

func TestTruncate(t *testing.T) {
	got, cut := Truncate("Copy", 12)
	assert.Equal(t, "Copy", got)
	assert.False(t, cut)

	got, cut = Truncate("exactly-12ch", 12)
	assert.Equal(t, "exactly-12ch", got)
	assert.False(t, cut)

	got, cut = Truncate("Open recent workspace", 12)
	assert.Equal(t, "Open recent ...", got)
	assert.True(t, cut)
}

func TestTruncate_WideRunes(t *testing.T) {
	// Each CJK rune takes two columns.
	got, cut := Truncate("保存して閉じる", 6)
	assert.True(t, cut)
	assert.Equal(t, "保存し...", got)
}

func TestRender_ActionsAndHighlights(t *testing.T) {
	set := models.NewShortcutSet()
	set.Set(models.ModifierCtrlShift, "p", "Command palette")
	set.Set(models.ModifierCtrlShift, "Space", "Trigger parameter hints")
	set.Set(models.ModifierPlain, "p", "ignored in this view")

	view := Render(set, models.ModifierCtrlShift)
	assert.Equal(t, models.ModifierCtrlShift, view.Modifier)
	assert.Equal(t, "ctrl-shift-mode", view.ModeClass)

	byID := map[string]KeyView{}
	for _, row := range view.Rows {
		for _, k := range row {
			byID[k.ID] = k
		}
	}

	p := byID["p"]
	assert.True(t, p.HasAction)
	assert.Equal(t, "Command pa...", p.Action)
	assert.Equal(t, "Command palette", p.FullAction)
	assert.Equal(t, "ctrl-shift-mode", p.ModeClass)

	space := byID["Space"]
	assert.Equal(t, "Trigger parameter hints", space.Action)
	assert.Empty(t, space.FullAction)

	assert.False(t, byID["q"].HasAction)
	assert.Empty(t, byID["q"].ModeClass)

	assert.True(t, byID["ControlLeft"].Highlighted)
	assert.True(t, byID["ControlRight"].Highlighted)
	assert.True(t, byID["ShiftLeft"].Highlighted)
	assert.True(t, byID["ShiftRight"].Highlighted)
	assert.False(t, byID["AltLeft"].Highlighted)
	assert.False(t, byID["Meta"].Highlighted)
}

func TestRender_InvalidModifierFallsBackToPlain(t *testing.T) {
	view := Render(nil, models.Modifier("hyper"))
	assert.Equal(t, models.ModifierPlain, view.Modifier)
	for _, row := range view.Rows {
		for _, k := range row {
			assert.False(t, k.Highlighted, k.ID)
			assert.False(t, k.HasAction, k.ID)
		}
	}
}

func TestRender_LongSpaceLabel(t *testing.T) {
	set := models.NewShortcutSet()
	set.Set(models.ModifierAlt, "Space", strings.Repeat("x", 60))

	view := Render(set, models.ModifierAlt)
	space := view.Rows[5][3]
	require.Equal(t, "Space", space.ID)
	assert.Equal(t, strings.Repeat("x", 50)+"...", space.Action)
	assert.True(t, view.Rows[5][2].Highlighted)
}
