package keyboard

import (
	"github.com/mattn/go-runewidth"

	"keyforest/internal/models"
)

const ellipsis = "..."

// KeyView is a key as drawn for one modifier view.
type KeyView struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Class       string `json:"class,omitempty"`
	Action      string `json:"action,omitempty"`
	FullAction  string `json:"fullAction,omitempty"`
	HasAction   bool   `json:"hasAction"`
	Highlighted bool   `json:"highlighted"`
	ModeClass   string `json:"modeClass,omitempty"`
}

// View is the whole keyboard for one modifier.
type View struct {
	Modifier  models.Modifier `json:"modifier"`
	ModeClass string          `json:"modeClass"`
	Rows      [][]KeyView     `json:"rows"`
}

// MaxLabelLength is the widest action label a key shows before truncating.
func MaxLabelLength(id string, m models.Modifier) int {
	switch KeyClass(id) {
	case ClassSpace:
		return 50
	case ClassBackspace, ClassEnter:
		return 25
	case ClassShiftLeft, ClassShiftRight:
		return 18
	}
	if m == models.ModifierCtrlShift || m == models.ModifierCtrlAltShift {
		return 10
	}
	return 12
}

// Truncate shortens text to max display columns and appends an ellipsis.
// It reports whether anything was cut.
func Truncate(text string, max int) (string, bool) {
	if max <= 0 || runewidth.StringWidth(text) <= max {
		return text, false
	}
	return runewidth.Truncate(text, max, "") + ellipsis, true
}

// Render lays set out on the keyboard for modifier m.
func Render(set models.ShortcutSet, m models.Modifier) View {
	if !m.Valid() {
		m = models.ModifierPlain
	}
	mode := ModeClass(m)

	view := View{Modifier: m, ModeClass: mode, Rows: make([][]KeyView, len(rows))}
	for i, row := range rows {
		keys := make([]KeyView, len(row))
		for j, id := range row {
			kv := KeyView{
				ID:          id,
				Label:       DisplayLabel(id),
				Class:       KeyClass(id),
				Highlighted: Highlighted(id, m),
			}
			if action := set.Get(m, id); action != "" {
				shown, cut := Truncate(action, MaxLabelLength(id, m))
				kv.Action = shown
				kv.HasAction = true
				kv.ModeClass = mode
				if cut {
					kv.FullAction = action
				}
			}
			keys[j] = kv
		}
		view.Rows[i] = keys
	}
	return view
}
