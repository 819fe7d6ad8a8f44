package keyboard

import "keyforest/internal/models"

// Key is one physical key of the on-screen keyboard.
type Key struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Class string `json:"class,omitempty"`
}

var rows = [][]string{
	{"Escape", "F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12", "Delete"},
	{"`", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "=", "Backspace", "Home"},
	{"Tab", "q", "w", "e", "r", "t", "y", "u", "i", "o", "p", "[", "]", "\\", "PageUp"},
	{"CapsLock", "a", "s", "d", "f", "g", "h", "j", "k", "l", ";", "'", "Enter", "PageDown"},
	{"ShiftLeft", "z", "x", "c", "v", "b", "n", "m", ",", ".", "/", "ShiftRight", "ArrowUp", "End"},
	{"ControlLeft", "Meta", "AltLeft", "Space", "AltRight", "ControlRight", "ArrowLeft", "ArrowDown", "ArrowRight"},
}

var labels = map[string]string{
	"Escape":       "Esc",
	"Backspace":    "⌫",
	"Tab":          "Tab ↹",
	"CapsLock":     "Caps",
	"Enter":        "Enter ↵",
	"ShiftLeft":    "Shift ⇧",
	"ShiftRight":   "Shift ⇧",
	"ControlLeft":  "Ctrl",
	"ControlRight": "Ctrl",
	"AltLeft":      "Alt",
	"AltRight":     "Alt",
	"Meta":         "Win",
	"Space":        "Space",
	"Insert":       "Ins",
	"Home":         "Home",
	"PageUp":       "PgUp",
	"Delete":       "Del",
	"End":          "End",
	"PageDown":     "PgDn",
	"ArrowUp":      "↑",
	"ArrowDown":    "↓",
	"ArrowLeft":    "←",
	"ArrowRight":   "→",
}

// Width and role classes understood by the stylesheet.
const (
	ClassBackspace  = "backspace"
	ClassTab        = "tab"
	ClassCaps       = "caps"
	ClassEnter      = "enter"
	ClassShiftLeft  = "shift-left"
	ClassShiftRight = "shift-right"
	ClassCtrl       = "ctrl"
	ClassAlt        = "alt"
	ClassWin        = "win"
	ClassSpace      = "space"
	ClassNav        = "nav-key"
	ClassArrow      = "arrow-key"
)

var classes = map[string]string{
	"Backspace":    ClassBackspace,
	"Tab":          ClassTab,
	"CapsLock":     ClassCaps,
	"Enter":        ClassEnter,
	"ShiftLeft":    ClassShiftLeft,
	"ShiftRight":   ClassShiftRight,
	"ControlLeft":  ClassCtrl,
	"ControlRight": ClassCtrl,
	"AltLeft":      ClassAlt,
	"AltRight":     ClassAlt,
	"Meta":         ClassWin,
	"Space":        ClassSpace,
	"Insert":       ClassNav,
	"Home":         ClassNav,
	"PageUp":       ClassNav,
	"Delete":       ClassNav,
	"End":          ClassNav,
	"PageDown":     ClassNav,
	"ArrowUp":      ClassArrow,
	"ArrowDown":    ClassArrow,
	"ArrowLeft":    ClassArrow,
	"ArrowRight":   ClassArrow,
}

var modeClasses = map[models.Modifier]string{
	models.ModifierPlain:        "plain-mode",
	models.ModifierCtrl:         "ctrl-mode",
	models.ModifierAlt:          "alt-mode",
	models.ModifierCtrlShift:    "ctrl-shift-mode",
	models.ModifierCtrlAlt:      "ctrl-alt-mode",
	models.ModifierCtrlAltShift: "ctrl-alt-shift-mode",
}

var known = func() map[string]bool {
	m := make(map[string]bool)
	for _, row := range rows {
		for _, id := range row {
			m[id] = true
		}
	}
	return m
}()

// Layout returns the keyboard rows top to bottom.
func Layout() [][]Key {
	out := make([][]Key, len(rows))
	for i, row := range rows {
		keys := make([]Key, len(row))
		for j, id := range row {
			keys[j] = Key{ID: id, Label: DisplayLabel(id), Class: KeyClass(id)}
		}
		out[i] = keys
	}
	return out
}

// Has reports whether id is a key of the layout.
func Has(id string) bool {
	return known[id]
}

// DisplayLabel is the caption printed on the key. Keys without a special
// caption show their id.
func DisplayLabel(id string) string {
	if l, ok := labels[id]; ok {
		return l
	}
	return id
}

func KeyClass(id string) string {
	return classes[id]
}

func ModeClass(m models.Modifier) string {
	return modeClasses[m]
}

// Highlighted reports whether the key is a physical modifier taking part in m.
func Highlighted(id string, m models.Modifier) bool {
	switch KeyClass(id) {
	case ClassCtrl:
		return m.Includes(models.PhysicalCtrl)
	case ClassAlt:
		return m.Includes(models.PhysicalAlt)
	case ClassShiftLeft, ClassShiftRight:
		return m.Includes(models.PhysicalShift)
	}
	return false
}
