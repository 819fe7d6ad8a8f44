package models

import (
	"fmt"
	"strings"
)

// Modifier names one of the six key-combination classes shortcuts are grouped under.
type Modifier string

const (
	ModifierPlain        Modifier = "plain"
	ModifierCtrl         Modifier = "ctrl"
	ModifierAlt          Modifier = "alt"
	ModifierCtrlShift    Modifier = "ctrl_shift"
	ModifierCtrlAlt      Modifier = "ctrl_alt"
	ModifierCtrlAltShift Modifier = "ctrl_alt_shift"
)

// Physical modifier keys that can take part in a Modifier.
const (
	PhysicalCtrl  = "ctrl"
	PhysicalAlt   = "alt"
	PhysicalShift = "shift"
)

// Modifiers returns the six categories in canonical order.
func Modifiers() []Modifier {
	return []Modifier{
		ModifierPlain,
		ModifierCtrl,
		ModifierAlt,
		ModifierCtrlShift,
		ModifierCtrlAlt,
		ModifierCtrlAltShift,
	}
}

// ParseModifier accepts the stored form ("ctrl_alt") and the button form ("ctrl-alt").
func ParseModifier(s string) (Modifier, error) {
	m := Modifier(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	if !m.Valid() {
		return ModifierPlain, fmt.Errorf("invalid modifier: %q", s)
	}
	return m, nil
}

// Valid reports whether m is one of the six categories.
func (m Modifier) Valid() bool {
	for _, known := range Modifiers() {
		if m == known {
			return true
		}
	}
	return false
}

func (m Modifier) String() string {
	return string(m)
}

// Includes reports whether the physical modifier key takes part in m.
func (m Modifier) Includes(physical string) bool {
	if m == ModifierPlain {
		return false
	}
	for _, part := range strings.Split(string(m), "_") {
		if part == physical {
			return true
		}
	}
	return false
}

// Prefix renders the modifier as a human readable key chord prefix.
func (m Modifier) Prefix() string {
	switch m {
	case ModifierCtrl:
		return "Ctrl + "
	case ModifierAlt:
		return "Alt + "
	case ModifierCtrlShift:
		return "Ctrl + Shift + "
	case ModifierCtrlAlt:
		return "Ctrl + Alt + "
	case ModifierCtrlAltShift:
		return "Ctrl + Alt + Shift + "
	default:
		return ""
	}
}

// Label is the caption used on the modifier selector buttons.
func (m Modifier) Label() string {
	if m == ModifierPlain {
		return "Plain"
	}
	return strings.TrimSuffix(m.Prefix(), " + ")
}

// ButtonID is the dashed identifier used by the webview ("ctrl-alt-view").
func (m Modifier) ButtonID() string {
	return strings.ReplaceAll(string(m), "_", "-") + "-view"
}
