package models

import "strings"

// ShortcutSet maps each modifier category to a key id -> action label mapping.
type ShortcutSet map[Modifier]map[string]string

// NewShortcutSet returns a set with all six categories present and empty.
func NewShortcutSet() ShortcutSet {
	s := make(ShortcutSet, len(Modifiers()))
	s.Normalize()
	return s
}

// Normalize adds any missing category as an empty mapping. It reports whether
// anything was added.
func (s ShortcutSet) Normalize() bool {
	changed := false
	for _, m := range Modifiers() {
		if s[m] == nil {
			s[m] = map[string]string{}
			changed = true
		}
	}
	return changed
}

// Get returns the label assigned to key under m.
func (s ShortcutSet) Get(m Modifier, key string) string {
	return s[m][key]
}

// Set assigns label to key under m. A blank label clears the assignment.
func (s ShortcutSet) Set(m Modifier, key, label string) {
	label = strings.TrimSpace(label)
	if label == "" {
		s.Clear(m, key)
		return
	}
	if s[m] == nil {
		s[m] = map[string]string{}
	}
	s[m][key] = label
}

// Clear removes the assignment for key under m.
func (s ShortcutSet) Clear(m Modifier, key string) {
	delete(s[m], key)
}

// Count returns the number of assignments across all categories.
func (s ShortcutSet) Count() int {
	n := 0
	for _, keys := range s {
		n += len(keys)
	}
	return n
}

// Clone returns a deep copy of s.
func (s ShortcutSet) Clone() ShortcutSet {
	out := make(ShortcutSet, len(s))
	for m, keys := range s {
		copied := make(map[string]string, len(keys))
		for k, v := range keys {
			copied[k] = v
		}
		out[m] = copied
	}
	return out
}
