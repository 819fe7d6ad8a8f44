package models

import "strings"

// DefaultProfileID is the reserved profile that always exists.
const (
	DefaultProfileID   = "default"
	DefaultProfileName = "Default"
)

// Profile is a named shortcut scope, usually one per application.
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultProfile returns the seeded profile written on first start.
func DefaultProfile() Profile {
	return Profile{ID: DefaultProfileID, Name: DefaultProfileName}
}

// IsDefault reports whether p is the reserved default profile.
func (p Profile) IsDefault() bool {
	return p.ID == DefaultProfileID
}

// Valid reports whether both id and name carry text.
func (p Profile) Valid() bool {
	return strings.TrimSpace(p.ID) != "" && strings.TrimSpace(p.Name) != ""
}

// FindProfile returns the profile with the given id from list.
func FindProfile(list []Profile, id string) (Profile, bool) {
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}
