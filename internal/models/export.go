package models

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// ExportDocument is the on-disk format of an exported shortcut set.
type ExportDocument struct {
	AppID      string      `json:"appId"`
	AppName    string      `json:"appName"`
	Shortcuts  ShortcutSet `json:"shortcuts"`
	ExportDate string      `json:"exportDate,omitempty"`
}

var whitespace = regexp.MustCompile(`\s+`)

// NewExportDocument stamps a document for profile p.
func NewExportDocument(p Profile, set ShortcutSet, now time.Time) *ExportDocument {
	return &ExportDocument{
		AppID:      p.ID,
		AppName:    p.Name,
		Shortcuts:  set,
		ExportDate: now.UTC().Format(time.RFC3339),
	}
}

// Validate requires appId, appName and shortcuts to be present.
func (d *ExportDocument) Validate() error {
	if d == nil {
		return errors.New("document is empty")
	}
	if d.Shortcuts == nil {
		return errors.New("missing shortcuts")
	}
	if strings.TrimSpace(d.AppID) == "" {
		return errors.New("missing appId")
	}
	if strings.TrimSpace(d.AppName) == "" {
		return errors.New("missing appName")
	}
	return nil
}

// FileName returns the suggested export file name, e.g. "keyforest-visual-studio.json".
func (d *ExportDocument) FileName() string {
	name := whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(d.AppName)), "-")
	if name == "" {
		name = DefaultProfileID
	}
	return "keyforest-" + name + ".json"
}
