// Package prefs stores user preferences as a JSON document on disk.
package prefs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sallie-oss/sallie/internal/errors"
)

// Preferences holds the user-tunable assistant settings.
type Preferences struct {
	DisplayName          string `json:"display_name"`
	Persona              string `json:"persona"` // warm, direct, playful
	Locale               string `json:"locale"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	ProactiveSuggestions bool   `json:"proactive_suggestions"`
	QuietHoursStart      string `json:"quiet_hours_start,omitempty"` // "22:00"
	QuietHoursEnd        string `json:"quiet_hours_end,omitempty"`   // "07:00"
}

// Default returns the preferences used before the user has saved any.
func Default() *Preferences {
	return &Preferences{
		Persona:              "warm",
		Locale:               "en",
		NotificationsEnabled: true,
		ProactiveSuggestions: true,
	}
}

// LoadFile reads preferences from path. A missing file yields defaults;
// a malformed or unrecognized document is a PREFS_INVALID error.
func LoadFile(path string) (*Preferences, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrap(errors.CodePrefsInvalid, "read preferences file", err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()

	var p Preferences
	if err := dec.Decode(&p); err != nil {
		return nil, errors.Wrap(errors.CodePrefsInvalid, "parse preferences file", err).
			WithSuggestion("Fix or delete " + path + " to regenerate defaults")
	}
	return &p, nil
}

// SaveFile writes preferences to path atomically (temp file + rename),
// so a crash mid-write never leaves a truncated document behind.
func (p *Preferences) SaveFile(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return errors.Wrap(errors.CodePrefsInvalid, "marshal preferences", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.CodePersistFailed, "create preferences directory", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*")
	if err != nil {
		return errors.Wrap(errors.CodePersistFailed, "create temp preferences file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(errors.CodePersistFailed, "write preferences", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(errors.CodePersistFailed, "close preferences file", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(errors.CodePersistFailed, "replace preferences file", err)
	}
	return nil
}

// Get returns the named field value as a string, for CLI display.
func (p *Preferences) Get(field string) (string, error) {
	switch field {
	case "display_name":
		return p.DisplayName, nil
	case "persona":
		return p.Persona, nil
	case "locale":
		return p.Locale, nil
	case "notifications_enabled":
		return boolString(p.NotificationsEnabled), nil
	case "proactive_suggestions":
		return boolString(p.ProactiveSuggestions), nil
	case "quiet_hours_start":
		return p.QuietHoursStart, nil
	case "quiet_hours_end":
		return p.QuietHoursEnd, nil
	}
	return "", errors.New(errors.CodeInvalidArgument, "unknown preference field: "+field)
}

// Set assigns the named field from a string value, for CLI edits.
func (p *Preferences) Set(field, value string) error {
	switch field {
	case "display_name":
		p.DisplayName = value
	case "persona":
		p.Persona = value
	case "locale":
		p.Locale = value
	case "notifications_enabled":
		p.NotificationsEnabled = value == "true"
	case "proactive_suggestions":
		p.ProactiveSuggestions = value == "true"
	case "quiet_hours_start":
		p.QuietHoursStart = value
	case "quiet_hours_end":
		p.QuietHoursEnd = value
	default:
		return errors.New(errors.CodeInvalidArgument, "unknown preference field: "+field)
	}
	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
