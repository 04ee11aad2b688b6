package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeySnapshot       = "tracker_snapshot"
	KeyShowSeconds    = "show_seconds"
	KeyConfirmRemoval = "confirm_removal"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultShowSeconds    = true
	DefaultConfirmRemoval = true
	DefaultLanguage       = "system"
)

// Settings manages application configuration. The tracker snapshot rides in
// the same preferences store as the display options, under its own key.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// SnapshotJSON returns the persisted tracker snapshot blob, empty when the
// app has never saved one.
func (s *Settings) SnapshotJSON() string {
	return s.app.Preferences().String(KeySnapshot)
}

// SetSnapshotJSON stores the tracker snapshot blob.
func (s *Settings) SetSnapshotJSON(blob string) {
	s.app.Preferences().SetString(KeySnapshot, blob)
}

// GetShowSeconds returns whether countdowns display a seconds segment
func (s *Settings) GetShowSeconds() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowSeconds, DefaultShowSeconds)
}

// SetShowSeconds sets whether countdowns display a seconds segment
func (s *Settings) SetShowSeconds(show bool) {
	s.app.Preferences().SetBool(KeyShowSeconds, show)
}

// GetConfirmRemoval returns whether removing a tracker asks for confirmation
func (s *Settings) GetConfirmRemoval() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmRemoval, DefaultConfirmRemoval)
}

// SetConfirmRemoval sets whether removing a tracker asks for confirmation
func (s *Settings) SetConfirmRemoval(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmRemoval, confirm)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
