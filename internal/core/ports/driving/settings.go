package driving

import "github.com/custodia-labs/songnote/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// SetPreset updates the punctuation preset.
	SetPreset(preset domain.PunctuationPreset) error

	// SetLayout updates the base note layout.
	SetLayout(layout domain.LayoutName) error

	// SetMarkers overrides individual marker strings. Empty values are left unchanged.
	SetMarkers(source, target, delimiter string) error

	// ResetMarkers removes all marker overrides.
	ResetMarkers() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ConfigPath returns where settings are stored.
	ConfigPath() string
}
