package services

import (
	"fmt"

	"github.com/custodia-labs/songnote/internal/core/domain"
	"github.com/custodia-labs/songnote/internal/core/ports/driven"
	"github.com/custodia-labs/songnote/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyPreset       = "normaliser.preset"
	keyLayout       = "document.layout"
	keySourceMarker = "document.source_marker"
	keyTargetMarker = "document.target_marker"
	keyDelimiter    = "document.delimiter"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Unrecognised stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	preset := domain.PunctuationPreset(s.configStore.GetString(keyPreset))
	if !preset.IsValid() {
		preset = defaults.Normaliser.Preset
	}

	layout := domain.LayoutName(s.configStore.GetString(keyLayout))
	if !layout.IsValid() {
		layout = defaults.Document.Layout
	}

	return &domain.AppSettings{
		Normaliser: domain.NormaliserSettings{
			Preset: preset,
		},
		Document: domain.DocumentSettings{
			Layout:       layout,
			SourceMarker: s.configStore.GetString(keySourceMarker),
			TargetMarker: s.configStore.GetString(keyTargetMarker),
			Delimiter:    s.configStore.GetString(keyDelimiter),
		},
	}, nil
}

// SetPreset updates the punctuation preset.
func (s *SettingsService) SetPreset(preset domain.PunctuationPreset) error {
	if !preset.IsValid() {
		return fmt.Errorf("%w: punctuation preset %q", domain.ErrInvalidPreset, preset)
	}
	if err := s.configStore.Set(keyPreset, preset.String()); err != nil {
		return fmt.Errorf("save punctuation preset: %w", err)
	}
	return nil
}

// SetLayout updates the base note layout.
func (s *SettingsService) SetLayout(layout domain.LayoutName) error {
	if !layout.IsValid() {
		return fmt.Errorf("%w: layout %q", domain.ErrInvalidPreset, layout)
	}
	if err := s.configStore.Set(keyLayout, layout.String()); err != nil {
		return fmt.Errorf("save layout: %w", err)
	}
	return nil
}

// SetMarkers overrides individual marker strings. Empty values are left unchanged.
func (s *SettingsService) SetMarkers(source, target, delimiter string) error {
	if source == "" && target == "" && delimiter == "" {
		return domain.ErrInvalidInput
	}

	overrides := []struct {
		key   string
		value string
	}{
		{keySourceMarker, source},
		{keyTargetMarker, target},
		{keyDelimiter, delimiter},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		if err := s.configStore.Set(o.key, o.value); err != nil {
			return fmt.Errorf("save %s: %w", o.key, err)
		}
	}
	return nil
}

// ResetMarkers removes all marker overrides.
func (s *SettingsService) ResetMarkers() error {
	for _, key := range []string{keySourceMarker, keyTargetMarker, keyDelimiter} {
		if err := s.configStore.Delete(key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ConfigPath returns where settings are stored.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}
