package domain

// NormaliserSettings holds lyrics normaliser configuration.
type NormaliserSettings struct {
	// Preset is the punctuation strip set.
	Preset PunctuationPreset
}

// DocumentSettings holds note layout configuration.
type DocumentSettings struct {
	// Layout is the base note template.
	Layout LayoutName

	// SourceMarker overrides the layout's source marker when set.
	SourceMarker string

	// TargetMarker overrides the layout's target marker when set.
	TargetMarker string

	// Delimiter overrides the layout's delimiter when set.
	Delimiter string
}

// ResolveLayout returns the layout markers with overrides applied.
func (d DocumentSettings) ResolveLayout() Layout {
	layout := LayoutFor(d.Layout)
	if d.SourceMarker != "" {
		layout.SourceMarker = d.SourceMarker
	}
	if d.TargetMarker != "" {
		layout.TargetMarker = d.TargetMarker
	}
	if d.Delimiter != "" {
		layout.Delimiter = d.Delimiter
	}
	return layout
}

// HasOverrides returns true if any marker is overridden.
func (d DocumentSettings) HasOverrides() bool {
	return d.SourceMarker != "" || d.TargetMarker != "" || d.Delimiter != ""
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Normaliser NormaliserSettings
	Document   DocumentSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Normaliser: NormaliserSettings{
			Preset: DefaultPunctuationPreset,
		},
		Document: DocumentSettings{
			Layout: LayoutDefault,
		},
	}
}

// PatchOptions builds patch options from the settings.
func (s AppSettings) PatchOptions() PatchOptions {
	return PatchOptions{
		Preset: s.Normaliser.Preset,
		Layout: s.Document.ResolveLayout(),
	}
}
