package cli

import (
	"fmt"

	"github.com/custodia-labs/songnote/internal/core/domain"
)

// resolvePatchOptions merges stored settings with a one-off preset flag.
func resolvePatchOptions(presetFlag string) (domain.PatchOptions, error) {
	settings := domain.DefaultAppSettings()
	if settingsService != nil {
		stored, err := settingsService.Get()
		if err != nil {
			return domain.PatchOptions{}, fmt.Errorf("failed to get settings: %w", err)
		}
		settings = *stored
	}

	opts := settings.PatchOptions()
	if presetFlag != "" {
		preset, err := domain.ParsePunctuationPreset(presetFlag)
		if err != nil {
			return domain.PatchOptions{}, fmt.Errorf("%w: %q (choose basic or extended)", err, presetFlag)
		}
		opts.Preset = preset
	}
	return opts, nil
}
