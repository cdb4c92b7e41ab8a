package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/songnote/internal/core/domain"
)

var (
	markersSource    string
	markersTarget    string
	markersDelimiter string
	markersReset     bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the punctuation preset and the note layout.

Use subcommands to change individual settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsPresetCmd = &cobra.Command{
	Use:   "preset [basic|extended]",
	Short: "Set the punctuation preset",
	Long: `Set which trailing punctuation is stripped from lyric lines.

Available presets:
  basic    - . , ! ? ; :
  extended - basic plus em dash, en dash and hyphen (default)`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsPreset,
}

var settingsLayoutCmd = &cobra.Command{
	Use:   "layout [default|legacy]",
	Short: "Set the note layout",
	Long: `Set which headings mark the lyric sections of a song note.

Available layouts:
  default - ### Lyrics (Master Version) / ### Lyrics (Distrokid Normalised)
  legacy  - ## Lyrics (Master Version) / ## Lyrics (Distrokid Normalised)`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsLayout,
}

var settingsMarkersCmd = &cobra.Command{
	Use:   "markers",
	Short: "Override section markers",
	Long: `Override the source marker, target marker or delimiter of the current layout.

Only the flags given are changed. Use --reset to go back to the layout's markers.`,
	Args: cobra.NoArgs,
	RunE: runSettingsMarkers,
}

func init() {
	settingsMarkersCmd.Flags().StringVar(&markersSource, "source", "", "heading of the master lyrics section")
	settingsMarkersCmd.Flags().StringVar(&markersTarget, "target", "", "heading of the normalised lyrics section")
	settingsMarkersCmd.Flags().StringVar(&markersDelimiter, "delimiter", "", "line that closes a section")
	settingsMarkersCmd.Flags().BoolVar(&markersReset, "reset", false, "remove all marker overrides")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsPresetCmd)
	settingsCmd.AddCommand(settingsLayoutCmd)
	settingsCmd.AddCommand(settingsMarkersCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Normaliser]")
	cmd.Printf("  Preset: %s\n", settings.Normaliser.Preset.Description())
	cmd.Println()

	layout := settings.Document.ResolveLayout()
	cmd.Println("[Document]")
	cmd.Printf("  Layout: %s\n", settings.Document.Layout.Description())
	cmd.Printf("  Source marker: %s\n", layout.SourceMarker)
	cmd.Printf("  Target marker: %s\n", layout.TargetMarker)
	cmd.Printf("  Delimiter: %s\n", layout.Delimiter)
	if settings.Document.HasOverrides() {
		cmd.Println("  (markers overridden, run 'songnote settings markers --reset' to restore)")
	}
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	return nil
}

func runSettingsPreset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	preset, err := domain.ParsePunctuationPreset(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q (choose basic or extended)", err, args[0])
	}
	if err := settingsService.SetPreset(preset); err != nil {
		return fmt.Errorf("failed to set preset: %w", err)
	}

	cmd.Printf("Punctuation preset set to: %s\n", preset.Description())
	return nil
}

func runSettingsLayout(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	layout := domain.LayoutName(args[0])
	if !layout.IsValid() {
		return fmt.Errorf("%w: unknown layout %q (choose default or legacy)", domain.ErrInvalidInput, args[0])
	}
	if err := settingsService.SetLayout(layout); err != nil {
		return fmt.Errorf("failed to set layout: %w", err)
	}

	cmd.Printf("Note layout set to: %s\n", layout.Description())
	return nil
}

func runSettingsMarkers(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if markersReset {
		if err := settingsService.ResetMarkers(); err != nil {
			return fmt.Errorf("failed to reset markers: %w", err)
		}
		cmd.Println("Marker overrides removed.")
		return nil
	}

	if markersSource == "" && markersTarget == "" && markersDelimiter == "" {
		return errors.New("nothing to change: pass --source, --target, --delimiter or --reset")
	}
	if err := settingsService.SetMarkers(markersSource, markersTarget, markersDelimiter); err != nil {
		return fmt.Errorf("failed to set markers: %w", err)
	}

	cmd.Println("Markers updated.")
	return nil
}
