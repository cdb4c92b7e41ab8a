// Package cli provides the songnote command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/songnote/internal/core/ports/driving"
	"github.com/custodia-labs/songnote/internal/logger"
)

// version is set at build time via ldflags or SetVersion.
var version = "dev"

// Services used by the commands. Set from main via the Set* functions.
var (
	patchService    driving.PatchService
	settingsService driving.SettingsService
)

// Initialiser builds and registers services once flags are parsed.
type Initialiser func(configDir string) error

var initialiser Initialiser

// Persistent flags.
var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "songnote",
	Short: "Normalise song lyrics inside markdown song notes",
	Long: `songnote cleans the master lyrics of a markdown song note into the plain
form distribution platforms expect and writes them into the note's
normalised lyrics section.

Header annotations such as [Verse] or (Chorus) and blank lines are dropped,
surrounding quotes and trailing punctuation are stripped, and each line
starts with a capital letter.`,
	SilenceUsage:      true,
	PersistentPreRunE: runInit,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.songnote)")
}

func runInit(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if initialiser == nil {
		return nil
	}
	if err := initialiser(configDir); err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	return nil
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetInitialiser registers the hook that wires services before a command runs.
func SetInitialiser(fn Initialiser) {
	initialiser = fn
}

// SetPatchService sets the patch service.
func SetPatchService(s driving.PatchService) {
	patchService = s
}

// SetSettingsService sets the settings service.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
