package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/songnote/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/songnote/internal/core/domain"
)

var (
	normalisePreset string
	normaliseStats  bool
)

var normaliseCmd = &cobra.Command{
	Use:   "normalise [file|-]",
	Short: "Print normalised lyrics",
	Long: `Normalise a raw lyric block and print the result.

Reads the file given as argument, or standard input when the argument is
"-" or missing. The note layout is not used: the whole input is treated as
lyrics.`,
	Aliases: []string{"normalize"},
	Args:    cobra.MaximumNArgs(1),
	RunE:    runNormalise,
}

func init() {
	normaliseCmd.Flags().StringVarP(&normalisePreset, "preset", "p", "", "punctuation preset (basic, extended)")
	normaliseCmd.Flags().BoolVar(&normaliseStats, "stats", false, "print line statistics after the lyrics")
	rootCmd.AddCommand(normaliseCmd)
}

func runNormalise(cmd *cobra.Command, args []string) error {
	if patchService == nil {
		return errors.New("patch service not configured")
	}

	opts, err := resolvePatchOptions(normalisePreset)
	if err != nil {
		return err
	}

	var (
		out   string
		stats domain.NormaliseStats
	)
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		out, stats = patchService.NormaliseText(string(data), opts.Preset)
	} else {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		out, stats, err = patchService.NormaliseNote(ctx, args[0], opts.Preset)
		if err != nil {
			return fmt.Errorf("normalise failed: %w", err)
		}
	}
	// Lyrics go to stdout so they can be piped.
	if out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}

	if normaliseStats {
		s := styles.DefaultStyles()
		cmd.PrintErrln(s.Muted.Render(fmt.Sprintf(
			"%d lines in, %d kept, %d headers dropped, %d blank dropped, %d emptied",
			stats.Input, stats.Kept, stats.Headers, stats.Blank, stats.Emptied)))
	}
	return nil
}
