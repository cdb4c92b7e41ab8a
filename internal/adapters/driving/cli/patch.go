package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/songnote/internal/adapters/driving/tui/review"
	"github.com/custodia-labs/songnote/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/songnote/internal/adapters/driving/watch"
	"github.com/custodia-labs/songnote/internal/core/domain"
)

var (
	patchPreset   string
	patchDryRun   bool
	patchReview   bool
	patchWatch    bool
	patchDebounce time.Duration
)

// runReview shows the review screen. Replaced in tests.
var runReview = review.Run

var patchCmd = &cobra.Command{
	Use:   "patch [note]",
	Short: "Write normalised lyrics into a song note",
	Long: `Read the master lyrics section of a song note, normalise it, and replace
the contents of the normalised lyrics section with the result.

When no note is given you are asked for one; dragging a file into the
terminal works. Nothing is written when either section marker is missing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPatch,
}

func init() {
	patchCmd.Flags().StringVarP(&patchPreset, "preset", "p", "", "punctuation preset (basic, extended)")
	patchCmd.Flags().BoolVarP(&patchDryRun, "dry-run", "n", false, "print the new section without writing")
	patchCmd.Flags().BoolVarP(&patchReview, "review", "r", false, "review the change before writing")
	patchCmd.Flags().BoolVarP(&patchWatch, "watch", "w", false, "patch again whenever the note changes")
	patchCmd.Flags().DurationVar(&patchDebounce, "debounce", watch.DefaultDelay, "quiet period before a watched note is patched")
	patchCmd.MarkFlagsMutuallyExclusive("dry-run", "review", "watch")
	rootCmd.AddCommand(patchCmd)
}

func runPatch(cmd *cobra.Command, args []string) error {
	if patchService == nil {
		return errors.New("patch service not configured")
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		p, err := promptForPath(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		path = p
	}

	if err := checkNotePath(path); err != nil {
		return err
	}

	opts, err := resolvePatchOptions(patchPreset)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	switch {
	case patchDryRun:
		return runPatchDryRun(ctx, cmd, path, opts)
	case patchReview:
		return runPatchReview(ctx, cmd, path, opts)
	case patchWatch:
		return runPatchWatch(ctx, cmd, path, opts)
	default:
		return runPatchOnce(ctx, cmd, path, opts)
	}
}

func runPatchOnce(ctx context.Context, cmd *cobra.Command, path string, opts domain.PatchOptions) error {
	result, err := patchService.Patch(ctx, path, opts)
	if err != nil {
		return fmt.Errorf("patch failed: %w", err)
	}
	printPatchResult(cmd, result)
	return nil
}

func runPatchDryRun(ctx context.Context, cmd *cobra.Command, path string, opts domain.PatchOptions) error {
	result, err := patchService.Preview(ctx, path, opts)
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	cmd.Printf("%s for %s:\n\n", opts.Layout.TargetMarker, filepath.Base(path))
	cmd.Println(result.Lyrics)
	cmd.Println()
	printStats(cmd, result.Stats)
	if result.Changed {
		cmd.Println("Dry run: no changes written.")
	} else {
		cmd.Println("Note already up to date.")
	}
	return nil
}

func runPatchReview(ctx context.Context, cmd *cobra.Command, path string, opts domain.PatchOptions) error {
	result, err := patchService.Preview(ctx, path, opts)
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	if !result.Changed {
		cmd.Printf("Already up to date: %s\n", filepath.Base(path))
		return nil
	}

	decision, err := runReview(ctx, result)
	if err != nil {
		return err
	}

	switch decision {
	case review.DecisionApply:
		if err := patchService.Apply(ctx, result); err != nil {
			return fmt.Errorf("patch failed: %w", err)
		}
		printPatchResult(cmd, result)
	case review.DecisionSkip:
		cmd.Printf("Skipped: %s\n", filepath.Base(path))
	default:
		cmd.Println("Aborted, nothing written.")
	}
	return nil
}

func runPatchWatch(ctx context.Context, cmd *cobra.Command, path string, opts domain.PatchOptions) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	// Bring the note up to date before waiting for edits.
	if err := runPatchOnce(ctx, cmd, path, opts); err != nil {
		cmd.PrintErrf("Error: %v\n", err)
	}

	w, err := watch.New(path, patchDebounce, func(ctx context.Context, p string) error {
		return runPatchOnce(ctx, cmd, p, opts)
	})
	if err != nil {
		return err
	}

	cmd.Printf("Watching %s (press Ctrl+C to stop)\n", filepath.Base(path))
	if err := w.Run(ctx); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	cmd.Printf("Stopped watching after %d run(s).\n", w.Runs())
	return nil
}

func printPatchResult(cmd *cobra.Command, result *domain.PatchResult) {
	name := filepath.Base(result.Path)
	if !result.Written {
		cmd.Printf("Already up to date: %s\n", name)
		return
	}
	cmd.Printf("Successfully processed and updated: %s\n", name)
	if verbose {
		printStats(cmd, result.Stats)
	}
}

func printStats(cmd *cobra.Command, stats domain.NormaliseStats) {
	s := styles.DefaultStyles()
	cmd.Println(s.Muted.Render(fmt.Sprintf(
		"%d lyric lines kept, %d headers and %d blank lines dropped",
		stats.Kept, stats.Headers, stats.Blank)))
}
