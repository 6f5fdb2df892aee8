package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/smartfile/internal/connectors/filesystem"
	"github.com/custodia-labs/smartfile/internal/core/ports/driving"
	"github.com/custodia-labs/smartfile/internal/logger"
)

// watchDebounce groups bursts of filesystem events into a single pass.
var watchDebounce = 500 * time.Millisecond

var (
	organizeDryRun bool
	organizeWatch  bool
)

var organizeCmd = &cobra.Command{
	Use:   "organize DIR",
	Short: "Move files into per-category folders",
	Long: `Moves every regular file directly inside DIR into a sub-folder named
after the major part of its MIME type (image/, text/, application/, ...).
Files whose type cannot be detected are left in place. Existing files are
never overwritten.

With --watch, DIR is organised once and then again whenever files are
created in it, until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runOrganize,
}

func init() {
	organizeCmd.Flags().BoolVar(&organizeDryRun, "dry-run", false, "show the moves without performing them")
	organizeCmd.Flags().BoolVarP(&organizeWatch, "watch", "w", false, "keep organising new files until interrupted")
	rootCmd.AddCommand(organizeCmd)
}

func runOrganize(cmd *cobra.Command, args []string) error {
	if organizer == nil {
		return errors.New("organizer not configured")
	}

	dir := filesystem.ResolvePath(args[0])

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	err := organizePass(ctx, cmd, dir)
	if !organizeWatch {
		return err
	}
	if err != nil {
		logger.Error("%v", err)
	}
	return watchAndOrganize(ctx, cmd, dir)
}

func organizePass(ctx context.Context, cmd *cobra.Command, dir string) error {
	result, err := organizer.Organize(ctx, dir, driving.OrganizeOptions{DryRun: organizeDryRun})
	if result != nil {
		printBatch(cmd, dir, result)
	}
	if err != nil {
		return fmt.Errorf("organize: %w", err)
	}
	return batchError(result)
}

// watchAndOrganize runs an organise pass after each quiet period following
// new files in dir. It returns nil when ctx is cancelled.
func watchAndOrganize(ctx context.Context, cmd *cobra.Command, dir string) error {
	watcher := filesystem.NewWatcher(dir)
	defer watcher.Close()

	paths, err := watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	st := stylesFor(cmd.OutOrStdout())
	cmd.Println(st.Muted.Render(fmt.Sprintf("Watching %s (Ctrl+C to stop)", dir)))

	timer := time.NewTimer(watchDebounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-paths:
			if !ok {
				return nil
			}
			logger.Debug("watch: new file %s", path)
			timer.Reset(watchDebounce)
		case <-timer.C:
			if err := organizePass(ctx, cmd, dir); err != nil {
				logger.Error("%v", err)
			}
		}
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
