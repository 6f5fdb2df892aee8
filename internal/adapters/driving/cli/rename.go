package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/smartfile/internal/connectors/filesystem"
	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/ports/driving"
)

var (
	renamePrefix string
	renameOrder  string
	renameDryRun bool
)

var renameCmd = &cobra.Command{
	Use:   "rename DIR",
	Short: "Rename files with a prefix and index",
	Long: `Renames every regular file directly inside DIR to <prefix><n>_<name>,
where n counts from 1 in the chosen order. Directories are left alone and
existing files are never overwritten.

Orders:
  name      - lexicographic by file name (default)
  modified  - oldest modification time first
  native    - the order the filesystem lists entries in

Prefix and order default to the rename.prefix and rename.order settings.`,
	Args: cobra.ExactArgs(1),
	RunE: runRename,
}

func init() {
	renameCmd.Flags().StringVarP(&renamePrefix, "prefix", "p", "", "prefix for new names (default from settings)")
	renameCmd.Flags().StringVar(&renameOrder, "order", "", "ordering: name, modified or native (default from settings)")
	renameCmd.Flags().BoolVar(&renameDryRun, "dry-run", false, "show the renames without performing them")
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	if renamer == nil {
		return errors.New("renamer not configured")
	}

	opts := driving.RenameOptions{DryRun: renameDryRun}
	if cmd.Flags().Changed("prefix") {
		prefix := renamePrefix
		opts.Prefix = &prefix
	}
	if renameOrder != "" {
		order := domain.RenameOrder(renameOrder)
		if !order.IsValid() {
			return fmt.Errorf("invalid order %q (want one of %v)", renameOrder, domain.AllRenameOrders())
		}
		opts.Order = order
	}

	dir := filesystem.ResolvePath(args[0])
	result, err := renamer.RenameAll(commandContext(cmd), dir, opts)
	if result != nil {
		printBatch(cmd, dir, result)
	}
	if err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return batchError(result)
}
