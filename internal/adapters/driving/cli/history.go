package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently applied moves and renames",
	Long: `Lists the moves and renames performed by organize and rename, newest
first. Dry runs are not recorded.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}
	if historyLimit < 0 {
		return fmt.Errorf("invalid limit %d", historyLimit)
	}

	entries, err := historyService.Recent(commandContext(cmd), historyLimit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No history recorded.")
		return nil
	}

	st := stylesFor(cmd.OutOrStdout())
	for _, e := range entries {
		cmd.Printf("%s  %-8s  %s -> %s  %s\n",
			e.AppliedAt.Local().Format(time.DateTime),
			e.Operation,
			e.Source,
			e.Destination,
			st.Muted.Render(shortID(e.RunID)),
		)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
