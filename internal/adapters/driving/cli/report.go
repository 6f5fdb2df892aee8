package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/smartfile/internal/core/domain"
)

// printBatch writes one line per applied, skipped and failed item followed
// by a summary line.
func printBatch(cmd *cobra.Command, dir string, result *domain.BatchResult) {
	st := stylesFor(cmd.OutOrStdout())

	var verb string
	switch {
	case result.Operation == domain.OperationRename && result.DryRun:
		verb = "Would rename"
	case result.Operation == domain.OperationRename:
		verb = "Renamed"
	case result.DryRun:
		verb = "Would move"
	default:
		verb = "Moved"
	}

	for _, a := range result.Applied {
		cmd.Printf("%s %s -> %s\n", st.Success.Render(verb), relTo(dir, a.Source), relTo(dir, a.Destination))
	}
	for _, s := range result.Skipped {
		cmd.Printf("%s %s (%s)\n", st.Muted.Render("Skipped"), relTo(dir, s.Path), s.Reason)
	}
	for _, f := range result.Failed {
		cmd.Printf("%s %s: %v\n", st.Error.Render("Failed"), relTo(dir, f.Path), f.Err)
	}

	summary := fmt.Sprintf("%d applied, %d skipped, %d failed",
		len(result.Applied), len(result.Skipped), len(result.Failed))
	if result.DryRun {
		summary += " (dry run)"
	}
	cmd.Println(st.Subtitle.Render(summary))
}

// batchError reports failed items as a command error so the exit status
// reflects them.
func batchError(result *domain.BatchResult) error {
	if result == nil || !result.HasFailures() {
		return nil
	}
	return fmt.Errorf("%s: %d of %d items failed",
		result.Operation, len(result.Failed), len(result.Failed)+len(result.Applied))
}

func relTo(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return path
	}
	return rel
}
