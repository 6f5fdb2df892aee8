package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/smartfile/internal/connectors/filesystem"
)

var classifyCmd = &cobra.Command{
	Use:   "classify PATH...",
	Short: "Detect the MIME type of files",
	Long: `Detects the MIME type of each file, first from its extension and then
from its leading bytes. Files that match neither are reported as unknown.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	if classifier == nil {
		return errors.New("classifier not configured")
	}

	st := stylesFor(cmd.OutOrStdout())

	var errs []error
	for _, arg := range args {
		path := filesystem.ResolvePath(arg)

		mimeType, ok, err := classifier.Classify(path)
		if err != nil {
			cmd.PrintErrf("%s: %v\n", arg, err)
			errs = append(errs, err)
			continue
		}
		if !ok {
			cmd.Printf("%s: %s\n", arg, st.Muted.Render("unknown"))
			continue
		}
		cmd.Printf("%s: %s\n", arg, st.Success.Render(mimeType.String()))
	}

	if len(errs) > 0 {
		return fmt.Errorf("classify failed for %d of %d paths: %w", len(errs), len(args), errors.Join(errs...))
	}
	return nil
}
