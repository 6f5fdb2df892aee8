package cli

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/smartfile/internal/connectors/filesystem"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata PATH",
	Short: "Show metadata for a file",
	Long: `Shows format, size, colour mode and EXIF summary for JPEG and PNG images,
author and page count for PDF documents, and size and creation time for
any other file.`,
	Args: cobra.ExactArgs(1),
	RunE: runMetadata,
}

func init() {
	rootCmd.AddCommand(metadataCmd)
}

func runMetadata(cmd *cobra.Command, args []string) error {
	if metadataExtractor == nil {
		return errors.New("metadata extractor not configured")
	}

	meta, err := metadataExtractor.Extract(filesystem.ResolvePath(args[0]))
	if err != nil {
		return err
	}

	st := stylesFor(cmd.OutOrStdout())
	cmd.Println(st.Title.Render(fmt.Sprintf("%s (%s)", args[0], meta.Kind)))

	fields := meta.Fields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		cmd.Printf("  %-14s %s\n", k+":", formatField(fields[k]))
	}
	return nil
}

func formatField(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case time.Time:
		return val.Format(time.RFC3339)
	case [2]int:
		return fmt.Sprintf("%dx%d", val[0], val[1])
	default:
		return fmt.Sprint(val)
	}
}
