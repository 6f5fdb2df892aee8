package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/smartfile/internal/connectors/filesystem"
	"github.com/custodia-labs/smartfile/internal/core/domain"
)

var (
	previewLines  int
	previewOutput string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview text files and images",
}

var previewTextCmd = &cobra.Command{
	Use:   "text PATH",
	Short: "Print the first lines of a text file",
	Long: `Prints up to N lines from the start of a text file with trailing
whitespace removed. Blank lines count towards N but are not printed.
The default N comes from the preview.lines setting.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreviewText,
}

var previewImageCmd = &cobra.Command{
	Use:   "image PATH",
	Short: "Write a thumbnail of an image",
	Long: `Decodes an image and writes a copy scaled to fit the configured
thumbnail size, preserving aspect ratio. Images already within the bound
are written unchanged. The output format follows the output extension.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreviewImage,
}

func init() {
	previewTextCmd.Flags().IntVarP(&previewLines, "lines", "n", 0, "number of lines to read (default from settings)")
	previewImageCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "output path (default <name>.thumb.png)")

	previewCmd.AddCommand(previewTextCmd)
	previewCmd.AddCommand(previewImageCmd)
	rootCmd.AddCommand(previewCmd)
}

func runPreviewText(cmd *cobra.Command, args []string) error {
	if previewer == nil {
		return errors.New("previewer not configured")
	}

	lines := previewLines
	if !cmd.Flags().Changed("lines") {
		lines = configuredPreviewLines()
	}

	text, err := previewer.PreviewText(filesystem.ResolvePath(args[0]), lines)
	if err != nil {
		return err
	}
	if text != "" {
		cmd.Println(text)
	}
	return nil
}

func configuredPreviewLines() int {
	if settingsService == nil {
		return domain.DefaultPreviewLines
	}
	settings, err := settingsService.Get()
	if err != nil {
		return domain.DefaultPreviewLines
	}
	return settings.Preview.Lines
}

func runPreviewImage(cmd *cobra.Command, args []string) error {
	if previewer == nil {
		return errors.New("previewer not configured")
	}

	path := filesystem.ResolvePath(args[0])
	thumb, err := previewer.PreviewImage(path)
	if err != nil {
		return err
	}

	out := previewOutput
	if out == "" {
		out = thumbnailPath(path)
	}

	format, err := imaging.FormatFromFilename(out)
	if err != nil {
		format = imaging.PNG
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}
	if err := imaging.Encode(f, thumb, format); err != nil {
		f.Close()
		return fmt.Errorf("encode thumbnail: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write thumbnail: %w", err)
	}

	b := thumb.Bounds()
	st := stylesFor(cmd.OutOrStdout())
	cmd.Printf("%s %s (%dx%d)\n", st.Success.Render("Wrote"), out, b.Dx(), b.Dy())
	return nil
}

// thumbnailPath returns dir/<stem>.thumb.png for path.
func thumbnailPath(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(path), stem+".thumb.png")
}
