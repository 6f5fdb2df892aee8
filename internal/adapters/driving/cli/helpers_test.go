package cli

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/smartfile/internal/adapters/driven/filetimes"
	"github.com/custodia-labs/smartfile/internal/adapters/driven/mimetypes"
	"github.com/custodia-labs/smartfile/internal/adapters/driven/pdf"
	"github.com/custodia-labs/smartfile/internal/adapters/driven/raster"
	"github.com/custodia-labs/smartfile/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/services"
	"github.com/custodia-labs/smartfile/internal/logger"
)

// testServices wires the real services over the OS filesystem with
// in-memory stores.
func testServices() *Services {
	fs := afero.NewOsFs()
	classify := services.NewClassifierService(fs, mimetypes.NewTable(false), mimetypes.NewSniffer())
	images := raster.New()
	history := services.NewHistoryService(memory.NewHistoryStore(), true)

	return &Services{
		Classifier: classify,
		MetadataExtractor: services.NewMetadataService(fs, images, pdf.New(), filetimes.New(fs), classify,
			domain.MetadataDispatchExtension),
		Previewer: services.NewPreviewService(fs, images, domain.DefaultThumbnailSize),
		Organizer: services.NewOrganizerService(fs, classify, history),
		Renamer:   services.NewRenamerService(fs, domain.DefaultAppSettings().Rename, history),
		History:   history,
		Settings:  services.NewSettingsService(memory.NewConfigStore()),
	}
}

// setupTestServices installs fresh services and returns a restore function.
func setupTestServices() func() {
	old := &Services{
		Classifier:        classifier,
		MetadataExtractor: metadataExtractor,
		Previewer:         previewer,
		Organizer:         organizer,
		Renamer:           renamer,
		History:           historyService,
		Settings:          settingsService,
	}
	oldFactory := serviceFactory
	serviceFactory = nil
	SetServices(testServices())

	return func() {
		SetServices(old)
		serviceFactory = oldFactory
	}
}

// resetFlags restores every flag to its default so runs do not leak into
// each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCommand executes the root command with args and returns its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	logger.SetOutput(io.Discard)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		logger.SetOutput(os.Stderr)
		logger.SetVerbose(false)
	})

	err := Execute()
	return buf.String(), err
}

func writeTestFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func pngFixture(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
