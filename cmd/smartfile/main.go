// Command smartfile classifies, inspects, previews, organises and renames
// local files.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/custodia-labs/smartfile/internal/adapters/driven/config/file"
	"github.com/custodia-labs/smartfile/internal/adapters/driven/filetimes"
	"github.com/custodia-labs/smartfile/internal/adapters/driven/mimetypes"
	"github.com/custodia-labs/smartfile/internal/adapters/driven/pdf"
	"github.com/custodia-labs/smartfile/internal/adapters/driven/raster"
	"github.com/custodia-labs/smartfile/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/smartfile/internal/adapters/driving/cli"
	"github.com/custodia-labs/smartfile/internal/core/services"
	"github.com/custodia-labs/smartfile/internal/logger"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildServices wires the adapters and services rooted at configDir.
func buildServices(configDir string) (*cli.Services, func() error, error) {
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve config directory: %w", err)
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger.Debug("config: %s", configStore.Path())

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("read settings: %w", err)
	}

	// Opened on first Record or List, so only organize, rename and history
	// touch the database.
	dataDir := filepath.Join(configDir, "data")
	store := sqlite.NewLazyStore(dataDir)
	logger.Debug("history: %s", dataDir)

	fs := afero.NewOsFs()
	images := raster.New()
	classifier := services.NewClassifierService(fs,
		mimetypes.NewTable(settings.Classify.SystemMIMETable), mimetypes.NewSniffer())
	history := services.NewHistoryService(store, settings.History.Enabled)

	svc := &cli.Services{
		Classifier: classifier,
		MetadataExtractor: services.NewMetadataService(fs, images, pdf.New(), filetimes.New(fs),
			classifier, settings.Metadata.Dispatch),
		Previewer: services.NewPreviewService(fs, images, settings.Preview.ThumbnailSize),
		Organizer: services.NewOrganizerService(fs, classifier, history),
		Renamer:   services.NewRenamerService(fs, settings.Rename, history),
		History:   history,
		Settings:  settingsService,
	}

	return svc, store.Close, nil
}
