// Package cli provides the smartfile command line interface.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/smartfile/internal/core/ports/driving"
	"github.com/custodia-labs/smartfile/internal/logger"
)

var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
)

// Services injected by the entry point or by tests.
var (
	classifier        driving.Classifier
	metadataExtractor driving.MetadataExtractor
	previewer         driving.Previewer
	organizer         driving.Organizer
	renamer           driving.Renamer
	historyService    driving.HistoryService
	settingsService   driving.SettingsService
)

// Services bundles the driving ports the commands call.
type Services struct {
	Classifier        driving.Classifier
	MetadataExtractor driving.MetadataExtractor
	Previewer         driving.Previewer
	Organizer         driving.Organizer
	Renamer           driving.Renamer
	History           driving.HistoryService
	Settings          driving.SettingsService
}

// ServiceFactory builds the services once flags are parsed. The returned
// cleanup function runs after the command finishes.
type ServiceFactory func(configDir string) (*Services, func() error, error)

var (
	serviceFactory ServiceFactory
	cleanup        func() error
)

var rootCmd = &cobra.Command{
	Use:   "smartfile",
	Short: "Classify, inspect, preview, organise and rename local files",
	Long: `smartfile works on files in local directories.

It detects file types, extracts image, PDF and file metadata, renders
text and thumbnail previews, sorts a directory into per-category folders
and bulk-renames files with a prefix and index.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"directory holding config.toml and data/ (default ~/.smartfile)")
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	classifier = s.Classifier
	metadataExtractor = s.MetadataExtractor
	previewer = s.Previewer
	organizer = s.Organizer
	renamer = s.Renamer
	historyService = s.History
	settingsService = s.Settings
}

// SetServiceFactory registers a factory run before every command.
// It takes precedence over services injected with SetServices.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if cleanup != nil {
		if cerr := cleanup(); cerr != nil {
			logger.Warn("closing services: %v", cerr)
		}
		cleanup = nil
	}
	return err
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if serviceFactory == nil {
		return nil
	}

	svc, closeFn, err := serviceFactory(configDir)
	if err != nil {
		return err
	}
	if svc == nil {
		return errors.New("service factory returned no services")
	}
	SetServices(svc)
	cleanup = closeFn
	return nil
}
