package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/smartfile/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the defaults used by preview, metadata, organize and rename.

Settings are stored in config.toml inside the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Long: `Validates VALUE for KEY and saves it.

Keys:
  rename.prefix               prefix for renamed files (no path separators)
  rename.order                name, modified or native
  preview.lines               default number of lines for preview text
  preview.thumbnail_size      longest thumbnail side in pixels
  metadata.dispatch           extension or classifier
  classify.system_mime_table  true to consult the system MIME table
  history.enabled             true to record applied moves and renames`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	st := stylesFor(cmd.OutOrStdout())
	section := func(name string) {
		cmd.Println(st.Title.Render(name))
	}

	section("Rename")
	cmd.Printf("  Prefix:         %q\n", settings.Rename.Prefix)
	cmd.Printf("  Order:          %s\n", settings.Rename.Order.Description())
	cmd.Println()

	section("Preview")
	cmd.Printf("  Lines:          %d\n", settings.Preview.Lines)
	cmd.Printf("  Thumbnail size: %dpx\n", settings.Preview.ThumbnailSize)
	cmd.Println()

	section("Metadata")
	cmd.Printf("  Dispatch:       %s\n", settings.Metadata.Dispatch.Description())
	cmd.Println()

	section("Classify")
	cmd.Printf("  System MIME table: %s\n", enabledString(settings.Classify.SystemMIMETable))
	cmd.Println()

	section("History")
	cmd.Printf("  Recording:      %s\n", enabledString(settings.History.Enabled))

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := strings.TrimSpace(args[0]), args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			return fmt.Errorf("%w\nvalid keys: %s", err, strings.Join(settingsService.Keys(), ", "))
		}
		return err
	}

	st := stylesFor(cmd.OutOrStdout())
	cmd.Printf("%s %s = %s\n", st.Success.Render("Saved"), key, value)
	return nil
}

func enabledString(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
