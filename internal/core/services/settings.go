package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/ports/driven"
	"github.com/custodia-labs/smartfile/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyRenamePrefix     = "rename.prefix"
	KeyRenameOrder      = "rename.order"
	KeyPreviewLines     = "preview.lines"
	KeyThumbnailSize    = "preview.thumbnail_size"
	KeyMetadataDispatch = "metadata.dispatch"
	KeySystemMIMETable  = "classify.system_mime_table"
	KeyHistoryEnabled   = "history.enabled"
)

// settingKeys is the display order of the recognised keys.
var settingKeys = []string{
	KeyRenamePrefix,
	KeyRenameOrder,
	KeyPreviewLines,
	KeyThumbnailSize,
	KeyMetadataDispatch,
	KeySystemMIMETable,
	KeyHistoryEnabled,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid stored values fall back to their defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Rename: domain.RenameSettings{
			Prefix: s.getPrefix(defaults.Rename.Prefix),
			Order:  s.getRenameOrder(defaults.Rename.Order),
		},
		Preview: domain.PreviewSettings{
			Lines:         s.getPositiveInt(KeyPreviewLines, defaults.Preview.Lines),
			ThumbnailSize: s.getPositiveInt(KeyThumbnailSize, defaults.Preview.ThumbnailSize),
		},
		Metadata: domain.MetadataSettings{
			Dispatch: s.getDispatch(defaults.Metadata.Dispatch),
		},
		Classify: domain.ClassifySettings{
			SystemMIMETable: s.getBool(KeySystemMIMETable, defaults.Classify.SystemMIMETable),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(KeyHistoryEnabled, defaults.History.Enabled),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidArgument)
	}
	if !ValidPrefix(settings.Rename.Prefix) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, errBadPrefix)
	}
	if !settings.Rename.Order.IsValid() {
		return fmt.Errorf("%w: invalid rename order: %s", domain.ErrInvalidArgument, settings.Rename.Order)
	}
	if !settings.Metadata.Dispatch.IsValid() {
		return fmt.Errorf("%w: invalid metadata dispatch: %s", domain.ErrInvalidArgument, settings.Metadata.Dispatch)
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyRenamePrefix, settings.Rename.Prefix},
		{KeyRenameOrder, settings.Rename.Order.String()},
		{KeyPreviewLines, settings.Preview.Lines},
		{KeyThumbnailSize, settings.Preview.ThumbnailSize},
		{KeyMetadataDispatch, settings.Metadata.Dispatch.String()},
		{KeySystemMIMETable, settings.Classify.SystemMIMETable},
		{KeyHistoryEnabled, settings.History.Enabled},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Set parses and validates value for key, then persists it.
func (s *SettingsService) Set(key, value string) error {
	var parsed any

	switch key {
	case KeyRenamePrefix:
		if !ValidPrefix(value) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, errBadPrefix)
		}
		parsed = value
	case KeyRenameOrder:
		if !domain.RenameOrder(value).IsValid() {
			return fmt.Errorf("%w: invalid rename order %q (want one of %v)",
				domain.ErrInvalidArgument, value, domain.AllRenameOrders())
		}
		parsed = value
	case KeyMetadataDispatch:
		if !domain.MetadataDispatch(value).IsValid() {
			return fmt.Errorf("%w: invalid metadata dispatch %q (want one of %v)",
				domain.ErrInvalidArgument, value, domain.AllMetadataDispatches())
		}
		parsed = value
	case KeyPreviewLines, KeyThumbnailSize:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidArgument, key, value)
		}
		parsed = n
	case KeySystemMIMETable, KeyHistoryEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false, got %q", domain.ErrInvalidArgument, key, value)
		}
		parsed = b
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidArgument, key)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getPrefix(defaultVal string) string {
	val, ok := s.configStore.Get(KeyRenamePrefix)
	if !ok {
		return defaultVal
	}
	prefix, ok := val.(string)
	if !ok || !ValidPrefix(prefix) {
		return defaultVal
	}
	return prefix
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	val, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal
	}
	b, ok := val.(bool)
	if !ok {
		return defaultVal
	}
	return b
}

func (s *SettingsService) getRenameOrder(defaultVal domain.RenameOrder) domain.RenameOrder {
	order := domain.RenameOrder(s.configStore.GetString(KeyRenameOrder))
	if !order.IsValid() {
		return defaultVal
	}
	return order
}

func (s *SettingsService) getDispatch(defaultVal domain.MetadataDispatch) domain.MetadataDispatch {
	dispatch := domain.MetadataDispatch(s.configStore.GetString(KeyMetadataDispatch))
	if !dispatch.IsValid() {
		return defaultVal
	}
	return dispatch
}
