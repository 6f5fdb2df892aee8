package memory

import (
	"maps"
	"sync"

	"github.com/custodia-labs/smartfile/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory driven.ConfigStore with the same persistence
// rules as the TOML file store: Set persists immediately, Save persists the
// working values and Load discards anything unsaved.
//
// Settings and CLI tests run it with the smartfile keys rename.prefix,
// rename.order, preview.lines, preview.thumbnail_size, metadata.dispatch,
// classify.system_mime_table and history.enabled. Integers may be stored as
// int or as int64, the type TOML decodes them to.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
	saved  map[string]any
}

// NewConfigStore creates an empty store, as if the config file were missing.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		values: make(map[string]any),
		saved:  make(map[string]any),
	}
}

// Get returns the working value for key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

func (s *ConfigStore) GetString(key string) string {
	str, _ := s.lookup(key).(string)
	return str
}

func (s *ConfigStore) GetInt(key string) int {
	switch v := s.lookup(key).(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func (s *ConfigStore) GetBool(key string) bool {
	b, _ := s.lookup(key).(bool)
	return b
}

func (s *ConfigStore) lookup(key string) any {
	val, _ := s.Get(key)
	return val
}

// Set stores value under key and persists it.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.saved[key] = value
	return nil
}

// Save persists every working value.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = maps.Clone(s.values)
	return nil
}

// Load replaces the working values with the persisted ones.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = maps.Clone(s.saved)
	return nil
}

// Persisted returns a copy of the values a reload would see.
func (s *ConfigStore) Persisted() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.saved)
}

// Path returns ":memory:".
func (s *ConfigStore) Path() string {
	return ":memory:"
}
