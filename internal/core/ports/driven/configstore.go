package driven

// ConfigStore is a flat key/value view of the user's configuration file.
// Keys use dot notation matching TOML tables, e.g. "rename.prefix".
type ConfigStore interface {
	// Get returns the raw value for key and whether it exists.
	Get(key string) (any, bool)

	// GetString returns "" when key is missing or not a string.
	GetString(key string) string

	// GetInt returns 0 when key is missing or not an integer.
	GetInt(key string) int

	// GetBool returns false when key is missing or not a boolean.
	GetBool(key string) bool

	// Set stores value under key and persists immediately.
	Set(key string, value any) error

	// Save persists the current values.
	Save() error

	// Load re-reads values from storage.
	Load() error

	// Path returns the backing file path, or ":memory:" for in-memory stores.
	Path() string
}
