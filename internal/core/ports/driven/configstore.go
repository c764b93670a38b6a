package driven

// ConfigStore provides persistent application configuration.
// Keys use dot notation (e.g. "assistant.model").
type ConfigStore interface {
	// GetString retrieves a string value, "" when unset.
	GetString(key string) string

	// GetInt retrieves an integer value, 0 when unset.
	GetInt(key string) int

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Path returns the backing file path.
	Path() string
}
