package config

// DefaultHistoryDB is the conversion history database path, relative to the
// working directory unless overridden.
const DefaultHistoryDB = ".slidecast/history.db"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Theme:          ThemeLight,
		Animations:     true,
		SwipeThreshold: 50,
		Port:           8080,
		HistoryDB:      DefaultHistoryDB,
	}
}
