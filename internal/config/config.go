package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SLIDECAST_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: SLIDECAST_THEME -> theme, etc.
	if err := k.Load(env.Provider("SLIDECAST_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SLIDECAST_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validThemes is the set of recognized theme values.
var validThemes = map[Theme]bool{
	ThemeLight: true,
	ThemeDark:  true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Theme == "" {
		return fmt.Errorf("theme is required")
	}
	if !validThemes[c.Theme] {
		return fmt.Errorf("invalid theme %q: must be light or dark", c.Theme)
	}

	if c.SwipeThreshold <= 0 {
		return fmt.Errorf("swipe_threshold must be positive")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if c.HistoryDB == "" {
		return fmt.Errorf("history_db is required")
	}

	return nil
}
