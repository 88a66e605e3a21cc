package config

// Theme selects the chrome styling of generated presentations.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Config is the top-level slidecast configuration, corresponding to
// .slidecast.yml.
type Config struct {
	// OutputDir overrides the output location; empty means a directory named
	// after the input file, next to it.
	OutputDir      string  `yaml:"output_dir" koanf:"output_dir"`
	Theme          Theme   `yaml:"theme" koanf:"theme"`
	IncludeNotes   bool    `yaml:"include_notes" koanf:"include_notes"`
	Animations     bool    `yaml:"animations" koanf:"animations"`
	SwipeThreshold float64 `yaml:"swipe_threshold" koanf:"swipe_threshold"`
	Port           int     `yaml:"port" koanf:"port"`
	HistoryDB      string  `yaml:"history_db" koanf:"history_db"`
}
