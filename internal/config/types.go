package config

// Theme identifies a built-in presentation theme.
type Theme string

const (
	ThemeLight    Theme = "light"
	ThemeDark     Theme = "dark"
	ThemeMidnight Theme = "midnight"
)

// Config is the top-level deckview configuration, corresponding to
// .deckview.yml.
type Config struct {
	Theme     Theme    `yaml:"theme" koanf:"theme"`
	DecksDir  string   `yaml:"decks_dir" koanf:"decks_dir"`
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	Port      int      `yaml:"port" koanf:"port"`
	Edit      bool     `yaml:"edit" koanf:"edit"`
	Open      bool     `yaml:"open" koanf:"open"`
	Include   []string `yaml:"include" koanf:"include"`
	Exclude   []string `yaml:"exclude" koanf:"exclude"`
}
