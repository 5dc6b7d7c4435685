package config

// DefaultIncludes are the deck document patterns picked up by default.
var DefaultIncludes = []string{
	"**/*.json",
	"**/*.yml",
	"**/*.yaml",
}

// DefaultExcludes are patterns skipped during deck discovery.
var DefaultExcludes = []string{
	"node_modules/**",
	".git/**",
	"dist/**",
	"build/**",
	"package-lock.json",
	"*.lock",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Theme:     ThemeLight,
		DecksDir:  "decks",
		OutputDir: "site",
		Port:      8080,
		Edit:      false,
		Open:      false,
		Include:   DefaultIncludes,
		Exclude:   DefaultExcludes,
	}
}
