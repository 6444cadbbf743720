package config

import "os"

// Config holds the application configuration.
type Config struct {
	// ScenarioPath overrides the embedded scenario when set.
	ScenarioPath string
	// SpritePath overrides the built-in boat glyphs when set.
	SpritePath string
}

// Load reads the configuration from environment variables. Every setting is
// optional; empty values select the built-in defaults.
func Load() *Config {
	return &Config{
		ScenarioPath: os.Getenv("UBOAT_SCENARIO"),
		SpritePath:   os.Getenv("UBOAT_SPRITE"),
	}
}
