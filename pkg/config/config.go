// Package config loads the application configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Theme    ThemeConfig    `yaml:"theme"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type ThemeConfig struct {
	// Dir holds theme manifests; empty disables theming.
	Dir     string `yaml:"dir"`
	Name    string `yaml:"name"`
	Variant string `yaml:"variant"`
}

func defaults() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN: "./data/pagekit.db",
		},
		Theme: ThemeConfig{
			Name:    "nusantara",
			Variant: "default",
		},
	}
}

// Load reads configuration from path. A missing file is not an error; the
// defaults apply and environment variables still override. Environment keys:
// PAGEKIT_DB_DSN, PAGEKIT_THEME_DIR, PAGEKIT_THEME, PAGEKIT_THEME_VARIANT.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// fall through to defaults
		default:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if dsn := os.Getenv("PAGEKIT_DB_DSN"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if dir := os.Getenv("PAGEKIT_THEME_DIR"); dir != "" {
		cfg.Theme.Dir = dir
	}
	if name := os.Getenv("PAGEKIT_THEME"); name != "" {
		cfg.Theme.Name = name
	}
	if variant := os.Getenv("PAGEKIT_THEME_VARIANT"); variant != "" {
		cfg.Theme.Variant = variant
	}

	return cfg, nil
}
