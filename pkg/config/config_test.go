package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/titianlabs/pagekit/pkg/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.DSN != "./data/pagekit.db" {
		t.Fatalf("dsn = %q", cfg.Database.DSN)
	}
	if cfg.Theme.Name != "nusantara" {
		t.Fatalf("theme = %q", cfg.Theme.Name)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("database:\n  dsn: /tmp/pages.db\ntheme:\n  name: lautan\n  variant: dark\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.DSN != "/tmp/pages.db" {
		t.Fatalf("dsn = %q", cfg.Database.DSN)
	}
	if cfg.Theme.Name != "lautan" || cfg.Theme.Variant != "dark" {
		t.Fatalf("theme = %q variant = %q", cfg.Theme.Name, cfg.Theme.Variant)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PAGEKIT_DB_DSN", ":memory:")
	t.Setenv("PAGEKIT_THEME", "bumi")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.DSN != ":memory:" {
		t.Fatalf("dsn = %q", cfg.Database.DSN)
	}
	if cfg.Theme.Name != "bumi" {
		t.Fatalf("theme = %q", cfg.Theme.Name)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("database: ["), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}
