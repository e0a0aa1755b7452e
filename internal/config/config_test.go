package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Months != 12 {
		t.Errorf("Months = %d, want default 12", cfg.General.Months)
	}
	if cfg.General.RentMode != "fair" {
		t.Errorf("RentMode = %q, want default fair", cfg.General.RentMode)
	}
	if cfg.Storage.Backend != "json" {
		t.Errorf("Backend = %q, want default json", cfg.Storage.Backend)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Months = 24
	cfg.Storage.Backend = "sqlite"
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.Months != 24 {
		t.Errorf("Months = %d, want 24", loaded.General.Months)
	}
	if loaded.Storage.Backend != "sqlite" {
		t.Errorf("Backend = %q, want sqlite", loaded.Storage.Backend)
	}
	if loaded.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want terminal", loaded.Appearance.Theme)
	}
}

func TestLoadMalformedConfigErrors(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "hearth", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("general = not toml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error for malformed config")
	}
}

func TestDocumentPathPerBackend(t *testing.T) {
	cfg := DefaultConfig()
	if got := filepath.Base(cfg.DocumentPath()); got != "household.json" {
		t.Errorf("json backend document = %q, want household.json", got)
	}

	cfg.Storage.Backend = "sqlite"
	if got := filepath.Base(cfg.DocumentPath()); got != "household.db" {
		t.Errorf("sqlite backend document = %q, want household.db", got)
	}

	cfg.Storage.Path = "/tmp/custom.json"
	if cfg.DocumentPath() != "/tmp/custom.json" {
		t.Errorf("explicit path not honored: %q", cfg.DocumentPath())
	}
}
