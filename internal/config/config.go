// Package config loads and saves hearth's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all hearth configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Storage    StorageConfig    `toml:"storage"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds planning preferences.
type GeneralConfig struct {
	// Months is the default savings projection horizon.
	Months int `toml:"months"`
	// RentMode is the default split policy: "fair" or "equal".
	RentMode string `toml:"rent_mode"`
}

// StorageConfig selects the household document backend.
type StorageConfig struct {
	// Backend is "json" or "sqlite".
	Backend string `toml:"backend"`
	// Path overrides the default document location.
	Path string `toml:"path,omitempty"`
}

// AppearanceConfig holds theme and locale settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
	// Locale is a BCP 47 tag used for currency formatting.
	Locale string `toml:"locale"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Months:   12,
			RentMode: "fair",
		},
		Storage: StorageConfig{
			Backend: "json",
		},
		Appearance: AppearanceConfig{
			Theme:  "flexoki-dark",
			Locale: "en-US",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hearth")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hearth")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory for household documents.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "hearth")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "hearth")
}

// DocumentPath resolves the household document location from config,
// falling back to the default data dir with a backend-appropriate name.
func (c Config) DocumentPath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	name := "household.json"
	if c.Storage.Backend == "sqlite" {
		name = "household.db"
	}
	return filepath.Join(DataDir(), name)
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
