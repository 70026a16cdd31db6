// Package config loads controller settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// #region duration
// Duration wraps time.Duration so TOML can express intervals as "1s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}
// #endregion duration

// #region config-struct
// Config holds everything the controller needs to run.
type Config struct {
	APIBaseURL   string   `toml:"api_base_url"`
	DatabasePath string   `toml:"database_path"`
	StorageKey   string   `toml:"storage_key"`
	SaveInterval Duration `toml:"save_interval"`
	DeviceScale  float64  `toml:"device_scale"`
}
// #endregion config-struct

// #region defaults
// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		APIBaseURL:   "http://localhost:8000/api",
		DatabasePath: "formpdf.db",
		StorageKey:   "a11yform",
		SaveInterval: Duration{time.Second},
		DeviceScale:  1,
	}
}
// #endregion defaults

// #region load
// Load reads the TOML file at path, layering it over the defaults. A
// missing file is not an error; the defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
// #endregion load

// #region validate
// Validate rejects settings the controller cannot run with.
func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.StorageKey == "" {
		return fmt.Errorf("storage_key must not be empty")
	}
	if c.SaveInterval.Duration <= 0 {
		return fmt.Errorf("save_interval must be positive")
	}
	if c.DeviceScale <= 0 {
		return fmt.Errorf("device_scale must be positive")
	}
	return nil
}
// #endregion validate
