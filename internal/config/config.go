// Package config loads the myxl client configuration from YAML with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all myxl configuration.
type Config struct {
	API    APIConfig    `yaml:"api"`
	State  StateConfig  `yaml:"state"`
	UI     UIConfig     `yaml:"ui"`
	Decoys DecoyCatalog `yaml:"decoys"`
}

// APIConfig configures the upstream carrier API client.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Timeout string `yaml:"timeout"`
}

// TimeoutDuration parses the configured timeout, falling back to the default
// when unset or unparsable.
func (a APIConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(a.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// StateConfig locates the local state directory (accounts, bookmarks).
type StateConfig struct {
	Dir string `yaml:"dir"`
}

// UIConfig carries terminal rendering geometry. Reserved is the column
// budget kept for text next to a quota bar; bar width is the remaining
// columns clamped to [Min, Max].
type UIConfig struct {
	PackageBar BarConfig `yaml:"package_bar"`
	ProfileBar BarConfig `yaml:"profile_bar"`
}

// BarConfig is the clamp geometry for one bar variant.
type BarConfig struct {
	Min      int `yaml:"min"`
	Max      int `yaml:"max"`
	Reserved int `yaml:"reserved"`
}

// DecoyCatalog maps a payment-flow category key ("balance", "qris", ...) to
// the option code of the low-cost package bundled into that flow.
type DecoyCatalog map[string]string

// Default returns the built-in configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		API: APIConfig{
			BaseURL: "https://api.myxl.xlaxiata.co.id",
			Timeout: "30s",
		},
		State: StateConfig{
			Dir: filepath.Join(home, ".myxl"),
		},
		UI: UIConfig{
			PackageBar: BarConfig{Min: 12, Max: 48, Reserved: 60},
			ProfileBar: BarConfig{Min: 12, Max: 60, Reserved: 40},
		},
		Decoys: DecoyCatalog{},
	}
}

// Load reads the config file at path, fills unset fields with defaults and
// applies environment overrides. A missing file is not an error; the
// defaults plus environment are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.fillDefaults()
	cfg.applyEnvOverrides()
	return cfg, nil
}

// DefaultPath is the conventional config location under the state dir.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".myxl", "config.yaml")
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.API.BaseURL == "" {
		c.API.BaseURL = def.API.BaseURL
	}
	if c.API.Timeout == "" {
		c.API.Timeout = def.API.Timeout
	}
	if c.State.Dir == "" {
		c.State.Dir = def.State.Dir
	}
	if c.UI.PackageBar == (BarConfig{}) {
		c.UI.PackageBar = def.UI.PackageBar
	}
	if c.UI.ProfileBar == (BarConfig{}) {
		c.UI.ProfileBar = def.UI.ProfileBar
	}
	if c.Decoys == nil {
		c.Decoys = DecoyCatalog{}
	}
}

// applyEnvOverrides lets the environment win over the file for the fields
// that vary per machine or are secret.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MYXL_API_KEY"); v != "" {
		c.API.APIKey = v
	}
	if v := os.Getenv("MYXL_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("MYXL_STATE_DIR"); v != "" {
		c.State.Dir = v
	}
}
