// Package config loads the project configuration file (pourbaix.yaml).
// Flags override file values; a missing file means defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/elchem/pourbaix/pkg/domain"
)

// DefaultPath is probed when no --config flag is given.
const DefaultPath = "pourbaix.yaml"

// Config is the full runtime configuration.
type Config struct {
	// Elements to process when the command line names none.
	Elements []string `yaml:"elements" json:"elements"`

	// EntriesDir holds the per-element JSON entry files.
	EntriesDir string `yaml:"entries_dir" json:"entries_dir"`
	// OutputDir receives the rendered PNG files.
	OutputDir string `yaml:"output_dir" json:"output_dir"`

	// Limits is the pH/potential window of the diagrams.
	Limits domain.Limits `yaml:"limits" json:"limits"`
	// Resolution is the grid cell count per axis.
	Resolution int `yaml:"resolution" json:"resolution"`
	// Concentration overrides the assumed ion concentration (mol/l)
	// for entries that do not declare one. Zero keeps the default.
	Concentration float64 `yaml:"concentration" json:"concentration"`

	MP    MPConfig    `yaml:"mp" json:"mp"`
	Redis RedisConfig `yaml:"redis" json:"redis"`
}

// MPConfig configures the Materials Project client used by fetch.
type MPConfig struct {
	// APIKey falls back to the MP_API_KEY environment variable.
	APIKey  string `yaml:"api_key" json:"api_key"`
	BaseURL string `yaml:"base_url" json:"base_url"`
}

// RedisConfig configures the optional fetch cache. An empty Addr
// disables it.
type RedisConfig struct {
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		EntriesDir: "pourbaix_entries",
		OutputDir:  "pourbaix_diagrams",
		Limits:     domain.DefaultLimits(),
	}
}

// Load reads the configuration at path. YAML by default, JSON accepted
// by extension. A missing file at the default path is not an error;
// an explicitly requested file must exist.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if cfg.EntriesDir == "" {
		cfg.EntriesDir = Default().EntriesDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = Default().OutputDir
	}
	if cfg.Limits == (domain.Limits{}) {
		cfg.Limits = domain.DefaultLimits()
	}
	if cfg.MP.APIKey == "" {
		cfg.MP.APIKey = os.Getenv("MP_API_KEY")
	}
	return cfg, nil
}
