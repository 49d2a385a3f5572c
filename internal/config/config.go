// Package config loads the nsbin CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/nsbin/internal/format"
	"github.com/joshuapare/nsbin/internal/fsync"
	"github.com/joshuapare/nsbin/internal/textenc"
)

const (
	// EnvPath overrides the config file location.
	EnvPath = "NSBIN_CONFIG"
	// DefaultDir is created under the user's home directory.
	DefaultDir = ".nsbin"
	// FileName is the config file name inside DefaultDir.
	FileName = "config.yaml"
)

// Config mirrors config.yaml.
type Config struct {
	// Encoding is a WHATWG label for the artifact's string encoding.
	Encoding string `yaml:"encoding" json:"encoding"`
	// Layout is "payload" or "inplace".
	Layout string `yaml:"layout" json:"layout"`
	// SizeField is "binary" or "hex".
	SizeField string `yaml:"size_field" json:"size_field"`
	// Backup copies the artifact to <artifact>.bak before writing.
	Backup bool `yaml:"backup" json:"backup"`
	// Flush is "auto", "full" or "none".
	Flush string `yaml:"flush" json:"flush"`

	Log LogConfig `yaml:"log" json:"log"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Pretty bool   `yaml:"pretty" json:"pretty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Encoding:  "utf-8",
		Layout:    format.LayoutPayload.String(),
		SizeField: format.SizeBinary.String(),
		Flush:     fsync.Auto.String(),
		Log: LogConfig{
			Level:  "warn",
			Pretty: true,
		},
	}
}

// DefaultPath returns $NSBIN_CONFIG, or ~/.nsbin/config.yaml. It returns ""
// when neither is available.
func DefaultPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultDir, FileName)
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks that every named setting resolves.
func (c *Config) Validate() error {
	var errs []error
	if _, err := textenc.Lookup(c.Encoding); err != nil {
		errs = append(errs, err)
	}
	if _, err := format.ParseLayout(c.Layout); err != nil {
		errs = append(errs, err)
	}
	if _, err := format.ParseSizeField(c.SizeField); err != nil {
		errs = append(errs, err)
	}
	if _, err := fsync.ParseMode(c.Flush); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
