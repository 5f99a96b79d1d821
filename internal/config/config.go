// Package config loads the optional operator configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the operator-tunable surface. Everything here is presentation
// side; discovery and eject behavior are not configurable.
type Config struct {
	NoColor      bool `yaml:"no_color"`
	Ascii        bool `yaml:"ascii"`
	PauseSeconds int  `yaml:"pause_seconds"`
}

func Default() Config {
	return Config{PauseSeconds: 2}
}

// DefaultPath returns $XDG_CONFIG_HOME/ejectd/config.yaml, falling back to
// ~/.config/ejectd/config.yaml. Empty when no home directory is known.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "ejectd", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ejectd", "config.yaml")
}

// Load reads path over the defaults. A missing file yields defaults; an
// unreadable or malformed file is an error so a config the operator pointed
// at is never half-applied.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.PauseSeconds < 0 {
		cfg.PauseSeconds = 0
	}
	return cfg, nil
}
