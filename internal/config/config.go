// Package config loads the cinder.yaml settings shared by the command line
// tool and the language server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "cinder.yaml"

type Config struct {
	// Verbosity is the commonlog level: 0 is silent, 1 info, 2 debug.
	Verbosity int `yaml:"verbosity"`
	// LogFile sends logs to a file instead of stderr.
	LogFile string `yaml:"log_file"`
	// Color is nil when the file does not say.
	Color *bool `yaml:"color"`
	// Filename is the source file checked when none is given.
	Filename string `yaml:"filename"`
}

func Default() *Config {
	return &Config{}
}

// UseColor reports whether diagnostics should be colored.
func (c *Config) UseColor() bool {
	return c.Color == nil || *c.Color
}

// LogPath returns LogFile in the form commonlog.Configure takes.
func (c *Config) LogPath() *string {
	if c.LogFile == "" {
		return nil
	}
	return &c.LogFile
}

// Load reads path, or DefaultFile when path is empty. A missing default file
// yields the defaults; a missing explicit file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Verbosity < 0 {
		return nil, fmt.Errorf("invalid config: verbosity must not be negative, got %d", cfg.Verbosity)
	}
	return cfg, nil
}
