// Package config loads the optional TOML configuration for the chesscore
// command-line front-end. The rules core itself takes no configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI settings.
type Config struct {
	Log   Log   `toml:"log"`
	Perft Perft `toml:"perft"`
}

// Log configures the shared logger.
type Log struct {
	Level string `toml:"level"`
}

// Perft configures perft defaults for the shell.
type Perft struct {
	DefaultDepth int `toml:"default_depth"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log:   Log{Level: "info"},
		Perft: Perft{DefaultDepth: 5},
	}
}

// Load reads a TOML configuration file, layered over the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if cfg.Perft.DefaultDepth < 1 {
		cfg.Perft.DefaultDepth = 1
	}
	return cfg, nil
}
