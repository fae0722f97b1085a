package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// hostConfig is the TOML configuration of the demo host. Every field has a
// working default so the binary runs with no config file at all.
type hostConfig struct {
	Prompt string       `toml:"prompt"`
	MOTD   string       `toml:"motd"`
	Limits limitsConfig `toml:"limits"`
	Output outputConfig `toml:"output"`
	Audio  audioConfig  `toml:"audio"`
}

type limitsConfig struct {
	MaxCommands  int `toml:"max_commands"`
	MaxArgs      int `toml:"max_args"`
	LineLen      int `toml:"line_len"`
	HistoryDepth int `toml:"history_depth"`
}

type outputConfig struct {
	BatchSize       int `toml:"batch_size"`
	FlushIntervalMS int `toml:"flush_interval_ms"`
}

type audioConfig struct {
	Enabled bool `toml:"enabled"`
}

func defaultConfig() hostConfig {
	return hostConfig{
		Output: outputConfig{
			BatchSize:       64,
			FlushIntervalMS: 20,
		},
		Audio: audioConfig{Enabled: true},
	}
}

// loadConfig reads the TOML file at path over the defaults. An empty path
// returns the defaults; a missing or malformed file is an error so typos
// don't silently fall back.
func loadConfig(path string) (hostConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
