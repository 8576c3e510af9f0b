// Package config loads the default fleet configuration for the
// elevatorsim driver and sets up process-wide structured logging. Nothing
// in the dispatcher or cabin packages depends on it — a caller can build a
// Dispatcher directly with hardcoded values instead.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"elevatorcore/cabin"
)

// Config is the driver's default fleet setup, optionally overridden by
// command-line flags.
type Config struct {
	FleetSize   int                `yaml:"fleetSize"`
	FloorLimits *cabin.FloorLimits `yaml:"floorLimits"`
	SoleMode    bool               `yaml:"soleMode"`
	LogLevel    string             `yaml:"logLevel"`
}

// Default returns the hardcoded fallback configuration used when no file is
// given: a single-cabin fleet with no floor limits, sole mode off.
func Default() Config {
	return Config{
		FleetSize:   1,
		FloorLimits: nil,
		SoleMode:    false,
		LogLevel:    "info",
	}
}

// Load reads and decodes a YAML config file. Fields absent from the file
// keep their Default() value.
func Load(path string) (Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: opening %s: %w", path, err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return cfg, nil
}
