// Package config provides shared configuration utilities.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"schwarzschild/internal/sim"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LoadTuning returns the default simulation tuning, overlaid with any
// values set in the YAML file at path. An empty path yields the
// defaults unchanged.
func LoadTuning(path string) (sim.Tuning, error) {
	t := sim.DefaultTuning()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	return t, nil
}
