// Package config reads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Settings holds the environment-driven knobs. The compression policy
// itself is compiled in; only the preset choice is exposed.
type Settings struct {
	// Preset names the compression preset (SHRINK_PRESET).
	Preset string `envconfig:"SHRINK_PRESET" default:"strict"`
	// Debug enables debug logging (DEBUG).
	Debug bool `envconfig:"DEBUG" default:"false"`
}

// Load reads Settings from the environment.
func Load() (Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return Settings{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return s, nil
}
