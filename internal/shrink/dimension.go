package shrink

import (
	"fmt"
	"strings"
)

// DimensionRule bounds the longest side of images whose path contains Key.
type DimensionRule struct {
	// Key is matched as a plain substring anywhere in the file path.
	Key string `yaml:"key"`
	// MaxDimension is the largest allowed width or height in pixels.
	MaxDimension int `yaml:"max"`
}

// DimensionPolicy maps path substrings to maximum pixel dimensions.
// Rules are evaluated in declaration order and the first match wins.
type DimensionPolicy struct {
	Rules   []DimensionRule `yaml:"rules"`
	Default int             `yaml:"default"`
}

// Resolve returns the maximum dimension for path.
//
// A key matches anywhere in the path, file name included, so
// "assets/hero/team-banner.png" resolves to whichever of "team" and "hero"
// comes first in Rules.
func (p DimensionPolicy) Resolve(path string) int {
	for _, rule := range p.Rules {
		if strings.Contains(path, rule.Key) {
			return rule.MaxDimension
		}
	}
	return p.Default
}

// Validate checks that every bound, including the default, is positive.
func (p DimensionPolicy) Validate() error {
	if p.Default <= 0 {
		return fmt.Errorf("default dimension must be positive, got %d", p.Default)
	}
	for _, rule := range p.Rules {
		if rule.Key == "" {
			return fmt.Errorf("dimension rule with empty key")
		}
		if rule.MaxDimension <= 0 {
			return fmt.Errorf("dimension for %q must be positive, got %d", rule.Key, rule.MaxDimension)
		}
	}
	return nil
}
