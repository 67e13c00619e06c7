package shrink

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultPresetName is used when no preset is configured.
const DefaultPresetName = "strict"

//go:embed presets.yaml
var presetsYAML []byte

type presetFile struct {
	Presets []Options `yaml:"presets"`
}

func loadPresets() ([]Options, error) {
	var file presetFile
	if err := yaml.Unmarshal(presetsYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	for _, p := range file.Presets {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("preset %s: %w", p.Name, err)
		}
	}
	return file.Presets, nil
}

// Preset returns the named compression preset.
func Preset(name string) (Options, error) {
	presets, err := loadPresets()
	if err != nil {
		return Options{}, err
	}
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Options{}, fmt.Errorf("unknown preset %q (available: %v)", name, PresetNames())
}

// PresetNames lists the compiled-in presets in declaration order.
func PresetNames() []string {
	presets, err := loadPresets()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.Name)
	}
	return names
}
