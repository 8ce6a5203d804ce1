package resources

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Semantic color names used by the overlay generators.
const (
	ColorAccent = "accent"
	ColorMuted  = "muted"
	ColorWhite  = "white"
	ColorTrack  = "track"
)

// paletteFile is the YAML shape of a palette override file.
type paletteFile struct {
	Colors map[string]string `yaml:"colors"`
}

// DefaultPalette returns the built-in palette.
func DefaultPalette() map[string]string {
	return map[string]string{
		ColorAccent: "#1E88E5",
		ColorMuted:  "#9E9E9E",
		ColorWhite:  "#FFFFFF",
		ColorTrack:  "#ECEFF1",
	}
}

// LoadPalette reads a YAML palette file and merges it over the defaults.
func LoadPalette(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette %s: %w", path, err)
	}

	var file paletteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse palette %s: %w", path, err)
	}

	palette := DefaultPalette()
	for name, hex := range file.Colors {
		palette[name] = hex
	}
	return palette, nil
}
