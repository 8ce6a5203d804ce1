package resources

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

// ParseHex converts a "#RRGGBB" hex string to an RGB triple with each
// channel in [0, 1].
func ParseHex(s string) (overlay.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return overlay.Color{}, fmt.Errorf("invalid hex color: %q", s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return overlay.Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return overlay.Color{
		Red:   float64(v>>16&0xFF) / 255,
		Green: float64(v>>8&0xFF) / 255,
		Blue:  float64(v&0xFF) / 255,
	}, nil
}
