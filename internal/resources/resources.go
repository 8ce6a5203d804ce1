// Package resources holds the per-process cache of expensive presentation
// resources: palette color conversions, reusable transform presets, and
// element token generation.
//
// The cache is constructed explicitly and injected; there is no package
// singleton. A long-lived cache stays valid for any deck sharing its
// palette, and Clear gives the caller an explicit reset when the palette
// or target document changes.
package resources

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

// Transform preset names
const (
	TransformIdentity = "identity"
	TransformRotate90 = "rotate90"
)

// Cache memoizes color conversions and serves transform presets and
// unique element tokens. Safe for concurrent use across workflow runs.
type Cache struct {
	mu      sync.Mutex
	palette map[string]string
	colors  map[string]overlay.Color
}

// NewCache creates a cache for the given palette (semantic color name to
// hex string). A nil palette uses the built-in defaults.
func NewCache(palette map[string]string) *Cache {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Cache{
		palette: palette,
		colors:  make(map[string]overlay.Color),
	}
}

// EnsurePalette is idempotent initialization: a cache that already holds
// a palette is returned unchanged. Callers switching palettes must call
// Clear first.
func (c *Cache) EnsurePalette(palette map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.palette) > 0 {
		return
	}
	c.palette = palette
	c.colors = make(map[string]overlay.Color)
}

// Color converts the named palette color to an RGB triple, memoized.
// Unknown names and unparseable hex values fall back to black rather
// than failing the run.
func (c *Cache) Color(name string) overlay.Color {
	c.mu.Lock()
	defer c.mu.Unlock()

	if col, ok := c.colors[name]; ok {
		return col
	}

	col, err := ParseHex(c.palette[name])
	if err != nil {
		col = overlay.Color{}
	}
	c.colors[name] = col
	return col
}

// Transform returns the named affine-transform preset. Unknown names
// return the identity transform.
func (c *Cache) Transform(name string) overlay.Transform {
	switch name {
	case TransformRotate90:
		return overlay.Rotate90()
	default:
		return overlay.Identity()
	}
}

// NextToken returns a unique element token. Tokens are UUID-derived, so
// no request volume within or across runs can cause reuse.
func (c *Cache) NextToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Clear discards memoized state and the palette, forcing
// reinitialization on the next EnsurePalette.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.palette = nil
	c.colors = make(map[string]overlay.Color)
}
