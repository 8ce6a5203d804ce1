package resources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	t.Run("accent blue", func(t *testing.T) {
		col, err := ParseHex("#1E88E5")
		require.NoError(t, err)
		assert.InDelta(t, 30.0/255, col.Red, 1e-9)
		assert.InDelta(t, 136.0/255, col.Green, 1e-9)
		assert.InDelta(t, 229.0/255, col.Blue, 1e-9)
	})

	t.Run("without hash prefix", func(t *testing.T) {
		col, err := ParseHex("FFFFFF")
		require.NoError(t, err)
		assert.Equal(t, 1.0, col.Red)
		assert.Equal(t, 1.0, col.Green)
		assert.Equal(t, 1.0, col.Blue)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := ParseHex("not-a-color")
		assert.Error(t, err)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := ParseHex("#FFF")
		assert.Error(t, err)
	})
}

func TestCacheColor(t *testing.T) {
	t.Run("falls back to black on bad hex", func(t *testing.T) {
		c := NewCache(map[string]string{"broken": "not-a-color"})
		col := c.Color("broken")
		assert.Equal(t, 0.0, col.Red)
		assert.Equal(t, 0.0, col.Green)
		assert.Equal(t, 0.0, col.Blue)
	})

	t.Run("falls back to black on unknown name", func(t *testing.T) {
		c := NewCache(DefaultPalette())
		col := c.Color("no-such-color")
		assert.Equal(t, 0.0, col.Red)
	})

	t.Run("memoizes conversions", func(t *testing.T) {
		c := NewCache(DefaultPalette())
		first := c.Color(ColorAccent)
		// Mutating the palette after the first lookup must not change
		// the memoized result
		c.palette[ColorAccent] = "#000000"
		second := c.Color(ColorAccent)
		assert.Equal(t, first, second)
	})
}

func TestEnsurePalette(t *testing.T) {
	c := NewCache(map[string]string{"accent": "#112233"})
	before := c.Color("accent")

	// Second initialization on a populated cache is a no-op
	c.EnsurePalette(map[string]string{"accent": "#FFFFFF"})
	assert.Equal(t, before, c.Color("accent"))

	// After Clear the next EnsurePalette takes effect
	c.Clear()
	c.EnsurePalette(map[string]string{"accent": "#FFFFFF"})
	assert.Equal(t, 1.0, c.Color("accent").Red)
}

func TestTransformPresets(t *testing.T) {
	c := NewCache(nil)

	ident := c.Transform(TransformIdentity)
	assert.Equal(t, 1.0, ident.ScaleX)
	assert.Equal(t, 1.0, ident.ScaleY)
	assert.Equal(t, 0.0, ident.ShearX)

	rot := c.Transform(TransformRotate90)
	assert.Equal(t, 0.0, rot.ScaleX)
	assert.Equal(t, 0.0, rot.ScaleY)
	assert.Equal(t, -1.0, rot.ShearX)
	assert.Equal(t, 1.0, rot.ShearY)

	// Unknown preset names resolve to identity
	assert.Equal(t, ident, c.Transform("no-such-preset"))
}

func TestNextTokenUnique(t *testing.T) {
	c := NewCache(nil)
	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		tok := c.NextToken()
		require.False(t, seen[tok], "token repeated: %s", tok)
		seen[tok] = true
	}
}

func TestLoadPalette(t *testing.T) {
	t.Run("merges over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "palette.yaml")
		require.NoError(t, os.WriteFile(path, []byte("colors:\n  accent: \"#FF0000\"\n"), 0644))

		palette, err := LoadPalette(path)
		require.NoError(t, err)
		assert.Equal(t, "#FF0000", palette[ColorAccent])
		assert.Equal(t, DefaultPalette()[ColorMuted], palette[ColorMuted])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPalette(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
