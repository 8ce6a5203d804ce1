package overlays

import (
	"strings"
	"testing"

	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressOps(t *testing.T) {
	t.Run("two bars per slide after the first", func(t *testing.T) {
		snap := snapshot(
			textSlide("s0", "", "Title"),
			textSlide("s1", "", ""),
			textSlide("s2", "", ""),
			textSlide("s3", "", ""),
		)
		ops := ProgressOps(snap, testCache())

		cs := creates(ops)
		assert.Len(t, cs, 2*(snap.SlideCount()-1))

		// Never targets slide 0
		for _, c := range cs {
			assert.NotEqual(t, "s0", c.SlideID)
		}
	})

	t.Run("single slide deck emits nothing", func(t *testing.T) {
		assert.Empty(t, ProgressOps(snapshot(textSlide("s0", "", "Title")), testCache()))
	})

	t.Run("empty deck emits nothing", func(t *testing.T) {
		assert.Empty(t, ProgressOps(snapshot(), testCache()))
	})

	t.Run("foreground width follows slide ratio", func(t *testing.T) {
		snap := snapshot(
			textSlide("s0", "", "Title"),
			textSlide("s1", "", ""),
			textSlide("s2", "", ""),
		)
		ops := ProgressOps(snap, testCache())

		var fg []*overlay.CreateShapeOp
		for _, c := range creates(ops) {
			if c.Family == overlay.FamilyProgress {
				fg = append(fg, c)
			}
		}
		require.Len(t, fg, 2)
		assert.InDelta(t, snap.Width*0.5, fg[0].Geometry.Width, 1e-9)
		assert.InDelta(t, snap.Width, fg[1].Geometry.Width, 1e-9)

		// Bottom-anchored
		assert.Equal(t, snap.Height-progressBarHeight, fg[0].Geometry.Y)
	})

	t.Run("border matches fill to hide seams", func(t *testing.T) {
		snap := snapshot(textSlide("s0", "", "Title"), textSlide("s1", "", ""))
		ops := ProgressOps(snap, testCache())

		for _, op := range ops {
			if op.UpdateShapeStyle == nil {
				continue
			}
			require.NotNil(t, op.UpdateShapeStyle.Fill)
			require.NotNil(t, op.UpdateShapeStyle.BorderColor)
			assert.Equal(t, *op.UpdateShapeStyle.Fill, *op.UpdateShapeStyle.BorderColor)
		}
	})

	t.Run("element IDs follow the family convention", func(t *testing.T) {
		snap := snapshot(textSlide("s0", "", "Title"), textSlide("s1", "", ""))
		for _, c := range creates(ProgressOps(snap, testCache())) {
			prefix := c.Family + "_" + c.SlideID + "_"
			assert.True(t, strings.HasPrefix(c.ElementID, prefix), "id %q lacks prefix %q", c.ElementID, prefix)
		}
	})
}
