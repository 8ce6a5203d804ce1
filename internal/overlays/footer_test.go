package overlays

import (
	"testing"

	"github.com/slidecraft/deck-overlay-pipeline/internal/deck"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFooterOps(t *testing.T) {
	t.Run("one footer per slide after the first", func(t *testing.T) {
		snap := snapshot(
			textSlide("s0", "", "Deck Title"),
			textSlide("s1", "", ""),
			textSlide("s2", "", ""),
		)
		ops := FooterOps(snap, testCache(), index(snap))

		cs := creates(ops)
		require.Len(t, cs, 2)
		for _, c := range cs {
			assert.Equal(t, overlay.FamilyFooter, c.Family)
			assert.Equal(t, overlay.ShapeTextBox, c.Kind)
			assert.Equal(t, overlay.ContentMiddle, c.ContentAlignment)
			// Rotated 90 degrees
			assert.Equal(t, overlay.Rotate90(), c.Transform)
		}

		assert.Equal(t, []string{"Deck Title", "Deck Title"}, insertedTexts(ops))
	})

	t.Run("no-op when slide 0 has no text", func(t *testing.T) {
		// All-or-nothing: slideCount >= 2 alone is not enough
		snap := snapshot(
			deck.SlideRef{ID: "s0"},
			textSlide("s1", "", "Body"),
			textSlide("s2", "", "Body"),
		)
		assert.Empty(t, FooterOps(snap, testCache(), index(snap)))
	})

	t.Run("no-op for single slide deck", func(t *testing.T) {
		snap := snapshot(textSlide("s0", "", "Deck Title"))
		assert.Empty(t, FooterOps(snap, testCache(), index(snap)))
	})

	t.Run("links back to slide 0 without underline", func(t *testing.T) {
		snap := snapshot(
			textSlide("s0", "", "Deck Title"),
			textSlide("s1", "", ""),
		)
		ops := FooterOps(snap, testCache(), index(snap))

		var styled bool
		for _, op := range ops {
			if op.SetTextStyle == nil {
				continue
			}
			styled = true
			assert.Equal(t, "s0", op.SetTextStyle.LinkSlideID)
			assert.False(t, op.SetTextStyle.Underline)
			assert.Equal(t, footerFontSize, op.SetTextStyle.FontSize)
		}
		assert.True(t, styled)
	})

	t.Run("tagged with the reserved label", func(t *testing.T) {
		snap := snapshot(
			textSlide("s0", "", "Deck Title"),
			textSlide("s1", "", ""),
		)
		ops := FooterOps(snap, testCache(), index(snap))

		var labels []string
		for _, op := range ops {
			if op.SetElementLabel != nil {
				labels = append(labels, op.SetElementLabel.Label)
			}
		}
		assert.Equal(t, []string{overlay.LabelMainTitle}, labels)
	})
}
