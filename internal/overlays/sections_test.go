package overlays

import (
	"testing"

	"github.com/slidecraft/deck-overlay-pipeline/internal/deck"
	"github.com/slidecraft/deck-overlay-pipeline/internal/resources"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeSectionDeck has section markers at slide indexes 1, 3 and 5.
func threeSectionDeck() *deck.Snapshot {
	return snapshot(
		textSlide("s0", "", "Deck Title"),
		textSlide("s1", deck.LayoutSectionHeader, "Intro"),
		textSlide("s2", "", "Body"),
		textSlide("s3", deck.LayoutSectionHeader, "Methods"),
		textSlide("s4", "", "Body"),
		textSlide("s5", deck.LayoutSectionHeader, "Results"),
	)
}

func TestSectionOps(t *testing.T) {
	t.Run("middle section lists earlier and later titles", func(t *testing.T) {
		snap := threeSectionDeck()
		ops := SectionOps(snap, testCache(), index(snap))

		byFamily := map[string]string{}
		for _, op := range ops {
			if op.InsertText == nil {
				continue
			}
			for _, c := range creates(ops) {
				if c.ElementID == op.InsertText.ElementID && c.SlideID == "s3" {
					byFamily[c.Family] = op.InsertText.Text
				}
			}
		}

		assert.Equal(t, "Intro", byFamily[overlay.FamilyBefore])
		assert.Equal(t, "Results", byFamily[overlay.FamilyAfter])
		assert.Equal(t, "Section: 2", byFamily[overlay.FamilyLabel])
	})

	t.Run("first and last sections omit the empty box", func(t *testing.T) {
		snap := threeSectionDeck()
		ops := SectionOps(snap, testCache(), index(snap))

		families := map[string]map[string]bool{}
		for _, c := range creates(ops) {
			if families[c.SlideID] == nil {
				families[c.SlideID] = map[string]bool{}
			}
			families[c.SlideID][c.Family] = true
		}

		assert.False(t, families["s1"][overlay.FamilyBefore])
		assert.True(t, families["s1"][overlay.FamilyAfter])
		assert.True(t, families["s5"][overlay.FamilyBefore])
		assert.False(t, families["s5"][overlay.FamilyAfter])
	})

	t.Run("single section emits only the label box", func(t *testing.T) {
		snap := snapshot(
			textSlide("s0", "", "Deck Title"),
			textSlide("s1", deck.LayoutSectionHeader, "Only"),
		)
		ops := SectionOps(snap, testCache(), index(snap))

		cs := creates(ops)
		require.Len(t, cs, 1)
		assert.Equal(t, overlay.FamilyLabel, cs[0].Family)
		assert.Equal(t, []string{"Section: 1"}, insertedTexts(ops))
	})

	t.Run("label box is accent filled with bold white text", func(t *testing.T) {
		snap := snapshot(
			textSlide("s0", "", "Deck Title"),
			textSlide("s1", deck.LayoutSectionHeader, "Only"),
		)
		res := testCache()
		ops := SectionOps(snap, res, index(snap))

		var filled, styled bool
		for _, op := range ops {
			if op.UpdateShapeStyle != nil {
				filled = true
				require.NotNil(t, op.UpdateShapeStyle.Fill)
				assert.Equal(t, res.Color(resources.ColorAccent), *op.UpdateShapeStyle.Fill)
			}
			if op.SetTextStyle != nil {
				styled = true
				assert.True(t, op.SetTextStyle.Bold)
				require.NotNil(t, op.SetTextStyle.Color)
				assert.Equal(t, res.Color(resources.ColorWhite), *op.SetTextStyle.Color)
			}
		}
		assert.True(t, filled)
		assert.True(t, styled)
	})

	t.Run("no sections means no ops", func(t *testing.T) {
		snap := snapshot(
			textSlide("s0", "", "Deck Title"),
			textSlide("s1", "", "Body"),
		)
		assert.Empty(t, SectionOps(snap, testCache(), index(snap)))
	})
}
