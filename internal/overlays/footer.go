package overlays

import (
	"github.com/slidecraft/deck-overlay-pipeline/internal/deck"
	"github.com/slidecraft/deck-overlay-pipeline/internal/docindex"
	"github.com/slidecraft/deck-overlay-pipeline/internal/resources"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

// FooterOps emits, on every slide except the first, a rotated text box at
// the right page edge holding the deck title and a navigation link back
// to slide 0. The whole generator is a no-op when the deck has fewer
// than two slides or slide 0 has no extractable title.
func FooterOps(snap *deck.Snapshot, res *resources.Cache, idx *docindex.Index) []overlay.Op {
	n := snap.SlideCount()
	if n < 2 {
		return nil
	}
	title := idx.Titles[0]
	if title == "" {
		return nil
	}

	homeID := snap.Slides[0].ID
	muted := res.Color(resources.ColorMuted)

	// Rotation is about the box center; offsetting x by half of
	// width+height lands the rotated box flush against the right edge.
	x := snap.Width - (footerBoxWidth+footerBoxHeight)/2
	y := (snap.Height - footerBoxHeight) / 2

	var ops []overlay.Op
	for i := 1; i < n; i++ {
		sl := snap.Slides[i]
		id := overlay.ElementID(overlay.FamilyFooter, sl.ID, res.NextToken())

		ops = append(ops,
			overlay.Op{CreateShape: &overlay.CreateShapeOp{
				ElementID:        id,
				SlideID:          sl.ID,
				Kind:             overlay.ShapeTextBox,
				Family:           overlay.FamilyFooter,
				Geometry:         overlay.Geometry{X: x, Y: y, Width: footerBoxWidth, Height: footerBoxHeight},
				Transform:        res.Transform(resources.TransformRotate90),
				ContentAlignment: overlay.ContentMiddle,
			}},
			overlay.Op{InsertText: &overlay.InsertTextOp{
				ElementID: id,
				Text:      title,
			}},
			overlay.Op{SetTextStyle: &overlay.SetTextStyleOp{
				ElementID:   id,
				FontSize:    footerFontSize,
				Underline:   false,
				Color:       &muted,
				LinkSlideID: homeID,
			}},
			overlay.Op{SetParagraphStyle: &overlay.SetParagraphStyleOp{
				ElementID: id,
				Alignment: overlay.AlignCenter,
			}},
			overlay.Op{SetElementLabel: &overlay.SetElementLabelOp{
				ElementID: id,
				Label:     overlay.LabelMainTitle,
			}},
		)
	}
	return ops
}
