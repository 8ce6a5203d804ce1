package overlays

import (
	"strings"

	"github.com/slidecraft/deck-overlay-pipeline/internal/deck"
	"github.com/slidecraft/deck-overlay-pipeline/internal/docindex"
	"github.com/slidecraft/deck-overlay-pipeline/internal/resources"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

// OutlineOps emits, at most once per run, a bulleted text box on the
// second slide listing every section title in index order. It runs only
// when the second slide exists, its extracted title is exactly
// "Outline", and the deck has at least one section.
func OutlineOps(snap *deck.Snapshot, res *resources.Cache, idx *docindex.Index) []overlay.Op {
	if snap.SlideCount() < 2 {
		return nil
	}
	if idx.Titles[1] != outlineTitle {
		return nil
	}
	if len(idx.Sections) == 0 {
		return nil
	}

	sl := snap.Slides[1]
	id := overlay.ElementID(overlay.FamilyOutline, sl.ID, res.NextToken())
	accent := res.Color(resources.ColorAccent)

	return []overlay.Op{
		{CreateShape: &overlay.CreateShapeOp{
			ElementID:        id,
			SlideID:          sl.ID,
			Kind:             overlay.ShapeTextBox,
			Family:           overlay.FamilyOutline,
			Geometry:         overlay.Geometry{X: (snap.Width - outlineBoxWidth) / 2, Y: outlineBoxY, Width: outlineBoxWidth, Height: outlineBoxHeight},
			Transform:        res.Transform(resources.TransformIdentity),
			ContentAlignment: overlay.ContentMiddle,
		}},
		{InsertText: &overlay.InsertTextOp{
			ElementID: id,
			Text:      strings.Join(sectionTitles(idx.Sections), "\n"),
		}},
		{SetTextStyle: &overlay.SetTextStyleOp{
			ElementID: id,
			FontSize:  outlineFontSize,
			Color:     &accent,
		}},
		{SetParagraphStyle: &overlay.SetParagraphStyleOp{
			ElementID: id,
			Alignment: overlay.AlignCenter,
		}},
		{SetBulletFormat: &overlay.SetBulletFormatOp{
			ElementID: id,
			Preset:    overlay.BulletDisc,
		}},
	}
}
