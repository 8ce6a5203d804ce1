package overlays

import (
	"github.com/slidecraft/deck-overlay-pipeline/internal/deck"
	"github.com/slidecraft/deck-overlay-pipeline/internal/resources"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

// ProgressOps emits a bottom-anchored progress indicator on every slide
// except the first: a full-width track bar plus a foreground bar whose
// width is i/(N-1) of the page. Emits nothing for single-slide decks.
func ProgressOps(snap *deck.Snapshot, res *resources.Cache) []overlay.Op {
	n := snap.SlideCount()
	if n <= 1 {
		return nil
	}

	track := res.Color(resources.ColorTrack)
	fill := res.Color(resources.ColorAccent)
	y := snap.Height - progressBarHeight

	var ops []overlay.Op
	for i := 1; i < n; i++ {
		sl := snap.Slides[i]
		ratio := float64(i) / float64(n-1)

		ops = append(ops, barOps(res, sl.ID, overlay.FamilyProgressBG, overlay.LabelProgressBG,
			overlay.Geometry{X: 0, Y: y, Width: snap.Width, Height: progressBarHeight}, track)...)
		ops = append(ops, barOps(res, sl.ID, overlay.FamilyProgress, overlay.LabelProgress,
			overlay.Geometry{X: 0, Y: y, Width: ratio * snap.Width, Height: progressBarHeight}, fill)...)
	}
	return ops
}

// barOps creates one bar: solid fill with a hairline border in the same
// color so adjacent bars show no visible seam.
func barOps(res *resources.Cache, slideID, family, label string, geom overlay.Geometry, color overlay.Color) []overlay.Op {
	id := overlay.ElementID(family, slideID, res.NextToken())
	return []overlay.Op{
		{CreateShape: &overlay.CreateShapeOp{
			ElementID: id,
			SlideID:   slideID,
			Kind:      overlay.ShapeRect,
			Family:    family,
			Geometry:  geom,
			Transform: res.Transform(resources.TransformIdentity),
		}},
		{UpdateShapeStyle: &overlay.UpdateShapeStyleOp{
			ElementID:    id,
			Fill:         &color,
			BorderColor:  &color,
			BorderWeight: hairlineWeight,
		}},
		{SetElementLabel: &overlay.SetElementLabelOp{
			ElementID: id,
			Label:     label,
		}},
	}
}
