package overlays

import (
	"strconv"
	"strings"

	"github.com/slidecraft/deck-overlay-pipeline/internal/deck"
	"github.com/slidecraft/deck-overlay-pipeline/internal/docindex"
	"github.com/slidecraft/deck-overlay-pipeline/internal/resources"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

// SectionOps annotates every section-marker slide: a "before" box listing
// the titles of earlier sections, an "after" box listing the titles of
// later ones, and a numbered label box. Before/after boxes are emitted
// only when their title slice is non-empty; the label box always is.
func SectionOps(snap *deck.Snapshot, res *resources.Cache, idx *docindex.Index) []overlay.Op {
	var ops []overlay.Op
	for k, entry := range idx.Sections {
		before := sectionTitles(idx.Sections[:k])
		after := sectionTitles(idx.Sections[k+1:])

		boxX := (snap.Width - sectionBoxWidth) / 2
		if len(before) > 0 {
			ops = append(ops, listBoxOps(res, entry.SlideID, overlay.FamilyBefore,
				overlay.Geometry{X: boxX, Y: beforeBoxY, Width: sectionBoxWidth, Height: sectionBoxHeight},
				strings.Join(before, "\n"))...)
		}
		if len(after) > 0 {
			ops = append(ops, listBoxOps(res, entry.SlideID, overlay.FamilyAfter,
				overlay.Geometry{X: boxX, Y: snap.Height - afterBoxMarginB, Width: sectionBoxWidth, Height: sectionBoxHeight},
				strings.Join(after, "\n"))...)
		}

		ops = append(ops, labelBoxOps(snap, res, entry.SlideID, k+1)...)
	}
	return ops
}

func sectionTitles(entries []docindex.SectionEntry) []string {
	var titles []string
	for _, e := range entries {
		titles = append(titles, e.Title)
	}
	return titles
}

// listBoxOps builds one before/after box: muted gray, normal weight,
// centered text.
func listBoxOps(res *resources.Cache, slideID, family string, geom overlay.Geometry, text string) []overlay.Op {
	id := overlay.ElementID(family, slideID, res.NextToken())
	muted := res.Color(resources.ColorMuted)
	return []overlay.Op{
		{CreateShape: &overlay.CreateShapeOp{
			ElementID:        id,
			SlideID:          slideID,
			Kind:             overlay.ShapeTextBox,
			Family:           family,
			Geometry:         geom,
			Transform:        res.Transform(resources.TransformIdentity),
			ContentAlignment: overlay.ContentMiddle,
		}},
		{InsertText: &overlay.InsertTextOp{ElementID: id, Text: text}},
		{SetTextStyle: &overlay.SetTextStyleOp{
			ElementID: id,
			FontSize:  sectionListFontSize,
			Color:     &muted,
		}},
		{SetParagraphStyle: &overlay.SetParagraphStyleOp{
			ElementID: id,
			Alignment: overlay.AlignCenter,
		}},
	}
}

// labelBoxOps builds the numbered label box: accent fill, bold white
// centered text reading "Section: <n>".
func labelBoxOps(snap *deck.Snapshot, res *resources.Cache, slideID string, number int) []overlay.Op {
	id := overlay.ElementID(overlay.FamilyLabel, slideID, res.NextToken())
	accent := res.Color(resources.ColorAccent)
	white := res.Color(resources.ColorWhite)
	return []overlay.Op{
		{CreateShape: &overlay.CreateShapeOp{
			ElementID:        id,
			SlideID:          slideID,
			Kind:             overlay.ShapeTextBox,
			Family:           overlay.FamilyLabel,
			Geometry:         overlay.Geometry{X: snap.Width - labelBoxMarginR, Y: labelBoxY, Width: labelBoxWidth, Height: labelBoxHeight},
			Transform:        res.Transform(resources.TransformIdentity),
			ContentAlignment: overlay.ContentMiddle,
		}},
		{UpdateShapeStyle: &overlay.UpdateShapeStyleOp{
			ElementID: id,
			Fill:      &accent,
		}},
		{InsertText: &overlay.InsertTextOp{
			ElementID: id,
			Text:      "Section: " + strconv.Itoa(number),
		}},
		{SetTextStyle: &overlay.SetTextStyleOp{
			ElementID: id,
			FontSize:  labelFontSize,
			Bold:      true,
			Color:     &white,
		}},
		{SetParagraphStyle: &overlay.SetParagraphStyleOp{
			ElementID: id,
			Alignment: overlay.AlignCenter,
		}},
	}
}
