package overlays

import (
	"github.com/slidecraft/deck-overlay-pipeline/internal/deck"
	"github.com/slidecraft/deck-overlay-pipeline/internal/docindex"
	"github.com/slidecraft/deck-overlay-pipeline/internal/resources"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

func testCache() *resources.Cache {
	return resources.NewCache(nil)
}

func snapshot(slides ...deck.SlideRef) *deck.Snapshot {
	return &deck.Snapshot{Width: 720, Height: 405, Slides: slides}
}

func textSlide(id, layout, text string) deck.SlideRef {
	sl := deck.SlideRef{ID: id, Layout: layout}
	if text != "" {
		sl.Shapes = []deck.ShapeRef{{ID: id + "_t", Kind: overlay.ShapeTextBox, Text: text}}
	}
	return sl
}

func index(snap *deck.Snapshot) *docindex.Index {
	return docindex.Build(snap)
}

func creates(ops []overlay.Op) []*overlay.CreateShapeOp {
	var out []*overlay.CreateShapeOp
	for _, op := range ops {
		if op.CreateShape != nil {
			out = append(out, op.CreateShape)
		}
	}
	return out
}

func deletes(ops []overlay.Op) []*overlay.DeleteElementOp {
	var out []*overlay.DeleteElementOp
	for _, op := range ops {
		if op.DeleteElement != nil {
			out = append(out, op.DeleteElement)
		}
	}
	return out
}

func insertedTexts(ops []overlay.Op) []string {
	var out []string
	for _, op := range ops {
		if op.InsertText != nil {
			out = append(out, op.InsertText.Text)
		}
	}
	return out
}
