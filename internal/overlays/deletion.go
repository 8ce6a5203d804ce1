package overlays

import (
	"github.com/slidecraft/deck-overlay-pipeline/internal/deck"
	"github.com/slidecraft/deck-overlay-pipeline/internal/docindex"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

// DeletionOps purges every previously generated overlay element, slides
// [1, N) only. These ops must precede every create for the same run in
// the submitted batch; BuildBatch enforces that ordering.
func DeletionOps(snap *deck.Snapshot, idx *docindex.Index) []overlay.Op {
	var ops []overlay.Op
	for i := 1; i < snap.SlideCount(); i++ {
		for _, elementID := range idx.Generated[i] {
			ops = append(ops, overlay.Op{
				DeleteElement: &overlay.DeleteElementOp{ElementID: elementID},
			})
		}
	}
	return ops
}
