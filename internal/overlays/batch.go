// Package overlays holds the deletion pass and the four overlay
// generators. Every function is pure: it reads the snapshot, the
// resource cache, and the classified index, and returns mutation
// operations without touching the live document.
package overlays

import (
	"github.com/slidecraft/deck-overlay-pipeline/internal/deck"
	"github.com/slidecraft/deck-overlay-pipeline/internal/docindex"
	"github.com/slidecraft/deck-overlay-pipeline/internal/resources"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

// BuildBatch assembles the full mutation batch for one run in fixed
// order: deletions, progress, footer, section annotations, outline.
// Deletions preceding every create inside the one ordered batch is what
// makes re-runs idempotent. An empty snapshot yields nil.
func BuildBatch(snap *deck.Snapshot, res *resources.Cache, idx *docindex.Index) []overlay.Op {
	if snap.Empty() {
		return nil
	}

	var ops []overlay.Op
	ops = append(ops, DeletionOps(snap, idx)...)
	ops = append(ops, ProgressOps(snap, res)...)
	ops = append(ops, FooterOps(snap, res, idx)...)
	ops = append(ops, SectionOps(snap, res, idx)...)
	ops = append(ops, OutlineOps(snap, res, idx)...)
	return ops
}
