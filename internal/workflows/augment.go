package workflows

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/slidecraft/deck-overlay-pipeline/internal/deck"
	"github.com/slidecraft/deck-overlay-pipeline/internal/docindex"
	"github.com/slidecraft/deck-overlay-pipeline/internal/metrics"
	"github.com/slidecraft/deck-overlay-pipeline/internal/overlays"
	"github.com/slidecraft/deck-overlay-pipeline/internal/resources"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

// DeckReader interface for reading deck documents
type DeckReader interface {
	GetDocument(ctx context.Context, deckID string) (deck.Document, error)
}

// BatchSubmitter interface for the external apply-mutations call
type BatchSubmitter interface {
	SubmitBatch(ctx context.Context, deckID string, ops []overlay.Op) error
}

// AugmentWorkflow regenerates all navigation overlays for a deck and
// applies them as one batch
type AugmentWorkflow struct {
	deckReader DeckReader
	submitter  BatchSubmitter
	resources  *resources.Cache
}

// NewAugmentWorkflow creates a new overlay augmentation workflow
func NewAugmentWorkflow(deckReader DeckReader, submitter BatchSubmitter, res *resources.Cache) *AugmentWorkflow {
	return &AugmentWorkflow{
		deckReader: deckReader,
		submitter:  submitter,
		resources:  res,
	}
}

// Name returns the workflow name
func (w *AugmentWorkflow) Name() string {
	return "AugmentWorkflow"
}

// Execute runs the augmentation pipeline: capture snapshot, build the
// classified index, assemble the batch, submit once. The whole pipeline
// runs to completion before any mutation is sent; the only blocking
// point is the final submission.
func (w *AugmentWorkflow) Execute(wctx *WorkflowContext) (*WorkflowResult, error) {
	log.Printf("[%s] Starting augment workflow for deck_id=%s", wctx.RunID, wctx.Request.DeckID)

	// Step 1: Validate request
	if err := w.validateRequest(&wctx.Request); err != nil {
		log.Printf("[%s] Validation failed: %v", wctx.RunID, err)
		return &WorkflowResult{
			Success: false,
			Error:   fmt.Errorf("validation failed: %w", err),
		}, err
	}

	// Step 2: Read the document and capture its state once
	doc, err := w.deckReader.GetDocument(wctx.Ctx, wctx.Request.DeckID)
	if err != nil {
		log.Printf("[%s] Failed to read deck: %v", wctx.RunID, err)
		metrics.RunsTotal.WithLabelValues(metrics.StatusFailed).Inc()
		return &WorkflowResult{
			Success: false,
			Error:   fmt.Errorf("deck read failed: %w", err),
		}, err
	}

	snap := deck.Capture(doc)
	if snap.Empty() {
		log.Printf("[%s] Deck %s has no slides - nothing to do", wctx.RunID, wctx.Request.DeckID)
		metrics.RunsTotal.WithLabelValues(metrics.StatusSkipped).Inc()
		return &WorkflowResult{
			Success: true,
			Outputs: map[string]interface{}{
				"deck_id": wctx.Request.DeckID,
				"skipped": true,
			},
		}, nil
	}
	log.Printf("[%s] Captured snapshot: %d slides, page %.0fx%.0f", wctx.RunID, snap.SlideCount(), snap.Width, snap.Height)

	// Step 3: One classified pass over the snapshot
	idx := docindex.Build(snap)
	log.Printf("[%s] Indexed %d section(s)", wctx.RunID, len(idx.Sections))

	// Step 4: Assemble the batch (deletions first, then generators)
	ops := overlays.BuildBatch(snap, w.resources, idx)
	countOps(ops)

	if len(ops) == 0 {
		log.Printf("[%s] Empty batch - no submission", wctx.RunID)
		metrics.RunsTotal.WithLabelValues(metrics.StatusSkipped).Inc()
		return &WorkflowResult{
			Success: true,
			Outputs: map[string]interface{}{
				"deck_id":  wctx.Request.DeckID,
				"op_count": 0,
			},
		}, nil
	}

	// Step 5: Submit the full batch once. No retry, no rollback: a
	// failed submission is terminal for the invocation, and the next
	// run's deletion pass converges the deck regardless.
	start := time.Now()
	err = w.submitter.SubmitBatch(wctx.Ctx, wctx.Request.DeckID, ops)
	metrics.BatchSubmitSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		log.Printf("[%s] Batch submission failed: %v", wctx.RunID, err)
		metrics.RunsTotal.WithLabelValues(metrics.StatusFailed).Inc()
		return &WorkflowResult{
			Success: false,
			Error:   fmt.Errorf("batch submission failed: %w", err),
		}, err
	}

	log.Printf("[%s] Applied %d operation(s) to deck %s", wctx.RunID, len(ops), wctx.Request.DeckID)
	metrics.RunsTotal.WithLabelValues(metrics.StatusSucceeded).Inc()

	return &WorkflowResult{
		Success: true,
		Outputs: map[string]interface{}{
			"deck_id":  wctx.Request.DeckID,
			"op_count": len(ops),
			"slides":   snap.SlideCount(),
			"sections": len(idx.Sections),
		},
	}, nil
}

// validateRequest validates the workflow request
func (w *AugmentWorkflow) validateRequest(req *overlay.AugmentRequest) error {
	if req.DeckID == "" {
		return fmt.Errorf("%w: deck_id is required", ErrInvalidRequest)
	}
	if req.Job != overlay.JobAugment {
		return fmt.Errorf("%w: unsupported job %q", ErrInvalidRequest, req.Job)
	}
	return nil
}

// countOps records per-family op metrics
func countOps(ops []overlay.Op) {
	for _, op := range ops {
		switch {
		case op.CreateShape != nil:
			metrics.OpsEmitted.WithLabelValues(op.CreateShape.Family).Inc()
		case op.DeleteElement != nil:
			metrics.OpsEmitted.WithLabelValues("delete").Inc()
		}
	}
}
