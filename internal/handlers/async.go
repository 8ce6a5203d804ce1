package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/slidecraft/deck-overlay-pipeline/internal/dedupe"
	"github.com/slidecraft/deck-overlay-pipeline/internal/workflows"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

// AsyncHandler handles asynchronous augmentation requests
type AsyncHandler struct {
	workflowRunner *workflows.WorkflowRunner
	dedupeTracker  *dedupe.Tracker
}

// NewAsyncHandler creates a new async handler. The dedupe tracker is
// optional; without it the response reports a zero seen count.
func NewAsyncHandler(runner *workflows.WorkflowRunner, tracker *dedupe.Tracker) *AsyncHandler {
	return &AsyncHandler{
		workflowRunner: runner,
		dedupeTracker:  tracker,
	}
}

// HandleAugmentAsync handles POST /v1/augment - enqueues the workflow and returns immediately
func (h *AsyncHandler) HandleAugmentAsync(w http.ResponseWriter, r *http.Request) {
	// Parse request
	var req overlay.AugmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	// Validate
	if req.DeckID == "" {
		http.Error(w, "deck_id is required", http.StatusBadRequest)
		return
	}
	if req.Job == "" {
		req.Job = overlay.JobAugment
	}

	log.Printf("Enqueueing workflow: deck_id=%s, job=%s", req.DeckID, req.Job)

	// Enqueue workflow (non-blocking)
	runID, err := h.workflowRunner.RunAsync(r.Context(), req)
	if err != nil {
		log.Printf("Failed to enqueue workflow: %v", err)
		http.Error(w, fmt.Sprintf("Failed to enqueue workflow: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("Workflow enqueued successfully: run_id=%s", runID)

	// Record the submission; a ledger failure never fails the enqueue
	seenCount := 0
	if h.dedupeTracker != nil {
		seenCount, err = h.dedupeTracker.Record(r.Context(), req.DeckID, req.Job, 1)
		if err != nil {
			log.Printf("Failed to record dedupe for deck_id=%s: %v", req.DeckID, err)
			seenCount = 0
		}
	}

	// Return immediately with 202 Accepted
	resp := overlay.AugmentResponse{
		RunID:           runID,
		DedupeSeenCount: seenCount,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(resp)
}

// HandleStatus handles GET /v1/runs/{runID} - returns workflow status
func (h *AsyncHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	if runID == "" {
		http.Error(w, "run_id is required", http.StatusBadRequest)
		return
	}

	log.Printf("Checking workflow status: run_id=%s", runID)

	status, err := h.workflowRunner.GetStatus(r.Context(), runID)
	if err != nil {
		log.Printf("Failed to get workflow status: %v", err)
		http.Error(w, "Workflow not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(status)
}
