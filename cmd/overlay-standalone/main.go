package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/slidecraft/deck-overlay-pipeline/internal/deck"
	"github.com/slidecraft/deck-overlay-pipeline/internal/metrics"
	"github.com/slidecraft/deck-overlay-pipeline/internal/resources"
	"github.com/slidecraft/deck-overlay-pipeline/internal/workflows"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

// Standalone overlay worker for quick testing
// Uses JSON deck files on the local filesystem (./dev-decks)
// No external deck service needed
func main() {
	// Configuration from environment
	httpAddr := os.Getenv("PIPELINE_HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = ":8080"
	}

	storageDir := os.Getenv("STORAGE_DIR")
	if storageDir == "" {
		storageDir = "./dev-decks"
	}

	log.Printf("Overlay Standalone Worker")
	log.Printf("  Mode: Embedded (filesystem deck store)")
	log.Printf("  Storage directory: %s", storageDir)
	log.Printf("  HTTP address: %s", httpAddr)

	// Initialize the filesystem deck store
	store, err := deck.NewFilesystemStore(storageDir)
	if err != nil {
		log.Fatalf("Failed to initialize deck store: %v", err)
	}

	// Build the resource cache, optionally from a palette file
	palette := resources.DefaultPalette()
	if palettePath := os.Getenv("PALETTE_FILE"); palettePath != "" {
		palette, err = resources.LoadPalette(palettePath)
		if err != nil {
			log.Fatalf("Failed to load palette: %v", err)
		}
		log.Printf("✓ Palette loaded from %s", palettePath)
	}
	res := resources.NewCache(palette)

	// Local deck service: reads deck files, applies batches in memory,
	// writes the result back
	svc := &localDeckService{store: store}

	// Initialize workflow runner (synchronous, no DBOS)
	workflowRunner := workflows.NewWorkflowRunner(nil)

	// Register workflows
	augmentWorkflow := workflows.NewAugmentWorkflow(svc, svc, res)
	workflowRunner.Register(overlay.JobAugment, augmentWorkflow)
	log.Printf("✓ Registered workflow: %s for job: %s", augmentWorkflow.Name(), overlay.JobAugment)

	// Create HTTP router
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	handler := &Handler{workflowRunner: workflowRunner, resources: res}

	r.Get("/health", handleHealth)
	r.Post("/v1/augment", handler.handleAugment)
	r.Get("/v1/test", handler.handleTest)
	r.Post("/v1/test", handler.handleTest)
	r.Handle("/metrics", metrics.Handler())

	server := &http.Server{
		Addr:    httpAddr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("✓ Overlay worker ready on %s", httpAddr)
		log.Printf("")
		log.Printf("Quick test:")
		log.Printf("  curl http://localhost:8080/v1/test")
		log.Printf("")
		log.Printf("Available endpoints:")
		log.Printf("  GET  /health           - Health check")
		log.Printf("  POST /v1/augment       - Regenerate overlays (requires existing deck file)")
		log.Printf("  GET  /v1/test          - Run end-to-end test (sample deck, two runs, verify)")
		log.Printf("  GET  /metrics          - Prometheus metrics")
		log.Printf("")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// handleHealth returns health status
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
		"mode":   "standalone",
	})
}

// localDeckService adapts the filesystem store to the workflow's reader
// and submitter interfaces
type localDeckService struct {
	store *deck.FilesystemStore
}

func (s *localDeckService) GetDocument(ctx context.Context, deckID string) (deck.Document, error) {
	return s.store.Load(ctx, deckID)
}

func (s *localDeckService) SubmitBatch(ctx context.Context, deckID string, ops []overlay.Op) error {
	doc, err := s.store.Load(ctx, deckID)
	if err != nil {
		return err
	}
	if err := doc.Apply(ops); err != nil {
		return err
	}
	return s.store.Save(ctx, doc)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	workflowRunner *workflows.WorkflowRunner
	resources      *resources.Cache
}

// handleAugment handles the /v1/augment endpoint (synchronous)
func (h *Handler) handleAugment(w http.ResponseWriter, r *http.Request) {
	// Parse request
	var req overlay.AugmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	// Validate request
	if req.DeckID == "" {
		http.Error(w, "deck_id is required", http.StatusBadRequest)
		return
	}
	if req.Job == "" {
		req.Job = overlay.JobAugment
	}

	log.Printf("Processing request: deck_id=%s, job=%s", req.DeckID, req.Job)

	// Generate run ID
	runID := uuid.New().String()

	// Create workflow context
	wctx := &workflows.WorkflowContext{
		Ctx:     r.Context(),
		Request: req,
		RunID:   runID,
	}

	// Execute workflow
	result, err := h.workflowRunner.Run(wctx)
	if err != nil {
		log.Printf("[%s] Workflow execution failed: %v", runID, err)
		http.Error(w, fmt.Sprintf("Workflow execution failed: %v", err), http.StatusInternalServerError)
		return
	}

	if !result.Success {
		log.Printf("[%s] Workflow completed with errors: %v", runID, result.Error)
		http.Error(w, fmt.Sprintf("Workflow failed: %v", result.Error), http.StatusInternalServerError)
		return
	}

	log.Printf("[%s] Workflow completed successfully", runID)

	opCount, _ := result.Outputs["op_count"].(int)
	resp := overlay.AugmentResponse{
		RunID:   runID,
		OpCount: opCount,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// handleTest handles the /v1/test endpoint for quick end-to-end testing
func (h *Handler) handleTest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log.Println("=== Running End-to-End Test ===")

	// Step 1: Build a sample deck in memory
	log.Println("Step 1: Building sample deck...")
	doc := deck.NewMemoryDocument(sampleDeck())
	svc := &memoryDeckService{doc: doc}

	augment := workflows.NewAugmentWorkflow(svc, svc, h.resources)

	// Step 2: First augmentation run
	log.Println("Step 2: Running augmentation...")
	runID := uuid.New().String()
	result, err := augment.Execute(&workflows.WorkflowContext{
		Ctx:     ctx,
		Request: overlay.AugmentRequest{DeckID: doc.File().DeckID, Job: overlay.JobAugment},
		RunID:   runID,
	})
	if err != nil || !result.Success {
		log.Printf("Workflow failed: %v", err)
		http.Error(w, fmt.Sprintf("Workflow failed: %v", err), http.StatusInternalServerError)
		return
	}
	firstCount := countShapes(doc)
	log.Printf("✓ First run applied (run_id: %s), %d shapes in deck", runID, firstCount)

	// Step 3: Second run must converge to the same overlay set
	log.Println("Step 3: Re-running augmentation (idempotence check)...")
	runID2 := uuid.New().String()
	result, err = augment.Execute(&workflows.WorkflowContext{
		Ctx:     ctx,
		Request: overlay.AugmentRequest{DeckID: doc.File().DeckID, Job: overlay.JobAugment},
		RunID:   runID2,
	})
	if err != nil || !result.Success {
		log.Printf("Workflow failed: %v", err)
		http.Error(w, fmt.Sprintf("Workflow failed: %v", err), http.StatusInternalServerError)
		return
	}
	secondCount := countShapes(doc)
	log.Printf("✓ Second run applied (run_id: %s), %d shapes in deck", runID2, secondCount)

	converged := firstCount == secondCount
	if converged {
		log.Println("✓ Re-run converged to the same overlay set")
	} else {
		log.Printf("Re-run did NOT converge: %d vs %d shapes", firstCount, secondCount)
	}

	log.Println("=== Test Complete ===")

	response := map[string]interface{}{
		"test_status":        "success",
		"deck_id":            doc.File().DeckID,
		"first_run_id":       runID,
		"second_run_id":      runID2,
		"first_shape_count":  firstCount,
		"second_shape_count": secondCount,
		"converged":          converged,
		"outputs":            result.Outputs,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// memoryDeckService serves one in-memory document
type memoryDeckService struct {
	doc *deck.MemoryDocument
}

func (s *memoryDeckService) GetDocument(ctx context.Context, deckID string) (deck.Document, error) {
	return s.doc, nil
}

func (s *memoryDeckService) SubmitBatch(ctx context.Context, deckID string, ops []overlay.Op) error {
	return s.doc.Apply(ops)
}

// sampleDeck builds a small deck exercising every generator
func sampleDeck() *deck.DeckFile {
	return &deck.DeckFile{
		DeckID:     "sample-deck",
		PageWidth:  720,
		PageHeight: 405,
		Slides: []deck.SlideData{
			{ID: "s0", Layout: deck.LayoutTitle, Shapes: []deck.ShapeData{
				{ID: "t0", Kind: overlay.ShapeTextBox, Text: "Quarterly Roadmap"},
			}},
			{ID: "s1", Layout: "TITLE_AND_BODY", Shapes: []deck.ShapeData{
				{ID: "t1", Kind: overlay.ShapeTextBox, Text: "Outline"},
			}},
			{ID: "s2", Layout: deck.LayoutSectionHeader, Shapes: []deck.ShapeData{
				{ID: "t2", Kind: overlay.ShapeTextBox, Text: "Discovery"},
			}},
			{ID: "s3", Layout: "TITLE_AND_BODY", Shapes: []deck.ShapeData{
				{ID: "t3", Kind: overlay.ShapeTextBox, Text: "Findings"},
			}},
			{ID: "s4", Layout: deck.LayoutSectionHeader, Shapes: []deck.ShapeData{
				{ID: "t4", Kind: overlay.ShapeTextBox, Text: "Delivery"},
			}},
		},
	}
}

func countShapes(doc *deck.MemoryDocument) int {
	n := 0
	for _, sl := range doc.File().Slides {
		n += len(sl.Shapes)
	}
	return n
}
