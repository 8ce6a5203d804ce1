package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/slidecraft/deck-overlay-pipeline/internal/dbosruntime"
	"github.com/slidecraft/deck-overlay-pipeline/internal/deck"
	"github.com/slidecraft/deck-overlay-pipeline/internal/deckapi"
	"github.com/slidecraft/deck-overlay-pipeline/internal/dedupe"
	"github.com/slidecraft/deck-overlay-pipeline/internal/handlers"
	"github.com/slidecraft/deck-overlay-pipeline/internal/metrics"
	"github.com/slidecraft/deck-overlay-pipeline/internal/resources"
	"github.com/slidecraft/deck-overlay-pipeline/internal/workflows"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

func main() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	// Configuration from environment
	httpAddr := os.Getenv("WORKER_HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = ":8081"
	}

	// Deck access: HTTP API if DECK_API_URL is set, otherwise local
	// filesystem deck files
	deckAPIURL := os.Getenv("DECK_API_URL")

	var deckReader workflows.DeckReader
	var submitter workflows.BatchSubmitter

	if deckAPIURL != "" {
		log.Printf("Using deck service HTTP API at: %s", deckAPIURL)
		deckClient := deckapi.New(deckAPIURL)
		deckReader = deckClient
		submitter = deckClient
	} else {
		storageDir := os.Getenv("STORAGE_DIR")
		if storageDir == "" {
			storageDir = "./dev-decks"
		}
		log.Printf("Using filesystem deck store at: %s", storageDir)
		store, err := deck.NewFilesystemStore(storageDir)
		if err != nil {
			log.Fatalf("Failed to initialize deck store: %v", err)
		}
		svc := &localDeckService{store: store}
		deckReader = svc
		submitter = svc
	}

	// Build the resource cache, optionally from a palette file
	palette := resources.DefaultPalette()
	if palettePath := os.Getenv("PALETTE_FILE"); palettePath != "" {
		var err error
		palette, err = resources.LoadPalette(palettePath)
		if err != nil {
			log.Fatalf("Failed to load palette: %v", err)
		}
	}
	res := resources.NewCache(palette)

	// Initialize DBOS runtime (required)
	dbURL := os.Getenv("DBOS_SYSTEM_DATABASE_URL")
	if dbURL == "" {
		log.Fatalf("DBOS_SYSTEM_DATABASE_URL is required")
	}

	queueName := os.Getenv("DBOS_QUEUE_NAME")
	if queueName == "" {
		queueName = "default"
	}

	dbosRuntime, err := dbosruntime.NewRuntime(context.Background(), dbosruntime.Config{
		DatabaseURL: dbURL,
		AppName:     "overlay-worker",
		QueueName:   queueName,
		Concurrency: 4,
	})
	if err != nil {
		log.Fatalf("Failed to initialize DBOS: %v", err)
	}

	// Initialize workflow runner with DBOS support (registers workflows with DBOS)
	workflowRunner := workflows.NewWorkflowRunner(dbosRuntime)

	// Register workflows
	augmentWorkflow := workflows.NewAugmentWorkflow(deckReader, submitter, res)
	workflowRunner.Register(overlay.JobAugment, augmentWorkflow)
	log.Printf("✓ Registered workflow: %s for job: %s", augmentWorkflow.Name(), overlay.JobAugment)

	// Launch DBOS (must be done after workflow registration)
	if err := dbosRuntime.Launch(); err != nil {
		log.Fatalf("Failed to launch DBOS: %v", err)
	}
	defer dbosRuntime.Shutdown(10 * time.Second)

	log.Printf("✓ DBOS runtime initialized")
	log.Printf("  Queue: %s", dbosRuntime.QueueName())
	log.Printf("  Concurrency: %d", dbosRuntime.Concurrency())

	// Submission ledger (optional: keeps working without it)
	var tracker *dedupe.Tracker
	if db, err := sql.Open("postgres", dbURL); err == nil {
		tracker, err = dedupe.NewTracker(db)
		if err != nil {
			log.Printf("Dedupe ledger unavailable: %v", err)
			tracker = nil
		}
	}

	// Create HTTP router
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	asyncHandler := handlers.NewAsyncHandler(workflowRunner, tracker)

	r.Get("/health", handleHealth)
	r.Post("/v1/augment", asyncHandler.HandleAugmentAsync)
	r.Get("/v1/runs/{runID}", asyncHandler.HandleStatus)
	r.Handle("/metrics", metrics.Handler())

	log.Printf("✓ Registered async endpoints")

	server := &http.Server{
		Addr:    httpAddr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Overlay worker starting on %s", httpAddr)
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
	})
}

// localDeckService adapts the filesystem store to the workflow interfaces
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
