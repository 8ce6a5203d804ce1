package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/slidecraft/deck-overlay-pipeline/internal/dbosruntime"
	"github.com/slidecraft/deck-overlay-pipeline/internal/deckapi"
	"github.com/slidecraft/deck-overlay-pipeline/internal/resources"
	"github.com/slidecraft/deck-overlay-pipeline/internal/workflows"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

// Config holds the configuration for initializing the pipeline runner
type Config struct {
	DatabaseURL        string // DBOS PostgreSQL connection string
	AppName            string // Application name for DBOS
	QueueName          string // DBOS queue name
	Concurrency        int    // Number of concurrent workers
	DeckAPIURL         string // URL of the deck service
	PaletteFile        string // Optional: YAML palette override
	ApplicationVersion string // Optional: Override binary hash for version matching
}

// Runner provides a high-level API for running augmentation workflows via DBOS
type Runner struct {
	runtime *dbosruntime.Runtime
	runner  *workflows.WorkflowRunner
}

// New creates and initializes a new pipeline runner with DBOS integration
func New(cfg Config) (*Runner, error) {
	// Create DBOS runtime
	dbosRuntime, err := dbosruntime.NewRuntime(context.Background(), dbosruntime.Config{
		DatabaseURL:        cfg.DatabaseURL,
		AppName:            cfg.AppName,
		QueueName:          cfg.QueueName,
		Concurrency:        cfg.Concurrency,
		ApplicationVersion: cfg.ApplicationVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize DBOS: %w", err)
	}

	// Create workflow runner
	workflowRunner := workflows.NewWorkflowRunner(dbosRuntime)

	// Build the resource cache, optionally from a palette file
	palette := resources.DefaultPalette()
	if cfg.PaletteFile != "" {
		palette, err = resources.LoadPalette(cfg.PaletteFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load palette: %w", err)
		}
	}
	res := resources.NewCache(palette)

	// Setup the deck service adapter
	deckClient := deckapi.New(cfg.DeckAPIURL)

	// Register the augment workflow
	augmentWorkflow := workflows.NewAugmentWorkflow(deckClient, deckClient, res)
	workflowRunner.Register(overlay.JobAugment, augmentWorkflow)

	// Launch DBOS (must be after workflow registration)
	if err := dbosRuntime.Launch(); err != nil {
		return nil, fmt.Errorf("failed to launch DBOS: %w", err)
	}

	return &Runner{
		runtime: dbosRuntime,
		runner:  workflowRunner,
	}, nil
}

// RunAugment triggers overlay regeneration for a deck
func (r *Runner) RunAugment(ctx context.Context, deckID string) (string, error) {
	return r.runner.RunAsync(ctx, overlay.AugmentRequest{
		DeckID: deckID,
		Job:    overlay.JobAugment,
	})
}

// RunAugmentByName enqueues an augmentation workflow by name for workers
// implemented in another language sharing the same DBOS database
func (r *Runner) RunAugmentByName(ctx context.Context, deckID string) (string, error) {
	return r.runtime.StartWorkflowByName(ctx, "augment_deck_workflow", deckID, nil)
}

// GetStatus retrieves the status of a previously enqueued run
func (r *Runner) GetStatus(ctx context.Context, runID string) (*workflows.WorkflowStatus, error) {
	return r.runner.GetStatus(ctx, runID)
}

// Shutdown gracefully shuts down the pipeline runner
func (r *Runner) Shutdown(timeoutSeconds int) {
	if r.runtime != nil {
		r.runtime.Shutdown(time.Duration(timeoutSeconds) * time.Second)
	}
}
