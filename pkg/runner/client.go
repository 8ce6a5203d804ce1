package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/slidecraft/deck-overlay-pipeline/internal/dbosruntime"
	"github.com/slidecraft/deck-overlay-pipeline/internal/workflows"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

// Client provides a client-only API for starting workflows without executing them
// Use this in applications that want to enqueue workflows for workers to execute
type Client struct {
	runtime *dbosruntime.Runtime
	runner  *workflows.WorkflowRunner
}

// NewClient creates a client that can start workflows but doesn't execute them
// Workers must be running separately to execute the enqueued workflows
func NewClient(cfg Config) (*Client, error) {
	// Create DBOS runtime
	dbosRuntime, err := dbosruntime.NewRuntime(context.Background(), dbosruntime.Config{
		DatabaseURL: cfg.DatabaseURL,
		AppName:     cfg.AppName,
		QueueName:   cfg.QueueName,
		Concurrency: 0, // Client mode: don't process workflows
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize DBOS: %w", err)
	}

	// Create workflow runner (for enqueueing only, no registration)
	workflowRunner := workflows.NewWorkflowRunner(dbosRuntime)

	// Launch DBOS (no workflows registered, client mode)
	if err := dbosRuntime.Launch(); err != nil {
		return nil, fmt.Errorf("failed to launch DBOS: %w", err)
	}

	return &Client{
		runtime: dbosRuntime,
		runner:  workflowRunner,
	}, nil
}

// RunAugment enqueues an augmentation workflow for workers to execute
func (c *Client) RunAugment(ctx context.Context, deckID string) (string, error) {
	return c.runner.RunAsync(ctx, overlay.AugmentRequest{
		DeckID: deckID,
		Job:    overlay.JobAugment,
	})
}

// Shutdown gracefully shuts down the client
func (c *Client) Shutdown(timeoutSeconds int) {
	if c.runtime != nil {
		c.runtime.Shutdown(time.Duration(timeoutSeconds) * time.Second)
	}
}
