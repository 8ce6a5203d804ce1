package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dbos-inc/dbos-transact-golang/dbos"
	"github.com/slidecraft/deck-overlay-pipeline/internal/dbosruntime"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

// WorkflowContext contains context for workflow execution
type WorkflowContext struct {
	Ctx     context.Context
	Request overlay.AugmentRequest
	RunID   string
}

// WorkflowResult contains the result of workflow execution
type WorkflowResult struct {
	Success bool
	Error   error
	Outputs map[string]interface{}
}

// Workflow defines the interface for deck processing workflows
type Workflow interface {
	// Execute runs the workflow
	Execute(wctx *WorkflowContext) (*WorkflowResult, error)

	// Name returns the workflow name
	Name() string
}

// WorkflowRunner executes workflows
type WorkflowRunner struct {
	workflows   map[string]Workflow
	dbosRuntime *dbosruntime.Runtime
}

// NewWorkflowRunner creates a new workflow runner. Pass a nil runtime
// for synchronous-only execution (standalone mode).
func NewWorkflowRunner(dbosRuntime *dbosruntime.Runtime) *WorkflowRunner {
	runner := &WorkflowRunner{
		workflows:   make(map[string]Workflow),
		dbosRuntime: dbosRuntime,
	}

	// Register the DBOS workflow function
	if dbosRuntime != nil {
		dbos.RegisterWorkflow(dbosRuntime.Context(), runner.executeWorkflowDBOS)
	}

	return runner
}

// Register registers a workflow for a job type
func (r *WorkflowRunner) Register(job string, workflow Workflow) {
	r.workflows[job] = workflow
}

// Run executes a workflow synchronously
func (r *WorkflowRunner) Run(wctx *WorkflowContext) (*WorkflowResult, error) {
	workflow, ok := r.workflows[wctx.Request.Job]
	if !ok {
		return &WorkflowResult{
			Success: false,
			Error:   ErrWorkflowNotFound,
		}, ErrWorkflowNotFound
	}

	return workflow.Execute(wctx)
}

// RunAsync enqueues a workflow for async execution via DBOS
func (r *WorkflowRunner) RunAsync(ctx context.Context, req overlay.AugmentRequest) (string, error) {
	if r.dbosRuntime == nil {
		return "", errors.New("DBOS runtime not initialized")
	}

	// Workflow ID gives exactly-once semantics per enqueue
	workflowID := fmt.Sprintf("%s-%s-%d", req.Job, req.DeckID, time.Now().UnixNano())

	handle, err := dbos.RunWorkflow[overlay.AugmentRequest, *WorkflowResult](
		r.dbosRuntime.Context(),
		r.executeWorkflowDBOS,
		req,
		dbos.WithWorkflowID(workflowID),
		dbos.WithQueue(r.dbosRuntime.QueueName()),
	)
	if err != nil {
		return "", err
	}

	return handle.GetWorkflowID(), nil
}

// executeWorkflowDBOS is the DBOS workflow function that wraps registered workflows
func (r *WorkflowRunner) executeWorkflowDBOS(dbosCtx dbos.DBOSContext, req overlay.AugmentRequest) (*WorkflowResult, error) {
	workflow, ok := r.workflows[req.Job]
	if !ok {
		return &WorkflowResult{
			Success: false,
			Error:   ErrWorkflowNotFound,
		}, ErrWorkflowNotFound
	}

	workflowID, err := dbosCtx.GetWorkflowID()
	if err != nil {
		return &WorkflowResult{
			Success: false,
			Error:   err,
		}, err
	}

	// DBOSContext implements context.Context
	wctx := &WorkflowContext{
		Ctx:     dbosCtx,
		Request: req,
		RunID:   workflowID,
	}

	return workflow.Execute(wctx)
}

// WorkflowStatus represents the status of a workflow execution
type WorkflowStatus struct {
	RunID     string `json:"run_id"`
	State     string `json:"state"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"created_at,omitempty"`
	UpdatedAt int64  `json:"updated_at,omitempty"`
}

// GetStatus retrieves the status of a workflow execution from the DBOS
// status table
func (r *WorkflowRunner) GetStatus(ctx context.Context, runID string) (*WorkflowStatus, error) {
	if r.dbosRuntime == nil {
		return nil, errors.New("status tracking requires DBOS runtime")
	}

	info, err := r.dbosRuntime.GetWorkflowStatus(ctx, runID)
	if err != nil {
		return nil, err
	}

	return &WorkflowStatus{
		RunID:     info.WorkflowUUID,
		State:     info.Status,
		Name:      info.Name,
		CreatedAt: info.CreatedAt,
		UpdatedAt: info.UpdatedAt,
	}, nil
}
