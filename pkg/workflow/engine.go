package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/models"
)

// Engine is the public orchestrator: it sequences stages in configured
// order, validates prerequisites, resumes from any stage, and observes
// pause/stop control signals between stages and around each LLM call.
// Control outcomes are result values (FinalStatus), not errors: every
// entry point leaves the records consistent on any exit path.
type Engine struct {
	contexts       *ContextManager
	executor       *Executor
	costPerMTokens float64
	log            *slog.Logger
}

// NewEngine creates a workflow engine.
func NewEngine(contexts *ContextManager, executor *Executor, costPerMTokens float64) *Engine {
	return &Engine{
		contexts:       contexts,
		executor:       executor,
		costPerMTokens: costPerMTokens,
		log:            slog.With("component", "workflow_engine"),
	}
}

// ExecuteToCompletion runs every non-completed stage in order. Already
// completed stages are skipped, which makes redelivered tasks and
// cross-worker resumption safe.
func (e *Engine) ExecuteToCompletion(ctx context.Context, projectID string) (*models.ExecutionResult, error) {
	wfCtx, err := e.contexts.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return e.run(ctx, wfCtx, wfCtx.PendingStages())
}

// ExecuteFromStage runs from the named stage onward (or only that stage
// when toCompletion is false), after validating that every stage before
// it has completed.
func (e *Engine) ExecuteFromStage(ctx context.Context, projectID, stageName string, toCompletion bool) (*models.ExecutionResult, error) {
	wfCtx, err := e.contexts.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}

	stageName = config.NormalizeStageName(stageName)
	idx := wfCtx.Catalog.Index(stageName)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s for workflow %s", ErrUnknownStage, stageName, wfCtx.Project.WorkflowType)
	}

	if missing := e.missingPrerequisites(wfCtx, stageName); len(missing) > 0 {
		prereqErr := &PrerequisiteError{StageName: stageName, Missing: missing}
		e.log.Warn("Prerequisite check failed",
			"project_id", projectID,
			"stage", stageName,
			"missing", missing)
		return &models.ExecutionResult{
			FinalStatus:          models.FinalStatusFailed,
			FailedStage:          stageName,
			Message:              prereqErr.Error(),
			MissingPrerequisites: missing,
			Metrics:              wfCtx.Metrics,
		}, nil
	}

	var toExecute []string
	if toCompletion {
		for _, name := range wfCtx.Catalog.FromIndex(idx) {
			if out := wfCtx.StageOutput(name); out != nil && out.Status == models.StageStatusCompleted && name != stageName {
				continue
			}
			toExecute = append(toExecute, name)
		}
	} else {
		toExecute = []string{stageName}
	}
	return e.run(ctx, wfCtx, toExecute)
}

// ExecuteSingleStage runs exactly one stage with the prerequisite check.
func (e *Engine) ExecuteSingleStage(ctx context.Context, projectID, stageName string) (*models.ExecutionResult, error) {
	return e.ExecuteFromStage(ctx, projectID, stageName, false)
}

// GetStatus returns the current project view and the completed stages in
// configured order.
func (e *Engine) GetStatus(ctx context.Context, projectID string) (*models.Project, []string, error) {
	wfCtx, err := e.contexts.Load(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	return wfCtx.Project, wfCtx.CompletedStages(), nil
}

// missingPrerequisites returns the stages before stageName in configured
// order that have not completed.
func (e *Engine) missingPrerequisites(wfCtx *WorkflowContext, stageName string) []string {
	var missing []string
	for _, name := range wfCtx.Catalog.Prerequisites(stageName) {
		out := wfCtx.StageOutput(name)
		if out == nil || out.Status != models.StageStatusCompleted {
			missing = append(missing, name)
		}
	}
	return missing
}

// run is the execution loop shared by all entry points.
func (e *Engine) run(ctx context.Context, wfCtx *WorkflowContext, toExecute []string) (*models.ExecutionResult, error) {
	log := e.log.With("project_id", wfCtx.Project.ID, "workflow_type", wfCtx.Project.WorkflowType)

	// Observe control state before starting anything.
	if err := e.contexts.RefreshControlStatus(ctx, wfCtx); err != nil {
		return nil, err
	}
	switch wfCtx.ControlStatus {
	case models.ControlStatusStopped, models.ControlStatusCancelled:
		return &models.ExecutionResult{
			FinalStatus: models.FinalStatusFailed,
			Message:     "Workflow stopped by user",
			Metrics:     wfCtx.Metrics,
		}, nil
	case models.ControlStatusPaused:
		return &models.ExecutionResult{
			FinalStatus: models.FinalStatusPaused,
			Message:     "Workflow is paused",
			Metrics:     wfCtx.Metrics,
		}, nil
	}

	if len(toExecute) == 0 {
		return e.finish(ctx, wfCtx)
	}

	for _, stageName := range toExecute {
		log.Info("Starting stage", "stage", stageName)
		if err := e.contexts.MarkStageRunning(ctx, wfCtx, stageName); err != nil {
			return nil, err
		}

		// A pause/stop may have been requested while we persisted.
		if err := e.contexts.RefreshControlStatus(ctx, wfCtx); err != nil {
			return nil, err
		}
		if result, stopped := e.checkControl(ctx, wfCtx, log); stopped {
			return result, nil
		}

		out, execErr := e.executor.ExecuteStage(ctx, wfCtx, stageName, ExecOptions{})
		if out != nil {
			wfCtx.SetStageOutput(out, e.costPerMTokens)
		}

		// Observe control again after the LLM call: persist the output
		// either way so progress is never lost, but do not advance.
		if err := e.contexts.RefreshControlStatus(ctx, wfCtx); err != nil {
			return nil, err
		}
		if execErr == nil {
			if result, stopped := e.checkControl(ctx, wfCtx, log); stopped {
				return result, nil
			}
		}

		if execErr != nil {
			var stageErr *StageExecutionError
			recoverable := errors.As(execErr, &stageErr) && stageErr.Recoverable
			wfCtx.Status = RunStatusFailed
			wfCtx.Project.ErrorInfo = &models.ErrorInfo{
				Message:     execErr.Error(),
				FailedStage: stageName,
			}
			if err := e.contexts.Save(ctx, wfCtx); err != nil {
				return nil, err
			}
			log.Error("Stage failed",
				"stage", stageName,
				"recoverable", recoverable,
				"error", execErr)
			return &models.ExecutionResult{
				FinalStatus:     models.FinalStatusFailed,
				CompletedStages: wfCtx.CompletedStages(),
				FailedStage:     stageName,
				Message:         execErr.Error(),
				Metrics:         wfCtx.Metrics,
			}, nil
		}

		if err := e.contexts.Save(ctx, wfCtx); err != nil {
			return nil, err
		}
		log.Info("Stage completed",
			"stage", stageName,
			"duration_seconds", out.ExecutionTimeSeconds,
			"total_tokens", out.Metrics.TotalTokens())
	}

	return e.finish(ctx, wfCtx)
}

// checkControl translates a pending pause/stop request into a terminal
// result after persisting the context.
func (e *Engine) checkControl(ctx context.Context, wfCtx *WorkflowContext, log *slog.Logger) (*models.ExecutionResult, bool) {
	switch wfCtx.ControlStatus {
	case models.ControlStatusPaused:
		if err := e.contexts.Save(ctx, wfCtx); err != nil {
			log.Error("Failed to persist paused state", "error", err)
		}
		log.Info("Workflow paused", "stage", wfCtx.CurrentStage)
		return &models.ExecutionResult{
			FinalStatus:     models.FinalStatusPaused,
			CompletedStages: wfCtx.CompletedStages(),
			Message:         "Workflow paused by user",
			Metrics:         wfCtx.Metrics,
		}, true
	case models.ControlStatusStopped, models.ControlStatusCancelled:
		if err := e.contexts.Save(ctx, wfCtx); err != nil {
			log.Error("Failed to persist stopped state", "error", err)
		}
		log.Info("Workflow stopped", "stage", wfCtx.CurrentStage)
		return &models.ExecutionResult{
			FinalStatus:     models.FinalStatusStopped,
			CompletedStages: wfCtx.CompletedStages(),
			Message:         "Workflow stopped by user",
			Metrics:         wfCtx.Metrics,
		}, true
	}
	return nil, false
}

// finish persists the terminal state of a run. The project only reaches
// completed when every configured stage has completed; a partial run
// (single-stage execution) leaves the remaining pipeline intact.
func (e *Engine) finish(ctx context.Context, wfCtx *WorkflowContext) (*models.ExecutionResult, error) {
	if len(wfCtx.PendingStages()) == 0 {
		wfCtx.Status = RunStatusCompleted
		now := time.Now()
		wfCtx.Project.CompletedAt = &now
	} else {
		wfCtx.Status = RunStatusPending
	}
	if err := e.contexts.Save(ctx, wfCtx); err != nil {
		return nil, err
	}
	e.log.Info("Execution finished",
		"project_id", wfCtx.Project.ID,
		"status", wfCtx.Status,
		"completed_stages", len(wfCtx.CompletedStages()),
		"total_tokens", wfCtx.Metrics.TotalTokens())
	return &models.ExecutionResult{
		FinalStatus:     models.FinalStatusCompleted,
		CompletedStages: wfCtx.CompletedStages(),
		Metrics:         wfCtx.Metrics,
	}, nil
}
