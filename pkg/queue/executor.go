package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nexus-ai/nexus/ent"
	"github.com/nexus-ai/nexus/ent/task"
	"github.com/nexus-ai/nexus/pkg/models"
	"github.com/nexus-ai/nexus/pkg/workflow"
)

// Executor drives the workflow engine for claimed tasks: it decodes the
// queue message, resolves the requested action against the project
// state, runs the engine, and translates the engine's terminal status
// into the task's terminal status.
type Executor struct {
	engine   WorkflowRunner
	projects workflow.ProjectStore
	deployer Deployer   // nil disables deploy_agent tasks
	files    FileSyncer // nil disables workspace sync
	stages   StageLister
	tasks    TaskCreator // nil disables the follow-up deploy task
	log      *slog.Logger
}

// NewExecutor creates a task executor.
func NewExecutor(engine WorkflowRunner, projects workflow.ProjectStore, deployer Deployer) *Executor {
	return &Executor{
		engine:   engine,
		projects: projects,
		deployer: deployer,
		log:      slog.With("component", "task_executor"),
	}
}

// SetFileSync wires workspace synchronization around workflow runs:
// completed stages' files are pulled before the engine needs them and
// the workspace is pushed after the run, so a build can move between
// pods on redelivery.
func (e *Executor) SetFileSync(files FileSyncer, stages StageLister) {
	e.files = files
	e.stages = stages
}

// SetTaskCreator enables enqueueing a deploy_agent task when an agent
// build completes.
func (e *Executor) SetTaskCreator(tasks TaskCreator) {
	e.tasks = tasks
}

// Execute implements TaskExecutor.
func (e *Executor) Execute(ctx context.Context, t *ent.Task) (*TaskResult, error) {
	msg, err := decodeTaskMessage(t.Payload)
	if err != nil {
		// A malformed payload will never decode on redelivery either;
		// fail it terminally.
		return &TaskResult{
			Status:       task.StatusFailed,
			ErrorMessage: fmt.Sprintf("invalid task payload: %v", err),
		}, nil
	}

	if t.TaskType == task.TaskTypeDeployAgent {
		return e.deploy(ctx, t)
	}

	if err := e.ensureWorkspace(ctx, t.ProjectID); err != nil {
		// Infrastructure failure: leave the task for redelivery.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}

	result, err := e.runWorkflow(ctx, t, msg)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}

	e.pushWorkspace(ctx, t.ProjectID)

	if err := e.enqueueDeploy(ctx, t, result); err != nil {
		// Leaving the task for redelivery retries the enqueue; the re-run
		// skips the already-completed stages.
		return nil, err
	}
	return translateResult(result), nil
}

// ensureWorkspace restores completed stages' generated files into the
// local workspace before the engine runs. A redelivered task may land
// on a pod that never executed the earlier stages.
func (e *Executor) ensureWorkspace(ctx context.Context, projectID string) error {
	if e.files == nil || e.stages == nil {
		return nil
	}
	recs, err := e.stages.ListStages(ctx, projectID)
	if err != nil {
		return fmt.Errorf("listing stages for workspace restore: %w", err)
	}
	var required []string
	for _, rec := range recs {
		if rec.Status != models.StageStatusCompleted {
			continue
		}
		for _, gf := range rec.GeneratedFiles {
			required = append(required, gf.Path)
		}
	}
	if len(required) == 0 {
		return nil
	}
	p, err := e.projects.GetProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("loading project for workspace restore: %w", err)
	}
	if err := e.files.EnsureFilesAvailable(ctx, p, required); err != nil {
		return fmt.Errorf("restoring workspace for project %s: %w", projectID, err)
	}
	return nil
}

// pushWorkspace uploads the local workspace after a run so the files
// outlive this pod: a later delivery or the deployment pulls them back.
// Best effort: stage outputs are already persisted, and the next run
// re-uploads whatever is still local.
func (e *Executor) pushWorkspace(ctx context.Context, projectID string) {
	if e.files == nil {
		return
	}
	p, err := e.projects.GetProject(ctx, projectID)
	if err != nil {
		e.log.Warn("Skipping workspace upload", "project_id", projectID, "error", err)
		return
	}
	n, err := e.files.SyncToS3(ctx, p)
	if err != nil {
		e.log.Warn("Workspace upload failed", "project_id", projectID, "error", err)
		return
	}
	if n > 0 {
		e.log.Info("Workspace uploaded", "project_id", projectID, "files", n)
	}
}

// enqueueDeploy queues the deployment that follows a completed agent
// build. Tool builds produce no deployable agent.
func (e *Executor) enqueueDeploy(ctx context.Context, t *ent.Task, result *models.ExecutionResult) error {
	if e.tasks == nil || result.FinalStatus != models.FinalStatusCompleted {
		return nil
	}
	if t.TaskType != task.TaskTypeBuildAgent && t.TaskType != task.TaskTypeUpdateAgent {
		return nil
	}
	created, err := e.tasks.CreateQueued(ctx, models.TaskMessage{
		ProjectID: t.ProjectID,
		TaskType:  models.TaskTypeDeployAgent,
		Action:    models.TaskActionExecute,
		Priority:  t.Priority,
	})
	if err != nil {
		return fmt.Errorf("enqueueing deployment for project %s: %w", t.ProjectID, err)
	}
	e.log.Info("Deployment task enqueued", "project_id", t.ProjectID, "deploy_task_id", created.ID)
	return nil
}

// runWorkflow resolves the message action into an engine entry point.
func (e *Executor) runWorkflow(ctx context.Context, t *ent.Task, msg *models.TaskMessage) (*models.ExecutionResult, error) {
	log := e.log.With("task_id", t.ID, "project_id", t.ProjectID, "action", msg.Action)

	switch msg.Action {
	case models.TaskActionResume:
		stage, err := e.takeResumeStage(ctx, t.ProjectID)
		if err != nil {
			return nil, err
		}
		if stage == "" {
			// No recorded resume point: completed stages are skipped, so a
			// full run continues from the first non-completed stage.
			log.Info("Resuming workflow from first pending stage")
			return e.engine.ExecuteToCompletion(ctx, t.ProjectID)
		}
		log.Info("Resuming workflow", "stage", stage)
		return e.engine.ExecuteFromStage(ctx, t.ProjectID, stage, true)

	case models.TaskActionRestart:
		if msg.TargetStage == "" {
			return nil, fmt.Errorf("restart task %s has no target stage", t.ID)
		}
		log.Info("Restarting workflow", "stage", msg.TargetStage)
		return e.engine.ExecuteFromStage(ctx, t.ProjectID, msg.TargetStage, true)

	default: // execute
		if msg.TargetStage != "" {
			log.Info("Executing workflow stage",
				"stage", msg.TargetStage,
				"to_completion", msg.ExecuteToCompletion)
			return e.engine.ExecuteFromStage(ctx, t.ProjectID, msg.TargetStage, msg.ExecuteToCompletion)
		}
		log.Info("Executing workflow", "workflow_type", msg.WorkflowType)
		return e.engine.ExecuteToCompletion(ctx, t.ProjectID)
	}
}

// takeResumeStage consumes the project's recorded resume point. It is
// cleared on first delivery so a redelivered resume task falls back to
// the first-pending-stage path instead of replaying a stale target.
func (e *Executor) takeResumeStage(ctx context.Context, projectID string) (string, error) {
	p, err := e.projects.GetProject(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("loading project for resume: %w", err)
	}
	stage := p.ResumeFromStage
	if stage != "" {
		p.ResumeFromStage = ""
		if err := e.projects.SaveProject(ctx, p); err != nil {
			return "", fmt.Errorf("clearing resume stage: %w", err)
		}
	}
	return stage, nil
}

// deploy handles deploy_agent tasks.
func (e *Executor) deploy(ctx context.Context, t *ent.Task) (*TaskResult, error) {
	if e.deployer == nil {
		return &TaskResult{
			Status:       task.StatusFailed,
			ErrorMessage: "deployment is not configured on this pod",
		}, nil
	}
	summary, err := e.deployer.DeployProject(ctx, t.ProjectID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return &TaskResult{
			Status:       task.StatusFailed,
			ErrorMessage: err.Error(),
		}, nil
	}
	return &TaskResult{Status: task.StatusCompleted, Result: summary}, nil
}

// translateResult maps the engine's terminal status onto the task row.
//
//	completed → task completed (the project completed alongside it)
//	failed    → task failed with the error message
//	paused    → task pending: released, resume re-queues it
//	stopped   → task cancelled
func translateResult(result *models.ExecutionResult) *TaskResult {
	switch result.FinalStatus {
	case models.FinalStatusCompleted:
		return &TaskResult{
			Status: task.StatusCompleted,
			Result: marshalRunSummary(result),
		}
	case models.FinalStatusPaused:
		return &TaskResult{Status: task.StatusPending}
	case models.FinalStatusStopped:
		return &TaskResult{Status: task.StatusCancelled}
	default:
		return &TaskResult{
			Status:       task.StatusFailed,
			ErrorMessage: result.Message,
		}
	}
}

// marshalRunSummary renders the completed run's result field.
func marshalRunSummary(result *models.ExecutionResult) string {
	summary := struct {
		FinalStatus     models.FinalStatus `json:"final_status"`
		CompletedStages []string           `json:"completed_stages"`
		TotalTokens     int                `json:"total_tokens"`
		EstimatedCost   float64            `json:"estimated_cost"`
	}{
		FinalStatus:     result.FinalStatus,
		CompletedStages: result.CompletedStages,
		TotalTokens:     result.Metrics.TotalTokens(),
		EstimatedCost:   result.Metrics.EstimatedCost,
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return ""
	}
	return string(data)
}

// decodeTaskMessage converts the stored JSON payload into the typed
// queue message.
func decodeTaskMessage(payload map[string]interface{}) (*models.TaskMessage, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var msg models.TaskMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.ProjectID == "" {
		return nil, fmt.Errorf("payload missing project_id")
	}
	return &msg, nil
}
