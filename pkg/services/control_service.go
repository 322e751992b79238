package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nexus-ai/nexus/ent"
	"github.com/nexus-ai/nexus/ent/project"
	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/models"
)

// ControlService is the only writer of a project's control_status and
// the *_requested_at timestamps. The engine reads control status
// between stages and around LLM calls; it never writes it, so a
// request recorded here is always observed.
//
// Pause and stop only record intent: the running engine notices at the
// next stage boundary. Resume and restart additionally enqueue a fresh
// task, which a worker honors once the prior lease is gone.
type ControlService struct {
	client *ent.Client
	cfg    *config.Config
	stages *StageService
	tasks  *TaskService
}

// NewControlService creates a new ControlService
func NewControlService(client *ent.Client, cfg *config.Config) *ControlService {
	return &ControlService{
		client: client,
		cfg:    cfg,
		stages: NewStageService(client),
		tasks:  NewTaskService(client),
	}
}

// Pause requests a clean exit after the current stage persists.
// Repeated pauses are no-ops.
func (s *ControlService) Pause(ctx context.Context, projectID string) (*models.Project, error) {
	p, err := s.getProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.ControlStatus == project.ControlStatusPaused {
		return projectToModel(p), nil
	}
	switch p.Status {
	case project.StatusQueued, project.StatusBuilding:
	default:
		return nil, fmt.Errorf("%w: cannot pause project in status %s", ErrInvalidTransition, p.Status)
	}

	updated, err := p.Update().
		SetControlStatus(project.ControlStatusPaused).
		SetPauseRequestedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to pause project: %w", err)
	}
	return projectToModel(updated), nil
}

// Resume clears a pause and enqueues a resume task. With a non-empty
// fromStage the run restarts from that stage instead of the first
// non-completed one.
func (s *ControlService) Resume(ctx context.Context, projectID, fromStage string) (*models.Project, error) {
	p, err := s.getProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.ControlStatus != project.ControlStatusPaused && p.Status != project.StatusPaused {
		return nil, fmt.Errorf("%w: project is not paused", ErrInvalidTransition)
	}

	if fromStage != "" {
		fromStage = config.NormalizeStageName(fromStage)
		if _, err := s.stageIndex(models.WorkflowType(p.WorkflowType), fromStage); err != nil {
			return nil, err
		}
	}

	update := p.Update().
		SetControlStatus(project.ControlStatusRunning).
		ClearPauseRequestedAt().
		SetStatus(project.StatusQueued)
	if fromStage != "" {
		update.SetResumeFromStage(fromStage)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resume project: %w", err)
	}

	target := fromStage
	if target == "" && updated.ResumeFromStage != nil {
		target = *updated.ResumeFromStage
	}
	if err := s.enqueueControlTask(ctx, updated, models.TaskActionResume, target); err != nil {
		return nil, err
	}
	return projectToModel(updated), nil
}

// Stop requests termination. A running engine exits after the current
// stage and marks the project cancelled; a project with no active
// lease is cancelled immediately. Outstanding queue tasks are
// cancelled either way.
func (s *ControlService) Stop(ctx context.Context, projectID string) (*models.Project, error) {
	p, err := s.getProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if models.ProjectStatus(p.Status).Terminal() {
		return nil, fmt.Errorf("%w: cannot stop project in status %s", ErrInvalidTransition, p.Status)
	}

	if _, err := s.tasks.CancelOutstanding(ctx, projectID); err != nil {
		return nil, err
	}

	update := p.Update().
		SetControlStatus(project.ControlStatusStopped).
		SetStopRequestedAt(time.Now())
	switch p.Status {
	case project.StatusPending, project.StatusQueued, project.StatusPaused:
		// No worker holds a lease; nothing will observe the stop signal.
		update.SetStatus(project.StatusCancelled).
			SetCompletedAt(time.Now())
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to stop project: %w", err)
	}
	return projectToModel(updated), nil
}

// Restart clears every stage at or after fromStage back to pending and
// enqueues a restart task. Not allowed while a build is in flight;
// stop or pause first.
func (s *ControlService) Restart(ctx context.Context, projectID, fromStage string) (*models.Project, error) {
	if fromStage == "" {
		return nil, NewValidationError("from_stage", "required")
	}

	p, err := s.getProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.Status == project.StatusBuilding {
		return nil, fmt.Errorf("%w: cannot restart while building", ErrInvalidTransition)
	}

	fromStage = config.NormalizeStageName(fromStage)
	idx, err := s.stageIndex(models.WorkflowType(p.WorkflowType), fromStage)
	if err != nil {
		return nil, err
	}

	if _, err := s.tasks.CancelOutstanding(ctx, projectID); err != nil {
		return nil, err
	}
	if _, err := s.stages.ClearFromStage(ctx, projectID, idx+1); err != nil {
		return nil, err
	}

	catalog, err := s.cfg.Catalog(models.WorkflowType(p.WorkflowType))
	if err != nil {
		return nil, err
	}
	progress := 0
	if total := len(catalog.Stages); total > 0 {
		progress = idx * 100 / total
	}

	updated, err := p.Update().
		SetControlStatus(project.ControlStatusRunning).
		SetStatus(project.StatusQueued).
		SetResumeFromStage(fromStage).
		SetCurrentStage(fromStage).
		SetProgress(progress).
		ClearErrorInfo().
		ClearPauseRequestedAt().
		ClearStopRequestedAt().
		ClearCompletedAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restart project: %w", err)
	}

	if err := s.enqueueControlTask(ctx, updated, models.TaskActionRestart, fromStage); err != nil {
		return nil, err
	}
	return projectToModel(updated), nil
}

func (s *ControlService) getProject(ctx context.Context, projectID string) (*ent.Project, error) {
	if projectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	p, err := s.client.Project.Get(ctx, projectID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// stageIndex validates a canonical stage name against the project's
// catalog and returns its 0-based position.
func (s *ControlService) stageIndex(wt models.WorkflowType, name string) (int, error) {
	catalog, err := s.cfg.Catalog(wt)
	if err != nil {
		return 0, err
	}
	idx := catalog.Index(name)
	if idx < 0 {
		return 0, NewValidationError("from_stage", fmt.Sprintf("unknown stage %q for workflow %s", name, wt))
	}
	return idx, nil
}

func (s *ControlService) enqueueControlTask(ctx context.Context, p *ent.Project, action models.TaskAction, targetStage string) error {
	_, err := s.tasks.CreateQueued(ctx, models.TaskMessage{
		ProjectID:           p.ID,
		TaskType:            models.TaskTypeForWorkflow(models.WorkflowType(p.WorkflowType)),
		WorkflowType:        models.WorkflowType(p.WorkflowType),
		Requirement:         p.Requirement,
		UserID:              p.UserID,
		Priority:            p.Priority,
		Action:              action,
		TargetStage:         targetStage,
		ExecuteToCompletion: true,
		Metadata:            p.Metadata,
	})
	return err
}
