package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nexus-ai/nexus/ent"
	"github.com/nexus-ai/nexus/ent/project"
	"github.com/nexus-ai/nexus/pkg/models"
)

// ProjectService reads and writes Project records. It implements the
// workflow engine's ProjectStore. SaveProject persists the engine-owned
// fields but never control_status or the *_requested_at timestamps:
// those belong to the ControlService path, so a user pause or stop
// request can never be overwritten by an in-flight engine save.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// GetProject returns one project by ID
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
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
	return projectToModel(p), nil
}

// SaveProject persists the engine-owned project fields. Empty
// resume_from_stage and nil error_info clear the stored values.
func (s *ProjectService) SaveProject(ctx context.Context, p *models.Project) error {
	if p == nil || p.ID == "" {
		return NewValidationError("project_id", "required")
	}

	update := s.client.Project.UpdateOneID(p.ID).
		SetProjectName(p.Name).
		SetStatus(project.Status(p.Status)).
		SetCurrentStage(p.CurrentStage).
		SetProgress(p.Progress).
		SetPriority(p.Priority).
		SetNillableStartedAt(p.StartedAt).
		SetNillableCompletedAt(p.CompletedAt)

	if m := toJSONMap(p.Metrics); m != nil {
		update.SetAggregatedMetrics(m)
	}
	if len(p.Tags) > 0 {
		update.SetTags(p.Tags)
	}
	if len(p.Metadata) > 0 {
		update.SetMetadata(p.Metadata)
	}
	if p.ErrorInfo != nil {
		update.SetErrorInfo(toJSONMap(*p.ErrorInfo))
	} else {
		update.ClearErrorInfo()
	}
	if p.ResumeFromStage != "" {
		update.SetResumeFromStage(p.ResumeFromStage)
	} else {
		update.ClearResumeFromStage()
	}

	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

// GetControlStatus re-reads only the control status column, used by the
// engine to observe pause/stop requests between stages.
func (s *ProjectService) GetControlStatus(ctx context.Context, projectID string) (models.ControlStatus, error) {
	row, err := s.client.Project.Query().
		Where(project.IDEQ(projectID)).
		Select(project.FieldControlStatus).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get control status: %w", err)
	}
	return models.ControlStatus(row.ControlStatus), nil
}

// ProjectFilter narrows ListProjects results. Zero values mean no filter.
type ProjectFilter struct {
	Status       models.ProjectStatus
	WorkflowType models.WorkflowType
	UserID       string
	Limit        int
	Offset       int
}

// ListProjects returns projects newest-first with the total count
// matching the filter.
func (s *ProjectService) ListProjects(ctx context.Context, f ProjectFilter) ([]*models.Project, int, error) {
	query := s.client.Project.Query()

	if f.Status != "" {
		query = query.Where(project.StatusEQ(project.Status(f.Status)))
	}
	if f.WorkflowType != "" {
		query = query.Where(project.WorkflowTypeEQ(project.WorkflowType(f.WorkflowType)))
	}
	if f.UserID != "" {
		query = query.Where(project.UserIDEQ(f.UserID))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	rows, err := query.
		Order(ent.Desc(project.FieldCreatedAt)).
		Limit(limit).
		Offset(f.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*models.Project, len(rows))
	for i, row := range rows {
		projects[i] = projectToModel(row)
	}
	return projects, total, nil
}

// ListTerminalBefore returns projects that reached a terminal status
// before the cutoff, oldest-first. Used by the retention sweeps.
func (s *ProjectService) ListTerminalBefore(ctx context.Context, cutoff time.Time, limit int) ([]*models.Project, error) {
	if limit <= 0 {
		limit = 500
	}
	rows, err := s.client.Project.Query().
		Where(
			project.StatusIn(project.StatusCompleted, project.StatusFailed, project.StatusCancelled),
			project.CompletedAtLT(cutoff),
		).
		Order(ent.Asc(project.FieldCompletedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list terminal projects: %w", err)
	}

	projects := make([]*models.Project, len(rows))
	for i, row := range rows {
		projects[i] = projectToModel(row)
	}
	return projects, nil
}
