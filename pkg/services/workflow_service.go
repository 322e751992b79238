package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nexus-ai/nexus/ent"
	"github.com/nexus-ai/nexus/ent/agent"
	"github.com/nexus-ai/nexus/ent/project"
	"github.com/nexus-ai/nexus/ent/task"
	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/models"
)

// WorkflowService creates build projects: the project record, its
// pre-seeded stage pipeline from the workflow catalog, and the initial
// queue task, all in one transaction. Enqueueing then flips project and
// task to queued so workers can claim the work.
type WorkflowService struct {
	client   *ent.Client
	cfg      *config.Config
	projects *ProjectService
	stages   *StageService
	tasks    *TaskService
}

// NewWorkflowService creates a new WorkflowService
func NewWorkflowService(client *ent.Client, cfg *config.Config) *WorkflowService {
	return &WorkflowService{
		client:   client,
		cfg:      cfg,
		projects: NewProjectService(client),
		stages:   NewStageService(client),
		tasks:    NewTaskService(client),
	}
}

// CreateProjectRequest starts an agent build.
type CreateProjectRequest struct {
	Requirement string   `json:"requirement"`
	ProjectName string   `json:"project_name,omitempty"`
	UserID      string   `json:"user_id,omitempty"`
	Priority    int      `json:"priority,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// AgentUpdateRequest starts an update build against an existing agent.
type AgentUpdateRequest struct {
	AgentID           string `json:"agent_id"`
	UpdateRequirement string `json:"update_requirement"`
	Priority          int    `json:"priority,omitempty"`
}

// ToolBuildRequest starts a standalone tool build.
type ToolBuildRequest struct {
	Requirement string   `json:"requirement"`
	ToolName    string   `json:"tool_name,omitempty"`
	Category    string   `json:"category,omitempty"`
	TargetAgent string   `json:"target_agent,omitempty"`
	Priority    int      `json:"priority,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// CreateWorkflowResult identifies the created project and its task.
type CreateWorkflowResult struct {
	ProjectID   string               `json:"project_id"`
	TaskID      string               `json:"task_id"`
	ProjectName string               `json:"project_name,omitempty"`
	Status      models.ProjectStatus `json:"status"`
}

// WorkflowStatus is the derived view served by the status endpoint.
type WorkflowStatus struct {
	Project *models.Project       `json:"project"`
	Stages  []*models.StageRecord `json:"stages"`
}

// workflowSpec is the normalized input shared by the three create paths.
type workflowSpec struct {
	workflowType models.WorkflowType
	name         string
	requirement  string
	userID       string
	priority     int
	tags         []string
	metadata     map[string]any
}

// CreateProject creates an agent-build project and enqueues its task.
func (s *WorkflowService) CreateProject(ctx context.Context, req CreateProjectRequest) (*CreateWorkflowResult, error) {
	if req.Requirement == "" {
		return nil, NewValidationError("requirement", "required")
	}
	priority, err := normalizePriority(req.Priority)
	if err != nil {
		return nil, err
	}

	return s.createWorkflow(ctx, workflowSpec{
		workflowType: models.WorkflowTypeAgentBuild,
		name:         req.ProjectName,
		requirement:  req.Requirement,
		userID:       req.UserID,
		priority:     priority,
		tags:         req.Tags,
	})
}

// CreateAgentUpdate creates an agent-update project for an existing
// agent and enqueues its task.
func (s *WorkflowService) CreateAgentUpdate(ctx context.Context, req AgentUpdateRequest) (*CreateWorkflowResult, error) {
	if req.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	if req.UpdateRequirement == "" {
		return nil, NewValidationError("update_requirement", "required")
	}
	priority, err := normalizePriority(req.Priority)
	if err != nil {
		return nil, err
	}

	target, err := s.client.Agent.Query().Where(agent.IDEQ(req.AgentID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up agent: %w", err)
	}

	return s.createWorkflow(ctx, workflowSpec{
		workflowType: models.WorkflowTypeAgentUpdate,
		name:         target.AgentName,
		requirement:  req.UpdateRequirement,
		priority:     priority,
		metadata: map[string]any{
			"agent_id":   target.ID,
			"agent_name": target.AgentName,
		},
	})
}

// CreateToolBuild creates a tool-build project and enqueues its task.
func (s *WorkflowService) CreateToolBuild(ctx context.Context, req ToolBuildRequest) (*CreateWorkflowResult, error) {
	if req.Requirement == "" {
		return nil, NewValidationError("requirement", "required")
	}
	priority, err := normalizePriority(req.Priority)
	if err != nil {
		return nil, err
	}

	metadata := map[string]any{}
	if req.ToolName != "" {
		metadata["tool_name"] = req.ToolName
	}
	if req.Category != "" {
		metadata["category"] = req.Category
	}
	if req.TargetAgent != "" {
		metadata["target_agent"] = req.TargetAgent
	}

	return s.createWorkflow(ctx, workflowSpec{
		workflowType: models.WorkflowTypeToolBuild,
		name:         req.ToolName,
		requirement:  req.Requirement,
		priority:     priority,
		tags:         req.Tags,
		metadata:     metadata,
	})
}

// GetStatus returns the project with its full stage pipeline.
func (s *WorkflowService) GetStatus(ctx context.Context, projectID string) (*WorkflowStatus, error) {
	p, err := s.projects.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	stages, err := s.stages.ListStages(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &WorkflowStatus{Project: p, Stages: stages}, nil
}

// GetStageOutput returns the stage record whose output the caller wants
// to read. Oversize outputs carry only an s3 ref; dereferencing is the
// caller's job since the services layer has no blob store handle.
func (s *WorkflowService) GetStageOutput(ctx context.Context, projectID, stageName string) (*models.StageRecord, error) {
	return s.stages.GetStage(ctx, projectID, stageName)
}

// createWorkflow creates project, stages, and task in one transaction,
// then enqueues the task.
func (s *WorkflowService) createWorkflow(httpCtx context.Context, spec workflowSpec) (*CreateWorkflowResult, error) {
	catalog, err := s.cfg.Catalog(spec.workflowType)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	projectID := uuid.New().String()
	taskID := uuid.New().String()
	msg := models.TaskMessage{
		TaskID:              taskID,
		ProjectID:           projectID,
		TaskType:            models.TaskTypeForWorkflow(spec.workflowType),
		WorkflowType:        spec.workflowType,
		Requirement:         spec.requirement,
		UserID:              spec.userID,
		Priority:            spec.priority,
		Action:              models.TaskActionExecute,
		ExecuteToCompletion: true,
		Metadata:            spec.metadata,
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	create := tx.Project.Create().
		SetID(projectID).
		SetProjectName(spec.name).
		SetWorkflowType(project.WorkflowType(spec.workflowType)).
		SetRequirement(spec.requirement).
		SetPriority(spec.priority).
		SetUserID(spec.userID).
		SetStatus(project.StatusPending)
	if len(spec.tags) > 0 {
		create.SetTags(spec.tags)
	}
	if len(spec.metadata) > 0 {
		create.SetMetadata(spec.metadata)
	}
	if _, err := create.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	for _, def := range catalog.Stages {
		_, err := tx.Stage.Create().
			SetID(uuid.New().String()).
			SetProjectID(projectID).
			SetStageName(def.Name).
			SetStageNumber(def.Order).
			SetDisplayName(def.DisplayName).
			SetAgentName(def.AgentName).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to seed stage %s: %w", def.Name, err)
		}
	}

	if _, err := tx.Task.Create().
		SetID(taskID).
		SetProjectID(projectID).
		SetTaskType(task.TaskType(msg.TaskType)).
		SetStatus(task.StatusPending).
		SetPriority(spec.priority).
		SetPayload(toJSONMap(msg)).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit workflow creation: %w", err)
	}

	// Enqueue after the commit: the pending rows are invisible to
	// workers until both flips land.
	if err := s.tasks.Enqueue(ctx, taskID); err != nil {
		return nil, err
	}
	if _, err := s.client.Project.UpdateOneID(projectID).
		SetStatus(project.StatusQueued).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to queue project: %w", err)
	}

	return &CreateWorkflowResult{
		ProjectID:   projectID,
		TaskID:      taskID,
		ProjectName: spec.name,
		Status:      models.ProjectStatusQueued,
	}, nil
}

// normalizePriority applies the default and range check for the 1..5
// priority scale. Zero means unset.
func normalizePriority(p int) (int, error) {
	if p == 0 {
		return 3, nil
	}
	if p < 1 || p > 5 {
		return 0, NewValidationError("priority", "must be between 1 and 5")
	}
	return p, nil
}
