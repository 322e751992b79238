package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nexus-ai/nexus/ent"
	agentent "github.com/nexus-ai/nexus/ent/agent"
	"github.com/nexus-ai/nexus/pkg/models"
)

// AgentService manages deployed agent records. The deployment service
// drives the lifecycle: a record starts offline/deploying, and each
// attempt ends in MarkDeployed or MarkDeployFailed.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// CreateAgentRequest registers a new agent built by a project.
type CreateAgentRequest struct {
	Name         string   `json:"agent_name"`
	Description  string   `json:"description,omitempty"`
	ProjectID    string   `json:"project_id"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// CreateAgent creates an agent record in offline/deploying state.
func (s *AgentService) CreateAgent(ctx context.Context, req CreateAgentRequest) (*models.Agent, error) {
	if req.Name == "" {
		return nil, NewValidationError("agent_name", "required")
	}
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}

	create := s.client.Agent.Create().
		SetID(uuid.New().String()).
		SetAgentName(req.Name).
		SetDescription(req.Description).
		SetProjectID(req.ProjectID)
	if len(req.Capabilities) > 0 {
		create.SetCapabilities(req.Capabilities)
	}

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return agentToModel(row), nil
}

// GetAgent returns one agent by ID
func (s *AgentService) GetAgent(ctx context.Context, agentID string) (*models.Agent, error) {
	if agentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}

	row, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return agentToModel(row), nil
}

// FindByProject returns the newest agent record built by a project, or
// ErrNotFound when the project never produced one.
func (s *AgentService) FindByProject(ctx context.Context, projectID string) (*models.Agent, error) {
	if projectID == "" {
		return nil, NewValidationError("project_id", "required")
	}

	row, err := s.client.Agent.Query().
		Where(agentent.ProjectIDEQ(projectID)).
		Order(ent.Desc(agentent.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find agent: %w", err)
	}
	return agentToModel(row), nil
}

// UpdateAgentRequest carries the mutable descriptive fields.
type UpdateAgentRequest struct {
	Description  *string  `json:"description,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// UpdateAgent updates an agent's description and capabilities.
func (s *AgentService) UpdateAgent(ctx context.Context, agentID string, req UpdateAgentRequest) (*models.Agent, error) {
	if agentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}

	update := s.client.Agent.UpdateOneID(agentID)
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}
	if req.Capabilities != nil {
		update.SetCapabilities(req.Capabilities)
	}

	row, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}
	return agentToModel(row), nil
}

// MarkDeploying flags the start of a deployment attempt.
func (s *AgentService) MarkDeploying(ctx context.Context, agentID string) error {
	_, err := s.client.Agent.UpdateOneID(agentID).
		SetDeploymentStatus(agentent.DeploymentStatusDeploying).
		SetDeploymentError("").
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark agent deploying: %w", err)
	}
	return nil
}

// MarkDeployed records a successful deployment: the agent goes running
// with its runtime handles, and the failure fields are cleared.
func (s *AgentService) MarkDeployed(ctx context.Context, agentID, runtimeID, endpoint string) (*models.Agent, error) {
	row, err := s.client.Agent.UpdateOneID(agentID).
		SetStatus(agentent.StatusRunning).
		SetDeploymentStatus(agentent.DeploymentStatusDeployed).
		SetDeploymentError("").
		SetRuntimeID(runtimeID).
		SetRuntimeEndpoint(endpoint).
		SetLastDeployedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark agent deployed: %w", err)
	}
	return agentToModel(row), nil
}

// MarkDeployFailed rolls the agent back to offline with the captured
// deployment error.
func (s *AgentService) MarkDeployFailed(ctx context.Context, agentID, errorMessage string) error {
	_, err := s.client.Agent.UpdateOneID(agentID).
		SetStatus(agentent.StatusOffline).
		SetDeploymentStatus(agentent.DeploymentStatusFailed).
		SetDeploymentError(errorMessage).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark agent deploy failed: %w", err)
	}
	return nil
}
