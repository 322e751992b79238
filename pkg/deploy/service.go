// Package deploy pushes a completed build's artifacts to the managed
// agent runtime and maintains the Agent record through the attempt.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/nexus-ai/nexus/ent"
	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/filesync"
	"github.com/nexus-ai/nexus/pkg/models"
	"github.com/nexus-ai/nexus/pkg/services"
)

// Service deploys built agents. It implements the queue's Deployer:
// deploy_agent tasks land here, and the build handler can call it
// directly at the end of a pipeline.
type Service struct {
	cfg      *config.DeployConfig
	projects *services.ProjectService
	stages   *services.StageService
	agents   *services.AgentService
	files    *filesync.Manager
	runtime  Runtime
	log      *slog.Logger

	// recipeDir is where temporary build recipes are written. The repo
	// root in production.
	recipeDir string
}

// NewService creates a deployment service.
func NewService(cfg *config.DeployConfig, client *ent.Client, files *filesync.Manager, runtime Runtime) *Service {
	return &Service{
		cfg:      cfg,
		projects: services.NewProjectService(client),
		stages:   services.NewStageService(client),
		agents:   services.NewAgentService(client),
		files:    files,
		runtime:  runtime,
		log:      slog.With("component", "deploy"),

		recipeDir: ".",
	}
}

// DeployProject deploys the agent a project built and returns a short
// summary for the task result. On failure the Agent record is rolled
// back to offline with deployment_status=failed and the captured error.
func (s *Service) DeployProject(ctx context.Context, projectID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.DeployTimeout)
	defer cancel()

	p, err := s.projects.GetProject(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("loading project: %w", err)
	}
	stages, err := s.stages.ListStages(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("loading stages: %w", err)
	}

	// The build may have run on another worker; pull its files first.
	if _, err := s.files.SyncFromS3(ctx, p); err != nil {
		return "", fmt.Errorf("pulling project files: %w", err)
	}

	projectDir := s.files.ProjectDir(p)
	written, err := materializeArtifacts(projectDir, stages)
	if err != nil {
		return "", fmt.Errorf("materializing artifacts: %w", err)
	}
	if len(written) > 0 {
		s.log.Info("Materialized missing artifacts from stage documents",
			"project_id", projectID,
			"file_count", len(written))
	}

	profile := extractProfile(p, stages)
	scanned, err := s.files.Scan(p)
	if err != nil {
		return "", fmt.Errorf("scanning project files: %w", err)
	}

	recipePath, recipe, err := writeRecipe(s.recipeDir, projectDir, p, profile, scanned)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.Remove(recipePath); err != nil && !os.IsNotExist(err) {
			s.log.Warn("Failed to clean up build recipe", "path", recipePath, "error", err)
		}
	}()

	if s.cfg.DryRun {
		s.log.Info("Dry run, skipping runtime deployment",
			"project_id", projectID,
			"agent_name", profile.Name)
		return fmt.Sprintf("dry run: build recipe validated for agent %q", profile.Name), nil
	}

	agent, err := s.prepareAgentRecord(ctx, p, profile)
	if err != nil {
		return "", err
	}

	result, err := s.runtime.Deploy(ctx, &DeployRequest{
		AgentName:    profile.Name,
		ProjectID:    p.ID,
		Description:  profile.Description,
		Capabilities: profile.Capabilities,
		Recipe:       recipe,
	})
	if err != nil {
		// Terminal record write survives task-context cancellation.
		if ferr := s.agents.MarkDeployFailed(context.Background(), agent.ID, err.Error()); ferr != nil {
			s.log.Error("Failed to record deployment failure", "agent_id", agent.ID, "error", ferr)
		}
		return "", fmt.Errorf("runtime deployment failed: %w", err)
	}

	if _, err := s.agents.MarkDeployed(ctx, agent.ID, result.RuntimeID, result.Endpoint); err != nil {
		return "", fmt.Errorf("recording deployment: %w", err)
	}

	s.log.Info("Agent deployed",
		"project_id", projectID,
		"agent_id", agent.ID,
		"agent_name", profile.Name,
		"runtime_id", result.RuntimeID)
	return fmt.Sprintf("agent %q deployed: runtime %s", profile.Name, result.RuntimeID), nil
}

// prepareAgentRecord finds or creates the Agent row for this project
// and flags the deployment attempt on it.
func (s *Service) prepareAgentRecord(ctx context.Context, p *models.Project, profile agentProfile) (*models.Agent, error) {
	agent, err := s.agents.FindByProject(ctx, p.ID)
	if errors.Is(err, services.ErrNotFound) {
		return s.agents.CreateAgent(ctx, services.CreateAgentRequest{
			Name:         profile.Name,
			Description:  profile.Description,
			ProjectID:    p.ID,
			Capabilities: profile.Capabilities,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("looking up agent: %w", err)
	}

	if err := s.agents.MarkDeploying(ctx, agent.ID); err != nil {
		return nil, fmt.Errorf("marking agent deploying: %w", err)
	}
	if _, err := s.agents.UpdateAgent(ctx, agent.ID, services.UpdateAgentRequest{
		Description:  &profile.Description,
		Capabilities: profile.Capabilities,
	}); err != nil {
		return nil, fmt.Errorf("updating agent: %w", err)
	}
	return agent, nil
}
