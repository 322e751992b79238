package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/ent/project"
	"github.com/nexus-ai/nexus/pkg/models"
	testdb "github.com/nexus-ai/nexus/test/database"
)

func TestProjectService_SaveProject(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	t.Run("round-trips engine-owned fields", func(t *testing.T) {
		seeded := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusQueued)

		p, err := service.GetProject(ctx, seeded.ID)
		require.NoError(t, err)

		now := time.Now()
		p.Status = models.ProjectStatusBuilding
		p.CurrentStage = "system_architecture"
		p.Progress = 22
		p.StartedAt = &now
		p.Metrics = models.AggregatedMetrics{InputTokens: 1000, OutputTokens: 400, EstimatedCost: 0.0042}
		p.ErrorInfo = nil
		require.NoError(t, service.SaveProject(ctx, p))

		loaded, err := service.GetProject(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ProjectStatusBuilding, loaded.Status)
		assert.Equal(t, "system_architecture", loaded.CurrentStage)
		assert.Equal(t, 22, loaded.Progress)
		assert.NotNil(t, loaded.StartedAt)
		assert.Equal(t, 1000, loaded.Metrics.InputTokens)
		assert.InDelta(t, 0.0042, loaded.Metrics.EstimatedCost, 1e-9)
	})

	t.Run("never writes control status", func(t *testing.T) {
		seeded := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusBuilding)
		_, err := seeded.Update().SetControlStatus(project.ControlStatusPaused).Save(ctx)
		require.NoError(t, err)

		// An engine save carrying a stale control status must not undo
		// the user's pause request.
		p, err := service.GetProject(ctx, seeded.ID)
		require.NoError(t, err)
		p.ControlStatus = models.ControlStatusRunning
		require.NoError(t, service.SaveProject(ctx, p))

		cs, err := service.GetControlStatus(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ControlStatusPaused, cs)
	})

	t.Run("sets and clears error info", func(t *testing.T) {
		seeded := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusBuilding)

		p, err := service.GetProject(ctx, seeded.ID)
		require.NoError(t, err)
		p.Status = models.ProjectStatusFailed
		p.ErrorInfo = &models.ErrorInfo{Message: "stage blew up", FailedStage: "tools_developer"}
		require.NoError(t, service.SaveProject(ctx, p))

		loaded, err := service.GetProject(ctx, seeded.ID)
		require.NoError(t, err)
		require.NotNil(t, loaded.ErrorInfo)
		assert.Equal(t, "stage blew up", loaded.ErrorInfo.Message)
		assert.Equal(t, "tools_developer", loaded.ErrorInfo.FailedStage)

		loaded.Status = models.ProjectStatusBuilding
		loaded.ErrorInfo = nil
		require.NoError(t, service.SaveProject(ctx, loaded))

		again, err := service.GetProject(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Nil(t, again.ErrorInfo)
	})

	t.Run("clears consumed resume stage", func(t *testing.T) {
		seeded := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusQueued)
		_, err := seeded.Update().SetResumeFromStage("agent_design").Save(ctx)
		require.NoError(t, err)

		p, err := service.GetProject(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "agent_design", p.ResumeFromStage)

		p.ResumeFromStage = ""
		require.NoError(t, service.SaveProject(ctx, p))

		loaded, err := service.GetProject(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Empty(t, loaded.ResumeFromStage)
	})

	t.Run("unknown project", func(t *testing.T) {
		err := service.SaveProject(ctx, &models.Project{ID: uuid.New().String()})
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = service.GetProject(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProjectService_GetControlStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	seeded := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusBuilding)

	cs, err := service.GetControlStatus(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ControlStatusRunning, cs)

	_, err = seeded.Update().SetControlStatus(project.ControlStatusStopped).Save(ctx)
	require.NoError(t, err)

	cs, err = service.GetControlStatus(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ControlStatusStopped, cs)

	_, err = service.GetControlStatus(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectService_ListProjects(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusCompleted)
	seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusBuilding)
	seedProject(t, client, project.WorkflowTypeToolBuild, project.StatusBuilding)

	t.Run("filters by status", func(t *testing.T) {
		projects, total, err := service.ListProjects(ctx, ProjectFilter{Status: models.ProjectStatusBuilding})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, projects, 2)
	})

	t.Run("filters by workflow type", func(t *testing.T) {
		projects, total, err := service.ListProjects(ctx, ProjectFilter{WorkflowType: models.WorkflowTypeToolBuild})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, projects, 1)
		assert.Equal(t, models.WorkflowTypeToolBuild, projects[0].WorkflowType)
	})

	t.Run("paginates with total count", func(t *testing.T) {
		projects, total, err := service.ListProjects(ctx, ProjectFilter{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, projects, 2)

		rest, _, err := service.ListProjects(ctx, ProjectFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, rest, 1)
	})
}
