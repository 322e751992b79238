package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/ent"
	"github.com/nexus-ai/nexus/ent/project"
	"github.com/nexus-ai/nexus/ent/stage"
	"github.com/nexus-ai/nexus/ent/task"
	"github.com/nexus-ai/nexus/pkg/models"
	testdb "github.com/nexus-ai/nexus/test/database"
)

func TestWorkflowService_CreateProject(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testConfig(t)
	service := NewWorkflowService(client.Client, cfg)
	ctx := context.Background()

	t.Run("creates project with seeded stages and queued task", func(t *testing.T) {
		res, err := service.CreateProject(ctx, CreateProjectRequest{
			Requirement: "Build an AWS pricing agent",
			ProjectName: "pricing-agent",
			UserID:      "user-1",
			Priority:    2,
			Tags:        []string{"aws", "pricing"},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.ProjectID)
		assert.NotEmpty(t, res.TaskID)
		assert.Equal(t, "pricing-agent", res.ProjectName)
		assert.Equal(t, models.ProjectStatusQueued, res.Status)

		p, err := client.Project.Get(ctx, res.ProjectID)
		require.NoError(t, err)
		assert.Equal(t, project.StatusQueued, p.Status)
		assert.Equal(t, project.ControlStatusRunning, p.ControlStatus)
		assert.Equal(t, project.WorkflowTypeAgentBuild, p.WorkflowType)
		assert.Equal(t, 2, p.Priority)
		assert.Equal(t, []string{"aws", "pricing"}, p.Tags)

		catalog, err := cfg.Catalog(models.WorkflowTypeAgentBuild)
		require.NoError(t, err)
		stages, err := client.Stage.Query().
			Where(stage.ProjectIDEQ(res.ProjectID)).
			Order(ent.Asc(stage.FieldStageNumber)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, stages, len(catalog.Stages))
		assert.Equal(t, "requirements_analysis", stages[0].StageName)
		for i, st := range stages {
			assert.Equal(t, stage.StatusPending, st.Status)
			assert.Equal(t, i+1, st.StageNumber)
			assert.Equal(t, catalog.Stages[i].Name, st.StageName)
		}

		row, err := client.Task.Get(ctx, res.TaskID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusQueued, row.Status)
		assert.Equal(t, task.TaskTypeBuildAgent, row.TaskType)
		assert.Equal(t, 2, row.Priority)

		msg := taskToModel(row).Payload
		assert.Equal(t, res.ProjectID, msg.ProjectID)
		assert.Equal(t, res.TaskID, msg.TaskID)
		assert.Equal(t, models.TaskActionExecute, msg.Action)
		assert.True(t, msg.ExecuteToCompletion)
		assert.Equal(t, "Build an AWS pricing agent", msg.Requirement)
		assert.Equal(t, "user-1", msg.UserID)
	})

	t.Run("defaults priority to 3", func(t *testing.T) {
		res, err := service.CreateProject(ctx, CreateProjectRequest{
			Requirement: "Build a log triage agent",
		})
		require.NoError(t, err)
		p, err := client.Project.Get(ctx, res.ProjectID)
		require.NoError(t, err)
		assert.Equal(t, 3, p.Priority)
	})

	t.Run("validates input", func(t *testing.T) {
		tests := []struct {
			name    string
			req     CreateProjectRequest
			wantErr string
		}{
			{
				name:    "missing requirement",
				req:     CreateProjectRequest{Priority: 3},
				wantErr: "requirement",
			},
			{
				name:    "priority out of range",
				req:     CreateProjectRequest{Requirement: "x", Priority: 9},
				wantErr: "priority",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateProject(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})
}

func TestWorkflowService_CreateAgentUpdate(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testConfig(t)
	service := NewWorkflowService(client.Client, cfg)
	ctx := context.Background()

	source := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusCompleted)
	deployed, err := client.Agent.Create().
		SetID(uuid.New().String()).
		SetAgentName("pricing-agent").
		SetProjectID(source.ID).
		Save(ctx)
	require.NoError(t, err)

	t.Run("creates update workflow against existing agent", func(t *testing.T) {
		res, err := service.CreateAgentUpdate(ctx, AgentUpdateRequest{
			AgentID:           deployed.ID,
			UpdateRequirement: "Add support for spot pricing",
			Priority:          1,
		})
		require.NoError(t, err)
		assert.Equal(t, "pricing-agent", res.ProjectName)

		p, err := client.Project.Get(ctx, res.ProjectID)
		require.NoError(t, err)
		assert.Equal(t, project.WorkflowTypeAgentUpdate, p.WorkflowType)
		assert.Equal(t, deployed.ID, p.Metadata["agent_id"])

		catalog, err := cfg.Catalog(models.WorkflowTypeAgentUpdate)
		require.NoError(t, err)
		count, err := client.Stage.Query().Where(stage.ProjectIDEQ(res.ProjectID)).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, len(catalog.Stages), count)

		row, err := client.Task.Get(ctx, res.TaskID)
		require.NoError(t, err)
		assert.Equal(t, task.TaskTypeUpdateAgent, row.TaskType)
	})

	t.Run("unknown agent", func(t *testing.T) {
		_, err := service.CreateAgentUpdate(ctx, AgentUpdateRequest{
			AgentID:           uuid.New().String(),
			UpdateRequirement: "anything",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := service.CreateAgentUpdate(ctx, AgentUpdateRequest{UpdateRequirement: "x"})
		assert.True(t, IsValidationError(err))
		_, err = service.CreateAgentUpdate(ctx, AgentUpdateRequest{AgentID: deployed.ID})
		assert.True(t, IsValidationError(err))
	})
}

func TestWorkflowService_CreateToolBuild(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testConfig(t)
	service := NewWorkflowService(client.Client, cfg)
	ctx := context.Background()

	res, err := service.CreateToolBuild(ctx, ToolBuildRequest{
		Requirement: "Build a cost-report fetcher tool",
		ToolName:    "cost-report-fetcher",
		Category:    "finops",
		TargetAgent: "pricing-agent",
		Priority:    4,
	})
	require.NoError(t, err)

	p, err := client.Project.Get(ctx, res.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, project.WorkflowTypeToolBuild, p.WorkflowType)
	assert.Equal(t, "cost-report-fetcher", p.ProjectName)
	assert.Equal(t, "finops", p.Metadata["category"])
	assert.Equal(t, "pricing-agent", p.Metadata["target_agent"])

	row, err := client.Task.Get(ctx, res.TaskID)
	require.NoError(t, err)
	assert.Equal(t, task.TaskTypeBuildTool, row.TaskType)

	msg := taskToModel(row).Payload
	assert.Equal(t, models.WorkflowTypeToolBuild, msg.WorkflowType)
	assert.Equal(t, "cost-report-fetcher", msg.Metadata["tool_name"])
}

func TestWorkflowService_GetStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testConfig(t)
	service := NewWorkflowService(client.Client, cfg)
	ctx := context.Background()

	res, err := service.CreateProject(ctx, CreateProjectRequest{
		Requirement: "Build an AWS pricing agent",
	})
	require.NoError(t, err)

	status, err := service.GetStatus(ctx, res.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, res.ProjectID, status.Project.ID)
	assert.Equal(t, models.ProjectStatusQueued, status.Project.Status)
	require.NotEmpty(t, status.Stages)
	assert.Equal(t, "requirements_analysis", status.Stages[0].Name)
	for _, st := range status.Stages {
		assert.Equal(t, models.StageStatusPending, st.Status)
	}

	_, err = service.GetStatus(ctx, uuid.New().String())
	assert.True(t, errors.Is(err, ErrNotFound))
}
