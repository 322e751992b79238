package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/ent/project"
	"github.com/nexus-ai/nexus/ent/stage"
	"github.com/nexus-ai/nexus/pkg/models"
	testdb "github.com/nexus-ai/nexus/test/database"
)

func TestStageService_SaveStage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewStageService(client.Client)
	ctx := context.Background()

	t.Run("updates a pre-seeded stage in place", func(t *testing.T) {
		p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusBuilding)
		seedStage(t, client, p.ID, "requirements_analysis", 1, stage.StatusPending)

		now := time.Now()
		rec := &models.StageRecord{
			ProjectID:       p.ID,
			Name:            "requirements_analysis",
			Number:          1,
			DisplayName:     "Requirements Analysis",
			AgentName:       "RequirementsAnalyst",
			Status:          models.StageStatusCompleted,
			DurationSeconds: 12.5,
			Metrics: models.StageMetrics{
				InputTokens:    1200,
				OutputTokens:   340,
				ToolCallsCount: 2,
				ModelID:        "test-model",
			},
			OutputContent:  "## Requirements\n...",
			DesignDocument: &models.DesignDocument{Content: "## Requirements", Format: "markdown"},
			GeneratedFiles: []models.GeneratedFile{
				{Path: "docs/requirements.md", Size: 512, Checksum: "abc123", LastModified: now},
			},
			CompletedAt: &now,
		}
		require.NoError(t, service.SaveStage(ctx, rec))

		loaded, err := service.GetStage(ctx, p.ID, "requirements_analysis")
		require.NoError(t, err)
		assert.Equal(t, models.StageStatusCompleted, loaded.Status)
		assert.Equal(t, 12.5, loaded.DurationSeconds)
		assert.Equal(t, 1200, loaded.Metrics.InputTokens)
		assert.Equal(t, "test-model", loaded.Metrics.ModelID)
		assert.Equal(t, "## Requirements\n...", loaded.OutputContent)
		require.NotNil(t, loaded.DesignDocument)
		assert.Equal(t, "markdown", loaded.DesignDocument.Format)
		require.Len(t, loaded.GeneratedFiles, 1)
		assert.Equal(t, "docs/requirements.md", loaded.GeneratedFiles[0].Path)
		assert.NotNil(t, loaded.CompletedAt)

		// Only one row exists for the pair.
		count, err := client.Stage.Query().Where(stage.ProjectIDEQ(p.ID)).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("creates the row when the pipeline was never seeded", func(t *testing.T) {
		p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusBuilding)

		require.NoError(t, service.SaveStage(ctx, &models.StageRecord{
			ProjectID: p.ID,
			Name:      "system_architecture",
			Number:    2,
			Status:    models.StageStatusRunning,
		}))

		loaded, err := service.GetStage(ctx, p.ID, "system_architecture")
		require.NoError(t, err)
		assert.Equal(t, models.StageStatusRunning, loaded.Status)
	})

	t.Run("clears a stale error message on success", func(t *testing.T) {
		p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusBuilding)
		st := seedStage(t, client, p.ID, "agent_design", 3, stage.StatusFailed)
		_, err := st.Update().SetErrorMessage("llm timed out").Save(ctx)
		require.NoError(t, err)

		require.NoError(t, service.SaveStage(ctx, &models.StageRecord{
			ProjectID: p.ID,
			Name:      "agent_design",
			Number:    3,
			Status:    models.StageStatusCompleted,
		}))

		loaded, err := service.GetStage(ctx, p.ID, "agent_design")
		require.NoError(t, err)
		assert.Empty(t, loaded.ErrorMessage)
	})

	t.Run("normalizes legacy stage names", func(t *testing.T) {
		p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusBuilding)
		seedStage(t, client, p.ID, "requirements_analysis", 1, stage.StatusPending)

		// Legacy spelling writes land on the canonical row.
		require.NoError(t, service.SaveStage(ctx, &models.StageRecord{
			ProjectID: p.ID,
			Name:      "requirements_analyzer",
			Number:    1,
			Status:    models.StageStatusRunning,
		}))

		loaded, err := service.GetStage(ctx, p.ID, "requirements_analyzer")
		require.NoError(t, err)
		assert.Equal(t, "requirements_analysis", loaded.Name)
		assert.Equal(t, models.StageStatusRunning, loaded.Status)
	})

	t.Run("validates input", func(t *testing.T) {
		err := service.SaveStage(ctx, &models.StageRecord{Name: "x"})
		assert.True(t, IsValidationError(err))
		err = service.SaveStage(ctx, &models.StageRecord{ProjectID: "p"})
		assert.True(t, IsValidationError(err))
	})
}

func TestStageService_ListStages(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewStageService(client.Client)
	ctx := context.Background()

	p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusBuilding)
	seedStage(t, client, p.ID, "agent_design", 3, stage.StatusPending)
	seedStage(t, client, p.ID, "requirements_analysis", 1, stage.StatusCompleted)
	seedStage(t, client, p.ID, "system_architecture", 2, stage.StatusRunning)

	stages, err := service.ListStages(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, stages, 3)
	assert.Equal(t, "requirements_analysis", stages[0].Name)
	assert.Equal(t, "system_architecture", stages[1].Name)
	assert.Equal(t, "agent_design", stages[2].Name)

	empty, err := service.ListStages(ctx, "no-such-project")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStageService_ClearFromStage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewStageService(client.Client)
	ctx := context.Background()

	p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusCompleted)
	now := time.Now()
	for i, name := range []string{"requirements_analysis", "system_architecture", "agent_design"} {
		st := seedStage(t, client, p.ID, name, i+1, stage.StatusCompleted)
		_, err := st.Update().
			SetAgentOutputContent("output").
			SetInputTokens(100).
			SetOutputTokens(50).
			SetDurationSeconds(3.2).
			SetCompletedAt(now).
			Save(ctx)
		require.NoError(t, err)
	}

	cleared, err := service.ClearFromStage(ctx, p.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, cleared)

	stages, err := service.ListStages(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageStatusCompleted, stages[0].Status)
	for _, st := range stages[1:] {
		assert.Equal(t, models.StageStatusPending, st.Status, st.Name)
		assert.Empty(t, st.OutputContent)
		assert.Zero(t, st.Metrics.InputTokens)
		assert.Zero(t, st.DurationSeconds)
		assert.Nil(t, st.CompletedAt)
	}
}
