package services

import (
	"context"
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

func TestControlService_Pause(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewControlService(client.Client, testConfig(t))
	ctx := context.Background()

	t.Run("pauses a building project", func(t *testing.T) {
		p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusBuilding)

		paused, err := service.Pause(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ControlStatusPaused, paused.ControlStatus)
		assert.NotNil(t, paused.PauseRequestedAt)
		// The engine, not the control path, moves status to paused once
		// the current stage persists.
		assert.Equal(t, models.ProjectStatusBuilding, paused.Status)

		// Repeated pause is a no-op.
		again, err := service.Pause(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ControlStatusPaused, again.ControlStatus)
	})

	t.Run("rejects terminal projects", func(t *testing.T) {
		p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusCompleted)
		_, err := service.Pause(ctx, p.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := service.Pause(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestControlService_Resume(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewControlService(client.Client, testConfig(t))
	ctx := context.Background()

	pauseProject := func(t *testing.T) *ent.Project {
		t.Helper()
		p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusPaused)
		p, err := p.Update().SetControlStatus(project.ControlStatusPaused).Save(ctx)
		require.NoError(t, err)
		return p
	}

	t.Run("resumes and enqueues a resume task", func(t *testing.T) {
		p := pauseProject(t)

		resumed, err := service.Resume(ctx, p.ID, "")
		require.NoError(t, err)
		assert.Equal(t, models.ControlStatusRunning, resumed.ControlStatus)
		assert.Equal(t, models.ProjectStatusQueued, resumed.Status)
		assert.Nil(t, resumed.PauseRequestedAt)

		rows, err := client.Task.Query().Where(task.ProjectIDEQ(p.ID)).All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, task.StatusQueued, rows[0].Status)

		msg := taskToModel(rows[0]).Payload
		assert.Equal(t, models.TaskActionResume, msg.Action)
		assert.Empty(t, msg.TargetStage)
	})

	t.Run("resume from a named stage normalizes legacy spellings", func(t *testing.T) {
		p := pauseProject(t)

		resumed, err := service.Resume(ctx, p.ID, "system_architect")
		require.NoError(t, err)
		assert.Equal(t, "system_architecture", resumed.ResumeFromStage)

		rows, err := client.Task.Query().Where(task.ProjectIDEQ(p.ID)).All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "system_architecture", taskToModel(rows[0]).Payload.TargetStage)
	})

	t.Run("rejects unknown stage", func(t *testing.T) {
		p := pauseProject(t)
		_, err := service.Resume(ctx, p.ID, "no_such_stage")
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects non-paused project", func(t *testing.T) {
		p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusBuilding)
		_, err := service.Resume(ctx, p.ID, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestControlService_Stop(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewControlService(client.Client, testConfig(t))
	ctx := context.Background()

	t.Run("records intent for a building project", func(t *testing.T) {
		p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusBuilding)

		stopped, err := service.Stop(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ControlStatusStopped, stopped.ControlStatus)
		assert.NotNil(t, stopped.StopRequestedAt)
		// The running engine observes the stop and cancels the project.
		assert.Equal(t, models.ProjectStatusBuilding, stopped.Status)
	})

	t.Run("cancels immediately when no lease is active", func(t *testing.T) {
		p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusQueued)
		queued, err := client.Task.Create().
			SetID(uuid.New().String()).
			SetProjectID(p.ID).
			SetTaskType(task.TaskTypeBuildAgent).
			SetStatus(task.StatusQueued).
			SetPayload(map[string]interface{}{"project_id": p.ID}).
			Save(ctx)
		require.NoError(t, err)

		stopped, err := service.Stop(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ProjectStatusCancelled, stopped.Status)
		assert.NotNil(t, stopped.CompletedAt)

		row, err := client.Task.Get(ctx, queued.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCancelled, row.Status)
	})

	t.Run("rejects terminal projects", func(t *testing.T) {
		p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusFailed)
		_, err := service.Stop(ctx, p.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestControlService_Restart(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testConfig(t)
	service := NewControlService(client.Client, cfg)
	ctx := context.Background()

	catalog, err := cfg.Catalog(models.WorkflowTypeAgentBuild)
	require.NoError(t, err)
	total := len(catalog.Stages)

	seedCompletedPipeline := func(t *testing.T, status project.Status) *ent.Project {
		t.Helper()
		p := seedProject(t, client, project.WorkflowTypeAgentBuild, status)
		for _, def := range catalog.Stages {
			st := seedStage(t, client, p.ID, def.Name, def.Order, stage.StatusCompleted)
			_, err := st.Update().
				SetAgentOutputContent("output for " + def.Name).
				SetInputTokens(100).
				SetOutputTokens(50).
				Save(ctx)
			require.NoError(t, err)
		}
		return p
	}

	t.Run("clears stages from the target onward and enqueues", func(t *testing.T) {
		p := seedCompletedPipeline(t, project.StatusCompleted)
		from := catalog.Stages[3] // tools_developer

		restarted, err := service.Restart(ctx, p.ID, from.Name)
		require.NoError(t, err)
		assert.Equal(t, models.ProjectStatusQueued, restarted.Status)
		assert.Equal(t, models.ControlStatusRunning, restarted.ControlStatus)
		assert.Equal(t, from.Name, restarted.ResumeFromStage)
		assert.Equal(t, from.Name, restarted.CurrentStage)
		assert.Equal(t, 3*100/total, restarted.Progress)
		assert.Nil(t, restarted.CompletedAt)

		stages, err := client.Stage.Query().
			Where(stage.ProjectIDEQ(p.ID)).
			Order(ent.Asc(stage.FieldStageNumber)).
			All(ctx)
		require.NoError(t, err)
		for _, st := range stages {
			if st.StageNumber < from.Order {
				assert.Equal(t, stage.StatusCompleted, st.Status, st.StageName)
			} else {
				assert.Equal(t, stage.StatusPending, st.Status, st.StageName)
				assert.Empty(t, st.AgentOutputContent)
				assert.Zero(t, st.InputTokens)
			}
		}

		rows, err := client.Task.Query().Where(task.ProjectIDEQ(p.ID)).All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		msg := taskToModel(rows[0]).Payload
		assert.Equal(t, models.TaskActionRestart, msg.Action)
		assert.Equal(t, from.Name, msg.TargetStage)
	})

	t.Run("restart from the first stage zeroes progress", func(t *testing.T) {
		p := seedCompletedPipeline(t, project.StatusFailed)

		restarted, err := service.Restart(ctx, p.ID, catalog.Stages[0].Name)
		require.NoError(t, err)
		assert.Zero(t, restarted.Progress)
		assert.Nil(t, restarted.ErrorInfo)

		pending, err := client.Stage.Query().
			Where(stage.ProjectIDEQ(p.ID), stage.StatusEQ(stage.StatusPending)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, total, pending)
	})

	t.Run("rejects restart while building", func(t *testing.T) {
		p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusBuilding)
		_, err := service.Restart(ctx, p.ID, catalog.Stages[0].Name)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("validates input", func(t *testing.T) {
		p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusCompleted)
		_, err := service.Restart(ctx, p.ID, "")
		assert.True(t, IsValidationError(err))
		_, err = service.Restart(ctx, p.ID, "no_such_stage")
		assert.True(t, IsValidationError(err))
	})
}
