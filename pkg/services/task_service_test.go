package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/ent/project"
	"github.com/nexus-ai/nexus/ent/task"
	"github.com/nexus-ai/nexus/pkg/models"
	testdb "github.com/nexus-ai/nexus/test/database"
)

func TestTaskService_CreateQueued(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusQueued)

	t.Run("creates a queued task with the message payload", func(t *testing.T) {
		created, err := service.CreateQueued(ctx, models.TaskMessage{
			ProjectID:           p.ID,
			TaskType:            models.TaskTypeBuildAgent,
			WorkflowType:        models.WorkflowTypeAgentBuild,
			Requirement:         "Build an AWS pricing agent",
			Priority:            2,
			Action:              models.TaskActionResume,
			TargetStage:         "agent_design",
			ExecuteToCompletion: true,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, models.TaskStatusQueued, created.Status)
		assert.Equal(t, 2, created.Priority)

		loaded, err := service.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TaskActionResume, loaded.Payload.Action)
		assert.Equal(t, "agent_design", loaded.Payload.TargetStage)
		assert.Equal(t, created.ID, loaded.Payload.TaskID)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := service.CreateQueued(ctx, models.TaskMessage{TaskType: models.TaskTypeBuildAgent})
		assert.True(t, IsValidationError(err))
		_, err = service.CreateQueued(ctx, models.TaskMessage{ProjectID: p.ID})
		assert.True(t, IsValidationError(err))
	})
}

func TestTaskService_Enqueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusPending)
	pending, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetProjectID(p.ID).
		SetTaskType(task.TaskTypeBuildAgent).
		SetPayload(map[string]interface{}{"project_id": p.ID}).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, service.Enqueue(ctx, pending.ID))

	row, err := client.Task.Get(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusQueued, row.Status)

	// Already queued: not a pending task any more.
	err = service.Enqueue(ctx, pending.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	err = service.Enqueue(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskService_CancelOutstanding(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusQueued)
	newTask := func(status task.Status) string {
		id := uuid.New().String()
		_, err := client.Task.Create().
			SetID(id).
			SetProjectID(p.ID).
			SetTaskType(task.TaskTypeBuildAgent).
			SetStatus(status).
			SetPayload(map[string]interface{}{"project_id": p.ID}).
			Save(ctx)
		require.NoError(t, err)
		return id
	}
	pendingID := newTask(task.StatusPending)
	queuedID := newTask(task.StatusQueued)
	completedID := newTask(task.StatusCompleted)

	n, err := service.CancelOutstanding(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []string{pendingID, queuedID} {
		row, err := client.Task.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCancelled, row.Status)
		assert.NotNil(t, row.CompletedAt)
	}
	row, err := client.Task.Get(ctx, completedID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, row.Status)

	tasks, err := service.ListTasks(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
}
