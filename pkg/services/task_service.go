package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nexus-ai/nexus/ent"
	"github.com/nexus-ai/nexus/ent/task"
	"github.com/nexus-ai/nexus/pkg/models"
)

// TaskService reads task records and moves them between queue states.
// Claiming and lease management live in the queue package; this service
// covers the producer side.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// GetTask returns one task by ID
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	if taskID == "" {
		return nil, NewValidationError("task_id", "required")
	}

	row, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return taskToModel(row), nil
}

// ListTasks returns a project's tasks oldest-first.
func (s *TaskService) ListTasks(ctx context.Context, projectID string) ([]*models.Task, error) {
	if projectID == "" {
		return nil, NewValidationError("project_id", "required")
	}

	rows, err := s.client.Task.Query().
		Where(task.ProjectIDEQ(projectID)).
		Order(ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*models.Task, len(rows))
	for i, row := range rows {
		tasks[i] = taskToModel(row)
	}
	return tasks, nil
}

// Enqueue flips a pending task to queued, making it visible to workers.
func (s *TaskService) Enqueue(ctx context.Context, taskID string) error {
	if taskID == "" {
		return NewValidationError("task_id", "required")
	}

	n, err := s.client.Task.Update().
		Where(task.IDEQ(taskID), task.StatusEQ(task.StatusPending)).
		SetStatus(task.StatusQueued).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}
	if n == 0 {
		exists, err := s.client.Task.Query().Where(task.IDEQ(taskID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check task: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return fmt.Errorf("%w: task %s is not pending", ErrInvalidTransition, taskID)
	}
	return nil
}

// CreateQueued creates a task directly in queued status. Used by the
// control path for resume and restart messages. A missing TaskID is
// filled in; the returned task carries the final payload.
func (s *TaskService) CreateQueued(ctx context.Context, msg models.TaskMessage) (*models.Task, error) {
	if msg.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if msg.TaskType == "" {
		return nil, NewValidationError("task_type", "required")
	}
	if msg.TaskID == "" {
		msg.TaskID = uuid.New().String()
	}

	row, err := s.client.Task.Create().
		SetID(msg.TaskID).
		SetProjectID(msg.ProjectID).
		SetTaskType(task.TaskType(msg.TaskType)).
		SetStatus(task.StatusQueued).
		SetPriority(msg.Priority).
		SetPayload(toJSONMap(msg)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return taskToModel(row), nil
}

// PurgeTerminal deletes completed, failed, and cancelled tasks that
// finished before the cutoff. Returns the number of rows deleted.
func (s *TaskService) PurgeTerminal(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Task.Delete().
		Where(
			task.StatusIn(task.StatusCompleted, task.StatusFailed, task.StatusCancelled),
			task.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge tasks: %w", err)
	}
	return n, nil
}

// CancelOutstanding cancels a project's pending and queued tasks so no
// worker picks up stale work after a stop or restart. Returns the
// number of tasks cancelled.
func (s *TaskService) CancelOutstanding(ctx context.Context, projectID string) (int, error) {
	if projectID == "" {
		return 0, NewValidationError("project_id", "required")
	}

	n, err := s.client.Task.Update().
		Where(
			task.ProjectIDEQ(projectID),
			task.StatusIn(task.StatusPending, task.StatusQueued),
		).
		SetStatus(task.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel tasks: %w", err)
	}
	return n, nil
}
