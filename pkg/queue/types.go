// Package queue provides the database-backed task queue: workers claim
// tasks with FOR UPDATE SKIP LOCKED, hold a lease via lease_expires_at,
// and extend it with heartbeats. An expired lease makes the task
// redeliverable, so a crashed worker never strands a build.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/nexus-ai/nexus/ent"
	"github.com/nexus-ai/nexus/ent/task"
	"github.com/nexus-ai/nexus/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no claimable tasks are in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")
)

// TaskExecutor turns a claimed task into work.
//
// A non-nil TaskResult is the terminal outcome and acknowledges the
// message: the worker writes it to the task row. A non-nil error means
// the work could not reach a terminal state (infrastructure failure,
// shutdown); the worker leaves the row untouched so the lease expires
// and another worker redelivers it.
type TaskExecutor interface {
	Execute(ctx context.Context, t *ent.Task) (*TaskResult, error)
}

// WorkflowRunner is the subset of the workflow engine the executor
// drives. Implemented by *workflow.Engine.
type WorkflowRunner interface {
	ExecuteToCompletion(ctx context.Context, projectID string) (*models.ExecutionResult, error)
	ExecuteFromStage(ctx context.Context, projectID, stageName string, toCompletion bool) (*models.ExecutionResult, error)
}

// Deployer handles deploy_agent tasks, which run outside the staged
// pipeline.
type Deployer interface {
	DeployProject(ctx context.Context, projectID string) (string, error)
}

// FileSyncer keeps a project's local workspace in step with the blob
// store, so a redelivered task can run on a pod that never saw the
// earlier stages' files. Implemented by *filesync.Manager.
type FileSyncer interface {
	EnsureFilesAvailable(ctx context.Context, p *models.Project, required []string) error
	SyncToS3(ctx context.Context, p *models.Project) (int, error)
}

// StageLister reads a project's persisted stage records. Implemented by
// *services.StageService.
type StageLister interface {
	ListStages(ctx context.Context, projectID string) ([]*models.StageRecord, error)
}

// TaskCreator enqueues follow-up tasks. Implemented by
// *services.TaskService.
type TaskCreator interface {
	CreateQueued(ctx context.Context, msg models.TaskMessage) (*models.Task, error)
}

// TaskResult is the terminal state of a task. All intermediate state
// (stage records, project status, metrics) was already persisted by the
// engine during execution; this carries only what lands on the task row.
type TaskResult struct {
	Status       task.Status // completed, failed, cancelled, or pending (paused)
	Result       string      // JSON summary (if completed)
	ErrorMessage string      // error details (if failed)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	PodID           string         `json:"pod_id"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	RunningTasks    int            `json:"running_tasks"`
	QueueDepth      int            `json:"queue_depth"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
	LastOrphanScan  time.Time      `json:"last_orphan_scan"`
	OrphansRequeued int            `json:"orphans_requeued"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string       `json:"id"`
	Status         WorkerStatus `json:"status"` // "idle" or "working"
	CurrentTaskID  string       `json:"current_task_id,omitempty"`
	TasksProcessed int          `json:"tasks_processed"`
	LastActivity   time.Time    `json:"last_activity"`
}
