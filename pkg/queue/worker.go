package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/nexus-ai/nexus/ent"
	"github.com/nexus-ai/nexus/ent/task"
	"github.com/nexus-ai/nexus/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes tasks.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor TaskExecutor
	pool     TaskRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// TaskRegistry is the subset of WorkerPool used by Worker for task registration.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor TaskExecutor, pool TaskRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its
// current task. It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         w.status,
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next task and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	t, err := w.claimNextTask(ctx)
	if err != nil {
		return err
	}
	if t == nil {
		// Claim handled a retry-exhausted task; look for the next one.
		return nil
	}
	return w.processTask(ctx, t)
}

// claimNextTask atomically claims the next deliverable task using
// FOR UPDATE SKIP LOCKED. A task is deliverable when it is queued, or
// running with an expired lease (its worker died or lost connectivity).
// Returns (nil, nil) when the scan found a task whose retries are
// exhausted: the task is failed in place instead of being claimed.
func (w *Worker) claimNextTask(ctx context.Context) (*ent.Task, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	t, err := tx.Task.Query().
		Where(
			task.Or(
				task.StatusEQ(task.StatusQueued),
				task.And(
					task.StatusEQ(task.StatusRunning),
					task.LeaseExpiresAtNotNil(),
					task.LeaseExpiresAtLT(now),
				),
			),
		).
		Order(ent.Asc(task.FieldPriority), ent.Asc(task.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksAvailable
		}
		return nil, fmt.Errorf("failed to query deliverable task: %w", err)
	}

	// Claiming a running task is a redelivery after lease expiry.
	redelivery := t.Status == task.StatusRunning
	retries := t.RetryCount
	if redelivery {
		retries++
	}
	if redelivery && retries > w.config.MaxRetryCount {
		if err := failRetryExhausted(ctx, tx.Task, tx.Project, t, retries); err != nil {
			return nil, fmt.Errorf("failed to fail retry-exhausted task: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit retry exhaustion: %w", err)
		}
		return nil, nil
	}

	// Claim: set running, worker_id, retry_count, and the lease deadline.
	update := t.Update().
		SetStatus(task.StatusRunning).
		SetWorkerID(w.id).
		SetRetryCount(retries).
		SetLeaseExpiresAt(now.Add(w.config.VisibilityTimeout))
	if t.StartedAt == nil {
		update = update.SetStartedAt(now)
	}
	t, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	if redelivery {
		slog.Warn("Task redelivered after lease expiry",
			"task_id", t.ID,
			"worker_id", w.id,
			"retry_count", retries)
	}
	return t, nil
}

// processTask runs the claimed task through the executor and writes the
// terminal status.
func (w *Worker) processTask(ctx context.Context, t *ent.Task) error {
	log := slog.With("task_id", t.ID, "task_type", t.TaskType, "worker_id", w.id)
	log.Info("Task claimed", "project_id", t.ProjectID, "retry_count", t.RetryCount)

	w.setStatus(WorkerStatusWorking, t.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	taskCtx, cancelTask := context.WithCancel(ctx)
	defer cancelTask()

	// Register the cancel function for pool-triggered hard cancellation.
	w.pool.RegisterTask(t.ID, cancelTask)
	defer w.pool.UnregisterTask(t.ID)

	// Extend the lease in the background for as long as we hold the task.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(taskCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, t.ID)

	result, execErr := w.executor.Execute(taskCtx, t)
	cancelHeartbeat()

	if execErr != nil {
		// No terminal state reached: leave the row alone so the lease
		// expires and the task is redelivered.
		log.Warn("Task left for redelivery", "error", execErr)
		return nil
	}
	if result == nil {
		result = &TaskResult{
			Status:       task.StatusFailed,
			ErrorMessage: "executor returned nil result",
		}
	}

	// Terminal write uses a background context — the task ctx may have
	// been cancelled during shutdown.
	if err := w.writeTerminalStatus(context.Background(), t, result); err != nil {
		log.Error("Failed to write task terminal status", "error", err)
		return err
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task processing complete", "status", result.Status)
	return nil
}

// writeTerminalStatus acknowledges the task by recording its outcome.
// A pending status releases the message without completing it: a paused
// workflow keeps its task until resume re-queues it.
func (w *Worker) writeTerminalStatus(ctx context.Context, t *ent.Task, result *TaskResult) error {
	update := w.client.Task.UpdateOneID(t.ID).
		SetStatus(result.Status).
		ClearLeaseExpiresAt()

	switch result.Status {
	case task.StatusPending:
		update = update.ClearWorkerID()
	default:
		update = update.SetCompletedAt(time.Now())
	}
	if result.Result != "" {
		update = update.SetResult(result.Result)
	}
	if result.ErrorMessage != "" {
		update = update.SetErrorMessage(result.ErrorMessage)
	}
	return update.Exec(ctx)
}

// runHeartbeat periodically extends the task lease. The update is
// conditional on this worker still holding the task, so a heartbeat can
// never resurrect a lease another worker has reclaimed.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := w.client.Task.Update().
				Where(
					task.IDEQ(taskID),
					task.StatusEQ(task.StatusRunning),
					task.WorkerIDEQ(w.id),
				).
				SetLeaseExpiresAt(time.Now().Add(w.config.VisibilityTimeout)).
				Save(ctx)
			if err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			} else if n == 0 {
				// The lease is gone: the task was reclaimed, cancelled, or
				// finished out from under us. Stop extending.
				slog.Warn("Heartbeat found no lease to extend, stopping",
					"task_id", taskID, "worker_id", w.id)
				return
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
