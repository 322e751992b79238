package queue

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/ent"
	"github.com/nexus-ai/nexus/ent/project"
	"github.com/nexus-ai/nexus/ent/task"
	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/models"
	testdb "github.com/nexus-ai/nexus/test/database"
)

// createTestProject creates a queued project.
func createTestProject(ctx context.Context, t *testing.T, client *ent.Client) *ent.Project {
	t.Helper()
	p, err := client.Project.Create().
		SetID(uuid.New().String()).
		SetWorkflowType(project.WorkflowTypeAgentBuild).
		SetRequirement("Build a test agent").
		SetStatus(project.StatusQueued).
		Save(ctx)
	require.NoError(t, err)
	return p
}

// createQueuedTask creates a claimable task for the project.
func createQueuedTask(ctx context.Context, t *testing.T, client *ent.Client, projectID string, priority int) *ent.Task {
	t.Helper()
	id := uuid.New().String()
	msg := models.TaskMessage{
		TaskID:       id,
		ProjectID:    projectID,
		TaskType:     models.TaskTypeBuildAgent,
		WorkflowType: models.WorkflowTypeAgentBuild,
		Action:       models.TaskActionExecute,
		Priority:     priority,
	}
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))

	tk, err := client.Task.Create().
		SetID(id).
		SetProjectID(projectID).
		SetTaskType(task.TaskTypeBuildAgent).
		SetStatus(task.StatusQueued).
		SetPriority(priority).
		SetPayload(payload).
		Save(ctx)
	require.NoError(t, err)
	return tk
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		VisibilityTimeout:       30 * time.Second,
		HeartbeatInterval:       10 * time.Second,
		MaxRetryCount:           3,
		OrphanScanInterval:      time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
	}
}

// stubTaskExecutor returns a canned result (or error) for every task.
type stubTaskExecutor struct {
	mu       sync.Mutex
	result   *TaskResult
	err      error
	executed []string
}

func (s *stubTaskExecutor) Execute(_ context.Context, t *ent.Task) (*TaskResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.executed = append(s.executed, t.ID)
	return s.result, s.err
}

func (s *stubTaskExecutor) executedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.executed...)
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

func TestClaimNextTaskOrdering(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	cfg := intTestQueueConfig()

	p := createTestProject(ctx, t, client)
	low := createQueuedTask(ctx, t, client, p.ID, 5)
	high := createQueuedTask(ctx, t, client, p.ID, 1)
	mid := createQueuedTask(ctx, t, client, p.ID, 3)

	pool := NewWorkerPool("pod-1", client, cfg, nil)
	w := NewWorker("pod-1-worker-0", "pod-1", client, cfg, nil, pool)

	// Lower priority number wins, then FIFO.
	for _, want := range []string{high.ID, mid.ID, low.ID} {
		claimed, err := w.claimNextTask(ctx)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, want, claimed.ID)
		assert.Equal(t, task.StatusRunning, claimed.Status)
		require.NotNil(t, claimed.WorkerID)
		assert.Equal(t, "pod-1-worker-0", *claimed.WorkerID)
		require.NotNil(t, claimed.LeaseExpiresAt)
		assert.True(t, claimed.LeaseExpiresAt.After(time.Now()))
		assert.NotNil(t, claimed.StartedAt)
	}

	_, err := w.claimNextTask(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestClaimSkipsHeldLease(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	cfg := intTestQueueConfig()

	p := createTestProject(ctx, t, client)
	tk := createQueuedTask(ctx, t, client, p.ID, 3)
	err := client.Task.UpdateOneID(tk.ID).
		SetStatus(task.StatusRunning).
		SetWorkerID("pod-2-worker-0").
		SetLeaseExpiresAt(time.Now().Add(time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("pod-1", client, cfg, nil)
	w := NewWorker("pod-1-worker-0", "pod-1", client, cfg, nil, pool)

	_, err = w.claimNextTask(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestClaimRedeliversExpiredLease(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	cfg := intTestQueueConfig()

	p := createTestProject(ctx, t, client)
	tk := createQueuedTask(ctx, t, client, p.ID, 3)
	started := time.Now().Add(-time.Hour)
	err := client.Task.UpdateOneID(tk.ID).
		SetStatus(task.StatusRunning).
		SetWorkerID("pod-dead-worker-0").
		SetStartedAt(started).
		SetLeaseExpiresAt(time.Now().Add(-time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("pod-1", client, cfg, nil)
	w := NewWorker("pod-1-worker-0", "pod-1", client, cfg, nil, pool)

	claimed, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, tk.ID, claimed.ID)
	assert.Equal(t, 1, claimed.RetryCount)
	require.NotNil(t, claimed.WorkerID)
	assert.Equal(t, "pod-1-worker-0", *claimed.WorkerID)
	// started_at marks the first delivery, not the redelivery.
	require.NotNil(t, claimed.StartedAt)
	assert.WithinDuration(t, started, *claimed.StartedAt, time.Second)
}

func TestClaimFailsRetryExhaustedTask(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	cfg := intTestQueueConfig()

	p := createTestProject(ctx, t, client)
	tk := createQueuedTask(ctx, t, client, p.ID, 3)
	err := client.Task.UpdateOneID(tk.ID).
		SetStatus(task.StatusRunning).
		SetWorkerID("pod-dead-worker-0").
		SetRetryCount(cfg.MaxRetryCount).
		SetLeaseExpiresAt(time.Now().Add(-time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("pod-1", client, cfg, nil)
	w := NewWorker("pod-1-worker-0", "pod-1", client, cfg, nil, pool)

	claimed, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	assert.Nil(t, claimed)

	got, err := client.Task.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
	assert.Equal(t, cfg.MaxRetryCount+1, got.RetryCount)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "exhausted")
	assert.NotNil(t, got.CompletedAt)

	gotP, err := client.Project.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, project.StatusFailed, gotP.Status)
	assert.Equal(t, "retry_exhausted", gotP.ErrorInfo["kind"])
}

func TestWorkerProcessesTaskToCompletion(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	cfg := intTestQueueConfig()

	p := createTestProject(ctx, t, client)
	tk := createQueuedTask(ctx, t, client, p.ID, 3)

	executor := &stubTaskExecutor{result: &TaskResult{
		Status: task.StatusCompleted,
		Result: `{"final_status":"completed"}`,
	}}
	pool := NewWorkerPool("pod-1", client, cfg, executor)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "task completed", func() bool {
		got, err := client.Task.Get(ctx, tk.ID)
		return err == nil && got.Status == task.StatusCompleted
	})

	got, err := client.Task.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, `{"final_status":"completed"}`, got.Result)
	assert.NotNil(t, got.CompletedAt)
	assert.Nil(t, got.LeaseExpiresAt)
	assert.Equal(t, []string{tk.ID}, executor.executedIDs())
}

func TestWorkerReleasesPausedTask(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	cfg := intTestQueueConfig()

	p := createTestProject(ctx, t, client)
	tk := createQueuedTask(ctx, t, client, p.ID, 3)

	// A paused workflow releases its message without completing it.
	executor := &stubTaskExecutor{result: &TaskResult{Status: task.StatusPending}}
	pool := NewWorkerPool("pod-1", client, cfg, executor)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "task released", func() bool {
		got, err := client.Task.Get(ctx, tk.ID)
		return err == nil && got.Status == task.StatusPending
	})

	got, err := client.Task.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Nil(t, got.WorkerID)
	assert.Nil(t, got.LeaseExpiresAt)
	assert.Nil(t, got.CompletedAt)
}

func TestWorkerLeavesTaskForRedeliveryOnExecutorError(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	cfg := intTestQueueConfig()

	p := createTestProject(ctx, t, client)
	tk := createQueuedTask(ctx, t, client, p.ID, 3)

	executor := &stubTaskExecutor{err: context.DeadlineExceeded}
	pool := NewWorkerPool("pod-1", client, cfg, executor)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "task executed", func() bool {
		return len(executor.executedIDs()) > 0
	})

	// No terminal write: still running with its lease, eligible for
	// redelivery once the lease expires.
	got, err := client.Task.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusRunning, got.Status)
	assert.NotNil(t, got.LeaseExpiresAt)
}

func TestHeartbeatStopsWhenLeaseLost(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	cfg := intTestQueueConfig()
	cfg.HeartbeatInterval = 20 * time.Millisecond

	p := createTestProject(ctx, t, client)
	tk := createQueuedTask(ctx, t, client, p.ID, 3)
	// The row belongs to another worker, so this worker's conditional
	// heartbeat update matches nothing.
	require.NoError(t, client.Task.UpdateOneID(tk.ID).
		SetStatus(task.StatusRunning).
		SetWorkerID("pod-2-worker-0").
		SetLeaseExpiresAt(time.Now().Add(time.Minute)).
		Exec(ctx))

	pool := NewWorkerPool("pod-1", client, cfg, nil)
	w := NewWorker("pod-1-worker-0", "pod-1", client, cfg, nil, pool)

	done := make(chan struct{})
	go func() {
		w.runHeartbeat(ctx, tk.ID)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("heartbeat kept running after losing the lease")
	}
}

func TestOrphanScanRequeuesExpiredLease(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	cfg := intTestQueueConfig()

	p := createTestProject(ctx, t, client)
	tk := createQueuedTask(ctx, t, client, p.ID, 3)
	err := client.Task.UpdateOneID(tk.ID).
		SetStatus(task.StatusRunning).
		SetWorkerID("pod-dead-worker-0").
		SetLeaseExpiresAt(time.Now().Add(-time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("pod-1", client, cfg, nil)
	require.NoError(t, pool.scanExpiredLeases(ctx))

	got, err := client.Task.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusQueued, got.Status)
	assert.Equal(t, 1, got.RetryCount)
	assert.Nil(t, got.WorkerID)
	assert.Nil(t, got.LeaseExpiresAt)

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRequeued)
}

func TestRequeueStartupOrphans(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	cfg := intTestQueueConfig()

	p := createTestProject(ctx, t, client)

	// One recoverable orphan from this pod, one exhausted, one owned by
	// another pod that must be left alone.
	mine := createQueuedTask(ctx, t, client, p.ID, 3)
	require.NoError(t, client.Task.UpdateOneID(mine.ID).
		SetStatus(task.StatusRunning).
		SetWorkerID("pod-1-worker-0").
		SetLeaseExpiresAt(time.Now().Add(time.Minute)).
		Exec(ctx))

	exhausted := createQueuedTask(ctx, t, client, p.ID, 3)
	require.NoError(t, client.Task.UpdateOneID(exhausted.ID).
		SetStatus(task.StatusRunning).
		SetWorkerID("pod-1-worker-1").
		SetRetryCount(cfg.MaxRetryCount).
		SetLeaseExpiresAt(time.Now().Add(time.Minute)).
		Exec(ctx))

	theirs := createQueuedTask(ctx, t, client, p.ID, 3)
	require.NoError(t, client.Task.UpdateOneID(theirs.ID).
		SetStatus(task.StatusRunning).
		SetWorkerID("pod-2-worker-0").
		SetLeaseExpiresAt(time.Now().Add(time.Minute)).
		Exec(ctx))

	require.NoError(t, RequeueStartupOrphans(ctx, client, cfg, "pod-1"))

	got, err := client.Task.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusQueued, got.Status)
	assert.Equal(t, 1, got.RetryCount)

	got, err = client.Task.Get(ctx, exhausted.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)

	got, err = client.Task.Get(ctx, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusRunning, got.Status)
}

func TestPoolHealth(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	cfg := intTestQueueConfig()

	p := createTestProject(ctx, t, client)
	createQueuedTask(ctx, t, client, p.ID, 3)
	createQueuedTask(ctx, t, client, p.ID, 3)

	executor := &stubTaskExecutor{err: context.DeadlineExceeded}
	pool := NewWorkerPool("pod-1", client, cfg, executor)

	health := pool.Health()
	assert.False(t, health.IsHealthy, "pool without workers is not healthy")
	assert.True(t, health.DBReachable)
	assert.Equal(t, 2, health.QueueDepth)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	health = pool.Health()
	assert.Equal(t, "pod-1", health.PodID)
	assert.Equal(t, cfg.WorkerCount, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, cfg.WorkerCount)
}
