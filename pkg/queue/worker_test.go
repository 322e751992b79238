package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nexus-ai/nexus/pkg/config"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		VisibilityTimeout:       time.Hour,
		HeartbeatInterval:       5 * time.Minute,
		MaxRetryCount:           3,
		OrphanScanInterval:      time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, WorkerStatusIdle, h.Status)
	assert.Equal(t, "", h.CurrentTaskID)
	assert.Equal(t, 0, h.TasksProcessed)

	// Simulate working state
	w.setStatus(WorkerStatusWorking, "task-abc")
	h = w.Health()
	assert.Equal(t, WorkerStatusWorking, h.Status)
	assert.Equal(t, "task-abc", h.CurrentTaskID)

	// Back to idle
	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, WorkerStatusIdle, h.Status)
	assert.Equal(t, "", h.CurrentTaskID)
}

func TestPoolTaskRegistry(t *testing.T) {
	p := NewWorkerPool("pod-1", nil, testQueueConfig(), nil)

	var cancelled bool
	p.RegisterTask("task-1", func() { cancelled = true })

	assert.True(t, p.CancelTask("task-1"))
	assert.True(t, cancelled)
	assert.False(t, p.CancelTask("task-2"))

	p.UnregisterTask("task-1")
	assert.False(t, p.CancelTask("task-1"))
}

func TestPoolCancelActiveTasks(t *testing.T) {
	p := NewWorkerPool("pod-1", nil, testQueueConfig(), nil)

	ctx1, cancel1 := context.WithCancel(context.Background())
	ctx2, cancel2 := context.WithCancel(context.Background())
	p.RegisterTask("task-1", cancel1)
	p.RegisterTask("task-2", cancel2)

	p.cancelActiveTasks()
	assert.Error(t, ctx1.Err())
	assert.Error(t, ctx2.Err())
}
