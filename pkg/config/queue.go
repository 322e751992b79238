package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how tasks are polled, claimed, leased, and retried.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes tasks.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for checking queued tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// VisibilityTimeout is how long a claimed task stays invisible to
	// other workers before its lease expires and it becomes claimable
	// again.
	VisibilityTimeout time.Duration `yaml:"visibility_timeout"`

	// HeartbeatInterval is how often an active worker extends its lease.
	// Must be well under VisibilityTimeout or healthy tasks get reclaimed.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// MaxRetryCount is the number of redeliveries before a task is
	// marked failed with a retry_exhausted error.
	MaxRetryCount int `yaml:"max_retry_count"`

	// OrphanScanInterval is how often to scan for tasks whose lease
	// expired without a terminal status.
	OrphanScanInterval time.Duration `yaml:"orphan_scan_interval"`

	// GracefulShutdownTimeout is the max time to wait for active tasks
	// to reach a safe point during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		PollInterval:            5 * time.Second,
		PollIntervalJitter:      1 * time.Second,
		VisibilityTimeout:       1 * time.Hour,
		HeartbeatInterval:       5 * time.Minute,
		MaxRetryCount:           3,
		OrphanScanInterval:      1 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}
