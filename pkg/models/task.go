package models

import "time"

// Task mirrors the persisted Task record. A task is the queue-visible
// unit of work: its payload is the TaskMessage the worker leases.
type Task struct {
	ID        string     `json:"task_id"`
	Type      TaskType   `json:"task_type"`
	ProjectID string     `json:"project_id"`
	Status    TaskStatus `json:"status"`
	Priority  int        `json:"priority"`

	Payload      TaskMessage `json:"payload"`
	Result       string      `json:"result,omitempty"`
	ErrorMessage string      `json:"error_message,omitempty"`
	RetryCount   int         `json:"retry_count"`
	WorkerID     string      `json:"worker_id,omitempty"`

	// LeaseExpiresAt is the visibility deadline. While a worker holds the
	// lease it extends this via heartbeats; a stale deadline makes the
	// task eligible for redelivery.
	LeaseExpiresAt *time.Time `json:"lease_expires_at,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TaskMessage is the queue message body (build queue format).
type TaskMessage struct {
	TaskID              string         `json:"task_id"`
	ProjectID           string         `json:"project_id"`
	TaskType            TaskType       `json:"task_type"`
	WorkflowType        WorkflowType   `json:"workflow_type"`
	Requirement         string         `json:"requirement"`
	UserID              string         `json:"user_id,omitempty"`
	Priority            int            `json:"priority"`
	Action              TaskAction     `json:"action"`
	TargetStage         string         `json:"target_stage,omitempty"`
	ExecuteToCompletion bool           `json:"execute_to_completion"`
	Metadata            map[string]any `json:"metadata,omitempty"`
}

// ExecutionResult is the atomic outcome of an engine run. All
// intermediate state (stage records, metrics, file metadata) was already
// persisted during execution; this carries only the terminal view.
type ExecutionResult struct {
	FinalStatus          FinalStatus       `json:"final_status"`
	CompletedStages      []string          `json:"completed_stages,omitempty"`
	FailedStage          string            `json:"failed_stage,omitempty"`
	Message              string            `json:"message,omitempty"`
	MissingPrerequisites []string          `json:"missing_prerequisites,omitempty"`
	Metrics              AggregatedMetrics `json:"aggregated_metrics"`
}
