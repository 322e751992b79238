package models

import "time"

// GeneratedFile records one file the LLM's tool calls wrote into the
// project directory during a stage.
type GeneratedFile struct {
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	Checksum     string    `json:"checksum"` // MD5 hex
	LastModified time.Time `json:"last_modified"`
}

// DesignDocument is the canonical document a stage produced, extracted
// from the raw LLM output by stage policy.
type DesignDocument struct {
	Content string `json:"content"`
	Format  string `json:"format"` // "markdown" or "json"
}

// StageRecord mirrors the persisted Stage record, keyed by
// (project_id, stage_name). Exactly one of OutputContent and
// OutputS3Ref carries content when status is completed.
type StageRecord struct {
	ProjectID   string `json:"project_id"`
	Name        string `json:"stage_name"` // canonical name from the catalog
	Number      int    `json:"stage_number"`
	DisplayName string `json:"display_name"`
	AgentName   string `json:"agent_name"`

	Status          StageStatus     `json:"status"`
	DurationSeconds float64         `json:"duration_seconds"`
	Metrics         StageMetrics    `json:"metrics"`
	OutputContent   string          `json:"agent_output_content,omitempty"`
	OutputS3Ref     string          `json:"agent_output_s3_ref,omitempty"`
	DesignDocument  *DesignDocument `json:"design_document,omitempty"`
	GeneratedFiles  []GeneratedFile `json:"generated_files,omitempty"`
	ErrorMessage    string          `json:"error_message,omitempty"`
	DocPath         string          `json:"doc_path,omitempty"`

	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// StageOutput is the in-memory result of executing one stage. The engine
// persists it into the StageRecord; the context manager feeds completed
// outputs into downstream stage contexts.
type StageOutput struct {
	StageName            string          `json:"stage_name"`
	Status               StageStatus     `json:"status"`
	Content              string          `json:"content"`
	S3ContentRef         string          `json:"s3_content_ref,omitempty"`
	Metrics              StageMetrics    `json:"metrics"`
	GeneratedFiles       []GeneratedFile `json:"generated_files,omitempty"`
	DocumentContent      string          `json:"document_content,omitempty"`
	DocumentFormat       string          `json:"document_format,omitempty"`
	ErrorMessage         string          `json:"error_message,omitempty"`
	ExecutionTimeSeconds float64         `json:"execution_time_seconds"`
	CompletedAt          *time.Time      `json:"completed_at,omitempty"`
}
