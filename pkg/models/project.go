package models

import "time"

// ErrorInfo describes a project-level failure.
type ErrorInfo struct {
	Kind        string `json:"kind,omitempty"`
	Message     string `json:"message"`
	FailedStage string `json:"failed_stage,omitempty"`
	Traceback   string `json:"traceback,omitempty"`
}

// Project mirrors the persisted Project record. It is the plain struct
// the engine and services exchange; the ent entity stays behind the
// services layer.
type Project struct {
	ID           string       `json:"project_id"`
	Name         string       `json:"project_name"`
	WorkflowType WorkflowType `json:"workflow_type"`
	Requirement  string       `json:"requirement"`
	Priority     int          `json:"priority"`
	Tags         []string     `json:"tags,omitempty"`
	UserID       string       `json:"user_id,omitempty"`

	Status          ProjectStatus     `json:"status"`
	ControlStatus   ControlStatus     `json:"control_status"`
	CurrentStage    string            `json:"current_stage,omitempty"`
	Progress        int               `json:"progress"`
	ResumeFromStage string            `json:"resume_from_stage,omitempty"`
	ErrorInfo       *ErrorInfo        `json:"error_info,omitempty"`
	Metrics         AggregatedMetrics `json:"aggregated_metrics"`
	Metadata        map[string]any    `json:"metadata,omitempty"`

	PauseRequestedAt *time.Time `json:"pause_requested_at,omitempty"`
	StopRequestedAt  *time.Time `json:"stop_requested_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// DirName returns the on-disk project directory name under the projects
// root: the project name when present, otherwise the project id.
func (p *Project) DirName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// MetadataString returns a string-valued metadata key, or "" when absent.
func (p *Project) MetadataString(key string) string {
	if p.Metadata == nil {
		return ""
	}
	if v, ok := p.Metadata[key].(string); ok {
		return v
	}
	return ""
}
