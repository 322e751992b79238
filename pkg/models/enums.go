// Package models defines the domain vocabulary shared by the workflow
// engine, the queue, the services layer, and the HTTP API: typed enums,
// record mirrors of the persisted entities, metrics, and the queue
// message payload.
package models

// WorkflowType selects a stage catalog.
type WorkflowType string

// Workflow types.
const (
	WorkflowTypeAgentBuild  WorkflowType = "agent_build"
	WorkflowTypeAgentUpdate WorkflowType = "agent_update"
	WorkflowTypeToolBuild   WorkflowType = "tool_build"
)

// Valid reports whether wt is a known workflow type.
func (wt WorkflowType) Valid() bool {
	switch wt {
	case WorkflowTypeAgentBuild, WorkflowTypeAgentUpdate, WorkflowTypeToolBuild:
		return true
	}
	return false
}

// ProjectStatus is the execution state of a project.
type ProjectStatus string

// Project statuses.
const (
	ProjectStatusPending   ProjectStatus = "pending"
	ProjectStatusQueued    ProjectStatus = "queued"
	ProjectStatusBuilding  ProjectStatus = "building"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusFailed    ProjectStatus = "failed"
	ProjectStatusPaused    ProjectStatus = "paused"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// Terminal reports whether the status is final. Once terminal, only tags
// and error_info may mutate.
func (s ProjectStatus) Terminal() bool {
	switch s {
	case ProjectStatusCompleted, ProjectStatusFailed, ProjectStatusCancelled:
		return true
	}
	return false
}

// ControlStatus is the user-requested execution intent, independent of
// project status. Written only by the control API path; the engine reads it.
type ControlStatus string

// Control statuses.
const (
	ControlStatusRunning   ControlStatus = "running"
	ControlStatusPaused    ControlStatus = "paused"
	ControlStatusStopped   ControlStatus = "stopped"
	ControlStatusCancelled ControlStatus = "cancelled"
)

// StageStatus is the execution state of a single stage.
type StageStatus string

// Stage statuses.
const (
	StageStatusPending   StageStatus = "pending"
	StageStatusRunning   StageStatus = "running"
	StageStatusCompleted StageStatus = "completed"
	StageStatusFailed    StageStatus = "failed"
	StageStatusSkipped   StageStatus = "skipped"
)

// TaskType identifies the unit of work a queue message carries.
type TaskType string

// Task types.
const (
	TaskTypeBuildAgent  TaskType = "build_agent"
	TaskTypeUpdateAgent TaskType = "update_agent"
	TaskTypeBuildTool   TaskType = "build_tool"
	TaskTypeDeployAgent TaskType = "deploy_agent"
)

// TaskTypeForWorkflow returns the task type that executes the given
// workflow type.
func TaskTypeForWorkflow(wt WorkflowType) TaskType {
	switch wt {
	case WorkflowTypeAgentUpdate:
		return TaskTypeUpdateAgent
	case WorkflowTypeToolBuild:
		return TaskTypeBuildTool
	default:
		return TaskTypeBuildAgent
	}
}

// TaskStatus is the execution state of a task.
type TaskStatus string

// Task statuses.
const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusQueued    TaskStatus = "queued"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
	TaskStatusCancelled TaskStatus = "cancelled"
)

// Terminal reports whether the task status is final.
func (s TaskStatus) Terminal() bool {
	switch s {
	case TaskStatusCompleted, TaskStatusFailed, TaskStatusCancelled:
		return true
	}
	return false
}

// TaskAction tells the worker how to drive the engine for this message.
type TaskAction string

// Task actions.
const (
	TaskActionExecute TaskAction = "execute"
	TaskActionResume  TaskAction = "resume"
	TaskActionRestart TaskAction = "restart"
)

// FinalStatus is the terminal outcome of an engine run. Control signals
// are modeled as result values rather than exceptions, so paused/stopped
// are first-class terminals alongside completed/failed.
type FinalStatus string

// Final statuses.
const (
	FinalStatusCompleted FinalStatus = "completed"
	FinalStatusFailed    FinalStatus = "failed"
	FinalStatusPaused    FinalStatus = "paused"
	FinalStatusStopped   FinalStatus = "stopped"
)
