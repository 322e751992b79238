package models

import "time"

// AgentStatus is the runtime state of a deployed agent artifact.
type AgentStatus string

// Agent statuses.
const (
	AgentStatusRunning AgentStatus = "running"
	AgentStatusOffline AgentStatus = "offline"
)

// DeploymentStatus records the outcome of the last deployment attempt.
type DeploymentStatus string

// Deployment statuses.
const (
	DeploymentStatusDeploying DeploymentStatus = "deploying"
	DeploymentStatusDeployed  DeploymentStatus = "deployed"
	DeploymentStatusFailed    DeploymentStatus = "failed"
)

// Agent mirrors the persisted Agent record: the lifecycle of a deployed
// artifact. Invocation counters are advisory and may lag.
type Agent struct {
	ID          string `json:"agent_id"`
	Name        string `json:"agent_name"`
	Description string `json:"description,omitempty"`
	ProjectID   string `json:"project_id"`

	Status           AgentStatus      `json:"status"`
	DeploymentStatus DeploymentStatus `json:"deployment_status"`
	DeploymentError  string           `json:"deployment_error,omitempty"`

	// Runtime handles assigned by the managed runtime.
	RuntimeID       string `json:"runtime_id,omitempty"`
	RuntimeEndpoint string `json:"runtime_endpoint,omitempty"`

	Capabilities    []string `json:"capabilities,omitempty"`
	InvocationCount int64    `json:"invocation_count"`

	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	LastDeployedAt *time.Time `json:"last_deployed_at,omitempty"`
}
