package workflow

import (
	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/models"
)

// RunStatus is the in-memory execution state of a workflow run. It is
// narrower than the persisted project status: the persisted value is
// derived from RunStatus plus the control status on save.
type RunStatus string

// Run statuses.
const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// WorkflowContext is the ephemeral per-run aggregate the engine owns for
// the duration of an execution and persists back after every stage
// transition.
type WorkflowContext struct {
	Project *models.Project
	Catalog *config.WorkflowCatalog

	// Rules is the static build-rules text prepended to stage context.
	Rules string

	// Intent is the opaque intent-recognition JSON, when present.
	Intent string

	// StageOutputs holds the output of every executed stage, keyed by
	// canonical stage name.
	StageOutputs map[string]*models.StageOutput

	CurrentStage  string
	Status        RunStatus
	ControlStatus models.ControlStatus
	Metrics       models.AggregatedMetrics

	// stageRecords is the persisted view loaded alongside the project,
	// keyed by stage name. Save writes dirty entries back.
	stageRecords map[string]*models.StageRecord

	// folded tracks which stages already contributed to Metrics, so a
	// re-completed stage never double-counts.
	folded map[string]bool
}

// SetStageOutput records a stage's output. A completed output folds its
// metrics into the aggregate exactly once, even across re-runs.
func (c *WorkflowContext) SetStageOutput(out *models.StageOutput, costPerMTokens float64) {
	if out.StageName == "" {
		return
	}
	c.StageOutputs[out.StageName] = out
	if out.Status == models.StageStatusCompleted && !c.folded[out.StageName] {
		c.Metrics.Fold(out.Metrics, out.ExecutionTimeSeconds, costPerMTokens)
		c.folded[out.StageName] = true
	}
}

// StageOutput returns the recorded output for a stage, or nil.
func (c *WorkflowContext) StageOutput(name string) *models.StageOutput {
	return c.StageOutputs[name]
}

// CompletedStages returns the names of completed stages in configured
// order.
func (c *WorkflowContext) CompletedStages() []string {
	var completed []string
	for _, name := range c.Catalog.StageNames() {
		if out, ok := c.StageOutputs[name]; ok && out.Status == models.StageStatusCompleted {
			completed = append(completed, name)
		}
	}
	return completed
}

// PendingStages returns the names of stages not yet completed, in
// configured order.
func (c *WorkflowContext) PendingStages() []string {
	var pending []string
	for _, name := range c.Catalog.StageNames() {
		if out, ok := c.StageOutputs[name]; ok && out.Status == models.StageStatusCompleted {
			continue
		}
		pending = append(pending, name)
	}
	return pending
}

// Progress returns completed/total stages as a 0..100 percentage.
func (c *WorkflowContext) Progress() int {
	total := len(c.Catalog.Stages)
	if total == 0 {
		return 0
	}
	return len(c.CompletedStages()) * 100 / total
}

// StageRecord returns the persisted record for a stage, or nil.
func (c *WorkflowContext) StageRecord(name string) *models.StageRecord {
	return c.stageRecords[name]
}
