package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/models"
)

func newBareContext(t *testing.T) *WorkflowContext {
	t.Helper()
	env := newTestEnv(t)
	catalog, err := env.cfg.Catalog(models.WorkflowTypeAgentBuild)
	assert.NoError(t, err)
	return &WorkflowContext{
		Project:      &models.Project{ID: "p1", WorkflowType: models.WorkflowTypeAgentBuild},
		Catalog:      catalog,
		StageOutputs: make(map[string]*models.StageOutput),
		stageRecords: make(map[string]*models.StageRecord),
		folded:       make(map[string]bool),
	}
}

func completedOutput(name string, tokens int) *models.StageOutput {
	now := time.Now()
	return &models.StageOutput{
		StageName:            name,
		Status:               models.StageStatusCompleted,
		Content:              "content of " + name,
		Metrics:              models.StageMetrics{InputTokens: tokens, OutputTokens: tokens / 2, ModelID: "m"},
		ExecutionTimeSeconds: 1.5,
		CompletedAt:          &now,
	}
}

func TestSetStageOutputFoldsOnce(t *testing.T) {
	ctx := newBareContext(t)

	out := completedOutput("requirements_analysis", 100)
	ctx.SetStageOutput(out, 3.0)
	assert.Equal(t, 100, ctx.Metrics.InputTokens)
	assert.Equal(t, 50, ctx.Metrics.OutputTokens)
	assert.InDelta(t, 1.5, ctx.Metrics.WallTimeSeconds, 0.001)

	// Re-completing the same stage must not double-count.
	ctx.SetStageOutput(completedOutput("requirements_analysis", 100), 3.0)
	assert.Equal(t, 100, ctx.Metrics.InputTokens)
	assert.Equal(t, 50, ctx.Metrics.OutputTokens)

	// A different stage folds normally.
	ctx.SetStageOutput(completedOutput("system_architecture", 40), 3.0)
	assert.Equal(t, 140, ctx.Metrics.InputTokens)
}

func TestSetStageOutputFailedDoesNotFold(t *testing.T) {
	ctx := newBareContext(t)
	ctx.SetStageOutput(&models.StageOutput{
		StageName: "requirements_analysis",
		Status:    models.StageStatusFailed,
		Metrics:   models.StageMetrics{InputTokens: 100},
	}, 3.0)
	assert.Zero(t, ctx.Metrics.InputTokens)
}

func TestCompletedStagesOrder(t *testing.T) {
	ctx := newBareContext(t)

	// Insert out of order; completed list must follow configured order.
	ctx.SetStageOutput(completedOutput("agent_design", 1), 3.0)
	ctx.SetStageOutput(completedOutput("requirements_analysis", 1), 3.0)
	ctx.SetStageOutput(completedOutput("system_architecture", 1), 3.0)

	assert.Equal(t,
		[]string{"requirements_analysis", "system_architecture", "agent_design"},
		ctx.CompletedStages())
}

func TestProgress(t *testing.T) {
	ctx := newBareContext(t)
	assert.Equal(t, 0, ctx.Progress())

	ctx.SetStageOutput(completedOutput("requirements_analysis", 1), 3.0)
	assert.Equal(t, 11, ctx.Progress()) // 1/9

	for _, name := range ctx.Catalog.StageNames() {
		ctx.SetStageOutput(completedOutput(name, 1), 3.0)
	}
	assert.Equal(t, 100, ctx.Progress())
	assert.Empty(t, ctx.PendingStages())
}

func TestDeriveProjectStatus(t *testing.T) {
	tests := []struct {
		name    string
		run     RunStatus
		control models.ControlStatus
		stage   string
		want    models.ProjectStatus
	}{
		{"running", RunStatusRunning, models.ControlStatusRunning, "s", models.ProjectStatusBuilding},
		{"completed", RunStatusCompleted, models.ControlStatusRunning, "", models.ProjectStatusCompleted},
		{"failed", RunStatusFailed, models.ControlStatusRunning, "s", models.ProjectStatusFailed},
		{"pending no stage", RunStatusPending, models.ControlStatusRunning, "", models.ProjectStatusPending},
		{"pending with stage", RunStatusPending, models.ControlStatusRunning, "s", models.ProjectStatusBuilding},
		{"paused wins", RunStatusRunning, models.ControlStatusPaused, "s", models.ProjectStatusPaused},
		{"stopped wins", RunStatusCompleted, models.ControlStatusStopped, "", models.ProjectStatusCancelled},
		{"cancelled wins", RunStatusRunning, models.ControlStatusCancelled, "s", models.ProjectStatusCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveProjectStatus(tt.run, tt.control, tt.stage))
		})
	}
}

func TestCatalogAliasInPrerequisites(t *testing.T) {
	// Legacy spellings normalize before catalog lookups.
	assert.Equal(t, "system_architecture", config.NormalizeStageName("system_architect"))
}
