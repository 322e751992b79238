package workflow

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/pkg/llm"
	"github.com/nexus-ai/nexus/pkg/models"
)

func TestExecuteToCompletionHappyPath(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)

	result, err := env.engine.ExecuteToCompletion(ctx, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, models.FinalStatusCompleted, result.FinalStatus)
	assert.Len(t, result.CompletedStages, 9)
	assert.Greater(t, result.Metrics.TotalTokens(), 0)

	p := env.projects.stored("proj-1")
	assert.Equal(t, models.ProjectStatusCompleted, p.Status)
	assert.Equal(t, 100, p.Progress)
	assert.NotNil(t, p.CompletedAt)

	// Every stage transitioned to completed.
	for _, name := range result.CompletedStages {
		rec := env.stages.stored("proj-1", name)
		require.NotNil(t, rec, name)
		assert.Equal(t, models.StageStatusCompleted, rec.Status, name)
	}

	// 9 invocations, one per stage, in configured order.
	calls := env.invoker.calls()
	require.Len(t, calls, 9)
	assert.Equal(t, "requirements_analysis", calls[0].StageName)
	assert.Equal(t, "agent_deployer", calls[8].StageName)
}

func TestExecuteToCompletionToolBuild(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeToolBuild)

	result, err := env.engine.ExecuteToCompletion(ctx, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, models.FinalStatusCompleted, result.FinalStatus)
	assert.Len(t, result.CompletedStages, 4)
}

func TestExecuteFromStagePrerequisiteFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)

	result, err := env.engine.ExecuteFromStage(ctx, "proj-1", "agent_design", true)
	require.NoError(t, err)
	assert.Equal(t, models.FinalStatusFailed, result.FinalStatus)
	assert.Equal(t, "agent_design", result.FailedStage)
	assert.Equal(t, []string{"requirements_analysis", "system_architecture"}, result.MissingPrerequisites)
	// Nothing was invoked.
	assert.Empty(t, env.invoker.calls())
}

func TestExecuteFromStageUnknownStage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)

	_, err := env.engine.ExecuteFromStage(ctx, "proj-1", "bogus", true)
	assert.ErrorIs(t, err, ErrUnknownStage)
}

func TestExecuteSingleStageDoesNotCompleteProject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)

	result, err := env.engine.ExecuteSingleStage(ctx, "proj-1", "requirements_analysis")
	require.NoError(t, err)
	assert.Equal(t, models.FinalStatusCompleted, result.FinalStatus)
	assert.Equal(t, []string{"requirements_analysis"}, result.CompletedStages)

	p := env.projects.stored("proj-1")
	assert.NotEqual(t, models.ProjectStatusCompleted, p.Status)
	assert.Equal(t, 11, p.Progress)
}

func TestExecuteToCompletionStageFailure(t *testing.T) {
	env := newTestEnv(t)
	env.invoker.fn = func(input *llm.InvokeInput) (*llm.InvokeResult, error) {
		if input.StageName == "system_architecture" {
			return nil, errors.New("model timeout")
		}
		return &llm.InvokeResult{Text: "ok", InputTokens: 1, OutputTokens: 1, ModelID: "m"}, nil
	}
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)

	result, err := env.engine.ExecuteToCompletion(ctx, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, models.FinalStatusFailed, result.FinalStatus)
	assert.Equal(t, "system_architecture", result.FailedStage)
	assert.Equal(t, []string{"requirements_analysis"}, result.CompletedStages)
	assert.Contains(t, result.Message, "model timeout")

	p := env.projects.stored("proj-1")
	assert.Equal(t, models.ProjectStatusFailed, p.Status)
	require.NotNil(t, p.ErrorInfo)
	assert.Equal(t, "system_architecture", p.ErrorInfo.FailedStage)

	rec := env.stages.stored("proj-1", "system_architecture")
	require.NotNil(t, rec)
	assert.Equal(t, models.StageStatusFailed, rec.Status)
	assert.Contains(t, rec.ErrorMessage, "model timeout")

	// No stage after the failure was attempted.
	assert.Len(t, env.invoker.calls(), 2)
}

func TestRerunAfterFailureClearsErrorInfo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)

	env.invoker.fn = func(input *llm.InvokeInput) (*llm.InvokeResult, error) {
		if input.StageName == "system_architecture" {
			return nil, errors.New("transient invocation failure")
		}
		return &llm.InvokeResult{Text: "ok", InputTokens: 1, OutputTokens: 1, ModelID: "m"}, nil
	}
	result, err := env.engine.ExecuteToCompletion(ctx, "proj-1")
	require.NoError(t, err)
	require.Equal(t, models.FinalStatusFailed, result.FinalStatus)
	require.NotNil(t, env.projects.stored("proj-1").ErrorInfo)

	// Redelivery with the failure gone: completed stages are skipped and
	// the run picks up at the failed stage.
	env.invoker.fn = nil
	result, err = env.engine.ExecuteToCompletion(ctx, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, models.FinalStatusCompleted, result.FinalStatus)

	p := env.projects.stored("proj-1")
	assert.Equal(t, models.ProjectStatusCompleted, p.Status)
	assert.Nil(t, p.ErrorInfo, "a completed re-run must not carry the earlier failure")
}

func TestExecuteToCompletionResumesAfterCrash(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)

	// Stages 1..4 completed by a previous worker before it died.
	for _, name := range []string{"requirements_analysis", "system_architecture", "agent_design", "tools_developer"} {
		env.completeStage(t, "proj-1", models.WorkflowTypeAgentBuild, name, "done: "+name)
	}

	result, err := env.engine.ExecuteToCompletion(ctx, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, models.FinalStatusCompleted, result.FinalStatus)
	assert.Len(t, result.CompletedStages, 9)

	// Only the 5 remaining stages were invoked.
	calls := env.invoker.calls()
	require.Len(t, calls, 5)
	assert.Equal(t, "prompt_engineer", calls[0].StageName)
}

func TestPauseBetweenStages(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)

	// Request pause while the first stage is executing.
	var invocations atomic.Int32
	env.invoker.fn = func(*llm.InvokeInput) (*llm.InvokeResult, error) {
		if invocations.Add(1) == 1 {
			env.projects.setControlStatus("proj-1", models.ControlStatusPaused)
		}
		return &llm.InvokeResult{Text: "ok", InputTokens: 1, OutputTokens: 1, ModelID: "m"}, nil
	}

	result, err := env.engine.ExecuteToCompletion(ctx, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, models.FinalStatusPaused, result.FinalStatus)
	// The in-flight stage was persisted before exiting.
	assert.Equal(t, []string{"requirements_analysis"}, result.CompletedStages)
	assert.EqualValues(t, 1, invocations.Load())

	p := env.projects.stored("proj-1")
	assert.Equal(t, models.ProjectStatusPaused, p.Status)
	rec := env.stages.stored("proj-1", "requirements_analysis")
	require.NotNil(t, rec)
	assert.Equal(t, models.StageStatusCompleted, rec.Status)
}

func TestStopDuringStage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)

	var invocations atomic.Int32
	env.invoker.fn = func(*llm.InvokeInput) (*llm.InvokeResult, error) {
		if invocations.Add(1) == 3 {
			env.projects.setControlStatus("proj-1", models.ControlStatusStopped)
		}
		return &llm.InvokeResult{Text: "ok", InputTokens: 1, OutputTokens: 1, ModelID: "m"}, nil
	}

	result, err := env.engine.ExecuteToCompletion(ctx, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, models.FinalStatusStopped, result.FinalStatus)
	// Stage 3 completed, stage 4 never started.
	assert.Len(t, result.CompletedStages, 3)
	assert.EqualValues(t, 3, invocations.Load())
	assert.Equal(t, models.ProjectStatusCancelled, env.projects.stored("proj-1").Status)
}

func TestExecuteWhenAlreadyStopped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)
	env.projects.setControlStatus("proj-1", models.ControlStatusStopped)

	result, err := env.engine.ExecuteToCompletion(ctx, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, models.FinalStatusFailed, result.FinalStatus)
	assert.Equal(t, "Workflow stopped by user", result.Message)
	assert.Empty(t, env.invoker.calls())
}

func TestReRunCompletedStageDoesNotDoubleCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.seedProject(t, models.WorkflowTypeAgentBuild)
	env.completeStage(t, "proj-1", models.WorkflowTypeAgentBuild, "requirements_analysis", "done")
	p.Metrics = models.AggregatedMetrics{InputTokens: 10, OutputTokens: 5}
	require.NoError(t, env.projects.SaveProject(ctx, p))

	result, err := env.engine.ExecuteSingleStage(ctx, "proj-1", "requirements_analysis")
	require.NoError(t, err)
	assert.Equal(t, models.FinalStatusCompleted, result.FinalStatus)

	// The stage re-ran but its metrics folded only on first completion.
	assert.Len(t, env.invoker.calls(), 1)
	assert.Equal(t, 10, env.projects.stored("proj-1").Metrics.InputTokens)
}

func TestGetStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)
	env.completeStage(t, "proj-1", models.WorkflowTypeAgentBuild, "requirements_analysis", "done")

	p, completed, err := env.engine.GetStatus(ctx, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, "proj-1", p.ID)
	assert.Equal(t, []string{"requirements_analysis"}, completed)
}
