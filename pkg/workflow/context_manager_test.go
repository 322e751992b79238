package workflow

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/pkg/models"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)

	wfCtx, err := env.contexts.Load(ctx, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, "Build an AWS pricing agent", wfCtx.Project.Requirement)
	assert.Empty(t, wfCtx.CompletedStages())

	wfCtx.SetStageOutput(completedOutput("requirements_analysis", 100), 3.0)
	wfCtx.SetStageOutput(completedOutput("system_architecture", 40), 3.0)
	wfCtx.CurrentStage = "system_architecture"
	wfCtx.Status = RunStatusRunning
	require.NoError(t, env.contexts.Save(ctx, wfCtx))

	reloaded, err := env.contexts.Load(ctx, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, wfCtx.CompletedStages(), reloaded.CompletedStages())
	assert.Equal(t, wfCtx.Metrics, reloaded.Metrics)
	assert.Equal(t, wfCtx.ControlStatus, reloaded.ControlStatus)
	assert.Equal(t, wfCtx.Project.Requirement, reloaded.Project.Requirement)
	assert.Equal(t, "content of system_architecture", reloaded.StageOutput("system_architecture").Content)
	assert.Equal(t, models.ProjectStatusBuilding, env.projects.stored("proj-1").Status)
}

func TestSaveOffloadsOversizeOutput(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Context.InlineContentLimit = 64
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)

	wfCtx, err := env.contexts.Load(ctx, "proj-1")
	require.NoError(t, err)

	big := strings.Repeat("x", 200)
	out := completedOutput("requirements_analysis", 10)
	out.Content = big
	wfCtx.SetStageOutput(out, 3.0)
	require.NoError(t, env.contexts.Save(ctx, wfCtx))

	rec := env.stages.stored("proj-1", "requirements_analysis")
	require.NotNil(t, rec)
	assert.Empty(t, rec.OutputContent)
	assert.NotEmpty(t, rec.OutputS3Ref)

	// Readers resolve identical bytes through the blob store.
	reloaded, err := env.contexts.Load(ctx, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, big, reloaded.StageOutput("requirements_analysis").Content)
}

func TestSavePreservesUserControlRequest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)

	wfCtx, err := env.contexts.Load(ctx, "proj-1")
	require.NoError(t, err)
	wfCtx.Status = RunStatusRunning
	wfCtx.CurrentStage = "requirements_analysis"

	// A pause request lands while the engine holds the context.
	env.projects.setControlStatus("proj-1", models.ControlStatusPaused)

	require.NoError(t, env.contexts.Save(ctx, wfCtx))
	assert.Equal(t, models.ControlStatusPaused, wfCtx.ControlStatus)
	assert.Equal(t, models.ProjectStatusPaused, env.projects.stored("proj-1").Status)
}

func TestMarkStageRunning(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)

	wfCtx, err := env.contexts.Load(ctx, "proj-1")
	require.NoError(t, err)
	require.NoError(t, env.contexts.MarkStageRunning(ctx, wfCtx, "requirements_analysis"))

	rec := env.stages.stored("proj-1", "requirements_analysis")
	require.NotNil(t, rec)
	assert.Equal(t, models.StageStatusRunning, rec.Status)
	assert.Equal(t, 1, rec.Number)
	assert.NotNil(t, rec.StartedAt)

	p := env.projects.stored("proj-1")
	assert.Equal(t, models.ProjectStatusBuilding, p.Status)
	assert.Equal(t, "requirements_analysis", p.CurrentStage)
	assert.NotNil(t, p.StartedAt)
}

func TestFormatStageContextSections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.seedProject(t, models.WorkflowTypeAgentBuild)
	p.Name = "pricing-agent"
	p.Metadata = map[string]any{"intent_analysis": `{"intent":"build"}`}
	require.NoError(t, env.projects.SaveProject(ctx, p))

	wfCtx, err := env.contexts.Load(ctx, "proj-1")
	require.NoError(t, err)
	wfCtx.SetStageOutput(completedOutput("requirements_analysis", 10), 3.0)
	wfCtx.SetStageOutput(completedOutput("system_architecture", 10), 3.0)

	got := env.contexts.FormatStageContext(wfCtx, "agent_design")

	assert.Contains(t, got, "Build rules")
	assert.Contains(t, got, "pricing-agent")
	assert.Contains(t, got, `{"intent":"build"}`)
	assert.Contains(t, got, "Build an AWS pricing agent")
	assert.Contains(t, got, "RequirementsAnalyst Agent: content of requirements_analysis")
	assert.Contains(t, got, "SystemArchitect Agent: content of system_architecture")

	// Prerequisites appear in configured order.
	assert.Less(t,
		strings.Index(got, "RequirementsAnalyst Agent"),
		strings.Index(got, "SystemArchitect Agent"))
}

func TestFormatStageContextSkipsNonPrerequisites(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)

	wfCtx, err := env.contexts.Load(ctx, "proj-1")
	require.NoError(t, err)
	wfCtx.SetStageOutput(completedOutput("requirements_analysis", 10), 3.0)
	// A later stage's output must not leak into an earlier stage's context.
	wfCtx.SetStageOutput(completedOutput("code_reviewer", 10), 3.0)
	// A failed prerequisite is excluded.
	wfCtx.StageOutputs["system_architecture"] = &models.StageOutput{
		StageName: "system_architecture",
		Status:    models.StageStatusFailed,
		Content:   "failed content",
	}

	got := env.contexts.FormatStageContext(wfCtx, "agent_design")
	assert.Contains(t, got, "content of requirements_analysis")
	assert.NotContains(t, got, "content of code_reviewer")
	assert.NotContains(t, got, "failed content")
}

func TestFormatStageContextBudget(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Context.TokenBudget = 200 // 800 chars
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)

	wfCtx, err := env.contexts.Load(ctx, "proj-1")
	require.NoError(t, err)

	out := completedOutput("requirements_analysis", 10)
	out.Content = "# Heading One\n" + strings.Repeat("prose line\n", 200) + "## Heading Two\n"
	wfCtx.SetStageOutput(out, 3.0)

	got := env.contexts.FormatStageContext(wfCtx, "system_architecture")
	budget := env.cfg.Context.TokenBudget * env.cfg.Context.CharsPerToken
	assert.LessOrEqual(t, len(got), budget)
	// The over-budget prerequisite is summarized to its headings.
	assert.Contains(t, got, "# Heading One")
	assert.NotContains(t, got, "prose line")
}

func TestFormatStageContextLocalDocs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.seedProject(t, models.WorkflowTypeAgentBuild)

	docsDir := filepath.Join(env.root, p.ID, "docs")
	require.NoError(t, os.MkdirAll(docsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "requirements.md"), []byte("req doc"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "architecture.md"), []byte("arch doc"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "notes.txt"), []byte("ignored"), 0644))

	wfCtx, err := env.contexts.Load(ctx, "proj-1")
	require.NoError(t, err)
	got := env.contexts.FormatStageContext(wfCtx, "system_architecture")

	assert.Contains(t, got, "## Local Documents")
	assert.Contains(t, got, "### architecture.md\narch doc")
	assert.Contains(t, got, "### requirements.md\nreq doc")
	assert.NotContains(t, got, "ignored")
}

func TestSummarizeContent(t *testing.T) {
	var fence strings.Builder
	fence.WriteString("# Title\nprose\n```go\n")
	for i := 0; i < 15; i++ {
		fence.WriteString("line\n")
	}
	fence.WriteString("```\n## Section\nmore prose\n")

	got := summarizeContent(fence.String())
	assert.Contains(t, got, "# Title")
	assert.Contains(t, got, "## Section")
	assert.NotContains(t, got, "prose")
	assert.Equal(t, 10, strings.Count(got, "line\n"))
}

func TestTruncateUTF8Safe(t *testing.T) {
	s := "héllo wörld"
	for max := 0; max <= len(s); max++ {
		got := truncate(s, max)
		assert.True(t, strings.HasPrefix(s, got))
		assert.LessOrEqual(t, len(got), max)
	}
	assert.Equal(t, s, truncate(s, 1000))
}
