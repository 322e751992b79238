package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/pkg/llm"
	"github.com/nexus-ai/nexus/pkg/models"
)

const threeAgentArch = "Here is the architecture:\n```json\n" + `{
  "agents": [
    {"name": "A", "type": "main", "description": "coordinator"},
    {"name": "B", "description": "worker", "dependencies": ["A"]},
    {"name": "C", "description": "reporter", "dependencies": ["A"]}
  ],
  "orchestration_pattern": "swarm"
}` + "\n```"

func TestParseArchitectureJSON(t *testing.T) {
	arch := ParseArchitecture(threeAgentArch)
	require.NotNil(t, arch)
	require.Len(t, arch.Agents, 3)
	assert.Equal(t, "swarm", arch.OrchestrationPattern)
	assert.Equal(t, "A", arch.MainAgent)
	assert.Equal(t, []string{"A"}, arch.Agents[1].Dependencies)
}

func TestParseArchitectureDefaults(t *testing.T) {
	arch := ParseArchitecture("```json\n" + `{"agents":[{"name":"X"},{"name":"Y"}]}` + "\n```")
	require.NotNil(t, arch)
	assert.Equal(t, PatternAgentAsTool, arch.OrchestrationPattern)
	// No agent typed main: the first one becomes main.
	assert.Equal(t, "X", arch.MainAgent)
}

func TestParseArchitectureMarkdownHeaders(t *testing.T) {
	content := "# System\n## Agent: Planner\ndetails\n## Agent: Coder\ndetails"
	arch := ParseArchitecture(content)
	require.NotNil(t, arch)
	require.Len(t, arch.Agents, 2)
	assert.Equal(t, "Planner", arch.Agents[0].Name)
	assert.Equal(t, "Coder", arch.Agents[1].Name)
}

func TestParseArchitectureMarkdownBullets(t *testing.T) {
	content := "Agents:\n- **Fetcher**: pulls data\n- **Ranker**: scores results\n"
	arch := ParseArchitecture(content)
	require.NotNil(t, arch)
	require.Len(t, arch.Agents, 2)
	assert.Equal(t, "Fetcher", arch.Agents[0].Name)
	assert.Equal(t, "pulls data", arch.Agents[0].Description)
}

func TestParseArchitectureSingleAgent(t *testing.T) {
	assert.Nil(t, ParseArchitecture("```json\n"+`{"agents":[{"name":"Solo"}]}`+"\n```"))
	assert.Nil(t, ParseArchitecture("no agents at all"))
}

func TestSortAgentsTopological(t *testing.T) {
	agents := []Subagent{
		{Name: "C", Dependencies: []string{"B"}},
		{Name: "B", Dependencies: []string{"A"}},
		{Name: "A"},
	}
	sorted := SortAgents(agents)
	assert.Equal(t, []string{"A", "B", "C"}, agentNames(sorted))
}

func TestSortAgentsDeclarationOrderTies(t *testing.T) {
	agents := []Subagent{
		{Name: "A"},
		{Name: "B"},
		{Name: "C", Dependencies: []string{"A"}},
	}
	sorted := SortAgents(agents)
	assert.Equal(t, []string{"A", "B", "C"}, agentNames(sorted))
}

func TestSortAgentsCycleTolerance(t *testing.T) {
	agents := []Subagent{
		{Name: "A", Dependencies: []string{"B"}},
		{Name: "B", Dependencies: []string{"A"}},
		{Name: "C"},
	}
	sorted := SortAgents(agents)
	require.Len(t, sorted, 3)
	assert.Equal(t, "C", sorted[0].Name)
	// Cycle members flush in declaration order rather than failing.
	assert.Equal(t, []string{"A", "B"}, agentNames(sorted[1:]))
}

func TestSortAgentsIgnoresUnknownDependencies(t *testing.T) {
	agents := []Subagent{
		{Name: "A", Dependencies: []string{"ghost"}},
		{Name: "B"},
	}
	sorted := SortAgents(agents)
	assert.Equal(t, []string{"A", "B"}, agentNames(sorted))
}

func agentNames(agents []Subagent) []string {
	names := make([]string, len(agents))
	for i, a := range agents {
		names[i] = a.Name
	}
	return names
}

func seedMultiAgentProject(t *testing.T, env *testEnv) *WorkflowContext {
	t.Helper()
	env.seedProject(t, models.WorkflowTypeAgentBuild)
	env.completeStage(t, "proj-1", models.WorkflowTypeAgentBuild, "requirements_analysis", "reqs")
	env.completeStage(t, "proj-1", models.WorkflowTypeAgentBuild, "system_architecture", threeAgentArch)
	wfCtx, err := env.contexts.Load(context.Background(), "proj-1")
	require.NoError(t, err)
	return wfCtx
}

func TestExecuteStageMultiAgentFanOut(t *testing.T) {
	env := newTestEnv(t)
	wfCtx := seedMultiAgentProject(t, env)

	env.invoker.fn = func(input *llm.InvokeInput) (*llm.InvokeResult, error) {
		return &llm.InvokeResult{
			Text:         "design for " + input.State["current_agent"],
			InputTokens:  10,
			OutputTokens: 5,
			ModelID:      "m",
		}, nil
	}

	out, err := env.executor.ExecuteStage(context.Background(), wfCtx, "agent_design", ExecOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.StageStatusCompleted, out.Status)

	// Execution order A → B → C (topological, ties by declaration).
	calls := env.invoker.calls()
	require.Len(t, calls, 3)
	assert.Equal(t, "A", calls[0].State["current_agent"])
	assert.Equal(t, "B", calls[1].State["current_agent"])
	assert.Equal(t, "C", calls[2].State["current_agent"])
	assert.Equal(t, "true", calls[0].State["is_multi_agent"])
	assert.Equal(t, "3", calls[0].State["total_agents"])
	assert.Contains(t, calls[1].Context, "## Current Processing Agent")
	assert.Contains(t, calls[1].Context, "Name: B")

	// Merged content carries per-agent sections separated by ---.
	assert.Contains(t, out.Content, "## A\ndesign for A")
	assert.Contains(t, out.Content, "## B\ndesign for B")
	assert.Contains(t, out.Content, "## C\ndesign for C")
	assert.Equal(t, 2, strings.Count(out.Content, "\n---\n"))

	// Metrics are summed across subagents.
	assert.Equal(t, 30, out.Metrics.InputTokens)
	assert.Equal(t, 15, out.Metrics.OutputTokens)
}

func TestExecuteStageMultiAgentPartialFailure(t *testing.T) {
	env := newTestEnv(t)
	wfCtx := seedMultiAgentProject(t, env)

	env.invoker.fn = func(input *llm.InvokeInput) (*llm.InvokeResult, error) {
		if input.State["current_agent"] == "B" {
			return nil, errors.New("B blew up")
		}
		return &llm.InvokeResult{Text: "ok", ModelID: "m"}, nil
	}

	out, err := env.executor.ExecuteStage(context.Background(), wfCtx, "agent_design", ExecOptions{})
	require.Error(t, err)
	var stageErr *StageExecutionError
	require.ErrorAs(t, err, &stageErr)
	assert.True(t, stageErr.Recoverable)

	require.NotNil(t, out)
	assert.Equal(t, models.StageStatusFailed, out.Status)
	assert.Contains(t, out.ErrorMessage, "B: ")
	assert.Contains(t, out.ErrorMessage, "B blew up")
	// Remaining agents still ran.
	assert.Len(t, env.invoker.calls(), 3)
}

func TestExecuteStageIterativeSingleAgentDegrades(t *testing.T) {
	env := newTestEnv(t)
	env.seedProject(t, models.WorkflowTypeAgentBuild)
	env.completeStage(t, "proj-1", models.WorkflowTypeAgentBuild, "requirements_analysis", "reqs")
	env.completeStage(t, "proj-1", models.WorkflowTypeAgentBuild, "system_architecture",
		"```json\n"+`{"agents":[{"name":"Solo"}]}`+"\n```")
	wfCtx, err := env.contexts.Load(context.Background(), "proj-1")
	require.NoError(t, err)

	out, err := env.executor.ExecuteStage(context.Background(), wfCtx, "agent_design", ExecOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.StageStatusCompleted, out.Status)
	// Single invocation, no fan-out.
	assert.Len(t, env.invoker.calls(), 1)
	assert.NotContains(t, out.Content, "## Solo")
}
