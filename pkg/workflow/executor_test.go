package workflow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/pkg/llm"
	"github.com/nexus-ai/nexus/pkg/models"
)

func TestExecuteStageSingleAgent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)
	wfCtx, err := env.contexts.Load(ctx, "proj-1")
	require.NoError(t, err)

	out, err := env.executor.ExecuteStage(ctx, wfCtx, "requirements_analysis", ExecOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.StageStatusCompleted, out.Status)
	assert.Equal(t, "output for requirements_analysis", out.Content)
	assert.Equal(t, 100, out.Metrics.InputTokens)
	assert.Equal(t, 50, out.Metrics.OutputTokens)
	assert.Equal(t, "test-model", out.Metrics.ModelID)
	assert.Equal(t, "markdown", out.DocumentFormat)
	assert.NotNil(t, out.CompletedAt)

	calls := env.invoker.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "prompts/agent_build/requirements_analysis.md", calls[0].PromptTemplate)
	assert.Equal(t, "proj-1", calls[0].State["project_id"])
	assert.Contains(t, calls[0].Context, "Build an AWS pricing agent")
}

func TestExecuteStageUnknownStage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)
	wfCtx, err := env.contexts.Load(ctx, "proj-1")
	require.NoError(t, err)

	_, err = env.executor.ExecuteStage(ctx, wfCtx, "no_such_stage", ExecOptions{})
	require.Error(t, err)
	var stageErr *StageExecutionError
	require.ErrorAs(t, err, &stageErr)
	assert.False(t, stageErr.Recoverable)
	assert.ErrorIs(t, err, ErrUnknownStage)
}

func TestExecuteStageInvocationFailure(t *testing.T) {
	env := newTestEnv(t)
	env.invoker.fn = func(*llm.InvokeInput) (*llm.InvokeResult, error) {
		return nil, errors.New("backend unavailable")
	}
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)
	wfCtx, err := env.contexts.Load(ctx, "proj-1")
	require.NoError(t, err)

	out, err := env.executor.ExecuteStage(ctx, wfCtx, "requirements_analysis", ExecOptions{})
	require.Error(t, err)
	var stageErr *StageExecutionError
	require.ErrorAs(t, err, &stageErr)
	assert.True(t, stageErr.Recoverable)

	require.NotNil(t, out)
	assert.Equal(t, models.StageStatusFailed, out.Status)
	assert.Contains(t, out.ErrorMessage, "backend unavailable")
}

func TestExecuteStageInputOverride(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProject(t, models.WorkflowTypeAgentBuild)
	wfCtx, err := env.contexts.Load(ctx, "proj-1")
	require.NoError(t, err)

	_, err = env.executor.ExecuteStage(ctx, wfCtx, "requirements_analysis", ExecOptions{
		InputOverride: "custom context",
	})
	require.NoError(t, err)
	calls := env.invoker.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "custom context", calls[0].Context)
}

func TestExecuteStageScansGeneratedFiles(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.seedProject(t, models.WorkflowTypeAgentBuild)

	workDir := filepath.Join(env.root, p.DirName())
	require.NoError(t, os.MkdirAll(filepath.Join(workDir, "src"), 0755))

	// Pre-existing file, older than the invocation.
	oldPath := filepath.Join(workDir, "old.txt")
	require.NoError(t, os.WriteFile(oldPath, []byte("old"), 0644))
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(oldPath, past, past))

	env.invoker.fn = func(input *llm.InvokeInput) (*llm.InvokeResult, error) {
		// Tool calls write into the working directory.
		if err := os.WriteFile(filepath.Join(input.WorkingDir, "src", "main.py"), []byte("print('hi')"), 0644); err != nil {
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(input.WorkingDir, ".hidden"), []byte("x"), 0644); err != nil {
			return nil, err
		}
		return &llm.InvokeResult{Text: "done", ModelID: "m"}, nil
	}

	wfCtx, err := env.contexts.Load(ctx, "proj-1")
	require.NoError(t, err)
	out, err := env.executor.ExecuteStage(ctx, wfCtx, "requirements_analysis", ExecOptions{})
	require.NoError(t, err)

	require.Len(t, out.GeneratedFiles, 1)
	f := out.GeneratedFiles[0]
	assert.Equal(t, "src/main.py", f.Path)
	assert.Equal(t, int64(len("print('hi')")), f.Size)
	assert.Len(t, f.Checksum, 32)
}

func TestExtractJSONBlock(t *testing.T) {
	content := "intro\n```json\n{\"agents\": []}\n```\ntail"
	block, ok := extractJSONBlock(content)
	require.True(t, ok)
	assert.JSONEq(t, `{"agents": []}`, block)

	_, ok = extractJSONBlock("no block here")
	assert.False(t, ok)

	_, ok = extractJSONBlock("```json\nnot json\n```")
	assert.False(t, ok)

	_, ok = extractJSONBlock("```json\n{\"unterminated\": true}")
	assert.False(t, ok)
}

func TestExtractDocumentPolicy(t *testing.T) {
	// system_architecture prefers its JSON block.
	content := fmt.Sprintf("arch overview\n```json\n%s\n```", `{"agents":[{"name":"A"}]}`)
	doc, format := extractDocument("system_architecture", content)
	assert.Equal(t, "json", format)
	assert.JSONEq(t, `{"agents":[{"name":"A"}]}`, doc)

	// Without a parseable block it falls back to the raw text.
	doc, format = extractDocument("system_architecture", "plain text")
	assert.Equal(t, "markdown", format)
	assert.Equal(t, "plain text", doc)

	// Other stages keep their raw markdown.
	doc, format = extractDocument("requirements_analysis", "# Requirements")
	assert.Equal(t, "markdown", format)
	assert.Equal(t, "# Requirements", doc)
}
