package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/pkg/models"
)

func TestInitializeDefaults(t *testing.T) {
	// Empty config dir: everything comes from built-ins
	ctx := context.Background()
	cfg, err := Initialize(ctx, t.TempDir())

	require.NoError(t, err)
	require.NotNil(t, cfg)

	catalog, err := cfg.Catalog(models.WorkflowTypeAgentBuild)
	require.NoError(t, err)
	assert.Len(t, catalog.Stages, 9)
	assert.Equal(t, "requirements_analysis", catalog.Stages[0].Name)
	assert.Equal(t, "agent_deployer", catalog.Stages[8].Name)

	catalog, err = cfg.Catalog(models.WorkflowTypeAgentUpdate)
	require.NoError(t, err)
	assert.Len(t, catalog.Stages, 5)

	catalog, err = cfg.Catalog(models.WorkflowTypeToolBuild)
	require.NoError(t, err)
	assert.Len(t, catalog.Stages, 4)

	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 1*time.Hour, cfg.Queue.VisibilityTimeout)
	assert.Equal(t, 3, cfg.Queue.MaxRetryCount)
	assert.Equal(t, 100_000, cfg.Context.TokenBudget)
	assert.Equal(t, 4, cfg.Context.CharsPerToken)
	assert.Equal(t, 400*1024, cfg.Context.InlineContentLimit)
	assert.Equal(t, "nexus-ai-workflow-files", cfg.Blob.Bucket)
	assert.Equal(t, "workflow-files/", cfg.Blob.Prefix)
	assert.NotEmpty(t, cfg.Rules)

	stats := cfg.Stats()
	assert.Equal(t, 3, stats.Workflows)
	assert.Equal(t, 18, stats.Stages)
}

func TestInitializeUserOverrides(t *testing.T) {
	configDir := t.TempDir()

	userConfig := `
projects_root: /var/lib/nexus/projects
queue:
  worker_count: 2
  visibility_timeout: 30m
context:
  token_budget: 50000
blob:
  bucket: custom-bucket
workflows:
  agent_build:
    stages:
      - name: requirements_analysis
        display_name: "Requirements"
        prompt_template: "custom/requirements.md"
`
	err := os.WriteFile(filepath.Join(configDir, "nexus.yaml"), []byte(userConfig), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/nexus/projects", cfg.ProjectsRoot)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 30*time.Minute, cfg.Queue.VisibilityTimeout)
	// Unset queue values keep their defaults
	assert.Equal(t, 3, cfg.Queue.MaxRetryCount)
	assert.Equal(t, 50_000, cfg.Context.TokenBudget)
	assert.Equal(t, 4, cfg.Context.CharsPerToken)
	assert.Equal(t, "custom-bucket", cfg.Blob.Bucket)

	catalog, err := cfg.Catalog(models.WorkflowTypeAgentBuild)
	require.NoError(t, err)
	stage, ok := catalog.Get("requirements_analysis")
	require.True(t, ok)
	assert.Equal(t, "Requirements", stage.DisplayName)
	assert.Equal(t, "custom/requirements.md", stage.PromptTemplate)
	// Non-overridden fields survive
	assert.Equal(t, "RequirementsAnalyst", stage.AgentName)
}

func TestInitializeEnvExpansion(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("NEXUS_BUCKET", "env-bucket")

	userConfig := `
blob:
  bucket: "{{.NEXUS_BUCKET}}"
`
	err := os.WriteFile(filepath.Join(configDir, "nexus.yaml"), []byte(userConfig), 0644)
	require.NoError(t, err)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	assert.Equal(t, "env-bucket", cfg.Blob.Bucket)
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()

	err := os.WriteFile(filepath.Join(configDir, "nexus.yaml"), []byte("queue: [not: a: map"), 0644)
	require.NoError(t, err)

	_, err = Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeUnknownWorkflow(t *testing.T) {
	configDir := t.TempDir()

	userConfig := `
workflows:
  nonexistent_workflow:
    stages: []
`
	err := os.WriteFile(filepath.Join(configDir, "nexus.yaml"), []byte(userConfig), 0644)
	require.NoError(t, err)

	_, err = Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWorkflowNotFound)
}

func TestInitializeUnknownStageOverride(t *testing.T) {
	configDir := t.TempDir()

	userConfig := `
workflows:
  agent_build:
    stages:
      - name: no_such_stage
        display_name: "Nope"
`
	err := os.WriteFile(filepath.Join(configDir, "nexus.yaml"), []byte(userConfig), 0644)
	require.NoError(t, err)

	_, err = Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStageNotFound)
	assert.Contains(t, err.Error(), "no_such_stage")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := t.TempDir()

	userConfig := `
queue:
  heartbeat_interval: 2h
  visibility_timeout: 1h
`
	err := os.WriteFile(filepath.Join(configDir, "nexus.yaml"), []byte(userConfig), 0644)
	require.NoError(t, err)

	_, err = Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestRulesFile(t *testing.T) {
	configDir := t.TempDir()

	rulesPath := filepath.Join(configDir, "rules.yaml")
	require.NoError(t, os.WriteFile(rulesPath, []byte("custom: rules"), 0644))

	userConfig := `
rules_file: rules.yaml
`
	err := os.WriteFile(filepath.Join(configDir, "nexus.yaml"), []byte(userConfig), 0644)
	require.NoError(t, err)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	assert.Equal(t, "custom: rules", cfg.Rules)
}

func TestRulesDisabled(t *testing.T) {
	configDir := t.TempDir()

	userConfig := `
rules_enabled: false
`
	err := os.WriteFile(filepath.Join(configDir, "nexus.yaml"), []byte(userConfig), 0644)
	require.NoError(t, err)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	assert.Empty(t, cfg.Rules)
}
