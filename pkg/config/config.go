package config

import (
	"fmt"
	"time"

	"github.com/nexus-ai/nexus/pkg/models"
)

// Config is the fully resolved runtime configuration. Built by
// Initialize and treated as read-only afterwards.
type Config struct {
	configDir string

	// ProjectsRoot is the local directory under which per-project
	// workspaces are materialized.
	ProjectsRoot string

	// Rules is the build-rules text prepended to stage context.
	// Empty when rules are disabled.
	Rules string

	Queue     *QueueConfig
	Context   *ContextConfig
	Blob      *BlobConfig
	LLM       *LLMConfig
	Deploy    *DeployConfig
	Retention *RetentionConfig

	catalogs map[models.WorkflowType]*WorkflowCatalog
}

// ContextConfig controls stage-context assembly.
type ContextConfig struct {
	// TokenBudget is the maximum estimated tokens for an assembled
	// stage context. Older stage outputs are summarized to fit.
	TokenBudget int `yaml:"token_budget"`

	// CharsPerToken is the estimation divisor (len(text)/CharsPerToken).
	CharsPerToken int `yaml:"chars_per_token"`

	// InlineContentLimit is the max stage output size, in bytes, stored
	// inline on the stage row. Larger outputs are offloaded to the blob
	// store and referenced by key.
	InlineContentLimit int `yaml:"inline_content_limit"`
}

// DefaultContextConfig returns the built-in context-assembly defaults.
func DefaultContextConfig() *ContextConfig {
	return &ContextConfig{
		TokenBudget:        100_000,
		CharsPerToken:      4,
		InlineContentLimit: 400 * 1024,
	}
}

// BlobConfig configures the S3 blob store for oversized stage outputs
// and project file sync.
type BlobConfig struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
	Region string `yaml:"region"`
	// Endpoint overrides the S3 endpoint, for localstack/minio setups.
	Endpoint string `yaml:"endpoint"`
}

// DefaultBlobConfig returns the built-in blob store defaults.
func DefaultBlobConfig() *BlobConfig {
	return &BlobConfig{
		Bucket: "nexus-ai-workflow-files",
		Prefix: "workflow-files/",
		Region: "us-east-1",
	}
}

// LLMConfig configures the gRPC agent-invocation backend.
type LLMConfig struct {
	// Endpoint is the gRPC address of the invocation service.
	Endpoint string `yaml:"endpoint"`

	// InvokeTimeout bounds a single agent invocation.
	InvokeTimeout time.Duration `yaml:"invoke_timeout"`

	// CostPerMTokens is the estimated dollar cost per million tokens,
	// used for the aggregated cost metric only.
	CostPerMTokens float64 `yaml:"cost_per_m_tokens"`
}

// DefaultLLMConfig returns the built-in LLM client defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Endpoint:       "localhost:50051",
		InvokeTimeout:  20 * time.Minute,
		CostPerMTokens: 3.0,
	}
}

// DeployConfig configures agent deployment.
type DeployConfig struct {
	// RuntimeEndpoint is the base URL of the agent runtime.
	RuntimeEndpoint string `yaml:"runtime_endpoint"`

	// DryRun validates the build recipe without registering the agent.
	DryRun bool `yaml:"dry_run"`

	// DeployTimeout bounds a single deployment attempt.
	DeployTimeout time.Duration `yaml:"deploy_timeout"`
}

// DefaultDeployConfig returns the built-in deployment defaults.
func DefaultDeployConfig() *DeployConfig {
	return &DeployConfig{
		RuntimeEndpoint: "http://localhost:8800",
		DeployTimeout:   5 * time.Minute,
	}
}

// RetentionConfig controls background cleanup of finished work.
type RetentionConfig struct {
	// TaskRetention is how long terminal task rows are kept.
	TaskRetention time.Duration `yaml:"task_retention"`

	// WorkspaceTTL is how long a finished project's local working
	// directory is kept. Files remain in the blob store.
	WorkspaceTTL time.Duration `yaml:"workspace_ttl"`

	// CleanupInterval is how often the retention sweeps run.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		TaskRetention:   30 * 24 * time.Hour,
		WorkspaceTTL:    7 * 24 * time.Hour,
		CleanupInterval: time.Hour,
	}
}

// Catalog returns the stage catalog for a workflow type.
func (c *Config) Catalog(wt models.WorkflowType) (*WorkflowCatalog, error) {
	catalog, ok := c.catalogs[wt]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWorkflowNotFound, wt)
	}
	return catalog, nil
}

// WorkflowTypes returns the workflow types with a configured catalog.
func (c *Config) WorkflowTypes() []models.WorkflowType {
	types := make([]models.WorkflowType, 0, len(c.catalogs))
	for wt := range c.catalogs {
		types = append(types, wt)
	}
	return types
}

// ConfigDir returns the directory configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Stats summarizes loaded configuration for startup logging.
type Stats struct {
	Workflows int
	Stages    int
}

// Stats returns configuration statistics.
func (c *Config) Stats() Stats {
	s := Stats{Workflows: len(c.catalogs)}
	for _, catalog := range c.catalogs {
		s.Stages += len(catalog.Stages)
	}
	return s
}
