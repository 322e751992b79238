package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/nexus-ai/nexus/pkg/models"
)

// NexusYAMLConfig represents the complete nexus.yaml file structure.
// Every section is optional; unset sections fall back to built-ins.
type NexusYAMLConfig struct {
	ProjectsRoot string                        `yaml:"projects_root"`
	RulesFile    string                        `yaml:"rules_file"`
	RulesEnabled *bool                         `yaml:"rules_enabled"`
	Workflows    map[string]WorkflowYAMLConfig `yaml:"workflows"`
	Queue        *QueueConfig                  `yaml:"queue"`
	Context      *ContextConfig                `yaml:"context"`
	Blob         *BlobConfig                   `yaml:"blob"`
	LLM          *LLMConfig                    `yaml:"llm"`
	Deploy       *DeployConfig                 `yaml:"deploy"`
	Retention    *RetentionConfig              `yaml:"retention"`
}

// WorkflowYAMLConfig holds per-workflow overrides. Stage names and
// order are fixed by the built-in catalog; only presentation fields
// and template paths can be overridden.
type WorkflowYAMLConfig struct {
	Stages []StageOverride `yaml:"stages"`
}

// StageOverride overrides presentation fields of a built-in stage.
type StageOverride struct {
	Name           string `yaml:"name"`
	DisplayName    string `yaml:"display_name"`
	AgentName      string `yaml:"agent_name"`
	PromptTemplate string `yaml:"prompt_template"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load nexus.yaml from configDir (optional; built-ins apply if absent)
//  2. Expand environment variables
//  3. Merge built-in + user-defined configurations
//  4. Load rules file (or built-in rules)
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"workflows", stats.Workflows,
		"stages", stats.Stages)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	// 1. Load nexus.yaml. A missing file is not an error: the service
	// runs on built-ins plus environment variables.
	userCfg, err := loader.loadNexusYAML()
	if err != nil {
		return nil, NewLoadError("nexus.yaml", err)
	}

	// 2. Start from built-in catalogs, then apply per-stage overrides.
	catalogs := builtinCatalogs()
	for wtName, wf := range userCfg.Workflows {
		wt := models.WorkflowType(wtName)
		catalog, ok := catalogs[wt]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrWorkflowNotFound, wtName)
		}
		if err := applyStageOverrides(catalog, wf.Stages); err != nil {
			return nil, err
		}
	}

	// 3. Merge section configs into defaults (non-zero values override).
	queueCfg := DefaultQueueConfig()
	if userCfg.Queue != nil {
		if err := mergo.Merge(queueCfg, userCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}
	contextCfg := DefaultContextConfig()
	if userCfg.Context != nil {
		if err := mergo.Merge(contextCfg, userCfg.Context, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge context config: %w", err)
		}
	}
	blobCfg := DefaultBlobConfig()
	if userCfg.Blob != nil {
		if err := mergo.Merge(blobCfg, userCfg.Blob, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge blob config: %w", err)
		}
	}
	llmCfg := DefaultLLMConfig()
	if userCfg.LLM != nil {
		if err := mergo.Merge(llmCfg, userCfg.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}
	deployCfg := DefaultDeployConfig()
	if userCfg.Deploy != nil {
		if err := mergo.Merge(deployCfg, userCfg.Deploy, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge deploy config: %w", err)
		}
	}
	retentionCfg := DefaultRetentionConfig()
	if userCfg.Retention != nil {
		if err := mergo.Merge(retentionCfg, userCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	// 4. Resolve rules text.
	rules, err := loader.loadRules(userCfg)
	if err != nil {
		return nil, err
	}

	projectsRoot := userCfg.ProjectsRoot
	if projectsRoot == "" {
		projectsRoot = "projects"
	}

	return &Config{
		configDir:    configDir,
		ProjectsRoot: projectsRoot,
		Rules:        rules,
		Queue:        queueCfg,
		Context:      contextCfg,
		Blob:         blobCfg,
		LLM:          llmCfg,
		Deploy:       deployCfg,
		Retention:    retentionCfg,
		catalogs:     catalogs,
	}, nil
}

// applyStageOverrides applies presentation overrides onto a built-in
// catalog. Unknown stage names are rejected to surface typos early.
func applyStageOverrides(catalog *WorkflowCatalog, overrides []StageOverride) error {
	for _, o := range overrides {
		name := NormalizeStageName(o.Name)
		idx := catalog.Index(name)
		if idx < 0 {
			return NewValidationError("workflow", string(catalog.WorkflowType), "stages",
				fmt.Errorf("%w: %s", ErrStageNotFound, o.Name))
		}
		if o.DisplayName != "" {
			catalog.Stages[idx].DisplayName = o.DisplayName
		}
		if o.AgentName != "" {
			catalog.Stages[idx].AgentName = o.AgentName
		}
		if o.PromptTemplate != "" {
			catalog.Stages[idx].PromptTemplate = o.PromptTemplate
		}
	}
	return nil
}

// validate performs validation on loaded configuration.
func validate(cfg *Config) error {
	for _, wt := range cfg.WorkflowTypes() {
		catalog, _ := cfg.Catalog(wt)
		if err := catalog.Validate(); err != nil {
			return err
		}
	}
	if cfg.Queue.WorkerCount < 1 {
		return NewValidationError("queue", "worker_count", "", ErrInvalidValue)
	}
	if cfg.Queue.MaxRetryCount < 0 {
		return NewValidationError("queue", "max_retry_count", "", ErrInvalidValue)
	}
	if cfg.Queue.HeartbeatInterval >= cfg.Queue.VisibilityTimeout {
		return NewValidationError("queue", "heartbeat_interval", "",
			fmt.Errorf("%w: must be shorter than visibility_timeout", ErrInvalidValue))
	}
	if cfg.Context.TokenBudget < 1 {
		return NewValidationError("context", "token_budget", "", ErrInvalidValue)
	}
	if cfg.Context.CharsPerToken < 1 {
		return NewValidationError("context", "chars_per_token", "", ErrInvalidValue)
	}
	if cfg.Context.InlineContentLimit < 1 {
		return NewValidationError("context", "inline_content_limit", "", ErrInvalidValue)
	}
	if cfg.Blob.Bucket == "" {
		return NewValidationError("blob", "bucket", "", ErrMissingRequiredField)
	}
	if cfg.LLM.Endpoint == "" {
		return NewValidationError("llm", "endpoint", "", ErrMissingRequiredField)
	}
	if cfg.Retention.CleanupInterval <= 0 {
		return NewValidationError("retention", "cleanup_interval", "", ErrInvalidValue)
	}
	return nil
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadNexusYAML() (*NexusYAMLConfig, error) {
	var config NexusYAMLConfig
	config.Workflows = make(map[string]WorkflowYAMLConfig)

	if err := l.loadYAML("nexus.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("nexus.yaml not found, using built-in defaults")
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

// loadRules resolves the build-rules text: disabled → empty, custom
// rules_file → file contents, otherwise the built-in rules.
func (l *configLoader) loadRules(userCfg *NexusYAMLConfig) (string, error) {
	if userCfg.RulesEnabled != nil && !*userCfg.RulesEnabled {
		return "", nil
	}
	if userCfg.RulesFile == "" {
		return defaultRules, nil
	}
	path := userCfg.RulesFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.configDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", NewLoadError(userCfg.RulesFile, err)
	}
	return string(data), nil
}
