package config

import (
	"fmt"

	"github.com/nexus-ai/nexus/pkg/models"
)

// StageDef is one entry of a workflow's stage catalog.
type StageDef struct {
	Name           string `yaml:"name"`
	Order          int    `yaml:"order"` // 1-indexed position
	DisplayName    string `yaml:"display_name"`
	AgentName      string `yaml:"agent_name"`
	PromptTemplate string `yaml:"prompt_template"`
	Iterative      bool   `yaml:"iterative"` // fans out per sub-agent on multi-agent projects
}

// WorkflowCatalog is the static, ordered stage list for one workflow type.
type WorkflowCatalog struct {
	WorkflowType models.WorkflowType `yaml:"workflow_type"`
	Stages       []StageDef          `yaml:"stages"`
}

// StageNames returns the configured stage names in order.
func (c *WorkflowCatalog) StageNames() []string {
	names := make([]string, len(c.Stages))
	for i, s := range c.Stages {
		names[i] = s.Name
	}
	return names
}

// Get returns the definition for a canonical stage name.
func (c *WorkflowCatalog) Get(name string) (StageDef, bool) {
	for _, s := range c.Stages {
		if s.Name == name {
			return s, true
		}
	}
	return StageDef{}, false
}

// Index returns the 0-based position of a stage, or -1 if unknown.
func (c *WorkflowCatalog) Index(name string) int {
	for i, s := range c.Stages {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// Prerequisites returns the names of all stages strictly before the
// given stage in configured order.
func (c *WorkflowCatalog) Prerequisites(name string) []string {
	idx := c.Index(name)
	if idx <= 0 {
		return nil
	}
	prereqs := make([]string, idx)
	for i := 0; i < idx; i++ {
		prereqs[i] = c.Stages[i].Name
	}
	return prereqs
}

// FromIndex returns the stage names from the given 0-based index onward.
func (c *WorkflowCatalog) FromIndex(idx int) []string {
	if idx < 0 || idx >= len(c.Stages) {
		return nil
	}
	names := make([]string, 0, len(c.Stages)-idx)
	for _, s := range c.Stages[idx:] {
		names = append(names, s.Name)
	}
	return names
}

// Validate checks catalog invariants: non-empty, contiguous 1-indexed
// order, unique names.
func (c *WorkflowCatalog) Validate() error {
	if len(c.Stages) == 0 {
		return fmt.Errorf("workflow %q has no stages", c.WorkflowType)
	}
	seen := make(map[string]bool, len(c.Stages))
	for i, s := range c.Stages {
		if s.Name == "" {
			return fmt.Errorf("workflow %q: stage %d has no name", c.WorkflowType, i+1)
		}
		if seen[s.Name] {
			return fmt.Errorf("workflow %q: duplicate stage %q", c.WorkflowType, s.Name)
		}
		seen[s.Name] = true
		if s.Order != i+1 {
			return fmt.Errorf("workflow %q: stage %q has order %d, want %d", c.WorkflowType, s.Name, s.Order, i+1)
		}
		if s.PromptTemplate == "" {
			return fmt.Errorf("workflow %q: stage %q has no prompt template", c.WorkflowType, s.Name)
		}
	}
	return nil
}

// stageAliases maps legacy stage-name spellings to canonical names. The
// map is the union of historic renames; new workflows must use canonical
// names from day one.
var stageAliases = map[string]string{
	"requirements_analyzer":      "requirements_analysis",
	"system_architect":           "system_architecture",
	"agent_developer":            "agent_code_developer",
	"tools_engineer":             "tools_developer",
	"tool_requirements_analysis": "tool_requirements",
}

// NormalizeStageName maps legacy stage-name spellings to their canonical
// form. Unknown names pass through unchanged.
func NormalizeStageName(name string) string {
	if canonical, ok := stageAliases[name]; ok {
		return canonical
	}
	return name
}
