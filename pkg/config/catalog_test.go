package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/pkg/models"
)

func TestBuiltinCatalogsValid(t *testing.T) {
	for wt, catalog := range builtinCatalogs() {
		assert.NoError(t, catalog.Validate(), "workflow %s", wt)
	}
}

func TestCatalogPrerequisites(t *testing.T) {
	catalog := builtinCatalogs()[models.WorkflowTypeAgentBuild]

	assert.Empty(t, catalog.Prerequisites("requirements_analysis"))

	prereqs := catalog.Prerequisites("agent_design")
	assert.Equal(t, []string{"requirements_analysis", "system_architecture"}, prereqs)

	prereqs = catalog.Prerequisites("agent_deployer")
	assert.Len(t, prereqs, 8)

	assert.Empty(t, catalog.Prerequisites("unknown_stage"))
}

func TestCatalogFromIndex(t *testing.T) {
	catalog := builtinCatalogs()[models.WorkflowTypeToolBuild]

	all := catalog.FromIndex(0)
	assert.Equal(t, []string{"tool_requirements", "tool_design", "tool_code_developer", "tool_validator"}, all)

	tail := catalog.FromIndex(2)
	assert.Equal(t, []string{"tool_code_developer", "tool_validator"}, tail)

	assert.Nil(t, catalog.FromIndex(4))
	assert.Nil(t, catalog.FromIndex(-1))
}

func TestCatalogIterativeStages(t *testing.T) {
	catalog := builtinCatalogs()[models.WorkflowTypeAgentBuild]

	for _, name := range []string{"agent_design", "tools_developer", "prompt_engineer", "agent_code_developer"} {
		stage, ok := catalog.Get(name)
		require.True(t, ok, name)
		assert.True(t, stage.Iterative, name)
	}
	for _, name := range []string{"requirements_analysis", "code_reviewer", "agent_deployer"} {
		stage, ok := catalog.Get(name)
		require.True(t, ok, name)
		assert.False(t, stage.Iterative, name)
	}
}

func TestNormalizeStageName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"requirements_analyzer", "requirements_analysis"},
		{"system_architect", "system_architecture"},
		{"agent_developer", "agent_code_developer"},
		{"tools_engineer", "tools_developer"},
		{"tool_requirements_analysis", "tool_requirements"},
		{"requirements_analysis", "requirements_analysis"},
		{"something_else", "something_else"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeStageName(tt.in), tt.in)
	}
}

func TestCatalogValidateRejectsBadOrder(t *testing.T) {
	catalog := &WorkflowCatalog{
		WorkflowType: models.WorkflowTypeToolBuild,
		Stages: []StageDef{
			{Name: "a", Order: 1, PromptTemplate: "a.md"},
			{Name: "b", Order: 3, PromptTemplate: "b.md"},
		},
	}
	err := catalog.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order")
}

func TestCatalogValidateRejectsDuplicates(t *testing.T) {
	catalog := &WorkflowCatalog{
		WorkflowType: models.WorkflowTypeToolBuild,
		Stages: []StageDef{
			{Name: "a", Order: 1, PromptTemplate: "a.md"},
			{Name: "a", Order: 2, PromptTemplate: "a.md"},
		},
	}
	err := catalog.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
