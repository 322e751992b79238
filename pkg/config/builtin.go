package config

import "github.com/nexus-ai/nexus/pkg/models"

// builtinCatalogs returns the built-in stage catalogs per workflow type.
// User configuration may override display names and template paths but
// the canonical stage names and their order are fixed.
func builtinCatalogs() map[models.WorkflowType]*WorkflowCatalog {
	return map[models.WorkflowType]*WorkflowCatalog{
		models.WorkflowTypeAgentBuild: {
			WorkflowType: models.WorkflowTypeAgentBuild,
			Stages: []StageDef{
				{Name: "requirements_analysis", Order: 1, DisplayName: "Requirements Analysis", AgentName: "RequirementsAnalyst", PromptTemplate: "prompts/agent_build/requirements_analysis.md"},
				{Name: "system_architecture", Order: 2, DisplayName: "System Architecture", AgentName: "SystemArchitect", PromptTemplate: "prompts/agent_build/system_architecture.md"},
				{Name: "agent_design", Order: 3, DisplayName: "Agent Design", AgentName: "AgentDesigner", PromptTemplate: "prompts/agent_build/agent_design.md", Iterative: true},
				{Name: "tools_developer", Order: 4, DisplayName: "Tools Development", AgentName: "ToolsDeveloper", PromptTemplate: "prompts/agent_build/tools_developer.md", Iterative: true},
				{Name: "prompt_engineer", Order: 5, DisplayName: "Prompt Engineering", AgentName: "PromptEngineer", PromptTemplate: "prompts/agent_build/prompt_engineer.md", Iterative: true},
				{Name: "agent_code_developer", Order: 6, DisplayName: "Agent Code Development", AgentName: "AgentCodeDeveloper", PromptTemplate: "prompts/agent_build/agent_code_developer.md", Iterative: true},
				{Name: "code_reviewer", Order: 7, DisplayName: "Code Review", AgentName: "CodeReviewer", PromptTemplate: "prompts/agent_build/code_reviewer.md"},
				{Name: "integration_validator", Order: 8, DisplayName: "Integration Validation", AgentName: "IntegrationValidator", PromptTemplate: "prompts/agent_build/integration_validator.md"},
				{Name: "agent_deployer", Order: 9, DisplayName: "Agent Deployment", AgentName: "AgentDeployer", PromptTemplate: "prompts/agent_build/agent_deployer.md"},
			},
		},
		models.WorkflowTypeAgentUpdate: {
			WorkflowType: models.WorkflowTypeAgentUpdate,
			Stages: []StageDef{
				{Name: "update_analysis", Order: 1, DisplayName: "Update Analysis", AgentName: "UpdateAnalyst", PromptTemplate: "prompts/agent_update/update_analysis.md"},
				{Name: "update_planning", Order: 2, DisplayName: "Update Planning", AgentName: "UpdatePlanner", PromptTemplate: "prompts/agent_update/update_planning.md"},
				{Name: "agent_code_developer", Order: 3, DisplayName: "Agent Code Development", AgentName: "AgentCodeDeveloper", PromptTemplate: "prompts/agent_update/agent_code_developer.md", Iterative: true},
				{Name: "update_validator", Order: 4, DisplayName: "Update Validation", AgentName: "UpdateValidator", PromptTemplate: "prompts/agent_update/update_validator.md"},
				{Name: "agent_deployer", Order: 5, DisplayName: "Agent Deployment", AgentName: "AgentDeployer", PromptTemplate: "prompts/agent_update/agent_deployer.md"},
			},
		},
		models.WorkflowTypeToolBuild: {
			WorkflowType: models.WorkflowTypeToolBuild,
			Stages: []StageDef{
				{Name: "tool_requirements", Order: 1, DisplayName: "Tool Requirements", AgentName: "ToolRequirementsAnalyst", PromptTemplate: "prompts/tool_build/tool_requirements.md"},
				{Name: "tool_design", Order: 2, DisplayName: "Tool Design", AgentName: "ToolDesigner", PromptTemplate: "prompts/tool_build/tool_design.md"},
				{Name: "tool_code_developer", Order: 3, DisplayName: "Tool Code Development", AgentName: "ToolCodeDeveloper", PromptTemplate: "prompts/tool_build/tool_code_developer.md"},
				{Name: "tool_validator", Order: 4, DisplayName: "Tool Validation", AgentName: "ToolValidator", PromptTemplate: "prompts/tool_build/tool_validator.md"},
			},
		},
	}
}

// defaultRules is the built-in rules YAML prepended to every stage
// context when rules are enabled. Overridable via rules_file.
const defaultRules = `# Build rules
general:
  - All generated code must be self-contained under the project directory.
  - Never overwrite files outside the project directory.
  - Design documents are written as markdown unless a stage requires JSON.
naming:
  - Agent names use PascalCase; tool names use snake_case.
output:
  - Each stage writes its design document to docs/<stage_name>.md.
`
