package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/models"
)

// Orchestration patterns a multi-agent architecture can declare.
const (
	PatternAgentAsTool = "agent_as_tool"
	PatternSwarm       = "swarm"
	PatternGraph       = "graph"
)

// Subagent is one agent of a multi-agent architecture.
type Subagent struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Dependencies []string `json:"dependencies"`
	Tools        []string `json:"tools"`
}

// Architecture is the multi-agent structure parsed from the completed
// system_architecture stage output.
type Architecture struct {
	Agents               []Subagent `json:"agents"`
	OrchestrationPattern string     `json:"orchestration_pattern"`
	MainAgent            string     `json:"main_agent"`
}

// discoverArchitecture parses the completed system_architecture output.
// Returns nil when the project is single-agent.
func (e *Executor) discoverArchitecture(wfCtx *WorkflowContext) *Architecture {
	out := wfCtx.StageOutput("system_architecture")
	if out == nil || out.Status != models.StageStatusCompleted {
		return nil
	}
	content := out.Content
	if out.DocumentFormat == "json" && out.DocumentContent != "" {
		content = out.DocumentContent
	}
	arch := ParseArchitecture(content)
	if arch == nil || len(arch.Agents) <= 1 {
		return nil
	}
	return arch
}

// ParseArchitecture extracts a multi-agent architecture from stage
// output, trying a JSON block first and markdown patterns second.
// Returns nil when fewer than two agents are found.
func ParseArchitecture(content string) *Architecture {
	if arch := parseArchitectureJSON(content); arch != nil && len(arch.Agents) > 1 {
		normalizeArchitecture(arch)
		return arch
	}
	if agents := parseArchitectureMarkdown(content); len(agents) > 1 {
		arch := &Architecture{Agents: agents}
		normalizeArchitecture(arch)
		return arch
	}
	return nil
}

func parseArchitectureJSON(content string) *Architecture {
	raw := content
	if block, ok := extractJSONBlock(content); ok {
		raw = block
	}
	var arch Architecture
	if err := json.Unmarshal([]byte(raw), &arch); err != nil {
		return nil
	}
	return &arch
}

var (
	agentHeaderRe = regexp.MustCompile(`(?m)^##\s*Agent:\s*(.+)$`)
	agentBulletRe = regexp.MustCompile(`(?m)^-\s*\*\*([^*]+)\*\*\s*:\s*(.+)$`)
	agentTableRe  = regexp.MustCompile(`(?m)^\|\s*([A-Za-z][\w\- ]*?)\s*\|\s*([^|]+)\|`)
)

// parseArchitectureMarkdown tries the markdown agent declarations in
// order: "## Agent: <name>" sections, "- **name**: desc" bullets, then
// table rows. The first pattern that yields agents wins.
func parseArchitectureMarkdown(content string) []Subagent {
	var agents []Subagent

	for _, m := range agentHeaderRe.FindAllStringSubmatch(content, -1) {
		agents = append(agents, Subagent{Name: strings.TrimSpace(m[1])})
	}
	if len(agents) > 0 {
		return agents
	}

	for _, m := range agentBulletRe.FindAllStringSubmatch(content, -1) {
		agents = append(agents, Subagent{
			Name:        strings.TrimSpace(m[1]),
			Description: strings.TrimSpace(m[2]),
		})
	}
	if len(agents) > 0 {
		return agents
	}

	for _, m := range agentTableRe.FindAllStringSubmatch(content, -1) {
		name := strings.TrimSpace(m[1])
		// Skip header and separator rows.
		lower := strings.ToLower(name)
		if lower == "agent" || lower == "name" || strings.HasPrefix(name, "-") {
			continue
		}
		agents = append(agents, Subagent{
			Name:        name,
			Description: strings.TrimSpace(m[2]),
		})
	}
	return agents
}

// normalizeArchitecture applies defaults: pattern agent_as_tool unless
// swarm/graph was declared, and the first agent as main when none is
// typed main.
func normalizeArchitecture(arch *Architecture) {
	switch arch.OrchestrationPattern {
	case PatternSwarm, PatternGraph:
	default:
		arch.OrchestrationPattern = PatternAgentAsTool
	}
	if arch.MainAgent == "" {
		for _, a := range arch.Agents {
			if strings.EqualFold(a.Type, "main") {
				arch.MainAgent = a.Name
				break
			}
		}
	}
	if arch.MainAgent == "" && len(arch.Agents) > 0 {
		arch.MainAgent = arch.Agents[0].Name
	}
}

// SortAgents orders subagents topologically by their dependencies, ties
// broken by declaration order. Agents trapped in a dependency cycle are
// appended in declaration order rather than failing the stage.
func SortAgents(agents []Subagent) []Subagent {
	index := make(map[string]int, len(agents))
	for i, a := range agents {
		index[a.Name] = i
	}

	indegree := make([]int, len(agents))
	for i, a := range agents {
		for _, dep := range a.Dependencies {
			if _, ok := index[dep]; ok {
				indegree[i]++
			}
		}
	}

	sorted := make([]Subagent, 0, len(agents))
	placed := make([]bool, len(agents))
	for len(sorted) < len(agents) {
		next := -1
		for i := range agents {
			if !placed[i] && indegree[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			// Cycle: flush the remainder in declaration order.
			for i := range agents {
				if !placed[i] {
					sorted = append(sorted, agents[i])
					placed[i] = true
				}
			}
			break
		}
		placed[next] = true
		sorted = append(sorted, agents[next])
		for i, a := range agents {
			if placed[i] {
				continue
			}
			for _, dep := range a.Dependencies {
				if dep == agents[next].Name {
					indegree[i]--
				}
			}
		}
	}
	return sorted
}

// executeMultiAgent fans an iterative stage out over the architecture's
// subagents and merges the results into one StageOutput.
func (e *Executor) executeMultiAgent(ctx context.Context, wfCtx *WorkflowContext, def config.StageDef, arch *Architecture, opts ExecOptions) (*models.StageOutput, error) {
	agents := SortAgents(arch.Agents)
	base := opts.InputOverride
	if base == "" {
		base = e.contexts.FormatStageContext(wfCtx, def.Name)
	}

	e.log.Info("Iterating stage over subagents",
		"project_id", wfCtx.Project.ID,
		"stage", def.Name,
		"agents", len(agents),
		"pattern", arch.OrchestrationPattern)

	outputs := make([]*models.StageOutput, 0, len(agents))
	var firstErr *StageExecutionError
	for _, agent := range agents {
		state := make(map[string]string, len(opts.State)+4)
		for k, v := range opts.State {
			state[k] = v
		}
		state["current_agent"] = agent.Name
		state["agent_type"] = agent.Type
		state["is_multi_agent"] = "true"
		state["total_agents"] = strconv.Itoa(len(agents))

		out, err := e.executeSingle(ctx, wfCtx, def, ExecOptions{
			InputOverride: subagentContext(base, arch, agent),
			State:         state,
		})
		if err != nil {
			var stageErr *StageExecutionError
			if !errors.As(err, &stageErr) {
				return nil, err
			}
			if firstErr == nil {
				firstErr = stageErr
			}
		}
		out.StageName = def.Name
		outputs = append(outputs, out)
		e.log.Info("Subagent finished",
			"project_id", wfCtx.Project.ID,
			"stage", def.Name,
			"agent", agent.Name,
			"status", out.Status)
	}

	merged := mergeOutputs(def.Name, agents, outputs)
	if merged.Status == models.StageStatusFailed {
		err := firstErr
		if err == nil {
			err = &StageExecutionError{
				StageName:   def.Name,
				Recoverable: true,
				Err:         fmt.Errorf("%s", merged.ErrorMessage),
			}
		}
		return merged, err
	}
	return merged, nil
}

// subagentContext prefixes the base context with the current subagent's
// block plus a short summary of its peers for coordination.
func subagentContext(base string, arch *Architecture, agent Subagent) string {
	var b strings.Builder
	b.WriteString("## Current Processing Agent\n")
	fmt.Fprintf(&b, "Name: %s\n", agent.Name)
	if agent.Type != "" {
		fmt.Fprintf(&b, "Type: %s\n", agent.Type)
	}
	if agent.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", agent.Description)
	}
	fmt.Fprintf(&b, "Orchestration pattern: %s\n", arch.OrchestrationPattern)
	if len(agent.Dependencies) > 0 {
		fmt.Fprintf(&b, "Dependencies: %s\n", strings.Join(agent.Dependencies, ", "))
	}
	if len(agent.Tools) > 0 {
		fmt.Fprintf(&b, "Tools: %s\n", strings.Join(agent.Tools, ", "))
	}

	var others []string
	for _, a := range arch.Agents {
		if a.Name == agent.Name {
			continue
		}
		desc := a.Name
		if a.Description != "" {
			desc += " — " + a.Description
		}
		others = append(others, "- "+desc)
	}
	if len(others) > 0 {
		b.WriteString("\nOther agents in this system:\n")
		b.WriteString(strings.Join(others, "\n"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(base)
	return b.String()
}

// mergeOutputs combines per-subagent outputs into the stage's single
// output: contents under "## <agent>" headers separated by ---, summed
// metrics, unioned files, failed iff any subagent failed.
func mergeOutputs(stageName string, agents []Subagent, outputs []*models.StageOutput) *models.StageOutput {
	var (
		sections []string
		metrics  models.StageMetrics
		files    []models.GeneratedFile
		errs     []string
		elapsed  float64
		seen     = make(map[string]bool)
	)
	status := models.StageStatusCompleted

	for i, out := range outputs {
		name := agents[i].Name
		sections = append(sections, fmt.Sprintf("## %s\n%s", name, out.Content))

		metrics.InputTokens += out.Metrics.InputTokens
		metrics.OutputTokens += out.Metrics.OutputTokens
		metrics.ToolCallsCount += out.Metrics.ToolCallsCount
		if metrics.ModelID == "" {
			metrics.ModelID = out.Metrics.ModelID
		}
		elapsed += out.ExecutionTimeSeconds

		for _, f := range out.GeneratedFiles {
			if !seen[f.Path] {
				seen[f.Path] = true
				files = append(files, f)
			}
		}

		if out.Status == models.StageStatusFailed {
			status = models.StageStatusFailed
			errs = append(errs, fmt.Sprintf("%s: %s", name, out.ErrorMessage))
		}
	}

	now := time.Now()
	merged := &models.StageOutput{
		StageName:            stageName,
		Status:               status,
		Content:              strings.Join(sections, "\n---\n"),
		Metrics:              metrics,
		GeneratedFiles:       files,
		ErrorMessage:         strings.Join(errs, "; "),
		ExecutionTimeSeconds: elapsed,
		CompletedAt:          &now,
	}
	merged.DocumentContent = merged.Content
	merged.DocumentFormat = "markdown"
	return merged
}
