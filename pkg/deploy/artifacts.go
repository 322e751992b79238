package deploy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nexus-ai/nexus/pkg/models"
)

// artifactDoc is the JSON shape code-producing stages emit in their
// design documents. Only the files list matters here.
type artifactDoc struct {
	Files []struct {
		Path    string `json:"path"`
		Content string `json:"content"`
	} `json:"files"`
}

// agentProfile is what the agent_design stage tells us about the
// artifact being deployed.
type agentProfile struct {
	Name         string
	Description  string
	Capabilities []string
}

// designDoc is the JSON shape of the agent_design document.
type designDoc struct {
	AgentName    string   `json:"agent_name"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Capabilities []string `json:"capabilities"`
	Tools        []struct {
		Name string `json:"name"`
	} `json:"tools"`
}

// buildRecipe is the minimal recipe the runtime consumes.
type buildRecipe struct {
	AgentName    string   `yaml:"agent_name"`
	ProjectID    string   `yaml:"project_id"`
	Entrypoint   string   `yaml:"entrypoint,omitempty"`
	Files        []string `yaml:"files,omitempty"`
	Capabilities []string `yaml:"capabilities,omitempty"`
}

// codeStages are the stages whose JSON documents can carry file
// contents worth materializing.
var codeStages = map[string]bool{
	"agent_code_developer": true,
	"tools_developer":      true,
	"tool_code_developer":  true,
}

// materializeArtifacts writes files recorded in stage JSON documents
// that are missing from the local project directory. The LLM's tool
// calls normally wrote them during the build; this recovers artifacts
// for a project pulled onto a fresh worker. Returns the paths written.
func materializeArtifacts(projectDir string, stages []*models.StageRecord) ([]string, error) {
	var written []string
	for _, st := range stages {
		if !codeStages[st.Name] || st.Status != models.StageStatusCompleted {
			continue
		}
		if st.DesignDocument == nil || st.DesignDocument.Format != "json" {
			continue
		}
		var doc artifactDoc
		if err := json.Unmarshal([]byte(st.DesignDocument.Content), &doc); err != nil {
			continue
		}
		for _, f := range doc.Files {
			if f.Path == "" || strings.Contains(f.Path, "..") {
				continue
			}
			local := filepath.Join(projectDir, filepath.FromSlash(f.Path))
			if _, err := os.Stat(local); err == nil {
				continue
			}
			if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
				return written, fmt.Errorf("creating directory for %s: %w", f.Path, err)
			}
			if err := os.WriteFile(local, []byte(f.Content), 0o644); err != nil {
				return written, fmt.Errorf("writing %s: %w", f.Path, err)
			}
			written = append(written, f.Path)
		}
	}
	return written, nil
}

// extractProfile derives the agent name, description, and capabilities
// from the agent_design document, falling back to project fields.
func extractProfile(p *models.Project, stages []*models.StageRecord) agentProfile {
	profile := agentProfile{Name: p.Name}
	if profile.Name == "" {
		profile.Name = p.MetadataString("agent_name")
	}

	for _, st := range stages {
		if st.Name != "agent_design" || st.DesignDocument == nil {
			continue
		}
		var doc designDoc
		if err := json.Unmarshal([]byte(st.DesignDocument.Content), &doc); err != nil {
			break
		}
		if profile.Name == "" {
			if doc.AgentName != "" {
				profile.Name = doc.AgentName
			} else {
				profile.Name = doc.Name
			}
		}
		profile.Description = doc.Description
		profile.Capabilities = doc.Capabilities
		if len(profile.Capabilities) == 0 {
			for _, tool := range doc.Tools {
				if tool.Name != "" {
					profile.Capabilities = append(profile.Capabilities, tool.Name)
				}
			}
		}
		break
	}

	if profile.Name == "" {
		id := p.ID
		if len(id) > 8 {
			id = id[:8]
		}
		profile.Name = "agent-" + id
	}
	return profile
}

// entrypointCandidates in preference order.
var entrypointCandidates = []string{"src/main.py", "main.py", "src/agent.py", "agent.py", "app.py"}

// writeRecipe renders the build recipe YAML next to the repo root and
// returns its path and content. The caller removes the file when the
// attempt ends.
func writeRecipe(recipeDir, projectDir string, p *models.Project, profile agentProfile, files []models.GeneratedFile) (string, string, error) {
	recipe := buildRecipe{
		AgentName:    profile.Name,
		ProjectID:    p.ID,
		Capabilities: profile.Capabilities,
	}
	for _, f := range files {
		recipe.Files = append(recipe.Files, f.Path)
	}
	for _, candidate := range entrypointCandidates {
		if _, err := os.Stat(filepath.Join(projectDir, filepath.FromSlash(candidate))); err == nil {
			recipe.Entrypoint = candidate
			break
		}
	}

	data, err := yaml.Marshal(&recipe)
	if err != nil {
		return "", "", fmt.Errorf("failed to render build recipe: %w", err)
	}
	path := filepath.Join(recipeDir, fmt.Sprintf(".nexus-build-recipe-%s.yaml", p.ID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write build recipe: %w", err)
	}
	return path, string(data), nil
}
