package workflow

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/llm"
	"github.com/nexus-ai/nexus/pkg/models"
)

// Executor runs one stage: resolve the prompt template, build the input
// context, invoke the LLM, collect metrics, scan generated files, and
// return a fully populated StageOutput. It never writes to the record
// store; the engine persists what it returns.
type Executor struct {
	invoker      llm.Invoker
	contexts     *ContextManager
	projectsRoot string
	log          *slog.Logger
}

// NewExecutor creates a stage executor.
func NewExecutor(invoker llm.Invoker, contexts *ContextManager, projectsRoot string) *Executor {
	return &Executor{
		invoker:      invoker,
		contexts:     contexts,
		projectsRoot: projectsRoot,
		log:          slog.With("component", "stage_executor"),
	}
}

// ExecOptions are per-call options for ExecuteStage.
type ExecOptions struct {
	// InputOverride replaces the assembled stage context when non-empty.
	InputOverride string

	// State is opaque per-stage state passed through to the invoker.
	State map[string]string
}

// ExecuteStage runs one stage. Iterative stages fan out per subagent
// when the system architecture declares a multi-agent project; otherwise
// they run the single-agent path. A failed invocation returns both a
// failed StageOutput (for persistence) and a StageExecutionError.
func (e *Executor) ExecuteStage(ctx context.Context, wfCtx *WorkflowContext, stageName string, opts ExecOptions) (*models.StageOutput, error) {
	stageName = config.NormalizeStageName(stageName)
	def, ok := wfCtx.Catalog.Get(stageName)
	if !ok {
		return nil, &StageExecutionError{
			StageName:   stageName,
			Recoverable: false,
			Err:         fmt.Errorf("%w: %s for workflow %s", ErrUnknownStage, stageName, wfCtx.Project.WorkflowType),
		}
	}

	if def.Iterative {
		if arch := e.discoverArchitecture(wfCtx); arch != nil && len(arch.Agents) > 1 {
			return e.executeMultiAgent(ctx, wfCtx, def, arch, opts)
		}
	}
	return e.executeSingle(ctx, wfCtx, def, opts)
}

// executeSingle is the single-agent path.
func (e *Executor) executeSingle(ctx context.Context, wfCtx *WorkflowContext, def config.StageDef, opts ExecOptions) (*models.StageOutput, error) {
	input := opts.InputOverride
	if input == "" {
		input = e.contexts.FormatStageContext(wfCtx, def.Name)
	}

	state := make(map[string]string, len(opts.State)+2)
	for k, v := range opts.State {
		state[k] = v
	}
	state["project_id"] = wfCtx.Project.ID
	state["project_name"] = wfCtx.Project.Name

	workDir := filepath.Join(e.projectsRoot, wfCtx.Project.DirName())
	start := time.Now()

	e.log.Info("Invoking agent",
		"project_id", wfCtx.Project.ID,
		"stage", def.Name,
		"agent", def.AgentName)

	res, err := e.invoker.Invoke(ctx, &llm.InvokeInput{
		ProjectID:      wfCtx.Project.ID,
		StageName:      def.Name,
		AgentName:      def.AgentName,
		PromptTemplate: def.PromptTemplate,
		Context:        input,
		WorkingDir:     workDir,
		State:          state,
	})
	elapsed := time.Since(start).Seconds()
	if err != nil {
		out := &models.StageOutput{
			StageName:            def.Name,
			Status:               models.StageStatusFailed,
			ErrorMessage:         err.Error(),
			ExecutionTimeSeconds: elapsed,
		}
		return out, &StageExecutionError{StageName: def.Name, Recoverable: true, Err: err}
	}

	metrics := models.StageMetrics{
		InputTokens:    res.InputTokens,
		OutputTokens:   res.OutputTokens,
		ToolCallsCount: len(res.ToolCalls),
		ModelID:        res.ModelID,
	}
	if metrics.ModelID == "" {
		metrics.ModelID = "unknown"
	}

	files, err := scanGeneratedFiles(workDir, start)
	if err != nil {
		// The output is still usable without file metadata.
		e.log.Warn("Failed to scan generated files",
			"project_id", wfCtx.Project.ID,
			"stage", def.Name,
			"error", err)
	}

	docContent, docFormat := extractDocument(def.Name, res.Text)

	now := time.Now()
	return &models.StageOutput{
		StageName:            def.Name,
		Status:               models.StageStatusCompleted,
		Content:              res.Text,
		Metrics:              metrics,
		GeneratedFiles:       files,
		DocumentContent:      docContent,
		DocumentFormat:       docFormat,
		ExecutionTimeSeconds: elapsed,
		CompletedAt:          &now,
	}, nil
}

// scanGeneratedFiles walks the project directory and records every
// non-hidden file written at or after start.
func scanGeneratedFiles(workDir string, start time.Time) ([]models.GeneratedFile, error) {
	info, err := os.Stat(workDir)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	// File mtimes can have coarser resolution than the wall clock.
	cutoff := start.Truncate(time.Second)

	var files []models.GeneratedFile
	err = filepath.WalkDir(workDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		if fi.ModTime().Before(cutoff) {
			return nil
		}
		rel, err := filepath.Rel(workDir, path)
		if err != nil {
			return err
		}
		checksum, err := fileMD5(path)
		if err != nil {
			return err
		}
		files = append(files, models.GeneratedFile{
			Path:         filepath.ToSlash(rel),
			Size:         fi.Size(),
			Checksum:     checksum,
			LastModified: fi.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func fileMD5(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// extractDocument applies the per-stage document extraction policy:
// system_architecture prefers its first fenced JSON block; everything
// else is the raw output as markdown.
func extractDocument(stageName, content string) (string, string) {
	if stageName == "system_architecture" {
		if block, ok := extractJSONBlock(content); ok {
			return block, "json"
		}
	}
	return content, "markdown"
}

// extractJSONBlock returns the first fenced ```json block if it parses.
func extractJSONBlock(content string) (string, bool) {
	const marker = "```json"
	idx := strings.Index(content, marker)
	if idx < 0 {
		return "", false
	}
	rest := content[idx+len(marker):]
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	block := strings.TrimSpace(rest[:end])
	if !json.Valid([]byte(block)) {
		return "", false
	}
	return block, true
}
