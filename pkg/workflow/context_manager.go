package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nexus-ai/nexus/pkg/blob"
	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/models"
)

// ContextManager loads and saves the WorkflowContext and assembles the
// per-stage input context under the token budget. It is the only place
// where the in-memory run state and the persisted records meet.
type ContextManager struct {
	projects ProjectStore
	stages   StageStore
	blobs    blob.Store
	catalogs CatalogProvider

	rules        string
	projectsRoot string
	cfg          *config.ContextConfig
	log          *slog.Logger
}

// NewContextManager creates a context manager.
func NewContextManager(projects ProjectStore, stages StageStore, blobs blob.Store, catalogs CatalogProvider, rules, projectsRoot string, cfg *config.ContextConfig) *ContextManager {
	return &ContextManager{
		projects:     projects,
		stages:       stages,
		blobs:        blobs,
		catalogs:     catalogs,
		rules:        rules,
		projectsRoot: projectsRoot,
		cfg:          cfg,
		log:          slog.With("component", "context_manager"),
	}
}

// Load builds a WorkflowContext from the persisted project and stage
// records. Offloaded stage outputs are resolved from the blob store so
// downstream context assembly always sees full content.
func (m *ContextManager) Load(ctx context.Context, projectID string) (*WorkflowContext, error) {
	p, err := m.projects.GetProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project %s: %w", projectID, err)
	}
	catalog, err := m.catalogs.Catalog(p.WorkflowType)
	if err != nil {
		return nil, err
	}
	recs, err := m.stages.ListStages(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stages for %s: %w", projectID, err)
	}

	wfCtx := &WorkflowContext{
		Project:       p,
		Catalog:       catalog,
		Rules:         m.rules,
		Intent:        p.MetadataString("intent_analysis"),
		StageOutputs:  make(map[string]*models.StageOutput),
		CurrentStage:  p.CurrentStage,
		Status:        runStatusFromProject(p.Status),
		ControlStatus: p.ControlStatus,
		Metrics:       p.Metrics,
		stageRecords:  make(map[string]*models.StageRecord),
		folded:        make(map[string]bool),
	}

	for _, rec := range recs {
		name := config.NormalizeStageName(rec.Name)
		wfCtx.stageRecords[name] = rec
		if rec.Status != models.StageStatusCompleted {
			continue
		}
		content := rec.OutputContent
		if rec.OutputS3Ref != "" {
			data, err := m.blobs.Get(ctx, rec.OutputS3Ref)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve offloaded output for stage %s: %w", name, err)
			}
			content = string(data)
		}
		out := &models.StageOutput{
			StageName:            name,
			Status:               rec.Status,
			Content:              content,
			S3ContentRef:         rec.OutputS3Ref,
			Metrics:              rec.Metrics,
			GeneratedFiles:       rec.GeneratedFiles,
			ErrorMessage:         rec.ErrorMessage,
			ExecutionTimeSeconds: rec.DurationSeconds,
			CompletedAt:          rec.CompletedAt,
		}
		if rec.DesignDocument != nil {
			out.DocumentContent = rec.DesignDocument.Content
			out.DocumentFormat = rec.DesignDocument.Format
		}
		wfCtx.StageOutputs[name] = out
		// Metrics for already-completed stages are in the project
		// aggregate; mark them folded so a reload never double-counts.
		wfCtx.folded[name] = true
	}

	return wfCtx, nil
}

// Save persists the context: the project record plus every stage that
// has an output. The control status is refreshed from the store first so
// a user pause/stop request issued during execution is never overwritten.
func (m *ContextManager) Save(ctx context.Context, wfCtx *WorkflowContext) error {
	if err := m.RefreshControlStatus(ctx, wfCtx); err != nil {
		return err
	}

	p := wfCtx.Project
	p.ControlStatus = wfCtx.ControlStatus
	p.CurrentStage = wfCtx.CurrentStage
	p.Status = deriveProjectStatus(wfCtx.Status, wfCtx.ControlStatus, wfCtx.CurrentStage)
	p.Progress = wfCtx.Progress()
	p.Metrics = wfCtx.Metrics

	for _, name := range wfCtx.Catalog.StageNames() {
		out, ok := wfCtx.StageOutputs[name]
		if !ok {
			continue
		}
		if err := m.saveStageOutput(ctx, wfCtx, out); err != nil {
			return err
		}
	}

	if err := m.projects.SaveProject(ctx, p); err != nil {
		return fmt.Errorf("failed to save project %s: %w", p.ID, err)
	}
	return nil
}

// RefreshControlStatus re-reads the user-requested control status into
// the context.
func (m *ContextManager) RefreshControlStatus(ctx context.Context, wfCtx *WorkflowContext) error {
	cs, err := m.projects.GetControlStatus(ctx, wfCtx.Project.ID)
	if err != nil {
		return fmt.Errorf("failed to refresh control status for %s: %w", wfCtx.Project.ID, err)
	}
	wfCtx.ControlStatus = cs
	return nil
}

// MarkStageRunning flips a stage to running and persists the project's
// building state before the LLM call starts.
func (m *ContextManager) MarkStageRunning(ctx context.Context, wfCtx *WorkflowContext, stageName string) error {
	stageName = config.NormalizeStageName(stageName)
	rec := wfCtx.stageRecords[stageName]
	if rec == nil {
		def, ok := wfCtx.Catalog.Get(stageName)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownStage, stageName)
		}
		rec = &models.StageRecord{
			ProjectID:   wfCtx.Project.ID,
			Name:        stageName,
			Number:      def.Order,
			DisplayName: def.DisplayName,
			AgentName:   def.AgentName,
		}
		wfCtx.stageRecords[stageName] = rec
	}
	now := time.Now()
	rec.Status = models.StageStatusRunning
	rec.StartedAt = &now
	rec.CompletedAt = nil
	rec.ErrorMessage = ""
	if err := m.stages.SaveStage(ctx, rec); err != nil {
		return fmt.Errorf("failed to mark stage %s running: %w", stageName, err)
	}

	wfCtx.CurrentStage = stageName
	wfCtx.Status = RunStatusRunning
	p := wfCtx.Project
	p.CurrentStage = stageName
	// A fresh stage run supersedes any failure recorded by an earlier
	// delivery of this project's task.
	p.ErrorInfo = nil
	p.Status = deriveProjectStatus(wfCtx.Status, wfCtx.ControlStatus, stageName)
	if p.StartedAt == nil {
		p.StartedAt = &now
	}
	if err := m.projects.SaveProject(ctx, p); err != nil {
		return fmt.Errorf("failed to save project %s: %w", p.ID, err)
	}
	return nil
}

// saveStageOutput writes one stage output into its record, offloading
// oversize content to the blob store. Exactly one of the inline content
// and the blob reference carries the output.
func (m *ContextManager) saveStageOutput(ctx context.Context, wfCtx *WorkflowContext, out *models.StageOutput) error {
	rec := wfCtx.stageRecords[out.StageName]
	if rec == nil {
		def, ok := wfCtx.Catalog.Get(out.StageName)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownStage, out.StageName)
		}
		rec = &models.StageRecord{
			ProjectID: wfCtx.Project.ID,
			Name:      out.StageName,
			Number:    def.Order,

			DisplayName: def.DisplayName,
			AgentName:   def.AgentName,
		}
		wfCtx.stageRecords[out.StageName] = rec
	}

	content := out.Content
	s3Ref := out.S3ContentRef
	if len(content) > m.cfg.InlineContentLimit {
		key := blob.StageOutputKey(wfCtx.Project.ID, out.StageName)
		ref, err := m.blobs.Put(ctx, key, []byte(content), map[string]string{
			"project_id": wfCtx.Project.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to offload output for stage %s: %w", out.StageName, err)
		}
		m.log.Info("Offloaded oversize stage output",
			"project_id", wfCtx.Project.ID,
			"stage", out.StageName,
			"bytes", len(content),
			"ref", ref)
		s3Ref = ref
		content = ""
		out.S3ContentRef = ref
	}

	rec.Status = out.Status
	rec.DurationSeconds = out.ExecutionTimeSeconds
	rec.Metrics = out.Metrics
	rec.OutputContent = content
	rec.OutputS3Ref = s3Ref
	rec.GeneratedFiles = out.GeneratedFiles
	rec.ErrorMessage = out.ErrorMessage
	rec.CompletedAt = out.CompletedAt
	if out.DocumentContent != "" {
		rec.DesignDocument = &models.DesignDocument{
			Content: out.DocumentContent,
			Format:  out.DocumentFormat,
		}
	}

	if err := m.stages.SaveStage(ctx, rec); err != nil {
		return fmt.Errorf("failed to save stage %s: %w", out.StageName, err)
	}
	return nil
}

// runStatusFromProject maps a persisted project status back to the
// in-memory run status on load.
func runStatusFromProject(s models.ProjectStatus) RunStatus {
	switch s {
	case models.ProjectStatusCompleted:
		return RunStatusCompleted
	case models.ProjectStatusFailed:
		return RunStatusFailed
	case models.ProjectStatusBuilding:
		return RunStatusRunning
	default:
		return RunStatusPending
	}
}

// deriveProjectStatus derives the persisted project status from the run
// status and the user-requested control status. Control intent wins.
func deriveProjectStatus(run RunStatus, control models.ControlStatus, currentStage string) models.ProjectStatus {
	switch control {
	case models.ControlStatusPaused:
		return models.ProjectStatusPaused
	case models.ControlStatusStopped, models.ControlStatusCancelled:
		return models.ProjectStatusCancelled
	}
	switch run {
	case RunStatusRunning:
		return models.ProjectStatusBuilding
	case RunStatusCompleted:
		return models.ProjectStatusCompleted
	case RunStatusFailed:
		return models.ProjectStatusFailed
	default:
		if currentStage != "" {
			return models.ProjectStatusBuilding
		}
		return models.ProjectStatusPending
	}
}

// ────────────────────────────────────────────────────────────
// Stage context assembly
// ────────────────────────────────────────────────────────────

// FormatStageContext assembles the input context for a stage: rules,
// project-name note, intent, the user requirement, completed
// prerequisite outputs, and local documents, all under the token budget.
func (m *ContextManager) FormatStageContext(wfCtx *WorkflowContext, stageName string) string {
	budget := m.cfg.TokenBudget * m.cfg.CharsPerToken

	var b strings.Builder
	if wfCtx.Rules != "" {
		b.WriteString(wfCtx.Rules)
		b.WriteString("\n")
	}
	if wfCtx.Project.Name != "" {
		fmt.Fprintf(&b, "Project name: %s. Use this exact name for the project directory.\n\n", wfCtx.Project.Name)
	}
	if wfCtx.Intent != "" {
		b.WriteString("Intent analysis:\n")
		b.WriteString(wfCtx.Intent)
		b.WriteString("\n\n")
	}
	b.WriteString(wfCtx.Project.Requirement)
	b.WriteString("\n")

	remaining := budget - b.Len()

	// Completed prerequisites, in configured order, each bounded by an
	// equal share of the remaining budget.
	var prereqs []*models.StageOutput
	for _, name := range wfCtx.Catalog.Prerequisites(stageName) {
		if out, ok := wfCtx.StageOutputs[name]; ok && out.Status == models.StageStatusCompleted {
			prereqs = append(prereqs, out)
		}
	}
	if len(prereqs) > 0 && remaining > 0 {
		share := remaining / len(prereqs)
		for _, out := range prereqs {
			content := out.Content
			if len(content) > share {
				content = truncate(summarizeContent(content), share)
			}
			def, _ := wfCtx.Catalog.Get(out.StageName)
			fmt.Fprintf(&b, "===\n%s Agent: %s\n", def.AgentName, content)
		}
	}
	remaining = budget - b.Len()

	// Local documents from the project's docs directory.
	docs := m.loadLocalDocs(wfCtx.Project.DirName())
	if len(docs) > 0 && remaining > 0 {
		b.WriteString("## Local Documents\n")
		share := remaining / len(docs)
		for _, doc := range docs {
			content := doc.content
			if len(content) > share {
				content = truncate(content, share)
			}
			fmt.Fprintf(&b, "### %s\n%s\n", doc.name, content)
		}
	}

	// Safety clip.
	result := b.String()
	if len(result) > budget {
		result = truncate(result, budget)
	}
	return result
}

type localDoc struct {
	name    string
	content string
}

// loadLocalDocs reads markdown documents from <projectsRoot>/<dir>/docs.
// A missing directory is normal early in a pipeline.
func (m *ContextManager) loadLocalDocs(dirName string) []localDoc {
	docsDir := filepath.Join(m.projectsRoot, dirName, "docs")
	entries, err := os.ReadDir(docsDir)
	if err != nil {
		return nil
	}
	var docs []localDoc
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(docsDir, entry.Name()))
		if err != nil {
			m.log.Warn("Failed to read local document", "path", entry.Name(), "error", err)
			continue
		}
		docs = append(docs, localDoc{name: entry.Name(), content: string(data)})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].name < docs[j].name })
	return docs
}

// summarizeContent reduces markdown content to its headings plus the
// first ten lines of each fenced code block.
func summarizeContent(content string) string {
	var b strings.Builder
	inFence := false
	fenceLines := 0
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if inFence {
				inFence = false
				b.WriteString(line + "\n")
			} else {
				inFence = true
				fenceLines = 0
				b.WriteString(line + "\n")
			}
			continue
		}
		if inFence {
			if fenceLines < 10 {
				b.WriteString(line + "\n")
				fenceLines++
			}
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// truncate hard-clips s to max bytes without splitting a UTF-8 sequence.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return s[:cut]
}
