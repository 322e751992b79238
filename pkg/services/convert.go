package services

import (
	"encoding/json"

	"github.com/nexus-ai/nexus/ent"
	"github.com/nexus-ai/nexus/pkg/models"
)

// The ent entities store structured columns as plain JSON maps; the
// converters below translate between those and the typed models the
// engine, queue, and API exchange.

// toJSONMap round-trips a typed value into the map shape ent's JSON
// columns store. Returns nil for values that marshal to an empty object.
func toJSONMap(v any) map[string]interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// fromJSONMap decodes a JSON-map column into a typed value. An empty
// map leaves out at its zero value.
func fromJSONMap(m map[string]interface{}, out any) {
	if len(m) == 0 {
		return
	}
	data, err := json.Marshal(m)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, out)
}

func projectToModel(e *ent.Project) *models.Project {
	p := &models.Project{
		ID:            e.ID,
		Name:          e.ProjectName,
		WorkflowType:  models.WorkflowType(e.WorkflowType),
		Requirement:   e.Requirement,
		Priority:      e.Priority,
		Tags:          e.Tags,
		UserID:        e.UserID,
		Status:        models.ProjectStatus(e.Status),
		ControlStatus: models.ControlStatus(e.ControlStatus),
		CurrentStage:  e.CurrentStage,
		Progress:      e.Progress,
		Metadata:      e.Metadata,

		PauseRequestedAt: e.PauseRequestedAt,
		StopRequestedAt:  e.StopRequestedAt,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
		StartedAt:        e.StartedAt,
		CompletedAt:      e.CompletedAt,
	}
	if e.ResumeFromStage != nil {
		p.ResumeFromStage = *e.ResumeFromStage
	}
	if len(e.ErrorInfo) > 0 {
		var info models.ErrorInfo
		fromJSONMap(e.ErrorInfo, &info)
		p.ErrorInfo = &info
	}
	fromJSONMap(e.AggregatedMetrics, &p.Metrics)
	return p
}

func stageToModel(e *ent.Stage) *models.StageRecord {
	rec := &models.StageRecord{
		ProjectID:   e.ProjectID,
		Name:        e.StageName,
		Number:      e.StageNumber,
		DisplayName: e.DisplayName,
		AgentName:   e.AgentName,

		Status: models.StageStatus(e.Status),
		Metrics: models.StageMetrics{
			InputTokens:    e.InputTokens,
			OutputTokens:   e.OutputTokens,
			ToolCallsCount: e.ToolCallsCount,
			ModelID:        e.ModelID,
		},
		OutputContent: e.AgentOutputContent,
		OutputS3Ref:   e.AgentOutputS3Ref,
		DocPath:       e.DocPath,

		StartedAt:   e.StartedAt,
		CompletedAt: e.CompletedAt,
	}
	if e.DurationSeconds != nil {
		rec.DurationSeconds = *e.DurationSeconds
	}
	if e.ErrorMessage != nil {
		rec.ErrorMessage = *e.ErrorMessage
	}
	if e.DesignDocumentContent != "" {
		rec.DesignDocument = &models.DesignDocument{
			Content: e.DesignDocumentContent,
			Format:  e.DesignDocumentFormat,
		}
	}
	if len(e.GeneratedFiles) > 0 {
		rec.GeneratedFiles = decodeGeneratedFiles(e.GeneratedFiles)
	}
	return rec
}

func decodeGeneratedFiles(raw []map[string]interface{}) []models.GeneratedFile {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var files []models.GeneratedFile
	if err := json.Unmarshal(data, &files); err != nil {
		return nil
	}
	return files
}

func encodeGeneratedFiles(files []models.GeneratedFile) []map[string]interface{} {
	if len(files) == 0 {
		return nil
	}
	data, err := json.Marshal(files)
	if err != nil {
		return nil
	}
	var raw []map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	return raw
}

func taskToModel(e *ent.Task) *models.Task {
	t := &models.Task{
		ID:         e.ID,
		Type:       models.TaskType(e.TaskType),
		ProjectID:  e.ProjectID,
		Status:     models.TaskStatus(e.Status),
		Priority:   e.Priority,
		Result:     e.Result,
		RetryCount: e.RetryCount,

		LeaseExpiresAt: e.LeaseExpiresAt,
		CreatedAt:      e.CreatedAt,
		StartedAt:      e.StartedAt,
		CompletedAt:    e.CompletedAt,
	}
	if e.ErrorMessage != nil {
		t.ErrorMessage = *e.ErrorMessage
	}
	if e.WorkerID != nil {
		t.WorkerID = *e.WorkerID
	}
	fromJSONMap(e.Payload, &t.Payload)
	return t
}

func agentToModel(e *ent.Agent) *models.Agent {
	return &models.Agent{
		ID:          e.ID,
		Name:        e.AgentName,
		Description: e.Description,
		ProjectID:   e.ProjectID,

		Status:           models.AgentStatus(e.Status),
		DeploymentStatus: models.DeploymentStatus(e.DeploymentStatus),
		DeploymentError:  e.DeploymentError,

		RuntimeID:       e.RuntimeID,
		RuntimeEndpoint: e.RuntimeEndpoint,
		Capabilities:    e.Capabilities,
		InvocationCount: e.InvocationCount,

		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
		LastDeployedAt: e.LastDeployedAt,
	}
}
