package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nexus-ai/nexus/ent"
	"github.com/nexus-ai/nexus/ent/stage"
	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/models"
)

// StageService persists stage records keyed by (project_id, stage_name).
// It implements the workflow engine's StageStore. Stage names are
// normalized through the legacy alias map on every lookup and save.
type StageService struct {
	client *ent.Client
}

// NewStageService creates a new StageService
func NewStageService(client *ent.Client) *StageService {
	return &StageService{client: client}
}

// ListStages returns a project's stages in configured order.
func (s *StageService) ListStages(ctx context.Context, projectID string) ([]*models.StageRecord, error) {
	if projectID == "" {
		return nil, NewValidationError("project_id", "required")
	}

	rows, err := s.client.Stage.Query().
		Where(stage.ProjectIDEQ(projectID)).
		Order(ent.Asc(stage.FieldStageNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}

	records := make([]*models.StageRecord, len(rows))
	for i, row := range rows {
		records[i] = stageToModel(row)
	}
	return records, nil
}

// GetStage returns one stage by project and name.
func (s *StageService) GetStage(ctx context.Context, projectID, name string) (*models.StageRecord, error) {
	if projectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if name == "" {
		return nil, NewValidationError("stage_name", "required")
	}

	row, err := s.client.Stage.Query().
		Where(
			stage.ProjectIDEQ(projectID),
			stage.StageNameEQ(config.NormalizeStageName(name)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get stage: %w", err)
	}
	return stageToModel(row), nil
}

// SaveStage upserts a stage record. The row is normally pre-seeded at
// project creation; the create path covers legacy projects whose
// pipeline predates seeding.
func (s *StageService) SaveStage(ctx context.Context, rec *models.StageRecord) error {
	if rec == nil || rec.ProjectID == "" {
		return NewValidationError("project_id", "required")
	}
	if rec.Name == "" {
		return NewValidationError("stage_name", "required")
	}
	name := config.NormalizeStageName(rec.Name)

	existing, err := s.client.Stage.Query().
		Where(stage.ProjectIDEQ(rec.ProjectID), stage.StageNameEQ(name)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to query stage: %w", err)
	}

	if ent.IsNotFound(err) {
		create := s.client.Stage.Create().
			SetID(uuid.New().String()).
			SetProjectID(rec.ProjectID).
			SetStageName(name).
			SetStageNumber(rec.Number).
			SetDisplayName(rec.DisplayName).
			SetAgentName(rec.AgentName).
			SetStatus(stage.Status(rec.Status)).
			SetDurationSeconds(rec.DurationSeconds).
			SetInputTokens(rec.Metrics.InputTokens).
			SetOutputTokens(rec.Metrics.OutputTokens).
			SetToolCallsCount(rec.Metrics.ToolCallsCount).
			SetModelID(rec.Metrics.ModelID).
			SetAgentOutputContent(rec.OutputContent).
			SetAgentOutputS3Ref(rec.OutputS3Ref).
			SetDocPath(rec.DocPath).
			SetNillableStartedAt(rec.StartedAt).
			SetNillableCompletedAt(rec.CompletedAt)
		if rec.DesignDocument != nil {
			create.SetDesignDocumentContent(rec.DesignDocument.Content).
				SetDesignDocumentFormat(rec.DesignDocument.Format)
		}
		if files := encodeGeneratedFiles(rec.GeneratedFiles); files != nil {
			create.SetGeneratedFiles(files)
		}
		if rec.ErrorMessage != "" {
			create.SetErrorMessage(rec.ErrorMessage)
		}
		if _, err := create.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("failed to create stage: %w", err)
		}
		return nil
	}

	update := existing.Update().
		SetStageNumber(rec.Number).
		SetDisplayName(rec.DisplayName).
		SetAgentName(rec.AgentName).
		SetStatus(stage.Status(rec.Status)).
		SetDurationSeconds(rec.DurationSeconds).
		SetInputTokens(rec.Metrics.InputTokens).
		SetOutputTokens(rec.Metrics.OutputTokens).
		SetToolCallsCount(rec.Metrics.ToolCallsCount).
		SetModelID(rec.Metrics.ModelID).
		SetAgentOutputContent(rec.OutputContent).
		SetAgentOutputS3Ref(rec.OutputS3Ref).
		SetDocPath(rec.DocPath).
		SetNillableStartedAt(rec.StartedAt).
		SetNillableCompletedAt(rec.CompletedAt)
	if rec.DesignDocument != nil {
		update.SetDesignDocumentContent(rec.DesignDocument.Content).
			SetDesignDocumentFormat(rec.DesignDocument.Format)
	}
	if files := encodeGeneratedFiles(rec.GeneratedFiles); files != nil {
		update.SetGeneratedFiles(files)
	}
	if rec.ErrorMessage != "" {
		update.SetErrorMessage(rec.ErrorMessage)
	} else {
		update.ClearErrorMessage()
	}

	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to update stage: %w", err)
	}
	return nil
}

// ClearFromStage resets every stage at or after the given 1-indexed
// stage number back to pending, wiping outputs, metrics, and
// timestamps. Used by restart. Returns the number of stages cleared.
func (s *StageService) ClearFromStage(ctx context.Context, projectID string, fromNumber int) (int, error) {
	if projectID == "" {
		return 0, NewValidationError("project_id", "required")
	}
	if fromNumber < 1 {
		return 0, NewValidationError("from_stage", "must be a positive stage number")
	}

	n, err := s.client.Stage.Update().
		Where(
			stage.ProjectIDEQ(projectID),
			stage.StageNumberGTE(fromNumber),
		).
		SetStatus(stage.StatusPending).
		SetInputTokens(0).
		SetOutputTokens(0).
		SetToolCallsCount(0).
		SetModelID("").
		SetAgentOutputContent("").
		SetAgentOutputS3Ref("").
		SetDesignDocumentContent("").
		SetDesignDocumentFormat("").
		SetDocPath("").
		ClearDurationSeconds().
		ClearGeneratedFiles().
		ClearErrorMessage().
		ClearStartedAt().
		ClearCompletedAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear stages: %w", err)
	}
	return n, nil
}
