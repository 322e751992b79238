// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/nexus-ai/nexus/ent/predicate"
	"github.com/nexus-ai/nexus/ent/stage"
)

// StageUpdate is the builder for updating Stage entities.
type StageUpdate struct {
	config
	hooks    []Hook
	mutation *StageMutation
}

// Where appends a list predicates to the StageUpdate builder.
func (_u *StageUpdate) Where(ps ...predicate.Stage) *StageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStageName sets the "stage_name" field.
func (_u *StageUpdate) SetStageName(v string) *StageUpdate {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *StageUpdate) SetNillableStageName(v *string) *StageUpdate {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetStageNumber sets the "stage_number" field.
func (_u *StageUpdate) SetStageNumber(v int) *StageUpdate {
	_u.mutation.ResetStageNumber()
	_u.mutation.SetStageNumber(v)
	return _u
}

// SetNillableStageNumber sets the "stage_number" field if the given value is not nil.
func (_u *StageUpdate) SetNillableStageNumber(v *int) *StageUpdate {
	if v != nil {
		_u.SetStageNumber(*v)
	}
	return _u
}

// AddStageNumber adds value to the "stage_number" field.
func (_u *StageUpdate) AddStageNumber(v int) *StageUpdate {
	_u.mutation.AddStageNumber(v)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *StageUpdate) SetDisplayName(v string) *StageUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *StageUpdate) SetNillableDisplayName(v *string) *StageUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *StageUpdate) ClearDisplayName() *StageUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *StageUpdate) SetAgentName(v string) *StageUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *StageUpdate) SetNillableAgentName(v *string) *StageUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// ClearAgentName clears the value of the "agent_name" field.
func (_u *StageUpdate) ClearAgentName() *StageUpdate {
	_u.mutation.ClearAgentName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StageUpdate) SetStatus(v stage.Status) *StageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StageUpdate) SetNillableStatus(v *stage.Status) *StageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *StageUpdate) SetDurationSeconds(v float64) *StageUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *StageUpdate) SetNillableDurationSeconds(v *float64) *StageUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *StageUpdate) AddDurationSeconds(v float64) *StageUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *StageUpdate) ClearDurationSeconds() *StageUpdate {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *StageUpdate) SetInputTokens(v int) *StageUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *StageUpdate) SetNillableInputTokens(v *int) *StageUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *StageUpdate) AddInputTokens(v int) *StageUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *StageUpdate) SetOutputTokens(v int) *StageUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *StageUpdate) SetNillableOutputTokens(v *int) *StageUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *StageUpdate) AddOutputTokens(v int) *StageUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetToolCallsCount sets the "tool_calls_count" field.
func (_u *StageUpdate) SetToolCallsCount(v int) *StageUpdate {
	_u.mutation.ResetToolCallsCount()
	_u.mutation.SetToolCallsCount(v)
	return _u
}

// SetNillableToolCallsCount sets the "tool_calls_count" field if the given value is not nil.
func (_u *StageUpdate) SetNillableToolCallsCount(v *int) *StageUpdate {
	if v != nil {
		_u.SetToolCallsCount(*v)
	}
	return _u
}

// AddToolCallsCount adds value to the "tool_calls_count" field.
func (_u *StageUpdate) AddToolCallsCount(v int) *StageUpdate {
	_u.mutation.AddToolCallsCount(v)
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *StageUpdate) SetModelID(v string) *StageUpdate {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *StageUpdate) SetNillableModelID(v *string) *StageUpdate {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// ClearModelID clears the value of the "model_id" field.
func (_u *StageUpdate) ClearModelID() *StageUpdate {
	_u.mutation.ClearModelID()
	return _u
}

// SetAgentOutputContent sets the "agent_output_content" field.
func (_u *StageUpdate) SetAgentOutputContent(v string) *StageUpdate {
	_u.mutation.SetAgentOutputContent(v)
	return _u
}

// SetNillableAgentOutputContent sets the "agent_output_content" field if the given value is not nil.
func (_u *StageUpdate) SetNillableAgentOutputContent(v *string) *StageUpdate {
	if v != nil {
		_u.SetAgentOutputContent(*v)
	}
	return _u
}

// ClearAgentOutputContent clears the value of the "agent_output_content" field.
func (_u *StageUpdate) ClearAgentOutputContent() *StageUpdate {
	_u.mutation.ClearAgentOutputContent()
	return _u
}

// SetAgentOutputS3Ref sets the "agent_output_s3_ref" field.
func (_u *StageUpdate) SetAgentOutputS3Ref(v string) *StageUpdate {
	_u.mutation.SetAgentOutputS3Ref(v)
	return _u
}

// SetNillableAgentOutputS3Ref sets the "agent_output_s3_ref" field if the given value is not nil.
func (_u *StageUpdate) SetNillableAgentOutputS3Ref(v *string) *StageUpdate {
	if v != nil {
		_u.SetAgentOutputS3Ref(*v)
	}
	return _u
}

// ClearAgentOutputS3Ref clears the value of the "agent_output_s3_ref" field.
func (_u *StageUpdate) ClearAgentOutputS3Ref() *StageUpdate {
	_u.mutation.ClearAgentOutputS3Ref()
	return _u
}

// SetDesignDocumentContent sets the "design_document_content" field.
func (_u *StageUpdate) SetDesignDocumentContent(v string) *StageUpdate {
	_u.mutation.SetDesignDocumentContent(v)
	return _u
}

// SetNillableDesignDocumentContent sets the "design_document_content" field if the given value is not nil.
func (_u *StageUpdate) SetNillableDesignDocumentContent(v *string) *StageUpdate {
	if v != nil {
		_u.SetDesignDocumentContent(*v)
	}
	return _u
}

// ClearDesignDocumentContent clears the value of the "design_document_content" field.
func (_u *StageUpdate) ClearDesignDocumentContent() *StageUpdate {
	_u.mutation.ClearDesignDocumentContent()
	return _u
}

// SetDesignDocumentFormat sets the "design_document_format" field.
func (_u *StageUpdate) SetDesignDocumentFormat(v string) *StageUpdate {
	_u.mutation.SetDesignDocumentFormat(v)
	return _u
}

// SetNillableDesignDocumentFormat sets the "design_document_format" field if the given value is not nil.
func (_u *StageUpdate) SetNillableDesignDocumentFormat(v *string) *StageUpdate {
	if v != nil {
		_u.SetDesignDocumentFormat(*v)
	}
	return _u
}

// ClearDesignDocumentFormat clears the value of the "design_document_format" field.
func (_u *StageUpdate) ClearDesignDocumentFormat() *StageUpdate {
	_u.mutation.ClearDesignDocumentFormat()
	return _u
}

// SetGeneratedFiles sets the "generated_files" field.
func (_u *StageUpdate) SetGeneratedFiles(v []map[string]interface{}) *StageUpdate {
	_u.mutation.SetGeneratedFiles(v)
	return _u
}

// AppendGeneratedFiles appends value to the "generated_files" field.
func (_u *StageUpdate) AppendGeneratedFiles(v []map[string]interface{}) *StageUpdate {
	_u.mutation.AppendGeneratedFiles(v)
	return _u
}

// ClearGeneratedFiles clears the value of the "generated_files" field.
func (_u *StageUpdate) ClearGeneratedFiles() *StageUpdate {
	_u.mutation.ClearGeneratedFiles()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StageUpdate) SetErrorMessage(v string) *StageUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StageUpdate) SetNillableErrorMessage(v *string) *StageUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StageUpdate) ClearErrorMessage() *StageUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDocPath sets the "doc_path" field.
func (_u *StageUpdate) SetDocPath(v string) *StageUpdate {
	_u.mutation.SetDocPath(v)
	return _u
}

// SetNillableDocPath sets the "doc_path" field if the given value is not nil.
func (_u *StageUpdate) SetNillableDocPath(v *string) *StageUpdate {
	if v != nil {
		_u.SetDocPath(*v)
	}
	return _u
}

// ClearDocPath clears the value of the "doc_path" field.
func (_u *StageUpdate) ClearDocPath() *StageUpdate {
	_u.mutation.ClearDocPath()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StageUpdate) SetStartedAt(v time.Time) *StageUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StageUpdate) SetNillableStartedAt(v *time.Time) *StageUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StageUpdate) ClearStartedAt() *StageUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StageUpdate) SetCompletedAt(v time.Time) *StageUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StageUpdate) SetNillableCompletedAt(v *time.Time) *StageUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StageUpdate) ClearCompletedAt() *StageUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the StageMutation object of the builder.
func (_u *StageUpdate) Mutation() *StageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Stage.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Stage.project"`)
	}
	return nil
}

func (_u *StageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stage.Table, stage.Columns, sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(stage.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageNumber(); ok {
		_spec.SetField(stage.FieldStageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageNumber(); ok {
		_spec.AddField(stage.FieldStageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(stage.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(stage.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(stage.FieldAgentName, field.TypeString, value)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(stage.FieldAgentName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(stage.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(stage.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(stage.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(stage.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(stage.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(stage.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(stage.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToolCallsCount(); ok {
		_spec.SetField(stage.FieldToolCallsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolCallsCount(); ok {
		_spec.AddField(stage.FieldToolCallsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(stage.FieldModelID, field.TypeString, value)
	}
	if _u.mutation.ModelIDCleared() {
		_spec.ClearField(stage.FieldModelID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentOutputContent(); ok {
		_spec.SetField(stage.FieldAgentOutputContent, field.TypeString, value)
	}
	if _u.mutation.AgentOutputContentCleared() {
		_spec.ClearField(stage.FieldAgentOutputContent, field.TypeString)
	}
	if value, ok := _u.mutation.AgentOutputS3Ref(); ok {
		_spec.SetField(stage.FieldAgentOutputS3Ref, field.TypeString, value)
	}
	if _u.mutation.AgentOutputS3RefCleared() {
		_spec.ClearField(stage.FieldAgentOutputS3Ref, field.TypeString)
	}
	if value, ok := _u.mutation.DesignDocumentContent(); ok {
		_spec.SetField(stage.FieldDesignDocumentContent, field.TypeString, value)
	}
	if _u.mutation.DesignDocumentContentCleared() {
		_spec.ClearField(stage.FieldDesignDocumentContent, field.TypeString)
	}
	if value, ok := _u.mutation.DesignDocumentFormat(); ok {
		_spec.SetField(stage.FieldDesignDocumentFormat, field.TypeString, value)
	}
	if _u.mutation.DesignDocumentFormatCleared() {
		_spec.ClearField(stage.FieldDesignDocumentFormat, field.TypeString)
	}
	if value, ok := _u.mutation.GeneratedFiles(); ok {
		_spec.SetField(stage.FieldGeneratedFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeneratedFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stage.FieldGeneratedFiles, value)
		})
	}
	if _u.mutation.GeneratedFilesCleared() {
		_spec.ClearField(stage.FieldGeneratedFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(stage.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stage.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DocPath(); ok {
		_spec.SetField(stage.FieldDocPath, field.TypeString, value)
	}
	if _u.mutation.DocPathCleared() {
		_spec.ClearField(stage.FieldDocPath, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stage.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(stage.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stage.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(stage.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageUpdateOne is the builder for updating a single Stage entity.
type StageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageMutation
}

// SetStageName sets the "stage_name" field.
func (_u *StageUpdateOne) SetStageName(v string) *StageUpdateOne {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableStageName(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetStageNumber sets the "stage_number" field.
func (_u *StageUpdateOne) SetStageNumber(v int) *StageUpdateOne {
	_u.mutation.ResetStageNumber()
	_u.mutation.SetStageNumber(v)
	return _u
}

// SetNillableStageNumber sets the "stage_number" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableStageNumber(v *int) *StageUpdateOne {
	if v != nil {
		_u.SetStageNumber(*v)
	}
	return _u
}

// AddStageNumber adds value to the "stage_number" field.
func (_u *StageUpdateOne) AddStageNumber(v int) *StageUpdateOne {
	_u.mutation.AddStageNumber(v)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *StageUpdateOne) SetDisplayName(v string) *StageUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableDisplayName(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *StageUpdateOne) ClearDisplayName() *StageUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *StageUpdateOne) SetAgentName(v string) *StageUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableAgentName(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// ClearAgentName clears the value of the "agent_name" field.
func (_u *StageUpdateOne) ClearAgentName() *StageUpdateOne {
	_u.mutation.ClearAgentName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StageUpdateOne) SetStatus(v stage.Status) *StageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableStatus(v *stage.Status) *StageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *StageUpdateOne) SetDurationSeconds(v float64) *StageUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableDurationSeconds(v *float64) *StageUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *StageUpdateOne) AddDurationSeconds(v float64) *StageUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *StageUpdateOne) ClearDurationSeconds() *StageUpdateOne {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *StageUpdateOne) SetInputTokens(v int) *StageUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableInputTokens(v *int) *StageUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *StageUpdateOne) AddInputTokens(v int) *StageUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *StageUpdateOne) SetOutputTokens(v int) *StageUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableOutputTokens(v *int) *StageUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *StageUpdateOne) AddOutputTokens(v int) *StageUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetToolCallsCount sets the "tool_calls_count" field.
func (_u *StageUpdateOne) SetToolCallsCount(v int) *StageUpdateOne {
	_u.mutation.ResetToolCallsCount()
	_u.mutation.SetToolCallsCount(v)
	return _u
}

// SetNillableToolCallsCount sets the "tool_calls_count" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableToolCallsCount(v *int) *StageUpdateOne {
	if v != nil {
		_u.SetToolCallsCount(*v)
	}
	return _u
}

// AddToolCallsCount adds value to the "tool_calls_count" field.
func (_u *StageUpdateOne) AddToolCallsCount(v int) *StageUpdateOne {
	_u.mutation.AddToolCallsCount(v)
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *StageUpdateOne) SetModelID(v string) *StageUpdateOne {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableModelID(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// ClearModelID clears the value of the "model_id" field.
func (_u *StageUpdateOne) ClearModelID() *StageUpdateOne {
	_u.mutation.ClearModelID()
	return _u
}

// SetAgentOutputContent sets the "agent_output_content" field.
func (_u *StageUpdateOne) SetAgentOutputContent(v string) *StageUpdateOne {
	_u.mutation.SetAgentOutputContent(v)
	return _u
}

// SetNillableAgentOutputContent sets the "agent_output_content" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableAgentOutputContent(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetAgentOutputContent(*v)
	}
	return _u
}

// ClearAgentOutputContent clears the value of the "agent_output_content" field.
func (_u *StageUpdateOne) ClearAgentOutputContent() *StageUpdateOne {
	_u.mutation.ClearAgentOutputContent()
	return _u
}

// SetAgentOutputS3Ref sets the "agent_output_s3_ref" field.
func (_u *StageUpdateOne) SetAgentOutputS3Ref(v string) *StageUpdateOne {
	_u.mutation.SetAgentOutputS3Ref(v)
	return _u
}

// SetNillableAgentOutputS3Ref sets the "agent_output_s3_ref" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableAgentOutputS3Ref(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetAgentOutputS3Ref(*v)
	}
	return _u
}

// ClearAgentOutputS3Ref clears the value of the "agent_output_s3_ref" field.
func (_u *StageUpdateOne) ClearAgentOutputS3Ref() *StageUpdateOne {
	_u.mutation.ClearAgentOutputS3Ref()
	return _u
}

// SetDesignDocumentContent sets the "design_document_content" field.
func (_u *StageUpdateOne) SetDesignDocumentContent(v string) *StageUpdateOne {
	_u.mutation.SetDesignDocumentContent(v)
	return _u
}

// SetNillableDesignDocumentContent sets the "design_document_content" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableDesignDocumentContent(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetDesignDocumentContent(*v)
	}
	return _u
}

// ClearDesignDocumentContent clears the value of the "design_document_content" field.
func (_u *StageUpdateOne) ClearDesignDocumentContent() *StageUpdateOne {
	_u.mutation.ClearDesignDocumentContent()
	return _u
}

// SetDesignDocumentFormat sets the "design_document_format" field.
func (_u *StageUpdateOne) SetDesignDocumentFormat(v string) *StageUpdateOne {
	_u.mutation.SetDesignDocumentFormat(v)
	return _u
}

// SetNillableDesignDocumentFormat sets the "design_document_format" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableDesignDocumentFormat(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetDesignDocumentFormat(*v)
	}
	return _u
}

// ClearDesignDocumentFormat clears the value of the "design_document_format" field.
func (_u *StageUpdateOne) ClearDesignDocumentFormat() *StageUpdateOne {
	_u.mutation.ClearDesignDocumentFormat()
	return _u
}

// SetGeneratedFiles sets the "generated_files" field.
func (_u *StageUpdateOne) SetGeneratedFiles(v []map[string]interface{}) *StageUpdateOne {
	_u.mutation.SetGeneratedFiles(v)
	return _u
}

// AppendGeneratedFiles appends value to the "generated_files" field.
func (_u *StageUpdateOne) AppendGeneratedFiles(v []map[string]interface{}) *StageUpdateOne {
	_u.mutation.AppendGeneratedFiles(v)
	return _u
}

// ClearGeneratedFiles clears the value of the "generated_files" field.
func (_u *StageUpdateOne) ClearGeneratedFiles() *StageUpdateOne {
	_u.mutation.ClearGeneratedFiles()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StageUpdateOne) SetErrorMessage(v string) *StageUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableErrorMessage(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StageUpdateOne) ClearErrorMessage() *StageUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDocPath sets the "doc_path" field.
func (_u *StageUpdateOne) SetDocPath(v string) *StageUpdateOne {
	_u.mutation.SetDocPath(v)
	return _u
}

// SetNillableDocPath sets the "doc_path" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableDocPath(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetDocPath(*v)
	}
	return _u
}

// ClearDocPath clears the value of the "doc_path" field.
func (_u *StageUpdateOne) ClearDocPath() *StageUpdateOne {
	_u.mutation.ClearDocPath()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StageUpdateOne) SetStartedAt(v time.Time) *StageUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableStartedAt(v *time.Time) *StageUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StageUpdateOne) ClearStartedAt() *StageUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StageUpdateOne) SetCompletedAt(v time.Time) *StageUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableCompletedAt(v *time.Time) *StageUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StageUpdateOne) ClearCompletedAt() *StageUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the StageMutation object of the builder.
func (_u *StageUpdateOne) Mutation() *StageMutation {
	return _u.mutation
}

// Where appends a list predicates to the StageUpdate builder.
func (_u *StageUpdateOne) Where(ps ...predicate.Stage) *StageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageUpdateOne) Select(field string, fields ...string) *StageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Stage entity.
func (_u *StageUpdateOne) Save(ctx context.Context) (*Stage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageUpdateOne) SaveX(ctx context.Context) *Stage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Stage.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Stage.project"`)
	}
	return nil
}

func (_u *StageUpdateOne) sqlSave(ctx context.Context) (_node *Stage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stage.Table, stage.Columns, sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Stage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stage.FieldID)
		for _, f := range fields {
			if !stage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(stage.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageNumber(); ok {
		_spec.SetField(stage.FieldStageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageNumber(); ok {
		_spec.AddField(stage.FieldStageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(stage.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(stage.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(stage.FieldAgentName, field.TypeString, value)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(stage.FieldAgentName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(stage.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(stage.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(stage.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(stage.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(stage.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(stage.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(stage.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToolCallsCount(); ok {
		_spec.SetField(stage.FieldToolCallsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolCallsCount(); ok {
		_spec.AddField(stage.FieldToolCallsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(stage.FieldModelID, field.TypeString, value)
	}
	if _u.mutation.ModelIDCleared() {
		_spec.ClearField(stage.FieldModelID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentOutputContent(); ok {
		_spec.SetField(stage.FieldAgentOutputContent, field.TypeString, value)
	}
	if _u.mutation.AgentOutputContentCleared() {
		_spec.ClearField(stage.FieldAgentOutputContent, field.TypeString)
	}
	if value, ok := _u.mutation.AgentOutputS3Ref(); ok {
		_spec.SetField(stage.FieldAgentOutputS3Ref, field.TypeString, value)
	}
	if _u.mutation.AgentOutputS3RefCleared() {
		_spec.ClearField(stage.FieldAgentOutputS3Ref, field.TypeString)
	}
	if value, ok := _u.mutation.DesignDocumentContent(); ok {
		_spec.SetField(stage.FieldDesignDocumentContent, field.TypeString, value)
	}
	if _u.mutation.DesignDocumentContentCleared() {
		_spec.ClearField(stage.FieldDesignDocumentContent, field.TypeString)
	}
	if value, ok := _u.mutation.DesignDocumentFormat(); ok {
		_spec.SetField(stage.FieldDesignDocumentFormat, field.TypeString, value)
	}
	if _u.mutation.DesignDocumentFormatCleared() {
		_spec.ClearField(stage.FieldDesignDocumentFormat, field.TypeString)
	}
	if value, ok := _u.mutation.GeneratedFiles(); ok {
		_spec.SetField(stage.FieldGeneratedFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeneratedFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stage.FieldGeneratedFiles, value)
		})
	}
	if _u.mutation.GeneratedFilesCleared() {
		_spec.ClearField(stage.FieldGeneratedFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(stage.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stage.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DocPath(); ok {
		_spec.SetField(stage.FieldDocPath, field.TypeString, value)
	}
	if _u.mutation.DocPathCleared() {
		_spec.ClearField(stage.FieldDocPath, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stage.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(stage.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stage.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(stage.FieldCompletedAt, field.TypeTime)
	}
	_node = &Stage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
