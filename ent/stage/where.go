// Code generated by ent, DO NOT EDIT.

package stage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nexus-ai/nexus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldProjectID, v))
}

// StageName applies equality check predicate on the "stage_name" field. It's identical to StageNameEQ.
func StageName(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldStageName, v))
}

// StageNumber applies equality check predicate on the "stage_number" field. It's identical to StageNumberEQ.
func StageNumber(v int) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldStageNumber, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldDisplayName, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldAgentName, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v float64) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldDurationSeconds, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldOutputTokens, v))
}

// ToolCallsCount applies equality check predicate on the "tool_calls_count" field. It's identical to ToolCallsCountEQ.
func ToolCallsCount(v int) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldToolCallsCount, v))
}

// ModelID applies equality check predicate on the "model_id" field. It's identical to ModelIDEQ.
func ModelID(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldModelID, v))
}

// AgentOutputContent applies equality check predicate on the "agent_output_content" field. It's identical to AgentOutputContentEQ.
func AgentOutputContent(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldAgentOutputContent, v))
}

// AgentOutputS3Ref applies equality check predicate on the "agent_output_s3_ref" field. It's identical to AgentOutputS3RefEQ.
func AgentOutputS3Ref(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldAgentOutputS3Ref, v))
}

// DesignDocumentContent applies equality check predicate on the "design_document_content" field. It's identical to DesignDocumentContentEQ.
func DesignDocumentContent(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldDesignDocumentContent, v))
}

// DesignDocumentFormat applies equality check predicate on the "design_document_format" field. It's identical to DesignDocumentFormatEQ.
func DesignDocumentFormat(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldDesignDocumentFormat, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldErrorMessage, v))
}

// DocPath applies equality check predicate on the "doc_path" field. It's identical to DocPathEQ.
func DocPath(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldDocPath, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldCompletedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldProjectID, v))
}

// StageNameEQ applies the EQ predicate on the "stage_name" field.
func StageNameEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldStageName, v))
}

// StageNameNEQ applies the NEQ predicate on the "stage_name" field.
func StageNameNEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldStageName, v))
}

// StageNameIn applies the In predicate on the "stage_name" field.
func StageNameIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldStageName, vs...))
}

// StageNameNotIn applies the NotIn predicate on the "stage_name" field.
func StageNameNotIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldStageName, vs...))
}

// StageNameGT applies the GT predicate on the "stage_name" field.
func StageNameGT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldStageName, v))
}

// StageNameGTE applies the GTE predicate on the "stage_name" field.
func StageNameGTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldStageName, v))
}

// StageNameLT applies the LT predicate on the "stage_name" field.
func StageNameLT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldStageName, v))
}

// StageNameLTE applies the LTE predicate on the "stage_name" field.
func StageNameLTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldStageName, v))
}

// StageNameContains applies the Contains predicate on the "stage_name" field.
func StageNameContains(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContains(FieldStageName, v))
}

// StageNameHasPrefix applies the HasPrefix predicate on the "stage_name" field.
func StageNameHasPrefix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasPrefix(FieldStageName, v))
}

// StageNameHasSuffix applies the HasSuffix predicate on the "stage_name" field.
func StageNameHasSuffix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasSuffix(FieldStageName, v))
}

// StageNameEqualFold applies the EqualFold predicate on the "stage_name" field.
func StageNameEqualFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldStageName, v))
}

// StageNameContainsFold applies the ContainsFold predicate on the "stage_name" field.
func StageNameContainsFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldStageName, v))
}

// StageNumberEQ applies the EQ predicate on the "stage_number" field.
func StageNumberEQ(v int) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldStageNumber, v))
}

// StageNumberNEQ applies the NEQ predicate on the "stage_number" field.
func StageNumberNEQ(v int) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldStageNumber, v))
}

// StageNumberIn applies the In predicate on the "stage_number" field.
func StageNumberIn(vs ...int) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldStageNumber, vs...))
}

// StageNumberNotIn applies the NotIn predicate on the "stage_number" field.
func StageNumberNotIn(vs ...int) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldStageNumber, vs...))
}

// StageNumberGT applies the GT predicate on the "stage_number" field.
func StageNumberGT(v int) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldStageNumber, v))
}

// StageNumberGTE applies the GTE predicate on the "stage_number" field.
func StageNumberGTE(v int) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldStageNumber, v))
}

// StageNumberLT applies the LT predicate on the "stage_number" field.
func StageNumberLT(v int) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldStageNumber, v))
}

// StageNumberLTE applies the LTE predicate on the "stage_number" field.
func StageNumberLTE(v int) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldStageNumber, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldDisplayName, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameIsNil applies the IsNil predicate on the "agent_name" field.
func AgentNameIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldAgentName))
}

// AgentNameNotNil applies the NotNil predicate on the "agent_name" field.
func AgentNameNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldAgentName))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldAgentName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldStatus, vs...))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v float64) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v float64) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...float64) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...float64) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v float64) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v float64) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v float64) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v float64) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldDurationSeconds, v))
}

// DurationSecondsIsNil applies the IsNil predicate on the "duration_seconds" field.
func DurationSecondsIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldDurationSeconds))
}

// DurationSecondsNotNil applies the NotNil predicate on the "duration_seconds" field.
func DurationSecondsNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldDurationSeconds))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldOutputTokens, v))
}

// ToolCallsCountEQ applies the EQ predicate on the "tool_calls_count" field.
func ToolCallsCountEQ(v int) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldToolCallsCount, v))
}

// ToolCallsCountNEQ applies the NEQ predicate on the "tool_calls_count" field.
func ToolCallsCountNEQ(v int) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldToolCallsCount, v))
}

// ToolCallsCountIn applies the In predicate on the "tool_calls_count" field.
func ToolCallsCountIn(vs ...int) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldToolCallsCount, vs...))
}

// ToolCallsCountNotIn applies the NotIn predicate on the "tool_calls_count" field.
func ToolCallsCountNotIn(vs ...int) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldToolCallsCount, vs...))
}

// ToolCallsCountGT applies the GT predicate on the "tool_calls_count" field.
func ToolCallsCountGT(v int) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldToolCallsCount, v))
}

// ToolCallsCountGTE applies the GTE predicate on the "tool_calls_count" field.
func ToolCallsCountGTE(v int) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldToolCallsCount, v))
}

// ToolCallsCountLT applies the LT predicate on the "tool_calls_count" field.
func ToolCallsCountLT(v int) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldToolCallsCount, v))
}

// ToolCallsCountLTE applies the LTE predicate on the "tool_calls_count" field.
func ToolCallsCountLTE(v int) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldToolCallsCount, v))
}

// ModelIDEQ applies the EQ predicate on the "model_id" field.
func ModelIDEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldModelID, v))
}

// ModelIDNEQ applies the NEQ predicate on the "model_id" field.
func ModelIDNEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldModelID, v))
}

// ModelIDIn applies the In predicate on the "model_id" field.
func ModelIDIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldModelID, vs...))
}

// ModelIDNotIn applies the NotIn predicate on the "model_id" field.
func ModelIDNotIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldModelID, vs...))
}

// ModelIDGT applies the GT predicate on the "model_id" field.
func ModelIDGT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldModelID, v))
}

// ModelIDGTE applies the GTE predicate on the "model_id" field.
func ModelIDGTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldModelID, v))
}

// ModelIDLT applies the LT predicate on the "model_id" field.
func ModelIDLT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldModelID, v))
}

// ModelIDLTE applies the LTE predicate on the "model_id" field.
func ModelIDLTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldModelID, v))
}

// ModelIDContains applies the Contains predicate on the "model_id" field.
func ModelIDContains(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContains(FieldModelID, v))
}

// ModelIDHasPrefix applies the HasPrefix predicate on the "model_id" field.
func ModelIDHasPrefix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasPrefix(FieldModelID, v))
}

// ModelIDHasSuffix applies the HasSuffix predicate on the "model_id" field.
func ModelIDHasSuffix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasSuffix(FieldModelID, v))
}

// ModelIDIsNil applies the IsNil predicate on the "model_id" field.
func ModelIDIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldModelID))
}

// ModelIDNotNil applies the NotNil predicate on the "model_id" field.
func ModelIDNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldModelID))
}

// ModelIDEqualFold applies the EqualFold predicate on the "model_id" field.
func ModelIDEqualFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldModelID, v))
}

// ModelIDContainsFold applies the ContainsFold predicate on the "model_id" field.
func ModelIDContainsFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldModelID, v))
}

// AgentOutputContentEQ applies the EQ predicate on the "agent_output_content" field.
func AgentOutputContentEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldAgentOutputContent, v))
}

// AgentOutputContentNEQ applies the NEQ predicate on the "agent_output_content" field.
func AgentOutputContentNEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldAgentOutputContent, v))
}

// AgentOutputContentIn applies the In predicate on the "agent_output_content" field.
func AgentOutputContentIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldAgentOutputContent, vs...))
}

// AgentOutputContentNotIn applies the NotIn predicate on the "agent_output_content" field.
func AgentOutputContentNotIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldAgentOutputContent, vs...))
}

// AgentOutputContentGT applies the GT predicate on the "agent_output_content" field.
func AgentOutputContentGT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldAgentOutputContent, v))
}

// AgentOutputContentGTE applies the GTE predicate on the "agent_output_content" field.
func AgentOutputContentGTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldAgentOutputContent, v))
}

// AgentOutputContentLT applies the LT predicate on the "agent_output_content" field.
func AgentOutputContentLT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldAgentOutputContent, v))
}

// AgentOutputContentLTE applies the LTE predicate on the "agent_output_content" field.
func AgentOutputContentLTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldAgentOutputContent, v))
}

// AgentOutputContentContains applies the Contains predicate on the "agent_output_content" field.
func AgentOutputContentContains(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContains(FieldAgentOutputContent, v))
}

// AgentOutputContentHasPrefix applies the HasPrefix predicate on the "agent_output_content" field.
func AgentOutputContentHasPrefix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasPrefix(FieldAgentOutputContent, v))
}

// AgentOutputContentHasSuffix applies the HasSuffix predicate on the "agent_output_content" field.
func AgentOutputContentHasSuffix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasSuffix(FieldAgentOutputContent, v))
}

// AgentOutputContentIsNil applies the IsNil predicate on the "agent_output_content" field.
func AgentOutputContentIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldAgentOutputContent))
}

// AgentOutputContentNotNil applies the NotNil predicate on the "agent_output_content" field.
func AgentOutputContentNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldAgentOutputContent))
}

// AgentOutputContentEqualFold applies the EqualFold predicate on the "agent_output_content" field.
func AgentOutputContentEqualFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldAgentOutputContent, v))
}

// AgentOutputContentContainsFold applies the ContainsFold predicate on the "agent_output_content" field.
func AgentOutputContentContainsFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldAgentOutputContent, v))
}

// AgentOutputS3RefEQ applies the EQ predicate on the "agent_output_s3_ref" field.
func AgentOutputS3RefEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldAgentOutputS3Ref, v))
}

// AgentOutputS3RefNEQ applies the NEQ predicate on the "agent_output_s3_ref" field.
func AgentOutputS3RefNEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldAgentOutputS3Ref, v))
}

// AgentOutputS3RefIn applies the In predicate on the "agent_output_s3_ref" field.
func AgentOutputS3RefIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldAgentOutputS3Ref, vs...))
}

// AgentOutputS3RefNotIn applies the NotIn predicate on the "agent_output_s3_ref" field.
func AgentOutputS3RefNotIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldAgentOutputS3Ref, vs...))
}

// AgentOutputS3RefGT applies the GT predicate on the "agent_output_s3_ref" field.
func AgentOutputS3RefGT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldAgentOutputS3Ref, v))
}

// AgentOutputS3RefGTE applies the GTE predicate on the "agent_output_s3_ref" field.
func AgentOutputS3RefGTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldAgentOutputS3Ref, v))
}

// AgentOutputS3RefLT applies the LT predicate on the "agent_output_s3_ref" field.
func AgentOutputS3RefLT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldAgentOutputS3Ref, v))
}

// AgentOutputS3RefLTE applies the LTE predicate on the "agent_output_s3_ref" field.
func AgentOutputS3RefLTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldAgentOutputS3Ref, v))
}

// AgentOutputS3RefContains applies the Contains predicate on the "agent_output_s3_ref" field.
func AgentOutputS3RefContains(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContains(FieldAgentOutputS3Ref, v))
}

// AgentOutputS3RefHasPrefix applies the HasPrefix predicate on the "agent_output_s3_ref" field.
func AgentOutputS3RefHasPrefix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasPrefix(FieldAgentOutputS3Ref, v))
}

// AgentOutputS3RefHasSuffix applies the HasSuffix predicate on the "agent_output_s3_ref" field.
func AgentOutputS3RefHasSuffix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasSuffix(FieldAgentOutputS3Ref, v))
}

// AgentOutputS3RefIsNil applies the IsNil predicate on the "agent_output_s3_ref" field.
func AgentOutputS3RefIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldAgentOutputS3Ref))
}

// AgentOutputS3RefNotNil applies the NotNil predicate on the "agent_output_s3_ref" field.
func AgentOutputS3RefNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldAgentOutputS3Ref))
}

// AgentOutputS3RefEqualFold applies the EqualFold predicate on the "agent_output_s3_ref" field.
func AgentOutputS3RefEqualFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldAgentOutputS3Ref, v))
}

// AgentOutputS3RefContainsFold applies the ContainsFold predicate on the "agent_output_s3_ref" field.
func AgentOutputS3RefContainsFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldAgentOutputS3Ref, v))
}

// DesignDocumentContentEQ applies the EQ predicate on the "design_document_content" field.
func DesignDocumentContentEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldDesignDocumentContent, v))
}

// DesignDocumentContentNEQ applies the NEQ predicate on the "design_document_content" field.
func DesignDocumentContentNEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldDesignDocumentContent, v))
}

// DesignDocumentContentIn applies the In predicate on the "design_document_content" field.
func DesignDocumentContentIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldDesignDocumentContent, vs...))
}

// DesignDocumentContentNotIn applies the NotIn predicate on the "design_document_content" field.
func DesignDocumentContentNotIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldDesignDocumentContent, vs...))
}

// DesignDocumentContentGT applies the GT predicate on the "design_document_content" field.
func DesignDocumentContentGT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldDesignDocumentContent, v))
}

// DesignDocumentContentGTE applies the GTE predicate on the "design_document_content" field.
func DesignDocumentContentGTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldDesignDocumentContent, v))
}

// DesignDocumentContentLT applies the LT predicate on the "design_document_content" field.
func DesignDocumentContentLT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldDesignDocumentContent, v))
}

// DesignDocumentContentLTE applies the LTE predicate on the "design_document_content" field.
func DesignDocumentContentLTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldDesignDocumentContent, v))
}

// DesignDocumentContentContains applies the Contains predicate on the "design_document_content" field.
func DesignDocumentContentContains(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContains(FieldDesignDocumentContent, v))
}

// DesignDocumentContentHasPrefix applies the HasPrefix predicate on the "design_document_content" field.
func DesignDocumentContentHasPrefix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasPrefix(FieldDesignDocumentContent, v))
}

// DesignDocumentContentHasSuffix applies the HasSuffix predicate on the "design_document_content" field.
func DesignDocumentContentHasSuffix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasSuffix(FieldDesignDocumentContent, v))
}

// DesignDocumentContentIsNil applies the IsNil predicate on the "design_document_content" field.
func DesignDocumentContentIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldDesignDocumentContent))
}

// DesignDocumentContentNotNil applies the NotNil predicate on the "design_document_content" field.
func DesignDocumentContentNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldDesignDocumentContent))
}

// DesignDocumentContentEqualFold applies the EqualFold predicate on the "design_document_content" field.
func DesignDocumentContentEqualFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldDesignDocumentContent, v))
}

// DesignDocumentContentContainsFold applies the ContainsFold predicate on the "design_document_content" field.
func DesignDocumentContentContainsFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldDesignDocumentContent, v))
}

// DesignDocumentFormatEQ applies the EQ predicate on the "design_document_format" field.
func DesignDocumentFormatEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldDesignDocumentFormat, v))
}

// DesignDocumentFormatNEQ applies the NEQ predicate on the "design_document_format" field.
func DesignDocumentFormatNEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldDesignDocumentFormat, v))
}

// DesignDocumentFormatIn applies the In predicate on the "design_document_format" field.
func DesignDocumentFormatIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldDesignDocumentFormat, vs...))
}

// DesignDocumentFormatNotIn applies the NotIn predicate on the "design_document_format" field.
func DesignDocumentFormatNotIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldDesignDocumentFormat, vs...))
}

// DesignDocumentFormatGT applies the GT predicate on the "design_document_format" field.
func DesignDocumentFormatGT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldDesignDocumentFormat, v))
}

// DesignDocumentFormatGTE applies the GTE predicate on the "design_document_format" field.
func DesignDocumentFormatGTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldDesignDocumentFormat, v))
}

// DesignDocumentFormatLT applies the LT predicate on the "design_document_format" field.
func DesignDocumentFormatLT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldDesignDocumentFormat, v))
}

// DesignDocumentFormatLTE applies the LTE predicate on the "design_document_format" field.
func DesignDocumentFormatLTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldDesignDocumentFormat, v))
}

// DesignDocumentFormatContains applies the Contains predicate on the "design_document_format" field.
func DesignDocumentFormatContains(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContains(FieldDesignDocumentFormat, v))
}

// DesignDocumentFormatHasPrefix applies the HasPrefix predicate on the "design_document_format" field.
func DesignDocumentFormatHasPrefix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasPrefix(FieldDesignDocumentFormat, v))
}

// DesignDocumentFormatHasSuffix applies the HasSuffix predicate on the "design_document_format" field.
func DesignDocumentFormatHasSuffix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasSuffix(FieldDesignDocumentFormat, v))
}

// DesignDocumentFormatIsNil applies the IsNil predicate on the "design_document_format" field.
func DesignDocumentFormatIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldDesignDocumentFormat))
}

// DesignDocumentFormatNotNil applies the NotNil predicate on the "design_document_format" field.
func DesignDocumentFormatNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldDesignDocumentFormat))
}

// DesignDocumentFormatEqualFold applies the EqualFold predicate on the "design_document_format" field.
func DesignDocumentFormatEqualFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldDesignDocumentFormat, v))
}

// DesignDocumentFormatContainsFold applies the ContainsFold predicate on the "design_document_format" field.
func DesignDocumentFormatContainsFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldDesignDocumentFormat, v))
}

// GeneratedFilesIsNil applies the IsNil predicate on the "generated_files" field.
func GeneratedFilesIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldGeneratedFiles))
}

// GeneratedFilesNotNil applies the NotNil predicate on the "generated_files" field.
func GeneratedFilesNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldGeneratedFiles))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldErrorMessage, v))
}

// DocPathEQ applies the EQ predicate on the "doc_path" field.
func DocPathEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldDocPath, v))
}

// DocPathNEQ applies the NEQ predicate on the "doc_path" field.
func DocPathNEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldDocPath, v))
}

// DocPathIn applies the In predicate on the "doc_path" field.
func DocPathIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldDocPath, vs...))
}

// DocPathNotIn applies the NotIn predicate on the "doc_path" field.
func DocPathNotIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldDocPath, vs...))
}

// DocPathGT applies the GT predicate on the "doc_path" field.
func DocPathGT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldDocPath, v))
}

// DocPathGTE applies the GTE predicate on the "doc_path" field.
func DocPathGTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldDocPath, v))
}

// DocPathLT applies the LT predicate on the "doc_path" field.
func DocPathLT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldDocPath, v))
}

// DocPathLTE applies the LTE predicate on the "doc_path" field.
func DocPathLTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldDocPath, v))
}

// DocPathContains applies the Contains predicate on the "doc_path" field.
func DocPathContains(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContains(FieldDocPath, v))
}

// DocPathHasPrefix applies the HasPrefix predicate on the "doc_path" field.
func DocPathHasPrefix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasPrefix(FieldDocPath, v))
}

// DocPathHasSuffix applies the HasSuffix predicate on the "doc_path" field.
func DocPathHasSuffix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasSuffix(FieldDocPath, v))
}

// DocPathIsNil applies the IsNil predicate on the "doc_path" field.
func DocPathIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldDocPath))
}

// DocPathNotNil applies the NotNil predicate on the "doc_path" field.
func DocPathNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldDocPath))
}

// DocPathEqualFold applies the EqualFold predicate on the "doc_path" field.
func DocPathEqualFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldDocPath, v))
}

// DocPathContainsFold applies the ContainsFold predicate on the "doc_path" field.
func DocPathContainsFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldDocPath, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldCompletedAt))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Stage {
	return predicate.Stage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Stage {
	return predicate.Stage(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Stage) predicate.Stage {
	return predicate.Stage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Stage) predicate.Stage {
	return predicate.Stage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Stage) predicate.Stage {
	return predicate.Stage(sql.NotPredicates(p))
}
