// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nexus-ai/nexus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldID, id))
}

// ProjectName applies equality check predicate on the "project_name" field. It's identical to ProjectNameEQ.
func ProjectName(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldProjectName, v))
}

// Requirement applies equality check predicate on the "requirement" field. It's identical to RequirementEQ.
func Requirement(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldRequirement, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldPriority, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUserID, v))
}

// CurrentStage applies equality check predicate on the "current_stage" field. It's identical to CurrentStageEQ.
func CurrentStage(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCurrentStage, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldProgress, v))
}

// ResumeFromStage applies equality check predicate on the "resume_from_stage" field. It's identical to ResumeFromStageEQ.
func ResumeFromStage(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldResumeFromStage, v))
}

// PauseRequestedAt applies equality check predicate on the "pause_requested_at" field. It's identical to PauseRequestedAtEQ.
func PauseRequestedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldPauseRequestedAt, v))
}

// StopRequestedAt applies equality check predicate on the "stop_requested_at" field. It's identical to StopRequestedAtEQ.
func StopRequestedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldStopRequestedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCompletedAt, v))
}

// ProjectNameEQ applies the EQ predicate on the "project_name" field.
func ProjectNameEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldProjectName, v))
}

// ProjectNameNEQ applies the NEQ predicate on the "project_name" field.
func ProjectNameNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldProjectName, v))
}

// ProjectNameIn applies the In predicate on the "project_name" field.
func ProjectNameIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldProjectName, vs...))
}

// ProjectNameNotIn applies the NotIn predicate on the "project_name" field.
func ProjectNameNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldProjectName, vs...))
}

// ProjectNameGT applies the GT predicate on the "project_name" field.
func ProjectNameGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldProjectName, v))
}

// ProjectNameGTE applies the GTE predicate on the "project_name" field.
func ProjectNameGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldProjectName, v))
}

// ProjectNameLT applies the LT predicate on the "project_name" field.
func ProjectNameLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldProjectName, v))
}

// ProjectNameLTE applies the LTE predicate on the "project_name" field.
func ProjectNameLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldProjectName, v))
}

// ProjectNameContains applies the Contains predicate on the "project_name" field.
func ProjectNameContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldProjectName, v))
}

// ProjectNameHasPrefix applies the HasPrefix predicate on the "project_name" field.
func ProjectNameHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldProjectName, v))
}

// ProjectNameHasSuffix applies the HasSuffix predicate on the "project_name" field.
func ProjectNameHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldProjectName, v))
}

// ProjectNameIsNil applies the IsNil predicate on the "project_name" field.
func ProjectNameIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldProjectName))
}

// ProjectNameNotNil applies the NotNil predicate on the "project_name" field.
func ProjectNameNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldProjectName))
}

// ProjectNameEqualFold applies the EqualFold predicate on the "project_name" field.
func ProjectNameEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldProjectName, v))
}

// ProjectNameContainsFold applies the ContainsFold predicate on the "project_name" field.
func ProjectNameContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldProjectName, v))
}

// WorkflowTypeEQ applies the EQ predicate on the "workflow_type" field.
func WorkflowTypeEQ(v WorkflowType) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldWorkflowType, v))
}

// WorkflowTypeNEQ applies the NEQ predicate on the "workflow_type" field.
func WorkflowTypeNEQ(v WorkflowType) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldWorkflowType, v))
}

// WorkflowTypeIn applies the In predicate on the "workflow_type" field.
func WorkflowTypeIn(vs ...WorkflowType) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldWorkflowType, vs...))
}

// WorkflowTypeNotIn applies the NotIn predicate on the "workflow_type" field.
func WorkflowTypeNotIn(vs ...WorkflowType) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldWorkflowType, vs...))
}

// RequirementEQ applies the EQ predicate on the "requirement" field.
func RequirementEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldRequirement, v))
}

// RequirementNEQ applies the NEQ predicate on the "requirement" field.
func RequirementNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldRequirement, v))
}

// RequirementIn applies the In predicate on the "requirement" field.
func RequirementIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldRequirement, vs...))
}

// RequirementNotIn applies the NotIn predicate on the "requirement" field.
func RequirementNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldRequirement, vs...))
}

// RequirementGT applies the GT predicate on the "requirement" field.
func RequirementGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldRequirement, v))
}

// RequirementGTE applies the GTE predicate on the "requirement" field.
func RequirementGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldRequirement, v))
}

// RequirementLT applies the LT predicate on the "requirement" field.
func RequirementLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldRequirement, v))
}

// RequirementLTE applies the LTE predicate on the "requirement" field.
func RequirementLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldRequirement, v))
}

// RequirementContains applies the Contains predicate on the "requirement" field.
func RequirementContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldRequirement, v))
}

// RequirementHasPrefix applies the HasPrefix predicate on the "requirement" field.
func RequirementHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldRequirement, v))
}

// RequirementHasSuffix applies the HasSuffix predicate on the "requirement" field.
func RequirementHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldRequirement, v))
}

// RequirementEqualFold applies the EqualFold predicate on the "requirement" field.
func RequirementEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldRequirement, v))
}

// RequirementContainsFold applies the ContainsFold predicate on the "requirement" field.
func RequirementContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldRequirement, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldPriority, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldTags))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldUserID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldStatus, vs...))
}

// ControlStatusEQ applies the EQ predicate on the "control_status" field.
func ControlStatusEQ(v ControlStatus) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldControlStatus, v))
}

// ControlStatusNEQ applies the NEQ predicate on the "control_status" field.
func ControlStatusNEQ(v ControlStatus) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldControlStatus, v))
}

// ControlStatusIn applies the In predicate on the "control_status" field.
func ControlStatusIn(vs ...ControlStatus) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldControlStatus, vs...))
}

// ControlStatusNotIn applies the NotIn predicate on the "control_status" field.
func ControlStatusNotIn(vs ...ControlStatus) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldControlStatus, vs...))
}

// CurrentStageEQ applies the EQ predicate on the "current_stage" field.
func CurrentStageEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCurrentStage, v))
}

// CurrentStageNEQ applies the NEQ predicate on the "current_stage" field.
func CurrentStageNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCurrentStage, v))
}

// CurrentStageIn applies the In predicate on the "current_stage" field.
func CurrentStageIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCurrentStage, vs...))
}

// CurrentStageNotIn applies the NotIn predicate on the "current_stage" field.
func CurrentStageNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCurrentStage, vs...))
}

// CurrentStageGT applies the GT predicate on the "current_stage" field.
func CurrentStageGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCurrentStage, v))
}

// CurrentStageGTE applies the GTE predicate on the "current_stage" field.
func CurrentStageGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCurrentStage, v))
}

// CurrentStageLT applies the LT predicate on the "current_stage" field.
func CurrentStageLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCurrentStage, v))
}

// CurrentStageLTE applies the LTE predicate on the "current_stage" field.
func CurrentStageLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCurrentStage, v))
}

// CurrentStageContains applies the Contains predicate on the "current_stage" field.
func CurrentStageContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldCurrentStage, v))
}

// CurrentStageHasPrefix applies the HasPrefix predicate on the "current_stage" field.
func CurrentStageHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldCurrentStage, v))
}

// CurrentStageHasSuffix applies the HasSuffix predicate on the "current_stage" field.
func CurrentStageHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldCurrentStage, v))
}

// CurrentStageIsNil applies the IsNil predicate on the "current_stage" field.
func CurrentStageIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldCurrentStage))
}

// CurrentStageNotNil applies the NotNil predicate on the "current_stage" field.
func CurrentStageNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldCurrentStage))
}

// CurrentStageEqualFold applies the EqualFold predicate on the "current_stage" field.
func CurrentStageEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldCurrentStage, v))
}

// CurrentStageContainsFold applies the ContainsFold predicate on the "current_stage" field.
func CurrentStageContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldCurrentStage, v))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldProgress, v))
}

// ResumeFromStageEQ applies the EQ predicate on the "resume_from_stage" field.
func ResumeFromStageEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldResumeFromStage, v))
}

// ResumeFromStageNEQ applies the NEQ predicate on the "resume_from_stage" field.
func ResumeFromStageNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldResumeFromStage, v))
}

// ResumeFromStageIn applies the In predicate on the "resume_from_stage" field.
func ResumeFromStageIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldResumeFromStage, vs...))
}

// ResumeFromStageNotIn applies the NotIn predicate on the "resume_from_stage" field.
func ResumeFromStageNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldResumeFromStage, vs...))
}

// ResumeFromStageGT applies the GT predicate on the "resume_from_stage" field.
func ResumeFromStageGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldResumeFromStage, v))
}

// ResumeFromStageGTE applies the GTE predicate on the "resume_from_stage" field.
func ResumeFromStageGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldResumeFromStage, v))
}

// ResumeFromStageLT applies the LT predicate on the "resume_from_stage" field.
func ResumeFromStageLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldResumeFromStage, v))
}

// ResumeFromStageLTE applies the LTE predicate on the "resume_from_stage" field.
func ResumeFromStageLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldResumeFromStage, v))
}

// ResumeFromStageContains applies the Contains predicate on the "resume_from_stage" field.
func ResumeFromStageContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldResumeFromStage, v))
}

// ResumeFromStageHasPrefix applies the HasPrefix predicate on the "resume_from_stage" field.
func ResumeFromStageHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldResumeFromStage, v))
}

// ResumeFromStageHasSuffix applies the HasSuffix predicate on the "resume_from_stage" field.
func ResumeFromStageHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldResumeFromStage, v))
}

// ResumeFromStageIsNil applies the IsNil predicate on the "resume_from_stage" field.
func ResumeFromStageIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldResumeFromStage))
}

// ResumeFromStageNotNil applies the NotNil predicate on the "resume_from_stage" field.
func ResumeFromStageNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldResumeFromStage))
}

// ResumeFromStageEqualFold applies the EqualFold predicate on the "resume_from_stage" field.
func ResumeFromStageEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldResumeFromStage, v))
}

// ResumeFromStageContainsFold applies the ContainsFold predicate on the "resume_from_stage" field.
func ResumeFromStageContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldResumeFromStage, v))
}

// ErrorInfoIsNil applies the IsNil predicate on the "error_info" field.
func ErrorInfoIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldErrorInfo))
}

// ErrorInfoNotNil applies the NotNil predicate on the "error_info" field.
func ErrorInfoNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldErrorInfo))
}

// AggregatedMetricsIsNil applies the IsNil predicate on the "aggregated_metrics" field.
func AggregatedMetricsIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldAggregatedMetrics))
}

// AggregatedMetricsNotNil applies the NotNil predicate on the "aggregated_metrics" field.
func AggregatedMetricsNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldAggregatedMetrics))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldMetadata))
}

// PauseRequestedAtEQ applies the EQ predicate on the "pause_requested_at" field.
func PauseRequestedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldPauseRequestedAt, v))
}

// PauseRequestedAtNEQ applies the NEQ predicate on the "pause_requested_at" field.
func PauseRequestedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldPauseRequestedAt, v))
}

// PauseRequestedAtIn applies the In predicate on the "pause_requested_at" field.
func PauseRequestedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldPauseRequestedAt, vs...))
}

// PauseRequestedAtNotIn applies the NotIn predicate on the "pause_requested_at" field.
func PauseRequestedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldPauseRequestedAt, vs...))
}

// PauseRequestedAtGT applies the GT predicate on the "pause_requested_at" field.
func PauseRequestedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldPauseRequestedAt, v))
}

// PauseRequestedAtGTE applies the GTE predicate on the "pause_requested_at" field.
func PauseRequestedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldPauseRequestedAt, v))
}

// PauseRequestedAtLT applies the LT predicate on the "pause_requested_at" field.
func PauseRequestedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldPauseRequestedAt, v))
}

// PauseRequestedAtLTE applies the LTE predicate on the "pause_requested_at" field.
func PauseRequestedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldPauseRequestedAt, v))
}

// PauseRequestedAtIsNil applies the IsNil predicate on the "pause_requested_at" field.
func PauseRequestedAtIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldPauseRequestedAt))
}

// PauseRequestedAtNotNil applies the NotNil predicate on the "pause_requested_at" field.
func PauseRequestedAtNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldPauseRequestedAt))
}

// StopRequestedAtEQ applies the EQ predicate on the "stop_requested_at" field.
func StopRequestedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldStopRequestedAt, v))
}

// StopRequestedAtNEQ applies the NEQ predicate on the "stop_requested_at" field.
func StopRequestedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldStopRequestedAt, v))
}

// StopRequestedAtIn applies the In predicate on the "stop_requested_at" field.
func StopRequestedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldStopRequestedAt, vs...))
}

// StopRequestedAtNotIn applies the NotIn predicate on the "stop_requested_at" field.
func StopRequestedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldStopRequestedAt, vs...))
}

// StopRequestedAtGT applies the GT predicate on the "stop_requested_at" field.
func StopRequestedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldStopRequestedAt, v))
}

// StopRequestedAtGTE applies the GTE predicate on the "stop_requested_at" field.
func StopRequestedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldStopRequestedAt, v))
}

// StopRequestedAtLT applies the LT predicate on the "stop_requested_at" field.
func StopRequestedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldStopRequestedAt, v))
}

// StopRequestedAtLTE applies the LTE predicate on the "stop_requested_at" field.
func StopRequestedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldStopRequestedAt, v))
}

// StopRequestedAtIsNil applies the IsNil predicate on the "stop_requested_at" field.
func StopRequestedAtIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldStopRequestedAt))
}

// StopRequestedAtNotNil applies the NotNil predicate on the "stop_requested_at" field.
func StopRequestedAtNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldStopRequestedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldUpdatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldCompletedAt))
}

// HasStages applies the HasEdge predicate on the "stages" edge.
func HasStages() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StagesTable, StagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStagesWith applies the HasEdge predicate on the "stages" edge with a given conditions (other predicates).
func HasStagesWith(preds ...predicate.Stage) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newStagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgents applies the HasEdge predicate on the "agents" edge.
func HasAgents() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentsTable, AgentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentsWith applies the HasEdge predicate on the "agents" edge with a given conditions (other predicates).
func HasAgentsWith(preds ...predicate.Agent) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newAgentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
