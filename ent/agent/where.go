// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nexus-ai/nexus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldID, id))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAgentName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDescription, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldProjectID, v))
}

// DeploymentError applies equality check predicate on the "deployment_error" field. It's identical to DeploymentErrorEQ.
func DeploymentError(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDeploymentError, v))
}

// RuntimeID applies equality check predicate on the "runtime_id" field. It's identical to RuntimeIDEQ.
func RuntimeID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRuntimeID, v))
}

// RuntimeEndpoint applies equality check predicate on the "runtime_endpoint" field. It's identical to RuntimeEndpointEQ.
func RuntimeEndpoint(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRuntimeEndpoint, v))
}

// InvocationCount applies equality check predicate on the "invocation_count" field. It's identical to InvocationCountEQ.
func InvocationCount(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldInvocationCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// LastDeployedAt applies equality check predicate on the "last_deployed_at" field. It's identical to LastDeployedAtEQ.
func LastDeployedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastDeployedAt, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldAgentName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldDescription, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldProjectID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldStatus, vs...))
}

// DeploymentStatusEQ applies the EQ predicate on the "deployment_status" field.
func DeploymentStatusEQ(v DeploymentStatus) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDeploymentStatus, v))
}

// DeploymentStatusNEQ applies the NEQ predicate on the "deployment_status" field.
func DeploymentStatusNEQ(v DeploymentStatus) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldDeploymentStatus, v))
}

// DeploymentStatusIn applies the In predicate on the "deployment_status" field.
func DeploymentStatusIn(vs ...DeploymentStatus) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldDeploymentStatus, vs...))
}

// DeploymentStatusNotIn applies the NotIn predicate on the "deployment_status" field.
func DeploymentStatusNotIn(vs ...DeploymentStatus) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldDeploymentStatus, vs...))
}

// DeploymentErrorEQ applies the EQ predicate on the "deployment_error" field.
func DeploymentErrorEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDeploymentError, v))
}

// DeploymentErrorNEQ applies the NEQ predicate on the "deployment_error" field.
func DeploymentErrorNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldDeploymentError, v))
}

// DeploymentErrorIn applies the In predicate on the "deployment_error" field.
func DeploymentErrorIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldDeploymentError, vs...))
}

// DeploymentErrorNotIn applies the NotIn predicate on the "deployment_error" field.
func DeploymentErrorNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldDeploymentError, vs...))
}

// DeploymentErrorGT applies the GT predicate on the "deployment_error" field.
func DeploymentErrorGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldDeploymentError, v))
}

// DeploymentErrorGTE applies the GTE predicate on the "deployment_error" field.
func DeploymentErrorGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldDeploymentError, v))
}

// DeploymentErrorLT applies the LT predicate on the "deployment_error" field.
func DeploymentErrorLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldDeploymentError, v))
}

// DeploymentErrorLTE applies the LTE predicate on the "deployment_error" field.
func DeploymentErrorLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldDeploymentError, v))
}

// DeploymentErrorContains applies the Contains predicate on the "deployment_error" field.
func DeploymentErrorContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldDeploymentError, v))
}

// DeploymentErrorHasPrefix applies the HasPrefix predicate on the "deployment_error" field.
func DeploymentErrorHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldDeploymentError, v))
}

// DeploymentErrorHasSuffix applies the HasSuffix predicate on the "deployment_error" field.
func DeploymentErrorHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldDeploymentError, v))
}

// DeploymentErrorIsNil applies the IsNil predicate on the "deployment_error" field.
func DeploymentErrorIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldDeploymentError))
}

// DeploymentErrorNotNil applies the NotNil predicate on the "deployment_error" field.
func DeploymentErrorNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldDeploymentError))
}

// DeploymentErrorEqualFold applies the EqualFold predicate on the "deployment_error" field.
func DeploymentErrorEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldDeploymentError, v))
}

// DeploymentErrorContainsFold applies the ContainsFold predicate on the "deployment_error" field.
func DeploymentErrorContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldDeploymentError, v))
}

// RuntimeIDEQ applies the EQ predicate on the "runtime_id" field.
func RuntimeIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRuntimeID, v))
}

// RuntimeIDNEQ applies the NEQ predicate on the "runtime_id" field.
func RuntimeIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldRuntimeID, v))
}

// RuntimeIDIn applies the In predicate on the "runtime_id" field.
func RuntimeIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldRuntimeID, vs...))
}

// RuntimeIDNotIn applies the NotIn predicate on the "runtime_id" field.
func RuntimeIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldRuntimeID, vs...))
}

// RuntimeIDGT applies the GT predicate on the "runtime_id" field.
func RuntimeIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldRuntimeID, v))
}

// RuntimeIDGTE applies the GTE predicate on the "runtime_id" field.
func RuntimeIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldRuntimeID, v))
}

// RuntimeIDLT applies the LT predicate on the "runtime_id" field.
func RuntimeIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldRuntimeID, v))
}

// RuntimeIDLTE applies the LTE predicate on the "runtime_id" field.
func RuntimeIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldRuntimeID, v))
}

// RuntimeIDContains applies the Contains predicate on the "runtime_id" field.
func RuntimeIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldRuntimeID, v))
}

// RuntimeIDHasPrefix applies the HasPrefix predicate on the "runtime_id" field.
func RuntimeIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldRuntimeID, v))
}

// RuntimeIDHasSuffix applies the HasSuffix predicate on the "runtime_id" field.
func RuntimeIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldRuntimeID, v))
}

// RuntimeIDIsNil applies the IsNil predicate on the "runtime_id" field.
func RuntimeIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldRuntimeID))
}

// RuntimeIDNotNil applies the NotNil predicate on the "runtime_id" field.
func RuntimeIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldRuntimeID))
}

// RuntimeIDEqualFold applies the EqualFold predicate on the "runtime_id" field.
func RuntimeIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldRuntimeID, v))
}

// RuntimeIDContainsFold applies the ContainsFold predicate on the "runtime_id" field.
func RuntimeIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldRuntimeID, v))
}

// RuntimeEndpointEQ applies the EQ predicate on the "runtime_endpoint" field.
func RuntimeEndpointEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRuntimeEndpoint, v))
}

// RuntimeEndpointNEQ applies the NEQ predicate on the "runtime_endpoint" field.
func RuntimeEndpointNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldRuntimeEndpoint, v))
}

// RuntimeEndpointIn applies the In predicate on the "runtime_endpoint" field.
func RuntimeEndpointIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldRuntimeEndpoint, vs...))
}

// RuntimeEndpointNotIn applies the NotIn predicate on the "runtime_endpoint" field.
func RuntimeEndpointNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldRuntimeEndpoint, vs...))
}

// RuntimeEndpointGT applies the GT predicate on the "runtime_endpoint" field.
func RuntimeEndpointGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldRuntimeEndpoint, v))
}

// RuntimeEndpointGTE applies the GTE predicate on the "runtime_endpoint" field.
func RuntimeEndpointGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldRuntimeEndpoint, v))
}

// RuntimeEndpointLT applies the LT predicate on the "runtime_endpoint" field.
func RuntimeEndpointLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldRuntimeEndpoint, v))
}

// RuntimeEndpointLTE applies the LTE predicate on the "runtime_endpoint" field.
func RuntimeEndpointLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldRuntimeEndpoint, v))
}

// RuntimeEndpointContains applies the Contains predicate on the "runtime_endpoint" field.
func RuntimeEndpointContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldRuntimeEndpoint, v))
}

// RuntimeEndpointHasPrefix applies the HasPrefix predicate on the "runtime_endpoint" field.
func RuntimeEndpointHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldRuntimeEndpoint, v))
}

// RuntimeEndpointHasSuffix applies the HasSuffix predicate on the "runtime_endpoint" field.
func RuntimeEndpointHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldRuntimeEndpoint, v))
}

// RuntimeEndpointIsNil applies the IsNil predicate on the "runtime_endpoint" field.
func RuntimeEndpointIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldRuntimeEndpoint))
}

// RuntimeEndpointNotNil applies the NotNil predicate on the "runtime_endpoint" field.
func RuntimeEndpointNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldRuntimeEndpoint))
}

// RuntimeEndpointEqualFold applies the EqualFold predicate on the "runtime_endpoint" field.
func RuntimeEndpointEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldRuntimeEndpoint, v))
}

// RuntimeEndpointContainsFold applies the ContainsFold predicate on the "runtime_endpoint" field.
func RuntimeEndpointContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldRuntimeEndpoint, v))
}

// CapabilitiesIsNil applies the IsNil predicate on the "capabilities" field.
func CapabilitiesIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldCapabilities))
}

// CapabilitiesNotNil applies the NotNil predicate on the "capabilities" field.
func CapabilitiesNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldCapabilities))
}

// InvocationCountEQ applies the EQ predicate on the "invocation_count" field.
func InvocationCountEQ(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldInvocationCount, v))
}

// InvocationCountNEQ applies the NEQ predicate on the "invocation_count" field.
func InvocationCountNEQ(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldInvocationCount, v))
}

// InvocationCountIn applies the In predicate on the "invocation_count" field.
func InvocationCountIn(vs ...int64) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldInvocationCount, vs...))
}

// InvocationCountNotIn applies the NotIn predicate on the "invocation_count" field.
func InvocationCountNotIn(vs ...int64) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldInvocationCount, vs...))
}

// InvocationCountGT applies the GT predicate on the "invocation_count" field.
func InvocationCountGT(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldInvocationCount, v))
}

// InvocationCountGTE applies the GTE predicate on the "invocation_count" field.
func InvocationCountGTE(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldInvocationCount, v))
}

// InvocationCountLT applies the LT predicate on the "invocation_count" field.
func InvocationCountLT(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldInvocationCount, v))
}

// InvocationCountLTE applies the LTE predicate on the "invocation_count" field.
func InvocationCountLTE(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldInvocationCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldUpdatedAt, v))
}

// LastDeployedAtEQ applies the EQ predicate on the "last_deployed_at" field.
func LastDeployedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastDeployedAt, v))
}

// LastDeployedAtNEQ applies the NEQ predicate on the "last_deployed_at" field.
func LastDeployedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastDeployedAt, v))
}

// LastDeployedAtIn applies the In predicate on the "last_deployed_at" field.
func LastDeployedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastDeployedAt, vs...))
}

// LastDeployedAtNotIn applies the NotIn predicate on the "last_deployed_at" field.
func LastDeployedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastDeployedAt, vs...))
}

// LastDeployedAtGT applies the GT predicate on the "last_deployed_at" field.
func LastDeployedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastDeployedAt, v))
}

// LastDeployedAtGTE applies the GTE predicate on the "last_deployed_at" field.
func LastDeployedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastDeployedAt, v))
}

// LastDeployedAtLT applies the LT predicate on the "last_deployed_at" field.
func LastDeployedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastDeployedAt, v))
}

// LastDeployedAtLTE applies the LTE predicate on the "last_deployed_at" field.
func LastDeployedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastDeployedAt, v))
}

// LastDeployedAtIsNil applies the IsNil predicate on the "last_deployed_at" field.
func LastDeployedAtIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldLastDeployedAt))
}

// LastDeployedAtNotNil applies the NotNil predicate on the "last_deployed_at" field.
func LastDeployedAtNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldLastDeployedAt))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
