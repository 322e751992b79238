// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldAgentName holds the string denoting the agent_name field in the database.
	FieldAgentName = "agent_name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDeploymentStatus holds the string denoting the deployment_status field in the database.
	FieldDeploymentStatus = "deployment_status"
	// FieldDeploymentError holds the string denoting the deployment_error field in the database.
	FieldDeploymentError = "deployment_error"
	// FieldRuntimeID holds the string denoting the runtime_id field in the database.
	FieldRuntimeID = "runtime_id"
	// FieldRuntimeEndpoint holds the string denoting the runtime_endpoint field in the database.
	FieldRuntimeEndpoint = "runtime_endpoint"
	// FieldCapabilities holds the string denoting the capabilities field in the database.
	FieldCapabilities = "capabilities"
	// FieldInvocationCount holds the string denoting the invocation_count field in the database.
	FieldInvocationCount = "invocation_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldLastDeployedAt holds the string denoting the last_deployed_at field in the database.
	FieldLastDeployedAt = "last_deployed_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// Table holds the table name of the agent in the database.
	Table = "agents"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "agents"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldAgentName,
	FieldDescription,
	FieldProjectID,
	FieldStatus,
	FieldDeploymentStatus,
	FieldDeploymentError,
	FieldRuntimeID,
	FieldRuntimeEndpoint,
	FieldCapabilities,
	FieldInvocationCount,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldLastDeployedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultInvocationCount holds the default value on creation for the "invocation_count" field.
	DefaultInvocationCount int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusOffline is the default value of the Status enum.
const DefaultStatus = StatusOffline

// Status values.
const (
	StatusRunning Status = "running"
	StatusOffline Status = "offline"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusOffline:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for status field: %q", s)
	}
}

// DeploymentStatus defines the type for the "deployment_status" enum field.
type DeploymentStatus string

// DeploymentStatusDeploying is the default value of the DeploymentStatus enum.
const DefaultDeploymentStatus = DeploymentStatusDeploying

// DeploymentStatus values.
const (
	DeploymentStatusDeploying DeploymentStatus = "deploying"
	DeploymentStatusDeployed  DeploymentStatus = "deployed"
	DeploymentStatusFailed    DeploymentStatus = "failed"
)

func (ds DeploymentStatus) String() string {
	return string(ds)
}

// DeploymentStatusValidator is a validator for the "deployment_status" field enum values. It is called by the builders before save.
func DeploymentStatusValidator(ds DeploymentStatus) error {
	switch ds {
	case DeploymentStatusDeploying, DeploymentStatusDeployed, DeploymentStatusFailed:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for deployment_status field: %q", ds)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentName orders the results by the agent_name field.
func ByAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDeploymentStatus orders the results by the deployment_status field.
func ByDeploymentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeploymentStatus, opts...).ToFunc()
}

// ByDeploymentError orders the results by the deployment_error field.
func ByDeploymentError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeploymentError, opts...).ToFunc()
}

// ByRuntimeID orders the results by the runtime_id field.
func ByRuntimeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuntimeID, opts...).ToFunc()
}

// ByRuntimeEndpoint orders the results by the runtime_endpoint field.
func ByRuntimeEndpoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuntimeEndpoint, opts...).ToFunc()
}

// ByInvocationCount orders the results by the invocation_count field.
func ByInvocationCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvocationCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLastDeployedAt orders the results by the last_deployed_at field.
func ByLastDeployedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastDeployedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
