// Code generated by ent, DO NOT EDIT.

package stage

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the stage type in the database.
	Label = "stage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "stage_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldStageName holds the string denoting the stage_name field in the database.
	FieldStageName = "stage_name"
	// FieldStageNumber holds the string denoting the stage_number field in the database.
	FieldStageNumber = "stage_number"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldAgentName holds the string denoting the agent_name field in the database.
	FieldAgentName = "agent_name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldToolCallsCount holds the string denoting the tool_calls_count field in the database.
	FieldToolCallsCount = "tool_calls_count"
	// FieldModelID holds the string denoting the model_id field in the database.
	FieldModelID = "model_id"
	// FieldAgentOutputContent holds the string denoting the agent_output_content field in the database.
	FieldAgentOutputContent = "agent_output_content"
	// FieldAgentOutputS3Ref holds the string denoting the agent_output_s3_ref field in the database.
	FieldAgentOutputS3Ref = "agent_output_s3_ref"
	// FieldDesignDocumentContent holds the string denoting the design_document_content field in the database.
	FieldDesignDocumentContent = "design_document_content"
	// FieldDesignDocumentFormat holds the string denoting the design_document_format field in the database.
	FieldDesignDocumentFormat = "design_document_format"
	// FieldGeneratedFiles holds the string denoting the generated_files field in the database.
	FieldGeneratedFiles = "generated_files"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldDocPath holds the string denoting the doc_path field in the database.
	FieldDocPath = "doc_path"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// Table holds the table name of the stage in the database.
	Table = "stages"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "stages"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
)

// Columns holds all SQL columns for stage fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldStageName,
	FieldStageNumber,
	FieldDisplayName,
	FieldAgentName,
	FieldStatus,
	FieldDurationSeconds,
	FieldInputTokens,
	FieldOutputTokens,
	FieldToolCallsCount,
	FieldModelID,
	FieldAgentOutputContent,
	FieldAgentOutputS3Ref,
	FieldDesignDocumentContent,
	FieldDesignDocumentFormat,
	FieldGeneratedFiles,
	FieldErrorMessage,
	FieldDocPath,
	FieldStartedAt,
	FieldCompletedAt,
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
	// DefaultInputTokens holds the default value on creation for the "input_tokens" field.
	DefaultInputTokens int
	// DefaultOutputTokens holds the default value on creation for the "output_tokens" field.
	DefaultOutputTokens int
	// DefaultToolCallsCount holds the default value on creation for the "tool_calls_count" field.
	DefaultToolCallsCount int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("stage: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Stage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByStageName orders the results by the stage_name field.
func ByStageName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageName, opts...).ToFunc()
}

// ByStageNumber orders the results by the stage_number field.
func ByStageNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageNumber, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByAgentName orders the results by the agent_name field.
func ByAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByInputTokens orders the results by the input_tokens field.
func ByInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByToolCallsCount orders the results by the tool_calls_count field.
func ByToolCallsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolCallsCount, opts...).ToFunc()
}

// ByModelID orders the results by the model_id field.
func ByModelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelID, opts...).ToFunc()
}

// ByAgentOutputContent orders the results by the agent_output_content field.
func ByAgentOutputContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentOutputContent, opts...).ToFunc()
}

// ByAgentOutputS3Ref orders the results by the agent_output_s3_ref field.
func ByAgentOutputS3Ref(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentOutputS3Ref, opts...).ToFunc()
}

// ByDesignDocumentContent orders the results by the design_document_content field.
func ByDesignDocumentContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDesignDocumentContent, opts...).ToFunc()
}

// ByDesignDocumentFormat orders the results by the design_document_format field.
func ByDesignDocumentFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDesignDocumentFormat, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByDocPath orders the results by the doc_path field.
func ByDocPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocPath, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
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
