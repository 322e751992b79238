package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Stage holds the schema definition for the Stage entity: one ordered
// step of a workflow, pre-seeded at project creation.
type Stage struct {
	ent.Schema
}

// Fields of the Stage.
func (Stage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("stage_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("stage_name").
			Comment("Canonical name from the workflow catalog"),
		field.Int("stage_number").
			Comment("1-indexed position in the configured order"),
		field.String("display_name").
			Optional(),
		field.String("agent_name").
			Optional(),

		field.Enum("status").
			Values("pending", "running", "completed", "failed", "skipped").
			Default("pending"),
		field.Float("duration_seconds").
			Optional().
			Nillable(),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int("tool_calls_count").
			Default(0),
		field.String("model_id").
			Optional(),

		field.Text("agent_output_content").
			Optional().
			Comment("Inline when <= 400 KiB; otherwise empty with agent_output_s3_ref set"),
		field.String("agent_output_s3_ref").
			Optional().
			Comment("Blob key for oversize outputs"),
		field.Text("design_document_content").
			Optional(),
		field.String("design_document_format").
			Optional(),
		field.JSON("generated_files", []map[string]interface{}{}).
			Optional(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.String("doc_path").
			Optional().
			Comment("Canonical on-disk design document path"),

		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Stage.
func (Stage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("stages").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Stage.
func (Stage) Indexes() []ent.Index {
	return []ent.Index{
		// One record per (project, stage) and unique ordering within a project.
		index.Fields("project_id", "stage_name").
			Unique(),
		index.Fields("project_id", "stage_number").
			Unique(),
		index.Fields("project_id", "status"),
	}
}
