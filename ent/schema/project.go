package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity: one
// end-to-end build run owning its stage pipeline.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("project_name").
			Optional(),
		field.Enum("workflow_type").
			Values("agent_build", "agent_update", "tool_build").
			Immutable(),
		field.Text("requirement").
			Comment("Original free-form user requirement"),
		field.Int("priority").
			Default(3),
		field.JSON("tags", []string{}).
			Optional(),
		field.String("user_id").
			Optional(),

		field.Enum("status").
			Values("pending", "queued", "building", "completed", "failed", "paused", "cancelled").
			Default("pending"),
		field.Enum("control_status").
			Values("running", "paused", "stopped", "cancelled").
			Default("running").
			Comment("User-requested intent; written only by the control API path"),
		field.String("current_stage").
			Optional(),
		field.Int("progress").
			Default(0).
			Comment("completed_stages/total_stages * 100"),
		field.String("resume_from_stage").
			Optional().
			Nillable(),
		field.JSON("error_info", map[string]interface{}{}).
			Optional(),
		field.JSON("aggregated_metrics", map[string]interface{}{}).
			Optional().
			Comment("Running totals folded in exactly once per completed stage"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Workflow-specific keys, e.g. agent_id for updates"),

		field.Time("pause_requested_at").
			Optional().
			Nillable(),
		field.Time("stop_requested_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stages", Stage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agents", Agent.Type),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("workflow_type"),
		index.Fields("user_id"),
		index.Fields("status", "created_at"),
	}
}
