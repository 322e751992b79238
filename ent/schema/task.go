package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity. Tasks double as
// queue messages: workers claim them with FOR UPDATE SKIP LOCKED and
// hold a lease via lease_expires_at, extended by heartbeats.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.Enum("task_type").
			Values("build_agent", "update_agent", "build_tool", "deploy_agent").
			Immutable(),
		field.Enum("status").
			Values("pending", "queued", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.Int("priority").
			Default(3),
		field.JSON("payload", map[string]interface{}{}).
			Comment("The queue message body (TaskMessage)"),
		field.Text("result").
			Optional(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0).
			Comment("Incremented on each redelivery; failed past MAX_RETRY_COUNT"),
		field.String("worker_id").
			Optional().
			Nillable().
			Comment("Set on first running transition"),
		field.Time("lease_expires_at").
			Optional().
			Nillable().
			Comment("Visibility deadline; stale deadline makes the task redeliverable"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("tasks").
			Field("project_id").
			Unique().
			Required().
			Immutable().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
		// Claim scan: queued tasks by priority/age, and lease-expiry sweeps.
		index.Fields("status", "priority", "created_at"),
		index.Fields("status", "lease_expires_at"),
	}
}
