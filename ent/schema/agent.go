package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity: a deployed
// artifact and its runtime handles. Mutated by the deployment service.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("agent_name"),
		field.Text("description").
			Optional(),
		field.String("project_id").
			Comment("Source project that built this agent"),
		field.Enum("status").
			Values("running", "offline").
			Default("offline"),
		field.Enum("deployment_status").
			Values("deploying", "deployed", "failed").
			Default("deploying"),
		field.Text("deployment_error").
			Optional(),
		field.String("runtime_id").
			Optional(),
		field.String("runtime_endpoint").
			Optional(),
		field.JSON("capabilities", []string{}).
			Optional(),
		field.Int64("invocation_count").
			Default(0).
			Comment("Advisory; may lag"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("last_deployed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("agents").
			Field("project_id").
			Unique().
			Required(),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
		index.Fields("status"),
	}
}
