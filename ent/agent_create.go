// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nexus-ai/nexus/ent/agent"
	"github.com/nexus-ai/nexus/ent/project"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
}

// SetAgentName sets the "agent_name" field.
func (_c *AgentCreate) SetAgentName(v string) *AgentCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AgentCreate) SetDescription(v string) *AgentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AgentCreate) SetNillableDescription(v *string) *AgentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *AgentCreate) SetProjectID(v string) *AgentCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentCreate) SetStatus(v agent.Status) *AgentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentCreate) SetNillableStatus(v *agent.Status) *AgentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDeploymentStatus sets the "deployment_status" field.
func (_c *AgentCreate) SetDeploymentStatus(v agent.DeploymentStatus) *AgentCreate {
	_c.mutation.SetDeploymentStatus(v)
	return _c
}

// SetNillableDeploymentStatus sets the "deployment_status" field if the given value is not nil.
func (_c *AgentCreate) SetNillableDeploymentStatus(v *agent.DeploymentStatus) *AgentCreate {
	if v != nil {
		_c.SetDeploymentStatus(*v)
	}
	return _c
}

// SetDeploymentError sets the "deployment_error" field.
func (_c *AgentCreate) SetDeploymentError(v string) *AgentCreate {
	_c.mutation.SetDeploymentError(v)
	return _c
}

// SetNillableDeploymentError sets the "deployment_error" field if the given value is not nil.
func (_c *AgentCreate) SetNillableDeploymentError(v *string) *AgentCreate {
	if v != nil {
		_c.SetDeploymentError(*v)
	}
	return _c
}

// SetRuntimeID sets the "runtime_id" field.
func (_c *AgentCreate) SetRuntimeID(v string) *AgentCreate {
	_c.mutation.SetRuntimeID(v)
	return _c
}

// SetNillableRuntimeID sets the "runtime_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillableRuntimeID(v *string) *AgentCreate {
	if v != nil {
		_c.SetRuntimeID(*v)
	}
	return _c
}

// SetRuntimeEndpoint sets the "runtime_endpoint" field.
func (_c *AgentCreate) SetRuntimeEndpoint(v string) *AgentCreate {
	_c.mutation.SetRuntimeEndpoint(v)
	return _c
}

// SetNillableRuntimeEndpoint sets the "runtime_endpoint" field if the given value is not nil.
func (_c *AgentCreate) SetNillableRuntimeEndpoint(v *string) *AgentCreate {
	if v != nil {
		_c.SetRuntimeEndpoint(*v)
	}
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *AgentCreate) SetCapabilities(v []string) *AgentCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetInvocationCount sets the "invocation_count" field.
func (_c *AgentCreate) SetInvocationCount(v int64) *AgentCreate {
	_c.mutation.SetInvocationCount(v)
	return _c
}

// SetNillableInvocationCount sets the "invocation_count" field if the given value is not nil.
func (_c *AgentCreate) SetNillableInvocationCount(v *int64) *AgentCreate {
	if v != nil {
		_c.SetInvocationCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentCreate) SetCreatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCreatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentCreate) SetUpdatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableUpdatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLastDeployedAt sets the "last_deployed_at" field.
func (_c *AgentCreate) SetLastDeployedAt(v time.Time) *AgentCreate {
	_c.mutation.SetLastDeployedAt(v)
	return _c
}

// SetNillableLastDeployedAt sets the "last_deployed_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastDeployedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastDeployedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *AgentCreate) SetProject(v *Project) *AgentCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.DeploymentStatus(); !ok {
		v := agent.DefaultDeploymentStatus
		_c.mutation.SetDeploymentStatus(v)
	}
	if _, ok := _c.mutation.InvocationCount(); !ok {
		v := agent.DefaultInvocationCount
		_c.mutation.SetInvocationCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "Agent.agent_name"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Agent.project_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Agent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeploymentStatus(); !ok {
		return &ValidationError{Name: "deployment_status", err: errors.New(`ent: missing required field "Agent.deployment_status"`)}
	}
	if v, ok := _c.mutation.DeploymentStatus(); ok {
		if err := agent.DeploymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "deployment_status", err: fmt.Errorf(`ent: validator failed for field "Agent.deployment_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InvocationCount(); !ok {
		return &ValidationError{Name: "invocation_count", err: errors.New(`ent: missing required field "Agent.invocation_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Agent.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Agent.project"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(agent.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(agent.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DeploymentStatus(); ok {
		_spec.SetField(agent.FieldDeploymentStatus, field.TypeEnum, value)
		_node.DeploymentStatus = value
	}
	if value, ok := _c.mutation.DeploymentError(); ok {
		_spec.SetField(agent.FieldDeploymentError, field.TypeString, value)
		_node.DeploymentError = value
	}
	if value, ok := _c.mutation.RuntimeID(); ok {
		_spec.SetField(agent.FieldRuntimeID, field.TypeString, value)
		_node.RuntimeID = value
	}
	if value, ok := _c.mutation.RuntimeEndpoint(); ok {
		_spec.SetField(agent.FieldRuntimeEndpoint, field.TypeString, value)
		_node.RuntimeEndpoint = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(agent.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.InvocationCount(); ok {
		_spec.SetField(agent.FieldInvocationCount, field.TypeInt64, value)
		_node.InvocationCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.LastDeployedAt(); ok {
		_spec.SetField(agent.FieldLastDeployedAt, field.TypeTime, value)
		_node.LastDeployedAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.ProjectTable,
			Columns: []string{agent.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
