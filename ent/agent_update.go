// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/nexus-ai/nexus/ent/agent"
	"github.com/nexus-ai/nexus/ent/predicate"
	"github.com/nexus-ai/nexus/ent/project"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentUpdate) SetAgentName(v string) *AgentUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAgentName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentUpdate) SetDescription(v string) *AgentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableDescription(v *string) *AgentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AgentUpdate) ClearDescription() *AgentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *AgentUpdate) SetProjectID(v string) *AgentUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableProjectID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdate) SetStatus(v agent.Status) *AgentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableStatus(v *agent.Status) *AgentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDeploymentStatus sets the "deployment_status" field.
func (_u *AgentUpdate) SetDeploymentStatus(v agent.DeploymentStatus) *AgentUpdate {
	_u.mutation.SetDeploymentStatus(v)
	return _u
}

// SetNillableDeploymentStatus sets the "deployment_status" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableDeploymentStatus(v *agent.DeploymentStatus) *AgentUpdate {
	if v != nil {
		_u.SetDeploymentStatus(*v)
	}
	return _u
}

// SetDeploymentError sets the "deployment_error" field.
func (_u *AgentUpdate) SetDeploymentError(v string) *AgentUpdate {
	_u.mutation.SetDeploymentError(v)
	return _u
}

// SetNillableDeploymentError sets the "deployment_error" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableDeploymentError(v *string) *AgentUpdate {
	if v != nil {
		_u.SetDeploymentError(*v)
	}
	return _u
}

// ClearDeploymentError clears the value of the "deployment_error" field.
func (_u *AgentUpdate) ClearDeploymentError() *AgentUpdate {
	_u.mutation.ClearDeploymentError()
	return _u
}

// SetRuntimeID sets the "runtime_id" field.
func (_u *AgentUpdate) SetRuntimeID(v string) *AgentUpdate {
	_u.mutation.SetRuntimeID(v)
	return _u
}

// SetNillableRuntimeID sets the "runtime_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableRuntimeID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetRuntimeID(*v)
	}
	return _u
}

// ClearRuntimeID clears the value of the "runtime_id" field.
func (_u *AgentUpdate) ClearRuntimeID() *AgentUpdate {
	_u.mutation.ClearRuntimeID()
	return _u
}

// SetRuntimeEndpoint sets the "runtime_endpoint" field.
func (_u *AgentUpdate) SetRuntimeEndpoint(v string) *AgentUpdate {
	_u.mutation.SetRuntimeEndpoint(v)
	return _u
}

// SetNillableRuntimeEndpoint sets the "runtime_endpoint" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableRuntimeEndpoint(v *string) *AgentUpdate {
	if v != nil {
		_u.SetRuntimeEndpoint(*v)
	}
	return _u
}

// ClearRuntimeEndpoint clears the value of the "runtime_endpoint" field.
func (_u *AgentUpdate) ClearRuntimeEndpoint() *AgentUpdate {
	_u.mutation.ClearRuntimeEndpoint()
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentUpdate) SetCapabilities(v []string) *AgentUpdate {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentUpdate) AppendCapabilities(v []string) *AgentUpdate {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *AgentUpdate) ClearCapabilities() *AgentUpdate {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetInvocationCount sets the "invocation_count" field.
func (_u *AgentUpdate) SetInvocationCount(v int64) *AgentUpdate {
	_u.mutation.ResetInvocationCount()
	_u.mutation.SetInvocationCount(v)
	return _u
}

// SetNillableInvocationCount sets the "invocation_count" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableInvocationCount(v *int64) *AgentUpdate {
	if v != nil {
		_u.SetInvocationCount(*v)
	}
	return _u
}

// AddInvocationCount adds value to the "invocation_count" field.
func (_u *AgentUpdate) AddInvocationCount(v int64) *AgentUpdate {
	_u.mutation.AddInvocationCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdate) SetUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLastDeployedAt sets the "last_deployed_at" field.
func (_u *AgentUpdate) SetLastDeployedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetLastDeployedAt(v)
	return _u
}

// SetNillableLastDeployedAt sets the "last_deployed_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastDeployedAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastDeployedAt(*v)
	}
	return _u
}

// ClearLastDeployedAt clears the value of the "last_deployed_at" field.
func (_u *AgentUpdate) ClearLastDeployedAt() *AgentUpdate {
	_u.mutation.ClearLastDeployedAt()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *AgentUpdate) SetProject(v *Project) *AgentUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *AgentUpdate) ClearProject() *AgentUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeploymentStatus(); ok {
		if err := agent.DeploymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "deployment_status", err: fmt.Errorf(`ent: validator failed for field "Agent.deployment_status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.project"`)
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agent.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(agent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeploymentStatus(); ok {
		_spec.SetField(agent.FieldDeploymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeploymentError(); ok {
		_spec.SetField(agent.FieldDeploymentError, field.TypeString, value)
	}
	if _u.mutation.DeploymentErrorCleared() {
		_spec.ClearField(agent.FieldDeploymentError, field.TypeString)
	}
	if value, ok := _u.mutation.RuntimeID(); ok {
		_spec.SetField(agent.FieldRuntimeID, field.TypeString, value)
	}
	if _u.mutation.RuntimeIDCleared() {
		_spec.ClearField(agent.FieldRuntimeID, field.TypeString)
	}
	if value, ok := _u.mutation.RuntimeEndpoint(); ok {
		_spec.SetField(agent.FieldRuntimeEndpoint, field.TypeString, value)
	}
	if _u.mutation.RuntimeEndpointCleared() {
		_spec.ClearField(agent.FieldRuntimeEndpoint, field.TypeString)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agent.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(agent.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.InvocationCount(); ok {
		_spec.SetField(agent.FieldInvocationCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInvocationCount(); ok {
		_spec.AddField(agent.FieldInvocationCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastDeployedAt(); ok {
		_spec.SetField(agent.FieldLastDeployedAt, field.TypeTime, value)
	}
	if _u.mutation.LastDeployedAtCleared() {
		_spec.ClearField(agent.FieldLastDeployedAt, field.TypeTime)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentUpdateOne) SetAgentName(v string) *AgentUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAgentName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentUpdateOne) SetDescription(v string) *AgentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableDescription(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AgentUpdateOne) ClearDescription() *AgentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *AgentUpdateOne) SetProjectID(v string) *AgentUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableProjectID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdateOne) SetStatus(v agent.Status) *AgentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableStatus(v *agent.Status) *AgentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDeploymentStatus sets the "deployment_status" field.
func (_u *AgentUpdateOne) SetDeploymentStatus(v agent.DeploymentStatus) *AgentUpdateOne {
	_u.mutation.SetDeploymentStatus(v)
	return _u
}

// SetNillableDeploymentStatus sets the "deployment_status" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableDeploymentStatus(v *agent.DeploymentStatus) *AgentUpdateOne {
	if v != nil {
		_u.SetDeploymentStatus(*v)
	}
	return _u
}

// SetDeploymentError sets the "deployment_error" field.
func (_u *AgentUpdateOne) SetDeploymentError(v string) *AgentUpdateOne {
	_u.mutation.SetDeploymentError(v)
	return _u
}

// SetNillableDeploymentError sets the "deployment_error" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableDeploymentError(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetDeploymentError(*v)
	}
	return _u
}

// ClearDeploymentError clears the value of the "deployment_error" field.
func (_u *AgentUpdateOne) ClearDeploymentError() *AgentUpdateOne {
	_u.mutation.ClearDeploymentError()
	return _u
}

// SetRuntimeID sets the "runtime_id" field.
func (_u *AgentUpdateOne) SetRuntimeID(v string) *AgentUpdateOne {
	_u.mutation.SetRuntimeID(v)
	return _u
}

// SetNillableRuntimeID sets the "runtime_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableRuntimeID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetRuntimeID(*v)
	}
	return _u
}

// ClearRuntimeID clears the value of the "runtime_id" field.
func (_u *AgentUpdateOne) ClearRuntimeID() *AgentUpdateOne {
	_u.mutation.ClearRuntimeID()
	return _u
}

// SetRuntimeEndpoint sets the "runtime_endpoint" field.
func (_u *AgentUpdateOne) SetRuntimeEndpoint(v string) *AgentUpdateOne {
	_u.mutation.SetRuntimeEndpoint(v)
	return _u
}

// SetNillableRuntimeEndpoint sets the "runtime_endpoint" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableRuntimeEndpoint(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetRuntimeEndpoint(*v)
	}
	return _u
}

// ClearRuntimeEndpoint clears the value of the "runtime_endpoint" field.
func (_u *AgentUpdateOne) ClearRuntimeEndpoint() *AgentUpdateOne {
	_u.mutation.ClearRuntimeEndpoint()
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentUpdateOne) SetCapabilities(v []string) *AgentUpdateOne {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentUpdateOne) AppendCapabilities(v []string) *AgentUpdateOne {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *AgentUpdateOne) ClearCapabilities() *AgentUpdateOne {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetInvocationCount sets the "invocation_count" field.
func (_u *AgentUpdateOne) SetInvocationCount(v int64) *AgentUpdateOne {
	_u.mutation.ResetInvocationCount()
	_u.mutation.SetInvocationCount(v)
	return _u
}

// SetNillableInvocationCount sets the "invocation_count" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableInvocationCount(v *int64) *AgentUpdateOne {
	if v != nil {
		_u.SetInvocationCount(*v)
	}
	return _u
}

// AddInvocationCount adds value to the "invocation_count" field.
func (_u *AgentUpdateOne) AddInvocationCount(v int64) *AgentUpdateOne {
	_u.mutation.AddInvocationCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdateOne) SetUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLastDeployedAt sets the "last_deployed_at" field.
func (_u *AgentUpdateOne) SetLastDeployedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastDeployedAt(v)
	return _u
}

// SetNillableLastDeployedAt sets the "last_deployed_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastDeployedAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastDeployedAt(*v)
	}
	return _u
}

// ClearLastDeployedAt clears the value of the "last_deployed_at" field.
func (_u *AgentUpdateOne) ClearLastDeployedAt() *AgentUpdateOne {
	_u.mutation.ClearLastDeployedAt()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *AgentUpdateOne) SetProject(v *Project) *AgentUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *AgentUpdateOne) ClearProject() *AgentUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeploymentStatus(); ok {
		if err := agent.DeploymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "deployment_status", err: fmt.Errorf(`ent: validator failed for field "Agent.deployment_status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.project"`)
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agent.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(agent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeploymentStatus(); ok {
		_spec.SetField(agent.FieldDeploymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeploymentError(); ok {
		_spec.SetField(agent.FieldDeploymentError, field.TypeString, value)
	}
	if _u.mutation.DeploymentErrorCleared() {
		_spec.ClearField(agent.FieldDeploymentError, field.TypeString)
	}
	if value, ok := _u.mutation.RuntimeID(); ok {
		_spec.SetField(agent.FieldRuntimeID, field.TypeString, value)
	}
	if _u.mutation.RuntimeIDCleared() {
		_spec.ClearField(agent.FieldRuntimeID, field.TypeString)
	}
	if value, ok := _u.mutation.RuntimeEndpoint(); ok {
		_spec.SetField(agent.FieldRuntimeEndpoint, field.TypeString, value)
	}
	if _u.mutation.RuntimeEndpointCleared() {
		_spec.ClearField(agent.FieldRuntimeEndpoint, field.TypeString)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agent.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(agent.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.InvocationCount(); ok {
		_spec.SetField(agent.FieldInvocationCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInvocationCount(); ok {
		_spec.AddField(agent.FieldInvocationCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastDeployedAt(); ok {
		_spec.SetField(agent.FieldLastDeployedAt, field.TypeTime, value)
	}
	if _u.mutation.LastDeployedAtCleared() {
		_spec.ClearField(agent.FieldLastDeployedAt, field.TypeTime)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
