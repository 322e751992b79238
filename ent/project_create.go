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
	"github.com/nexus-ai/nexus/ent/stage"
	"github.com/nexus-ai/nexus/ent/task"
)

// ProjectCreate is the builder for creating a Project entity.
type ProjectCreate struct {
	config
	mutation *ProjectMutation
	hooks    []Hook
}

// SetProjectName sets the "project_name" field.
func (_c *ProjectCreate) SetProjectName(v string) *ProjectCreate {
	_c.mutation.SetProjectName(v)
	return _c
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableProjectName(v *string) *ProjectCreate {
	if v != nil {
		_c.SetProjectName(*v)
	}
	return _c
}

// SetWorkflowType sets the "workflow_type" field.
func (_c *ProjectCreate) SetWorkflowType(v project.WorkflowType) *ProjectCreate {
	_c.mutation.SetWorkflowType(v)
	return _c
}

// SetRequirement sets the "requirement" field.
func (_c *ProjectCreate) SetRequirement(v string) *ProjectCreate {
	_c.mutation.SetRequirement(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ProjectCreate) SetPriority(v int) *ProjectCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ProjectCreate) SetNillablePriority(v *int) *ProjectCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *ProjectCreate) SetTags(v []string) *ProjectCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ProjectCreate) SetUserID(v string) *ProjectCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableUserID(v *string) *ProjectCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProjectCreate) SetStatus(v project.Status) *ProjectCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableStatus(v *project.Status) *ProjectCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetControlStatus sets the "control_status" field.
func (_c *ProjectCreate) SetControlStatus(v project.ControlStatus) *ProjectCreate {
	_c.mutation.SetControlStatus(v)
	return _c
}

// SetNillableControlStatus sets the "control_status" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableControlStatus(v *project.ControlStatus) *ProjectCreate {
	if v != nil {
		_c.SetControlStatus(*v)
	}
	return _c
}

// SetCurrentStage sets the "current_stage" field.
func (_c *ProjectCreate) SetCurrentStage(v string) *ProjectCreate {
	_c.mutation.SetCurrentStage(v)
	return _c
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableCurrentStage(v *string) *ProjectCreate {
	if v != nil {
		_c.SetCurrentStage(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *ProjectCreate) SetProgress(v int) *ProjectCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableProgress(v *int) *ProjectCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetResumeFromStage sets the "resume_from_stage" field.
func (_c *ProjectCreate) SetResumeFromStage(v string) *ProjectCreate {
	_c.mutation.SetResumeFromStage(v)
	return _c
}

// SetNillableResumeFromStage sets the "resume_from_stage" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableResumeFromStage(v *string) *ProjectCreate {
	if v != nil {
		_c.SetResumeFromStage(*v)
	}
	return _c
}

// SetErrorInfo sets the "error_info" field.
func (_c *ProjectCreate) SetErrorInfo(v map[string]interface{}) *ProjectCreate {
	_c.mutation.SetErrorInfo(v)
	return _c
}

// SetAggregatedMetrics sets the "aggregated_metrics" field.
func (_c *ProjectCreate) SetAggregatedMetrics(v map[string]interface{}) *ProjectCreate {
	_c.mutation.SetAggregatedMetrics(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ProjectCreate) SetMetadata(v map[string]interface{}) *ProjectCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetPauseRequestedAt sets the "pause_requested_at" field.
func (_c *ProjectCreate) SetPauseRequestedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetPauseRequestedAt(v)
	return _c
}

// SetNillablePauseRequestedAt sets the "pause_requested_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillablePauseRequestedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetPauseRequestedAt(*v)
	}
	return _c
}

// SetStopRequestedAt sets the "stop_requested_at" field.
func (_c *ProjectCreate) SetStopRequestedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetStopRequestedAt(v)
	return _c
}

// SetNillableStopRequestedAt sets the "stop_requested_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableStopRequestedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetStopRequestedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProjectCreate) SetCreatedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableCreatedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProjectCreate) SetUpdatedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableUpdatedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ProjectCreate) SetStartedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableStartedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ProjectCreate) SetCompletedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableCompletedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProjectCreate) SetID(v string) *ProjectCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStageIDs adds the "stages" edge to the Stage entity by IDs.
func (_c *ProjectCreate) AddStageIDs(ids ...string) *ProjectCreate {
	_c.mutation.AddStageIDs(ids...)
	return _c
}

// AddStages adds the "stages" edges to the Stage entity.
func (_c *ProjectCreate) AddStages(v ...*Stage) *ProjectCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *ProjectCreate) AddTaskIDs(ids ...string) *ProjectCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *ProjectCreate) AddTasks(v ...*Task) *ProjectCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_c *ProjectCreate) AddAgentIDs(ids ...string) *ProjectCreate {
	_c.mutation.AddAgentIDs(ids...)
	return _c
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_c *ProjectCreate) AddAgents(v ...*Agent) *ProjectCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_c *ProjectCreate) Mutation() *ProjectMutation {
	return _c.mutation
}

// Save creates the Project in the database.
func (_c *ProjectCreate) Save(ctx context.Context) (*Project, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectCreate) SaveX(ctx context.Context) *Project {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := project.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := project.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ControlStatus(); !ok {
		v := project.DefaultControlStatus
		_c.mutation.SetControlStatus(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := project.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := project.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := project.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectCreate) check() error {
	if _, ok := _c.mutation.WorkflowType(); !ok {
		return &ValidationError{Name: "workflow_type", err: errors.New(`ent: missing required field "Project.workflow_type"`)}
	}
	if v, ok := _c.mutation.WorkflowType(); ok {
		if err := project.WorkflowTypeValidator(v); err != nil {
			return &ValidationError{Name: "workflow_type", err: fmt.Errorf(`ent: validator failed for field "Project.workflow_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Requirement(); !ok {
		return &ValidationError{Name: "requirement", err: errors.New(`ent: missing required field "Project.requirement"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Project.priority"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Project.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ControlStatus(); !ok {
		return &ValidationError{Name: "control_status", err: errors.New(`ent: missing required field "Project.control_status"`)}
	}
	if v, ok := _c.mutation.ControlStatus(); ok {
		if err := project.ControlStatusValidator(v); err != nil {
			return &ValidationError{Name: "control_status", err: fmt.Errorf(`ent: validator failed for field "Project.control_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Project.progress"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Project.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Project.updated_at"`)}
	}
	return nil
}

func (_c *ProjectCreate) sqlSave(ctx context.Context) (*Project, error) {
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
			return nil, fmt.Errorf("unexpected Project.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProjectCreate) createSpec() (*Project, *sqlgraph.CreateSpec) {
	var (
		_node = &Project{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(project.Table, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectName(); ok {
		_spec.SetField(project.FieldProjectName, field.TypeString, value)
		_node.ProjectName = value
	}
	if value, ok := _c.mutation.WorkflowType(); ok {
		_spec.SetField(project.FieldWorkflowType, field.TypeEnum, value)
		_node.WorkflowType = value
	}
	if value, ok := _c.mutation.Requirement(); ok {
		_spec.SetField(project.FieldRequirement, field.TypeString, value)
		_node.Requirement = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(project.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(project.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(project.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ControlStatus(); ok {
		_spec.SetField(project.FieldControlStatus, field.TypeEnum, value)
		_node.ControlStatus = value
	}
	if value, ok := _c.mutation.CurrentStage(); ok {
		_spec.SetField(project.FieldCurrentStage, field.TypeString, value)
		_node.CurrentStage = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(project.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.ResumeFromStage(); ok {
		_spec.SetField(project.FieldResumeFromStage, field.TypeString, value)
		_node.ResumeFromStage = &value
	}
	if value, ok := _c.mutation.ErrorInfo(); ok {
		_spec.SetField(project.FieldErrorInfo, field.TypeJSON, value)
		_node.ErrorInfo = value
	}
	if value, ok := _c.mutation.AggregatedMetrics(); ok {
		_spec.SetField(project.FieldAggregatedMetrics, field.TypeJSON, value)
		_node.AggregatedMetrics = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(project.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.PauseRequestedAt(); ok {
		_spec.SetField(project.FieldPauseRequestedAt, field.TypeTime, value)
		_node.PauseRequestedAt = &value
	}
	if value, ok := _c.mutation.StopRequestedAt(); ok {
		_spec.SetField(project.FieldStopRequestedAt, field.TypeTime, value)
		_node.StopRequestedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(project.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(project.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(project.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.StagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.StagesTable,
			Columns: []string{project.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TasksTable,
			Columns: []string{project.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AgentsTable,
			Columns: []string{project.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProjectCreateBulk is the builder for creating many Project entities in bulk.
type ProjectCreateBulk struct {
	config
	err      error
	builders []*ProjectCreate
}

// Save creates the Project entities in the database.
func (_c *ProjectCreateBulk) Save(ctx context.Context) ([]*Project, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Project, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectMutation)
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
func (_c *ProjectCreateBulk) SaveX(ctx context.Context) []*Project {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
