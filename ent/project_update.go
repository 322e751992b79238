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
	"github.com/nexus-ai/nexus/ent/stage"
	"github.com/nexus-ai/nexus/ent/task"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectName sets the "project_name" field.
func (_u *ProjectUpdate) SetProjectName(v string) *ProjectUpdate {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableProjectName(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// ClearProjectName clears the value of the "project_name" field.
func (_u *ProjectUpdate) ClearProjectName() *ProjectUpdate {
	_u.mutation.ClearProjectName()
	return _u
}

// SetRequirement sets the "requirement" field.
func (_u *ProjectUpdate) SetRequirement(v string) *ProjectUpdate {
	_u.mutation.SetRequirement(v)
	return _u
}

// SetNillableRequirement sets the "requirement" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableRequirement(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetRequirement(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ProjectUpdate) SetPriority(v int) *ProjectUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillablePriority(v *int) *ProjectUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ProjectUpdate) AddPriority(v int) *ProjectUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetTags sets the "tags" field.
func (_u *ProjectUpdate) SetTags(v []string) *ProjectUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ProjectUpdate) AppendTags(v []string) *ProjectUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ProjectUpdate) ClearTags() *ProjectUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProjectUpdate) SetUserID(v string) *ProjectUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableUserID(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ProjectUpdate) ClearUserID() *ProjectUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProjectUpdate) SetStatus(v project.Status) *ProjectUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableStatus(v *project.Status) *ProjectUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetControlStatus sets the "control_status" field.
func (_u *ProjectUpdate) SetControlStatus(v project.ControlStatus) *ProjectUpdate {
	_u.mutation.SetControlStatus(v)
	return _u
}

// SetNillableControlStatus sets the "control_status" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableControlStatus(v *project.ControlStatus) *ProjectUpdate {
	if v != nil {
		_u.SetControlStatus(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *ProjectUpdate) SetCurrentStage(v string) *ProjectUpdate {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableCurrentStage(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *ProjectUpdate) ClearCurrentStage() *ProjectUpdate {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ProjectUpdate) SetProgress(v int) *ProjectUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableProgress(v *int) *ProjectUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *ProjectUpdate) AddProgress(v int) *ProjectUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetResumeFromStage sets the "resume_from_stage" field.
func (_u *ProjectUpdate) SetResumeFromStage(v string) *ProjectUpdate {
	_u.mutation.SetResumeFromStage(v)
	return _u
}

// SetNillableResumeFromStage sets the "resume_from_stage" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableResumeFromStage(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetResumeFromStage(*v)
	}
	return _u
}

// ClearResumeFromStage clears the value of the "resume_from_stage" field.
func (_u *ProjectUpdate) ClearResumeFromStage() *ProjectUpdate {
	_u.mutation.ClearResumeFromStage()
	return _u
}

// SetErrorInfo sets the "error_info" field.
func (_u *ProjectUpdate) SetErrorInfo(v map[string]interface{}) *ProjectUpdate {
	_u.mutation.SetErrorInfo(v)
	return _u
}

// ClearErrorInfo clears the value of the "error_info" field.
func (_u *ProjectUpdate) ClearErrorInfo() *ProjectUpdate {
	_u.mutation.ClearErrorInfo()
	return _u
}

// SetAggregatedMetrics sets the "aggregated_metrics" field.
func (_u *ProjectUpdate) SetAggregatedMetrics(v map[string]interface{}) *ProjectUpdate {
	_u.mutation.SetAggregatedMetrics(v)
	return _u
}

// ClearAggregatedMetrics clears the value of the "aggregated_metrics" field.
func (_u *ProjectUpdate) ClearAggregatedMetrics() *ProjectUpdate {
	_u.mutation.ClearAggregatedMetrics()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ProjectUpdate) SetMetadata(v map[string]interface{}) *ProjectUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ProjectUpdate) ClearMetadata() *ProjectUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetPauseRequestedAt sets the "pause_requested_at" field.
func (_u *ProjectUpdate) SetPauseRequestedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetPauseRequestedAt(v)
	return _u
}

// SetNillablePauseRequestedAt sets the "pause_requested_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillablePauseRequestedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetPauseRequestedAt(*v)
	}
	return _u
}

// ClearPauseRequestedAt clears the value of the "pause_requested_at" field.
func (_u *ProjectUpdate) ClearPauseRequestedAt() *ProjectUpdate {
	_u.mutation.ClearPauseRequestedAt()
	return _u
}

// SetStopRequestedAt sets the "stop_requested_at" field.
func (_u *ProjectUpdate) SetStopRequestedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetStopRequestedAt(v)
	return _u
}

// SetNillableStopRequestedAt sets the "stop_requested_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableStopRequestedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetStopRequestedAt(*v)
	}
	return _u
}

// ClearStopRequestedAt clears the value of the "stop_requested_at" field.
func (_u *ProjectUpdate) ClearStopRequestedAt() *ProjectUpdate {
	_u.mutation.ClearStopRequestedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdate) SetUpdatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProjectUpdate) SetStartedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableStartedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ProjectUpdate) ClearStartedAt() *ProjectUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProjectUpdate) SetCompletedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableCompletedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProjectUpdate) ClearCompletedAt() *ProjectUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStageIDs adds the "stages" edge to the Stage entity by IDs.
func (_u *ProjectUpdate) AddStageIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the Stage entity.
func (_u *ProjectUpdate) AddStages(v ...*Stage) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *ProjectUpdate) AddTaskIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *ProjectUpdate) AddTasks(v ...*Task) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_u *ProjectUpdate) AddAgentIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_u *ProjectUpdate) AddAgents(v ...*Agent) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the Stage entity.
func (_u *ProjectUpdate) ClearStages() *ProjectUpdate {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to Stage entities by IDs.
func (_u *ProjectUpdate) RemoveStageIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to Stage entities.
func (_u *ProjectUpdate) RemoveStages(v ...*Stage) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *ProjectUpdate) ClearTasks() *ProjectUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *ProjectUpdate) RemoveTaskIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *ProjectUpdate) RemoveTasks(v ...*Task) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (_u *ProjectUpdate) ClearAgents() *ProjectUpdate {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (_u *ProjectUpdate) RemoveAgentIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to Agent entities.
func (_u *ProjectUpdate) RemoveAgents(v ...*Agent) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ControlStatus(); ok {
		if err := project.ControlStatusValidator(v); err != nil {
			return &ValidationError{Name: "control_status", err: fmt.Errorf(`ent: validator failed for field "Project.control_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(project.FieldProjectName, field.TypeString, value)
	}
	if _u.mutation.ProjectNameCleared() {
		_spec.ClearField(project.FieldProjectName, field.TypeString)
	}
	if value, ok := _u.mutation.Requirement(); ok {
		_spec.SetField(project.FieldRequirement, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(project.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(project.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(project.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(project.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(project.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(project.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ControlStatus(); ok {
		_spec.SetField(project.FieldControlStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(project.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(project.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(project.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(project.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResumeFromStage(); ok {
		_spec.SetField(project.FieldResumeFromStage, field.TypeString, value)
	}
	if _u.mutation.ResumeFromStageCleared() {
		_spec.ClearField(project.FieldResumeFromStage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorInfo(); ok {
		_spec.SetField(project.FieldErrorInfo, field.TypeJSON, value)
	}
	if _u.mutation.ErrorInfoCleared() {
		_spec.ClearField(project.FieldErrorInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.AggregatedMetrics(); ok {
		_spec.SetField(project.FieldAggregatedMetrics, field.TypeJSON, value)
	}
	if _u.mutation.AggregatedMetricsCleared() {
		_spec.ClearField(project.FieldAggregatedMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(project.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(project.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.PauseRequestedAt(); ok {
		_spec.SetField(project.FieldPauseRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.PauseRequestedAtCleared() {
		_spec.ClearField(project.FieldPauseRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StopRequestedAt(); ok {
		_spec.SetField(project.FieldStopRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.StopRequestedAtCleared() {
		_spec.ClearField(project.FieldStopRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(project.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(project.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(project.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(project.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AgentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetProjectName sets the "project_name" field.
func (_u *ProjectUpdateOne) SetProjectName(v string) *ProjectUpdateOne {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableProjectName(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// ClearProjectName clears the value of the "project_name" field.
func (_u *ProjectUpdateOne) ClearProjectName() *ProjectUpdateOne {
	_u.mutation.ClearProjectName()
	return _u
}

// SetRequirement sets the "requirement" field.
func (_u *ProjectUpdateOne) SetRequirement(v string) *ProjectUpdateOne {
	_u.mutation.SetRequirement(v)
	return _u
}

// SetNillableRequirement sets the "requirement" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableRequirement(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetRequirement(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ProjectUpdateOne) SetPriority(v int) *ProjectUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillablePriority(v *int) *ProjectUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ProjectUpdateOne) AddPriority(v int) *ProjectUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetTags sets the "tags" field.
func (_u *ProjectUpdateOne) SetTags(v []string) *ProjectUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ProjectUpdateOne) AppendTags(v []string) *ProjectUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ProjectUpdateOne) ClearTags() *ProjectUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProjectUpdateOne) SetUserID(v string) *ProjectUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableUserID(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ProjectUpdateOne) ClearUserID() *ProjectUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProjectUpdateOne) SetStatus(v project.Status) *ProjectUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableStatus(v *project.Status) *ProjectUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetControlStatus sets the "control_status" field.
func (_u *ProjectUpdateOne) SetControlStatus(v project.ControlStatus) *ProjectUpdateOne {
	_u.mutation.SetControlStatus(v)
	return _u
}

// SetNillableControlStatus sets the "control_status" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableControlStatus(v *project.ControlStatus) *ProjectUpdateOne {
	if v != nil {
		_u.SetControlStatus(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *ProjectUpdateOne) SetCurrentStage(v string) *ProjectUpdateOne {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableCurrentStage(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *ProjectUpdateOne) ClearCurrentStage() *ProjectUpdateOne {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ProjectUpdateOne) SetProgress(v int) *ProjectUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableProgress(v *int) *ProjectUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *ProjectUpdateOne) AddProgress(v int) *ProjectUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetResumeFromStage sets the "resume_from_stage" field.
func (_u *ProjectUpdateOne) SetResumeFromStage(v string) *ProjectUpdateOne {
	_u.mutation.SetResumeFromStage(v)
	return _u
}

// SetNillableResumeFromStage sets the "resume_from_stage" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableResumeFromStage(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetResumeFromStage(*v)
	}
	return _u
}

// ClearResumeFromStage clears the value of the "resume_from_stage" field.
func (_u *ProjectUpdateOne) ClearResumeFromStage() *ProjectUpdateOne {
	_u.mutation.ClearResumeFromStage()
	return _u
}

// SetErrorInfo sets the "error_info" field.
func (_u *ProjectUpdateOne) SetErrorInfo(v map[string]interface{}) *ProjectUpdateOne {
	_u.mutation.SetErrorInfo(v)
	return _u
}

// ClearErrorInfo clears the value of the "error_info" field.
func (_u *ProjectUpdateOne) ClearErrorInfo() *ProjectUpdateOne {
	_u.mutation.ClearErrorInfo()
	return _u
}

// SetAggregatedMetrics sets the "aggregated_metrics" field.
func (_u *ProjectUpdateOne) SetAggregatedMetrics(v map[string]interface{}) *ProjectUpdateOne {
	_u.mutation.SetAggregatedMetrics(v)
	return _u
}

// ClearAggregatedMetrics clears the value of the "aggregated_metrics" field.
func (_u *ProjectUpdateOne) ClearAggregatedMetrics() *ProjectUpdateOne {
	_u.mutation.ClearAggregatedMetrics()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ProjectUpdateOne) SetMetadata(v map[string]interface{}) *ProjectUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ProjectUpdateOne) ClearMetadata() *ProjectUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetPauseRequestedAt sets the "pause_requested_at" field.
func (_u *ProjectUpdateOne) SetPauseRequestedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetPauseRequestedAt(v)
	return _u
}

// SetNillablePauseRequestedAt sets the "pause_requested_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillablePauseRequestedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetPauseRequestedAt(*v)
	}
	return _u
}

// ClearPauseRequestedAt clears the value of the "pause_requested_at" field.
func (_u *ProjectUpdateOne) ClearPauseRequestedAt() *ProjectUpdateOne {
	_u.mutation.ClearPauseRequestedAt()
	return _u
}

// SetStopRequestedAt sets the "stop_requested_at" field.
func (_u *ProjectUpdateOne) SetStopRequestedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetStopRequestedAt(v)
	return _u
}

// SetNillableStopRequestedAt sets the "stop_requested_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableStopRequestedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetStopRequestedAt(*v)
	}
	return _u
}

// ClearStopRequestedAt clears the value of the "stop_requested_at" field.
func (_u *ProjectUpdateOne) ClearStopRequestedAt() *ProjectUpdateOne {
	_u.mutation.ClearStopRequestedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdateOne) SetUpdatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProjectUpdateOne) SetStartedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableStartedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ProjectUpdateOne) ClearStartedAt() *ProjectUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProjectUpdateOne) SetCompletedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableCompletedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProjectUpdateOne) ClearCompletedAt() *ProjectUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStageIDs adds the "stages" edge to the Stage entity by IDs.
func (_u *ProjectUpdateOne) AddStageIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the Stage entity.
func (_u *ProjectUpdateOne) AddStages(v ...*Stage) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *ProjectUpdateOne) AddTaskIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *ProjectUpdateOne) AddTasks(v ...*Task) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_u *ProjectUpdateOne) AddAgentIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_u *ProjectUpdateOne) AddAgents(v ...*Agent) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the Stage entity.
func (_u *ProjectUpdateOne) ClearStages() *ProjectUpdateOne {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to Stage entities by IDs.
func (_u *ProjectUpdateOne) RemoveStageIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to Stage entities.
func (_u *ProjectUpdateOne) RemoveStages(v ...*Stage) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *ProjectUpdateOne) ClearTasks() *ProjectUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *ProjectUpdateOne) RemoveTaskIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *ProjectUpdateOne) RemoveTasks(v ...*Task) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (_u *ProjectUpdateOne) ClearAgents() *ProjectUpdateOne {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (_u *ProjectUpdateOne) RemoveAgentIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to Agent entities.
func (_u *ProjectUpdateOne) RemoveAgents(v ...*Agent) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ControlStatus(); ok {
		if err := project.ControlStatusValidator(v); err != nil {
			return &ValidationError{Name: "control_status", err: fmt.Errorf(`ent: validator failed for field "Project.control_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(project.FieldProjectName, field.TypeString, value)
	}
	if _u.mutation.ProjectNameCleared() {
		_spec.ClearField(project.FieldProjectName, field.TypeString)
	}
	if value, ok := _u.mutation.Requirement(); ok {
		_spec.SetField(project.FieldRequirement, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(project.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(project.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(project.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(project.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(project.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(project.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ControlStatus(); ok {
		_spec.SetField(project.FieldControlStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(project.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(project.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(project.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(project.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResumeFromStage(); ok {
		_spec.SetField(project.FieldResumeFromStage, field.TypeString, value)
	}
	if _u.mutation.ResumeFromStageCleared() {
		_spec.ClearField(project.FieldResumeFromStage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorInfo(); ok {
		_spec.SetField(project.FieldErrorInfo, field.TypeJSON, value)
	}
	if _u.mutation.ErrorInfoCleared() {
		_spec.ClearField(project.FieldErrorInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.AggregatedMetrics(); ok {
		_spec.SetField(project.FieldAggregatedMetrics, field.TypeJSON, value)
	}
	if _u.mutation.AggregatedMetricsCleared() {
		_spec.ClearField(project.FieldAggregatedMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(project.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(project.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.PauseRequestedAt(); ok {
		_spec.SetField(project.FieldPauseRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.PauseRequestedAtCleared() {
		_spec.ClearField(project.FieldPauseRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StopRequestedAt(); ok {
		_spec.SetField(project.FieldStopRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.StopRequestedAtCleared() {
		_spec.ClearField(project.FieldStopRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(project.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(project.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(project.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(project.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AgentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
