// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nexus-ai/nexus/ent/project"
	"github.com/nexus-ai/nexus/ent/stage"
)

// StageCreate is the builder for creating a Stage entity.
type StageCreate struct {
	config
	mutation *StageMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *StageCreate) SetProjectID(v string) *StageCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetStageName sets the "stage_name" field.
func (_c *StageCreate) SetStageName(v string) *StageCreate {
	_c.mutation.SetStageName(v)
	return _c
}

// SetStageNumber sets the "stage_number" field.
func (_c *StageCreate) SetStageNumber(v int) *StageCreate {
	_c.mutation.SetStageNumber(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *StageCreate) SetDisplayName(v string) *StageCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *StageCreate) SetNillableDisplayName(v *string) *StageCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *StageCreate) SetAgentName(v string) *StageCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_c *StageCreate) SetNillableAgentName(v *string) *StageCreate {
	if v != nil {
		_c.SetAgentName(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StageCreate) SetStatus(v stage.Status) *StageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StageCreate) SetNillableStatus(v *stage.Status) *StageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *StageCreate) SetDurationSeconds(v float64) *StageCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *StageCreate) SetNillableDurationSeconds(v *float64) *StageCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *StageCreate) SetInputTokens(v int) *StageCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *StageCreate) SetNillableInputTokens(v *int) *StageCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *StageCreate) SetOutputTokens(v int) *StageCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *StageCreate) SetNillableOutputTokens(v *int) *StageCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetToolCallsCount sets the "tool_calls_count" field.
func (_c *StageCreate) SetToolCallsCount(v int) *StageCreate {
	_c.mutation.SetToolCallsCount(v)
	return _c
}

// SetNillableToolCallsCount sets the "tool_calls_count" field if the given value is not nil.
func (_c *StageCreate) SetNillableToolCallsCount(v *int) *StageCreate {
	if v != nil {
		_c.SetToolCallsCount(*v)
	}
	return _c
}

// SetModelID sets the "model_id" field.
func (_c *StageCreate) SetModelID(v string) *StageCreate {
	_c.mutation.SetModelID(v)
	return _c
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_c *StageCreate) SetNillableModelID(v *string) *StageCreate {
	if v != nil {
		_c.SetModelID(*v)
	}
	return _c
}

// SetAgentOutputContent sets the "agent_output_content" field.
func (_c *StageCreate) SetAgentOutputContent(v string) *StageCreate {
	_c.mutation.SetAgentOutputContent(v)
	return _c
}

// SetNillableAgentOutputContent sets the "agent_output_content" field if the given value is not nil.
func (_c *StageCreate) SetNillableAgentOutputContent(v *string) *StageCreate {
	if v != nil {
		_c.SetAgentOutputContent(*v)
	}
	return _c
}

// SetAgentOutputS3Ref sets the "agent_output_s3_ref" field.
func (_c *StageCreate) SetAgentOutputS3Ref(v string) *StageCreate {
	_c.mutation.SetAgentOutputS3Ref(v)
	return _c
}

// SetNillableAgentOutputS3Ref sets the "agent_output_s3_ref" field if the given value is not nil.
func (_c *StageCreate) SetNillableAgentOutputS3Ref(v *string) *StageCreate {
	if v != nil {
		_c.SetAgentOutputS3Ref(*v)
	}
	return _c
}

// SetDesignDocumentContent sets the "design_document_content" field.
func (_c *StageCreate) SetDesignDocumentContent(v string) *StageCreate {
	_c.mutation.SetDesignDocumentContent(v)
	return _c
}

// SetNillableDesignDocumentContent sets the "design_document_content" field if the given value is not nil.
func (_c *StageCreate) SetNillableDesignDocumentContent(v *string) *StageCreate {
	if v != nil {
		_c.SetDesignDocumentContent(*v)
	}
	return _c
}

// SetDesignDocumentFormat sets the "design_document_format" field.
func (_c *StageCreate) SetDesignDocumentFormat(v string) *StageCreate {
	_c.mutation.SetDesignDocumentFormat(v)
	return _c
}

// SetNillableDesignDocumentFormat sets the "design_document_format" field if the given value is not nil.
func (_c *StageCreate) SetNillableDesignDocumentFormat(v *string) *StageCreate {
	if v != nil {
		_c.SetDesignDocumentFormat(*v)
	}
	return _c
}

// SetGeneratedFiles sets the "generated_files" field.
func (_c *StageCreate) SetGeneratedFiles(v []map[string]interface{}) *StageCreate {
	_c.mutation.SetGeneratedFiles(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *StageCreate) SetErrorMessage(v string) *StageCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *StageCreate) SetNillableErrorMessage(v *string) *StageCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetDocPath sets the "doc_path" field.
func (_c *StageCreate) SetDocPath(v string) *StageCreate {
	_c.mutation.SetDocPath(v)
	return _c
}

// SetNillableDocPath sets the "doc_path" field if the given value is not nil.
func (_c *StageCreate) SetNillableDocPath(v *string) *StageCreate {
	if v != nil {
		_c.SetDocPath(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StageCreate) SetStartedAt(v time.Time) *StageCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StageCreate) SetNillableStartedAt(v *time.Time) *StageCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StageCreate) SetCompletedAt(v time.Time) *StageCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StageCreate) SetNillableCompletedAt(v *time.Time) *StageCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageCreate) SetID(v string) *StageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *StageCreate) SetProject(v *Project) *StageCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the StageMutation object of the builder.
func (_c *StageCreate) Mutation() *StageMutation {
	return _c.mutation
}

// Save creates the Stage in the database.
func (_c *StageCreate) Save(ctx context.Context) (*Stage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageCreate) SaveX(ctx context.Context) *Stage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := stage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := stage.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := stage.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.ToolCallsCount(); !ok {
		v := stage.DefaultToolCallsCount
		_c.mutation.SetToolCallsCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Stage.project_id"`)}
	}
	if _, ok := _c.mutation.StageName(); !ok {
		return &ValidationError{Name: "stage_name", err: errors.New(`ent: missing required field "Stage.stage_name"`)}
	}
	if _, ok := _c.mutation.StageNumber(); !ok {
		return &ValidationError{Name: "stage_number", err: errors.New(`ent: missing required field "Stage.stage_number"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Stage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Stage.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "Stage.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "Stage.output_tokens"`)}
	}
	if _, ok := _c.mutation.ToolCallsCount(); !ok {
		return &ValidationError{Name: "tool_calls_count", err: errors.New(`ent: missing required field "Stage.tool_calls_count"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Stage.project"`)}
	}
	return nil
}

func (_c *StageCreate) sqlSave(ctx context.Context) (*Stage, error) {
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
			return nil, fmt.Errorf("unexpected Stage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StageCreate) createSpec() (*Stage, *sqlgraph.CreateSpec) {
	var (
		_node = &Stage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stage.Table, sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StageName(); ok {
		_spec.SetField(stage.FieldStageName, field.TypeString, value)
		_node.StageName = value
	}
	if value, ok := _c.mutation.StageNumber(); ok {
		_spec.SetField(stage.FieldStageNumber, field.TypeInt, value)
		_node.StageNumber = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(stage.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(stage.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(stage.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = &value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(stage.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(stage.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.ToolCallsCount(); ok {
		_spec.SetField(stage.FieldToolCallsCount, field.TypeInt, value)
		_node.ToolCallsCount = value
	}
	if value, ok := _c.mutation.ModelID(); ok {
		_spec.SetField(stage.FieldModelID, field.TypeString, value)
		_node.ModelID = value
	}
	if value, ok := _c.mutation.AgentOutputContent(); ok {
		_spec.SetField(stage.FieldAgentOutputContent, field.TypeString, value)
		_node.AgentOutputContent = value
	}
	if value, ok := _c.mutation.AgentOutputS3Ref(); ok {
		_spec.SetField(stage.FieldAgentOutputS3Ref, field.TypeString, value)
		_node.AgentOutputS3Ref = value
	}
	if value, ok := _c.mutation.DesignDocumentContent(); ok {
		_spec.SetField(stage.FieldDesignDocumentContent, field.TypeString, value)
		_node.DesignDocumentContent = value
	}
	if value, ok := _c.mutation.DesignDocumentFormat(); ok {
		_spec.SetField(stage.FieldDesignDocumentFormat, field.TypeString, value)
		_node.DesignDocumentFormat = value
	}
	if value, ok := _c.mutation.GeneratedFiles(); ok {
		_spec.SetField(stage.FieldGeneratedFiles, field.TypeJSON, value)
		_node.GeneratedFiles = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(stage.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.DocPath(); ok {
		_spec.SetField(stage.FieldDocPath, field.TypeString, value)
		_node.DocPath = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(stage.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(stage.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stage.ProjectTable,
			Columns: []string{stage.ProjectColumn},
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

// StageCreateBulk is the builder for creating many Stage entities in bulk.
type StageCreateBulk struct {
	config
	err      error
	builders []*StageCreate
}

// Save creates the Stage entities in the database.
func (_c *StageCreateBulk) Save(ctx context.Context) ([]*Stage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Stage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageMutation)
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
func (_c *StageCreateBulk) SaveX(ctx context.Context) []*Stage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
