// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nexus-ai/nexus/ent/agent"
	"github.com/nexus-ai/nexus/ent/predicate"
	"github.com/nexus-ai/nexus/ent/project"
	"github.com/nexus-ai/nexus/ent/stage"
	"github.com/nexus-ai/nexus/ent/task"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent   = "Agent"
	TypeProject = "Project"
	TypeStage   = "Stage"
	TypeTask    = "Task"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	agent_name          *string
	description         *string
	status              *agent.Status
	deployment_status   *agent.DeploymentStatus
	deployment_error    *string
	runtime_id          *string
	runtime_endpoint    *string
	capabilities        *[]string
	appendcapabilities  []string
	invocation_count    *int64
	addinvocation_count *int64
	created_at          *time.Time
	updated_at          *time.Time
	last_deployed_at    *time.Time
	clearedFields       map[string]struct{}
	project             *string
	clearedproject      bool
	done                bool
	oldValue            func(context.Context) (*Agent, error)
	predicates          []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentName sets the "agent_name" field.
func (m *AgentMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AgentMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AgentMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetDescription sets the "description" field.
func (m *AgentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AgentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AgentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[agent.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AgentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[agent.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AgentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, agent.FieldDescription)
}

// SetProjectID sets the "project_id" field.
func (m *AgentMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *AgentMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *AgentMutation) ResetProjectID() {
	m.project = nil
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetDeploymentStatus sets the "deployment_status" field.
func (m *AgentMutation) SetDeploymentStatus(as agent.DeploymentStatus) {
	m.deployment_status = &as
}

// DeploymentStatus returns the value of the "deployment_status" field in the mutation.
func (m *AgentMutation) DeploymentStatus() (r agent.DeploymentStatus, exists bool) {
	v := m.deployment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldDeploymentStatus returns the old "deployment_status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldDeploymentStatus(ctx context.Context) (v agent.DeploymentStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeploymentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeploymentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeploymentStatus: %w", err)
	}
	return oldValue.DeploymentStatus, nil
}

// ResetDeploymentStatus resets all changes to the "deployment_status" field.
func (m *AgentMutation) ResetDeploymentStatus() {
	m.deployment_status = nil
}

// SetDeploymentError sets the "deployment_error" field.
func (m *AgentMutation) SetDeploymentError(s string) {
	m.deployment_error = &s
}

// DeploymentError returns the value of the "deployment_error" field in the mutation.
func (m *AgentMutation) DeploymentError() (r string, exists bool) {
	v := m.deployment_error
	if v == nil {
		return
	}
	return *v, true
}

// OldDeploymentError returns the old "deployment_error" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldDeploymentError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeploymentError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeploymentError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeploymentError: %w", err)
	}
	return oldValue.DeploymentError, nil
}

// ClearDeploymentError clears the value of the "deployment_error" field.
func (m *AgentMutation) ClearDeploymentError() {
	m.deployment_error = nil
	m.clearedFields[agent.FieldDeploymentError] = struct{}{}
}

// DeploymentErrorCleared returns if the "deployment_error" field was cleared in this mutation.
func (m *AgentMutation) DeploymentErrorCleared() bool {
	_, ok := m.clearedFields[agent.FieldDeploymentError]
	return ok
}

// ResetDeploymentError resets all changes to the "deployment_error" field.
func (m *AgentMutation) ResetDeploymentError() {
	m.deployment_error = nil
	delete(m.clearedFields, agent.FieldDeploymentError)
}

// SetRuntimeID sets the "runtime_id" field.
func (m *AgentMutation) SetRuntimeID(s string) {
	m.runtime_id = &s
}

// RuntimeID returns the value of the "runtime_id" field in the mutation.
func (m *AgentMutation) RuntimeID() (r string, exists bool) {
	v := m.runtime_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRuntimeID returns the old "runtime_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRuntimeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuntimeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuntimeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuntimeID: %w", err)
	}
	return oldValue.RuntimeID, nil
}

// ClearRuntimeID clears the value of the "runtime_id" field.
func (m *AgentMutation) ClearRuntimeID() {
	m.runtime_id = nil
	m.clearedFields[agent.FieldRuntimeID] = struct{}{}
}

// RuntimeIDCleared returns if the "runtime_id" field was cleared in this mutation.
func (m *AgentMutation) RuntimeIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldRuntimeID]
	return ok
}

// ResetRuntimeID resets all changes to the "runtime_id" field.
func (m *AgentMutation) ResetRuntimeID() {
	m.runtime_id = nil
	delete(m.clearedFields, agent.FieldRuntimeID)
}

// SetRuntimeEndpoint sets the "runtime_endpoint" field.
func (m *AgentMutation) SetRuntimeEndpoint(s string) {
	m.runtime_endpoint = &s
}

// RuntimeEndpoint returns the value of the "runtime_endpoint" field in the mutation.
func (m *AgentMutation) RuntimeEndpoint() (r string, exists bool) {
	v := m.runtime_endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldRuntimeEndpoint returns the old "runtime_endpoint" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRuntimeEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuntimeEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuntimeEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuntimeEndpoint: %w", err)
	}
	return oldValue.RuntimeEndpoint, nil
}

// ClearRuntimeEndpoint clears the value of the "runtime_endpoint" field.
func (m *AgentMutation) ClearRuntimeEndpoint() {
	m.runtime_endpoint = nil
	m.clearedFields[agent.FieldRuntimeEndpoint] = struct{}{}
}

// RuntimeEndpointCleared returns if the "runtime_endpoint" field was cleared in this mutation.
func (m *AgentMutation) RuntimeEndpointCleared() bool {
	_, ok := m.clearedFields[agent.FieldRuntimeEndpoint]
	return ok
}

// ResetRuntimeEndpoint resets all changes to the "runtime_endpoint" field.
func (m *AgentMutation) ResetRuntimeEndpoint() {
	m.runtime_endpoint = nil
	delete(m.clearedFields, agent.FieldRuntimeEndpoint)
}

// SetCapabilities sets the "capabilities" field.
func (m *AgentMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *AgentMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *AgentMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *AgentMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ClearCapabilities clears the value of the "capabilities" field.
func (m *AgentMutation) ClearCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	m.clearedFields[agent.FieldCapabilities] = struct{}{}
}

// CapabilitiesCleared returns if the "capabilities" field was cleared in this mutation.
func (m *AgentMutation) CapabilitiesCleared() bool {
	_, ok := m.clearedFields[agent.FieldCapabilities]
	return ok
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *AgentMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	delete(m.clearedFields, agent.FieldCapabilities)
}

// SetInvocationCount sets the "invocation_count" field.
func (m *AgentMutation) SetInvocationCount(i int64) {
	m.invocation_count = &i
	m.addinvocation_count = nil
}

// InvocationCount returns the value of the "invocation_count" field in the mutation.
func (m *AgentMutation) InvocationCount() (r int64, exists bool) {
	v := m.invocation_count
	if v == nil {
		return
	}
	return *v, true
}

// OldInvocationCount returns the old "invocation_count" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldInvocationCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvocationCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvocationCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvocationCount: %w", err)
	}
	return oldValue.InvocationCount, nil
}

// AddInvocationCount adds i to the "invocation_count" field.
func (m *AgentMutation) AddInvocationCount(i int64) {
	if m.addinvocation_count != nil {
		*m.addinvocation_count += i
	} else {
		m.addinvocation_count = &i
	}
}

// AddedInvocationCount returns the value that was added to the "invocation_count" field in this mutation.
func (m *AgentMutation) AddedInvocationCount() (r int64, exists bool) {
	v := m.addinvocation_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetInvocationCount resets all changes to the "invocation_count" field.
func (m *AgentMutation) ResetInvocationCount() {
	m.invocation_count = nil
	m.addinvocation_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetLastDeployedAt sets the "last_deployed_at" field.
func (m *AgentMutation) SetLastDeployedAt(t time.Time) {
	m.last_deployed_at = &t
}

// LastDeployedAt returns the value of the "last_deployed_at" field in the mutation.
func (m *AgentMutation) LastDeployedAt() (r time.Time, exists bool) {
	v := m.last_deployed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastDeployedAt returns the old "last_deployed_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastDeployedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastDeployedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastDeployedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastDeployedAt: %w", err)
	}
	return oldValue.LastDeployedAt, nil
}

// ClearLastDeployedAt clears the value of the "last_deployed_at" field.
func (m *AgentMutation) ClearLastDeployedAt() {
	m.last_deployed_at = nil
	m.clearedFields[agent.FieldLastDeployedAt] = struct{}{}
}

// LastDeployedAtCleared returns if the "last_deployed_at" field was cleared in this mutation.
func (m *AgentMutation) LastDeployedAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldLastDeployedAt]
	return ok
}

// ResetLastDeployedAt resets all changes to the "last_deployed_at" field.
func (m *AgentMutation) ResetLastDeployedAt() {
	m.last_deployed_at = nil
	delete(m.clearedFields, agent.FieldLastDeployedAt)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *AgentMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[agent.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *AgentMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *AgentMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.agent_name != nil {
		fields = append(fields, agent.FieldAgentName)
	}
	if m.description != nil {
		fields = append(fields, agent.FieldDescription)
	}
	if m.project != nil {
		fields = append(fields, agent.FieldProjectID)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.deployment_status != nil {
		fields = append(fields, agent.FieldDeploymentStatus)
	}
	if m.deployment_error != nil {
		fields = append(fields, agent.FieldDeploymentError)
	}
	if m.runtime_id != nil {
		fields = append(fields, agent.FieldRuntimeID)
	}
	if m.runtime_endpoint != nil {
		fields = append(fields, agent.FieldRuntimeEndpoint)
	}
	if m.capabilities != nil {
		fields = append(fields, agent.FieldCapabilities)
	}
	if m.invocation_count != nil {
		fields = append(fields, agent.FieldInvocationCount)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	if m.last_deployed_at != nil {
		fields = append(fields, agent.FieldLastDeployedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldAgentName:
		return m.AgentName()
	case agent.FieldDescription:
		return m.Description()
	case agent.FieldProjectID:
		return m.ProjectID()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldDeploymentStatus:
		return m.DeploymentStatus()
	case agent.FieldDeploymentError:
		return m.DeploymentError()
	case agent.FieldRuntimeID:
		return m.RuntimeID()
	case agent.FieldRuntimeEndpoint:
		return m.RuntimeEndpoint()
	case agent.FieldCapabilities:
		return m.Capabilities()
	case agent.FieldInvocationCount:
		return m.InvocationCount()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	case agent.FieldLastDeployedAt:
		return m.LastDeployedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldAgentName:
		return m.OldAgentName(ctx)
	case agent.FieldDescription:
		return m.OldDescription(ctx)
	case agent.FieldProjectID:
		return m.OldProjectID(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldDeploymentStatus:
		return m.OldDeploymentStatus(ctx)
	case agent.FieldDeploymentError:
		return m.OldDeploymentError(ctx)
	case agent.FieldRuntimeID:
		return m.OldRuntimeID(ctx)
	case agent.FieldRuntimeEndpoint:
		return m.OldRuntimeEndpoint(ctx)
	case agent.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case agent.FieldInvocationCount:
		return m.OldInvocationCount(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case agent.FieldLastDeployedAt:
		return m.OldLastDeployedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case agent.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case agent.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldDeploymentStatus:
		v, ok := value.(agent.DeploymentStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeploymentStatus(v)
		return nil
	case agent.FieldDeploymentError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeploymentError(v)
		return nil
	case agent.FieldRuntimeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuntimeID(v)
		return nil
	case agent.FieldRuntimeEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuntimeEndpoint(v)
		return nil
	case agent.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case agent.FieldInvocationCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvocationCount(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case agent.FieldLastDeployedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastDeployedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addinvocation_count != nil {
		fields = append(fields, agent.FieldInvocationCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldInvocationCount:
		return m.AddedInvocationCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldInvocationCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInvocationCount(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldDescription) {
		fields = append(fields, agent.FieldDescription)
	}
	if m.FieldCleared(agent.FieldDeploymentError) {
		fields = append(fields, agent.FieldDeploymentError)
	}
	if m.FieldCleared(agent.FieldRuntimeID) {
		fields = append(fields, agent.FieldRuntimeID)
	}
	if m.FieldCleared(agent.FieldRuntimeEndpoint) {
		fields = append(fields, agent.FieldRuntimeEndpoint)
	}
	if m.FieldCleared(agent.FieldCapabilities) {
		fields = append(fields, agent.FieldCapabilities)
	}
	if m.FieldCleared(agent.FieldLastDeployedAt) {
		fields = append(fields, agent.FieldLastDeployedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldDescription:
		m.ClearDescription()
		return nil
	case agent.FieldDeploymentError:
		m.ClearDeploymentError()
		return nil
	case agent.FieldRuntimeID:
		m.ClearRuntimeID()
		return nil
	case agent.FieldRuntimeEndpoint:
		m.ClearRuntimeEndpoint()
		return nil
	case agent.FieldCapabilities:
		m.ClearCapabilities()
		return nil
	case agent.FieldLastDeployedAt:
		m.ClearLastDeployedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldAgentName:
		m.ResetAgentName()
		return nil
	case agent.FieldDescription:
		m.ResetDescription()
		return nil
	case agent.FieldProjectID:
		m.ResetProjectID()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldDeploymentStatus:
		m.ResetDeploymentStatus()
		return nil
	case agent.FieldDeploymentError:
		m.ResetDeploymentError()
		return nil
	case agent.FieldRuntimeID:
		m.ResetRuntimeID()
		return nil
	case agent.FieldRuntimeEndpoint:
		m.ResetRuntimeEndpoint()
		return nil
	case agent.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case agent.FieldInvocationCount:
		m.ResetInvocationCount()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case agent.FieldLastDeployedAt:
		m.ResetLastDeployedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, agent.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, agent.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	case agent.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	project_name       *string
	workflow_type      *project.WorkflowType
	requirement        *string
	priority           *int
	addpriority        *int
	tags               *[]string
	appendtags         []string
	user_id            *string
	status             *project.Status
	control_status     *project.ControlStatus
	current_stage      *string
	progress           *int
	addprogress        *int
	resume_from_stage  *string
	error_info         *map[string]interface{}
	aggregated_metrics *map[string]interface{}
	metadata           *map[string]interface{}
	pause_requested_at *time.Time
	stop_requested_at  *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	started_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	stages             map[string]struct{}
	removedstages      map[string]struct{}
	clearedstages      bool
	tasks              map[string]struct{}
	removedtasks       map[string]struct{}
	clearedtasks       bool
	agents             map[string]struct{}
	removedagents      map[string]struct{}
	clearedagents      bool
	done               bool
	oldValue           func(context.Context) (*Project, error)
	predicates         []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectName sets the "project_name" field.
func (m *ProjectMutation) SetProjectName(s string) {
	m.project_name = &s
}

// ProjectName returns the value of the "project_name" field in the mutation.
func (m *ProjectMutation) ProjectName() (r string, exists bool) {
	v := m.project_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectName returns the old "project_name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldProjectName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectName: %w", err)
	}
	return oldValue.ProjectName, nil
}

// ClearProjectName clears the value of the "project_name" field.
func (m *ProjectMutation) ClearProjectName() {
	m.project_name = nil
	m.clearedFields[project.FieldProjectName] = struct{}{}
}

// ProjectNameCleared returns if the "project_name" field was cleared in this mutation.
func (m *ProjectMutation) ProjectNameCleared() bool {
	_, ok := m.clearedFields[project.FieldProjectName]
	return ok
}

// ResetProjectName resets all changes to the "project_name" field.
func (m *ProjectMutation) ResetProjectName() {
	m.project_name = nil
	delete(m.clearedFields, project.FieldProjectName)
}

// SetWorkflowType sets the "workflow_type" field.
func (m *ProjectMutation) SetWorkflowType(pt project.WorkflowType) {
	m.workflow_type = &pt
}

// WorkflowType returns the value of the "workflow_type" field in the mutation.
func (m *ProjectMutation) WorkflowType() (r project.WorkflowType, exists bool) {
	v := m.workflow_type
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowType returns the old "workflow_type" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldWorkflowType(ctx context.Context) (v project.WorkflowType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowType: %w", err)
	}
	return oldValue.WorkflowType, nil
}

// ResetWorkflowType resets all changes to the "workflow_type" field.
func (m *ProjectMutation) ResetWorkflowType() {
	m.workflow_type = nil
}

// SetRequirement sets the "requirement" field.
func (m *ProjectMutation) SetRequirement(s string) {
	m.requirement = &s
}

// Requirement returns the value of the "requirement" field in the mutation.
func (m *ProjectMutation) Requirement() (r string, exists bool) {
	v := m.requirement
	if v == nil {
		return
	}
	return *v, true
}

// OldRequirement returns the old "requirement" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldRequirement(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequirement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequirement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequirement: %w", err)
	}
	return oldValue.Requirement, nil
}

// ResetRequirement resets all changes to the "requirement" field.
func (m *ProjectMutation) ResetRequirement() {
	m.requirement = nil
}

// SetPriority sets the "priority" field.
func (m *ProjectMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ProjectMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *ProjectMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *ProjectMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *ProjectMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetTags sets the "tags" field.
func (m *ProjectMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ProjectMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ProjectMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ProjectMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *ProjectMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[project.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *ProjectMutation) TagsCleared() bool {
	_, ok := m.clearedFields[project.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *ProjectMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, project.FieldTags)
}

// SetUserID sets the "user_id" field.
func (m *ProjectMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ProjectMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ProjectMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[project.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ProjectMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[project.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ProjectMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, project.FieldUserID)
}

// SetStatus sets the "status" field.
func (m *ProjectMutation) SetStatus(pr project.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProjectMutation) Status() (r project.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldStatus(ctx context.Context) (v project.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProjectMutation) ResetStatus() {
	m.status = nil
}

// SetControlStatus sets the "control_status" field.
func (m *ProjectMutation) SetControlStatus(ps project.ControlStatus) {
	m.control_status = &ps
}

// ControlStatus returns the value of the "control_status" field in the mutation.
func (m *ProjectMutation) ControlStatus() (r project.ControlStatus, exists bool) {
	v := m.control_status
	if v == nil {
		return
	}
	return *v, true
}

// OldControlStatus returns the old "control_status" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldControlStatus(ctx context.Context) (v project.ControlStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldControlStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldControlStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldControlStatus: %w", err)
	}
	return oldValue.ControlStatus, nil
}

// ResetControlStatus resets all changes to the "control_status" field.
func (m *ProjectMutation) ResetControlStatus() {
	m.control_status = nil
}

// SetCurrentStage sets the "current_stage" field.
func (m *ProjectMutation) SetCurrentStage(s string) {
	m.current_stage = &s
}

// CurrentStage returns the value of the "current_stage" field in the mutation.
func (m *ProjectMutation) CurrentStage() (r string, exists bool) {
	v := m.current_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStage returns the old "current_stage" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCurrentStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStage: %w", err)
	}
	return oldValue.CurrentStage, nil
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (m *ProjectMutation) ClearCurrentStage() {
	m.current_stage = nil
	m.clearedFields[project.FieldCurrentStage] = struct{}{}
}

// CurrentStageCleared returns if the "current_stage" field was cleared in this mutation.
func (m *ProjectMutation) CurrentStageCleared() bool {
	_, ok := m.clearedFields[project.FieldCurrentStage]
	return ok
}

// ResetCurrentStage resets all changes to the "current_stage" field.
func (m *ProjectMutation) ResetCurrentStage() {
	m.current_stage = nil
	delete(m.clearedFields, project.FieldCurrentStage)
}

// SetProgress sets the "progress" field.
func (m *ProjectMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *ProjectMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *ProjectMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *ProjectMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *ProjectMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetResumeFromStage sets the "resume_from_stage" field.
func (m *ProjectMutation) SetResumeFromStage(s string) {
	m.resume_from_stage = &s
}

// ResumeFromStage returns the value of the "resume_from_stage" field in the mutation.
func (m *ProjectMutation) ResumeFromStage() (r string, exists bool) {
	v := m.resume_from_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldResumeFromStage returns the old "resume_from_stage" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldResumeFromStage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumeFromStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumeFromStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumeFromStage: %w", err)
	}
	return oldValue.ResumeFromStage, nil
}

// ClearResumeFromStage clears the value of the "resume_from_stage" field.
func (m *ProjectMutation) ClearResumeFromStage() {
	m.resume_from_stage = nil
	m.clearedFields[project.FieldResumeFromStage] = struct{}{}
}

// ResumeFromStageCleared returns if the "resume_from_stage" field was cleared in this mutation.
func (m *ProjectMutation) ResumeFromStageCleared() bool {
	_, ok := m.clearedFields[project.FieldResumeFromStage]
	return ok
}

// ResetResumeFromStage resets all changes to the "resume_from_stage" field.
func (m *ProjectMutation) ResetResumeFromStage() {
	m.resume_from_stage = nil
	delete(m.clearedFields, project.FieldResumeFromStage)
}

// SetErrorInfo sets the "error_info" field.
func (m *ProjectMutation) SetErrorInfo(value map[string]interface{}) {
	m.error_info = &value
}

// ErrorInfo returns the value of the "error_info" field in the mutation.
func (m *ProjectMutation) ErrorInfo() (r map[string]interface{}, exists bool) {
	v := m.error_info
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorInfo returns the old "error_info" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldErrorInfo(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorInfo: %w", err)
	}
	return oldValue.ErrorInfo, nil
}

// ClearErrorInfo clears the value of the "error_info" field.
func (m *ProjectMutation) ClearErrorInfo() {
	m.error_info = nil
	m.clearedFields[project.FieldErrorInfo] = struct{}{}
}

// ErrorInfoCleared returns if the "error_info" field was cleared in this mutation.
func (m *ProjectMutation) ErrorInfoCleared() bool {
	_, ok := m.clearedFields[project.FieldErrorInfo]
	return ok
}

// ResetErrorInfo resets all changes to the "error_info" field.
func (m *ProjectMutation) ResetErrorInfo() {
	m.error_info = nil
	delete(m.clearedFields, project.FieldErrorInfo)
}

// SetAggregatedMetrics sets the "aggregated_metrics" field.
func (m *ProjectMutation) SetAggregatedMetrics(value map[string]interface{}) {
	m.aggregated_metrics = &value
}

// AggregatedMetrics returns the value of the "aggregated_metrics" field in the mutation.
func (m *ProjectMutation) AggregatedMetrics() (r map[string]interface{}, exists bool) {
	v := m.aggregated_metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldAggregatedMetrics returns the old "aggregated_metrics" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldAggregatedMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAggregatedMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAggregatedMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAggregatedMetrics: %w", err)
	}
	return oldValue.AggregatedMetrics, nil
}

// ClearAggregatedMetrics clears the value of the "aggregated_metrics" field.
func (m *ProjectMutation) ClearAggregatedMetrics() {
	m.aggregated_metrics = nil
	m.clearedFields[project.FieldAggregatedMetrics] = struct{}{}
}

// AggregatedMetricsCleared returns if the "aggregated_metrics" field was cleared in this mutation.
func (m *ProjectMutation) AggregatedMetricsCleared() bool {
	_, ok := m.clearedFields[project.FieldAggregatedMetrics]
	return ok
}

// ResetAggregatedMetrics resets all changes to the "aggregated_metrics" field.
func (m *ProjectMutation) ResetAggregatedMetrics() {
	m.aggregated_metrics = nil
	delete(m.clearedFields, project.FieldAggregatedMetrics)
}

// SetMetadata sets the "metadata" field.
func (m *ProjectMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ProjectMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ProjectMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[project.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ProjectMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[project.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ProjectMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, project.FieldMetadata)
}

// SetPauseRequestedAt sets the "pause_requested_at" field.
func (m *ProjectMutation) SetPauseRequestedAt(t time.Time) {
	m.pause_requested_at = &t
}

// PauseRequestedAt returns the value of the "pause_requested_at" field in the mutation.
func (m *ProjectMutation) PauseRequestedAt() (r time.Time, exists bool) {
	v := m.pause_requested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPauseRequestedAt returns the old "pause_requested_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldPauseRequestedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPauseRequestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPauseRequestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPauseRequestedAt: %w", err)
	}
	return oldValue.PauseRequestedAt, nil
}

// ClearPauseRequestedAt clears the value of the "pause_requested_at" field.
func (m *ProjectMutation) ClearPauseRequestedAt() {
	m.pause_requested_at = nil
	m.clearedFields[project.FieldPauseRequestedAt] = struct{}{}
}

// PauseRequestedAtCleared returns if the "pause_requested_at" field was cleared in this mutation.
func (m *ProjectMutation) PauseRequestedAtCleared() bool {
	_, ok := m.clearedFields[project.FieldPauseRequestedAt]
	return ok
}

// ResetPauseRequestedAt resets all changes to the "pause_requested_at" field.
func (m *ProjectMutation) ResetPauseRequestedAt() {
	m.pause_requested_at = nil
	delete(m.clearedFields, project.FieldPauseRequestedAt)
}

// SetStopRequestedAt sets the "stop_requested_at" field.
func (m *ProjectMutation) SetStopRequestedAt(t time.Time) {
	m.stop_requested_at = &t
}

// StopRequestedAt returns the value of the "stop_requested_at" field in the mutation.
func (m *ProjectMutation) StopRequestedAt() (r time.Time, exists bool) {
	v := m.stop_requested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStopRequestedAt returns the old "stop_requested_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldStopRequestedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStopRequestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStopRequestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStopRequestedAt: %w", err)
	}
	return oldValue.StopRequestedAt, nil
}

// ClearStopRequestedAt clears the value of the "stop_requested_at" field.
func (m *ProjectMutation) ClearStopRequestedAt() {
	m.stop_requested_at = nil
	m.clearedFields[project.FieldStopRequestedAt] = struct{}{}
}

// StopRequestedAtCleared returns if the "stop_requested_at" field was cleared in this mutation.
func (m *ProjectMutation) StopRequestedAtCleared() bool {
	_, ok := m.clearedFields[project.FieldStopRequestedAt]
	return ok
}

// ResetStopRequestedAt resets all changes to the "stop_requested_at" field.
func (m *ProjectMutation) ResetStopRequestedAt() {
	m.stop_requested_at = nil
	delete(m.clearedFields, project.FieldStopRequestedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ProjectMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ProjectMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ProjectMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[project.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ProjectMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[project.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ProjectMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, project.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ProjectMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ProjectMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ProjectMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[project.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ProjectMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[project.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ProjectMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, project.FieldCompletedAt)
}

// AddStageIDs adds the "stages" edge to the Stage entity by ids.
func (m *ProjectMutation) AddStageIDs(ids ...string) {
	if m.stages == nil {
		m.stages = make(map[string]struct{})
	}
	for i := range ids {
		m.stages[ids[i]] = struct{}{}
	}
}

// ClearStages clears the "stages" edge to the Stage entity.
func (m *ProjectMutation) ClearStages() {
	m.clearedstages = true
}

// StagesCleared reports if the "stages" edge to the Stage entity was cleared.
func (m *ProjectMutation) StagesCleared() bool {
	return m.clearedstages
}

// RemoveStageIDs removes the "stages" edge to the Stage entity by IDs.
func (m *ProjectMutation) RemoveStageIDs(ids ...string) {
	if m.removedstages == nil {
		m.removedstages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.stages, ids[i])
		m.removedstages[ids[i]] = struct{}{}
	}
}

// RemovedStages returns the removed IDs of the "stages" edge to the Stage entity.
func (m *ProjectMutation) RemovedStagesIDs() (ids []string) {
	for id := range m.removedstages {
		ids = append(ids, id)
	}
	return
}

// StagesIDs returns the "stages" edge IDs in the mutation.
func (m *ProjectMutation) StagesIDs() (ids []string) {
	for id := range m.stages {
		ids = append(ids, id)
	}
	return
}

// ResetStages resets all changes to the "stages" edge.
func (m *ProjectMutation) ResetStages() {
	m.stages = nil
	m.clearedstages = false
	m.removedstages = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *ProjectMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *ProjectMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *ProjectMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *ProjectMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *ProjectMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *ProjectMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *ProjectMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddAgentIDs adds the "agents" edge to the Agent entity by ids.
func (m *ProjectMutation) AddAgentIDs(ids ...string) {
	if m.agents == nil {
		m.agents = make(map[string]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the Agent entity.
func (m *ProjectMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the Agent entity was cleared.
func (m *ProjectMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the Agent entity by IDs.
func (m *ProjectMutation) RemoveAgentIDs(ids ...string) {
	if m.removedagents == nil {
		m.removedagents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the Agent entity.
func (m *ProjectMutation) RemovedAgentsIDs() (ids []string) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *ProjectMutation) AgentsIDs() (ids []string) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *ProjectMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.project_name != nil {
		fields = append(fields, project.FieldProjectName)
	}
	if m.workflow_type != nil {
		fields = append(fields, project.FieldWorkflowType)
	}
	if m.requirement != nil {
		fields = append(fields, project.FieldRequirement)
	}
	if m.priority != nil {
		fields = append(fields, project.FieldPriority)
	}
	if m.tags != nil {
		fields = append(fields, project.FieldTags)
	}
	if m.user_id != nil {
		fields = append(fields, project.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, project.FieldStatus)
	}
	if m.control_status != nil {
		fields = append(fields, project.FieldControlStatus)
	}
	if m.current_stage != nil {
		fields = append(fields, project.FieldCurrentStage)
	}
	if m.progress != nil {
		fields = append(fields, project.FieldProgress)
	}
	if m.resume_from_stage != nil {
		fields = append(fields, project.FieldResumeFromStage)
	}
	if m.error_info != nil {
		fields = append(fields, project.FieldErrorInfo)
	}
	if m.aggregated_metrics != nil {
		fields = append(fields, project.FieldAggregatedMetrics)
	}
	if m.metadata != nil {
		fields = append(fields, project.FieldMetadata)
	}
	if m.pause_requested_at != nil {
		fields = append(fields, project.FieldPauseRequestedAt)
	}
	if m.stop_requested_at != nil {
		fields = append(fields, project.FieldStopRequestedAt)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, project.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, project.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldProjectName:
		return m.ProjectName()
	case project.FieldWorkflowType:
		return m.WorkflowType()
	case project.FieldRequirement:
		return m.Requirement()
	case project.FieldPriority:
		return m.Priority()
	case project.FieldTags:
		return m.Tags()
	case project.FieldUserID:
		return m.UserID()
	case project.FieldStatus:
		return m.Status()
	case project.FieldControlStatus:
		return m.ControlStatus()
	case project.FieldCurrentStage:
		return m.CurrentStage()
	case project.FieldProgress:
		return m.Progress()
	case project.FieldResumeFromStage:
		return m.ResumeFromStage()
	case project.FieldErrorInfo:
		return m.ErrorInfo()
	case project.FieldAggregatedMetrics:
		return m.AggregatedMetrics()
	case project.FieldMetadata:
		return m.Metadata()
	case project.FieldPauseRequestedAt:
		return m.PauseRequestedAt()
	case project.FieldStopRequestedAt:
		return m.StopRequestedAt()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	case project.FieldStartedAt:
		return m.StartedAt()
	case project.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldProjectName:
		return m.OldProjectName(ctx)
	case project.FieldWorkflowType:
		return m.OldWorkflowType(ctx)
	case project.FieldRequirement:
		return m.OldRequirement(ctx)
	case project.FieldPriority:
		return m.OldPriority(ctx)
	case project.FieldTags:
		return m.OldTags(ctx)
	case project.FieldUserID:
		return m.OldUserID(ctx)
	case project.FieldStatus:
		return m.OldStatus(ctx)
	case project.FieldControlStatus:
		return m.OldControlStatus(ctx)
	case project.FieldCurrentStage:
		return m.OldCurrentStage(ctx)
	case project.FieldProgress:
		return m.OldProgress(ctx)
	case project.FieldResumeFromStage:
		return m.OldResumeFromStage(ctx)
	case project.FieldErrorInfo:
		return m.OldErrorInfo(ctx)
	case project.FieldAggregatedMetrics:
		return m.OldAggregatedMetrics(ctx)
	case project.FieldMetadata:
		return m.OldMetadata(ctx)
	case project.FieldPauseRequestedAt:
		return m.OldPauseRequestedAt(ctx)
	case project.FieldStopRequestedAt:
		return m.OldStopRequestedAt(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case project.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case project.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldProjectName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectName(v)
		return nil
	case project.FieldWorkflowType:
		v, ok := value.(project.WorkflowType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowType(v)
		return nil
	case project.FieldRequirement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequirement(v)
		return nil
	case project.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case project.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case project.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case project.FieldStatus:
		v, ok := value.(project.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case project.FieldControlStatus:
		v, ok := value.(project.ControlStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetControlStatus(v)
		return nil
	case project.FieldCurrentStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStage(v)
		return nil
	case project.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case project.FieldResumeFromStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumeFromStage(v)
		return nil
	case project.FieldErrorInfo:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorInfo(v)
		return nil
	case project.FieldAggregatedMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAggregatedMetrics(v)
		return nil
	case project.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case project.FieldPauseRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPauseRequestedAt(v)
		return nil
	case project.FieldStopRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStopRequestedAt(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case project.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case project.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, project.FieldPriority)
	}
	if m.addprogress != nil {
		fields = append(fields, project.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case project.FieldPriority:
		return m.AddedPriority()
	case project.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	case project.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case project.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldProjectName) {
		fields = append(fields, project.FieldProjectName)
	}
	if m.FieldCleared(project.FieldTags) {
		fields = append(fields, project.FieldTags)
	}
	if m.FieldCleared(project.FieldUserID) {
		fields = append(fields, project.FieldUserID)
	}
	if m.FieldCleared(project.FieldCurrentStage) {
		fields = append(fields, project.FieldCurrentStage)
	}
	if m.FieldCleared(project.FieldResumeFromStage) {
		fields = append(fields, project.FieldResumeFromStage)
	}
	if m.FieldCleared(project.FieldErrorInfo) {
		fields = append(fields, project.FieldErrorInfo)
	}
	if m.FieldCleared(project.FieldAggregatedMetrics) {
		fields = append(fields, project.FieldAggregatedMetrics)
	}
	if m.FieldCleared(project.FieldMetadata) {
		fields = append(fields, project.FieldMetadata)
	}
	if m.FieldCleared(project.FieldPauseRequestedAt) {
		fields = append(fields, project.FieldPauseRequestedAt)
	}
	if m.FieldCleared(project.FieldStopRequestedAt) {
		fields = append(fields, project.FieldStopRequestedAt)
	}
	if m.FieldCleared(project.FieldStartedAt) {
		fields = append(fields, project.FieldStartedAt)
	}
	if m.FieldCleared(project.FieldCompletedAt) {
		fields = append(fields, project.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldProjectName:
		m.ClearProjectName()
		return nil
	case project.FieldTags:
		m.ClearTags()
		return nil
	case project.FieldUserID:
		m.ClearUserID()
		return nil
	case project.FieldCurrentStage:
		m.ClearCurrentStage()
		return nil
	case project.FieldResumeFromStage:
		m.ClearResumeFromStage()
		return nil
	case project.FieldErrorInfo:
		m.ClearErrorInfo()
		return nil
	case project.FieldAggregatedMetrics:
		m.ClearAggregatedMetrics()
		return nil
	case project.FieldMetadata:
		m.ClearMetadata()
		return nil
	case project.FieldPauseRequestedAt:
		m.ClearPauseRequestedAt()
		return nil
	case project.FieldStopRequestedAt:
		m.ClearStopRequestedAt()
		return nil
	case project.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case project.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldProjectName:
		m.ResetProjectName()
		return nil
	case project.FieldWorkflowType:
		m.ResetWorkflowType()
		return nil
	case project.FieldRequirement:
		m.ResetRequirement()
		return nil
	case project.FieldPriority:
		m.ResetPriority()
		return nil
	case project.FieldTags:
		m.ResetTags()
		return nil
	case project.FieldUserID:
		m.ResetUserID()
		return nil
	case project.FieldStatus:
		m.ResetStatus()
		return nil
	case project.FieldControlStatus:
		m.ResetControlStatus()
		return nil
	case project.FieldCurrentStage:
		m.ResetCurrentStage()
		return nil
	case project.FieldProgress:
		m.ResetProgress()
		return nil
	case project.FieldResumeFromStage:
		m.ResetResumeFromStage()
		return nil
	case project.FieldErrorInfo:
		m.ResetErrorInfo()
		return nil
	case project.FieldAggregatedMetrics:
		m.ResetAggregatedMetrics()
		return nil
	case project.FieldMetadata:
		m.ResetMetadata()
		return nil
	case project.FieldPauseRequestedAt:
		m.ResetPauseRequestedAt()
		return nil
	case project.FieldStopRequestedAt:
		m.ResetStopRequestedAt()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case project.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case project.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.stages != nil {
		edges = append(edges, project.EdgeStages)
	}
	if m.tasks != nil {
		edges = append(edges, project.EdgeTasks)
	}
	if m.agents != nil {
		edges = append(edges, project.EdgeAgents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeStages:
		ids := make([]ent.Value, 0, len(m.stages))
		for id := range m.stages {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedstages != nil {
		edges = append(edges, project.EdgeStages)
	}
	if m.removedtasks != nil {
		edges = append(edges, project.EdgeTasks)
	}
	if m.removedagents != nil {
		edges = append(edges, project.EdgeAgents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeStages:
		ids := make([]ent.Value, 0, len(m.removedstages))
		for id := range m.removedstages {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedstages {
		edges = append(edges, project.EdgeStages)
	}
	if m.clearedtasks {
		edges = append(edges, project.EdgeTasks)
	}
	if m.clearedagents {
		edges = append(edges, project.EdgeAgents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeStages:
		return m.clearedstages
	case project.EdgeTasks:
		return m.clearedtasks
	case project.EdgeAgents:
		return m.clearedagents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeStages:
		m.ResetStages()
		return nil
	case project.EdgeTasks:
		m.ResetTasks()
		return nil
	case project.EdgeAgents:
		m.ResetAgents()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// StageMutation represents an operation that mutates the Stage nodes in the graph.
type StageMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	stage_name              *string
	stage_number            *int
	addstage_number         *int
	display_name            *string
	agent_name              *string
	status                  *stage.Status
	duration_seconds        *float64
	addduration_seconds     *float64
	input_tokens            *int
	addinput_tokens         *int
	output_tokens           *int
	addoutput_tokens        *int
	tool_calls_count        *int
	addtool_calls_count     *int
	model_id                *string
	agent_output_content    *string
	agent_output_s3_ref     *string
	design_document_content *string
	design_document_format  *string
	generated_files         *[]map[string]interface{}
	appendgenerated_files   []map[string]interface{}
	error_message           *string
	doc_path                *string
	started_at              *time.Time
	completed_at            *time.Time
	clearedFields           map[string]struct{}
	project                 *string
	clearedproject          bool
	done                    bool
	oldValue                func(context.Context) (*Stage, error)
	predicates              []predicate.Stage
}

var _ ent.Mutation = (*StageMutation)(nil)

// stageOption allows management of the mutation configuration using functional options.
type stageOption func(*StageMutation)

// newStageMutation creates new mutation for the Stage entity.
func newStageMutation(c config, op Op, opts ...stageOption) *StageMutation {
	m := &StageMutation{
		config:        c,
		op:            op,
		typ:           TypeStage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageID sets the ID field of the mutation.
func withStageID(id string) stageOption {
	return func(m *StageMutation) {
		var (
			err   error
			once  sync.Once
			value *Stage
		)
		m.oldValue = func(ctx context.Context) (*Stage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Stage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStage sets the old Stage of the mutation.
func withStage(node *Stage) stageOption {
	return func(m *StageMutation) {
		m.oldValue = func(context.Context) (*Stage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Stage entities.
func (m *StageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Stage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *StageMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *StageMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *StageMutation) ResetProjectID() {
	m.project = nil
}

// SetStageName sets the "stage_name" field.
func (m *StageMutation) SetStageName(s string) {
	m.stage_name = &s
}

// StageName returns the value of the "stage_name" field in the mutation.
func (m *StageMutation) StageName() (r string, exists bool) {
	v := m.stage_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStageName returns the old "stage_name" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldStageName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageName: %w", err)
	}
	return oldValue.StageName, nil
}

// ResetStageName resets all changes to the "stage_name" field.
func (m *StageMutation) ResetStageName() {
	m.stage_name = nil
}

// SetStageNumber sets the "stage_number" field.
func (m *StageMutation) SetStageNumber(i int) {
	m.stage_number = &i
	m.addstage_number = nil
}

// StageNumber returns the value of the "stage_number" field in the mutation.
func (m *StageMutation) StageNumber() (r int, exists bool) {
	v := m.stage_number
	if v == nil {
		return
	}
	return *v, true
}

// OldStageNumber returns the old "stage_number" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldStageNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageNumber: %w", err)
	}
	return oldValue.StageNumber, nil
}

// AddStageNumber adds i to the "stage_number" field.
func (m *StageMutation) AddStageNumber(i int) {
	if m.addstage_number != nil {
		*m.addstage_number += i
	} else {
		m.addstage_number = &i
	}
}

// AddedStageNumber returns the value that was added to the "stage_number" field in this mutation.
func (m *StageMutation) AddedStageNumber() (r int, exists bool) {
	v := m.addstage_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetStageNumber resets all changes to the "stage_number" field.
func (m *StageMutation) ResetStageNumber() {
	m.stage_number = nil
	m.addstage_number = nil
}

// SetDisplayName sets the "display_name" field.
func (m *StageMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *StageMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *StageMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[stage.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *StageMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[stage.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *StageMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, stage.FieldDisplayName)
}

// SetAgentName sets the "agent_name" field.
func (m *StageMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *StageMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ClearAgentName clears the value of the "agent_name" field.
func (m *StageMutation) ClearAgentName() {
	m.agent_name = nil
	m.clearedFields[stage.FieldAgentName] = struct{}{}
}

// AgentNameCleared returns if the "agent_name" field was cleared in this mutation.
func (m *StageMutation) AgentNameCleared() bool {
	_, ok := m.clearedFields[stage.FieldAgentName]
	return ok
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *StageMutation) ResetAgentName() {
	m.agent_name = nil
	delete(m.clearedFields, stage.FieldAgentName)
}

// SetStatus sets the "status" field.
func (m *StageMutation) SetStatus(s stage.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StageMutation) Status() (r stage.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldStatus(ctx context.Context) (v stage.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StageMutation) ResetStatus() {
	m.status = nil
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *StageMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *StageMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldDurationSeconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *StageMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *StageMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *StageMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[stage.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *StageMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[stage.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *StageMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, stage.FieldDurationSeconds)
}

// SetInputTokens sets the "input_tokens" field.
func (m *StageMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *StageMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *StageMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *StageMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *StageMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *StageMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *StageMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *StageMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *StageMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *StageMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetToolCallsCount sets the "tool_calls_count" field.
func (m *StageMutation) SetToolCallsCount(i int) {
	m.tool_calls_count = &i
	m.addtool_calls_count = nil
}

// ToolCallsCount returns the value of the "tool_calls_count" field in the mutation.
func (m *StageMutation) ToolCallsCount() (r int, exists bool) {
	v := m.tool_calls_count
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCallsCount returns the old "tool_calls_count" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldToolCallsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCallsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCallsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCallsCount: %w", err)
	}
	return oldValue.ToolCallsCount, nil
}

// AddToolCallsCount adds i to the "tool_calls_count" field.
func (m *StageMutation) AddToolCallsCount(i int) {
	if m.addtool_calls_count != nil {
		*m.addtool_calls_count += i
	} else {
		m.addtool_calls_count = &i
	}
}

// AddedToolCallsCount returns the value that was added to the "tool_calls_count" field in this mutation.
func (m *StageMutation) AddedToolCallsCount() (r int, exists bool) {
	v := m.addtool_calls_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetToolCallsCount resets all changes to the "tool_calls_count" field.
func (m *StageMutation) ResetToolCallsCount() {
	m.tool_calls_count = nil
	m.addtool_calls_count = nil
}

// SetModelID sets the "model_id" field.
func (m *StageMutation) SetModelID(s string) {
	m.model_id = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *StageMutation) ModelID() (r string, exists bool) {
	v := m.model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldModelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ClearModelID clears the value of the "model_id" field.
func (m *StageMutation) ClearModelID() {
	m.model_id = nil
	m.clearedFields[stage.FieldModelID] = struct{}{}
}

// ModelIDCleared returns if the "model_id" field was cleared in this mutation.
func (m *StageMutation) ModelIDCleared() bool {
	_, ok := m.clearedFields[stage.FieldModelID]
	return ok
}

// ResetModelID resets all changes to the "model_id" field.
func (m *StageMutation) ResetModelID() {
	m.model_id = nil
	delete(m.clearedFields, stage.FieldModelID)
}

// SetAgentOutputContent sets the "agent_output_content" field.
func (m *StageMutation) SetAgentOutputContent(s string) {
	m.agent_output_content = &s
}

// AgentOutputContent returns the value of the "agent_output_content" field in the mutation.
func (m *StageMutation) AgentOutputContent() (r string, exists bool) {
	v := m.agent_output_content
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentOutputContent returns the old "agent_output_content" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldAgentOutputContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentOutputContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentOutputContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentOutputContent: %w", err)
	}
	return oldValue.AgentOutputContent, nil
}

// ClearAgentOutputContent clears the value of the "agent_output_content" field.
func (m *StageMutation) ClearAgentOutputContent() {
	m.agent_output_content = nil
	m.clearedFields[stage.FieldAgentOutputContent] = struct{}{}
}

// AgentOutputContentCleared returns if the "agent_output_content" field was cleared in this mutation.
func (m *StageMutation) AgentOutputContentCleared() bool {
	_, ok := m.clearedFields[stage.FieldAgentOutputContent]
	return ok
}

// ResetAgentOutputContent resets all changes to the "agent_output_content" field.
func (m *StageMutation) ResetAgentOutputContent() {
	m.agent_output_content = nil
	delete(m.clearedFields, stage.FieldAgentOutputContent)
}

// SetAgentOutputS3Ref sets the "agent_output_s3_ref" field.
func (m *StageMutation) SetAgentOutputS3Ref(s string) {
	m.agent_output_s3_ref = &s
}

// AgentOutputS3Ref returns the value of the "agent_output_s3_ref" field in the mutation.
func (m *StageMutation) AgentOutputS3Ref() (r string, exists bool) {
	v := m.agent_output_s3_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentOutputS3Ref returns the old "agent_output_s3_ref" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldAgentOutputS3Ref(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentOutputS3Ref is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentOutputS3Ref requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentOutputS3Ref: %w", err)
	}
	return oldValue.AgentOutputS3Ref, nil
}

// ClearAgentOutputS3Ref clears the value of the "agent_output_s3_ref" field.
func (m *StageMutation) ClearAgentOutputS3Ref() {
	m.agent_output_s3_ref = nil
	m.clearedFields[stage.FieldAgentOutputS3Ref] = struct{}{}
}

// AgentOutputS3RefCleared returns if the "agent_output_s3_ref" field was cleared in this mutation.
func (m *StageMutation) AgentOutputS3RefCleared() bool {
	_, ok := m.clearedFields[stage.FieldAgentOutputS3Ref]
	return ok
}

// ResetAgentOutputS3Ref resets all changes to the "agent_output_s3_ref" field.
func (m *StageMutation) ResetAgentOutputS3Ref() {
	m.agent_output_s3_ref = nil
	delete(m.clearedFields, stage.FieldAgentOutputS3Ref)
}

// SetDesignDocumentContent sets the "design_document_content" field.
func (m *StageMutation) SetDesignDocumentContent(s string) {
	m.design_document_content = &s
}

// DesignDocumentContent returns the value of the "design_document_content" field in the mutation.
func (m *StageMutation) DesignDocumentContent() (r string, exists bool) {
	v := m.design_document_content
	if v == nil {
		return
	}
	return *v, true
}

// OldDesignDocumentContent returns the old "design_document_content" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldDesignDocumentContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDesignDocumentContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDesignDocumentContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDesignDocumentContent: %w", err)
	}
	return oldValue.DesignDocumentContent, nil
}

// ClearDesignDocumentContent clears the value of the "design_document_content" field.
func (m *StageMutation) ClearDesignDocumentContent() {
	m.design_document_content = nil
	m.clearedFields[stage.FieldDesignDocumentContent] = struct{}{}
}

// DesignDocumentContentCleared returns if the "design_document_content" field was cleared in this mutation.
func (m *StageMutation) DesignDocumentContentCleared() bool {
	_, ok := m.clearedFields[stage.FieldDesignDocumentContent]
	return ok
}

// ResetDesignDocumentContent resets all changes to the "design_document_content" field.
func (m *StageMutation) ResetDesignDocumentContent() {
	m.design_document_content = nil
	delete(m.clearedFields, stage.FieldDesignDocumentContent)
}

// SetDesignDocumentFormat sets the "design_document_format" field.
func (m *StageMutation) SetDesignDocumentFormat(s string) {
	m.design_document_format = &s
}

// DesignDocumentFormat returns the value of the "design_document_format" field in the mutation.
func (m *StageMutation) DesignDocumentFormat() (r string, exists bool) {
	v := m.design_document_format
	if v == nil {
		return
	}
	return *v, true
}

// OldDesignDocumentFormat returns the old "design_document_format" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldDesignDocumentFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDesignDocumentFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDesignDocumentFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDesignDocumentFormat: %w", err)
	}
	return oldValue.DesignDocumentFormat, nil
}

// ClearDesignDocumentFormat clears the value of the "design_document_format" field.
func (m *StageMutation) ClearDesignDocumentFormat() {
	m.design_document_format = nil
	m.clearedFields[stage.FieldDesignDocumentFormat] = struct{}{}
}

// DesignDocumentFormatCleared returns if the "design_document_format" field was cleared in this mutation.
func (m *StageMutation) DesignDocumentFormatCleared() bool {
	_, ok := m.clearedFields[stage.FieldDesignDocumentFormat]
	return ok
}

// ResetDesignDocumentFormat resets all changes to the "design_document_format" field.
func (m *StageMutation) ResetDesignDocumentFormat() {
	m.design_document_format = nil
	delete(m.clearedFields, stage.FieldDesignDocumentFormat)
}

// SetGeneratedFiles sets the "generated_files" field.
func (m *StageMutation) SetGeneratedFiles(value []map[string]interface{}) {
	m.generated_files = &value
	m.appendgenerated_files = nil
}

// GeneratedFiles returns the value of the "generated_files" field in the mutation.
func (m *StageMutation) GeneratedFiles() (r []map[string]interface{}, exists bool) {
	v := m.generated_files
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedFiles returns the old "generated_files" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldGeneratedFiles(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedFiles: %w", err)
	}
	return oldValue.GeneratedFiles, nil
}

// AppendGeneratedFiles adds value to the "generated_files" field.
func (m *StageMutation) AppendGeneratedFiles(value []map[string]interface{}) {
	m.appendgenerated_files = append(m.appendgenerated_files, value...)
}

// AppendedGeneratedFiles returns the list of values that were appended to the "generated_files" field in this mutation.
func (m *StageMutation) AppendedGeneratedFiles() ([]map[string]interface{}, bool) {
	if len(m.appendgenerated_files) == 0 {
		return nil, false
	}
	return m.appendgenerated_files, true
}

// ClearGeneratedFiles clears the value of the "generated_files" field.
func (m *StageMutation) ClearGeneratedFiles() {
	m.generated_files = nil
	m.appendgenerated_files = nil
	m.clearedFields[stage.FieldGeneratedFiles] = struct{}{}
}

// GeneratedFilesCleared returns if the "generated_files" field was cleared in this mutation.
func (m *StageMutation) GeneratedFilesCleared() bool {
	_, ok := m.clearedFields[stage.FieldGeneratedFiles]
	return ok
}

// ResetGeneratedFiles resets all changes to the "generated_files" field.
func (m *StageMutation) ResetGeneratedFiles() {
	m.generated_files = nil
	m.appendgenerated_files = nil
	delete(m.clearedFields, stage.FieldGeneratedFiles)
}

// SetErrorMessage sets the "error_message" field.
func (m *StageMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StageMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StageMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[stage.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StageMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[stage.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StageMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, stage.FieldErrorMessage)
}

// SetDocPath sets the "doc_path" field.
func (m *StageMutation) SetDocPath(s string) {
	m.doc_path = &s
}

// DocPath returns the value of the "doc_path" field in the mutation.
func (m *StageMutation) DocPath() (r string, exists bool) {
	v := m.doc_path
	if v == nil {
		return
	}
	return *v, true
}

// OldDocPath returns the old "doc_path" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldDocPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocPath: %w", err)
	}
	return oldValue.DocPath, nil
}

// ClearDocPath clears the value of the "doc_path" field.
func (m *StageMutation) ClearDocPath() {
	m.doc_path = nil
	m.clearedFields[stage.FieldDocPath] = struct{}{}
}

// DocPathCleared returns if the "doc_path" field was cleared in this mutation.
func (m *StageMutation) DocPathCleared() bool {
	_, ok := m.clearedFields[stage.FieldDocPath]
	return ok
}

// ResetDocPath resets all changes to the "doc_path" field.
func (m *StageMutation) ResetDocPath() {
	m.doc_path = nil
	delete(m.clearedFields, stage.FieldDocPath)
}

// SetStartedAt sets the "started_at" field.
func (m *StageMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StageMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StageMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[stage.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StageMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[stage.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StageMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, stage.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StageMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StageMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StageMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[stage.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StageMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[stage.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StageMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, stage.FieldCompletedAt)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *StageMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[stage.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *StageMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *StageMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *StageMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the StageMutation builder.
func (m *StageMutation) Where(ps ...predicate.Stage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Stage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Stage).
func (m *StageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.project != nil {
		fields = append(fields, stage.FieldProjectID)
	}
	if m.stage_name != nil {
		fields = append(fields, stage.FieldStageName)
	}
	if m.stage_number != nil {
		fields = append(fields, stage.FieldStageNumber)
	}
	if m.display_name != nil {
		fields = append(fields, stage.FieldDisplayName)
	}
	if m.agent_name != nil {
		fields = append(fields, stage.FieldAgentName)
	}
	if m.status != nil {
		fields = append(fields, stage.FieldStatus)
	}
	if m.duration_seconds != nil {
		fields = append(fields, stage.FieldDurationSeconds)
	}
	if m.input_tokens != nil {
		fields = append(fields, stage.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, stage.FieldOutputTokens)
	}
	if m.tool_calls_count != nil {
		fields = append(fields, stage.FieldToolCallsCount)
	}
	if m.model_id != nil {
		fields = append(fields, stage.FieldModelID)
	}
	if m.agent_output_content != nil {
		fields = append(fields, stage.FieldAgentOutputContent)
	}
	if m.agent_output_s3_ref != nil {
		fields = append(fields, stage.FieldAgentOutputS3Ref)
	}
	if m.design_document_content != nil {
		fields = append(fields, stage.FieldDesignDocumentContent)
	}
	if m.design_document_format != nil {
		fields = append(fields, stage.FieldDesignDocumentFormat)
	}
	if m.generated_files != nil {
		fields = append(fields, stage.FieldGeneratedFiles)
	}
	if m.error_message != nil {
		fields = append(fields, stage.FieldErrorMessage)
	}
	if m.doc_path != nil {
		fields = append(fields, stage.FieldDocPath)
	}
	if m.started_at != nil {
		fields = append(fields, stage.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, stage.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stage.FieldProjectID:
		return m.ProjectID()
	case stage.FieldStageName:
		return m.StageName()
	case stage.FieldStageNumber:
		return m.StageNumber()
	case stage.FieldDisplayName:
		return m.DisplayName()
	case stage.FieldAgentName:
		return m.AgentName()
	case stage.FieldStatus:
		return m.Status()
	case stage.FieldDurationSeconds:
		return m.DurationSeconds()
	case stage.FieldInputTokens:
		return m.InputTokens()
	case stage.FieldOutputTokens:
		return m.OutputTokens()
	case stage.FieldToolCallsCount:
		return m.ToolCallsCount()
	case stage.FieldModelID:
		return m.ModelID()
	case stage.FieldAgentOutputContent:
		return m.AgentOutputContent()
	case stage.FieldAgentOutputS3Ref:
		return m.AgentOutputS3Ref()
	case stage.FieldDesignDocumentContent:
		return m.DesignDocumentContent()
	case stage.FieldDesignDocumentFormat:
		return m.DesignDocumentFormat()
	case stage.FieldGeneratedFiles:
		return m.GeneratedFiles()
	case stage.FieldErrorMessage:
		return m.ErrorMessage()
	case stage.FieldDocPath:
		return m.DocPath()
	case stage.FieldStartedAt:
		return m.StartedAt()
	case stage.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stage.FieldProjectID:
		return m.OldProjectID(ctx)
	case stage.FieldStageName:
		return m.OldStageName(ctx)
	case stage.FieldStageNumber:
		return m.OldStageNumber(ctx)
	case stage.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case stage.FieldAgentName:
		return m.OldAgentName(ctx)
	case stage.FieldStatus:
		return m.OldStatus(ctx)
	case stage.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case stage.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case stage.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case stage.FieldToolCallsCount:
		return m.OldToolCallsCount(ctx)
	case stage.FieldModelID:
		return m.OldModelID(ctx)
	case stage.FieldAgentOutputContent:
		return m.OldAgentOutputContent(ctx)
	case stage.FieldAgentOutputS3Ref:
		return m.OldAgentOutputS3Ref(ctx)
	case stage.FieldDesignDocumentContent:
		return m.OldDesignDocumentContent(ctx)
	case stage.FieldDesignDocumentFormat:
		return m.OldDesignDocumentFormat(ctx)
	case stage.FieldGeneratedFiles:
		return m.OldGeneratedFiles(ctx)
	case stage.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case stage.FieldDocPath:
		return m.OldDocPath(ctx)
	case stage.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case stage.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Stage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stage.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case stage.FieldStageName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageName(v)
		return nil
	case stage.FieldStageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageNumber(v)
		return nil
	case stage.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case stage.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case stage.FieldStatus:
		v, ok := value.(stage.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stage.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case stage.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case stage.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case stage.FieldToolCallsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCallsCount(v)
		return nil
	case stage.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case stage.FieldAgentOutputContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentOutputContent(v)
		return nil
	case stage.FieldAgentOutputS3Ref:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentOutputS3Ref(v)
		return nil
	case stage.FieldDesignDocumentContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDesignDocumentContent(v)
		return nil
	case stage.FieldDesignDocumentFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDesignDocumentFormat(v)
		return nil
	case stage.FieldGeneratedFiles:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedFiles(v)
		return nil
	case stage.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case stage.FieldDocPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocPath(v)
		return nil
	case stage.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case stage.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Stage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageMutation) AddedFields() []string {
	var fields []string
	if m.addstage_number != nil {
		fields = append(fields, stage.FieldStageNumber)
	}
	if m.addduration_seconds != nil {
		fields = append(fields, stage.FieldDurationSeconds)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, stage.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, stage.FieldOutputTokens)
	}
	if m.addtool_calls_count != nil {
		fields = append(fields, stage.FieldToolCallsCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stage.FieldStageNumber:
		return m.AddedStageNumber()
	case stage.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	case stage.FieldInputTokens:
		return m.AddedInputTokens()
	case stage.FieldOutputTokens:
		return m.AddedOutputTokens()
	case stage.FieldToolCallsCount:
		return m.AddedToolCallsCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stage.FieldStageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStageNumber(v)
		return nil
	case stage.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	case stage.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case stage.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case stage.FieldToolCallsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddToolCallsCount(v)
		return nil
	}
	return fmt.Errorf("unknown Stage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stage.FieldDisplayName) {
		fields = append(fields, stage.FieldDisplayName)
	}
	if m.FieldCleared(stage.FieldAgentName) {
		fields = append(fields, stage.FieldAgentName)
	}
	if m.FieldCleared(stage.FieldDurationSeconds) {
		fields = append(fields, stage.FieldDurationSeconds)
	}
	if m.FieldCleared(stage.FieldModelID) {
		fields = append(fields, stage.FieldModelID)
	}
	if m.FieldCleared(stage.FieldAgentOutputContent) {
		fields = append(fields, stage.FieldAgentOutputContent)
	}
	if m.FieldCleared(stage.FieldAgentOutputS3Ref) {
		fields = append(fields, stage.FieldAgentOutputS3Ref)
	}
	if m.FieldCleared(stage.FieldDesignDocumentContent) {
		fields = append(fields, stage.FieldDesignDocumentContent)
	}
	if m.FieldCleared(stage.FieldDesignDocumentFormat) {
		fields = append(fields, stage.FieldDesignDocumentFormat)
	}
	if m.FieldCleared(stage.FieldGeneratedFiles) {
		fields = append(fields, stage.FieldGeneratedFiles)
	}
	if m.FieldCleared(stage.FieldErrorMessage) {
		fields = append(fields, stage.FieldErrorMessage)
	}
	if m.FieldCleared(stage.FieldDocPath) {
		fields = append(fields, stage.FieldDocPath)
	}
	if m.FieldCleared(stage.FieldStartedAt) {
		fields = append(fields, stage.FieldStartedAt)
	}
	if m.FieldCleared(stage.FieldCompletedAt) {
		fields = append(fields, stage.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageMutation) ClearField(name string) error {
	switch name {
	case stage.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case stage.FieldAgentName:
		m.ClearAgentName()
		return nil
	case stage.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	case stage.FieldModelID:
		m.ClearModelID()
		return nil
	case stage.FieldAgentOutputContent:
		m.ClearAgentOutputContent()
		return nil
	case stage.FieldAgentOutputS3Ref:
		m.ClearAgentOutputS3Ref()
		return nil
	case stage.FieldDesignDocumentContent:
		m.ClearDesignDocumentContent()
		return nil
	case stage.FieldDesignDocumentFormat:
		m.ClearDesignDocumentFormat()
		return nil
	case stage.FieldGeneratedFiles:
		m.ClearGeneratedFiles()
		return nil
	case stage.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case stage.FieldDocPath:
		m.ClearDocPath()
		return nil
	case stage.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case stage.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Stage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageMutation) ResetField(name string) error {
	switch name {
	case stage.FieldProjectID:
		m.ResetProjectID()
		return nil
	case stage.FieldStageName:
		m.ResetStageName()
		return nil
	case stage.FieldStageNumber:
		m.ResetStageNumber()
		return nil
	case stage.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case stage.FieldAgentName:
		m.ResetAgentName()
		return nil
	case stage.FieldStatus:
		m.ResetStatus()
		return nil
	case stage.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case stage.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case stage.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case stage.FieldToolCallsCount:
		m.ResetToolCallsCount()
		return nil
	case stage.FieldModelID:
		m.ResetModelID()
		return nil
	case stage.FieldAgentOutputContent:
		m.ResetAgentOutputContent()
		return nil
	case stage.FieldAgentOutputS3Ref:
		m.ResetAgentOutputS3Ref()
		return nil
	case stage.FieldDesignDocumentContent:
		m.ResetDesignDocumentContent()
		return nil
	case stage.FieldDesignDocumentFormat:
		m.ResetDesignDocumentFormat()
		return nil
	case stage.FieldGeneratedFiles:
		m.ResetGeneratedFiles()
		return nil
	case stage.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case stage.FieldDocPath:
		m.ResetDocPath()
		return nil
	case stage.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case stage.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Stage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, stage.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stage.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, stage.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageMutation) EdgeCleared(name string) bool {
	switch name {
	case stage.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageMutation) ClearEdge(name string) error {
	switch name {
	case stage.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Stage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageMutation) ResetEdge(name string) error {
	switch name {
	case stage.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown Stage edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op               Op
	typ              string
	id               *string
	task_type        *task.TaskType
	status           *task.Status
	priority         *int
	addpriority      *int
	payload          *map[string]interface{}
	result           *string
	error_message    *string
	retry_count      *int
	addretry_count   *int
	worker_id        *string
	lease_expires_at *time.Time
	created_at       *time.Time
	started_at       *time.Time
	completed_at     *time.Time
	clearedFields    map[string]struct{}
	project          *string
	clearedproject   bool
	done             bool
	oldValue         func(context.Context) (*Task, error)
	predicates       []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *TaskMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TaskMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TaskMutation) ResetProjectID() {
	m.project = nil
}

// SetTaskType sets the "task_type" field.
func (m *TaskMutation) SetTaskType(tt task.TaskType) {
	m.task_type = &tt
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *TaskMutation) TaskType() (r task.TaskType, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTaskType(ctx context.Context) (v task.TaskType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *TaskMutation) ResetTaskType() {
	m.task_type = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *TaskMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *TaskMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetPayload sets the "payload" field.
func (m *TaskMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *TaskMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *TaskMutation) ResetPayload() {
	m.payload = nil
}

// SetResult sets the "result" field.
func (m *TaskMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *TaskMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResult(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *TaskMutation) ClearResult() {
	m.result = nil
	m.clearedFields[task.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *TaskMutation) ResultCleared() bool {
	_, ok := m.clearedFields[task.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *TaskMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, task.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetRetryCount sets the "retry_count" field.
func (m *TaskMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *TaskMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *TaskMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *TaskMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *TaskMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetWorkerID sets the "worker_id" field.
func (m *TaskMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *TaskMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *TaskMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[task.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *TaskMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[task.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *TaskMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, task.FieldWorkerID)
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *TaskMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *TaskMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLeaseExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (m *TaskMutation) ClearLeaseExpiresAt() {
	m.lease_expires_at = nil
	m.clearedFields[task.FieldLeaseExpiresAt] = struct{}{}
}

// LeaseExpiresAtCleared returns if the "lease_expires_at" field was cleared in this mutation.
func (m *TaskMutation) LeaseExpiresAtCleared() bool {
	_, ok := m.clearedFields[task.FieldLeaseExpiresAt]
	return ok
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *TaskMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
	delete(m.clearedFields, task.FieldLeaseExpiresAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *TaskMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[task.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *TaskMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *TaskMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.project != nil {
		fields = append(fields, task.FieldProjectID)
	}
	if m.task_type != nil {
		fields = append(fields, task.FieldTaskType)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.payload != nil {
		fields = append(fields, task.FieldPayload)
	}
	if m.result != nil {
		fields = append(fields, task.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.retry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	if m.worker_id != nil {
		fields = append(fields, task.FieldWorkerID)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, task.FieldLeaseExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldProjectID:
		return m.ProjectID()
	case task.FieldTaskType:
		return m.TaskType()
	case task.FieldStatus:
		return m.Status()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldPayload:
		return m.Payload()
	case task.FieldResult:
		return m.Result()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldRetryCount:
		return m.RetryCount()
	case task.FieldWorkerID:
		return m.WorkerID()
	case task.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldProjectID:
		return m.OldProjectID(ctx)
	case task.FieldTaskType:
		return m.OldTaskType(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldPayload:
		return m.OldPayload(ctx)
	case task.FieldResult:
		return m.OldResult(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case task.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case task.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case task.FieldTaskType:
		v, ok := value.(task.TaskType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case task.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case task.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case task.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.addretry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldPriority:
		return m.AddedPriority()
	case task.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldResult) {
		fields = append(fields, task.FieldResult)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.FieldCleared(task.FieldWorkerID) {
		fields = append(fields, task.FieldWorkerID)
	}
	if m.FieldCleared(task.FieldLeaseExpiresAt) {
		fields = append(fields, task.FieldLeaseExpiresAt)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldResult:
		m.ClearResult()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case task.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case task.FieldLeaseExpiresAt:
		m.ClearLeaseExpiresAt()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldProjectID:
		m.ResetProjectID()
		return nil
	case task.FieldTaskType:
		m.ResetTaskType()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldPayload:
		m.ResetPayload()
		return nil
	case task.FieldResult:
		m.ResetResult()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case task.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case task.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, task.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, task.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}
