// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nexus-ai/nexus/ent/agent"
	"github.com/nexus-ai/nexus/ent/project"
	"github.com/nexus-ai/nexus/ent/schema"
	"github.com/nexus-ai/nexus/ent/stage"
	"github.com/nexus-ai/nexus/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescInvocationCount is the schema descriptor for invocation_count field.
	agentDescInvocationCount := agentFields[10].Descriptor()
	// agent.DefaultInvocationCount holds the default value on creation for the invocation_count field.
	agent.DefaultInvocationCount = agentDescInvocationCount.Default.(int64)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[11].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[12].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescPriority is the schema descriptor for priority field.
	projectDescPriority := projectFields[4].Descriptor()
	// project.DefaultPriority holds the default value on creation for the priority field.
	project.DefaultPriority = projectDescPriority.Default.(int)
	// projectDescProgress is the schema descriptor for progress field.
	projectDescProgress := projectFields[10].Descriptor()
	// project.DefaultProgress holds the default value on creation for the progress field.
	project.DefaultProgress = projectDescProgress.Default.(int)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[17].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[18].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	stageFields := schema.Stage{}.Fields()
	_ = stageFields
	// stageDescInputTokens is the schema descriptor for input_tokens field.
	stageDescInputTokens := stageFields[8].Descriptor()
	// stage.DefaultInputTokens holds the default value on creation for the input_tokens field.
	stage.DefaultInputTokens = stageDescInputTokens.Default.(int)
	// stageDescOutputTokens is the schema descriptor for output_tokens field.
	stageDescOutputTokens := stageFields[9].Descriptor()
	// stage.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	stage.DefaultOutputTokens = stageDescOutputTokens.Default.(int)
	// stageDescToolCallsCount is the schema descriptor for tool_calls_count field.
	stageDescToolCallsCount := stageFields[10].Descriptor()
	// stage.DefaultToolCallsCount holds the default value on creation for the tool_calls_count field.
	stage.DefaultToolCallsCount = stageDescToolCallsCount.Default.(int)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescPriority is the schema descriptor for priority field.
	taskDescPriority := taskFields[4].Descriptor()
	// task.DefaultPriority holds the default value on creation for the priority field.
	task.DefaultPriority = taskDescPriority.Default.(int)
	// taskDescRetryCount is the schema descriptor for retry_count field.
	taskDescRetryCount := taskFields[8].Descriptor()
	// task.DefaultRetryCount holds the default value on creation for the retry_count field.
	task.DefaultRetryCount = taskDescRetryCount.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[11].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
}
