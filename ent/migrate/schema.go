// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "offline"}, Default: "offline"},
		{Name: "deployment_status", Type: field.TypeEnum, Enums: []string{"deploying", "deployed", "failed"}, Default: "deploying"},
		{Name: "deployment_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "runtime_id", Type: field.TypeString, Nullable: true},
		{Name: "runtime_endpoint", Type: field.TypeString, Nullable: true},
		{Name: "capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "invocation_count", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "last_deployed_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agents_projects_agents",
				Columns:    []*schema.Column{AgentsColumns[13]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agent_project_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[13]},
			},
			{
				Name:    "agent_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[3]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "project_name", Type: field.TypeString, Nullable: true},
		{Name: "workflow_type", Type: field.TypeEnum, Enums: []string{"agent_build", "agent_update", "tool_build"}},
		{Name: "requirement", Type: field.TypeString, Size: 2147483647},
		{Name: "priority", Type: field.TypeInt, Default: 3},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "queued", "building", "completed", "failed", "paused", "cancelled"}, Default: "pending"},
		{Name: "control_status", Type: field.TypeEnum, Enums: []string{"running", "paused", "stopped", "cancelled"}, Default: "running"},
		{Name: "current_stage", Type: field.TypeString, Nullable: true},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "resume_from_stage", Type: field.TypeString, Nullable: true},
		{Name: "error_info", Type: field.TypeJSON, Nullable: true},
		{Name: "aggregated_metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "pause_requested_at", Type: field.TypeTime, Nullable: true},
		{Name: "stop_requested_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_status",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[7]},
			},
			{
				Name:    "project_workflow_type",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[2]},
			},
			{
				Name:    "project_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[6]},
			},
			{
				Name:    "project_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[7], ProjectsColumns[17]},
			},
		},
	}
	// StagesColumns holds the columns for the "stages" table.
	StagesColumns = []*schema.Column{
		{Name: "stage_id", Type: field.TypeString, Unique: true},
		{Name: "stage_name", Type: field.TypeString},
		{Name: "stage_number", Type: field.TypeInt},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "agent_name", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "duration_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "tool_calls_count", Type: field.TypeInt, Default: 0},
		{Name: "model_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_output_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "agent_output_s3_ref", Type: field.TypeString, Nullable: true},
		{Name: "design_document_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "design_document_format", Type: field.TypeString, Nullable: true},
		{Name: "generated_files", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "doc_path", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// StagesTable holds the schema information for the "stages" table.
	StagesTable = &schema.Table{
		Name:       "stages",
		Columns:    StagesColumns,
		PrimaryKey: []*schema.Column{StagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stages_projects_stages",
				Columns:    []*schema.Column{StagesColumns[20]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stage_project_id_stage_name",
				Unique:  true,
				Columns: []*schema.Column{StagesColumns[20], StagesColumns[1]},
			},
			{
				Name:    "stage_project_id_stage_number",
				Unique:  true,
				Columns: []*schema.Column{StagesColumns[20], StagesColumns[2]},
			},
			{
				Name:    "stage_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{StagesColumns[20], StagesColumns[5]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "task_type", Type: field.TypeEnum, Enums: []string{"build_agent", "update_agent", "build_tool", "deploy_agent"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "queued", "running", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "priority", Type: field.TypeInt, Default: 3},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_projects_tasks",
				Columns:    []*schema.Column{TasksColumns[13]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_project_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[13]},
			},
			{
				Name:    "task_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2], TasksColumns[3], TasksColumns[10]},
			},
			{
				Name:    "task_status_lease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2], TasksColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		ProjectsTable,
		StagesTable,
		TasksTable,
	}
)

func init() {
	AgentsTable.ForeignKeys[0].RefTable = ProjectsTable
	StagesTable.ForeignKeys[0].RefTable = ProjectsTable
	TasksTable.ForeignKeys[0].RefTable = ProjectsTable
}
