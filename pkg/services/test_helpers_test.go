package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/ent"
	"github.com/nexus-ai/nexus/ent/project"
	"github.com/nexus-ai/nexus/ent/stage"
	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/database"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	return cfg
}

// seedProject inserts a bare project row for tests that exercise a
// single service without going through WorkflowService.
func seedProject(t *testing.T, client *database.Client, wt project.WorkflowType, status project.Status) *ent.Project {
	t.Helper()
	p, err := client.Project.Create().
		SetID(uuid.New().String()).
		SetProjectName("pricing-agent").
		SetWorkflowType(wt).
		SetRequirement("Build an AWS pricing agent").
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func seedStage(t *testing.T, client *database.Client, projectID, name string, number int, status stage.Status) *ent.Stage {
	t.Helper()
	st, err := client.Stage.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetStageName(name).
		SetStageNumber(number).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return st
}
