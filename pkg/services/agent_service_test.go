package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/ent/project"
	"github.com/nexus-ai/nexus/pkg/models"
	testdb "github.com/nexus-ai/nexus/test/database"
)

func TestAgentService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	p := seedProject(t, client, project.WorkflowTypeAgentBuild, project.StatusCompleted)

	created, err := service.CreateAgent(ctx, CreateAgentRequest{
		Name:         "pricing-agent",
		Description:  "Answers AWS pricing questions",
		ProjectID:    p.ID,
		Capabilities: []string{"pricing_lookup", "cost_estimation"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusOffline, created.Status)
	assert.Equal(t, models.DeploymentStatusDeploying, created.DeploymentStatus)
	assert.Equal(t, []string{"pricing_lookup", "cost_estimation"}, created.Capabilities)

	t.Run("mark deployed", func(t *testing.T) {
		deployed, err := service.MarkDeployed(ctx, created.ID, "rt-12345", "https://runtime.example.com/agents/rt-12345")
		require.NoError(t, err)
		assert.Equal(t, models.AgentStatusRunning, deployed.Status)
		assert.Equal(t, models.DeploymentStatusDeployed, deployed.DeploymentStatus)
		assert.Equal(t, "rt-12345", deployed.RuntimeID)
		assert.NotNil(t, deployed.LastDeployedAt)
		assert.Empty(t, deployed.DeploymentError)
	})

	t.Run("mark deploy failed rolls back to offline", func(t *testing.T) {
		require.NoError(t, service.MarkDeploying(ctx, created.ID))
		require.NoError(t, service.MarkDeployFailed(ctx, created.ID, "runtime rejected artifact"))

		loaded, err := service.GetAgent(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, models.AgentStatusOffline, loaded.Status)
		assert.Equal(t, models.DeploymentStatusFailed, loaded.DeploymentStatus)
		assert.Equal(t, "runtime rejected artifact", loaded.DeploymentError)
	})

	t.Run("find by project returns the newest record", func(t *testing.T) {
		found, err := service.FindByProject(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)

		_, err = service.FindByProject(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update capabilities", func(t *testing.T) {
		desc := "Answers AWS pricing and spot questions"
		updated, err := service.UpdateAgent(ctx, created.ID, UpdateAgentRequest{
			Description:  &desc,
			Capabilities: []string{"pricing_lookup", "spot_pricing"},
		})
		require.NoError(t, err)
		assert.Equal(t, desc, updated.Description)
		assert.Equal(t, []string{"pricing_lookup", "spot_pricing"}, updated.Capabilities)
	})
}

func TestAgentService_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	_, err := service.CreateAgent(ctx, CreateAgentRequest{ProjectID: "p"})
	assert.True(t, IsValidationError(err))
	_, err = service.CreateAgent(ctx, CreateAgentRequest{Name: "a"})
	assert.True(t, IsValidationError(err))

	_, err = service.GetAgent(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
	err = service.MarkDeployFailed(ctx, uuid.New().String(), "boom")
	assert.ErrorIs(t, err, ErrNotFound)
}
