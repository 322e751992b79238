package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/ent"
	"github.com/nexus-ai/nexus/ent/project"
	"github.com/nexus-ai/nexus/ent/task"
	"github.com/nexus-ai/nexus/pkg/blob"
	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/database"
	"github.com/nexus-ai/nexus/pkg/filesync"
	"github.com/nexus-ai/nexus/pkg/services"
	testdb "github.com/nexus-ai/nexus/test/database"
)

// nopStore satisfies blob.Store; the retention sweeps never touch the
// blob store.
type nopStore struct{}

func (nopStore) Put(context.Context, string, []byte, map[string]string) (string, error) {
	return "", nil
}
func (nopStore) Get(context.Context, string) ([]byte, error)    { return nil, blob.ErrNotFound }
func (nopStore) GetKey(context.Context, string) ([]byte, error) { return nil, blob.ErrNotFound }
func (nopStore) List(context.Context, string) ([]blob.ObjectInfo, error) {
	return nil, nil
}
func (nopStore) Head(context.Context, string) (*blob.ObjectInfo, error) {
	return nil, blob.ErrNotFound
}

func newService(t *testing.T, client *database.Client, root string, cfg *config.RetentionConfig) *Service {
	t.Helper()
	return NewService(
		cfg,
		services.NewProjectService(client.Client),
		services.NewTaskService(client.Client),
		filesync.NewManager(nopStore{}, root),
	)
}

func seedTerminalProject(t *testing.T, client *database.Client, name string, completedAt time.Time) *ent.Project {
	t.Helper()
	p, err := client.Project.Create().
		SetID(uuid.New().String()).
		SetProjectName(name).
		SetWorkflowType(project.WorkflowTypeAgentBuild).
		SetRequirement("Build an AWS pricing agent").
		SetStatus(project.StatusCompleted).
		SetCompletedAt(completedAt).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func seedTerminalTask(t *testing.T, client *database.Client, projectID string, status task.Status, completedAt time.Time) *ent.Task {
	t.Helper()
	row, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetTaskType(task.TaskTypeBuildAgent).
		SetStatus(status).
		SetPayload(map[string]interface{}{"project_id": projectID}).
		SetCompletedAt(completedAt).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestRunAllPurgesOldTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	root := t.TempDir()

	p := seedTerminalProject(t, client, "pricing-agent", time.Now())
	old := seedTerminalTask(t, client, p.ID, task.StatusCompleted, time.Now().Add(-60*24*time.Hour))
	oldFailed := seedTerminalTask(t, client, p.ID, task.StatusFailed, time.Now().Add(-60*24*time.Hour))
	recent := seedTerminalTask(t, client, p.ID, task.StatusCompleted, time.Now().Add(-time.Hour))

	svc := newService(t, client, root, config.DefaultRetentionConfig())
	svc.RunAll(ctx)

	remaining, err := client.Task.Query().IDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, remaining, old.ID)
	assert.NotContains(t, remaining, oldFailed.ID)
	assert.Contains(t, remaining, recent.ID)
}

func TestRunAllKeepsRunningTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	p := seedTerminalProject(t, client, "pricing-agent", time.Now())
	running, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetProjectID(p.ID).
		SetTaskType(task.TaskTypeBuildAgent).
		SetStatus(task.StatusRunning).
		SetPayload(map[string]interface{}{"project_id": p.ID}).
		Save(ctx)
	require.NoError(t, err)

	svc := newService(t, client, t.TempDir(), config.DefaultRetentionConfig())
	svc.RunAll(ctx)

	_, err = client.Task.Get(ctx, running.ID)
	assert.NoError(t, err)
}

func TestRunAllRemovesFinishedWorkspaces(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	root := t.TempDir()

	oldProject := seedTerminalProject(t, client, "old-agent", time.Now().Add(-30*24*time.Hour))
	freshProject := seedTerminalProject(t, client, "fresh-agent", time.Now())

	oldDir := filepath.Join(root, "old-agent")
	freshDir := filepath.Join(root, "fresh-agent")
	require.NoError(t, os.MkdirAll(filepath.Join(oldDir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(oldDir, "src", "main.py"), []byte("print('hi')\n"), 0o644))
	require.NoError(t, os.MkdirAll(freshDir, 0o755))

	svc := newService(t, client, root, config.DefaultRetentionConfig())
	svc.RunAll(ctx)

	assert.NoDirExists(t, oldDir)
	assert.DirExists(t, freshDir)

	// Project rows survive; only the local directory goes.
	_, err := client.Project.Get(ctx, oldProject.ID)
	assert.NoError(t, err)
	_, err = client.Project.Get(ctx, freshProject.ID)
	assert.NoError(t, err)

	// Idempotent on re-run.
	svc.RunAll(ctx)
	assert.NoDirExists(t, oldDir)
}

func TestStartStop(t *testing.T) {
	client := testdb.NewTestClient(t)

	cfg := config.DefaultRetentionConfig()
	cfg.CleanupInterval = 50 * time.Millisecond

	svc := newService(t, client, t.TempDir(), cfg)
	svc.Start(context.Background())
	time.Sleep(120 * time.Millisecond)
	svc.Stop()

	// Stop is safe to call again.
	svc.Stop()
}
