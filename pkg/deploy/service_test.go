package deploy

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/ent"
	agentent "github.com/nexus-ai/nexus/ent/agent"
	"github.com/nexus-ai/nexus/ent/project"
	"github.com/nexus-ai/nexus/ent/stage"
	"github.com/nexus-ai/nexus/pkg/blob"
	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/database"
	"github.com/nexus-ai/nexus/pkg/filesync"
	"github.com/nexus-ai/nexus/pkg/models"
	testdb "github.com/nexus-ai/nexus/test/database"
)

type fakeRuntime struct {
	mu       sync.Mutex
	requests []*DeployRequest
	result   *DeployResult
	err      error
}

func (r *fakeRuntime) Deploy(_ context.Context, req *DeployRequest) (*DeployResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	if r.err != nil {
		return nil, r.err
	}
	if r.result != nil {
		return r.result, nil
	}
	return &DeployResult{RuntimeID: "rt-1", Endpoint: "https://runtime.example.com/agents/rt-1"}, nil
}

type fakeBlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: make(map[string][]byte)}
}

func (s *fakeBlobStore) Put(_ context.Context, key string, data []byte, _ map[string]string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = append([]byte(nil), data...)
	return blob.FormatRef("test-bucket", key), nil
}

func (s *fakeBlobStore) Get(ctx context.Context, ref string) ([]byte, error) {
	_, key, err := blob.ParseRef(ref)
	if err != nil {
		return nil, err
	}
	return s.GetKey(ctx, key)
}

func (s *fakeBlobStore) GetKey(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, blob.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *fakeBlobStore) List(_ context.Context, prefix string) ([]blob.ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []blob.ObjectInfo
	for key, data := range s.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, blob.ObjectInfo{Key: key, Size: int64(len(data)), LastModified: time.Now()})
		}
	}
	return out, nil
}

func (s *fakeBlobStore) Head(_ context.Context, key string) (*blob.ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, blob.ErrNotFound
	}
	return &blob.ObjectInfo{Key: key, Size: int64(len(data))}, nil
}

type deployEnv struct {
	client  *database.Client
	blobs   *fakeBlobStore
	runtime *fakeRuntime
	service *Service
}

func newDeployEnv(t *testing.T, cfg *config.DeployConfig) *deployEnv {
	t.Helper()
	env := &deployEnv{
		client:  testdb.NewTestClient(t),
		blobs:   newFakeBlobStore(),
		runtime: &fakeRuntime{},
	}
	files := filesync.NewManager(env.blobs, t.TempDir())
	env.service = NewService(cfg, env.client.Client, files, env.runtime)
	env.service.recipeDir = t.TempDir()
	return env
}

func testDeployConfig() *config.DeployConfig {
	return &config.DeployConfig{
		RuntimeEndpoint: "http://localhost:8800",
		DeployTimeout:   time.Minute,
	}
}

// seedBuiltProject inserts a completed project with the design and code
// stage documents a finished build leaves behind.
func seedBuiltProject(t *testing.T, client *database.Client) *ent.Project {
	t.Helper()
	ctx := context.Background()

	p, err := client.Project.Create().
		SetID(uuid.New().String()).
		SetProjectName("pricing-agent").
		SetWorkflowType(project.WorkflowTypeAgentBuild).
		SetRequirement("Build an AWS pricing agent").
		SetStatus(project.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	design, err := json.Marshal(map[string]any{
		"agent_name":   "pricing-agent",
		"description":  "Answers AWS pricing questions",
		"capabilities": []string{"pricing_lookup", "cost_estimation"},
	})
	require.NoError(t, err)
	_, err = client.Stage.Create().
		SetID(uuid.New().String()).
		SetProjectID(p.ID).
		SetStageName("agent_design").
		SetStageNumber(3).
		SetStatus(stage.StatusCompleted).
		SetDesignDocumentContent(string(design)).
		SetDesignDocumentFormat("json").
		Save(ctx)
	require.NoError(t, err)

	code, err := json.Marshal(map[string]any{
		"files": []map[string]string{
			{"path": "src/main.py", "content": "print('agent entrypoint')"},
			{"path": "src/tools.py", "content": "def pricing_lookup(): ..."},
		},
	})
	require.NoError(t, err)
	_, err = client.Stage.Create().
		SetID(uuid.New().String()).
		SetProjectID(p.ID).
		SetStageName("agent_code_developer").
		SetStageNumber(6).
		SetStatus(stage.StatusCompleted).
		SetDesignDocumentContent(string(code)).
		SetDesignDocumentFormat("json").
		Save(ctx)
	require.NoError(t, err)

	return p
}

func TestDeployProject(t *testing.T) {
	env := newDeployEnv(t, testDeployConfig())
	ctx := context.Background()
	p := seedBuiltProject(t, env.client)

	summary, err := env.service.DeployProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Contains(t, summary, "pricing-agent")
	assert.Contains(t, summary, "rt-1")

	// Artifacts were materialized from the stage documents.
	projectDir := env.service.files.ProjectDir(&models.Project{ID: p.ID, Name: "pricing-agent"})
	data, err := os.ReadFile(filepath.Join(projectDir, "src", "main.py"))
	require.NoError(t, err)
	assert.Equal(t, "print('agent entrypoint')", string(data))

	// The runtime saw the profile and a recipe naming the entrypoint.
	require.Len(t, env.runtime.requests, 1)
	req := env.runtime.requests[0]
	assert.Equal(t, "pricing-agent", req.AgentName)
	assert.Equal(t, []string{"pricing_lookup", "cost_estimation"}, req.Capabilities)
	assert.Contains(t, req.Recipe, "entrypoint: src/main.py")
	assert.Contains(t, req.Recipe, "src/tools.py")

	// Agent record is running with the runtime handles.
	rows, err := env.client.Agent.Query().Where(agentent.ProjectIDEQ(p.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, agentent.StatusRunning, rows[0].Status)
	assert.Equal(t, agentent.DeploymentStatusDeployed, rows[0].DeploymentStatus)
	assert.Equal(t, "rt-1", rows[0].RuntimeID)
	assert.NotNil(t, rows[0].LastDeployedAt)

	// The temporary recipe was cleaned up.
	entries, err := os.ReadDir(env.service.recipeDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeployProjectPullsRemoteFiles(t *testing.T) {
	env := newDeployEnv(t, testDeployConfig())
	ctx := context.Background()
	p := seedBuiltProject(t, env.client)

	_, err := env.blobs.Put(ctx, blob.ProjectFileKey(p.ID, "requirements.txt"), []byte("boto3"), nil)
	require.NoError(t, err)

	_, err = env.service.DeployProject(ctx, p.ID)
	require.NoError(t, err)

	projectDir := env.service.files.ProjectDir(&models.Project{ID: p.ID, Name: "pricing-agent"})
	_, err = os.Stat(filepath.Join(projectDir, "requirements.txt"))
	assert.NoError(t, err)
	assert.Contains(t, env.runtime.requests[0].Recipe, "requirements.txt")
}

func TestDeployProjectRuntimeFailure(t *testing.T) {
	env := newDeployEnv(t, testDeployConfig())
	ctx := context.Background()
	p := seedBuiltProject(t, env.client)
	env.runtime.err = assert.AnError

	_, err := env.service.DeployProject(ctx, p.ID)
	require.Error(t, err)

	rows, err := env.client.Agent.Query().Where(agentent.ProjectIDEQ(p.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, agentent.StatusOffline, rows[0].Status)
	assert.Equal(t, agentent.DeploymentStatusFailed, rows[0].DeploymentStatus)
	assert.Contains(t, rows[0].DeploymentError, assert.AnError.Error())

	entries, err := os.ReadDir(env.service.recipeDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeployProjectRedeploysExistingAgent(t *testing.T) {
	env := newDeployEnv(t, testDeployConfig())
	ctx := context.Background()
	p := seedBuiltProject(t, env.client)

	existing, err := env.client.Agent.Create().
		SetID(uuid.New().String()).
		SetAgentName("pricing-agent").
		SetProjectID(p.ID).
		SetStatus(agentent.StatusOffline).
		SetDeploymentStatus(agentent.DeploymentStatusFailed).
		SetDeploymentError("previous attempt failed").
		Save(ctx)
	require.NoError(t, err)

	_, err = env.service.DeployProject(ctx, p.ID)
	require.NoError(t, err)

	count, err := env.client.Agent.Query().Where(agentent.ProjectIDEQ(p.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	row, err := env.client.Agent.Get(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, agentent.StatusRunning, row.Status)
	assert.Equal(t, agentent.DeploymentStatusDeployed, row.DeploymentStatus)
	assert.Empty(t, row.DeploymentError)
}

func TestDeployProjectDryRun(t *testing.T) {
	cfg := testDeployConfig()
	cfg.DryRun = true
	env := newDeployEnv(t, cfg)
	ctx := context.Background()
	p := seedBuiltProject(t, env.client)

	summary, err := env.service.DeployProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Contains(t, summary, "dry run")

	// Neither the runtime nor the agent table was touched.
	assert.Empty(t, env.runtime.requests)
	count, err := env.client.Agent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExtractProfileFallbacks(t *testing.T) {
	t.Run("falls back to tool names for capabilities", func(t *testing.T) {
		doc, err := json.Marshal(map[string]any{
			"name":  "log-triage",
			"tools": []map[string]string{{"name": "fetch_logs"}, {"name": "classify"}},
		})
		require.NoError(t, err)
		profile := extractProfile(&models.Project{ID: "p-1"}, []*models.StageRecord{{
			Name:           "agent_design",
			Status:         models.StageStatusCompleted,
			DesignDocument: &models.DesignDocument{Content: string(doc), Format: "json"},
		}})
		assert.Equal(t, "log-triage", profile.Name)
		assert.Equal(t, []string{"fetch_logs", "classify"}, profile.Capabilities)
	})

	t.Run("derives a name when nothing provides one", func(t *testing.T) {
		profile := extractProfile(&models.Project{ID: "0123456789abcdef"}, nil)
		assert.Equal(t, "agent-01234567", profile.Name)
	})
}

func TestMaterializeArtifactsSkipsUnsafePaths(t *testing.T) {
	dir := t.TempDir()
	doc, err := json.Marshal(map[string]any{
		"files": []map[string]string{
			{"path": "../escape.py", "content": "nope"},
			{"path": "ok.py", "content": "fine"},
		},
	})
	require.NoError(t, err)

	written, err := materializeArtifacts(dir, []*models.StageRecord{{
		Name:           "agent_code_developer",
		Status:         models.StageStatusCompleted,
		DesignDocument: &models.DesignDocument{Content: string(doc), Format: "json"},
	}})
	require.NoError(t, err)
	assert.Equal(t, []string{"ok.py"}, written)
	_, err = os.Stat(filepath.Join(dir, "..", "escape.py"))
	assert.Error(t, err)
}
