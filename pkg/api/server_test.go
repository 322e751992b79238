package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/ent/stage"
	"github.com/nexus-ai/nexus/pkg/blob"
	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/database"
	"github.com/nexus-ai/nexus/pkg/models"
	testdb "github.com/nexus-ai/nexus/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeBlobStore serves stage output refs from a map.
type fakeBlobStore struct {
	objects map[string][]byte
	getErr  error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: make(map[string][]byte)}
}

func (f *fakeBlobStore) Put(_ context.Context, key string, data []byte, _ map[string]string) (string, error) {
	ref := blob.FormatRef("test-bucket", key)
	f.objects[ref] = data
	return ref, nil
}

func (f *fakeBlobStore) Get(_ context.Context, ref string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[ref]
	if !ok {
		return nil, blob.ErrNotFound
	}
	return data, nil
}

func (f *fakeBlobStore) GetKey(ctx context.Context, key string) ([]byte, error) {
	return f.Get(ctx, blob.FormatRef("test-bucket", key))
}

func (f *fakeBlobStore) List(_ context.Context, _ string) ([]blob.ObjectInfo, error) {
	return nil, nil
}

func (f *fakeBlobStore) Head(_ context.Context, _ string) (*blob.ObjectInfo, error) {
	return nil, blob.ErrNotFound
}

type apiEnv struct {
	client *database.Client
	cfg    *config.Config
	blobs  *fakeBlobStore
	server *Server
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg, err := config.Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	blobs := newFakeBlobStore()
	return &apiEnv{
		client: client,
		cfg:    cfg,
		blobs:  blobs,
		server: NewServer(client, cfg, blobs, nil),
	}
}

func (e *apiEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.server.Router().ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// dataField re-decodes env.Data into out.
func dataField(t *testing.T, env Envelope, out any) {
	t.Helper()
	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestCreateProjectEndpoint(t *testing.T) {
	env := newAPIEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/projects", map[string]any{
		"requirement":  "Build an AWS pricing agent",
		"project_name": "pricing-agent",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.RequestID)

	var result struct {
		ProjectID string `json:"project_id"`
		TaskID    string `json:"task_id"`
		Status    string `json:"status"`
	}
	dataField(t, envelope, &result)
	assert.NotEmpty(t, result.ProjectID)
	assert.NotEmpty(t, result.TaskID)
	assert.Equal(t, "queued", result.Status)

	// The status view reflects the seeded pipeline.
	rec = env.do(t, http.MethodGet, "/api/v1/workflow/"+result.ProjectID+"/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status struct {
		Project struct {
			ID     string `json:"project_id"`
			Status string `json:"status"`
		} `json:"project"`
		Stages []struct {
			Name   string `json:"stage_name"`
			Status string `json:"status"`
		} `json:"stages"`
	}
	dataField(t, decodeEnvelope(t, rec), &status)
	assert.Equal(t, result.ProjectID, status.Project.ID)
	assert.Equal(t, "queued", status.Project.Status)
	catalog, err := env.cfg.Catalog(models.WorkflowTypeAgentBuild)
	require.NoError(t, err)
	require.Len(t, status.Stages, len(catalog.Stages))
	for _, st := range status.Stages {
		assert.Equal(t, "pending", st.Status)
	}
}

func TestCreateProjectEndpointValidation(t *testing.T) {
	env := newAPIEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/projects", map[string]any{
		"project_name": "no-requirement",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Message, "requirement")
}

func TestControlEndpoints(t *testing.T) {
	env := newAPIEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/projects", map[string]any{
		"requirement": "Build an AWS pricing agent",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var result struct {
		ProjectID string `json:"project_id"`
	}
	dataField(t, decodeEnvelope(t, rec), &result)

	// Pause a queued project.
	rec = env.do(t, http.MethodPost, "/api/v1/workflow/"+result.ProjectID+"/pause", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var project struct {
		ControlStatus string `json:"control_status"`
	}
	dataField(t, decodeEnvelope(t, rec), &project)
	assert.Equal(t, "paused", project.ControlStatus)

	// Resume from an explicit stage.
	rec = env.do(t, http.MethodPost, "/api/v1/workflow/"+result.ProjectID+"/resume",
		map[string]any{"from_stage": "system_architecture"})
	require.Equal(t, http.StatusOK, rec.Code)
	dataField(t, decodeEnvelope(t, rec), &project)
	assert.Equal(t, "running", project.ControlStatus)

	// Stop cancels the queued project outright.
	rec = env.do(t, http.MethodPost, "/api/v1/workflow/"+result.ProjectID+"/stop", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stopped struct {
		Status string `json:"status"`
	}
	dataField(t, decodeEnvelope(t, rec), &stopped)
	assert.Equal(t, "cancelled", stopped.Status)

	// Terminal projects reject further control actions.
	rec = env.do(t, http.MethodPost, "/api/v1/workflow/"+result.ProjectID+"/pause", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestControlEndpointsUnknownProject(t *testing.T) {
	env := newAPIEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/workflow/"+uuid.New().String()+"/pause", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "resource not found", envelope.Message)
}

func TestStageOutputEndpoint(t *testing.T) {
	env := newAPIEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/projects", map[string]any{
		"requirement": "Build an AWS pricing agent",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var result struct {
		ProjectID string `json:"project_id"`
	}
	dataField(t, decodeEnvelope(t, rec), &result)

	ctx := context.Background()

	// Inline content.
	_, err := env.client.Stage.Update().
		Where(stage.ProjectIDEQ(result.ProjectID), stage.StageNameEQ("requirements_analysis")).
		SetStatus(stage.StatusCompleted).
		SetAgentOutputContent("## Requirements\n\nPricing lookups against the AWS API.").
		Save(ctx)
	require.NoError(t, err)

	rec = env.do(t, http.MethodGet, "/api/v1/workflow/"+result.ProjectID+"/stages/requirements_analysis/output", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var output StageOutputResponse
	dataField(t, decodeEnvelope(t, rec), &output)
	assert.Equal(t, "requirements_analysis", output.StageName)
	assert.Contains(t, output.Content, "Pricing lookups")

	// Oversize content stored as a blob ref gets dereferenced.
	ref, err := env.blobs.Put(ctx, "outputs/system_architecture.txt",
		[]byte("# Architecture\n\nSingle worker, queue-driven."), nil)
	require.NoError(t, err)
	_, err = env.client.Stage.Update().
		Where(stage.ProjectIDEQ(result.ProjectID), stage.StageNameEQ("system_architecture")).
		SetStatus(stage.StatusCompleted).
		SetAgentOutputS3Ref(ref).
		Save(ctx)
	require.NoError(t, err)

	// Legacy stage aliases resolve to the canonical record.
	rec = env.do(t, http.MethodGet, "/api/v1/workflow/"+result.ProjectID+"/stages/system_architect/output", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	dataField(t, decodeEnvelope(t, rec), &output)
	assert.Equal(t, "system_architecture", output.StageName)
	assert.Contains(t, output.Content, "queue-driven")
	assert.Equal(t, ref, output.S3ContentRef)

	// Blob store outage surfaces as 502, not a silent empty body.
	env.blobs.getErr = assert.AnError
	rec = env.do(t, http.MethodGet, "/api/v1/workflow/"+result.ProjectID+"/stages/system_architecture/output", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	env.blobs.getErr = nil

	// Unknown stage name.
	rec = env.do(t, http.MethodGet, "/api/v1/workflow/"+result.ProjectID+"/stages/nonexistent_stage/output", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProjectsEndpoint(t *testing.T) {
	env := newAPIEnv(t)

	for i := 0; i < 3; i++ {
		rec := env.do(t, http.MethodPost, "/api/v1/projects", map[string]any{
			"requirement": "Build an AWS pricing agent",
			"user_id":     "user-1",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := env.do(t, http.MethodGet, "/api/v1/projects?user_id=user-1&limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Projects []json.RawMessage `json:"projects"`
		Total    int               `json:"total"`
		Limit    int               `json:"limit"`
	}
	dataField(t, decodeEnvelope(t, rec), &list)
	assert.Equal(t, 3, list.Total)
	assert.Len(t, list.Projects, 2)
	assert.Equal(t, 2, list.Limit)

	rec = env.do(t, http.MethodGet, "/api/v1/projects?user_id=user-2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	dataField(t, decodeEnvelope(t, rec), &list)
	assert.Equal(t, 0, list.Total)

	rec = env.do(t, http.MethodGet, "/api/v1/projects?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProjectEndpoint(t *testing.T) {
	env := newAPIEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/projects", map[string]any{
		"requirement":  "Build an AWS pricing agent",
		"project_name": "pricing-agent",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var result struct {
		ProjectID string `json:"project_id"`
	}
	dataField(t, decodeEnvelope(t, rec), &result)

	rec = env.do(t, http.MethodGet, "/api/v1/projects/"+result.ProjectID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var project struct {
		Name string `json:"project_name"`
	}
	dataField(t, decodeEnvelope(t, rec), &project)
	assert.Equal(t, "pricing-agent", project.Name)

	rec = env.do(t, http.MethodGet, "/api/v1/projects/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	env := newAPIEnv(t)

	rec := env.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var health healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.NotEmpty(t, health.Version)
	require.NotNil(t, health.Database)
	assert.Equal(t, "healthy", health.Database.Status)
	assert.Nil(t, health.Workers)
}

func TestRequestIDPropagation(t *testing.T) {
	env := newAPIEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	req.Header.Set("X-Request-ID", "req-abc-123")
	rec := httptest.NewRecorder()
	env.server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-abc-123", rec.Header().Get("X-Request-ID"))
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "req-abc-123", envelope.RequestID)
}
