package workflow

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/pkg/blob"
	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/llm"
	"github.com/nexus-ai/nexus/pkg/models"
)

// ───────────────────────── in-memory fakes ─────────────────────────

type fakeProjectStore struct {
	mu       sync.Mutex
	projects map[string]*models.Project
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: make(map[string]*models.Project)}
}

func (s *fakeProjectStore) GetProject(_ context.Context, id string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %s not found", id)
	}
	cp := *p
	return &cp, nil
}

func (s *fakeProjectStore) SaveProject(_ context.Context, p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	// control_status is writer-exclusive to the control path; keep the
	// stored value, mirroring the real services layer.
	if existing, ok := s.projects[p.ID]; ok {
		cp.ControlStatus = existing.ControlStatus
	}
	s.projects[p.ID] = &cp
	return nil
}

func (s *fakeProjectStore) GetControlStatus(_ context.Context, id string) (models.ControlStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return "", fmt.Errorf("project %s not found", id)
	}
	return p.ControlStatus, nil
}

func (s *fakeProjectStore) setControlStatus(id string, cs models.ControlStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.projects[id]; ok {
		p.ControlStatus = cs
	}
}

func (s *fakeProjectStore) stored(id string) *models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projects[id]
}

type fakeStageStore struct {
	mu     sync.Mutex
	stages map[string]map[string]*models.StageRecord // project → name → record
}

func newFakeStageStore() *fakeStageStore {
	return &fakeStageStore{stages: make(map[string]map[string]*models.StageRecord)}
}

func (s *fakeStageStore) ListStages(_ context.Context, projectID string) ([]*models.StageRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.StageRecord
	for _, rec := range s.stages[projectID] {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeStageStore) SaveStage(_ context.Context, rec *models.StageRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stages[rec.ProjectID] == nil {
		s.stages[rec.ProjectID] = make(map[string]*models.StageRecord)
	}
	cp := *rec
	s.stages[rec.ProjectID][rec.Name] = &cp
	return nil
}

func (s *fakeStageStore) stored(projectID, name string) *models.StageRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stages[projectID][name]
}

type fakeBlobStore struct {
	mu      sync.Mutex
	bucket  string
	objects map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{bucket: "test-bucket", objects: make(map[string][]byte)}
}

func (s *fakeBlobStore) Put(_ context.Context, key string, data []byte, _ map[string]string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = append([]byte(nil), data...)
	return blob.FormatRef(s.bucket, key), nil
}

func (s *fakeBlobStore) Get(_ context.Context, ref string) ([]byte, error) {
	_, key, err := blob.ParseRef(ref)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, blob.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *fakeBlobStore) GetKey(ctx context.Context, key string) ([]byte, error) {
	return s.Get(ctx, blob.FormatRef(s.bucket, key))
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

type fakeInvoker struct {
	mu     sync.Mutex
	fn     func(input *llm.InvokeInput) (*llm.InvokeResult, error)
	inputs []*llm.InvokeInput
}

func (f *fakeInvoker) Invoke(_ context.Context, input *llm.InvokeInput) (*llm.InvokeResult, error) {
	f.mu.Lock()
	f.inputs = append(f.inputs, input)
	f.mu.Unlock()
	if f.fn != nil {
		return f.fn(input)
	}
	return &llm.InvokeResult{
		Text:         "output for " + input.StageName,
		InputTokens:  100,
		OutputTokens: 50,
		ModelID:      "test-model",
	}, nil
}

func (f *fakeInvoker) calls() []*llm.InvokeInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*llm.InvokeInput(nil), f.inputs...)
}

// ───────────────────────── test environment ─────────────────────────

type testEnv struct {
	cfg      *config.Config
	projects *fakeProjectStore
	stages   *fakeStageStore
	blobs    *fakeBlobStore
	invoker  *fakeInvoker
	contexts *ContextManager
	executor *Executor
	engine   *Engine
	root     string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg, err := config.Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	env := &testEnv{
		cfg:      cfg,
		projects: newFakeProjectStore(),
		stages:   newFakeStageStore(),
		blobs:    newFakeBlobStore(),
		invoker:  &fakeInvoker{},
		root:     t.TempDir(),
	}
	env.contexts = NewContextManager(env.projects, env.stages, env.blobs, cfg, cfg.Rules, env.root, cfg.Context)
	env.executor = NewExecutor(env.invoker, env.contexts, env.root)
	env.engine = NewEngine(env.contexts, env.executor, cfg.LLM.CostPerMTokens)
	return env
}

func (env *testEnv) seedProject(t *testing.T, wt models.WorkflowType) *models.Project {
	t.Helper()
	p := &models.Project{
		ID:            "proj-1",
		WorkflowType:  wt,
		Requirement:   "Build an AWS pricing agent",
		Priority:      3,
		Status:        models.ProjectStatusQueued,
		ControlStatus: models.ControlStatusRunning,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	require.NoError(t, env.projects.SaveProject(context.Background(), p))
	return p
}

// completeStage pre-seeds a completed stage record, as crash resumption
// and restart scenarios would find it.
func (env *testEnv) completeStage(t *testing.T, projectID string, wt models.WorkflowType, name, content string) {
	t.Helper()
	catalog, err := env.cfg.Catalog(wt)
	require.NoError(t, err)
	def, ok := catalog.Get(name)
	require.True(t, ok, name)
	now := time.Now()
	require.NoError(t, env.stages.SaveStage(context.Background(), &models.StageRecord{
		ProjectID:     projectID,
		Name:          name,
		Number:        def.Order,
		DisplayName:   def.DisplayName,
		AgentName:     def.AgentName,
		Status:        models.StageStatusCompleted,
		OutputContent: content,
		Metrics:       models.StageMetrics{InputTokens: 10, OutputTokens: 5, ModelID: "test-model"},
		CompletedAt:   &now,
	}))
}
