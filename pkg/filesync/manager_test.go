package filesync

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/pkg/blob"
	"github.com/nexus-ai/nexus/pkg/models"
)

type fakeObject struct {
	data     []byte
	modified time.Time
	metadata map[string]string
}

type fakeStore struct {
	mu      sync.Mutex
	objects map[string]*fakeObject
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string]*fakeObject)}
}

func (s *fakeStore) Put(_ context.Context, key string, data []byte, metadata map[string]string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = &fakeObject{
		data:     append([]byte(nil), data...),
		modified: time.Now(),
		metadata: metadata,
	}
	return blob.FormatRef("test-bucket", key), nil
}

func (s *fakeStore) Get(ctx context.Context, ref string) ([]byte, error) {
	_, key, err := blob.ParseRef(ref)
	if err != nil {
		return nil, err
	}
	return s.GetKey(ctx, key)
}

func (s *fakeStore) GetKey(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[key]
	if !ok {
		return nil, blob.ErrNotFound
	}
	return append([]byte(nil), obj.data...), nil
}

func (s *fakeStore) List(_ context.Context, prefix string) ([]blob.ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []blob.ObjectInfo
	for key, obj := range s.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, blob.ObjectInfo{
				Key:          key,
				Size:         int64(len(obj.data)),
				LastModified: obj.modified,
				Metadata:     obj.metadata,
			})
		}
	}
	return out, nil
}

func (s *fakeStore) Head(_ context.Context, key string) (*blob.ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[key]
	if !ok {
		return nil, blob.ErrNotFound
	}
	return &blob.ObjectInfo{
		Key:          key,
		Size:         int64(len(obj.data)),
		LastModified: obj.modified,
		Metadata:     obj.metadata,
	}, nil
}

func (s *fakeStore) setModified(key string, ts time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if obj, ok := s.objects[key]; ok {
		obj.modified = ts
	}
}

func testProject() *models.Project {
	return &models.Project{ID: "proj-1", Name: "pricing-agent"}
}

func newTestManager(t *testing.T) (*Manager, *fakeStore, string) {
	t.Helper()
	store := newFakeStore()
	root := t.TempDir()
	return NewManager(store, root), store, root
}

func writeProjectFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScan(t *testing.T) {
	m, _, root := newTestManager(t)
	p := testProject()
	dir := m.ProjectDir(p)
	assert.Equal(t, filepath.Join(root, p.DirName()), dir)

	writeProjectFile(t, dir, "src/main.py", "print('hi')")
	writeProjectFile(t, dir, "README.md", "docs")
	writeProjectFile(t, dir, ".hidden", "skip me")
	writeProjectFile(t, dir, ".git/config", "skip me too")

	files, err := m.Scan(p)
	require.NoError(t, err)
	require.Len(t, files, 2)

	byPath := make(map[string]models.GeneratedFile)
	for _, f := range files {
		byPath[f.Path] = f
	}
	f, ok := byPath["src/main.py"]
	require.True(t, ok)
	assert.Equal(t, int64(len("print('hi')")), f.Size)
	assert.Len(t, f.Checksum, 32)
	assert.False(t, f.LastModified.IsZero())
	_, ok = byPath["README.md"]
	assert.True(t, ok)
}

func TestScanMissingDirectory(t *testing.T) {
	m, _, _ := newTestManager(t)
	files, err := m.Scan(testProject())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestSyncToS3(t *testing.T) {
	m, store, _ := newTestManager(t)
	p := testProject()
	dir := m.ProjectDir(p)
	writeProjectFile(t, dir, "src/main.py", "print('hi')")
	writeProjectFile(t, dir, "README.md", "docs")

	pushed, err := m.SyncToS3(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 2, pushed)

	obj, ok := store.objects[blob.ProjectFileKey(p.ID, "src/main.py")]
	require.True(t, ok)
	assert.Equal(t, "print('hi')", string(obj.data))
	assert.Equal(t, p.ID, obj.metadata["project_id"])
	assert.Len(t, obj.metadata["checksum"], 32)
}

func TestSyncFromS3(t *testing.T) {
	m, store, _ := newTestManager(t)
	p := testProject()
	ctx := context.Background()

	_, err := store.Put(ctx, blob.ProjectFileKey(p.ID, "src/main.py"), []byte("remote"), nil)
	require.NoError(t, err)
	_, err = store.Put(ctx, blob.ProjectFileKey(p.ID, "config.yaml"), []byte("remote config"), nil)
	require.NoError(t, err)

	pulled, err := m.SyncFromS3(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 2, pulled)

	data, err := os.ReadFile(filepath.Join(m.ProjectDir(p), "src", "main.py"))
	require.NoError(t, err)
	assert.Equal(t, "remote", string(data))

	// Up-to-date local copies are not pulled again.
	pulled, err = m.SyncFromS3(ctx, p)
	require.NoError(t, err)
	assert.Zero(t, pulled)
}

func TestSyncFromS3PullsNewerRemote(t *testing.T) {
	m, store, _ := newTestManager(t)
	p := testProject()
	ctx := context.Background()
	key := blob.ProjectFileKey(p.ID, "src/main.py")

	local := writeProjectFile(t, m.ProjectDir(p), "src/main.py", "stale local")
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(local, past, past))

	_, err := store.Put(ctx, key, []byte("fresh remote"), nil)
	require.NoError(t, err)

	pulled, err := m.SyncFromS3(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 1, pulled)
	data, err := os.ReadFile(local)
	require.NoError(t, err)
	assert.Equal(t, "fresh remote", string(data))

	// A remote older than the local copy is left alone.
	store.setModified(key, past.Add(-time.Hour))
	require.NoError(t, os.WriteFile(local, []byte("newer local"), 0o644))
	pulled, err = m.SyncFromS3(ctx, p)
	require.NoError(t, err)
	assert.Zero(t, pulled)
}

func TestSyncFromS3PathFilter(t *testing.T) {
	m, store, _ := newTestManager(t)
	p := testProject()
	ctx := context.Background()

	_, err := store.Put(ctx, blob.ProjectFileKey(p.ID, "a.txt"), []byte("a"), nil)
	require.NoError(t, err)
	_, err = store.Put(ctx, blob.ProjectFileKey(p.ID, "b.txt"), []byte("b"), nil)
	require.NoError(t, err)

	pulled, err := m.SyncFromS3(ctx, p, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, 1, pulled)
	_, err = os.Stat(filepath.Join(m.ProjectDir(p), "b.txt"))
	assert.Error(t, err)
}

func TestEnsureFilesAvailable(t *testing.T) {
	m, store, _ := newTestManager(t)
	p := testProject()
	ctx := context.Background()

	_, err := store.Put(ctx, blob.ProjectFileKey(p.ID, "src/main.py"), []byte("code"), nil)
	require.NoError(t, err)

	// Missing locally: pulled from the blob store.
	require.NoError(t, m.EnsureFilesAvailable(ctx, p, []string{"src/main.py"}))
	_, err = os.Stat(filepath.Join(m.ProjectDir(p), "src", "main.py"))
	assert.NoError(t, err)

	// Already present: no error, nothing to do.
	require.NoError(t, m.EnsureFilesAvailable(ctx, p, []string{"src/main.py"}))

	// Unavailable anywhere: reported.
	err = m.EnsureFilesAvailable(ctx, p, []string{"missing.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}
