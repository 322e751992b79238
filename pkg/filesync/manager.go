// Package filesync keeps a project's working directory and the blob
// store in step, so a build can resume on a worker that never saw the
// earlier stages' files.
package filesync

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/nexus-ai/nexus/pkg/blob"
	"github.com/nexus-ai/nexus/pkg/models"
)

// Manager scans project directories and pushes/pulls their files
// through the blob store.
type Manager struct {
	blobs        blob.Store
	projectsRoot string
	log          *slog.Logger
}

// NewManager creates a file sync manager rooted at projectsRoot.
func NewManager(blobs blob.Store, projectsRoot string) *Manager {
	return &Manager{
		blobs:        blobs,
		projectsRoot: projectsRoot,
		log:          slog.With("component", "filesync"),
	}
}

// ProjectDir returns the local working directory for a project.
func (m *Manager) ProjectDir(p *models.Project) string {
	return filepath.Join(m.projectsRoot, p.DirName())
}

// RemoveProjectDir deletes a project's local working directory. The
// blob store copy is untouched; a later sync can restore the files.
func (m *Manager) RemoveProjectDir(p *models.Project) error {
	dir := m.ProjectDir(p)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	return os.RemoveAll(dir)
}

// Scan walks the project directory and records metadata for every
// regular file. Dot files and dot directories are skipped; paths are
// slash-separated and relative to the project root.
func (m *Manager) Scan(p *models.Project) ([]models.GeneratedFile, error) {
	root := m.ProjectDir(p)
	var files []models.GeneratedFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		checksum, err := fileMD5(path)
		if err != nil {
			return err
		}
		files = append(files, models.GeneratedFile{
			Path:         filepath.ToSlash(rel),
			Size:         fi.Size(),
			Checksum:     checksum,
			LastModified: fi.ModTime(),
		})
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return files, nil
}

// SyncToS3 uploads every file in the project directory to the blob
// store, carrying the checksum and project ID as object metadata.
// Returns the number of files pushed.
func (m *Manager) SyncToS3(ctx context.Context, p *models.Project) (int, error) {
	files, err := m.Scan(p)
	if err != nil {
		return 0, err
	}

	root := m.ProjectDir(p)
	pushed := 0
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(f.Path)))
		if err != nil {
			return pushed, fmt.Errorf("reading %s: %w", f.Path, err)
		}
		_, err = m.blobs.Put(ctx, blob.ProjectFileKey(p.ID, f.Path), data, map[string]string{
			"checksum":   f.Checksum,
			"project_id": p.ID,
		})
		if err != nil {
			return pushed, fmt.Errorf("uploading %s: %w", f.Path, err)
		}
		pushed++
	}

	m.log.Info("Project files pushed",
		"project_id", p.ID,
		"file_count", pushed)
	return pushed, nil
}

// SyncFromS3 downloads the project's files from the blob store. A file
// is pulled when it is absent locally or older than the stored object.
// With a non-empty paths filter only the named files are considered.
// Returns the number of files pulled.
func (m *Manager) SyncFromS3(ctx context.Context, p *models.Project, paths ...string) (int, error) {
	prefix := blob.ProjectFilesPrefix(p.ID)
	objects, err := m.blobs.List(ctx, prefix)
	if err != nil {
		return 0, fmt.Errorf("listing project files: %w", err)
	}

	root := m.ProjectDir(p)
	pulled := 0
	for _, obj := range objects {
		rel := strings.TrimPrefix(obj.Key, prefix)
		if rel == "" {
			continue
		}
		if len(paths) > 0 && !slices.Contains(paths, rel) {
			continue
		}
		local := filepath.Join(root, filepath.FromSlash(rel))
		if !needsPull(local, obj.LastModified) {
			continue
		}

		data, err := m.blobs.GetKey(ctx, obj.Key)
		if err != nil {
			return pulled, fmt.Errorf("downloading %s: %w", rel, err)
		}
		if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
			return pulled, fmt.Errorf("creating directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(local, data, 0o644); err != nil {
			return pulled, fmt.Errorf("writing %s: %w", rel, err)
		}
		pulled++
	}

	if pulled > 0 {
		m.log.Info("Project files pulled",
			"project_id", p.ID,
			"file_count", pulled)
	}
	return pulled, nil
}

// EnsureFilesAvailable makes sure the required files exist locally,
// pulling the whole project from the blob store when any are missing.
// Called before resuming a build that may have started on another
// worker.
func (m *Manager) EnsureFilesAvailable(ctx context.Context, p *models.Project, required []string) error {
	missing := m.missingFiles(p, required)
	if len(missing) == 0 {
		return nil
	}

	m.log.Info("Required files missing locally, pulling project",
		"project_id", p.ID,
		"missing", missing)
	if _, err := m.SyncFromS3(ctx, p); err != nil {
		return err
	}

	if missing = m.missingFiles(p, required); len(missing) > 0 {
		return fmt.Errorf("required files unavailable after sync: %s", strings.Join(missing, ", "))
	}
	return nil
}

// missingFiles returns the required paths absent from the local
// project directory.
func (m *Manager) missingFiles(p *models.Project, required []string) []string {
	root := m.ProjectDir(p)
	var missing []string
	for _, rel := range required {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			missing = append(missing, rel)
		}
	}
	return missing
}

// needsPull reports whether the local copy is absent or stale.
func needsPull(local string, remoteModified time.Time) bool {
	fi, err := os.Stat(local)
	if err != nil {
		return true
	}
	return fi.ModTime().Before(remoteModified)
}

// fileMD5 returns the hex MD5 of a file's contents.
func fileMD5(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
