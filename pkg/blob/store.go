// Package blob stores oversized stage outputs and synced project files
// in S3-compatible object storage.
package blob

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"
)

// Store is the object storage surface used by context assembly and file
// sync. Implementations must be safe for concurrent use.
type Store interface {
	// Put uploads data under key and returns its reference.
	Put(ctx context.Context, key string, data []byte, metadata map[string]string) (string, error)

	// Get downloads the object behind a reference returned by Put.
	Get(ctx context.Context, ref string) ([]byte, error)

	// GetKey downloads the object at key, or ErrNotFound.
	GetKey(ctx context.Context, key string) ([]byte, error)

	// List returns metadata for all objects under a key prefix.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)

	// Head returns metadata for one object, or ErrNotFound.
	Head(ctx context.Context, key string) (*ObjectInfo, error)
}

// ObjectInfo is metadata for one stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
	Metadata     map[string]string
}

// ErrNotFound indicates the requested object does not exist.
var ErrNotFound = errors.New("object not found")

// StageOutputKey returns the object key for an offloaded stage output.
func StageOutputKey(projectID, stageName string) string {
	return path.Join(projectID, "outputs", stageName+".txt")
}

// ProjectFileKey returns the object key for a synced project file.
// relPath must be slash-separated and relative to the project root.
func ProjectFileKey(projectID, relPath string) string {
	return path.Join(projectID, "files", relPath)
}

// ProjectFilesPrefix returns the key prefix covering all synced files
// of a project.
func ProjectFilesPrefix(projectID string) string {
	return projectID + "/files/"
}

// FormatRef builds the reference string stored on stage rows.
func FormatRef(bucket, key string) string {
	return "s3://" + bucket + "/" + key
}

// ParseRef splits a reference produced by FormatRef.
func ParseRef(ref string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(ref, "s3://")
	if !ok {
		return "", "", fmt.Errorf("invalid blob reference %q", ref)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid blob reference %q", ref)
	}
	return bucket, key, nil
}
