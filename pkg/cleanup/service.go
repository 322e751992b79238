// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/filesync"
	"github.com/nexus-ai/nexus/pkg/services"
)

// Service periodically enforces retention policies:
//   - Purges terminal task rows past their retention window
//   - Removes local workspaces of long-finished projects (their files
//     stay in the blob store)
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config   *config.RetentionConfig
	projects *services.ProjectService
	tasks    *services.TaskService
	files    *filesync.Manager

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	projects *services.ProjectService,
	tasks *services.TaskService,
	files *filesync.Manager,
) *Service {
	return &Service{
		config:   cfg,
		projects: projects,
		tasks:    tasks,
		files:    files,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"task_retention", s.config.TaskRetention,
		"workspace_ttl", s.config.WorkspaceTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll runs every retention sweep once.
func (s *Service) RunAll(ctx context.Context) {
	s.purgeOldTasks(ctx)
	s.sweepWorkspaces(ctx)
}

func (s *Service) purgeOldTasks(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.TaskRetention)
	count, err := s.tasks.PurgeTerminal(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: task purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged terminal tasks", "count", count)
	}
}

func (s *Service) sweepWorkspaces(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.WorkspaceTTL)
	projects, err := s.projects.ListTerminalBefore(ctx, cutoff, 0)
	if err != nil {
		slog.Error("Retention: terminal project lookup failed", "error", err)
		return
	}

	removed := 0
	for _, p := range projects {
		if err := s.files.RemoveProjectDir(p); err != nil {
			slog.Error("Retention: workspace removal failed",
				"project_id", p.ID, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		slog.Info("Retention: removed finished project workspaces", "count", removed)
	}
}
