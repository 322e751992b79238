package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nexus-ai/nexus/ent"
	"github.com/nexus-ai/nexus/ent/project"
	"github.com/nexus-ai/nexus/ent/task"
	"github.com/nexus-ai/nexus/pkg/config"
)

const errorKindRetryExhausted = "retry_exhausted"

// orphanState tracks orphan scan metrics (thread-safe).
type orphanState struct {
	mu       sync.Mutex
	lastScan time.Time
	requeued int
}

// runOrphanScan periodically requeues tasks with expired leases.
// All pods run this independently — the updates are conditional, so
// concurrent scans and claims never double-requeue.
func (p *WorkerPool) runOrphanScan(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.scanExpiredLeases(ctx); err != nil {
				slog.Error("Orphan scan failed", "error", err)
			}
		}
	}
}

// scanExpiredLeases finds running tasks whose lease has lapsed and puts
// them back in the queue, or fails them once their retries run out.
func (p *WorkerPool) scanExpiredLeases(ctx context.Context) error {
	now := time.Now()

	expired, err := p.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusRunning),
			task.LeaseExpiresAtNotNil(),
			task.LeaseExpiresAtLT(now),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query expired leases: %w", err)
	}

	if len(expired) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected expired task leases", "count", len(expired))

	requeued := 0
	for _, t := range expired {
		ok, err := requeueExpiredTask(ctx, p.client, t, p.config.MaxRetryCount)
		if err != nil {
			slog.Error("Failed to requeue expired task",
				"task_id", t.ID,
				"error", err)
			continue
		}
		if ok {
			requeued++
		}
	}

	p.orphans.mu.Lock()
	p.orphans.lastScan = time.Now()
	p.orphans.requeued += requeued
	p.orphans.mu.Unlock()

	return nil
}

// requeueExpiredTask puts a single expired task back in the queue,
// incrementing its retry count. Past the retry limit the task fails
// terminally and takes its project with it. The update is conditional
// on the lease still being expired, so a worker that reclaimed or
// heartbeat-extended the task in the meantime wins the race.
// Returns whether the task went back to the queue.
func requeueExpiredTask(ctx context.Context, client *ent.Client, t *ent.Task, maxRetries int) (bool, error) {
	now := time.Now()
	retries := t.RetryCount + 1

	if retries > maxRetries {
		msg := fmt.Sprintf("Task exhausted its retries: %d deliveries with no terminal result", retries)
		n, err := client.Task.Update().
			Where(
				task.IDEQ(t.ID),
				task.StatusEQ(task.StatusRunning),
				task.LeaseExpiresAtLT(now),
			).
			SetStatus(task.StatusFailed).
			SetRetryCount(retries).
			SetErrorMessage(msg).
			SetCompletedAt(now).
			ClearLeaseExpiresAt().
			Save(ctx)
		if err != nil || n == 0 {
			return false, err
		}
		slog.Error("Task failed after exhausting retries",
			"task_id", t.ID,
			"project_id", t.ProjectID,
			"retry_count", retries)
		return false, failProject(ctx, client.Project, t.ProjectID, msg)
	}

	n, err := client.Task.Update().
		Where(
			task.IDEQ(t.ID),
			task.StatusEQ(task.StatusRunning),
			task.LeaseExpiresAtLT(now),
		).
		SetStatus(task.StatusQueued).
		SetRetryCount(retries).
		ClearWorkerID().
		ClearLeaseExpiresAt().
		Save(ctx)
	if err != nil || n == 0 {
		return false, err
	}
	slog.Warn("Expired task requeued",
		"task_id", t.ID,
		"project_id", t.ProjectID,
		"retry_count", retries)
	return true, nil
}

// failRetryExhausted fails a retry-exhausted task in place. Called from
// the claim path while the row is locked.
func failRetryExhausted(ctx context.Context, tasks *ent.TaskClient, projects *ent.ProjectClient, t *ent.Task, retries int) error {
	msg := fmt.Sprintf("Task exhausted its retries: %d deliveries with no terminal result", retries)
	err := tasks.UpdateOneID(t.ID).
		SetStatus(task.StatusFailed).
		SetRetryCount(retries).
		SetErrorMessage(msg).
		SetCompletedAt(time.Now()).
		ClearLeaseExpiresAt().
		Exec(ctx)
	if err != nil {
		return err
	}
	slog.Error("Task failed after exhausting retries",
		"task_id", t.ID,
		"project_id", t.ProjectID,
		"retry_count", retries)
	return failProject(ctx, projects, t.ProjectID, msg)
}

// failProject records the retry exhaustion on the owning project.
func failProject(ctx context.Context, projects *ent.ProjectClient, projectID, msg string) error {
	return projects.UpdateOneID(projectID).
		SetStatus(project.StatusFailed).
		SetErrorInfo(map[string]interface{}{
			"kind":    errorKindRetryExhausted,
			"message": msg,
		}).
		Exec(ctx)
}

// RequeueStartupOrphans performs a one-time requeue of tasks still
// leased to this pod's workers from a previous run. Called once during
// startup, before the worker pool begins processing: the tasks resume
// immediately instead of waiting out their leases.
func RequeueStartupOrphans(ctx context.Context, client *ent.Client, cfg *config.QueueConfig, podID string) error {
	orphans, err := client.Task.Query().
		Where(
			task.StatusEQ(task.StatusRunning),
			task.WorkerIDHasPrefix(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	now := time.Now()
	for _, t := range orphans {
		retries := t.RetryCount + 1
		if retries > cfg.MaxRetryCount {
			msg := fmt.Sprintf("Task exhausted its retries: %d deliveries with no terminal result", retries)
			err := client.Task.UpdateOneID(t.ID).
				SetStatus(task.StatusFailed).
				SetRetryCount(retries).
				SetErrorMessage(msg).
				SetCompletedAt(now).
				ClearLeaseExpiresAt().
				Exec(ctx)
			if err != nil {
				slog.Error("Failed to fail startup orphan", "task_id", t.ID, "error", err)
				continue
			}
			if err := failProject(ctx, client.Project, t.ProjectID, msg); err != nil {
				slog.Error("Failed to fail startup orphan project", "task_id", t.ID, "error", err)
			}
			continue
		}

		err := client.Task.UpdateOneID(t.ID).
			SetStatus(task.StatusQueued).
			SetRetryCount(retries).
			ClearWorkerID().
			ClearLeaseExpiresAt().
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to requeue startup orphan", "task_id", t.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan requeued", "task_id", t.ID, "retry_count", retries)
	}

	return nil
}
