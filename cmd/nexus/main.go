// Nexus control plane server — provides the HTTP API, manages queue
// workers, and drives agent-build workflows to completion.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nexus-ai/nexus/pkg/api"
	"github.com/nexus-ai/nexus/pkg/blob"
	"github.com/nexus-ai/nexus/pkg/cleanup"
	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/database"
	"github.com/nexus-ai/nexus/pkg/deploy"
	"github.com/nexus-ai/nexus/pkg/filesync"
	"github.com/nexus-ai/nexus/pkg/llm"
	"github.com/nexus-ai/nexus/pkg/queue"
	"github.com/nexus-ai/nexus/pkg/services"
	"github.com/nexus-ai/nexus/pkg/version"
	"github.com/nexus-ai/nexus/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica
// coordination. Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting Nexus",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	stats := cfg.Stats()
	slog.Info("Configuration loaded", "workflows", stats.Workflows, "stages", stats.Stages)

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan requeue
	if err := queue.RequeueStartupOrphans(ctx, dbClient.Client, cfg.Queue, podID); err != nil {
		slog.Error("Failed to requeue startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan will catch them
	}

	// 4. Blob store and project file sync
	blobs, err := blob.NewS3Store(ctx, cfg.Blob)
	if err != nil {
		slog.Error("Failed to initialize blob store", "error", err)
		os.Exit(1)
	}
	files := filesync.NewManager(blobs, cfg.ProjectsRoot)
	slog.Info("Blob store initialized", "bucket", cfg.Blob.Bucket)

	// 5. LLM invoker
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on
	// the first invocation.
	invoker, err := llm.NewGRPCInvoker(cfg.LLM.Endpoint, cfg.LLM.InvokeTimeout)
	if err != nil {
		slog.Error("Failed to initialize agent invoker", "addr", cfg.LLM.Endpoint, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := invoker.Close(); err != nil {
			slog.Error("Error closing agent invoker", "error", err)
		}
	}()
	slog.Info("Agent invoker initialized", "addr", cfg.LLM.Endpoint)

	// 6. Workflow engine
	projects := services.NewProjectService(dbClient.Client)
	stages := services.NewStageService(dbClient.Client)
	tasks := services.NewTaskService(dbClient.Client)
	contexts := workflow.NewContextManager(projects, stages, blobs, cfg, cfg.Rules, cfg.ProjectsRoot, cfg.Context)
	executor := workflow.NewExecutor(invoker, contexts, cfg.ProjectsRoot)
	engine := workflow.NewEngine(contexts, executor, cfg.LLM.CostPerMTokens)

	// 7. Deployment service
	runtime := deploy.NewHTTPRuntime(cfg.Deploy.RuntimeEndpoint)
	deployer := deploy.NewService(cfg.Deploy, dbClient.Client, files, runtime)

	// 8. Start worker pool (before HTTP server)
	taskExecutor := queue.NewExecutor(engine, projects, deployer)
	taskExecutor.SetFileSync(files, stages)
	taskExecutor.SetTaskCreator(tasks)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, taskExecutor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Start background retention sweeps
	cleanupService := cleanup.NewService(cfg.Retention, projects, tasks, files)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 10. Start HTTP server (non-blocking)
	httpServer := api.NewServer(dbClient, cfg, blobs, workerPool)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Nexus started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: drain workers first, then the HTTP server
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete tasks will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
