// Package api is the HTTP shell over the control plane: project and
// workflow creation, pause/resume/stop/restart, status views, and
// health. Handlers stay thin; all behavior lives in the services.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nexus-ai/nexus/pkg/blob"
	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/database"
	"github.com/nexus-ai/nexus/pkg/queue"
	"github.com/nexus-ai/nexus/pkg/services"
)

// Server is the API server.
type Server struct {
	db        *database.Client
	cfg       *config.Config
	workflows *services.WorkflowService
	control   *services.ControlService
	projects  *services.ProjectService
	blobs     blob.Store
	pool      *queue.WorkerPool

	router *gin.Engine
	http   *http.Server
	log    *slog.Logger
}

// NewServer creates the API server. pool may be nil on API-only pods.
func NewServer(db *database.Client, cfg *config.Config, blobs blob.Store, pool *queue.WorkerPool) *Server {
	s := &Server{
		db:        db,
		cfg:       cfg,
		workflows: services.NewWorkflowService(db.Client, cfg),
		control:   services.NewControlService(db.Client, cfg),
		projects:  services.NewProjectService(db.Client),
		blobs:     blobs,
		pool:      pool,
		log:       slog.With("component", "api"),
	}
	s.router = s.buildRouter()
	return s
}

// Router returns the configured gin engine, for tests and embedding.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) buildRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), requestLogger(), securityHeaders())

	router.GET("/health", s.healthHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/projects", s.createProjectHandler)
		v1.GET("/projects", s.listProjectsHandler)
		v1.GET("/projects/:id", s.getProjectHandler)

		v1.POST("/workflows/agent-update", s.createAgentUpdateHandler)
		v1.POST("/workflows/tool-build", s.createToolBuildHandler)

		workflow := v1.Group("/workflow/:id")
		{
			workflow.POST("/pause", s.pauseHandler)
			workflow.POST("/resume", s.resumeHandler)
			workflow.POST("/stop", s.stopHandler)
			workflow.POST("/restart", s.restartHandler)
			workflow.GET("/status", s.statusHandler)
			workflow.GET("/stages/:stage/output", s.stageOutputHandler)
		}
	}

	return router
}

// Start serves HTTP on addr. Blocks until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
