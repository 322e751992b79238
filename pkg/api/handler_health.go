package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nexus-ai/nexus/pkg/database"
	"github.com/nexus-ai/nexus/pkg/queue"
	"github.com/nexus-ai/nexus/pkg/version"
)

// healthResponse aggregates database and worker pool health.
type healthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database"`
	Workers  *queue.PoolHealth      `json:"workers,omitempty"`
}

func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := healthResponse{Status: "healthy", Version: version.Full()}

	dbHealth, err := database.Health(ctx, s.db.DB())
	resp.Database = dbHealth
	if err != nil {
		resp.Status = "unhealthy"
	}

	if s.pool != nil {
		resp.Workers = s.pool.Health()
		if !resp.Workers.IsHealthy {
			resp.Status = "unhealthy"
		}
	}

	if resp.Status != "healthy" {
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
