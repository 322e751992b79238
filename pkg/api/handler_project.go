package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nexus-ai/nexus/pkg/models"
	"github.com/nexus-ai/nexus/pkg/services"
)

func (s *Server) getProjectHandler(c *gin.Context) {
	p, err := s.projects.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, p)
}

func (s *Server) listProjectsHandler(c *gin.Context) {
	filter := services.ProjectFilter{
		Status:       models.ProjectStatus(c.Query("status")),
		WorkflowType: models.WorkflowType(c.Query("workflow_type")),
		UserID:       c.Query("user_id"),
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondError(c, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filter.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondError(c, http.StatusBadRequest, "offset must be a non-negative integer")
			return
		}
		filter.Offset = n
	}

	projects, total, err := s.projects.ListProjects(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, ProjectListResponse{
		Projects: projects,
		Total:    total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	})
}
