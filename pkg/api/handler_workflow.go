package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexus-ai/nexus/pkg/services"
)

func (s *Server) createProjectHandler(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.workflows.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, result)
}

func (s *Server) createAgentUpdateHandler(c *gin.Context) {
	var req services.AgentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.workflows.CreateAgentUpdate(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, result)
}

func (s *Server) createToolBuildHandler(c *gin.Context) {
	var req services.ToolBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.workflows.CreateToolBuild(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, result)
}

// stageSelector is the optional body for resume and restart.
type stageSelector struct {
	FromStage string `json:"from_stage,omitempty"`
}

func (s *Server) pauseHandler(c *gin.Context) {
	p, err := s.control.Pause(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, p)
}

func (s *Server) resumeHandler(c *gin.Context) {
	var sel stageSelector
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&sel); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	p, err := s.control.Resume(c.Request.Context(), c.Param("id"), sel.FromStage)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, p)
}

func (s *Server) stopHandler(c *gin.Context) {
	p, err := s.control.Stop(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, p)
}

func (s *Server) restartHandler(c *gin.Context) {
	var sel stageSelector
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&sel); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	p, err := s.control.Restart(c.Request.Context(), c.Param("id"), sel.FromStage)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, p)
}

func (s *Server) statusHandler(c *gin.Context) {
	status, err := s.workflows.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, status)
}

// stageOutputHandler serves the raw output of one stage, fetching
// oversize content from the blob store when only a reference was kept
// in the database.
func (s *Server) stageOutputHandler(c *gin.Context) {
	ctx := c.Request.Context()
	rec, err := s.workflows.GetStageOutput(ctx, c.Param("id"), c.Param("stage"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	content := rec.OutputContent
	if content == "" && rec.OutputS3Ref != "" {
		data, err := s.blobs.Get(ctx, rec.OutputS3Ref)
		if err != nil {
			s.log.Error("Failed to fetch stage output from blob store",
				"project_id", rec.ProjectID, "stage", rec.Name, "ref", rec.OutputS3Ref, "error", err)
			respondError(c, http.StatusBadGateway, "stage output is temporarily unavailable")
			return
		}
		content = string(data)
	}

	resp := StageOutputResponse{
		ProjectID:    rec.ProjectID,
		StageName:    rec.Name,
		Status:       string(rec.Status),
		Content:      content,
		S3ContentRef: rec.OutputS3Ref,
	}
	if rec.DesignDocument != nil {
		resp.DocumentFormat = rec.DesignDocument.Format
	}
	respond(c, http.StatusOK, resp)
}
