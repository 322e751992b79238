package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nexus-ai/nexus/pkg/models"
)

// Envelope is the uniform JSON response wrapper.
type Envelope struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
}

// respond writes a success envelope.
func respond(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
		RequestID: requestID(c),
	})
}

// respondError writes a failure envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Success:   false,
		Message:   message,
		Timestamp: time.Now().UTC(),
		RequestID: requestID(c),
	})
}

// respondServiceError translates a service-layer error into an
// envelope via the shared mapping.
func respondServiceError(c *gin.Context, err error) {
	status, message := mapServiceError(err)
	respondError(c, status, message)
}

// StageOutputResponse is returned by the stage output endpoint, with
// oversize content already dereferenced from the blob store.
type StageOutputResponse struct {
	ProjectID      string `json:"project_id"`
	StageName      string `json:"stage_name"`
	Status         string `json:"status"`
	Content        string `json:"content"`
	S3ContentRef   string `json:"s3_content_ref,omitempty"`
	DocumentFormat string `json:"document_format,omitempty"`
}

// ProjectListResponse is returned by GET /projects.
type ProjectListResponse struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}
