package workflow

import (
	"context"

	"github.com/nexus-ai/nexus/pkg/config"
	"github.com/nexus-ai/nexus/pkg/models"
)

// ProjectStore is the project persistence surface the engine needs.
// Implemented by the services layer over ent.
type ProjectStore interface {
	GetProject(ctx context.Context, projectID string) (*models.Project, error)
	SaveProject(ctx context.Context, p *models.Project) error

	// GetControlStatus re-reads only the control status, used to observe
	// user pause/stop requests between stages without reloading the
	// whole record.
	GetControlStatus(ctx context.Context, projectID string) (models.ControlStatus, error)
}

// StageStore is the stage persistence surface the engine needs.
type StageStore interface {
	ListStages(ctx context.Context, projectID string) ([]*models.StageRecord, error)
	SaveStage(ctx context.Context, rec *models.StageRecord) error
}

// CatalogProvider resolves the stage catalog for a workflow type.
// *config.Config satisfies it.
type CatalogProvider interface {
	Catalog(wt models.WorkflowType) (*config.WorkflowCatalog, error)
}
