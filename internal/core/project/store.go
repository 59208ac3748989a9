package project

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/docstore"
)

// Repository is the persistence contract for projects.
type Repository interface {
	List(ctx context.Context, orderBy string) ([]Project, error)
	Filter(ctx context.Context, criteria map[string]any, orderBy string, limit int) ([]Project, error)
	Get(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, data Project) (Project, error)
	Update(ctx context.Context, id string, patch any) (Project, error)
	Delete(ctx context.Context, id string) (docstore.DeleteResult, error)
}

// NewRepository binds the projects collection of store.
func NewRepository(store docstore.Store, logger *slog.Logger, clock docstore.Clock) Repository {
	return docstore.NewCollection[Project](store, constants.CollectionProjects, logger, clock)
}
