package experience

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/docstore"
)

type Repository interface {
	List(ctx context.Context, orderBy string) ([]Experience, error)
	Get(ctx context.Context, id string) (*Experience, error)
	Create(ctx context.Context, data Experience) (Experience, error)
	Update(ctx context.Context, id string, patch any) (Experience, error)
	Delete(ctx context.Context, id string) (docstore.DeleteResult, error)
}

func NewRepository(store docstore.Store, logger *slog.Logger, clock docstore.Clock) Repository {
	return docstore.NewCollection[Experience](store, constants.CollectionExperience, logger, clock)
}
