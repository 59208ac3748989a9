package blog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/docstore"
)

type Repository interface {
	List(ctx context.Context, orderBy string) ([]Post, error)
	Filter(ctx context.Context, criteria map[string]any, orderBy string, limit int) ([]Post, error)
	Get(ctx context.Context, id string) (*Post, error)
	Create(ctx context.Context, data Post) (Post, error)
	Update(ctx context.Context, id string, patch any) (Post, error)
	Touch(ctx context.Context, id string, patch any) (Post, error)
	Delete(ctx context.Context, id string) (docstore.DeleteResult, error)
	Now() docstore.Timestamp
}

func NewRepository(store docstore.Store, logger *slog.Logger, clock docstore.Clock) Repository {
	return docstore.NewCollection[Post](store, constants.CollectionBlogPosts, logger, clock)
}
