package message

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/docstore"
)

type Repository interface {
	List(ctx context.Context, orderBy string) ([]Message, error)
	Filter(ctx context.Context, criteria map[string]any, orderBy string, limit int) ([]Message, error)
	Get(ctx context.Context, id string) (*Message, error)
	Create(ctx context.Context, data Message) (Message, error)
	Update(ctx context.Context, id string, patch any) (Message, error)
	Delete(ctx context.Context, id string) (docstore.DeleteResult, error)
}

func NewRepository(store docstore.Store, logger *slog.Logger, clock docstore.Clock) Repository {
	return docstore.NewCollection[Message](store, constants.CollectionMessages, logger, clock)
}
