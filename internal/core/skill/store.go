package skill

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/docstore"
)

type Repository interface {
	List(ctx context.Context, orderBy string) ([]Skill, error)
	Get(ctx context.Context, id string) (*Skill, error)
	Create(ctx context.Context, data Skill) (Skill, error)
	Update(ctx context.Context, id string, patch any) (Skill, error)
	Delete(ctx context.Context, id string) (docstore.DeleteResult, error)
}

func NewRepository(store docstore.Store, logger *slog.Logger, clock docstore.Clock) Repository {
	return docstore.NewCollection[Skill](store, constants.CollectionSkills, logger, clock)
}
