package siteconfig

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/docstore"
)

// Singleton is the access a fixed-id document needs.
type Singleton[T any] interface {
	Get(ctx context.Context, id string) (*T, error)
	Upsert(ctx context.Context, id string, patch any) (T, bool, error)
	Now() docstore.Timestamp
}

// Repositories binds both singletons to the site_config collection.
type Repositories struct {
	ProfileImages Singleton[ProfileImage]
	ContactInfos  Singleton[ContactInfo]
}

func NewRepositories(store docstore.Store, logger *slog.Logger, clock docstore.Clock) Repositories {
	return Repositories{
		ProfileImages: docstore.NewCollection[ProfileImage](store, constants.CollectionSiteConfig, logger, clock),
		ContactInfos:  docstore.NewCollection[ContactInfo](store, constants.CollectionSiteConfig, logger, clock),
	}
}
