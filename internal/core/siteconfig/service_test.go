package siteconfig_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/core/siteconfig"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/docstore"
	"github.com/taibuivan/folio/pkg/pointer"
)

type recordingRemover struct {
	urls []string
	err  error
}

func (r *recordingRemover) DeleteImage(_ context.Context, url string) error {
	r.urls = append(r.urls, url)
	return r.err
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newService(t *testing.T, remover siteconfig.ImageRemover) (*siteconfig.Service, docstore.Store, *clock) {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	store := docstore.NewMemoryStore()
	c := &clock{now: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)}
	return siteconfig.NewService(siteconfig.NewRepositories(store, logger, c.Now), remover, logger), store, c
}

/*
TestService_ContactInfoGetOrCreate verifies the first write creates the singleton
and later writes merge into it.
*/
func TestService_ContactInfoGetOrCreate(t *testing.T) {
	ctx := context.Background()
	service, store, _ := newService(t, nil)

	before, err := service.ContactInfo(ctx)
	require.NoError(t, err)
	assert.Nil(t, before)

	_, err = service.UpdateContactInfo(ctx, siteconfig.ContactPatch{Email: pointer.To("a@b.com")})
	require.NoError(t, err)

	got, err := service.ContactInfo(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a@b.com", got.Email)
	assert.Equal(t, constants.DocContactInfo, got.ID)

	merged, err := service.UpdateContactInfo(ctx, siteconfig.ContactPatch{Phone: pointer.To("+84 123")})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", merged.Email)
	assert.Equal(t, "+84 123", merged.Phone)

	docs, err := store.List(ctx, constants.CollectionSiteConfig, "")
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

/*
TestService_ContactInfoValidation rejects malformed email and links.
*/
func TestService_ContactInfoValidation(t *testing.T) {
	service, _, _ := newService(t, nil)

	_, err := service.UpdateContactInfo(context.Background(), siteconfig.ContactPatch{Email: pointer.To("nope")})
	assert.Error(t, err)

	_, err = service.UpdateContactInfo(context.Background(), siteconfig.ContactPatch{Github: pointer.To("github.com/me")})
	assert.Error(t, err)
}

/*
TestService_ProfileImageTimestamps checks created_at is kept while updated_at
moves, and that a replaced image is released without blocking on failure.
*/
func TestService_ProfileImageTimestamps(t *testing.T) {
	ctx := context.Background()
	remover := &recordingRemover{err: errors.New("not supported")}
	service, _, c := newService(t, remover)

	first, err := service.SetProfileImage(ctx, "https://cdn.example.com/upload/a.jpg")
	require.NoError(t, err)
	assert.True(t, first.CreatedAt.Equal(c.now))
	assert.True(t, first.UpdatedAt.Equal(c.now))
	assert.Empty(t, remover.urls)

	created := c.now
	c.now = c.now.Add(time.Hour)

	second, err := service.SetProfileImage(ctx, "https://cdn.example.com/upload/b.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/upload/b.jpg", second.ProfileImage)
	assert.True(t, second.CreatedAt.Equal(created))
	assert.True(t, second.UpdatedAt.Equal(c.now))
	assert.Equal(t, []string{"https://cdn.example.com/upload/a.jpg"}, remover.urls)

	_, err = service.SetProfileImage(ctx, "not a url")
	assert.Error(t, err)
}

/*
TestService_ProfileImageSingleWrite verifies the singleton carries only its own
timestamp fields after the first write.
*/
func TestService_ProfileImageSingleWrite(t *testing.T) {
	ctx := context.Background()
	service, store, _ := newService(t, nil)

	_, err := service.SetProfileImage(ctx, "https://cdn.example.com/upload/a.jpg")
	require.NoError(t, err)

	doc, err := store.Get(ctx, constants.CollectionSiteConfig, constants.DocProfileImage)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Contains(t, doc.Fields, siteconfig.FieldCreatedAt)
	assert.Contains(t, doc.Fields, siteconfig.FieldUpdatedAt)
	assert.NotContains(t, doc.Fields, docstore.FieldUpdatedDate)
	assert.NotContains(t, doc.Fields, docstore.FieldCreatedDate)
}
