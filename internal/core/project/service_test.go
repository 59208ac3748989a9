package project_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/core/project"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/docstore"
	"github.com/taibuivan/folio/pkg/pointer"
)

func newService(t *testing.T) *project.Service {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	return project.NewService(project.NewRepository(docstore.NewMemoryStore(), logger, nil), logger)
}

/*
TestService_FeaturedProjects covers the homepage selection: five projects,
three featured, limit two, highest order first.
*/
func TestService_FeaturedProjects(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	seed := []struct {
		title    string
		order    int
		featured bool
	}{
		{"alpha", 1, true},
		{"bravo", 5, false},
		{"charlie", 3, true},
		{"delta", 4, false},
		{"echo", 2, true},
	}
	for _, s := range seed {
		_, err := service.CreateProject(ctx, project.Project{Title: s.title, Description: "d", Order: s.order, Featured: s.featured})
		require.NoError(t, err)
	}

	featured, err := service.ListProjects(ctx, project.Query{FeaturedOnly: true, Limit: 2})
	require.NoError(t, err)
	require.Len(t, featured, 2)
	assert.Equal(t, "charlie", featured[0].Title)
	assert.Equal(t, "echo", featured[1].Title)
	for _, p := range featured {
		assert.True(t, p.Featured)
	}

	all, err := service.ListProjects(ctx, project.Query{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "bravo", all[0].Title)
}

/*
TestService_CreateValidation ensures invalid input never reaches the store.
*/
func TestService_CreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		input project.Project
		field string
	}{
		{"missing title", project.Project{Description: "d"}, project.FieldTitle},
		{"missing description", project.Project{Title: "t"}, project.FieldDescription},
		{"relative github url", project.Project{Title: "t", Description: "d", GithubURL: "github.com/x"}, project.FieldGithubURL},
		{"negative order", project.Project{Title: "t", Description: "d", Order: -1}, project.FieldOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService(t)

			_, err := service.CreateProject(context.Background(), tt.input)

			var appErr *apperr.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			require.NotEmpty(t, appErr.Details)
			assert.Equal(t, tt.field, appErr.Details[0].Field)

			all, err := service.ListProjects(context.Background(), project.Query{})
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

/*
TestService_UpdateAndDelete verifies patch semantics and the not-found mapping.
*/
func TestService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	created, err := service.CreateProject(ctx, project.Project{
		Title: "Folio", Description: "site", Technologies: []string{"go"}, Order: 1,
	})
	require.NoError(t, err)

	updated, err := service.UpdateProject(ctx, created.ID, project.Patch{Featured: pointer.To(true)})
	require.NoError(t, err)
	assert.True(t, updated.Featured)
	assert.Equal(t, "Folio", updated.Title)
	assert.Equal(t, []string{"go"}, updated.Technologies)

	id, err := service.DeleteProject(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, id)

	_, err = service.GetProject(ctx, created.ID)
	var appErr *apperr.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPStatus)

	_, err = service.UpdateProject(ctx, created.ID, project.Patch{Title: pointer.To("x")})
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPStatus)
}
