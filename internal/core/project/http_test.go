package project_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/core/project"
)

func newRouter(t *testing.T, admin bool) http.Handler {
	t.Helper()

	requireAdmin := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !admin {
				writer.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(writer, request)
		})
	}

	router := chi.NewRouter()
	router.Route("/projects", project.NewHandler(newService(t), requireAdmin).RegisterRoutes)
	return router
}

/*
TestHandler_CreateThenListFeatured drives the admin create and the public featured list.
*/
func TestHandler_CreateThenListFeatured(t *testing.T) {
	router := newRouter(t, true)

	for _, body := range []string{
		`{"title":"One","description":"d","featured":true,"order":1}`,
		`{"title":"Two","description":"d","featured":false,"order":2}`,
	} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/projects/", strings.NewReader(body)))
		require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/projects/?featured=true", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []project.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "One", envelope.Data[0].Title)
}

/*
TestHandler_AdminRoutesGuarded ensures writes need an admin session while reads stay public.
*/
func TestHandler_AdminRoutesGuarded(t *testing.T) {
	router := newRouter(t, false)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/projects/", strings.NewReader(`{"title":"x","description":"y"}`)))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/projects/", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/projects/missing", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
