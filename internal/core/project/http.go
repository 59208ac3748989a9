package project

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
)

type Handler struct {
	service      *Service
	requireAdmin func(http.Handler) http.Handler
}

func NewHandler(service *Service, requireAdmin func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, requireAdmin: requireAdmin}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listProjects)
	router.Get("/{id}", handler.getProject)

	// Admin
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(handler.requireAdmin)

		adminRoute.Post("/", handler.createProject)
		adminRoute.Patch("/{id}", handler.updateProject)
		adminRoute.Delete("/{id}", handler.deleteProject)
	})
}

func (handler *Handler) listProjects(writer http.ResponseWriter, request *http.Request) {
	featured := requestutil.QueryBool(request, "featured")

	projects, err := handler.service.ListProjects(request.Context(), Query{
		FeaturedOnly: featured != nil && *featured,
		Limit:        requestutil.QueryInt(request, "limit", 0),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, projects)
}

func (handler *Handler) getProject(writer http.ResponseWriter, request *http.Request) {
	project, err := handler.service.GetProject(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, project)
}

func (handler *Handler) createProject(writer http.ResponseWriter, request *http.Request) {
	var input Project
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateProject(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateProject(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateProject(request.Context(), requestutil.Param(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteProject(writer http.ResponseWriter, request *http.Request) {
	id, err := handler.service.DeleteProject(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"id": id})
}
