package experience

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
	router.Get("/", handler.listExperience)

	// Admin
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(handler.requireAdmin)

		adminRoute.Get("/{id}", handler.getExperience)
		adminRoute.Post("/", handler.createExperience)
		adminRoute.Patch("/{id}", handler.updateExperience)
		adminRoute.Delete("/{id}", handler.deleteExperience)
	})
}

func (handler *Handler) listExperience(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.service.ListExperience(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}

func (handler *Handler) getExperience(writer http.ResponseWriter, request *http.Request) {
	entry, err := handler.service.GetExperience(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entry)
}

func (handler *Handler) createExperience(writer http.ResponseWriter, request *http.Request) {
	var input Experience
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateExperience(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateExperience(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateExperience(request.Context(), requestutil.Param(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteExperience(writer http.ResponseWriter, request *http.Request) {
	id, err := handler.service.DeleteExperience(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"id": id})
}
