package skill

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
	router.Get("/", handler.listSkills)
	router.Get("/grouped", handler.groupedSkills)

	// Admin
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(handler.requireAdmin)

		adminRoute.Get("/{id}", handler.getSkill)
		adminRoute.Post("/", handler.createSkill)
		adminRoute.Patch("/{id}", handler.updateSkill)
		adminRoute.Delete("/{id}", handler.deleteSkill)
	})
}

func (handler *Handler) listSkills(writer http.ResponseWriter, request *http.Request) {
	orderBy := request.URL.Query().Get("order_by")
	if orderBy == "" {
		orderBy = DisplayOrder
	}

	skills, err := handler.service.ListByOrder(request.Context(), orderBy)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, skills)
}

func (handler *Handler) groupedSkills(writer http.ResponseWriter, request *http.Request) {
	groups, err := handler.service.GroupedSkills(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, groups)
}

func (handler *Handler) getSkill(writer http.ResponseWriter, request *http.Request) {
	skill, err := handler.service.GetSkill(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, skill)
}

func (handler *Handler) createSkill(writer http.ResponseWriter, request *http.Request) {
	var input Skill
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateSkill(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateSkill(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateSkill(request.Context(), requestutil.Param(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteSkill(writer http.ResponseWriter, request *http.Request) {
	id, err := handler.service.DeleteSkill(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"id": id})
}
