package blog

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

// RegisterRoutes mounts the public blog, addressed by slug.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listPublished)
	router.Get("/{slug}", handler.readPublished)
}

// RegisterAdminRoutes mounts post management, addressed by id.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Use(handler.requireAdmin)

	router.Get("/", handler.listAll)
	router.Get("/{id}", handler.getPost)
	router.Post("/", handler.createPost)
	router.Patch("/{id}", handler.updatePost)
	router.Delete("/{id}", handler.deletePost)
}

func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	posts, err := handler.service.ListPublished(request.Context(), ListQuery{
		Tag:      query.Get("tag"),
		Category: Category(query.Get("category")),
		Featured: requestutil.QueryBool(request, "featured"),
		Limit:    requestutil.QueryInt(request, "limit", 0),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

func (handler *Handler) readPublished(writer http.ResponseWriter, request *http.Request) {
	post, err := handler.service.ReadPublished(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.ListAll(request.Context(), Status(request.URL.Query().Get("status")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	post, err := handler.service.GetPost(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	var input Post
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreatePost(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updatePost(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdatePost(request.Context(), requestutil.Param(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	id, err := handler.service.DeletePost(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"id": id})
}
