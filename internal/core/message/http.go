package message

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/middleware"
	"github.com/taibuivan/folio/internal/platform/notify"
	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/pkg/pagination"
)

const sentNotice = "Thanks for reaching out! I'll get back to you soon."

type Handler struct {
	service      *Service
	requireAdmin func(http.Handler) http.Handler
	contactLimit func(http.Handler) http.Handler
	notices      *notify.Center
}

// NewHandler wires the contact form and the admin inbox. contactLimit guards
// the public submit route.
func NewHandler(service *Service, requireAdmin, contactLimit func(http.Handler) http.Handler, notices *notify.Center) *Handler {
	return &Handler{
		service:      service,
		requireAdmin: requireAdmin,
		contactLimit: contactLimit,
		notices:      notices,
	}
}

// SubmitResponse is returned to the contact form.
type SubmitResponse struct {
	ID           string               `json:"id"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

// RegisterContactRoutes mounts the public form.
func (handler *Handler) RegisterContactRoutes(router chi.Router) {
	router.With(handler.contactLimit).Post("/", handler.submit)
}

// RegisterRoutes mounts the admin inbox.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(handler.requireAdmin)

	router.Get("/", handler.inbox)
	router.Get("/unread-count", handler.unreadCount)
	router.Get("/{id}", handler.getMessage)
	router.Patch("/{id}/read", handler.markRead)
	router.Delete("/{id}", handler.deleteMessage)
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input Submission
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Submit(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	response := SubmitResponse{ID: created.ID}
	if notification, shown := handler.notices.Show(middleware.RealIP(request), sentNotice, notify.KindSuccess); shown {
		response.Notification = &notification
	}
	respond.Created(writer, response)
}

func (handler *Handler) inbox(writer http.ResponseWriter, request *http.Request) {
	unread := requestutil.QueryBool(request, "unread")

	messages, meta, err := handler.service.Inbox(request.Context(), pagination.FromRequest(request), unread != nil && *unread)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, messages, meta)
}

func (handler *Handler) unreadCount(writer http.ResponseWriter, request *http.Request) {
	count, err := handler.service.UnreadCount(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int{"unread": count})
}

func (handler *Handler) getMessage(writer http.ResponseWriter, request *http.Request) {
	message, err := handler.service.GetMessage(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, message)
}

func (handler *Handler) markRead(writer http.ResponseWriter, request *http.Request) {
	var patch ReadPatch
	if request.ContentLength != 0 {
		if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	updated, err := handler.service.MarkRead(request.Context(), requestutil.Param(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteMessage(writer http.ResponseWriter, request *http.Request) {
	id, err := handler.service.DeleteMessage(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"id": id})
}
