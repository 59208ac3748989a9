package siteconfig

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
	router.Get("/profile-image", handler.getProfileImage)
	router.Get("/contact-info", handler.getContactInfo)

	// Admin
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(handler.requireAdmin)

		adminRoute.Put("/profile-image", handler.setProfileImage)
		adminRoute.Patch("/contact-info", handler.updateContactInfo)
	})
}

func (handler *Handler) getProfileImage(writer http.ResponseWriter, request *http.Request) {
	image, err := handler.service.ProfileImage(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, image)
}

func (handler *Handler) setProfileImage(writer http.ResponseWriter, request *http.Request) {
	var input ProfileImagePatch
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	image, err := handler.service.SetProfileImage(request.Context(), input.ProfileImage)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, image)
}

func (handler *Handler) getContactInfo(writer http.ResponseWriter, request *http.Request) {
	info, err := handler.service.ContactInfo(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, info)
}

func (handler *Handler) updateContactInfo(writer http.ResponseWriter, request *http.Request) {
	var patch ContactPatch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	info, err := handler.service.UpdateContactInfo(request.Context(), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, info)
}
