// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/platform/validate"
)

// multipartOverhead leaves room for form boundaries on top of the file limit.
const multipartOverhead = 1 << 20

// ImageStore is the CDN surface the handler needs.
type ImageStore interface {
	UploadImage(ctx context.Context, filename string, file io.Reader) (Asset, error)
	DeleteImage(ctx context.Context, url string) error
}

// UploadResult is returned to the dashboard after an upload.
type UploadResult struct {
	Asset
	PreviewURL string `json:"preview_url"`
	SrcSet     string `json:"srcset"`
}

type Handler struct {
	images       ImageStore
	requireAdmin func(http.Handler) http.Handler
}

func NewHandler(images ImageStore, requireAdmin func(http.Handler) http.Handler) *Handler {
	return &Handler{images: images, requireAdmin: requireAdmin}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(handler.requireAdmin)

	router.Post("/images", handler.upload)
	router.Delete("/images", handler.delete)
}

func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxUploadBytes+multipartOverhead)

	file, header, err := request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(writer, request, validate.RequiredError("file", "Image must be 10 MB or smaller"))
			return
		}
		respond.Error(writer, request, validate.RequiredError("file", "A multipart field named 'file' is required"))
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > constants.MaxUploadBytes {
		respond.Error(writer, request, validate.RequiredError("file", "Image must be 10 MB or smaller"))
		return
	}

	sniff := make([]byte, 512)
	n, err := io.ReadFull(file, sniff)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}
	if !strings.HasPrefix(http.DetectContentType(sniff[:n]), "image/") {
		respond.Error(writer, request, validate.RequiredError("file", "Only image files can be uploaded"))
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	asset, err := handler.images.UploadImage(request.Context(), header.Filename, file)
	if err != nil {
		respond.Error(writer, request, UploadError(err))
		return
	}

	respond.Created(writer, UploadResult{
		Asset:      asset,
		PreviewURL: Preview(asset.SecureURL),
		SrcSet:     ResponsiveSet(asset.SecureURL),
	})
}

type deleteInput struct {
	URL string `json:"url"`
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	var input deleteInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Best effort: the result is reported as success either way.
	_ = handler.images.DeleteImage(request.Context(), input.URL)
	respond.OK(writer, map[string]any{"url": input.URL, "deleted": true})
}

// UploadError maps an upload failure onto the API error taxonomy.
func UploadError(err error) *apperr.AppError {
	var cdnErr *CDNError
	switch {
	case errors.Is(err, ErrNotConfigured):
		return apperr.Configuration("Image uploads are not configured: set CLOUDINARY_CLOUD_NAME and CLOUDINARY_UPLOAD_PRESET")
	case errors.As(err, &cdnErr):
		return apperr.BadGateway("Image upload failed: "+cdnErr.Message, err)
	default:
		return apperr.BadGateway("Image upload failed", err)
	}
}
