package resume

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/middleware"
	"github.com/taibuivan/folio/internal/platform/notify"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/platform/validate"
)

// Source supplies the data to render; [Assembler.Load] in production.
type Source func(ctx context.Context) (Data, error)

type Handler struct {
	renderer *Renderer
	source   Source
	notices  *notify.Center
}

func NewHandler(renderer *Renderer, source Source, notices *notify.Center) *Handler {
	return &Handler{renderer: renderer, source: source, notices: notices}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.download)
	router.Get("/templates", handler.listTemplates)
}

func (handler *Handler) download(writer http.ResponseWriter, request *http.Request) {
	kind, err := ParseKind(request.URL.Query().Get("template"))
	if err != nil {
		names := make([]string, 0, len(Kinds))
		for _, k := range Kinds {
			names = append(names, string(k))
		}
		validator := &validate.Validator{}
		validator.OneOf("template", request.URL.Query().Get("template"), names...)
		respond.Error(writer, request, validator.Err())
		return
	}

	data, err := handler.source(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var document bytes.Buffer
	if err := handler.renderer.Render(request.Context(), data, kind, &document); err != nil {
		if errors.Is(err, ErrUnknownTemplate) {
			respond.Error(writer, request, apperr.ValidationError(err.Error()))
			return
		}
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	fileName := FileName(data.Personal.FullName, kind)
	if handler.notices != nil {
		notice, shown := handler.notices.Show(middleware.RealIP(request), "Resume downloaded: "+fileName, notify.KindSuccess)
		if shown {
			if encoded, err := json.Marshal(notice); err == nil {
				writer.Header().Set(constants.HeaderXNotification, string(encoded))
			}
		}
	}

	respond.Attachment(writer, "application/pdf", fileName, document.Bytes())
}

type templateInfo struct {
	Kind  Kind   `json:"kind"`
	Label string `json:"label"`
}

func (handler *Handler) listTemplates(writer http.ResponseWriter, _ *http.Request) {
	infos := make([]templateInfo, 0, len(Kinds))
	for _, kind := range Kinds {
		infos = append(infos, templateInfo{Kind: kind, Label: kind.Label()})
	}
	respond.OK(writer, infos)
}
