package identity

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
)

type providerErrorInput struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RegisterRoutes mounts the relay that turns a client-side provider failure
// into the user-facing message.
func RegisterRoutes(router chi.Router) {
	router.Post("/provider-error", relayProviderError)
}

func relayProviderError(writer http.ResponseWriter, request *http.Request) {
	var input providerErrorInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	providerErr := NewError(input.Code, input.Message)
	respond.OK(writer, map[string]string{
		"code":    providerErr.Code,
		"message": Message(providerErr),
	})
}
