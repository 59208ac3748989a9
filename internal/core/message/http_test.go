package message_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/core/message"
	"github.com/taibuivan/folio/internal/platform/notify"
)

func passthrough(next http.Handler) http.Handler { return next }

/*
TestHandler_ContactNotification verifies a repeated submission is stored but its
notification is suppressed.
*/
func TestHandler_ContactNotification(t *testing.T) {
	handler := message.NewHandler(newService(t), passthrough, passthrough, notify.NewCenter())

	router := chi.NewRouter()
	router.Route("/contact", handler.RegisterContactRoutes)
	router.Route("/messages", handler.RegisterRoutes)

	body := `{"name":"Jane","email":"jane@example.com","subject":"Hello","message":"Let us build something."}`

	var responses []message.SubmitResponse
	for i := 0; i < 2; i++ {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/contact/", strings.NewReader(body))
		request.RemoteAddr = "203.0.113.9:5000"
		router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

		var envelope struct {
			Data message.SubmitResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		responses = append(responses, envelope.Data)
	}

	require.NotNil(t, responses[0].Notification)
	assert.Equal(t, notify.KindSuccess, responses[0].Notification.Kind)
	assert.Nil(t, responses[1].Notification)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/messages/unread-count", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"unread":2}}`, recorder.Body.String())
}

/*
TestHandler_ContactValidation returns field details with 400.
*/
func TestHandler_ContactValidation(t *testing.T) {
	handler := message.NewHandler(newService(t), passthrough, passthrough, notify.NewCenter())
	router := chi.NewRouter()
	router.Route("/contact", handler.RegisterContactRoutes)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/contact/", strings.NewReader(`{"name":"J"}`)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"VALIDATION_ERROR"`)
}
