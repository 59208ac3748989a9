// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/media"
)

// fakeCDN accepts uploads for cloud "demo" with preset "unsigned".
func fakeCDN(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/v1_1/demo/image/upload" {
			http.NotFound(writer, request)
			return
		}
		if request.FormValue("upload_preset") != "unsigned" {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(writer, `{"error":{"message":"Upload preset not found"}}`)
			return
		}

		file, header, err := request.FormFile("file")
		if err != nil {
			writer.WriteHeader(http.StatusBadRequest)
			return
		}
		content, _ := io.ReadAll(file)

		_ = json.NewEncoder(writer).Encode(map[string]any{
			"secure_url": "https://res.example.com/demo/image/upload/v1/" + header.Filename,
			"public_id":  strings.TrimSuffix(header.Filename, ".png"),
			"width":      10,
			"height":     20,
			"format":     "png",
			"bytes":      len(content),
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func newUploader(baseURL, cloud, preset string) *media.Uploader {
	return media.NewUploader(media.Config{CloudName: cloud, UploadPreset: preset, BaseURL: baseURL}, nil, slog.New(slog.DiscardHandler))
}

/*
TestUploader_UploadImage covers success, configuration errors and CDN errors.
*/
func TestUploader_UploadImage(t *testing.T) {
	server := fakeCDN(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		asset, err := newUploader(server.URL, "demo", "unsigned").UploadImage(ctx, "me.png", strings.NewReader("pixels"))
		require.NoError(t, err)
		assert.Equal(t, "https://res.example.com/demo/image/upload/v1/me.png", asset.SecureURL)
		assert.Equal(t, "me", asset.PublicID)
		assert.Equal(t, int64(6), asset.Bytes)
	})

	t.Run("missing preset", func(t *testing.T) {
		_, err := newUploader(server.URL, "demo", "").UploadImage(ctx, "me.png", strings.NewReader("x"))
		assert.ErrorIs(t, err, media.ErrNotConfigured)
		assert.Equal(t, "CONFIGURATION_ERROR", media.UploadError(err).Code)
	})

	t.Run("missing cloud", func(t *testing.T) {
		_, err := newUploader(server.URL, "", "unsigned").UploadImage(ctx, "me.png", strings.NewReader("x"))
		assert.ErrorIs(t, err, media.ErrNotConfigured)
	})

	t.Run("cdn rejects", func(t *testing.T) {
		_, err := newUploader(server.URL, "demo", "other").UploadImage(ctx, "me.png", strings.NewReader("x"))

		var cdnErr *media.CDNError
		require.True(t, errors.As(err, &cdnErr))
		assert.Equal(t, http.StatusBadRequest, cdnErr.StatusCode)
		assert.Equal(t, "Upload preset not found", cdnErr.Message)
		assert.Equal(t, http.StatusBadGateway, media.UploadError(err).HTTPStatus)
	})
}

/*
TestUploader_DeleteImageAlwaysSucceeds documents the no-op delete.
*/
func TestUploader_DeleteImageAlwaysSucceeds(t *testing.T) {
	uploader := newUploader("http://127.0.0.1:1", "", "")
	assert.NoError(t, uploader.DeleteImage(context.Background(), "https://res.example.com/x.png"))
}

/*
TestTransform checks the transformation segment is placed after /upload/.
*/
func TestTransform(t *testing.T) {
	const source = "https://res.example.com/demo/image/upload/v1/me.png"

	tests := []struct {
		name string
		url  string
		opts media.Options
		want string
	}{
		{"all options", source, media.Options{Width: 300, Height: 200, Crop: "fill", Quality: "auto", Format: "webp"},
			"https://res.example.com/demo/image/upload/w_300,h_200,c_fill,q_auto,f_webp/v1/me.png"},
		{"width only", source, media.Options{Width: 50}, "https://res.example.com/demo/image/upload/w_50/v1/me.png"},
		{"no options", source, media.Options{}, source},
		{"foreign url", "https://example.com/me.png", media.Options{Width: 50}, "https://example.com/me.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, media.Transform(tt.url, tt.opts))
		})
	}

	assert.Equal(t, "https://res.example.com/demo/image/upload/w_400,c_limit,q_auto,f_auto/v1/me.png", media.Preview(source))
	assert.Equal(t,
		"https://res.example.com/demo/image/upload/w_320,c_scale,q_auto,f_auto/v1/me.png 320w, "+
			"https://res.example.com/demo/image/upload/w_640,c_scale,q_auto,f_auto/v1/me.png 640w",
		media.ResponsiveSet(source, 320, 640))
	assert.Len(t, strings.Split(media.ResponsiveSet(source), ", "), len(media.DefaultWidths))
}
