// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package media talks to the hosted image CDN.

Uploads are unsigned: the request carries only the public cloud name and an
upload preset, and any constraints on what may be uploaded live in the preset
on the CDN side. No API secret is held by this service, which is also why
deletion is not possible from here.

Type and size checks are the caller's job; see [Handler].
*/
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/taibuivan/folio/internal/platform/constants"
)

// ErrNotConfigured is returned when the cloud name or upload preset is missing.
var ErrNotConfigured = errors.New("media: image CDN is not configured (cloud name and upload preset are required)")

// Config identifies the CDN account and preset.
type Config struct {
	CloudName    string
	UploadPreset string
	BaseURL      string
}

// Asset is what the CDN reports for a stored image.
type Asset struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
	Bytes     int64  `json:"bytes"`
}

// CDNError is a non-2xx answer from the CDN.
type CDNError struct {
	StatusCode int
	Message    string
}

func (e *CDNError) Error() string {
	return fmt.Sprintf("media: cdn returned %d: %s", e.StatusCode, e.Message)
}

// Uploader sends images to the CDN.
type Uploader struct {
	config Config
	client *http.Client
	logger *slog.Logger
}

// NewUploader builds an Uploader. A nil client uses one with the CDN timeout.
func NewUploader(config Config, client *http.Client, logger *slog.Logger) *Uploader {
	if config.BaseURL == "" {
		config.BaseURL = constants.DefaultCDNBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: constants.CDNRequestTimeout}
	}
	return &Uploader{config: config, client: client, logger: logger}
}

// Configured reports whether uploads can be attempted at all.
func (uploader *Uploader) Configured() bool {
	return uploader.config.CloudName != "" && uploader.config.UploadPreset != ""
}

func (uploader *Uploader) endpoint() string {
	return fmt.Sprintf("%s/v1_1/%s/image/upload", strings.TrimRight(uploader.config.BaseURL, "/"), uploader.config.CloudName)
}

// UploadImage stores the image read from file and returns the CDN asset.
// It is not retried.
func (uploader *Uploader) UploadImage(ctx context.Context, filename string, file io.Reader) (Asset, error) {
	if !uploader.Configured() {
		return Asset{}, ErrNotConfigured
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return Asset{}, fmt.Errorf("media: build upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return Asset{}, fmt.Errorf("media: read upload: %w", err)
	}
	if err := form.WriteField("upload_preset", uploader.config.UploadPreset); err != nil {
		return Asset{}, fmt.Errorf("media: build upload: %w", err)
	}
	if err := form.Close(); err != nil {
		return Asset{}, fmt.Errorf("media: build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploader.endpoint(), &body)
	if err != nil {
		return Asset{}, fmt.Errorf("media: build upload: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := uploader.client.Do(req)
	if err != nil {
		return Asset{}, fmt.Errorf("media: upload request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Asset{}, fmt.Errorf("media: read cdn response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Asset{}, &CDNError{StatusCode: resp.StatusCode, Message: cdnMessage(raw)}
	}

	var asset Asset
	if err := json.Unmarshal(raw, &asset); err != nil {
		return Asset{}, fmt.Errorf("media: parse cdn response: %w", err)
	}
	if asset.SecureURL == "" {
		return Asset{}, &CDNError{StatusCode: resp.StatusCode, Message: "response has no secure_url"}
	}

	uploader.logger.InfoContext(ctx, "image_uploaded",
		slog.String("public_id", asset.PublicID),
		slog.String("format", asset.Format),
		slog.Int64("bytes", asset.Bytes),
	)
	return asset, nil
}

// DeleteImage is intentionally a no-op that always succeeds: deleting needs a
// signed request with the API secret, which this service does not hold.
// Orphans are cleaned up from the CDN console.
func (uploader *Uploader) DeleteImage(ctx context.Context, url string) error {
	uploader.logger.InfoContext(ctx, "image_delete_skipped", slog.String("url", url))
	return nil
}

// cdnMessage extracts {"error":{"message":...}}, falling back to the raw body.
func cdnMessage(raw []byte) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		return "empty response"
	}
	return text
}
