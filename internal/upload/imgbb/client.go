// Copyright (c) 2026 Alor Foundation. All rights reserved.

/*
Package imgbb uploads images to the ImgBB hosting service.

The site never stores image bytes itself: admin uploads arrive as base64
data URLs, are forwarded to ImgBB, and only the returned URLs are persisted.
*/
package imgbb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/alorfdn/alor/internal/platform/apperr"
)

// DefaultBaseURL is the production ImgBB upload endpoint.
const DefaultBaseURL = "https://api.imgbb.com/1/upload"

// uploadTimeout bounds a single upload round-trip. Large base64 payloads
// over slow links still need generous headroom.
const uploadTimeout = 30 * time.Second

// Result holds the hosted locations returned by ImgBB for one image.
type Result struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	DeleteURL    string `json:"deleteUrl"`
}

// Uploader abstracts the image host so services can be tested without HTTP.
type Uploader interface {
	Upload(ctx context.Context, dataURL string) (*Result, error)
}

// UploadRecorder counts upload outcomes, typically the metrics collector.
// A nil recorder disables counting.
type UploadRecorder interface {
	RecordUpload(success bool)
}

// Client is the HTTP ImgBB client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	recorder   UploadRecorder
	logger     *slog.Logger
}

// NewClient constructs a Client for the production endpoint.
func NewClient(apiKey string, recorder UploadRecorder, logger *slog.Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: uploadTimeout},
		recorder:   recorder,
		logger:     logger,
	}
}

// NewClientWithBaseURL constructs a Client against a custom endpoint.
// Used by tests to point at a local server.
func NewClientWithBaseURL(apiKey, baseURL string, recorder UploadRecorder, logger *slog.Logger) *Client {
	client := NewClient(apiKey, recorder, logger)
	client.baseURL = baseURL
	return client
}

func (client *Client) record(success bool) {
	if client.recorder != nil {
		client.recorder.RecordUpload(success)
	}
}

// uploadResponse mirrors the relevant parts of the ImgBB response body.
type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL   string `json:"url"`
		Thumb struct {
			URL string `json:"url"`
		} `json:"thumb"`
		DeleteURL string `json:"delete_url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

/*
Upload forwards a base64 image to ImgBB and returns its hosted locations.

Description: Accepts either a full data URL ("data:image/png;base64,....")
or bare base64; everything up to and including the first comma is stripped.

Parameters:
  - ctx: context.Context
  - dataURL: base64 image payload

Returns:
  - *Result: Hosted URL, thumbnail URL, and delete URL
  - error: apperr.Upstream carrying the host's message on rejection
*/
func (client *Client) Upload(ctx context.Context, dataURL string) (*Result, error) {
	base64Data := dataURL
	if idx := strings.Index(dataURL, ","); idx >= 0 {
		base64Data = dataURL[idx+1:]
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("image", base64Data); err != nil {
		return nil, fmt.Errorf("imgbb: write form field: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("imgbb: close form: %w", err)
	}

	url := client.baseURL + "?key=" + client.apiKey
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("imgbb: build request: %w", err)
	}
	request.Header.Set("Content-Type", form.FormDataContentType())

	response, err := client.httpClient.Do(request)
	if err != nil {
		client.record(false)
		return nil, apperr.Upstream("Image host is unreachable", err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		client.record(false)
		return nil, apperr.Upstream("Image host returned an unreadable response", err)
	}

	var decoded uploadResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		client.record(false)
		return nil, apperr.Upstream("Image host returned an invalid response", err)
	}

	if !decoded.Success {
		message := decoded.Error.Message
		if message == "" {
			message = "Failed to upload image"
		}
		client.logger.Error("imgbb_upload_rejected",
			slog.Int("status", response.StatusCode),
			slog.String("message", message),
		)
		client.record(false)
		return nil, apperr.Upstream(message, nil)
	}

	client.record(true)
	return &Result{
		URL:          decoded.Data.URL,
		ThumbnailURL: decoded.Data.Thumb.URL,
		DeleteURL:    decoded.Data.DeleteURL,
	}, nil
}
