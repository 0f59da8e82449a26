// Copyright (c) 2026 Alor Foundation. All rights reserved.

package imgbb

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alorfdn/alor/internal/platform/apperr"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// captureRecorder collects upload outcomes for assertions.
type captureRecorder struct {
	outcomes []bool
}

func (r *captureRecorder) RecordUpload(success bool) {
	r.outcomes = append(r.outcomes, success)
}

func TestUpload(t *testing.T) {
	var receivedImage string
	var receivedKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedKey = r.URL.Query().Get("key")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		receivedImage = r.FormValue("image")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"url": "https://i.ibb.co/abc/full.png",
				"thumb": {"url": "https://i.ibb.co/abc/thumb.png"},
				"delete_url": "https://ibb.co/abc/delete"
			}
		}`))
	}))
	defer server.Close()

	recorder := &captureRecorder{}
	client := NewClientWithBaseURL("test-key", server.URL, recorder, testLogger())

	result, err := client.Upload(context.Background(), "data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)

	assert.Equal(t, "test-key", receivedKey)
	assert.Equal(t, "aGVsbG8=", receivedImage, "data URL prefix must be stripped")
	assert.Equal(t, "https://i.ibb.co/abc/full.png", result.URL)
	assert.Equal(t, "https://i.ibb.co/abc/thumb.png", result.ThumbnailURL)
	assert.Equal(t, "https://ibb.co/abc/delete", result.DeleteURL)
	assert.Equal(t, []bool{true}, recorder.outcomes)
}

func TestUpload_BareBase64PassedThrough(t *testing.T) {
	var receivedImage string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		receivedImage = r.FormValue("image")
		_, _ = w.Write([]byte(`{"success": true, "data": {"url": "u", "thumb": {"url": "t"}, "delete_url": "d"}}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("k", server.URL, nil, testLogger())

	_, err := client.Upload(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", receivedImage)
}

func TestUpload_RejectionCarriesHostMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success": false, "error": {"message": "Invalid base64 string"}}`))
	}))
	defer server.Close()

	recorder := &captureRecorder{}
	client := NewClientWithBaseURL("k", server.URL, recorder, testLogger())

	_, err := client.Upload(context.Background(), "not-base64")
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.CodeUpstream, appErr.Code)
	assert.Equal(t, "Invalid base64 string", appErr.Message, "the host's message is forwarded")
	assert.Equal(t, []bool{false}, recorder.outcomes)
}

func TestUpload_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately closed: connection refused

	client := NewClientWithBaseURL("k", server.URL, nil, testLogger())

	_, err := client.Upload(context.Background(), "aGVsbG8=")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeUpstream, apperr.As(err).Code)
}
