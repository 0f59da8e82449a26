// Copyright (c) 2026 Alor Foundation. All rights reserved.

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alorfdn/alor/internal/platform/middleware"
)

// stubConfig is a fixed-value AppConfig for CORS tests.
type stubConfig struct {
	development  bool
	extraOrigins []string
}

func (c stubConfig) IsDevelopment() bool       { return c.development }
func (c stubConfig) ExtraOriginList() []string { return c.extraOrigins }

func corsProbe(t *testing.T, cfg stubConfig, origin string) *httptest.ResponseRecorder {
	t.Helper()

	handler := middleware.CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	request := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
	request.Header.Set("Origin", origin)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestCORS(t *testing.T) {
	t.Run("foundation domain allowed in production", func(t *testing.T) {
		recorder := corsProbe(t, stubConfig{}, "https://www.alorfoundation.org")
		assert.Equal(t, "https://www.alorfoundation.org", recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin gets no headers", func(t *testing.T) {
		recorder := corsProbe(t, stubConfig{}, "https://evil.example.org")
		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("configured extra origin allowed in production", func(t *testing.T) {
		cfg := stubConfig{extraOrigins: []string{"https://staging.example.org"}}
		recorder := corsProbe(t, cfg, "https://staging.example.org")
		assert.Equal(t, "https://staging.example.org", recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("extra origin match is exact", func(t *testing.T) {
		cfg := stubConfig{extraOrigins: []string{"https://staging.example.org"}}
		recorder := corsProbe(t, cfg, "https://staging.example.org.evil.com")
		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("any origin allowed in development", func(t *testing.T) {
		recorder := corsProbe(t, stubConfig{development: true}, "http://localhost:3000")
		assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
	})
}
