// Copyright (c) 2026 Alor Foundation. All rights reserved.

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alorfdn/alor/internal/platform/ctxutil"
	"github.com/alorfdn/alor/internal/platform/middleware"
	"github.com/alorfdn/alor/internal/platform/sec"
)

// mockVerifier maps literal token strings to claims.
type mockVerifier struct {
	claims map[string]*sec.AuthClaims
}

func (m *mockVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if c, ok := m.claims[tokenStr]; ok {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

// mockResolver reports existence from a fixed ID set.
type mockResolver struct {
	existing map[string]bool
}

func (m *mockResolver) IdentityExists(_ context.Context, userID string) (bool, error) {
	return m.existing[userID], nil
}

/*
TestDecide covers the ordered two-stage authorization decision.
*/
func TestDecide(t *testing.T) {
	adminClaims := &sec.AuthClaims{UserID: "u-admin", Role: string(sec.RoleAdmin)}
	userClaims := &sec.AuthClaims{UserID: "u-user", Role: string(sec.RoleUser)}

	tests := []struct {
		name     string
		claims   *sec.AuthClaims
		required sec.UserRole
		want     middleware.Decision
	}{
		{"anonymous_admin_route", nil, sec.RoleAdmin, middleware.DecisionUnauthenticated},
		{"anonymous_user_route", nil, sec.RoleUser, middleware.DecisionUnauthenticated},
		{"user_on_admin_route", userClaims, sec.RoleAdmin, middleware.DecisionForbidden},
		{"user_on_user_route", userClaims, sec.RoleUser, middleware.DecisionAllowed},
		{"admin_on_admin_route", adminClaims, sec.RoleAdmin, middleware.DecisionAllowed},
		{"admin_on_user_route", adminClaims, sec.RoleUser, middleware.DecisionAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, middleware.Decide(tt.claims, tt.required))
		})
	}
}

/*
TestRequireAdmin_Unauthenticated verifies the 401 short-circuit: the wrapped
handler must never execute.
*/
func TestRequireAdmin_Unauthenticated(t *testing.T) {
	handlerCalled := false
	protected := middleware.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	recorder := httptest.NewRecorder()
	protected.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/dashboard/stats", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, handlerCalled, "controller must not run without a credential")
}

/*
TestRequireAdmin_Forbidden verifies the 403 short-circuit for a valid
non-admin credential.
*/
func TestRequireAdmin_Forbidden(t *testing.T) {
	handlerCalled := false
	protected := middleware.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	request := httptest.NewRequest("GET", "/api/users", nil)
	ctx := ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: "u-1", Role: string(sec.RoleUser)})

	recorder := httptest.NewRecorder()
	protected.ServeHTTP(recorder, request.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.False(t, handlerCalled, "controller must not run for a non-admin")
}

/*
TestRequireAdmin_Allowed verifies an admin credential reaches the handler.
*/
func TestRequireAdmin_Allowed(t *testing.T) {
	handlerCalled := false
	protected := middleware.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	}))

	request := httptest.NewRequest("GET", "/api/users", nil)
	ctx := ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: "u-2", Role: string(sec.RoleAdmin)})

	recorder := httptest.NewRecorder()
	protected.ServeHTTP(recorder, request.WithContext(ctx))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, handlerCalled)
}

/*
TestAuthenticate covers token extraction, verification, and identity resolution.
*/
func TestAuthenticate(t *testing.T) {
	verifier := &mockVerifier{claims: map[string]*sec.AuthClaims{
		"good-token":  {UserID: "u-live", Role: string(sec.RoleAdmin)},
		"ghost-token": {UserID: "u-deleted", Role: string(sec.RoleAdmin)},
	}}
	resolver := &mockResolver{existing: map[string]bool{"u-live": true}}

	chain := middleware.Authenticate(verifier, resolver)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantClaims bool
	}{
		{"anonymous_passes_through", "", http.StatusOK, false},
		{"valid_token", "Bearer good-token", http.StatusOK, true},
		{"malformed_header", "good-token", http.StatusUnauthorized, false},
		{"unknown_token", "Bearer bad-token", http.StatusUnauthorized, false},
		{"deleted_identity", "Bearer ghost-token", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenClaims *sec.AuthClaims
			handler := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenClaims = ctxutil.GetAuthUser(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			request := httptest.NewRequest("GET", "/api/blogs", nil)
			if tt.authHeader != "" {
				request.Header.Set("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantClaims {
				require.NotNil(t, seenClaims)
				assert.Equal(t, "u-live", seenClaims.UserID)
			} else {
				assert.Nil(t, seenClaims)
			}
		})
	}
}
