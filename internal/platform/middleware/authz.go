// Copyright (c) 2026 Alor Foundation. All rights reserved.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/alorfdn/alor/internal/platform/apperr"
	"github.com/alorfdn/alor/internal/platform/ctxutil"
	"github.com/alorfdn/alor/internal/platform/respond"
	"github.com/alorfdn/alor/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the `sec`
// implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// IdentityResolver confirms that a token's bound identity still exists.
//
// A signed token can outlive its account (e.g. the user was deleted). Every
// authenticated request re-checks existence so stale tokens are rejected
// before any handler runs.
type IdentityResolver interface {
	IdentityExists(ctx context.Context, userID string) (bool, error)
}

// # Authorization Decision

// Decision is the outcome of the two-stage authorization check.
//
// The gate is deliberately explicit: rather than relying on implicit
// middleware ordering, every protected route's verdict is a single tagged
// value produced by [Decide].
type Decision int

const (
	// DecisionAllowed permits the request to reach its handler.
	DecisionAllowed Decision = iota
	// DecisionUnauthenticated rejects with 401: no resolved identity.
	DecisionUnauthenticated
	// DecisionForbidden rejects with 403: identity resolved, role insufficient.
	DecisionForbidden
)

// Decide evaluates the ordered two-stage check for a request.
//
// Stage 1 (authentication): claims must be present.
// Stage 2 (authorization): the claims' role must meet requiredRole.
//
// Authentication always runs before the role check, so an anonymous request
// to an admin route yields Unauthenticated, never Forbidden.
func Decide(claims *sec.AuthClaims, requiredRole sec.UserRole) Decision {
	if claims == nil {
		return DecisionUnauthenticated
	}

	if !sec.UserRole(claims.Role).AtLeast(requiredRole) {
		return DecisionForbidden
	}

	return DecisionAllowed
}

// # Middleware

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous.
//  3. If present, parse and verify the JWT via [TokenVerifier].
//  4. Resolve the bound identity via [IdentityResolver]; a deleted account
//     invalidates the token.
//  5. Inject [*sec.AuthClaims] into the request context for downstream use.
func Authenticate(verifier TokenVerifier, resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			tokenStr := parts[1]
			claims, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Identity Resolution ────────────────────────────────────────
			exists, err := resolver.IdentityExists(request.Context(), claims.UserID)
			if err != nil {
				respond.Error(writer, request, apperr.Internal(err))
				return
			}
			if !exists {
				respond.Error(writer, request, apperr.Unauthorized("Account no longer exists"))
				return
			}

			// ── 5. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch Decide(ctxutil.GetAuthUser(request.Context()), sec.RoleUser) {
		case DecisionUnauthenticated:
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
		default:
			next.ServeHTTP(writer, request)
		}
	})
}

// RequireRole blocks requests whose authenticated user lacks the required role.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. It automatically
// implies [RequireAuth] so you don't need to mount both.
func RequireRole(role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			switch Decide(ctxutil.GetAuthUser(request.Context()), role) {
			case DecisionUnauthenticated:
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			case DecisionForbidden:
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
			default:
				next.ServeHTTP(writer, request)
			}
		})
	}
}

// RequireAdmin is shorthand for the admin gate used by every protected route.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(sec.RoleAdmin)(next)
}

// GetUser retrieves the [*sec.AuthClaims] from the [context.Context].
//
// # Returns
//   - A pointer to [*sec.AuthClaims] if the user is authenticated.
//   - nil if the user is anonymous.
func GetUser(ctx context.Context) *sec.AuthClaims {
	return ctxutil.GetAuthUser(ctx)
}
