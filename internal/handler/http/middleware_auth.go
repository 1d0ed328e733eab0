// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, role checks, logging, and tracing
// concerns are all handled at this layer before requests are forwarded
// to the service layer.
package http

import (
	"net/http"

	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/internal/service"
	"github.com/chatnest/api/internal/utils"
)

// protect is an HTTP middleware that enforces session-token authentication.
//
// It looks for the token first in the session cookie, then in the
// "Authorization" header as a bearer token, verifies it via
// [service.AuthService.ParseToken], re-fetches the account behind it via
// [service.AuthService.CurrentUser], and — on success — stores the resolved
// user in the request context under [utils.UserCtxKey] before delegating to
// the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - No token is present in either the cookie or the header
//     ([service.ErrNotAuthenticated]).
//   - The token has expired ([service.ErrTokenIsExpired]) or fails
//     verification ([service.ErrTokenIsInvalid]).
//   - The account behind a valid token no longer exists
//     ([service.ErrTokenUserGone]).
func (h *Handler) protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := tokenFromRequest(r)
		if err != nil {
			log.Err(err).Msg("no session token found in request")
			writeError(w, r, service.ErrNotAuthenticated)
			return
		}

		ctx := r.Context()

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, r, err)
			return
		}

		currentUser, err := h.services.AuthService.CurrentUser(ctx, token.UserID)
		if err != nil {
			log.Err(err).Int64("id", token.UserID).Msg("token owner lookup failed")
			writeError(w, r, err)
			return
		}

		// Store the resolved user in the context so downstream handlers and
		// the role check can use it without re-parsing the token.
		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, &currentUser)))
	})
}

// tokenFromRequest extracts the raw session token from an incoming request.
//
// The session cookie takes precedence; the "Authorization: Bearer <token>"
// header is the fallback for non-browser clients. Returns ErrEmptyToken when
// neither carrier holds a token.
func tokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrEmptyToken
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
