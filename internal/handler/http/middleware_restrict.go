package http

import (
	"net/http"
	"slices"

	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/internal/service"
	"github.com/chatnest/api/internal/utils"
	"github.com/chatnest/api/models"
)

// restrictTo returns a middleware that allows only users whose role is in
// the given set. It must run after protect, which puts the resolved user
// into the request context; a missing user is treated as unauthenticated.
//
// Requests by users outside the role set fail with HTTP 403 Forbidden
// ([service.ErrForbidden]).
func (h *Handler) restrictTo(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			currentUser, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				log.Error().Msg("role check reached without authenticated user in context")
				writeError(w, r, service.ErrNotAuthenticated)
				return
			}

			if !slices.Contains(roles, currentUser.Role) {
				log.Warn().
					Int64("id", currentUser.UserID).
					Str("role", string(currentUser.Role)).
					Msg("role not permitted for route")
				writeError(w, r, service.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
