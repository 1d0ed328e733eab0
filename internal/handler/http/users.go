package http

import (
	"net/http"

	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/internal/service"
	"github.com/chatnest/api/internal/utils"
)

// me returns the account of the authenticated caller.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	currentUser, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	utils.WriteJSON(w, currentUser.Sanitized(), http.StatusOK)
}

// listUsers returns every account. The route is restricted to admins.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.AuthService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
