package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/internal/service"
	"github.com/chatnest/api/internal/utils"
)

type createNotificationRequest struct {
	Message string `json:"message"`

	// TTLSeconds optionally overrides the default notification lifetime.
	TTLSeconds int64 `json:"ttl_seconds,omitempty"`
}

func (h *Handler) createNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	var req createNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	created, err := h.services.NotificationService.Create(ctx, currentUser.UserID, req.Message, time.Duration(req.TTLSeconds)*time.Second)
	if err != nil {
		log.Err(err).Int64("id", currentUser.UserID).Msg("notification creation failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	notifications, err := h.services.NotificationService.List(ctx, currentUser.UserID)
	if err != nil {
		log.Err(err).Int64("id", currentUser.UserID).Msg("notification listing failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, notifications, http.StatusOK)
}
