package http

import (
	"encoding/json"
	"net/http"

	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/internal/service"
	"github.com/chatnest/api/internal/utils"
)

type createConversationRequest struct {
	Name         string  `json:"name"`
	Participants []int64 `json:"participants"`
}

func (h *Handler) createConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	var req createConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	created, err := h.services.ConversationService.Create(ctx, currentUser.UserID, req.Name, req.Participants)
	if err != nil {
		log.Err(err).Int64("id", currentUser.UserID).Msg("conversation creation failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listConversations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	conversations, err := h.services.ConversationService.List(ctx, currentUser.UserID)
	if err != nil {
		log.Err(err).Int64("id", currentUser.UserID).Msg("conversation listing failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, conversations, http.StatusOK)
}
