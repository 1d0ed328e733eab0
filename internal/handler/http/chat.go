package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/internal/service"
	"github.com/chatnest/api/internal/utils"
	"github.com/go-chi/chi/v5"
)

type postMessageRequest struct {
	Body string `json:"body"`
}

func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	conversationID, err := conversationIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid conversation id in url")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	created, err := h.services.ConversationService.PostMessage(ctx, currentUser.UserID, conversationID, req.Body)
	if err != nil {
		log.Err(err).Int64("conversation_id", conversationID).Msg("message creation failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	conversationID, err := conversationIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid conversation id in url")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	messages, err := h.services.ConversationService.ListMessages(ctx, currentUser.UserID, conversationID)
	if err != nil {
		log.Err(err).Int64("conversation_id", conversationID).Msg("message listing failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

func conversationIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "conversationID"), 10, 64)
}
