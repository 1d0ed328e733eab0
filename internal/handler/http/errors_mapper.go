package http

import (
	"errors"
	"net/http"

	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/internal/service"
	"github.com/chatnest/api/internal/store"
	"github.com/chatnest/api/internal/utils"
	"github.com/chatnest/api/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrAccountExists:       http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusBadRequest,

	service.ErrNotAuthenticated: http.StatusUnauthorized,
	service.ErrTokenIsExpired:   http.StatusUnauthorized,
	service.ErrTokenIsInvalid:   http.StatusUnauthorized,
	service.ErrTokenUserGone:    http.StatusUnauthorized,

	service.ErrForbidden:             http.StatusForbidden,
	service.ErrNotConversationMember: http.StatusForbidden,

	// a login against an unknown email answers 404, unlike the 401 the
	// auth middleware gives for a bad token
	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrConversationNotFound: http.StatusNotFound,

	store.ErrNotificationNotSaved: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as a JSON error envelope using the status resolved
// by statusFromError. Internal errors are masked behind a generic message so
// storage details never leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with internal error")
		message = "something went very wrong"
	}

	utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: message}, status)
}
