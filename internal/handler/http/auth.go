package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/internal/service"
	"github.com/chatnest/api/internal/utils"
	"github.com/chatnest/api/models"
)

// sessionCookieName is the cookie that carries the session token for
// browser clients. API clients may send the same token as a Bearer header
// instead.
const sessionCookieName = "token"

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	createdUser, err := h.services.AuthService.SignUp(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("signup failed")
		writeError(w, r, err)
		return
	}

	h.createSendToken(w, r, createdUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("login failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.createSendToken(w, r, foundUser, http.StatusOK)
}

// createSendToken issues a session token for user, attaches it both as the
// session cookie and in the response envelope, and writes the envelope with
// the given status code.
func (h *Handler) createSendToken(w http.ResponseWriter, r *http.Request, user models.User, statusCode int) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Expires:  time.Now().Add(h.tokenDuration),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		Path:     "/",
	})

	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Token:   token.SignedString,
		User:    user,
	}, statusCode)
}
