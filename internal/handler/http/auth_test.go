// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chatnest/api/internal/service"
	"github.com/chatnest/api/internal/store"
	"github.com/chatnest/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{AuthService: auth})
}

// sessionCookie finds the session cookie in a recorded response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatalf("no %q cookie in response", sessionCookieName)
	return nil
}

// ─────────────────────────────────────────────
// signup
// ─────────────────────────────────────────────

// TestSignup_Success verifies that a valid signup answers 201 Created with
// the auth envelope and sets the session cookie.
func TestSignup_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		signUpFn: func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "Alice", u.Name)
			assert.Equal(t, "alice@example.com", u.Email)
			assert.Equal(t, "s3cret", u.Password)
			u.UserID = 7
			u.Password = ""
			return u, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken, 7), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, signupRequest{Name: "Alice", Email: "alice@example.com", Password: "s3cret"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, signedToken, resp.Token)
	assert.Equal(t, int64(7), resp.User.UserID)

	cookie := sessionCookie(t, rec)
	assert.Equal(t, signedToken, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

func TestSignup_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/signup", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignup_MissingFields(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/signup", strings.NewReader(`{"email":"a@b.c"}`))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, service.ErrInvalidDataProvided.Error(), resp.Message)
}

func TestSignup_AccountExists(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, service.ErrAccountExists
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, signupRequest{Name: "Alice", Email: "taken@example.com", Password: "p"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, service.ErrAccountExists.Error(), resp.Message)
}

func TestSignup_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, u models.User) (models.User, error) {
			return u, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, signupRequest{Name: "Alice", Email: "a@b.c", Password: "p"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// internal failures must not leak details
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "something went very wrong", resp.Message)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (models.User, error) {
			assert.Equal(t, "alice@example.com", email)
			assert.Equal(t, "s3cret", password)
			return validUser, nil
		},
		createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
			assert.Equal(t, validUser.UserID, u.UserID)
			return stubToken(signedToken, u.UserID), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, loginRequest{Email: "alice@example.com", Password: "s3cret"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, signedToken, resp.Token)

	cookie := sessionCookie(t, rec)
	assert.Equal(t, signedToken, cookie.Value)
}

// TestLogin_UnknownEmail pins the contract that a login against a missing
// account answers 404, not the 401 used for bad tokens.
func TestLogin_UnknownEmail(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, loginRequest{Email: "ghost@example.com", Password: "p"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, loginRequest{Email: "alice@example.com", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, service.ErrWrongPassword.Error(), resp.Message)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
