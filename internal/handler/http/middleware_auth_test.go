package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chatnest/api/internal/service"
	"github.com/chatnest/api/internal/utils"
	"github.com/chatnest/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// protectedProbe returns a handler that records whether it was reached and
// which user the middleware resolved.
func protectedProbe(t *testing.T, reached *bool, gotUser **models.User) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		if u, ok := utils.GetUserFromContext(r.Context()); ok {
			*gotUser = u
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestProtect_CookieToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "cookie.jwt", tokenString)
			return stubToken("cookie.jwt", 7), nil
		},
		currentUserFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(7), userID)
			return validUser, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	var reached bool
	var gotUser *models.User

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "cookie.jwt"})
	rec := httptest.NewRecorder()

	h.protect(protectedProbe(t, &reached, &gotUser)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, reached)
	require.NotNil(t, gotUser)
	assert.Equal(t, validUser.UserID, gotUser.UserID)
}

func TestProtect_BearerFallback(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "header.jwt", tokenString)
			return stubToken("header.jwt", 7), nil
		},
		currentUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return validUser, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	var reached bool
	var gotUser *models.User

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer header.jwt")
	rec := httptest.NewRecorder()

	h.protect(protectedProbe(t, &reached, &gotUser)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

// TestProtect_CookieWinsOverHeader pins the token source precedence.
func TestProtect_CookieWinsOverHeader(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "cookie.jwt", tokenString)
			return stubToken("cookie.jwt", 7), nil
		},
		currentUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return validUser, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	var reached bool
	var gotUser *models.User

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "cookie.jwt"})
	req.Header.Set("Authorization", "Bearer header.jwt")
	rec := httptest.NewRecorder()

	h.protect(protectedProbe(t, &reached, &gotUser)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestProtect_NoToken(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	var reached bool
	var gotUser *models.User

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	rec := httptest.NewRecorder()

	h.protect(protectedProbe(t, &reached, &gotUser)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), service.ErrNotAuthenticated.Error())
}

func TestProtect_ExpiredToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpired
		},
	}
	h := newHandlerWithAuth(t, auth)

	var reached bool
	var gotUser *models.User

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "expired.jwt"})
	rec := httptest.NewRecorder()

	h.protect(protectedProbe(t, &reached, &gotUser)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), service.ErrTokenIsExpired.Error())
}

func TestProtect_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsInvalid
		},
	}
	h := newHandlerWithAuth(t, auth)

	var reached bool
	var gotUser *models.User

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	h.protect(protectedProbe(t, &reached, &gotUser)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

// TestProtect_UserGone covers tokens that outlive their account.
func TestProtect_UserGone(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return stubToken("valid.jwt", 7), nil
		},
		currentUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, service.ErrTokenUserGone
		},
	}
	h := newHandlerWithAuth(t, auth)

	var reached bool
	var gotUser *models.User

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid.jwt"})
	rec := httptest.NewRecorder()

	h.protect(protectedProbe(t, &reached, &gotUser)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), service.ErrTokenUserGone.Error())
}

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		cookie    string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "cookie only", cookie: "c.jwt", wantToken: "c.jwt"},
		{name: "header only", header: "Bearer h.jwt", wantToken: "h.jwt"},
		{name: "cookie precedence", cookie: "c.jwt", header: "Bearer h.jwt", wantToken: "c.jwt"},
		{name: "nothing", wantErr: ErrEmptyToken},
		{name: "malformed header", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty header token", header: "Bearer ", wantErr: ErrInvalidAuthorizationHeader},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := tokenFromRequest(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
