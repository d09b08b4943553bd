package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lexora.app/lawstudybackend/internal/config"
	"lexora.app/lawstudybackend/internal/dto"
	"lexora.app/lawstudybackend/internal/middleware"
	"lexora.app/lawstudybackend/internal/service"
	"lexora.app/lawstudybackend/pkg/apperror"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, input dto.RegisterInput) (*dto.UserSummary, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserSummary), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, input dto.LoginInput) (*service.TokenPair, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenPair), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) IncrementAskAI(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func newAuthHandlerRouter(svc *MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	tokens := service.NewTokenService(&config.Config{
		AccessTokenSecret:  "test-access-secret",
		RefreshTokenSecret: "test-refresh-secret",
		AccessTokenTTL:     15 * time.Minute,
		RefreshTokenTTL:    7 * 24 * time.Hour,
	})
	h := NewAuthHandler(svc, tokens)

	r := gin.New()
	auth := r.Group("/api/Auth")
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout)
	auth.POST("/refresh-token", h.RefreshToken)
	return r
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

// Tokens travel only via httpOnly cookies; the login body never echoes
// token material.
func TestAuthHandler_Login_SetsTokenCookies(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, mock.AnythingOfType("dto.LoginInput")).Return(&service.TokenPair{
		AccessToken:  "access-token-value",
		RefreshToken: "refresh-token-value",
	}, nil)

	r := newAuthHandlerRouter(svc)
	req := httptest.NewRequest(http.MethodPost, "/api/Auth/login",
		strings.NewReader(`{"email":"jane@campus.edu","password":"secret-password"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	access := findCookie(t, w, middleware.AccessTokenCookie)
	assert.Equal(t, "access-token-value", access.Value)
	assert.True(t, access.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)
	assert.Equal(t, int((15 * time.Minute).Seconds()), access.MaxAge)
	assert.Equal(t, "/", access.Path)

	refresh := findCookie(t, w, RefreshTokenCookie)
	assert.Equal(t, "refresh-token-value", refresh.Value)
	assert.True(t, refresh.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, refresh.SameSite)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), refresh.MaxAge)

	assert.NotContains(t, w.Body.String(), "access-token-value")
	assert.NotContains(t, w.Body.String(), "refresh-token-value")
}

func TestAuthHandler_Logout_ClearsBothCookies(t *testing.T) {
	r := newAuthHandlerRouter(new(MockAuthService))
	req := httptest.NewRequest(http.MethodPost, "/api/Auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	access := findCookie(t, w, middleware.AccessTokenCookie)
	assert.Empty(t, access.Value)
	assert.Negative(t, access.MaxAge)

	refresh := findCookie(t, w, RefreshTokenCookie)
	assert.Empty(t, refresh.Value)
	assert.Negative(t, refresh.MaxAge)
}

func TestAuthHandler_RefreshToken_MissingCookie(t *testing.T) {
	r := newAuthHandlerRouter(new(MockAuthService))
	req := httptest.NewRequest(http.MethodPost, "/api/Auth/refresh-token", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "no refresh token provided")
}

// A refresh cookie that is present but rejected is 403, distinct from
// the 401 missing-cookie case.
func TestAuthHandler_RefreshToken_Rejected(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Refresh", mock.Anything, "stale-refresh-token").Return("", apperror.ErrRefreshRejected)

	r := newAuthHandlerRouter(svc)
	req := httptest.NewRequest(http.MethodPost, "/api/Auth/refresh-token", nil)
	req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "stale-refresh-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthHandler_RefreshToken_SetsNewAccessCookie(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Refresh", mock.Anything, "valid-refresh-token").Return("new-access-token", nil)

	r := newAuthHandlerRouter(svc)
	req := httptest.NewRequest(http.MethodPost, "/api/Auth/refresh-token", nil)
	req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "valid-refresh-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	access := findCookie(t, w, middleware.AccessTokenCookie)
	assert.Equal(t, "new-access-token", access.Value)
	assert.True(t, access.HttpOnly)
	assert.Equal(t, int((15 * time.Minute).Seconds()), access.MaxAge)
	assert.NotContains(t, w.Body.String(), "new-access-token")
}