package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"lexora.app/lawstudybackend/internal/dto"
	"lexora.app/lawstudybackend/internal/middleware"
	"lexora.app/lawstudybackend/internal/service"
	"lexora.app/lawstudybackend/pkg/apperror"
	"lexora.app/lawstudybackend/pkg/response"
	"lexora.app/lawstudybackend/pkg/validator"
)

const RefreshTokenCookie = "refreshToken"

type AuthHandler struct {
	authService service.AuthService
	tokens      *service.TokenService
}

func NewAuthHandler(authService service.AuthService, tokens *service.TokenService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, fmt.Errorf("%w: %s", apperror.ErrValidation, validator.FormatValidationError(err)))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "User account created successfully", gin.H{"user": user})
}

// Login sets both token cookies; the tokens never appear in the body.
func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, fmt.Errorf("%w: %s", apperror.ErrValidation, validator.FormatValidationError(err)))
		return
	}

	pair, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, pair.AccessToken, int(h.tokens.AccessTTL().Seconds()), "/", "", false, true)
	c.SetCookie(RefreshTokenCookie, pair.RefreshToken, int(h.tokens.RefreshTTL().Seconds()), "/", "", false, true)

	response.Success(c, http.StatusOK, "Logged in successfully", nil)
}

// Logout clears both cookies. The tokens themselves stay valid until
// natural expiry; there is no server-side revocation.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", "", false, true)

	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshTokenCookie)
	if err != nil || refreshToken == "" {
		response.Error(c, fmt.Errorf("%w: no refresh token provided", apperror.ErrUnauthenticated))
		return
	}

	accessToken, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, accessToken, int(h.tokens.AccessTTL().Seconds()), "/", "", false, true)

	response.Success(c, http.StatusOK, "Access token refreshed", nil)
}

func (h *AuthHandler) IncrementAskAI(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	count, err := h.authService.IncrementAskAI(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "askAI count incremented", gin.H{"askAICount": count})
}
