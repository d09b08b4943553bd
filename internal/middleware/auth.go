package middleware

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"lexora.app/lawstudybackend/internal/repository"
	"lexora.app/lawstudybackend/internal/service"
	"lexora.app/lawstudybackend/pkg/apperror"
	"lexora.app/lawstudybackend/pkg/response"
)

const AccessTokenCookie = "accessToken"

type AuthMiddleware struct {
	tokens   *service.TokenService
	userRepo repository.UserRepository
}

func NewAuthMiddleware(tokens *service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// RequireAuth reads the access token from its cookie. Tokens travel
// only via cookies, never the Authorization header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(AccessTokenCookie)
		if err != nil || tokenString == "" {
			response.AbortError(c, fmt.Errorf("%w: access token missing, please log in again", apperror.ErrUnauthenticated))
			return
		}

		userID, err := m.tokens.VerifyAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, apperror.ErrTokenExpired) {
				response.AbortError(c, fmt.Errorf("%w, please refresh your session", apperror.ErrTokenExpired))
				return
			}
			response.AbortError(c, apperror.ErrTokenInvalid)
			return
		}

		c.Set("user_id", userID.String())
		c.Next()
	}
}

// RequireAdmin loads the caller's role from the store rather than
// trusting a role claim baked into the token.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := response.GetUserID(c)
		if err != nil {
			response.AbortError(c, err)
			return
		}

		user, err := m.userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.AbortError(c, apperror.ErrUnauthenticated)
				return
			}
			response.AbortError(c, err)
			return
		}

		if !user.IsAdmin() {
			response.AbortError(c, fmt.Errorf("%w: admins only", apperror.ErrForbidden))
			return
		}

		c.Next()
	}
}
