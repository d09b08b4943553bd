package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"lexora.app/lawstudybackend/internal/config"
	"lexora.app/lawstudybackend/pkg/apperror"
)

// TokenService issues and verifies the two stateless token classes.
// Access and refresh tokens are signed with distinct secrets, so a
// token of one class never verifies as the other. There is no
// server-side revocation: logout cannot invalidate an outstanding
// token before its natural expiry.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
	}
}

func (s *TokenService) AccessTTL() time.Duration  { return s.accessTTL }
func (s *TokenService) RefreshTTL() time.Duration { return s.refreshTTL }

func (s *TokenService) IssueAccessToken(userID uuid.UUID) (string, error) {
	return s.issue(userID, s.accessSecret, s.accessTTL)
}

func (s *TokenService) IssueRefreshToken(userID uuid.UUID) (string, error) {
	return s.issue(userID, s.refreshSecret, s.refreshTTL)
}

// VerifyAccessToken distinguishes an expired token from an otherwise
// invalid one so the client knows whether to refresh or re-login.
func (s *TokenService) VerifyAccessToken(token string) (uuid.UUID, error) {
	userID, err := s.verify(token, s.accessSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, apperror.ErrTokenExpired
		}
		return uuid.Nil, apperror.ErrTokenInvalid
	}

	return userID, nil
}

func (s *TokenService) VerifyRefreshToken(token string) (uuid.UUID, error) {
	userID, err := s.verify(token, s.refreshSecret)
	if err != nil {
		return uuid.Nil, apperror.ErrRefreshRejected
	}

	return userID, nil
}

func (s *TokenService) issue(userID uuid.UUID, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (s *TokenService) verify(tokenString string, secret []byte) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("invalid token claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject claim")
	}

	return userID, nil
}
