package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lexora.app/lawstudybackend/internal/dto"
	"lexora.app/lawstudybackend/internal/model"
	"lexora.app/lawstudybackend/internal/repository"
	"lexora.app/lawstudybackend/pkg/apperror"
)

// TokenPair carries the two cookies' worth of credentials out of Login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterInput) (*dto.UserSummary, error)
	Login(ctx context.Context, input dto.LoginInput) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	IncrementAskAI(ctx context.Context, userID uuid.UUID) (int, error)
}

type authService struct {
	repo    repository.UserRepository
	tokens  *TokenService
	limiter LoginLimiter
}

func NewAuthService(repo repository.UserRepository, tokens *TokenService, limiter LoginLimiter) AuthService {
	return &authService{
		repo:    repo,
		tokens:  tokens,
		limiter: limiter,
	}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterInput) (*dto.UserSummary, error) {
	role := model.RoleStudent
	if input.Role != nil && *input.Role != "" {
		role = *input.Role
	}

	if role == model.RoleStudent && (input.StudentID == nil || *input.StudentID == "") {
		return nil, fmt.Errorf("%w: Student ID is required for students", apperror.ErrValidation)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: user already exists", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hash := string(hashedPassword)
	user := &model.User{
		FullName:     strings.TrimSpace(input.FullName),
		Email:        email,
		PasswordHash: &hash,
		Role:         role,
	}
	if role == model.RoleStudent {
		user.StudentID = input.StudentID
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.UserSummary{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		StudentID: user.StudentID,
		Role:      user.Role,
	}, nil
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	allowed, err := s.limiter.Allow(ctx, email)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: try again later", apperror.ErrTooManyAttempts)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user does not exist", apperror.ErrInvalidCredentials)
		}
		return nil, err
	}

	if user.PasswordHash == nil {
		return nil, fmt.Errorf("%w: wrong email or password", apperror.ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, fmt.Errorf("%w: wrong email or password", apperror.ErrInvalidCredentials)
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	// Both tokens are already issued; a failed counter reset must not
	// fail the login
	if err := s.limiter.Reset(ctx, email); err != nil {
		log.Printf("failed to clear login attempts for %s: %v", email, err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh mints a new access token from a valid refresh token. The
// refresh token itself is never rotated.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	return s.tokens.IssueAccessToken(userID)
}

func (s *authService) IncrementAskAI(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := s.repo.IncrementAskAI(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: user not found", apperror.ErrNotFound)
		}
		return 0, err
	}

	return count, nil
}
