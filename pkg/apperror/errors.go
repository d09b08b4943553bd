package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrTokenExpired       = errors.New("access token expired")
	ErrTokenInvalid       = errors.New("invalid access token")
	ErrRefreshRejected    = errors.New("invalid or expired refresh token")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("invalid input")
	ErrConflict           = errors.New("resource already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMisconfigured      = errors.New("server is not configured")
	ErrGenerationFailed   = errors.New("generation failed")
	ErrTooManyAttempts    = errors.New("too many attempts")
	ErrInternal           = errors.New("internal server error")
)

// MapErrorToStatus maps domain errors to HTTP status codes. A missing
// refresh cookie is 401; a cookie that is present but rejected is 403.
func MapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden),
		errors.Is(err, ErrRefreshRejected):
		return http.StatusForbidden
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, ErrTooManyAttempts):
		return http.StatusTooManyRequests
	}

	// Misconfiguration, generation failures and store errors all surface as 500
	return http.StatusInternalServerError
}
