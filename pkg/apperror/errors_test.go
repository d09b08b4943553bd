package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrTokenExpired, http.StatusUnauthorized},
		{ErrTokenInvalid, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		// A rejected refresh token is 403, not 401; only a missing one
		// maps to 401 via ErrUnauthenticated
		{ErrRefreshRejected, http.StatusForbidden},
		{ErrValidation, http.StatusBadRequest},
		{ErrConflict, http.StatusBadRequest},
		{ErrInvalidCredentials, http.StatusBadRequest},
		{ErrTooManyAttempts, http.StatusTooManyRequests},
		{ErrMisconfigured, http.StatusInternalServerError},
		{ErrGenerationFailed, http.StatusInternalServerError},
		{errors.New("some store error"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MapErrorToStatus(tc.err), "unwrapped %v", tc.err)
		wrapped := fmt.Errorf("%w: extra detail", tc.err)
		assert.Equal(t, tc.want, MapErrorToStatus(wrapped), "wrapped %v", tc.err)
	}
}
