package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lexora.app/lawstudybackend/pkg/apperror"
)

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, apperror.ErrUnauthenticated
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		return uuid.Nil, apperror.ErrUnauthenticated
	}

	return userID, nil
}

// Success writes the standard envelope {success, message, ...payload}
func Success(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error writes a standardized error envelope
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"success": false, "message": err.Error()})
}

// AbortError writes the error envelope and stops the handler chain
func AbortError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)
	c.AbortWithStatusJSON(code, gin.H{"success": false, "message": err.Error()})
}
