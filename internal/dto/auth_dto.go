package dto

import (
	"github.com/google/uuid"
)

type RegisterInput struct {
	FullName        string  `json:"fullName" binding:"required,max=100"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required,min=8"`
	ConfirmPassword string  `json:"confirmPassword" binding:"required,eqfield=Password"`
	StudentID       *string `json:"studentId"`
	Role            *string `json:"role" binding:"omitempty,oneof=student lecturer admin"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserSummary is the registration response body. It never carries the
// password hash.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	StudentID *string   `json:"studentId"`
	Role      string    `json:"role"`
}
