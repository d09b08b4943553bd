package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleStudent  = "student"
	RoleLecturer = "lecturer"
	RoleAdmin    = "admin"
)

// Progress tracks a user's study activity.
type Progress struct {
	LessonsCompleted int        `gorm:"default:0" json:"lessonsCompleted"`
	LearningStreak   int        `gorm:"default:0" json:"learningStreak"`
	LastActiveDate   *time.Time `json:"lastActiveDate,omitempty"`
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName     string    `gorm:"size:100;not null" json:"fullName"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash *string   `gorm:"size:255" json:"-"`
	Role         string    `gorm:"size:20;not null;default:student" json:"role"`
	// Unique only among students; the partial index is created in migration
	StudentID           *string   `gorm:"size:50" json:"studentId,omitempty"`
	OnboardingCompleted bool      `gorm:"default:false" json:"onboardingCompleted"`
	AskAICount          int       `gorm:"default:0" json:"askAICount"`
	Progress            Progress  `gorm:"embedded;embeddedPrefix:progress_" json:"progress"`
	Courses             []Course  `gorm:"many2many:user_courses" json:"courses,omitempty"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
