package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CourseQuestion struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Course is migrated but not yet exposed through any route.
type Course struct {
	ID              uuid.UUID                           `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string                              `gorm:"size:255;not null" json:"title"`
	Description     string                              `gorm:"type:text" json:"description"`
	LecturerID      uuid.UUID                           `gorm:"type:uuid;not null" json:"lecturerId"`
	Lecturer        *User                               `gorm:"foreignKey:LecturerID;constraint:OnDelete:CASCADE" json:"lecturer,omitempty"`
	Students        []User                              `gorm:"many2many:course_students" json:"students,omitempty"`
	PendingRequests []User                              `gorm:"many2many:course_pending_requests" json:"pendingRequests,omitempty"`
	Questions       datatypes.JSONSlice[CourseQuestion] `gorm:"type:jsonb" json:"questions"`
	Deadline        time.Time                           `gorm:"not null" json:"deadline"`
	CreatedAt       time.Time                           `gorm:"autoCreateTime" json:"createdAt"`
}

func (co *Course) BeforeCreate(tx *gorm.DB) error {
	if co.ID == uuid.Nil {
		co.ID = uuid.New()
	}
	return nil
}
