package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Note struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_notes_user_title" json:"user"`
	Title           string                      `gorm:"size:255;not null;uniqueIndex:idx_notes_user_title" json:"title"`
	Content         string                      `gorm:"type:text;not null" json:"content"`
	ImportanceLevel string                      `gorm:"size:50;not null" json:"importanceLevel"`
	LegalTopic      string                      `gorm:"size:100;not null" json:"legalTopic"`
	Tags            datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	CreatedAt       time.Time                   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time                   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (n *Note) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID, err = uuid.NewV7()
	}
	return
}
