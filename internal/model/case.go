package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LegalPrinciple is a titled rule or holding extracted from a case.
// This is the canonical object form; the legacy plain-string form is
// not supported.
type LegalPrinciple struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// QuizQuestion is a four-option multiple-choice question. CorrectAnswer
// always matches one of Answers exactly.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Answers       []string `json:"answers"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type Citation struct {
	Year      int    `gorm:"not null" json:"year"`
	LawReport string `gorm:"size:100;not null" json:"lawReport"`
	Page      int    `gorm:"not null" json:"page"`
	Landmark  bool   `gorm:"default:false" json:"landmark"`
}

type Case struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title string    `gorm:"size:255;not null" json:"title"`
	// Derived from LegalPrinciple by the generator, never client-supplied
	AISummary        string                                `gorm:"column:ai_summary;type:text;not null" json:"AISummary"`
	Citation         Citation                              `gorm:"embedded;embeddedPrefix:citation_" json:"citation"`
	LegalIssue       datatypes.JSONSlice[string]           `gorm:"type:jsonb" json:"legalIssue"`
	LegalPrinciple   datatypes.JSONSlice[LegalPrinciple]   `gorm:"type:jsonb" json:"legalPrinciple"`
	AreaOfLaw        *string                               `gorm:"size:100" json:"areaOfLaw,omitempty"`
	Quiz             datatypes.JSONSlice[QuizQuestion]     `gorm:"type:jsonb" json:"quiz"`
	NumQuizGenerated int                                   `json:"numQuizGenerated"`
	CreatedAt        time.Time                             `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time                             `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (cs *Case) BeforeCreate(tx *gorm.DB) (err error) {
	if cs.ID == uuid.Nil {
		cs.ID, err = uuid.NewV7()
	}
	return
}
