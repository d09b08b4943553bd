package dto

import (
	"lexora.app/lawstudybackend/internal/model"
)

type CitationInput struct {
	Year      *int    `json:"year" binding:"required"`
	LawReport *string `json:"lawReport" binding:"required"`
	Page      *int    `json:"page" binding:"required"`
	Landmark  bool    `json:"landmark"`
}

type CreateCaseRequest struct {
	Title          string                 `json:"title" binding:"required,max=255"`
	Citation       CitationInput          `json:"citation" binding:"required"`
	LegalIssue     []string               `json:"legalIssue"`
	LegalPrinciple []model.LegalPrinciple `json:"legalPrinciple" binding:"required,min=1"`
	AreaOfLaw      *string                `json:"areaOfLaw"`
}

// CitationPatch is the nested citation form of a sparse case update.
type CitationPatch struct {
	Year      *int    `json:"year"`
	LawReport *string `json:"lawReport"`
	Page      *int    `json:"page"`
	Landmark  *bool   `json:"landmark"`
}

// UpdateCaseRequest accepts citation sub-fields both as a nested object
// and as flattened dotted keys. When both address the same sub-field the
// dotted key wins: the nested object is applied first, dotted keys
// overwrite.
type UpdateCaseRequest struct {
	Title          *string                 `json:"title"`
	LegalIssue     *[]string               `json:"legalIssue"`
	AreaOfLaw      *string                 `json:"areaOfLaw"`
	LegalPrinciple *[]model.LegalPrinciple `json:"legalPrinciple"`

	Citation *CitationPatch `json:"citation"`

	CitationYear      *int    `json:"citation.year"`
	CitationLawReport *string `json:"citation.lawReport"`
	CitationPage      *int    `json:"citation.page"`
	CitationLandmark  *bool   `json:"citation.landmark"`
}

type GenerateQuizRequest struct {
	NumQuizGenerated int `json:"numQuizGenerated" binding:"required,min=1,max=50"`
}
