package dto

type CreateNoteRequest struct {
	Title           string   `json:"title" binding:"required,max=255"`
	Content         string   `json:"content" binding:"required"`
	ImportanceLevel string   `json:"importanceLevel" binding:"required"`
	LegalTopic      string   `json:"legalTopic" binding:"required"`
	Tags            []string `json:"tags" binding:"required"`
}

// UpdateNoteRequest covers the mutable fields only; a note's title is
// immutable after creation.
type UpdateNoteRequest struct {
	Content         *string   `json:"content"`
	ImportanceLevel *string   `json:"importanceLevel"`
	LegalTopic      *string   `json:"legalTopic"`
	Tags            *[]string `json:"tags"`
}

type NoteFilter struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1"`
}
