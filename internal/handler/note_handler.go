package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lexora.app/lawstudybackend/internal/dto"
	"lexora.app/lawstudybackend/internal/service"
	"lexora.app/lawstudybackend/pkg/apperror"
	"lexora.app/lawstudybackend/pkg/response"
	"lexora.app/lawstudybackend/pkg/validator"
)

type NoteHandler struct {
	service service.NoteService
}

func NewNoteHandler(service service.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, fmt.Errorf("%w: %s", apperror.ErrValidation, validator.FormatValidationError(err)))
		return
	}

	note, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "note created successfully", gin.H{"note": note})
}

func (h *NoteHandler) GetAllNotes(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var filter dto.NoteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, fmt.Errorf("%w: %s", apperror.ErrValidation, validator.FormatValidationError(err)))
		return
	}

	page, err := h.service.GetAll(c.Request.Context(), userID, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "notes fetched successfully", gin.H{
		"notes":       page.Notes,
		"totalNotes":  page.TotalNotes,
		"totalPages":  page.TotalPages,
		"currentPage": page.CurrentPage,
	})
}

func (h *NoteHandler) GetSingleNote(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := parseNoteID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	note, err := h.service.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "note fetched successfully", gin.H{"note": note})
}

func (h *NoteHandler) EditNote(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := parseNoteID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, fmt.Errorf("%w: %s", apperror.ErrValidation, validator.FormatValidationError(err)))
		return
	}

	note, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "note updated successfully", gin.H{"note": note})
}

func (h *NoteHandler) DeleteSingleNote(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := parseNoteID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "note deleted successfully", nil)
}

func (h *NoteHandler) DeleteAllNotes(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	deleted, err := h.service.DeleteAll(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "all notes deleted successfully"
	if deleted == 0 {
		message = "no notes to delete"
	}

	response.Success(c, http.StatusOK, message, gin.H{"deletedCount": deleted})
}

func parseNoteID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid note id", apperror.ErrValidation)
	}
	return id, nil
}
