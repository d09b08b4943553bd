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

type CaseHandler struct {
	service service.CaseService
}

func NewCaseHandler(service service.CaseService) *CaseHandler {
	return &CaseHandler{service: service}
}

func (h *CaseHandler) CreateCase(c *gin.Context) {
	var req dto.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, fmt.Errorf("%w: %s", apperror.ErrValidation, validator.FormatValidationError(err)))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "case created successfully", gin.H{"case": created})
}

func (h *CaseHandler) GetAllCases(c *gin.Context) {
	cases, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"cases": cases, "total": len(cases)})
}

func (h *CaseHandler) GetSingleCase(c *gin.Context) {
	id, err := parseCaseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"case": found})
}

func (h *CaseHandler) UpdateCase(c *gin.Context) {
	id, err := parseCaseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, fmt.Errorf("%w: %s", apperror.ErrValidation, validator.FormatValidationError(err)))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "case updated successfully", gin.H{"case": updated})
}

func (h *CaseHandler) DeleteCase(c *gin.Context) {
	id, err := parseCaseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "case deleted successfully", nil)
}

func (h *CaseHandler) GenerateQuiz(c *gin.Context) {
	id, err := parseCaseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, fmt.Errorf("%w: %s", apperror.ErrValidation, validator.FormatValidationError(err)))
		return
	}

	updated, err := h.service.GenerateQuiz(c.Request.Context(), id, req.NumQuizGenerated)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "quiz generated successfully", gin.H{"quiz": updated.Quiz})
}

func (h *CaseHandler) GetQuiz(c *gin.Context) {
	id, err := parseCaseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	quiz, err := h.service.GetQuiz(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"quiz": quiz, "total": len(quiz)})
}

func (h *CaseHandler) RegenerateQuiz(c *gin.Context) {
	id, err := parseCaseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, fmt.Errorf("%w: %s", apperror.ErrValidation, validator.FormatValidationError(err)))
		return
	}

	updated, err := h.service.RegenerateQuiz(c.Request.Context(), id, req.NumQuizGenerated)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "quiz regenerated successfully", gin.H{"quiz": updated.Quiz})
}

func parseCaseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid case id", apperror.ErrValidation)
	}
	return id, nil
}
