package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lexora.app/lawstudybackend/internal/ai"
	"lexora.app/lawstudybackend/internal/dto"
	"lexora.app/lawstudybackend/internal/model"
	"lexora.app/lawstudybackend/internal/repository"
	"lexora.app/lawstudybackend/pkg/apperror"
)

type CaseService interface {
	Create(ctx context.Context, input dto.CreateCaseRequest) (*model.Case, error)
	GetAll(ctx context.Context) ([]*model.Case, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Case, error)
	Update(ctx context.Context, id uuid.UUID, input dto.UpdateCaseRequest) (*model.Case, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GenerateQuiz(ctx context.Context, id uuid.UUID, count int) (*model.Case, error)
	GetQuiz(ctx context.Context, id uuid.UUID) ([]model.QuizQuestion, error)
	RegenerateQuiz(ctx context.Context, id uuid.UUID, count int) (*model.Case, error)
}

type caseService struct {
	repo      repository.CaseRepository
	generator ai.Generator
}

// NewCaseService accepts a nil generator when the completion-service
// credential is absent; operations that need it then fail with a
// misconfiguration error instead of panicking.
func NewCaseService(repo repository.CaseRepository, generator ai.Generator) CaseService {
	return &caseService{
		repo:      repo,
		generator: generator,
	}
}

func (s *caseService) Create(ctx context.Context, input dto.CreateCaseRequest) (*model.Case, error) {
	if len(input.LegalPrinciple) == 0 {
		return nil, fmt.Errorf("%w: title and legalPrinciple[] are required", apperror.ErrValidation)
	}
	if err := s.ensureGenerator(); err != nil {
		return nil, err
	}

	summary, err := s.generator.GenerateSummary(ctx, input.LegalPrinciple)
	if err != nil {
		return nil, err
	}

	created := &model.Case{
		Title:     input.Title,
		AISummary: summary,
		Citation: model.Citation{
			Year:      *input.Citation.Year,
			LawReport: *input.Citation.LawReport,
			Page:      *input.Citation.Page,
			Landmark:  input.Citation.Landmark,
		},
		LegalIssue:     datatypes.NewJSONSlice(input.LegalIssue),
		LegalPrinciple: datatypes.NewJSONSlice(input.LegalPrinciple),
		AreaOfLaw:      input.AreaOfLaw,
	}

	if err := s.repo.Create(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *caseService) GetAll(ctx context.Context) ([]*model.Case, error) {
	return s.repo.FindAll(ctx)
}

func (s *caseService) GetByID(ctx context.Context, id uuid.UUID) (*model.Case, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: case not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	return found, nil
}

func (s *caseService) Update(ctx context.Context, id uuid.UUID, input dto.UpdateCaseRequest) (*model.Case, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.LegalIssue != nil {
		updates["legal_issue"] = datatypes.NewJSONSlice(*input.LegalIssue)
	}
	if input.AreaOfLaw != nil {
		updates["area_of_law"] = *input.AreaOfLaw
	}

	mergeCitationPatch(updates, input)

	// A principle change invalidates the stored summary, so regenerate
	// exactly like create
	if input.LegalPrinciple != nil {
		if len(*input.LegalPrinciple) == 0 {
			return nil, fmt.Errorf("%w: legalPrinciple must be a non-empty array", apperror.ErrValidation)
		}
		if err := s.ensureGenerator(); err != nil {
			return nil, err
		}

		summary, err := s.generator.GenerateSummary(ctx, *input.LegalPrinciple)
		if err != nil {
			return nil, err
		}

		updates["legal_principle"] = datatypes.NewJSONSlice(*input.LegalPrinciple)
		updates["ai_summary"] = summary
	}

	if len(updates) == 0 {
		return s.GetByID(ctx, id)
	}

	return s.repo.Update(ctx, id, updates)
}

func (s *caseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: case not found", apperror.ErrNotFound)
		}
		return err
	}

	return nil
}

// GenerateQuiz is write-once: a case whose quiz is already populated
// conflicts. RegenerateQuiz is the overwrite path.
func (s *caseService) GenerateQuiz(ctx context.Context, id uuid.UUID, count int) (*model.Case, error) {
	if err := validateQuizCount(count); err != nil {
		return nil, err
	}

	found, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(found.Quiz) > 0 {
		return nil, fmt.Errorf("%w: quiz already generated for this case", apperror.ErrConflict)
	}

	return s.generateQuizFor(ctx, found, count)
}

func (s *caseService) RegenerateQuiz(ctx context.Context, id uuid.UUID, count int) (*model.Case, error) {
	if err := validateQuizCount(count); err != nil {
		return nil, err
	}

	found, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.generateQuizFor(ctx, found, count)
}

func (s *caseService) GetQuiz(ctx context.Context, id uuid.UUID) ([]model.QuizQuestion, error) {
	found, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(found.Quiz) == 0 {
		return nil, fmt.Errorf("%w: no quiz generated for this case", apperror.ErrNotFound)
	}

	return found.Quiz, nil
}

func validateQuizCount(count int) error {
	if count < 1 || count > 50 {
		return fmt.Errorf("%w: numQuizGenerated must be between 1 and 50", apperror.ErrValidation)
	}
	return nil
}

func (s *caseService) generateQuizFor(ctx context.Context, found *model.Case, count int) (*model.Case, error) {
	if len(found.LegalPrinciple) == 0 {
		return nil, fmt.Errorf("%w: case has no legal principles to generate a quiz from", apperror.ErrValidation)
	}
	if err := s.ensureGenerator(); err != nil {
		return nil, err
	}

	quiz, err := s.generator.GenerateQuiz(ctx, found.LegalPrinciple, count)
	if err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, found.ID, map[string]interface{}{
		"quiz":               datatypes.NewJSONSlice(quiz),
		"num_quiz_generated": count,
	})
}

func (s *caseService) ensureGenerator() error {
	if s.generator == nil {
		return fmt.Errorf("%w: completion service credential is missing", apperror.ErrMisconfigured)
	}
	return nil
}

// mergeCitationPatch folds both citation forms into the update set.
// Nested object first, flattened dotted keys second, so a dotted key
// wins when both address the same sub-field.
func mergeCitationPatch(updates map[string]interface{}, input dto.UpdateCaseRequest) {
	if input.Citation != nil {
		if input.Citation.Year != nil {
			updates["citation_year"] = *input.Citation.Year
		}
		if input.Citation.LawReport != nil {
			updates["citation_law_report"] = *input.Citation.LawReport
		}
		if input.Citation.Page != nil {
			updates["citation_page"] = *input.Citation.Page
		}
		if input.Citation.Landmark != nil {
			updates["citation_landmark"] = *input.Citation.Landmark
		}
	}

	if input.CitationYear != nil {
		updates["citation_year"] = *input.CitationYear
	}
	if input.CitationLawReport != nil {
		updates["citation_law_report"] = *input.CitationLawReport
	}
	if input.CitationPage != nil {
		updates["citation_page"] = *input.CitationPage
	}
	if input.CitationLandmark != nil {
		updates["citation_landmark"] = *input.CitationLandmark
	}
}
