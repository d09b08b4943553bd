package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lexora.app/lawstudybackend/internal/dto"
	"lexora.app/lawstudybackend/internal/model"
	"lexora.app/lawstudybackend/pkg/apperror"
)

type MockCaseRepository struct {
	mock.Mock
}

func (m *MockCaseRepository) Create(ctx context.Context, c *model.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCaseRepository) FindAll(ctx context.Context) ([]*model.Case, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Case), args.Error(1)
}

func (m *MockCaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.Case, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateSummary(ctx context.Context, principles []model.LegalPrinciple) (string, error) {
	args := m.Called(ctx, principles)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) GenerateQuiz(ctx context.Context, principles []model.LegalPrinciple, count int) ([]model.QuizQuestion, error) {
	args := m.Called(ctx, principles, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QuizQuestion), args.Error(1)
}

func intPtr(i int) *int    { return &i }
func boolPtr(b bool) *bool { return &b }

var casePrinciples = []model.LegalPrinciple{
	{Title: "Duty of care", Content: "A manufacturer owes a duty of care to the ultimate consumer."},
}

func validCreateCaseRequest() dto.CreateCaseRequest {
	return dto.CreateCaseRequest{
		Title: "Donoghue v Stevenson",
		Citation: dto.CitationInput{
			Year:      intPtr(1932),
			LawReport: strPtr("AC"),
			Page:      intPtr(562),
			Landmark:  true,
		},
		LegalIssue:     []string{"negligence"},
		LegalPrinciple: casePrinciples,
	}
}

func TestCaseService_Create_Success(t *testing.T) {
	repo := new(MockCaseRepository)
	gen := new(MockGenerator)
	svc := NewCaseService(repo, gen)

	gen.On("GenerateSummary", mock.Anything, casePrinciples).Return("A concise summary.", nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Case")).Return(nil)

	created, err := svc.Create(context.Background(), validCreateCaseRequest())

	assert.NoError(t, err)
	assert.Equal(t, "Donoghue v Stevenson", created.Title)
	assert.Equal(t, "A concise summary.", created.AISummary)
	assert.Equal(t, 1932, created.Citation.Year)
	assert.Equal(t, "AC", created.Citation.LawReport)
	assert.True(t, created.Citation.Landmark)
	repo.AssertExpectations(t)
	gen.AssertExpectations(t)
}

func TestCaseService_Create_EmptyPrinciples(t *testing.T) {
	repo := new(MockCaseRepository)
	gen := new(MockGenerator)
	svc := NewCaseService(repo, gen)

	input := validCreateCaseRequest()
	input.LegalPrinciple = nil

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, apperror.ErrValidation)
	gen.AssertNotCalled(t, "GenerateSummary", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCaseService_Create_NilGenerator(t *testing.T) {
	repo := new(MockCaseRepository)
	svc := NewCaseService(repo, nil)

	_, err := svc.Create(context.Background(), validCreateCaseRequest())

	assert.ErrorIs(t, err, apperror.ErrMisconfigured)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCaseService_GetByID_NotFound(t *testing.T) {
	repo := new(MockCaseRepository)
	svc := NewCaseService(repo, nil)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCaseService_Update_CitationDottedKeysWin(t *testing.T) {
	repo := new(MockCaseRepository)
	svc := NewCaseService(repo, nil)

	id := uuid.New()
	existing := &model.Case{ID: id, Title: "Old title"}
	repo.On("FindByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, id, mock.Anything).Return(existing, nil)

	_, err := svc.Update(context.Background(), id, dto.UpdateCaseRequest{
		Title: strPtr("New title"),
		Citation: &dto.CitationPatch{
			Year:     intPtr(1932),
			Page:     intPtr(100),
			Landmark: boolPtr(false),
		},
		CitationYear: intPtr(1933),
	})

	assert.NoError(t, err)

	updates := repo.Calls[1].Arguments.Get(2).(map[string]interface{})
	assert.Equal(t, "New title", updates["title"])
	// Dotted key overrides the nested object for the same sub-field
	assert.Equal(t, 1933, updates["citation_year"])
	assert.Equal(t, 100, updates["citation_page"])
	assert.Equal(t, false, updates["citation_landmark"])
	assert.NotContains(t, updates, "citation_law_report")
}

func TestCaseService_Update_PrincipleChangeRegeneratesSummary(t *testing.T) {
	repo := new(MockCaseRepository)
	gen := new(MockGenerator)
	svc := NewCaseService(repo, gen)

	id := uuid.New()
	existing := &model.Case{ID: id, AISummary: "Stale summary"}
	newPrinciples := []model.LegalPrinciple{
		{Title: "Neighbour principle", Content: "Take reasonable care to avoid acts likely to injure your neighbour."},
	}

	repo.On("FindByID", mock.Anything, id).Return(existing, nil)
	gen.On("GenerateSummary", mock.Anything, newPrinciples).Return("Fresh summary.", nil)
	repo.On("Update", mock.Anything, id, mock.Anything).Return(existing, nil)

	_, err := svc.Update(context.Background(), id, dto.UpdateCaseRequest{
		LegalPrinciple: &newPrinciples,
	})

	assert.NoError(t, err)

	updates := repo.Calls[1].Arguments.Get(2).(map[string]interface{})
	assert.Equal(t, "Fresh summary.", updates["ai_summary"])
	assert.Equal(t, datatypes.NewJSONSlice(newPrinciples), updates["legal_principle"])
}

func TestCaseService_Update_EmptyPrincipleArrayFails(t *testing.T) {
	repo := new(MockCaseRepository)
	gen := new(MockGenerator)
	svc := NewCaseService(repo, gen)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(&model.Case{ID: id}, nil)

	empty := []model.LegalPrinciple{}
	_, err := svc.Update(context.Background(), id, dto.UpdateCaseRequest{
		LegalPrinciple: &empty,
	})

	assert.ErrorIs(t, err, apperror.ErrValidation)
	gen.AssertNotCalled(t, "GenerateSummary", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCaseService_Update_NoFieldsReturnsCurrent(t *testing.T) {
	repo := new(MockCaseRepository)
	svc := NewCaseService(repo, nil)

	id := uuid.New()
	existing := &model.Case{ID: id, Title: "Unchanged"}
	repo.On("FindByID", mock.Anything, id).Return(existing, nil)

	got, err := svc.Update(context.Background(), id, dto.UpdateCaseRequest{})

	assert.NoError(t, err)
	assert.Equal(t, existing, got)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCaseService_Delete_NotFound(t *testing.T) {
	repo := new(MockCaseRepository)
	svc := NewCaseService(repo, nil)

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCaseService_GenerateQuiz_Success(t *testing.T) {
	repo := new(MockCaseRepository)
	gen := new(MockGenerator)
	svc := NewCaseService(repo, gen)

	id := uuid.New()
	existing := &model.Case{
		ID:             id,
		LegalPrinciple: datatypes.NewJSONSlice(casePrinciples),
	}
	quiz := []model.QuizQuestion{
		{Question: "Q?", Answers: []string{"A", "B", "C", "D"}, CorrectAnswer: "A"},
	}

	repo.On("FindByID", mock.Anything, id).Return(existing, nil)
	gen.On("GenerateQuiz", mock.Anything, []model.LegalPrinciple(existing.LegalPrinciple), 1).Return(quiz, nil)
	repo.On("Update", mock.Anything, id, mock.Anything).Return(existing, nil)

	_, err := svc.GenerateQuiz(context.Background(), id, 1)

	assert.NoError(t, err)

	updates := repo.Calls[1].Arguments.Get(2).(map[string]interface{})
	assert.Equal(t, datatypes.NewJSONSlice(quiz), updates["quiz"])
	assert.Equal(t, 1, updates["num_quiz_generated"])
}

func TestCaseService_GenerateQuiz_CountOutOfRange(t *testing.T) {
	repo := new(MockCaseRepository)
	gen := new(MockGenerator)
	svc := NewCaseService(repo, gen)

	for _, count := range []int{0, -1, 51} {
		_, err := svc.GenerateQuiz(context.Background(), uuid.New(), count)
		assert.ErrorIs(t, err, apperror.ErrValidation)
	}

	// Count bounds are checked before any lookup or generation
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	gen.AssertNotCalled(t, "GenerateQuiz", mock.Anything, mock.Anything, mock.Anything)
}

func TestCaseService_GenerateQuiz_AlreadyGenerated(t *testing.T) {
	repo := new(MockCaseRepository)
	gen := new(MockGenerator)
	svc := NewCaseService(repo, gen)

	id := uuid.New()
	existing := &model.Case{
		ID:             id,
		LegalPrinciple: datatypes.NewJSONSlice(casePrinciples),
		Quiz: datatypes.NewJSONSlice([]model.QuizQuestion{
			{Question: "Q?", Answers: []string{"A", "B", "C", "D"}, CorrectAnswer: "A"},
		}),
	}
	repo.On("FindByID", mock.Anything, id).Return(existing, nil)

	_, err := svc.GenerateQuiz(context.Background(), id, 1)

	assert.ErrorIs(t, err, apperror.ErrConflict)
	gen.AssertNotCalled(t, "GenerateQuiz", mock.Anything, mock.Anything, mock.Anything)
}

func TestCaseService_GenerateQuiz_NoPrinciples(t *testing.T) {
	repo := new(MockCaseRepository)
	gen := new(MockGenerator)
	svc := NewCaseService(repo, gen)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(&model.Case{ID: id}, nil)

	_, err := svc.GenerateQuiz(context.Background(), id, 1)

	assert.ErrorIs(t, err, apperror.ErrValidation)
	gen.AssertNotCalled(t, "GenerateQuiz", mock.Anything, mock.Anything, mock.Anything)
}

func TestCaseService_RegenerateQuiz_OverwritesExisting(t *testing.T) {
	repo := new(MockCaseRepository)
	gen := new(MockGenerator)
	svc := NewCaseService(repo, gen)

	id := uuid.New()
	existing := &model.Case{
		ID:             id,
		LegalPrinciple: datatypes.NewJSONSlice(casePrinciples),
		Quiz: datatypes.NewJSONSlice([]model.QuizQuestion{
			{Question: "Old?", Answers: []string{"A", "B", "C", "D"}, CorrectAnswer: "A"},
		}),
	}
	newQuiz := []model.QuizQuestion{
		{Question: "New 1?", Answers: []string{"A", "B", "C", "D"}, CorrectAnswer: "B"},
		{Question: "New 2?", Answers: []string{"A", "B", "C", "D"}, CorrectAnswer: "C"},
	}

	repo.On("FindByID", mock.Anything, id).Return(existing, nil)
	gen.On("GenerateQuiz", mock.Anything, []model.LegalPrinciple(existing.LegalPrinciple), 2).Return(newQuiz, nil)
	repo.On("Update", mock.Anything, id, mock.Anything).Return(existing, nil)

	_, err := svc.RegenerateQuiz(context.Background(), id, 2)

	assert.NoError(t, err)

	updates := repo.Calls[1].Arguments.Get(2).(map[string]interface{})
	assert.Equal(t, datatypes.NewJSONSlice(newQuiz), updates["quiz"])
	assert.Equal(t, 2, updates["num_quiz_generated"])
}

func TestCaseService_GetQuiz(t *testing.T) {
	repo := new(MockCaseRepository)
	svc := NewCaseService(repo, nil)

	id := uuid.New()
	quiz := []model.QuizQuestion{
		{Question: "Q?", Answers: []string{"A", "B", "C", "D"}, CorrectAnswer: "D"},
	}
	repo.On("FindByID", mock.Anything, id).Return(&model.Case{
		ID:   id,
		Quiz: datatypes.NewJSONSlice(quiz),
	}, nil)

	got, err := svc.GetQuiz(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, quiz, []model.QuizQuestion(got))
}

func TestCaseService_GetQuiz_Empty(t *testing.T) {
	repo := new(MockCaseRepository)
	svc := NewCaseService(repo, nil)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(&model.Case{ID: id}, nil)

	_, err := svc.GetQuiz(context.Background(), id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
