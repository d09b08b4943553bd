package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lexora.app/lawstudybackend/internal/dto"
	"lexora.app/lawstudybackend/internal/model"
	"lexora.app/lawstudybackend/internal/repository"
	"lexora.app/lawstudybackend/pkg/apperror"
)

// maxNotesPerPage is a hard cap; larger requested limits are clamped.
const maxNotesPerPage = 30

// NotePage is one page of a user's notes plus pagination totals.
type NotePage struct {
	Notes       []*model.Note
	TotalNotes  int64
	TotalPages  int
	CurrentPage int
}

// NoteService scopes every operation to the owning user. A note owned
// by someone else is indistinguishable from a missing one.
type NoteService interface {
	Create(ctx context.Context, userID uuid.UUID, input dto.CreateNoteRequest) (*model.Note, error)
	GetAll(ctx context.Context, userID uuid.UUID, filter dto.NoteFilter) (*NotePage, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*model.Note, error)
	Update(ctx context.Context, userID, id uuid.UUID, input dto.UpdateNoteRequest) (*model.Note, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteAll(ctx context.Context, userID uuid.UUID) (int64, error)
}

type noteService struct {
	repo repository.NoteRepository
}

func NewNoteService(repo repository.NoteRepository) NoteService {
	return &noteService{repo: repo}
}

func (s *noteService) Create(ctx context.Context, userID uuid.UUID, input dto.CreateNoteRequest) (*model.Note, error) {
	if _, err := s.repo.FindByUserAndTitle(ctx, userID, input.Title); err == nil {
		return nil, fmt.Errorf("%w: note already exists with that same title", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	note := &model.Note{
		UserID:          userID,
		Title:           input.Title,
		Content:         input.Content,
		ImportanceLevel: input.ImportanceLevel,
		LegalTopic:      input.LegalTopic,
		Tags:            datatypes.NewJSONSlice(input.Tags),
	}

	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *noteService) GetAll(ctx context.Context, userID uuid.UUID, filter dto.NoteFilter) (*NotePage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > maxNotesPerPage {
		limit = maxNotesPerPage
	}

	offset := (page - 1) * limit
	notes, total, err := s.repo.FindAllByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}

	return &NotePage{
		Notes:       notes,
		TotalNotes:  total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
	}, nil
}

func (s *noteService) GetByID(ctx context.Context, userID, id uuid.UUID) (*model.Note, error) {
	note, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: note does not exist with that Id", apperror.ErrNotFound)
		}
		return nil, err
	}

	return note, nil
}

func (s *noteService) Update(ctx context.Context, userID, id uuid.UUID, input dto.UpdateNoteRequest) (*model.Note, error) {
	updates := map[string]interface{}{}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.ImportanceLevel != nil {
		updates["importance_level"] = *input.ImportanceLevel
	}
	if input.LegalTopic != nil {
		updates["legal_topic"] = *input.LegalTopic
	}
	if input.Tags != nil {
		updates["tags"] = datatypes.NewJSONSlice(*input.Tags)
	}

	if len(updates) == 0 {
		return s.GetByID(ctx, userID, id)
	}

	note, err := s.repo.Update(ctx, id, userID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: note does not exist with that Id", apperror.ErrNotFound)
		}
		return nil, err
	}

	return note, nil
}

func (s *noteService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.DeleteByIDAndUser(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: note does not exist with that Id", apperror.ErrNotFound)
		}
		return err
	}

	return nil
}

func (s *noteService) DeleteAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.DeleteAllByUser(ctx, userID)
}
