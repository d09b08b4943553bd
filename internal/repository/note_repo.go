package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lexora.app/lawstudybackend/internal/model"
)

type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	FindByUserAndTitle(ctx context.Context, userID uuid.UUID, title string) (*model.Note, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*model.Note, int64, error)
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*model.Note, error)
	Update(ctx context.Context, id, userID uuid.UUID, updates map[string]interface{}) (*model.Note, error)
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) FindByUserAndTitle(ctx context.Context, userID uuid.UUID, title string) (*model.Note, error) {
	var note model.Note
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND title = ?", userID, title).
		First(&note).Error; err != nil {
		return nil, err
	}

	return &note, nil
}

func (r *noteRepository) FindAllByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*model.Note, int64, error) {
	var notes []*model.Note
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Note{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&notes).Error; err != nil {
		return nil, 0, err
	}

	return notes, total, nil
}

func (r *noteRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*model.Note, error) {
	var note model.Note
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&note).Error; err != nil {
		return nil, err
	}

	return &note, nil
}

func (r *noteRepository) Update(ctx context.Context, id, userID uuid.UUID, updates map[string]interface{}) (*model.Note, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.FindByIDAndUser(ctx, id, userID)
}

func (r *noteRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Note{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *noteRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.Note{}, "user_id = ?", userID)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
