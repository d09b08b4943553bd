package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lexora.app/lawstudybackend/internal/model"
)

type CaseRepository interface {
	Create(ctx context.Context, c *model.Case) error
	FindAll(ctx context.Context) ([]*model.Case, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Case, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.Case, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type caseRepository struct {
	db *gorm.DB
}

func NewCaseRepository(db *gorm.DB) CaseRepository {
	return &caseRepository{db: db}
}

func (r *caseRepository) Create(ctx context.Context, c *model.Case) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *caseRepository) FindAll(ctx context.Context) ([]*model.Case, error) {
	var cases []*model.Case
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&cases).Error; err != nil {
		return nil, err
	}

	return cases, nil
}

func (r *caseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Case, error) {
	var c model.Case
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&c).Error; err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *caseRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.Case, error) {
	if err := r.db.WithContext(ctx).
		Model(&model.Case{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *caseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Case{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
