package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"notesapi/internal/model"
)

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	FindBySlug(ctx context.Context, slug string) (*model.Category, error)
	GetOrCreateBySlug(ctx context.Context, category *model.Category) (created bool, err error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// List returns all categories ordered by name.
func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// GetOrCreateBySlug creates the category unless a row with its slug already
// exists. Existing rows are left untouched, which keeps seeding idempotent.
func (r *categoryRepository) GetOrCreateBySlug(ctx context.Context, category *model.Category) (bool, error) {
	var existing model.Category
	err := r.db.WithContext(ctx).Where("slug = ?", category.Slug).First(&existing).Error
	switch {
	case err == nil:
		*category = existing
		return false, nil
	case err == gorm.ErrRecordNotFound:
		if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
			return false, fmt.Errorf("create category: %w", err)
		}
		return true, nil
	default:
		return false, fmt.Errorf("find category: %w", err)
	}
}
