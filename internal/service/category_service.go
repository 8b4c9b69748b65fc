package service

import (
	"context"

	"notesapi/internal/model"
	"notesapi/internal/repository"
)

// CategoryWithCount pairs a category with the requesting user's note count.
type CategoryWithCount struct {
	model.Category
	NoteCount int64
}

// CategoryService exposes the read-only category listing.
type CategoryService interface {
	ListForUser(ctx context.Context, ownerID uint) ([]CategoryWithCount, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	noteRepo     repository.NoteRepository
}

// NewCategoryService builds a CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository, noteRepo repository.NoteRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, noteRepo: noteRepo}
}

// ListForUser returns all categories annotated with how many notes the
// requesting user has in each. The counts are always the caller's own.
func (s *categoryService) ListForUser(ctx context.Context, ownerID uint) ([]CategoryWithCount, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.noteRepo.CountByCategoryForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]CategoryWithCount, 0, len(categories))
	for _, category := range categories {
		result = append(result, CategoryWithCount{
			Category:  category,
			NoteCount: counts[category.ID],
		})
	}
	return result, nil
}
