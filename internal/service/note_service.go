package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"notesapi/internal/errors"
	"notesapi/internal/model"
	"notesapi/internal/repository"
)

// NoteUpdate carries a partial note edit; nil fields are left unchanged.
type NoteUpdate struct {
	Title    *string
	Content  *string
	Category *uint
}

// NoteService exposes owner-scoped note CRUD. A note owned by another user
// is indistinguishable from a missing one.
type NoteService interface {
	List(ctx context.Context, ownerID uint, categoryID *uint) ([]model.Note, error)
	Create(ctx context.Context, ownerID uint, title, content string, categoryID uint) (*model.Note, error)
	Get(ctx context.Context, ownerID, id uint) (*model.Note, error)
	Update(ctx context.Context, ownerID, id uint, patch NoteUpdate) (*model.Note, error)
	Delete(ctx context.Context, ownerID, id uint) error
	CountsForOwner(ctx context.Context, ownerID uint) (map[uint]int64, error)
}

type noteService struct {
	noteRepo     repository.NoteRepository
	categoryRepo repository.CategoryRepository
}

// NewNoteService builds a NoteService.
func NewNoteService(noteRepo repository.NoteRepository, categoryRepo repository.CategoryRepository) NoteService {
	return &noteService{noteRepo: noteRepo, categoryRepo: categoryRepo}
}

func (s *noteService) List(ctx context.Context, ownerID uint, categoryID *uint) ([]model.Note, error) {
	return s.noteRepo.ListByOwner(ctx, ownerID, categoryID)
}

// Create stores a note for ownerID; the owner is never taken from the
// payload. The category must exist.
func (s *noteService) Create(ctx context.Context, ownerID uint, title, content string, categoryID uint) (*model.Note, error) {
	if err := s.checkCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	note := &model.Note{
		Title:      title,
		Content:    content,
		CategoryID: categoryID,
		OwnerID:    ownerID,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return s.Get(ctx, ownerID, note.ID)
}

func (s *noteService) Get(ctx context.Context, ownerID, id uint) (*model.Note, error) {
	note, err := s.noteRepo.FindByIDForOwner(ctx, id, ownerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

// Update applies a partial or full edit. Last write wins; updated_at is
// refreshed by the ORM on save.
func (s *noteService) Update(ctx context.Context, ownerID, id uint, patch NoteUpdate) (*model.Note, error) {
	note, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if patch.Category != nil && *patch.Category != note.CategoryID {
		if err := s.checkCategory(ctx, *patch.Category); err != nil {
			return nil, err
		}
		note.CategoryID = *patch.Category
	}
	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return s.Get(ctx, ownerID, id)
}

func (s *noteService) Delete(ctx context.Context, ownerID, id uint) error {
	if err := s.noteRepo.DeleteByIDForOwner(ctx, id, ownerID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrNoteNotFound
		}
		return err
	}
	return nil
}

func (s *noteService) CountsForOwner(ctx context.Context, ownerID uint) (map[uint]int64, error) {
	return s.noteRepo.CountByCategoryForOwner(ctx, ownerID)
}

func (s *noteService) checkCategory(ctx context.Context, categoryID uint) error {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCategoryNotFound
		}
		return fmt.Errorf("check category: %w", err)
	}
	return nil
}
