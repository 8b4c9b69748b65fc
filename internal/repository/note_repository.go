package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"notesapi/internal/model"
)

// NoteRepository defines note persistence operations. Every read and write
// is scoped to an owner; there is no unscoped access path.
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	Update(ctx context.Context, note *model.Note) error
	FindByIDForOwner(ctx context.Context, id, ownerID uint) (*model.Note, error)
	ListByOwner(ctx context.Context, ownerID uint, categoryID *uint) ([]model.Note, error)
	DeleteByIDForOwner(ctx context.Context, id, ownerID uint) error
	CountByCategoryForOwner(ctx context.Context, ownerID uint) (map[uint]int64, error)
}

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

// Update persists the note's own columns; preloaded associations are never
// written back.
func (r *noteRepository) Update(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(note).Error
}

// FindByIDForOwner returns the note only when it belongs to ownerID; a note
// owned by someone else surfaces as gorm.ErrRecordNotFound.
func (r *noteRepository) FindByIDForOwner(ctx context.Context, id, ownerID uint) (*model.Note, error) {
	var note model.Note
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Owner").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// ListByOwner returns the owner's notes, most recently updated first,
// optionally restricted to one category.
func (r *noteRepository) ListByOwner(ctx context.Context, ownerID uint, categoryID *uint) ([]model.Note, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var notes []model.Note
	if err := query.Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) DeleteByIDForOwner(ctx context.Context, id, ownerID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.Note{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByCategoryForOwner returns per-category note counts for one owner in
// a single grouped query. Categories without notes are absent from the map.
func (r *noteRepository) CountByCategoryForOwner(ctx context.Context, ownerID uint) (map[uint]int64, error) {
	type row struct {
		CategoryID uint
		Count      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Note{}).
		Select("category_id, COUNT(*) as count").
		Where("owner_id = ?", ownerID).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, entry := range rows {
		counts[entry.CategoryID] = entry.Count
	}
	return counts, nil
}
