package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"notesapi/internal/errors"
	"notesapi/internal/model"
)

func TestNoteService_Create(t *testing.T) {
	tests := []struct {
		name          string
		categoryID    uint
		setupMock     func(*MockNoteRepository, *MockCategoryRepository)
		expectedError error
	}{
		{
			name:       "successful create",
			categoryID: 2,
			setupMock: func(mNote *MockNoteRepository, mCat *MockCategoryRepository) {
				mCat.On("FindByID", mock.Anything, uint(2)).Return(&model.Category{ID: 2, Name: "School"}, nil)
				mNote.On("Create", mock.Anything, mock.AnythingOfType("*model.Note")).Run(func(args mock.Arguments) {
					args.Get(1).(*model.Note).ID = 10
				}).Return(nil)
				mNote.On("FindByIDForOwner", mock.Anything, uint(10), uint(1)).Return(&model.Note{
					ID:         10,
					Title:      "Shop",
					CategoryID: 2,
					OwnerID:    1,
					Category:   model.Category{ID: 2, Name: "School"},
					Owner:      model.User{ID: 1, Username: "alice"},
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:       "unknown category",
			categoryID: 99,
			setupMock: func(mNote *MockNoteRepository, mCat *MockCategoryRepository) {
				mCat.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockNotes := new(MockNoteRepository)
			mockCategories := new(MockCategoryRepository)
			tt.setupMock(mockNotes, mockCategories)

			service := NewNoteService(mockNotes, mockCategories)
			note, err := service.Create(context.Background(), 1, "Shop", "", tt.categoryID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, note)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, note)
				assert.Equal(t, uint(1), note.OwnerID)
				assert.Equal(t, "alice", note.Owner.Username)
			}

			mockNotes.AssertExpectations(t)
			mockCategories.AssertExpectations(t)
		})
	}
}

func TestNoteService_GetScopedToOwner(t *testing.T) {
	mockNotes := new(MockNoteRepository)
	mockCategories := new(MockCategoryRepository)

	// Another user's note surfaces as record-not-found from the repository,
	// so the caller cannot tell it apart from a missing one.
	mockNotes.On("FindByIDForOwner", mock.Anything, uint(10), uint(2)).Return(nil, gorm.ErrRecordNotFound)

	service := NewNoteService(mockNotes, mockCategories)
	note, err := service.Get(context.Background(), 2, 10)

	assert.Equal(t, errors.ErrNoteNotFound, err)
	assert.Nil(t, note)
	mockNotes.AssertExpectations(t)
}

func TestNoteService_Update(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	uintPtr := func(u uint) *uint { return &u }

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		mockNotes := new(MockNoteRepository)
		mockCategories := new(MockCategoryRepository)

		existing := &model.Note{ID: 10, Title: "Old", Content: "body", CategoryID: 2, OwnerID: 1}
		mockNotes.On("FindByIDForOwner", mock.Anything, uint(10), uint(1)).Return(existing, nil)
		mockNotes.On("Update", mock.Anything, mock.MatchedBy(func(n *model.Note) bool {
			return n.Title == "New" && n.Content == "body" && n.CategoryID == 2
		})).Return(nil)

		service := NewNoteService(mockNotes, mockCategories)
		note, err := service.Update(context.Background(), 1, 10, NoteUpdate{Title: strPtr("New")})

		assert.NoError(t, err)
		assert.Equal(t, "New", note.Title)
		mockNotes.AssertExpectations(t)
		mockCategories.AssertExpectations(t)
	})

	t.Run("category change is validated", func(t *testing.T) {
		mockNotes := new(MockNoteRepository)
		mockCategories := new(MockCategoryRepository)

		existing := &model.Note{ID: 10, Title: "Old", CategoryID: 2, OwnerID: 1}
		mockNotes.On("FindByIDForOwner", mock.Anything, uint(10), uint(1)).Return(existing, nil)
		mockCategories.On("FindByID", mock.Anything, uint(77)).Return(nil, gorm.ErrRecordNotFound)

		service := NewNoteService(mockNotes, mockCategories)
		note, err := service.Update(context.Background(), 1, 10, NoteUpdate{Category: uintPtr(77)})

		assert.Equal(t, errors.ErrCategoryNotFound, err)
		assert.Nil(t, note)
		mockNotes.AssertExpectations(t)
		mockCategories.AssertExpectations(t)
	})

	t.Run("missing note", func(t *testing.T) {
		mockNotes := new(MockNoteRepository)
		mockCategories := new(MockCategoryRepository)
		mockNotes.On("FindByIDForOwner", mock.Anything, uint(404), uint(1)).Return(nil, gorm.ErrRecordNotFound)

		service := NewNoteService(mockNotes, mockCategories)
		_, err := service.Update(context.Background(), 1, 404, NoteUpdate{Title: strPtr("x")})

		assert.Equal(t, errors.ErrNoteNotFound, err)
	})
}

func TestNoteService_Delete(t *testing.T) {
	mockNotes := new(MockNoteRepository)
	mockCategories := new(MockCategoryRepository)

	mockNotes.On("DeleteByIDForOwner", mock.Anything, uint(10), uint(1)).Return(nil)
	mockNotes.On("DeleteByIDForOwner", mock.Anything, uint(11), uint(1)).Return(gorm.ErrRecordNotFound)

	service := NewNoteService(mockNotes, mockCategories)

	assert.NoError(t, service.Delete(context.Background(), 1, 10))
	assert.Equal(t, errors.ErrNoteNotFound, service.Delete(context.Background(), 1, 11))
	mockNotes.AssertExpectations(t)
}

func TestNoteService_ListPassesCategoryFilter(t *testing.T) {
	mockNotes := new(MockNoteRepository)
	mockCategories := new(MockCategoryRepository)

	categoryID := uint(2)
	expected := []model.Note{{ID: 3, CategoryID: 2, OwnerID: 1}}
	mockNotes.On("ListByOwner", mock.Anything, uint(1), &categoryID).Return(expected, nil)

	service := NewNoteService(mockNotes, mockCategories)
	notes, err := service.List(context.Background(), 1, &categoryID)

	assert.NoError(t, err)
	assert.Equal(t, expected, notes)
	mockNotes.AssertExpectations(t)
}
