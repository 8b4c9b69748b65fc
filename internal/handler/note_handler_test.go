package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"notesapi/internal/errors"
	"notesapi/internal/model"
	"notesapi/internal/service"
	"notesapi/internal/session"
)

// MockNoteService is a mock implementation of service.NoteService.
type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) List(ctx context.Context, ownerID uint, categoryID *uint) ([]model.Note, error) {
	args := m.Called(ctx, ownerID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *MockNoteService) Create(ctx context.Context, ownerID uint, title, content string, categoryID uint) (*model.Note, error) {
	args := m.Called(ctx, ownerID, title, content, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNoteService) Get(ctx context.Context, ownerID, id uint) (*model.Note, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNoteService) Update(ctx context.Context, ownerID, id uint, patch service.NoteUpdate) (*model.Note, error) {
	args := m.Called(ctx, ownerID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNoteService) Delete(ctx context.Context, ownerID, id uint) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockNoteService) CountsForOwner(ctx context.Context, ownerID uint) (map[uint]int64, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]int64), args.Error(1)
}

func aliceSession() *session.Session {
	return &session.Session{Token: "t", UserID: 1, Username: "alice"}
}

func sampleNote() *model.Note {
	return &model.Note{
		ID:         10,
		Title:      "Shop",
		Content:    "milk",
		CategoryID: 2,
		OwnerID:    1,
		Category:   model.Category{ID: 2, Name: "School", ColorHex: "#FFD966", Slug: "school"},
		Owner:      model.User{ID: 1, Username: "alice"},
	}
}

func TestNoteHandler_List(t *testing.T) {
	t.Run("with category filter", func(t *testing.T) {
		mockNotes := new(MockNoteService)
		categoryID := uint(2)
		mockNotes.On("List", mock.Anything, uint(1), &categoryID).Return([]model.Note{*sampleNote()}, nil)
		mockNotes.On("CountsForOwner", mock.Anything, uint(1)).Return(map[uint]int64{2: 1}, nil)
		h := NewNoteHandler(mockNotes)

		c, rec := newTestContext(http.MethodGet, "/notes?category_id=2", "")
		c.Set(session.ContextKey, aliceSession())

		assert.NoError(t, h.List(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"owner_username":"alice"`)
		assert.Contains(t, rec.Body.String(), `"note_count":1`)
		mockNotes.AssertExpectations(t)
	})

	t.Run("non-numeric category filter", func(t *testing.T) {
		mockNotes := new(MockNoteService)
		h := NewNoteHandler(mockNotes)

		c, rec := newTestContext(http.MethodGet, "/notes?category_id=school", "")
		c.Set(session.ContextKey, aliceSession())

		assert.NoError(t, h.List(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
		mockNotes.AssertExpectations(t)
	})
}

func TestNoteHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockNoteService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful create",
			body: `{"title":"Shop","content":"milk","category":2}`,
			setupMock: func(m *MockNoteService) {
				m.On("Create", mock.Anything, uint(1), "Shop", "milk", uint(2)).Return(sampleNote(), nil)
				m.On("CountsForOwner", mock.Anything, uint(1)).Return(map[uint]int64{2: 1}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"owner_username":"alice"`,
		},
		{
			name:           "missing title",
			body:           `{"content":"milk","category":2}`,
			setupMock:      func(m *MockNoteService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_ERROR",
		},
		{
			name: "unknown category",
			body: `{"title":"Shop","category":99}`,
			setupMock: func(m *MockNoteService) {
				m.On("Create", mock.Anything, uint(1), "Shop", "", uint(99)).Return(nil, errors.ErrCategoryNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockNotes := new(MockNoteService)
			tt.setupMock(mockNotes)
			h := NewNoteHandler(mockNotes)

			c, rec := newTestContext(http.MethodPost, "/notes", tt.body)
			c.Set(session.ContextKey, aliceSession())

			assert.NoError(t, h.Create(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockNotes.AssertExpectations(t)
		})
	}
}

func TestNoteHandler_Get(t *testing.T) {
	t.Run("another user's note reads as missing", func(t *testing.T) {
		mockNotes := new(MockNoteService)
		mockNotes.On("Get", mock.Anything, uint(1), uint(10)).Return(nil, errors.ErrNoteNotFound)
		h := NewNoteHandler(mockNotes)

		c, rec := newTestContext(http.MethodGet, "/notes/10", "")
		c.SetParamNames("id")
		c.SetParamValues("10")
		c.Set(session.ContextKey, aliceSession())

		assert.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "NOT_FOUND")
		mockNotes.AssertExpectations(t)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		mockNotes := new(MockNoteService)
		h := NewNoteHandler(mockNotes)

		c, rec := newTestContext(http.MethodGet, "/notes/abc", "")
		c.SetParamNames("id")
		c.SetParamValues("abc")
		c.Set(session.ContextKey, aliceSession())

		assert.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockNotes.AssertExpectations(t)
	})
}

func TestNoteHandler_Patch(t *testing.T) {
	mockNotes := new(MockNoteService)
	updated := sampleNote()
	updated.Title = "Groceries"
	mockNotes.On("Update", mock.Anything, uint(1), uint(10), mock.MatchedBy(func(p service.NoteUpdate) bool {
		return p.Title != nil && *p.Title == "Groceries" && p.Content == nil && p.Category == nil
	})).Return(updated, nil)
	mockNotes.On("CountsForOwner", mock.Anything, uint(1)).Return(map[uint]int64{2: 1}, nil)
	h := NewNoteHandler(mockNotes)

	c, rec := newTestContext(http.MethodPatch, "/notes/10", `{"title":"Groceries"}`)
	c.SetParamNames("id")
	c.SetParamValues("10")
	c.Set(session.ContextKey, aliceSession())

	assert.NoError(t, h.Patch(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Groceries"`)
	mockNotes.AssertExpectations(t)
}

func TestNoteHandler_Delete(t *testing.T) {
	mockNotes := new(MockNoteService)
	mockNotes.On("Delete", mock.Anything, uint(1), uint(10)).Return(nil)
	h := NewNoteHandler(mockNotes)

	c, rec := newTestContext(http.MethodDelete, "/notes/10", "")
	c.SetParamNames("id")
	c.SetParamValues("10")
	c.Set(session.ContextKey, aliceSession())

	assert.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "deleted")
	mockNotes.AssertExpectations(t)
}
