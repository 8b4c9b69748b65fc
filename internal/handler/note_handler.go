package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"notesapi/internal/errors"
	"notesapi/internal/model"
	"notesapi/internal/service"
	"notesapi/internal/session"
)

// NoteHandler serves owner-scoped note CRUD.
type NoteHandler struct {
	noteService service.NoteService
}

// NewNoteHandler creates a new note handler.
func NewNoteHandler(noteService service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// CreateNoteRequest represents a note creation payload. The owner always
// comes from the session, never from the client.
type CreateNoteRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
	Category uint   `json:"category" validate:"required"`
}

// ReplaceNoteRequest represents a full (PUT) note update.
type ReplaceNoteRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
	Category uint   `json:"category" validate:"required"`
}

// PatchNoteRequest represents a partial (PATCH) note update; absent fields
// are left unchanged.
type PatchNoteRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *uint   `json:"category"`
}

// NoteResponse mirrors the note payload the frontend consumes: the bare
// category id plus a nested detail block with the caller's note count.
type NoteResponse struct {
	ID             uint             `json:"id"`
	Title          string           `json:"title"`
	Content        string           `json:"content"`
	Category       uint             `json:"category"`
	CategoryDetail CategoryResponse `json:"category_detail"`
	Owner          uint             `json:"owner"`
	OwnerUsername  string           `json:"owner_username"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func newNoteResponse(note model.Note, counts map[uint]int64) NoteResponse {
	return NoteResponse{
		ID:       note.ID,
		Title:    note.Title,
		Content:  note.Content,
		Category: note.CategoryID,
		CategoryDetail: CategoryResponse{
			ID:        note.Category.ID,
			Name:      note.Category.Name,
			ColorHex:  note.Category.ColorHex,
			Slug:      note.Category.Slug,
			NoteCount: counts[note.CategoryID],
			CreatedAt: note.Category.CreatedAt,
		},
		Owner:         note.OwnerID,
		OwnerUsername: note.Owner.Username,
		CreatedAt:     note.CreatedAt,
		UpdatedAt:     note.UpdatedAt,
	}
}

// noteResponseFor builds a single note payload with fresh per-category
// counts for the caller.
func (h *NoteHandler) noteResponseFor(c echo.Context, ownerID uint, note *model.Note) (NoteResponse, error) {
	counts, err := h.noteService.CountsForOwner(c.Request().Context(), ownerID)
	if err != nil {
		return NoteResponse{}, err
	}
	return newNoteResponse(*note, counts), nil
}

func noteID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.ErrNoteNotFound
	}
	return uint(id), nil
}

// List godoc
// @Summary List the caller's notes, most recently updated first
// @Tags notes
// @Produce json
// @Param category_id query int false "Restrict to one category"
// @Success 200 {array} NoteResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	sess := session.FromContext(c)

	var categoryID *uint
	if raw := c.QueryParam("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return writeValidationError(c, "category_id must be an integer")
		}
		id := uint(parsed)
		categoryID = &id
	}

	notes, err := h.noteService.List(c.Request().Context(), sess.UserID, categoryID)
	if err != nil {
		return writeError(c, err)
	}
	counts, err := h.noteService.CountsForOwner(c.Request().Context(), sess.UserID)
	if err != nil {
		return writeError(c, err)
	}

	resp := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		resp = append(resp, newNoteResponse(note, counts))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Create a note owned by the caller
// @Tags notes
// @Accept json
// @Produce json
// @Param request body CreateNoteRequest true "Note payload"
// @Success 201 {object} NoteResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	sess := session.FromContext(c)

	var req CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return writeValidationError(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return writeValidationError(c, "title and category are required")
	}

	note, err := h.noteService.Create(c.Request().Context(), sess.UserID, req.Title, req.Content, req.Category)
	if err != nil {
		return writeError(c, err)
	}
	resp, err := h.noteResponseFor(c, sess.UserID, note)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary Retrieve one of the caller's notes
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} NoteResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /notes/{id} [get]
func (h *NoteHandler) Get(c echo.Context) error {
	sess := session.FromContext(c)
	id, err := noteID(c)
	if err != nil {
		return writeError(c, err)
	}

	note, err := h.noteService.Get(c.Request().Context(), sess.UserID, id)
	if err != nil {
		return writeError(c, err)
	}
	resp, err := h.noteResponseFor(c, sess.UserID, note)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Replace godoc
// @Summary Fully update one of the caller's notes
// @Tags notes
// @Accept json
// @Produce json
// @Param id path int true "Note ID"
// @Param request body ReplaceNoteRequest true "Note payload"
// @Success 200 {object} NoteResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /notes/{id} [put]
func (h *NoteHandler) Replace(c echo.Context) error {
	sess := session.FromContext(c)
	id, err := noteID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req ReplaceNoteRequest
	if err := c.Bind(&req); err != nil {
		return writeValidationError(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return writeValidationError(c, "title and category are required")
	}

	patch := service.NoteUpdate{
		Title:    &req.Title,
		Content:  &req.Content,
		Category: &req.Category,
	}
	note, err := h.noteService.Update(c.Request().Context(), sess.UserID, id, patch)
	if err != nil {
		return writeError(c, err)
	}
	resp, err := h.noteResponseFor(c, sess.UserID, note)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Patch godoc
// @Summary Partially update one of the caller's notes
// @Tags notes
// @Accept json
// @Produce json
// @Param id path int true "Note ID"
// @Param request body PatchNoteRequest true "Fields to change"
// @Success 200 {object} NoteResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /notes/{id} [patch]
func (h *NoteHandler) Patch(c echo.Context) error {
	sess := session.FromContext(c)
	id, err := noteID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req PatchNoteRequest
	if err := c.Bind(&req); err != nil {
		return writeValidationError(c, "invalid request body")
	}
	if req.Title != nil && *req.Title == "" {
		return writeValidationError(c, "title may not be blank")
	}

	patch := service.NoteUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	}
	note, err := h.noteService.Update(c.Request().Context(), sess.UserID, id, patch)
	if err != nil {
		return writeError(c, err)
	}
	resp, err := h.noteResponseFor(c, sess.UserID, note)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete one of the caller's notes
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	sess := session.FromContext(c)
	id, err := noteID(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.noteService.Delete(c.Request().Context(), sess.UserID, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Note deleted",
	})
}
