package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"notesapi/internal/service"
	"notesapi/internal/session"
)

// CategoryHandler serves the read-only category listing.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryResponse is a category annotated with the caller's note count.
type CategoryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	ColorHex  string    `json:"color_hex"`
	Slug      string    `json:"slug"`
	NoteCount int64     `json:"note_count"`
	CreatedAt time.Time `json:"created_at"`
}

func newCategoryResponse(category service.CategoryWithCount) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		ColorHex:  category.ColorHex,
		Slug:      category.Slug,
		NoteCount: category.NoteCount,
		CreatedAt: category.CreatedAt,
	}
}

// List godoc
// @Summary List all categories with the caller's note counts
// @Tags categories
// @Produce json
// @Success 200 {array} CategoryResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	sess := session.FromContext(c)
	categories, err := h.categoryService.ListForUser(c.Request().Context(), sess.UserID)
	if err != nil {
		return writeError(c, err)
	}

	resp := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, newCategoryResponse(category))
	}
	return c.JSON(http.StatusOK, resp)
}
