package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"notesapi/internal/errors"
)

// writeError maps a domain error to its HTTP response.
func writeError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// writeValidationError reports a bind or validation failure.
func writeValidationError(c echo.Context, message string) error {
	httpErr := errors.NewHTTPError(http.StatusBadRequest, message, "VALIDATION_ERROR")
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
