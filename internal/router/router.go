package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"notesapi/internal/handler"
	"notesapi/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions session.StoreInterface,
	authHandler *handler.AuthHandler,
	categoryHandler *handler.CategoryHandler,
	noteHandler *handler.NoteHandler,
) {
	// The frontend calls every path with a trailing slash.
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authRequired := session.RequireSession(sessions)

	api := e.Group("/api")

	// Auth endpoints, mounted both under /api and at the root so the
	// frontend works whether or not its API base URL includes /api.
	registerAuthRoutes(api.Group("/auth"), authHandler, authRequired)
	registerAuthRoutes(e.Group("/auth"), authHandler, authRequired)

	// Resource endpoints, all session-scoped
	api.GET("/categories", categoryHandler.List, authRequired)

	api.GET("/notes", noteHandler.List, authRequired)
	api.POST("/notes", noteHandler.Create, authRequired)
	api.GET("/notes/:id", noteHandler.Get, authRequired)
	api.PUT("/notes/:id", noteHandler.Replace, authRequired)
	api.PATCH("/notes/:id", noteHandler.Patch, authRequired)
	api.DELETE("/notes/:id", noteHandler.Delete, authRequired)
}

func registerAuthRoutes(g *echo.Group, authHandler *handler.AuthHandler, authRequired echo.MiddlewareFunc) {
	g.POST("/register", authHandler.Register)
	g.POST("/login", authHandler.Login)
	g.POST("/logout", authHandler.Logout, authRequired)
	g.GET("/me", authHandler.Me, authRequired)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
