package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"notesapi/internal/model"
	"notesapi/internal/service"
	"notesapi/internal/session"
)

// AuthHandler handles registration, login, logout and profile endpoints.
type AuthHandler struct {
	authService service.AuthService
	sessions    session.StoreInterface
	sessionTTL  time.Duration
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions session.StoreInterface, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
	}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProfileResponse is the public view of a user.
type ProfileResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func newProfileResponse(user *model.User) ProfileResponse {
	return ProfileResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// establishSession issues a fresh session for the user and sets the cookie.
func (h *AuthHandler) establishSession(c echo.Context, user *model.User) error {
	token, err := h.sessions.Create(c.Request().Context(), user.ID, user.Username)
	if err != nil {
		return err
	}
	c.SetCookie(session.NewCookie(token, h.sessionTTL))
	return nil
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} ProfileResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return writeValidationError(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return writeValidationError(c, "username and password are required")
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Email)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.establishSession(c, user); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, newProfileResponse(user))
}

// Login godoc
// @Summary Login with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return writeValidationError(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return writeValidationError(c, "username and password are required")
	}

	user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.establishSession(c, user); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newProfileResponse(user))
}

// Logout godoc
// @Summary Invalidate the current session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := session.FromContext(c)
	if err := h.sessions.Delete(c.Request().Context(), sess.Token); err != nil {
		return writeError(c, err)
	}
	c.SetCookie(session.ExpiredCookie())
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logged out successfully",
	})
}

// Me godoc
// @Summary Return the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess := session.FromContext(c)
	user, err := h.authService.Profile(c.Request().Context(), sess.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newProfileResponse(user))
}
