package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"notesapi/internal/errors"
)

const (
	// CookieName matches the cookie the frontend was built against.
	CookieName = "sessionid"
	// ContextKey is where RequireSession stashes the resolved session.
	ContextKey = "session"
)

// RequireSession resolves the session cookie against the store and rejects
// the request with 401 when no valid session exists.
func RequireSession(store StoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return unauthorized(c)
			}
			sess, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil || sess == nil {
				return unauthorized(c)
			}
			c.Set(ContextKey, sess)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	httpErr := errors.MapErrorToHTTP(errors.ErrAuthenticationRequired)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// FromContext returns the session attached by RequireSession, or nil.
func FromContext(c echo.Context) *Session {
	sess, _ := c.Get(ContextKey).(*Session)
	return sess
}

// NewCookie builds the session cookie returned on register and login.
func NewCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie builds a cookie that clears the session on logout.
func ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
