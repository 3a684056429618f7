package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/remora/internal/domain"
	"github.com/nfrund/remora/internal/models"
)

// UserContextKey is the echo context key under which the authenticated user
// is stored. Handlers read a nil user as "spectator session".
const UserContextKey = "user"

// OptionalAuth resolves the identity from the auth cookie when one is
// present and valid. Requests without a usable token proceed as anonymous:
// spectating the home view is allowed, so there is no redirect here. An
// invalid cookie is cleared so the client stops sending it.
func OptionalAuth(store domain.UserStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie("auth_token")
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			user, err := store.Authenticate(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidCredentials) {
					c.SetCookie(&http.Cookie{
						Name:   "auth_token",
						Value:  "",
						Path:   "/",
						MaxAge: -1,
					})
					return next(c)
				}
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the authenticated user set by OptionalAuth, or
// nil for anonymous sessions.
func UserFromContext(c echo.Context) *models.User {
	if user, ok := c.Get(UserContextKey).(*models.User); ok {
		return user
	}
	return nil
}
