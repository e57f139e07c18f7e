package handlers

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/echo-commerce/echo-commerce/cmd/ecd/store"
	binderr "github.com/echo-commerce/echo-commerce/pkg/api-types-binding/errors"
)

const userContextKey = "echo-commerce/user"

// TokenVerifier resolves a bearer token to a username.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Authenticated requires a valid bearer token and loads the account it
// belongs to into the request context.
//
// A missing, broken or expired token yields 401 with a WWW-Authenticate
// challenge; clients treat it as "please log in again".
func Authenticated(verifier TokenVerifier, s *store.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			const prefix = "Bearer "

			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, prefix) {
				c.Response().Header().Set("WWW-Authenticate", "Bearer")
				return binderr.Unauthorized("Not authenticated")
			}

			username, err := verifier.Verify(strings.TrimPrefix(auth, prefix))
			if err != nil {
				c.Response().Header().Set("WWW-Authenticate", "Bearer")
				return binderr.Unauthorized("Could not validate credentials")
			}

			user, err := s.UserByName(username)
			if err != nil {
				// the account vanished after the token was issued
				c.Response().Header().Set("WWW-Authenticate", "Bearer")
				return binderr.Unauthorized("Could not validate credentials")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// AdminOnly requires the authenticated account to carry the admin flag.
// It should be stacked after Authenticated.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			return binderr.Forbidden("Administrator privilege is required")
		}
		return next(c)
	}
}

// CurrentUser reads the account loaded by Authenticated.
func CurrentUser(c echo.Context) (store.User, bool) {
	user, ok := c.Get(userContextKey).(store.User)
	return user, ok
}

// SetCurrentUser injects an account into the context, bypassing
// Authenticated. For tests.
func SetCurrentUser(c echo.Context, user store.User) {
	c.Set(userContextKey, user)
}
