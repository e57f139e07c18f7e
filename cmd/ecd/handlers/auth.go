package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	apierr "github.com/echo-commerce/echo-commerce/api/types/errors"
	apiusers "github.com/echo-commerce/echo-commerce/api/types/users"
	"github.com/echo-commerce/echo-commerce/cmd/ecd/binding"
	"github.com/echo-commerce/echo-commerce/cmd/ecd/store"
	binderr "github.com/echo-commerce/echo-commerce/pkg/api-types-binding/errors"
)

const (
	usernameMinLength = 3
	usernameMaxLength = 20
	passwordMinLength = 6
)

// TokenIssuer mints a bearer token for a username.
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// PasswordHasher hashes passwords at registration and verifies them at
// login.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashed string, password string) error
}

func validateCredential(cred apiusers.Credential) []apierr.FieldError {
	fields := []apierr.FieldError{}
	if l := utf8.RuneCountInString(cred.Username); l < usernameMinLength {
		fields = append(fields, apierr.FieldError{
			Loc: []string{"body", "username"},
			Msg: fmt.Sprintf("String should have at least %d characters", usernameMinLength),
		})
	} else if usernameMaxLength < l {
		fields = append(fields, apierr.FieldError{
			Loc: []string{"body", "username"},
			Msg: fmt.Sprintf("String should have at most %d characters", usernameMaxLength),
		})
	}
	if utf8.RuneCountInString(cred.Password) < passwordMinLength {
		fields = append(fields, apierr.FieldError{
			Loc: []string{"body", "password"},
			Msg: fmt.Sprintf("String should have at least %d characters", passwordMinLength),
		})
	}
	return fields
}

// RegisterHandler creates an account and logs it in.
func RegisterHandler(s *store.Store, issuer TokenIssuer, hasher PasswordHasher) echo.HandlerFunc {
	return func(c echo.Context) error {
		cred := new(apiusers.Credential)
		if err := json.NewDecoder(c.Request().Body).Decode(cred); err != nil {
			return binderr.BadRequest("can not understand the requested json")
		}

		if fields := validateCredential(*cred); 0 < len(fields) {
			return binderr.Validation(fields...)
		}

		hashed, err := hasher.Hash(cred.Password)
		if err != nil {
			return binderr.InternalServerError(err)
		}

		user, err := s.NewUser(cred.Username, hashed)
		if errors.Is(err, store.ErrUserConflict) {
			return binderr.BadRequest("Username already registered")
		}
		if err != nil {
			return binderr.InternalServerError(err)
		}

		return respondWithToken(c, issuer, user)
	}
}

// LoginHandler exchanges credentials for a token+user pair.
func LoginHandler(s *store.Store, issuer TokenIssuer, hasher PasswordHasher) echo.HandlerFunc {
	return func(c echo.Context) error {
		cred := new(apiusers.Credential)
		if err := json.NewDecoder(c.Request().Body).Decode(cred); err != nil {
			return binderr.BadRequest("can not understand the requested json")
		}

		reject := func() error {
			c.Response().Header().Set("WWW-Authenticate", "Bearer")
			return binderr.Unauthorized("Incorrect username or password")
		}

		user, err := s.UserByName(cred.Username)
		if err != nil {
			return reject()
		}
		if err := hasher.Compare(user.HashedPassword, cred.Password); err != nil {
			return reject()
		}

		return respondWithToken(c, issuer, user)
	}
}

func respondWithToken(c echo.Context, issuer TokenIssuer, user store.User) error {
	tok, err := issuer.Issue(user.Username)
	if err != nil {
		return binderr.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, apiusers.AuthResponse{
		AccessToken: tok,
		TokenType:   "bearer",
		User:        binding.ComposeUser(user),
	})
}

// MeHandler renders the authenticated account.
func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return binderr.Unauthorized("Not authenticated")
		}
		return c.JSON(http.StatusOK, binding.ComposeUser(user))
	}
}
