package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/echo-commerce/echo-commerce/api/types/errors"
)

// NewErrorMessage wraps an ErrorMessage into echo's error pipeline, so
// that the response body is always {"detail": ...}.
func NewErrorMessage(code int, detail apierr.Detail) *echo.HTTPError {
	msg := apierr.ErrorMessage{Detail: detail}
	return echo.NewHTTPError(code, msg).SetInternal(msg)
}

func BadRequest(message string) *echo.HTTPError {
	return NewErrorMessage(http.StatusBadRequest, apierr.Detail{Message: message})
}

func Unauthorized(message string) *echo.HTTPError {
	return NewErrorMessage(http.StatusUnauthorized, apierr.Detail{Message: message})
}

func Forbidden(message string) *echo.HTTPError {
	return NewErrorMessage(http.StatusForbidden, apierr.Detail{Message: message})
}

func NotFound(message string) *echo.HTTPError {
	return NewErrorMessage(http.StatusNotFound, apierr.Detail{Message: message})
}

// Validation reports per-field request validation failures, as a list
// in the detail.
func Validation(fields ...apierr.FieldError) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusUnprocessableEntity,
		apierr.Detail{Fields: fields},
	)
}

func InternalServerError(err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusInternalServerError,
		apierr.Detail{Message: "unexpected error"},
	).SetInternal(err)
}
