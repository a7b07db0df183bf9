package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// badRequestErrors lists the domain sentinels that signal a malformed or
// unprocessable request rather than an infrastructure failure.
var badRequestErrors = []error{
	services.ErrCartIsEmpty,
	commands.ErrQuantityIsInvalid,
	commands.ErrTitleIsRequired,
	commands.ErrTitleIsTaken,
	commands.ErrInventoryIsInvalid,
	commands.ErrUsernameIsRequired,
	commands.ErrPasswordIsTooShort,
	commands.ErrUsernameIsTaken,
	commands.ErrRoleIsNotAssignable,
	queries.ErrUsernameIsEmpty,
	queries.ErrGroupRoleIsInvalid,
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	}

	for _, sentinel := range badRequestErrors {
		if errors.Is(err, sentinel) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}

// problem translates a use case error into the uniform error body. Internal
// failures are masked so that storage details never leak to callers.
func problem(ctx echo.Context, err error) error {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = "internal server error"
	}
	return ctx.JSON(status, Error{Code: status, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func forbidden(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusForbidden, Error{Code: http.StatusForbidden, Message: message})
}
