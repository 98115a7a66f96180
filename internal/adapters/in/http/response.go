// Package http exposes the application over a REST API using Echo.
// Handlers translate HTTP requests into commands and queries, and domain
// errors into stable status codes, so clients can distinguish bad input,
// missing resources, authorization failures, and lost claim races.
package http

import (
	"errors"
	"net/http"

	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func ok(ctx echo.Context, status int, message string, data any) error {
	return ctx.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func fail(ctx echo.Context, err error) error {
	return ctx.JSON(statusFromError(err), Envelope{
		Success: false,
		Message: err.Error(),
	})
}

// statusFromError maps domain error families to HTTP status codes.
// Conflict (409) covers both wrong-state transitions and lost claim races:
// in either case the resource exists but rejects the operation right now.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
