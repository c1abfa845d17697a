package helper

import (
	"errors"
	"net/http"
)

// Error codes returned in the response envelope.
const (
	ErrInvalidRequest   = "ERR_INVALID_REQUEST"
	ErrInvalidOperation = "ERR_INVALID_OPERATION"
	ErrNotFoundCode     = "ERR_NOT_FOUND"
	ErrUnauthorizedCode = "ERR_UNAUTHORIZED"
)

// Sentinel errors for the service layer. Services wrap these with %w and
// handlers map them back to HTTP statuses with StatusFromError.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

func StatusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, ErrInvalidRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, ErrNotFoundCode
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, ErrUnauthorizedCode
	default:
		return http.StatusInternalServerError, ErrInvalidOperation
	}
}
