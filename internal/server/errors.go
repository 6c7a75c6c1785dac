package server

import (
	"fmt"
	"net/http"
)

// ErrInvalidCredentials indicates a failed token request.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid client ID or secret"
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a requested record does not exist.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUnavailable indicates an optional capability is not configured, such as
// the record store or the LLM client.
type ErrUnavailable struct {
	Feature string
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("%s is not configured", e.Feature)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
