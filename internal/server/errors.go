// Package server provides the HTTP REST API for the career board.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/career-board/internal/app"
	"github.com/jonathan/career-board/internal/skillgap"
	"github.com/jonathan/career-board/internal/validation"
)

// ErrNotFound indicates a missing interview experience or job posting
type ErrNotFound struct {
	Resource string
	ID       int
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %d", e.Resource, e.ID)
}

// ErrBadRequest indicates a request that could not be read
type ErrBadRequest struct {
	Message string
	Cause   error
}

func (e *ErrBadRequest) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ErrBadRequest) Unwrap() error {
	return e.Cause
}

// ErrNoSession indicates an operation that needs a signed-in user
type ErrNoSession struct{}

func (e *ErrNoSession) Error() string {
	return "not signed in"
}

// ErrSuperseded indicates a request cancelled by a newer one of the same kind
type ErrSuperseded struct {
	Operation string
}

func (e *ErrSuperseded) Error() string {
	return fmt.Sprintf("%s superseded by a newer request", e.Operation)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound   *ErrNotFound
		badRequest *ErrBadRequest
		noSession  *ErrNoSession
		superseded *ErrSuperseded
		fields     validation.FieldErrors
	)
	switch {
	case errors.As(err, &fields), errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &noSession):
		return http.StatusUnauthorized
	case errors.As(err, &superseded):
		return http.StatusConflict
	case errors.Is(err, app.ErrAnalyzerUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, skillgap.ErrAnalysisFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage returns the text safe to show a client for err.
func publicMessage(err error) string {
	var fields validation.FieldErrors
	switch HTTPStatus(err) {
	case http.StatusBadRequest:
		if errors.As(err, &fields) {
			return "validation failed"
		}
		return err.Error()
	case http.StatusNotFound, http.StatusUnauthorized, http.StatusConflict, http.StatusServiceUnavailable:
		return err.Error()
	case http.StatusBadGateway:
		return skillgap.UserMessage
	default:
		return "internal server error"
	}
}

// supersededOr maps a discarded tracker result to ErrSuperseded, whether
// the discarded call failed or succeeded.
func supersededOr(applied bool, operation string, err error) error {
	if !applied {
		return &ErrSuperseded{Operation: operation}
	}
	return err
}
