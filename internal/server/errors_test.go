package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/career-board/internal/app"
	"github.com/jonathan/career-board/internal/skillgap"
	"github.com/jonathan/career-board/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "field errors", err: validation.FieldErrors{"email": "bad"}, want: http.StatusBadRequest},
		{name: "bad request", err: &ErrBadRequest{Message: "invalid id: x"}, want: http.StatusBadRequest},
		{name: "not found", err: &ErrNotFound{Resource: "job posting", ID: 9}, want: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", &ErrNotFound{Resource: "job posting", ID: 9}), want: http.StatusNotFound},
		{name: "no session", err: &ErrNoSession{}, want: http.StatusUnauthorized},
		{name: "superseded", err: &ErrSuperseded{Operation: "skill gap analysis"}, want: http.StatusConflict},
		{name: "analyzer unavailable", err: app.ErrAnalyzerUnavailable, want: http.StatusServiceUnavailable},
		{name: "analysis failed", err: &skillgap.AnalysisError{Stage: skillgap.StageRequest, Message: "x"}, want: http.StatusBadGateway},
		{name: "unexpected", err: errors.New("disk full"), want: http.StatusInternalServerError},
		{name: "cancelled", err: context.Canceled, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "validation failed", publicMessage(validation.FieldErrors{"email": "bad"}))
	assert.Equal(t, "job posting not found: 9", publicMessage(&ErrNotFound{Resource: "job posting", ID: 9}))
	assert.Equal(t, "Analysis failed. Please try again.",
		publicMessage(&skillgap.AnalysisError{Stage: skillgap.StageSchema, Message: "missing learningResources"}))
	assert.Equal(t, "internal server error", publicMessage(errors.New("open /secret/path: permission denied")))
}

func TestSupersededOr(t *testing.T) {
	boom := errors.New("boom")

	assert.NoError(t, supersededOr(true, "op", nil))
	assert.Equal(t, boom, supersededOr(true, "op", boom))

	var superseded *ErrSuperseded
	assert.ErrorAs(t, supersededOr(false, "op", boom), &superseded)
	assert.ErrorAs(t, supersededOr(false, "op", nil), &superseded, "a discarded success is superseded too")
}

func TestErrBadRequest_Unwrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &ErrBadRequest{Message: "invalid request body", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "invalid request body: unexpected EOF", err.Error())
}
