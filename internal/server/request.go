package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jonathan/career-board/internal/validation"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &ErrBadRequest{Message: "invalid request body", Cause: err}
	}
	return nil
}

// pathID parses the {id} path value. Any integer is accepted; ids that match
// no record are reported as not found by the store.
func pathID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ErrBadRequest{Message: "invalid id: " + raw}
	}
	return id, nil
}

// writeError maps err to a status and a client-safe body. Server-side
// failures are logged with their cause.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[server] %s %s failed: %v", r.Method, r.URL.Path, err)
	}

	var fields validation.FieldErrors
	if errors.As(err, &fields) {
		s.jsonResponse(w, status, map[string]any{
			"error":  publicMessage(err),
			"fields": fields,
		})
		return
	}
	s.errorResponse(w, status, publicMessage(err))
}
