package server

import (
	"net/http"

	"github.com/jonathan/career-board/internal/validation"
)

// handleListInterviews lists interview experiences, filtered by ?q=.
func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	experiences, err := s.services.Interviews.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, experiences)
}

func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	experience, ok, err := s.services.Interviews.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !ok {
		s.writeError(w, r, &ErrNotFound{Resource: "interview experience", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, experience)
}

// handleCreateInterview validates the share form, formats the write-up into
// one narrative and stores it.
func (s *Server) handleCreateInterview(w http.ResponseWriter, r *http.Request) {
	var form validation.InterviewExperienceForm
	if err := decodeJSON(w, r, &form); err != nil {
		s.writeError(w, r, err)
		return
	}
	form, err := validation.Check(validation.InterviewExperienceSchema, form)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.services.Interviews.Create(r.Context(), form.ToNewInterviewExperience())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}
