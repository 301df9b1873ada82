package server

import (
	"net/http"

	"github.com/jonathan/career-board/internal/validation"
)

// handleListJobs lists job postings, filtered by ?q=.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.services.Jobs.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	job, ok, err := s.services.Jobs.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !ok {
		s.writeError(w, r, &ErrNotFound{Resource: "job posting", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleCreateJob publishes a posting. Admin only.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var form validation.JobPostingForm
	if err := decodeJSON(w, r, &form); err != nil {
		s.writeError(w, r, err)
		return
	}
	form, err := validation.Check(validation.JobPostingSchema, form)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.services.Jobs.Create(r.Context(), form.ToNewJobPosting())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleApply submits an application. A missing job answers 404 with the
// unsuccessful ApplyResult as the body.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var form validation.JobApplicationForm
	if err := decodeJSON(w, r, &form); err != nil {
		s.writeError(w, r, err)
		return
	}
	form, err = validation.Check(validation.JobApplicationSchema, form)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.services.Jobs.Apply(r.Context(), id, form.ToJobApplication())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusNotFound
	}
	s.jsonResponse(w, status, result)
}
