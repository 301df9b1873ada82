package server

import (
	"context"
	"net/http"

	"github.com/jonathan/career-board/internal/submission"
	"github.com/jonathan/career-board/internal/types"
	"github.com/jonathan/career-board/internal/validation"
)

// skillGapStatus mirrors the analyzer's request state.
type skillGapStatus struct {
	State  submission.State      `json:"state"`
	Result *types.SkillGapResult `json:"result,omitempty"`
	Error  string                `json:"error,omitempty"`
}

// handleSkillGap analyzes a resume against a target role.
func (s *Server) handleSkillGap(w http.ResponseWriter, r *http.Request) {
	var form validation.SkillGapForm
	if err := decodeJSON(w, r, &form); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.analyzeSkillGap(w, r, form)
}

// handleJobSkillGap analyzes a resume against the position of a job posting.
func (s *Server) handleJobSkillGap(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var body struct {
		Resume string `json:"resume"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
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

	s.analyzeSkillGap(w, r, validation.SkillGapForm{Resume: body.Resume, JobRole: job.Position})
}

func (s *Server) analyzeSkillGap(w http.ResponseWriter, r *http.Request, form validation.SkillGapForm) {
	form, err := validation.Check(validation.SkillGapSchema, form)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	analyzer, err := s.services.SkillGap()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, applied, err := s.skillGap.Run(r.Context(), func(ctx context.Context) (*types.SkillGapResult, error) {
		return analyzer.Analyze(ctx, form.Resume, form.JobRole)
	})
	if err = supersededOr(applied, "skill gap analysis", err); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleSkillGapStatus reports the latest analysis request.
func (s *Server) handleSkillGapStatus(w http.ResponseWriter, _ *http.Request) {
	snap := s.skillGap.Snapshot()
	status := skillGapStatus{State: snap.State, Result: snap.Value}
	if snap.Err != nil {
		status.Error = publicMessage(snap.Err)
	}
	s.jsonResponse(w, http.StatusOK, status)
}
