package server

import (
	"net/http"

	"github.com/jonathan/career-board/internal/server/middleware"
	"github.com/jonathan/career-board/internal/types"
	"github.com/jonathan/career-board/internal/validation"
)

// handleSignup starts a session with the requested role.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var form validation.SignupForm
	if err := decodeJSON(w, r, &form); err != nil {
		s.writeError(w, r, err)
		return
	}
	form, err := validation.Check(validation.AuthSchema, form)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.services.Auth.Signup(r.Context(), form.Email, form.Password, types.Role(form.Role))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.sessionResponse(w, r, http.StatusCreated, user)
}

// handleLogin starts a student session. Credentials are not verified.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var form validation.LoginForm
	if err := decodeJSON(w, r, &form); err != nil {
		s.writeError(w, r, err)
		return
	}
	form, err := validation.Check(validation.AuthSchema, form)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.services.Auth.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.sessionResponse(w, r, http.StatusOK, user)
}

func (s *Server) sessionResponse(w http.ResponseWriter, r *http.Request, status int, user types.User) {
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, status, types.SessionResponse{User: user, Token: token})
}

// handleLogout ends the session. Outstanding tokens stop working.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Auth.Logout(); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSetRole switches the role of the active session.
func (s *Server) handleSetRole(w http.ResponseWriter, r *http.Request) {
	var form validation.RoleForm
	if err := decodeJSON(w, r, &form); err != nil {
		s.writeError(w, r, err)
		return
	}
	form, err := validation.Check(validation.AuthSchema, form)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	user, ok, err := s.services.Auth.SetRole(types.Role(form.Role))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !ok {
		s.writeError(w, r, &ErrNoSession{})
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}

// handleSession returns the signed-in user.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUser(r)
	if err != nil {
		s.writeError(w, r, &ErrNoSession{})
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}
