package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/umar-hyatt/gardenkeeper/internal/common"
	"github.com/umar-hyatt/gardenkeeper/internal/server/users"
)

// authResponse is the body of successful register and login calls.
type authResponse struct {
	User  *users.User `json:"user"`
	Token string      `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {

	s.logger.Info(r.Context(), "Registration request")

	in, err := decodeInput[*users.Input](r)
	if err != nil {
		writeError(r.Context(), w, s.logger, err)
		return
	}

	user, token, err := s.users.Register(r.Context(), in)
	if err != nil {
		writeError(r.Context(), w, s.logger, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", user.UserName)
	writeJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(r.Context(), w, s.logger, fmt.Errorf("%w: malformed request body", common.ErrorValidation))
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(r.Context(), w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {

	user, err := s.users.GetProfile(r.Context(), mustUserID(r))
	if err != nil {
		// a valid token for a since-deleted account no longer maps to anyone
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		writeError(r.Context(), w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {

	in, err := decodeInput[*users.Input](r)
	if err != nil {
		writeError(r.Context(), w, s.logger, err)
		return
	}

	user, err := s.users.UpdateProfile(r.Context(), mustUserID(r), in)
	if err != nil {
		writeError(r.Context(), w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
