package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"snapFeed/auth"
	"snapFeed/domain"
	"snapFeed/errs"
)

// registerAuthRoutes is a helper for registering all routes of the auth system.
func (s *Server) registerAuthRoutes(r *mux.Router) {
	// Liveness check.
	r.HandleFunc("/", s.handleIndex).Methods("GET")

	// Create a new user account.
	r.HandleFunc("/register", s.handleRegister).Methods("POST")

	// Exchange credentials for a bearer token.
	r.HandleFunc("/login", s.handleLogin).Methods("POST")
}

// handleIndex handles the route "GET /". It returns a liveness payload.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	response := make(map[string]string)
	response["status"] = "ok"
	if err := json.NewEncoder(w).Encode(&response); err != nil {
		errs.LogError(r, err)
	}
}

// registerRequest is the json shape of a registration request body.
type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Location string `json:"location"`
}

// handleRegister handles the route "POST /register".
// It creates a new user account and returns its public record.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid json body."))
		return
	}

	user := domain.User{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Location: req.Location,
	}
	if err := s.us.Register(&user); err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(user.Public()); err != nil {
		errs.LogError(r, err)
	}
}

// loginRequest is the json shape of a login request body.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenResponse is the json shape of a successful login response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// handleLogin handles the route "POST /login".
// It verifies the submitted credentials and returns a signed bearer token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid json body."))
		return
	}

	user, err := s.us.Authenticate(req.Email, req.Password)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	response := tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}
	if err := json.NewEncoder(w).Encode(&response); err != nil {
		errs.LogError(r, err)
	}
}

// handleMe handles the route "GET /users/me".
// It returns the public record of the authed user.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUser(r.Context())
	if err := json.NewEncoder(w).Encode(user.Public()); err != nil {
		errs.LogError(r, err)
	}
}
