package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"snapFeed/auth"
	"snapFeed/domain"
	"snapFeed/errs"
)

// registerUserRoutes is a helper for registering all user routes.
func (s *Server) registerUserRoutes(r *mux.Router) {
	// Get the authed user's own public record.
	r.HandleFunc("/users/me", s.requireAuth(s.handleMe)).Methods("GET")

	// Search users by username substring.
	r.HandleFunc("/users/search", s.handleSearchUsers).Methods("GET")

	// Follow another user.
	r.HandleFunc("/users/{id:[0-9]+}/follow", s.requireAuth(s.handleCreateFollow)).Methods("POST")
}

// handleSearchUsers handles the route "GET /users/search?query=".
// It returns the public records of all users whose username contains the
// query substring, case-insensitively.
func (s *Server) handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	users, err := s.us.SearchByUsername(query)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	response := make([]domain.PublicUser, 0, len(users))
	for i := range users {
		response = append(response, users[i].Public())
	}
	if err := json.NewEncoder(w).Encode(&response); err != nil {
		errs.LogError(r, err)
	}
}

// handleCreateFollow handles the route "POST /users/:id/follow".
// It reads the followed user's ID from the url and creates a new directed
// follow edge from the authed user.
func (s *Server) handleCreateFollow(w http.ResponseWriter, r *http.Request) {
	followedID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	follower := auth.GetUser(r.Context())
	follow := domain.Follow{
		FollowerID: follower.ID,
		FollowedID: followedID,
	}
	if err := s.fs.Create(&follow); err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(follow.Public()); err != nil {
		errs.LogError(r, err)
	}
}
