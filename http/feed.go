package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"snapFeed/auth"
	"snapFeed/domain"
	"snapFeed/errs"
)

// registerFeedRoutes is a helper for registering all feed routes.
func (s *Server) registerFeedRoutes(r *mux.Router) {
	// Get the authed user's feed.
	r.HandleFunc("/feed", s.requireAuth(s.handleFeed)).Methods("GET")
}

// handleFeed handles the route "GET /feed".
// It returns every post by the authed user and the users they follow,
// newest first, fully hydrated.
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUser(r.Context())

	posts, err := s.fd.Build(user.ID)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	response := make([]domain.PublicPost, 0, len(posts))
	for i := range posts {
		response = append(response, posts[i].Public())
	}
	if err := json.NewEncoder(w).Encode(&response); err != nil {
		errs.LogError(r, err)
	}
}
