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

// registerPostRoutes is a helper for registering all post routes.
func (s *Server) registerPostRoutes(r *mux.Router) {
	// Create a new post.
	r.HandleFunc("/posts", s.requireAuth(s.handleCreatePost)).Methods("POST")

	// Toggle the authed user's like on a post.
	r.HandleFunc("/posts/{id:[0-9]+}/like", s.requireAuth(s.handleToggleLike)).Methods("POST")

	// Comment on a post, optionally replying to another comment.
	r.HandleFunc("/posts/{id:[0-9]+}/comments", s.requireAuth(s.handleCreateComment)).Methods("POST")
}

// createPostRequest is the json shape of a post creation request body.
type createPostRequest struct {
	Description string `json:"description"`
	MediaURL    string `json:"media_url"`
}

// handleCreatePost handles the route "POST /posts".
// It creates a new post owned by the authed user and returns it hydrated
// with its author.
func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid json body."))
		return
	}

	user := auth.GetUser(r.Context())
	post := domain.Post{
		UserID:      user.ID,
		Description: req.Description,
		MediaURL:    req.MediaURL,
	}
	if err := s.ps.Create(&post); err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(post.Public()); err != nil {
		errs.LogError(r, err)
	}
}

// likeResponse is the json shape of a like toggle response.
type likeResponse struct {
	Liked bool `json:"liked"`
}

// handleToggleLike handles the route "POST /posts/:id/like".
// It flips the like state of the authed user on the post and reports the
// resulting state.
func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	user := auth.GetUser(r.Context())
	liked, err := s.ls.Toggle(user.ID, postID)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	if err := json.NewEncoder(w).Encode(&likeResponse{Liked: liked}); err != nil {
		errs.LogError(r, err)
	}
}

// createCommentRequest is the json shape of a comment creation request body.
type createCommentRequest struct {
	Text     string `json:"text"`
	ParentID *int   `json:"parent_comment_id"`
}

// handleCreateComment handles the route "POST /posts/:id/comments".
// It creates a new comment by the authed user on the post, optionally as a
// reply to another comment on the same post.
func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid json body."))
		return
	}

	user := auth.GetUser(r.Context())
	comment := domain.Comment{
		UserID:   user.ID,
		PostID:   postID,
		Text:     req.Text,
		ParentID: req.ParentID,
	}
	if err := s.cs.Create(&comment); err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(comment.Public()); err != nil {
		errs.LogError(r, err)
	}
}
