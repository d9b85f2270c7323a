package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"snapFeed/auth"
	"snapFeed/domain"
	"snapFeed/errs"
)

// registerImageRoutes is a helper for registering all image routes.
func (s *Server) registerImageRoutes(r *mux.Router) {
	// Upload an image for the authed user.
	r.HandleFunc("/upload/image", s.requireAuth(s.handleUploadImage)).Methods("POST")
}

// uploadResponse is the json shape of a successful upload response.
type uploadResponse struct {
	URL string `json:"url"`
}

// handleUploadImage handles the route "POST /upload/image".
// It reads an uploaded image from the multipart body, stores it on disk
// under the authed user's directory and returns the public path. The client
// references that path as a post's media_url.
func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	// Parse the data to be uploaded.
	err := r.ParseMultipartForm(domain.MaxUploadSize)
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid multipart body."))
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) != 1 {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Exactly one image file is required."))
		return
	}

	// Open the image.
	file, err := files[0].Open()
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}
	defer file.Close()

	// Parse it into an Image object.
	user := auth.GetUser(r.Context())
	img := &domain.Image{
		OwnerType: domain.OwnerTypeUser,
		OwnerID:   user.ID,
		File:      file,
		Filename:  files[0].Filename,
	}

	// Save the image to disk (includes validation / normalization).
	if err := s.is.Create(img); err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(&uploadResponse{URL: img.URL}); err != nil {
		errs.LogError(r, err)
	}
}
