package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"snapFeed/auth"
	"snapFeed/crud"
	"snapFeed/domain"
	"snapFeed/errs"
	"snapFeed/logger"
	"snapFeed/storage"
)

// Server provides most of the http functionality of this app, namely routing,
// request handling, and middleware. It also performs authentication and
// authorization before handing things over to one of the crud services.
type Server struct {
	router *mux.Router
	us     domain.UserService
	ps     domain.PostService
	cs     domain.CommentService
	ls     domain.LikeService
	fs     domain.FollowService
	fd     domain.FeedService
	is     domain.ImageService
	tokens *auth.TokenManager
}

// NewServer returns a new instance of the server, registers all necessary
// routes and gives their handlers access to the app services passed in.
func NewServer(
	us *crud.UserService,
	ps *crud.PostService,
	cs *crud.CommentService,
	ls *crud.LikeService,
	fs *crud.FollowService,
	fd *crud.FeedService,
	is *storage.ImageService,
	tokens *auth.TokenManager,
) *Server {

	// Construct a new Server with a gorilla router and the services passed in.
	s := &Server{
		router: mux.NewRouter(),
		us:     us,
		ps:     ps,
		cs:     cs,
		ls:     ls,
		fs:     fs,
		fd:     fd,
		is:     is,
		tokens: tokens,
	}

	// Register routes of the auth system.
	s.registerAuthRoutes(s.router)

	// Register routes of the crud system.
	s.registerUserRoutes(s.router)
	s.registerPostRoutes(s.router)
	s.registerFeedRoutes(s.router)
	s.registerImageRoutes(s.router)

	// Serve stored images back under the public static namespace.
	s.router.PathPrefix("/" + domain.ImagesBaseDir + "/").Handler(
		http.StripPrefix("/"+domain.ImagesBaseDir+"/",
			http.FileServer(http.Dir(domain.ImagesBaseDir))))

	// Set up middleware that needs to run on every request.
	s.router.Use(logRequest, setContentTypeJSON, s.checkUser)
	return s
}

// ServeHTTP dispatches to the router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// The setContentTypeJSON middleware sets the content type to "application/json".
// Static image responses are left alone so the file server can set the type
// from the file extension.
func setContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/"+domain.ImagesBaseDir+"/") {
			w.Header().Set("Content-Type", "application/json")
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status a handler writes so it can be logged.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// The logRequest middleware logs every request with its resulting status.
func logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r)
		logger.Log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": sr.status,
		}).Info("request")
	})
}

// The checkUser middleware resolves a bearer token if one is present and
// puts the matching user into the request context. Requests without a
// resolvable token pass through anonymously; requireAuth decides whether
// that is acceptable for a given route.
func (s *Server) checkUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			next.ServeHTTP(w, r)
			return
		}
		userID, err := s.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		user, err := s.us.ByID(userID)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		r = r.WithContext(auth.SetUser(r.Context(), user))
		next.ServeHTTP(w, r)
	})
}

// requireAuth wraps handlers of identity-gated routes. Whatever made the
// token unresolvable, the caller gets the same generic message.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if auth.GetUser(r.Context()) == nil {
			errs.ReturnError(w, r, errs.Errorf(errs.EUNAUTHORIZED, "Could not validate credentials."))
			return
		}
		next.ServeHTTP(w, r)
	}
}

// Run starts to listen and serve on the specified port.
func (s *Server) Run(port int) error {
	logger.Log.WithFields(logrus.Fields{"port": port}).Info("server listening")
	return http.ListenAndServe(":"+strconv.Itoa(port), s.router)
}
