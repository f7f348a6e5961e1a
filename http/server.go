package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"

	"github.com/ptam11/warbler/auth"
	"github.com/ptam11/warbler/crud"
	"github.com/ptam11/warbler/domain"
)

const (
	// sessionName is the name of the session cookie.
	sessionName = "warbler"
	// sessionUserKey is the one recognized session key. It holds the
	// authenticated user's ID and its presence is the sole auth signal.
	sessionUserKey = "curr_user"
)

// Server provides most of the http functionality of this app, namely routing,
// request handling, and middleware. It also performs authentication and
// authorization before handing things over to one of the crud services.
type Server struct {
	router   *mux.Router
	sessions sessions.Store
	us       domain.UserService
	ms       domain.MessageService
	fs       domain.FollowService
	ls       domain.LikeService
}

// NewServer returns a new instance of the server, registers all necessary
// routes and gives their handlers access to the app services passed in.
func NewServer(isProd bool, sessionKey string, services *crud.Services) *Server {
	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   isProd,
	}

	s := &Server{
		router:   mux.NewRouter(),
		sessions: store,
		us:       services.User,
		ms:       services.Message,
		fs:       services.Follow,
		ls:       services.Like,
	}

	// Register routes of the auth system.
	s.registerAuthRoutes(s.router)

	// Register routes of the crud system.
	s.registerMessageRoutes(s.router)
	s.registerUserRoutes(s.router)
	s.registerFollowRoutes(s.router)
	s.registerLikeRoutes(s.router)

	// Set up middleware that needs to run on every request.
	s.router.Use(logRequest, s.loadUser)
	return s
}

// ServeHTTP makes the server usable as a http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run starts to listen and serve on the specified port.
func (s *Server) Run(port int) {
	logrus.WithField("port", port).Info("server listening")
	logrus.Fatal(http.ListenAndServe(":"+strconv.Itoa(port), s.router))
}

// The loadUser middleware resolves the session cookie into a user once per
// request and stores it in the request context. Handlers never touch the
// session directly, they only ask the context for the acting user.
func (s *Server) loadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := s.sessions.Get(r, sessionName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		id, ok := session.Values[sessionUserKey].(int)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		user, err := s.us.ByID(id)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		r = r.WithContext(auth.SetUser(r.Context(), user))
		next.ServeHTTP(w, r)
	})
}

// requireAuth guards a handler against anonymous access. Unauthenticated
// requests get a redirect, never an error page.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if auth.GetUser(r.Context()) == nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next(w, r)
	}
}

// signIn stores the user's ID in the session cookie.
func (s *Server) signIn(w http.ResponseWriter, r *http.Request, user *domain.User) error {
	session, _ := s.sessions.Get(r, sessionName)
	session.Values[sessionUserKey] = user.ID
	return session.Save(r, w)
}

// signOut removes the user's ID from the session cookie.
func (s *Server) signOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.sessions.Get(r, sessionName)
	delete(session.Values, sessionUserKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// statusWriter captures the status code written to a response.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// The logRequest middleware logs method, path, status and latency of every request.
func logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		logrus.WithFields(logrus.Fields{
			"method":  r.Method,
			"path":    r.URL.Path,
			"status":  sw.status,
			"latency": time.Since(start).String(),
		}).Info("request")
	})
}
