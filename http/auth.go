package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ptam11/warbler/auth"
	"github.com/ptam11/warbler/domain"
	"github.com/ptam11/warbler/errs"
	"github.com/ptam11/warbler/forms"
)

func (s *Server) registerAuthRoutes(r *mux.Router) {
	r.HandleFunc("/signup", s.handleSignup).Methods("POST")
	r.HandleFunc("/login", s.handleLogin).Methods("POST")
	r.HandleFunc("/logout", s.requireAuth(s.handleLogout)).Methods("POST")
	r.HandleFunc("/", s.handleHome).Methods("GET")
}

// handleSignup handles the route "POST /signup".
// It creates a new user from the submitted form data, signs them in and
// redirects to the home page. Rejected input redirects back to the signup page.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/signup", http.StatusFound)
		return
	}
	form := forms.ParseSignupForm(r.PostForm)
	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		http.Redirect(w, r, "/signup", http.StatusFound)
		return
	}

	user := domain.User{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
		ImageURL: form.ImageURL,
	}
	if err := s.us.Create(r.Context(), &user); err != nil {
		// Duplicate username / email or another constraint violation.
		// The row was not created, send the user back to the form.
		errs.LogError(r, err)
		http.Redirect(w, r, "/signup", http.StatusFound)
		return
	}

	if err := s.signIn(w, r, &user); err != nil {
		errs.LogError(r, err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// handleLogin handles the route "POST /login".
// On valid credentials it stores the user's ID in the session and redirects
// home. On invalid credentials it redirects back to the login page without
// revealing whether the username or the password was wrong.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	form := forms.ParseLoginForm(r.PostForm)
	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	user, err := s.us.Authenticate(form.Username, form.Password)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := s.signIn(w, r, user); err != nil {
		errs.LogError(r, err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// handleLogout handles the route "POST /logout".
// It clears the session and redirects to the login page.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.signOut(w, r); err != nil {
		errs.LogError(r, err)
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

// handleHome handles the route "GET /".
// Authenticated users get their home feed, anonymous visitors a welcome page.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user := auth.GetUser(r.Context())
	if user == nil {
		json.NewEncoder(w).Encode(map[string]string{"message": "What's happening?"})
		return
	}

	feed, err := s.ms.FeedByUserID(user.ID)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}
	if err := json.NewEncoder(w).Encode(feed); err != nil {
		errs.LogError(r, err)
	}
}
