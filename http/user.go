package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ptam11/warbler/auth"
	"github.com/ptam11/warbler/domain"
	"github.com/ptam11/warbler/errs"
	"github.com/ptam11/warbler/forms"
)

func (s *Server) registerUserRoutes(r *mux.Router) {
	// Get the profile data of a specific user.
	r.HandleFunc("/users/{id:[0-9]+}", s.requireAuth(s.handleGetProfile)).Methods("GET")

	// Get the users a specific user is following.
	r.HandleFunc("/users/{id:[0-9]+}/following", s.requireAuth(s.handleGetFollowing)).Methods("GET")

	// Get the followers of a specific user.
	r.HandleFunc("/users/{id:[0-9]+}/followers", s.requireAuth(s.handleGetFollowers)).Methods("GET")

	// Get the messages a specific user has liked.
	r.HandleFunc("/users/{id:[0-9]+}/likes", s.requireAuth(s.handleGetLikes)).Methods("GET")

	// Update the acting user's profile.
	r.HandleFunc("/users/profile", s.requireAuth(s.handleUpdateProfile)).Methods("POST")

	// Search for users.
	r.HandleFunc("/users", s.requireAuth(s.handleSearchUsers)).Methods("GET")
}

// profileResponse is the json body of a profile page.
type profileResponse struct {
	User           *domain.User     `json:"user"`
	Messages       []domain.Message `json:"messages"`
	MessageCount   int              `json:"message_count"`
	FollowingCount int              `json:"following_count"`
	FollowerCount  int              `json:"follower_count"`
	IsFollowing    bool             `json:"is_following"`
}

// handleGetProfile handles the route "GET /users/{id}".
// It displays the requested user's basic data, messages and counts.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userId, err := strconv.Atoi(mux.Vars(r)["id"])
	if userId <= 0 || err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	user, err := s.us.ByID(userId)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	messages, err := s.ms.ByUserID(userId)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}
	messageCount, err := s.ms.CountByUserID(userId)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}
	followingCount, err := s.fs.CountFollowing(userId)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}
	followerCount, err := s.fs.CountFollowers(userId)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	authedUser := auth.GetUser(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(&profileResponse{
		User:           user,
		Messages:       messages,
		MessageCount:   messageCount,
		FollowingCount: followingCount,
		FollowerCount:  followerCount,
		IsFollowing:    s.fs.IsFollowedBy(userId, authedUser.ID),
	})
	if err != nil {
		errs.LogError(r, err)
	}
}

// handleGetFollowing handles the route "GET /users/{id}/following".
// It renders the list of users the requested user follows.
func (s *Server) handleGetFollowing(w http.ResponseWriter, r *http.Request) {
	userId, err := strconv.Atoi(mux.Vars(r)["id"])
	if userId <= 0 || err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	following, err := s.fs.FollowingByUserID(userId)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(following); err != nil {
		errs.LogError(r, err)
	}
}

// handleGetFollowers handles the route "GET /users/{id}/followers".
// It renders the list of users following the requested user.
func (s *Server) handleGetFollowers(w http.ResponseWriter, r *http.Request) {
	userId, err := strconv.Atoi(mux.Vars(r)["id"])
	if userId <= 0 || err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	followers, err := s.fs.FollowersByUserID(userId)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(followers); err != nil {
		errs.LogError(r, err)
	}
}

// handleGetLikes handles the route "GET /users/{id}/likes".
// It renders the messages the requested user has liked.
func (s *Server) handleGetLikes(w http.ResponseWriter, r *http.Request) {
	userId, err := strconv.Atoi(mux.Vars(r)["id"])
	if userId <= 0 || err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	liked, err := s.ms.LikedByUserID(userId)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(liked); err != nil {
		errs.LogError(r, err)
	}
}

// handleUpdateProfile handles the route "POST /users/profile".
// The acting user's current password must be resubmitted to authorize the
// edit. Rejected input or a wrong password redirects home without changes.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUser(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	form := forms.ParseProfileForm(r.PostForm)
	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	// Reauthorize the edit with the submitted password.
	if _, err := s.us.Authenticate(user.Username, form.Password); err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	user.Username = form.Username
	user.Email = form.Email
	user.Bio = form.Bio
	if form.ImageURL != "" {
		user.ImageURL = form.ImageURL
	}
	if form.HeaderImageURL != "" {
		user.HeaderImageURL = form.HeaderImageURL
	}
	if err := s.us.Update(r.Context(), user); err != nil {
		errs.LogError(r, err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/users/%d", user.ID), http.StatusFound)
}

// handleSearchUsers handles the route "GET /users?q={term}".
// It runs a username search and renders the resulting users.
func (s *Server) handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	users, err := s.us.Search(term)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(users); err != nil {
		errs.LogError(r, err)
	}
}
