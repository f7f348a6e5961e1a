package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ptam11/warbler/auth"
	"github.com/ptam11/warbler/domain"
	"github.com/ptam11/warbler/errs"
)

func (s *Server) registerFollowRoutes(r *mux.Router) {
	r.HandleFunc("/users/follow/{id:[0-9]+}", s.requireAuth(s.handleCreateFollow)).Methods("POST")
	r.HandleFunc("/users/stop-following/{id:[0-9]+}", s.requireAuth(s.handleDeleteFollow)).Methods("POST")
}

// handleCreateFollow handles the route "POST /users/follow/{id}".
// The acting user starts following the user identified by the route param.
func (s *Server) handleCreateFollow(w http.ResponseWriter, r *http.Request) {
	follower := auth.GetUser(r.Context())

	followedId, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	follow := domain.Follow{
		FollowerID: follower.ID,
		FollowedID: followedId,
	}
	if err := s.fs.Create(&follow); err != nil {
		errs.LogError(r, err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/users/%d/following", follower.ID), http.StatusFound)
}

// handleDeleteFollow handles the route "POST /users/stop-following/{id}".
// The acting user stops following the user identified by the route param.
func (s *Server) handleDeleteFollow(w http.ResponseWriter, r *http.Request) {
	follower := auth.GetUser(r.Context())

	followedId, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	follow := domain.Follow{
		FollowerID: follower.ID,
		FollowedID: followedId,
	}
	if err := s.fs.Delete(&follow); err != nil {
		errs.LogError(r, err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/users/%d/following", follower.ID), http.StatusFound)
}
