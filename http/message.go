package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ptam11/warbler/auth"
	"github.com/ptam11/warbler/domain"
	"github.com/ptam11/warbler/errs"
	"github.com/ptam11/warbler/forms"
)

// registerMessageRoutes is a helper for registering all Message routes.
func (s *Server) registerMessageRoutes(r *mux.Router) {
	// Post a new message.
	r.HandleFunc("/messages/new", s.requireAuth(s.handleCreateMessage)).Methods("POST")

	// Delete an existing message.
	r.HandleFunc("/messages/{id:[0-9]+}/delete", s.requireAuth(s.handleDeleteMessage)).Methods("POST")
}

// handleCreateMessage handles the route "POST /messages/new".
// It creates a message owned by the acting user and redirects to their
// profile. Rejected input redirects home without persisting anything.
func (s *Server) handleCreateMessage(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUser(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	form := forms.ParseMessageForm(r.PostForm)
	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	message := domain.Message{
		UserID: user.ID,
		Text:   form.Text,
	}
	if err := s.ms.Create(&message); err != nil {
		errs.LogError(r, err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/users/%d", user.ID), http.StatusFound)
}

// handleDeleteMessage handles the route "POST /messages/{id}/delete".
// Deleting is idempotent from the caller's perspective: an absent message
// still redirects. Only the owner's delete actually removes the record.
func (s *Server) handleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUser(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	message, err := s.ms.ByID(id)
	if err != nil {
		// Already gone, or never existed. Redirect either way.
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if message.UserID != user.ID {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := s.ms.Delete(message); err != nil {
		errs.LogError(r, err)
	}
	http.Redirect(w, r, fmt.Sprintf("/users/%d", user.ID), http.StatusFound)
}
