package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ptam11/warbler/auth"
	"github.com/ptam11/warbler/domain"
	"github.com/ptam11/warbler/errs"
)

// registerLikeRoutes is a helper for registering all Like routes.
func (s *Server) registerLikeRoutes(r *mux.Router) {
	// Toggle the acting user's like on a message.
	r.HandleFunc("/users/add_like/{id:[0-9]+}", s.requireAuth(s.handleToggleLike)).Methods("POST")
}

// handleToggleLike handles the route "POST /users/add_like/{id}".
// Liking an unliked message creates the edge, liking it again removes it.
func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUser(r.Context())

	messageId, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	like := domain.Like{
		UserID:    user.ID,
		MessageID: messageId,
	}
	if s.ls.Likes(user.ID, messageId) {
		err = s.ls.Delete(&like)
	} else {
		err = s.ls.Create(&like)
	}
	if err != nil {
		errs.LogError(r, err)
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
