package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/francescofano/langgraph-telegram-bot/internal/api/respond"
	"github.com/francescofano/langgraph-telegram-bot/internal/services"
)

type UserHandler struct {
	svc *services.UserService
	log zerolog.Logger
}

func NewUserHandler(svc *services.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// ListUsers handles GET /api/users. It returns every distinct user id present
// in the store, ascending; an empty store yields an empty array, not an error.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		// details stay server-side; the client sees a generic message
		h.log.Error().Stack().Err(err).Msg("list users failed")
		respond.WriteInternalError(w, "internal server error")
		return
	}
	respond.WriteJSON(w, http.StatusOK, users)
}
