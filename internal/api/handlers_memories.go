package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/francescofano/langgraph-telegram-bot/internal/api/respond"
	"github.com/francescofano/langgraph-telegram-bot/internal/model"
	"github.com/francescofano/langgraph-telegram-bot/internal/services"
)

type MemoryHandler struct {
	svc *services.MemoryService
	log zerolog.Logger
}

func NewMemoryHandler(svc *services.MemoryService, log zerolog.Logger) *MemoryHandler {
	return &MemoryHandler{svc: svc, log: log}
}

// ListMemories handles GET /api/memories/{userId} and the legacy query form
// GET /api/memories?user_id=<id>. Input is validated before any store access.
func (h *MemoryHandler) ListMemories(w http.ResponseWriter, r *http.Request) {
	userID, err := memoriesUserID(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	views, err := h.svc.ListMemories(r.Context(), userID)
	if err != nil {
		h.log.Error().Stack().Err(err).Str("user_id", userID).Msg("list memories failed")
		respond.WriteInternalError(w, "internal server error")
		return
	}
	respond.WriteJSON(w, http.StatusOK, views)
}

// memoriesUserID extracts the user id, requiring a single scalar value.
func memoriesUserID(r *http.Request) (string, error) {
	if id := mux.Vars(r)["userId"]; id != "" {
		return id, nil
	}
	vals := r.URL.Query()["user_id"]
	switch len(vals) {
	case 0:
		return "", fmt.Errorf("%w: user_id is required", model.ErrInvalidInput)
	case 1:
		if vals[0] == "" {
			return "", fmt.Errorf("%w: user_id is required", model.ErrInvalidInput)
		}
		return vals[0], nil
	default:
		return "", fmt.Errorf("%w: user_id must be a single value", model.ErrInvalidInput)
	}
}
