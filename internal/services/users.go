package services

import (
	"context"

	"github.com/francescofano/langgraph-telegram-bot/internal/model"
	"github.com/francescofano/langgraph-telegram-bot/internal/store"
)

// UserService lists the users present in the memory store.
type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService { return &UserService{store: s} }

// ListUsers returns one summary per distinct user id, ascending. An empty
// store is a valid outcome and yields an empty slice.
func (s *UserService) ListUsers(ctx context.Context) ([]model.UserSummary, error) {
	ids, err := s.store.ListUserIDs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.UserSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.UserSummary{UserID: id})
	}
	return out, nil
}
