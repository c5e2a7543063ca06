package services

import (
	"context"
	"fmt"
	"time"

	"github.com/francescofano/langgraph-telegram-bot/internal/model"
	"github.com/francescofano/langgraph-telegram-bot/internal/store"
)

const (
	// placeholderContent is shown when a payload carries no content field.
	placeholderContent = "No content"
	// placeholderKey should never appear given the table's primary key.
	placeholderKey = "unknown"
)

// MemoryService shapes stored records into the flat views the dashboard renders.
type MemoryService struct {
	store store.Store
}

func NewMemoryService(s store.Store) *MemoryService { return &MemoryService{store: s} }

// ListMemories returns the views for every record owned by userID, newest
// updated_at first. A user with no records yields an empty slice; there is no
// separate notion of "user does not exist".
func (s *MemoryService) ListMemories(ctx context.Context, userID string) ([]model.MemoryView, error) {
	recs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.MemoryView, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toView(rec))
	}
	return out, nil
}

func toView(rec *model.MemoryRecord) model.MemoryView {
	v := model.MemoryView{
		Key:       rec.Key,
		Content:   placeholderContent,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if v.Key == "" {
		v.Key = placeholderKey
	}
	if c, ok := rec.Value["content"]; ok && c != nil {
		if s, ok := c.(string); ok {
			v.Content = s
		} else {
			v.Content = fmt.Sprint(c)
		}
	}
	// Timestamps are server-maintained and non-nullable in the bot's schema;
	// the fallback guards against a driver quirk, not a real data state.
	now := time.Now().UTC()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	if v.UpdatedAt.IsZero() {
		v.UpdatedAt = now
	}
	return v
}
