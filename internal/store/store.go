package store

import (
	"context"

	"github.com/francescofano/langgraph-telegram-bot/internal/model"
)

// Store exposes the read-only persistence operations the dashboard needs.
// The underlying table is owned and written exclusively by the bot process;
// implementations live under internal/store/<driver>/ (postgres, sqlite).
type Store interface {
	// ListUserIDs returns the distinct user ids (prefixes) present in the
	// store, ascending. An empty store yields an empty slice, not an error.
	ListUserIDs(ctx context.Context) ([]string, error)

	// ListByUser returns every record belonging to userID ordered by
	// updated_at descending. A user with no records yields an empty slice.
	ListByUser(ctx context.Context, userID string) ([]*model.MemoryRecord, error)

	// HealthPing verifies connectivity to the underlying database.
	HealthPing(ctx context.Context) error

	// Close releases the underlying connection pool.
	Close() error
}
