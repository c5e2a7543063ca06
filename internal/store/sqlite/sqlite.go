package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/francescofano/langgraph-telegram-bot/internal/model"
	"github.com/francescofano/langgraph-telegram-bot/internal/store"
)

// NewWithDB constructs a read-only SQLite store backed directly by
// database/sql. table names the table to read from; empty means "store".
// Callers must pass a validated identifier, the name is interpolated into
// query text.
func NewWithDB(db *sql.DB, table string) store.Store {
	if table == "" {
		table = "store"
	}
	return &sqliteStore{db: db, table: table}
}

type sqliteStore struct {
	db    *sql.DB
	table string
}

func (s *sqliteStore) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
        SELECT DISTINCT prefix FROM %s ORDER BY prefix ASC
    `, s.table))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *sqliteStore) ListByUser(ctx context.Context, userID string) ([]*model.MemoryRecord, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
        SELECT key, value, created_at, updated_at
        FROM %s WHERE prefix=? ORDER BY updated_at DESC
    `, s.table), userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	out := []*model.MemoryRecord{}
	for rows.Next() {
		var key, raw string
		var created, updated time.Time
		if err := rows.Scan(&key, &raw, &created, &updated); err != nil {
			return nil, err
		}
		var value map[string]interface{}
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("%w: store row (%s,%s): %v", model.ErrMalformedRecord, userID, key, err)
		}
		out = append(out, &model.MemoryRecord{
			UserID:    userID,
			Key:       key,
			Value:     value,
			CreatedAt: created,
			UpdatedAt: updated,
		})
	}
	return out, rows.Err()
}

func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqliteStore) Close() error { return s.db.Close() }
