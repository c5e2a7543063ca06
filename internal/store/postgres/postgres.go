package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/francescofano/langgraph-telegram-bot/internal/model"
	"github.com/francescofano/langgraph-telegram-bot/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a read-only Postgres store backed directly by
// database/sql. table names the bot-owned table to read from; empty means
// "store". Callers must pass a validated identifier, the name is
// interpolated into query text.
func NewWithDB(db *sql.DB, table string) store.Store {
	if table == "" {
		table = "store"
	}
	return &pgStore{db: db, table: table}
}

type pgStore struct {
	db    *sql.DB
	table string
}

func (s *pgStore) ListUserIDs(ctx context.Context) ([]string, error) {
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

func (s *pgStore) ListByUser(ctx context.Context, userID string) ([]*model.MemoryRecord, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
        SELECT key, value, created_at, updated_at
        FROM %s WHERE prefix=$1 ORDER BY updated_at DESC
    `, s.table), userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	out := []*model.MemoryRecord{}
	for rows.Next() {
		var key string
		var raw []byte
		var created, updated time.Time
		if err := rows.Scan(&key, &raw, &created, &updated); err != nil {
			return nil, err
		}
		rec, err := decodeRecord(userID, key, raw, created, updated)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *pgStore) Close() error { return s.db.Close() }

// decodeRecord enforces the typed boundary: the jsonb payload must be a JSON
// object, anything else is reported as a malformed record rather than being
// coerced to empty.
func decodeRecord(userID, key string, raw []byte, created, updated time.Time) (*model.MemoryRecord, error) {
	var value map[string]interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("%w: store row (%s,%s): %v", model.ErrMalformedRecord, userID, key, err)
	}
	return &model.MemoryRecord{
		UserID:    userID,
		Key:       key,
		Value:     value,
		CreatedAt: created,
		UpdatedAt: updated,
	}, nil
}
