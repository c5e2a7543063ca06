package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/francescofano/langgraph-telegram-bot/internal/model"
	"github.com/francescofano/langgraph-telegram-bot/internal/store"
	"github.com/francescofano/langgraph-telegram-bot/internal/store/storetest"
)

type seeder struct{ db *sql.DB }

func (s *seeder) Insert(t *testing.T, rec model.MemoryRecord) {
	t.Helper()
	b, err := json.Marshal(rec.Value)
	if err != nil {
		t.Fatalf("marshal value: %v", err)
	}
	s.InsertRaw(t, rec.UserID, rec.Key, string(b), rec.CreatedAt, rec.UpdatedAt)
}

func (s *seeder) InsertRaw(t *testing.T, prefix, key, valueJSON string, created, updated time.Time) {
	t.Helper()
	_, err := s.db.Exec(`INSERT INTO store (prefix, key, value, created_at, updated_at) VALUES ($1,$2,$3,$4,$5)`,
		prefix, key, valueJSON, created, updated)
	if err != nil {
		t.Fatalf("seed row: %v", err)
	}
}

// startPostgres launches a disposable Postgres container mirroring the bot's
// database and applies the store schema.
func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "dashboard",
			"POSTGRES_PASSWORD": "dashboard",
			"POSTGRES_DB":       "memory",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker unavailable, skipping postgres integration test: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://dashboard:dashboard@%s:%s/memory?sslmode=disable", host, port.Port())
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("postgres open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	for _, stmt := range store.DDLStatements() {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("apply ddl: %v", err)
		}
	}
	return db
}

func TestPostgresStore_Compliance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	db := startPostgres(t)

	makeStore := func(t *testing.T) (store.Store, storetest.Seeder) {
		t.Helper()
		if _, err := db.Exec(`TRUNCATE store`); err != nil {
			t.Fatalf("truncate store: %v", err)
		}
		return NewWithDB(db, ""), &seeder{db: db}
	}
	storetest.Run(t, makeStore)
}

// TestPostgresStore_CustomTable verifies that reads target the configured
// table name rather than the default.
func TestPostgresStore_CustomTable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	db := startPostgres(t)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS bot_store (LIKE store INCLUDING ALL)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	now := time.Now().UTC()
	if _, err := db.Exec(`INSERT INTO bot_store (prefix, key, value, created_at, updated_at) VALUES ($1,$2,$3,$4,$5)`,
		"g1", "note", `{"content":"hello"}`, now, now); err != nil {
		t.Fatalf("seed row: %v", err)
	}

	st := NewWithDB(db, "bot_store")
	ids, err := st.ListUserIDs(context.Background())
	if err != nil {
		t.Fatalf("ListUserIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != "g1" {
		t.Fatalf("expected [g1], got %v", ids)
	}
	recs, err := st.ListByUser(context.Background(), "g1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(recs) != 1 || recs[0].Key != "note" {
		t.Fatalf("expected one record with key note, got %v", recs)
	}
}
