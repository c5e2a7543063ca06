package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/francescofano/langgraph-telegram-bot/internal/model"
	"github.com/francescofano/langgraph-telegram-bot/internal/store"
)

// Seeder inserts rows on behalf of the read-only store under test. The
// dashboard never writes, so drivers provide a test-only insert path.
type Seeder interface {
	Insert(t *testing.T, rec model.MemoryRecord)
	InsertRaw(t *testing.T, prefix, key, valueJSON string, created, updated time.Time)
}

// Run exercises a compliance suite against a store.Store implementation.
// makeStore must return a clean, isolated store for each call.
func Run(t *testing.T, makeStore func(t *testing.T) (store.Store, Seeder)) {
	t.Helper()
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("EmptyStore", func(t *testing.T) {
		s, _ := makeStore(t)
		ids, err := s.ListUserIDs(ctx)
		if err != nil {
			t.Fatalf("ListUserIDs: %v", err)
		}
		if len(ids) != 0 {
			t.Fatalf("expected no user ids, got %v", ids)
		}
		recs, err := s.ListByUser(ctx, "nobody")
		if err != nil {
			t.Fatalf("ListByUser: %v", err)
		}
		if len(recs) != 0 {
			t.Fatalf("expected no records, got %d", len(recs))
		}
	})

	t.Run("DistinctUserIDsAscending", func(t *testing.T) {
		s, seed := makeStore(t)
		// insertion order deliberately scrambled
		seed.Insert(t, model.MemoryRecord{UserID: "g2", Key: "k3", Value: map[string]interface{}{"content": "c3"}, CreatedAt: base, UpdatedAt: base})
		seed.Insert(t, model.MemoryRecord{UserID: "g1", Key: "k2", Value: map[string]interface{}{"content": "c2"}, CreatedAt: base, UpdatedAt: base.Add(time.Minute)})
		seed.Insert(t, model.MemoryRecord{UserID: "g1", Key: "k1", Value: map[string]interface{}{"content": "c1"}, CreatedAt: base, UpdatedAt: base.Add(2 * time.Minute)})

		ids, err := s.ListUserIDs(ctx)
		if err != nil {
			t.Fatalf("ListUserIDs: %v", err)
		}
		if len(ids) != 2 || ids[0] != "g1" || ids[1] != "g2" {
			t.Fatalf("expected [g1 g2], got %v", ids)
		}
	})

	t.Run("ListByUserNewestFirst", func(t *testing.T) {
		s, seed := makeStore(t)
		seed.Insert(t, model.MemoryRecord{UserID: "u1", Key: "old", Value: map[string]interface{}{"content": "first"}, CreatedAt: base, UpdatedAt: base})
		seed.Insert(t, model.MemoryRecord{UserID: "u1", Key: "mid", Value: map[string]interface{}{"content": "second"}, CreatedAt: base, UpdatedAt: base.Add(time.Hour)})
		seed.Insert(t, model.MemoryRecord{UserID: "u1", Key: "new", Value: map[string]interface{}{"content": "third"}, CreatedAt: base, UpdatedAt: base.Add(2 * time.Hour)})
		seed.Insert(t, model.MemoryRecord{UserID: "u2", Key: "other", Value: map[string]interface{}{"content": "not mine"}, CreatedAt: base, UpdatedAt: base})

		recs, err := s.ListByUser(ctx, "u1")
		if err != nil {
			t.Fatalf("ListByUser: %v", err)
		}
		if len(recs) != 3 {
			t.Fatalf("expected 3 records, got %d", len(recs))
		}
		for i, want := range []string{"new", "mid", "old"} {
			if recs[i].Key != want {
				t.Fatalf("position %d: expected key %s, got %s", i, want, recs[i].Key)
			}
		}
		if !recs[0].UpdatedAt.After(recs[1].UpdatedAt) || !recs[1].UpdatedAt.After(recs[2].UpdatedAt) {
			t.Fatalf("records not ordered by updated_at descending")
		}
		if got, _ := recs[0].Value["content"].(string); got != "third" {
			t.Fatalf("payload roundtrip failed: %v", recs[0].Value)
		}
	})

	t.Run("TimestampsRoundtrip", func(t *testing.T) {
		s, seed := makeStore(t)
		created := base
		updated := base.Add(30 * time.Minute)
		seed.Insert(t, model.MemoryRecord{UserID: "u1", Key: "m1", Value: map[string]interface{}{"content": "hello"}, CreatedAt: created, UpdatedAt: updated})

		recs, err := s.ListByUser(ctx, "u1")
		if err != nil || len(recs) != 1 {
			t.Fatalf("ListByUser: n=%d err=%v", len(recs), err)
		}
		if !recs[0].CreatedAt.Equal(created) || !recs[0].UpdatedAt.Equal(updated) {
			t.Fatalf("timestamps changed: created=%v updated=%v", recs[0].CreatedAt, recs[0].UpdatedAt)
		}
	})

	t.Run("MalformedPayloadIsError", func(t *testing.T) {
		s, seed := makeStore(t)
		seed.InsertRaw(t, "u1", "bad", `[1,2,3]`, base, base)

		_, err := s.ListByUser(ctx, "u1")
		if !errors.Is(err, model.ErrMalformedRecord) {
			t.Fatalf("expected ErrMalformedRecord, got %v", err)
		}
	})

	t.Run("HealthPing", func(t *testing.T) {
		s, _ := makeStore(t)
		if err := s.HealthPing(ctx); err != nil {
			t.Fatalf("HealthPing: %v", err)
		}
	})
}
