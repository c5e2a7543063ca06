package factory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/francescofano/langgraph-telegram-bot/internal/config"
	"github.com/francescofano/langgraph-telegram-bot/internal/store"
	"github.com/francescofano/langgraph-telegram-bot/internal/store/postgres"
	"github.com/francescofano/langgraph-telegram-bot/internal/store/sqlite"
)

// NewStore builds the store adapter selected by configuration.
func NewStore(cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	switch cfg.DBDriver {
	case "postgres":
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		log.Info().Str("table", cfg.StoreTable).Msg("connected to postgres store")
		return postgres.NewWithDB(db, cfg.StoreTable), nil
	case "sqlite":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// local dev only; the production table belongs to the bot
		if err := sqlite.EnsureSchema(db, cfg.StoreTable); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ensure sqlite schema: %w", err)
		}
		log.Info().Str("path", cfg.SQLitePath).Str("table", cfg.StoreTable).Msg("opened sqlite store")
		return sqlite.NewWithDB(db, cfg.StoreTable), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}
