package config

import (
	"testing"
)

func TestConfigLoad_Defaults(t *testing.T) {
	t.Setenv("MEMORY_DASHBOARD_POSTGRES_DSN", "postgres://localhost:5432/memory")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 8080 {
		t.Fatalf("unexpected default http port: %d", cfg.HTTPPort)
	}
	if cfg.DBDriver != "postgres" {
		t.Fatalf("unexpected default driver: %s", cfg.DBDriver)
	}
	if cfg.HealthIntervalSeconds != 30 || cfg.HealthProbeTimeoutSeconds != 2 {
		t.Fatalf("unexpected health defaults: %+v", cfg)
	}
	if cfg.StoreTable != "store" {
		t.Fatalf("unexpected default store table: %s", cfg.StoreTable)
	}
}

func TestConfigLoad_StoreTableOverride(t *testing.T) {
	t.Setenv("MEMORY_DASHBOARD_POSTGRES_DSN", "postgres://localhost:5432/memory")
	t.Setenv("MEMORY_DASHBOARD_STORE_TABLE", "bot_store")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.StoreTable != "bot_store" {
		t.Fatalf("store table env override failed, got %s", cfg.StoreTable)
	}
}

func TestConfigLoad_StoreTableRejectsInvalidName(t *testing.T) {
	t.Setenv("MEMORY_DASHBOARD_POSTGRES_DSN", "postgres://localhost:5432/memory")
	t.Setenv("MEMORY_DASHBOARD_STORE_TABLE", "store; DROP TABLE store")

	if _, err := New(); err == nil {
		t.Fatalf("expected error for invalid table name")
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	t.Setenv("MEMORY_DASHBOARD_POSTGRES_DSN", "postgres://localhost:5432/memory")
	t.Setenv("MEMORY_DASHBOARD_HTTP_PORT", "9191")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 9191 {
		t.Fatalf("http port env override failed, got %d", cfg.HTTPPort)
	}
	if cfg.GetHTTPAddr() != ":9191" {
		t.Fatalf("unexpected http addr: %s", cfg.GetHTTPAddr())
	}
}

func TestConfigLoad_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("MEMORY_DASHBOARD_POSTGRES_DSN", "")

	if _, err := New(); err == nil {
		t.Fatalf("expected error when postgres DSN missing")
	}
}

func TestConfigLoad_SQLiteDriver(t *testing.T) {
	t.Setenv("MEMORY_DASHBOARD_DB_DRIVER", "sqlite")
	t.Setenv("MEMORY_DASHBOARD_SQLITE_PATH", "/tmp/memory.db")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "sqlite" || cfg.SQLitePath != "/tmp/memory.db" {
		t.Fatalf("unexpected sqlite config: %+v", cfg)
	}
}

func TestConfigLoad_UnsupportedDriver(t *testing.T) {
	t.Setenv("MEMORY_DASHBOARD_DB_DRIVER", "mysql")

	if _, err := New(); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}
