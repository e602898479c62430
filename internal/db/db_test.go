package db_test

import (
	"path/filepath"
	"testing"

	"github.com/lockbox/gatebot/internal/db"
)

// TestOpen_WALMode verifies that the DSN parameters in db.go enable WAL
// journal mode. WAL is the key SQLite setting for concurrent reads +
// single-writer throughput.
func TestOpen_WALMode(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "wal_test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	var mode string
	conn.Raw("PRAGMA journal_mode").Scan(&mode)
	if mode != "wal" {
		t.Errorf("expected journal_mode=wal, got %q", mode)
	}
}

// TestOpen_MigratesTables verifies that Open creates the three tables the
// bot relies on.
func TestOpen_MigratesTables(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "migrate_test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	for _, table := range []string{"users", "login_events", "settings"} {
		if !conn.Migrator().HasTable(table) {
			t.Errorf("table %q missing after Open", table)
		}
	}
}
