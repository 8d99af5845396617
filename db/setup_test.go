package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellnest-dev/wellnest/db"
)

func TestConnectAndMigrateSQLite(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "wellnest_test.db"))

	require.NoError(t, db.ConnectDatabase())
	require.NoError(t, db.MigrateDatabase())

	migrator := db.DB.Migrator()

	for _, table := range []string{"users", "daily_health_records", "journal_entries", "appointments", "meals"} {
		assert.True(t, migrator.HasTable(table), "expected table %s", table)
	}
}

func TestMigrateDatabaseIsIdempotent(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "wellnest_test.db"))

	require.NoError(t, db.ConnectDatabase())
	require.NoError(t, db.MigrateDatabase())
	require.NoError(t, db.MigrateDatabase())
}
