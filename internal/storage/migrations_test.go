package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/config"
)

func TestOpenAndMigrate_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.DatabaseConfig{
		Driver: "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "concierge.db")},
	}

	db, err := OpenAndMigrate(ctx, cfg)
	require.NoError(t, err)
	defer db.Close()

	status, err := NewMigrationManager(db).Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.UpToDate())
	assert.Equal(t, []string{"0001_catalog.sql", "0002_bookings.sql"}, status.Applied)

	for _, table := range []string{"packages", "faqs", "bookings"} {
		var n int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n), table)
		assert.Zero(t, n, table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	cfg := config.DatabaseConfig{
		Driver: "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "concierge.db")},
	}

	db, err := OpenAndMigrate(ctx, cfg)
	require.NoError(t, err)
	defer db.Close()

	status, err := NewMigrationManager(db).Migrate(ctx)
	require.NoError(t, err)
	assert.Len(t, status.Applied, 2)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&n))
	assert.Equal(t, 2, n)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "mysql"})
	assert.Error(t, err)
}
