package client

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func tables(t *testing.T, db *sql.DB) map[string]bool {
	t.Helper()
	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = 'table'`)
	require.NoError(t, err)
	defer rows.Close()

	got := map[string]bool{}
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		got[name] = true
	}
	require.NoError(t, rows.Err())
	return got
}

func TestInitDatabase_AppliesSchema(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "storefront.db"))
	require.NoError(t, err)
	defer db.Close()

	got := tables(t, db)
	for _, name := range []string{"goose_db_version", "metadata"} {
		require.True(t, got[name], "table %s missing after migrations", name)
	}
}

func TestInitDatabase_ReopenKeepsData(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "storefront.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO metadata (key, value) VALUES ('token', 'abc')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, dsn)
	require.NoError(t, err, "migrations must be idempotent")
	defer db.Close()

	var v string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = 'token'`).Scan(&v))
	require.Equal(t, "abc", v)
}

func TestInitDatabase_FailsForMissingDirectory(t *testing.T) {
	t.Parallel()

	dsn := filepath.Join(t.TempDir(), "no", "such", "dir", "storefront.db")
	db, err := InitDatabase(context.Background(), dsn)
	require.Error(t, err)
	require.Nil(t, db)
}
