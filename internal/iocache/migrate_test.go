package iocache

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempograph/tempograph/schema"
)

func TestMigrateCacheUpAndDown(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	// Up to latest creates the cache table.
	require.NoError(t, MigrateCache(schema.SQLiteBackend, dbPath, -1))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int
	row := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'aggregate_cache'")
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 1, count)

	// Re-running at the latest version is a no-op, not an error.
	require.NoError(t, MigrateCache(schema.SQLiteBackend, dbPath, -1))

	// Down to zero drops it again.
	require.NoError(t, MigrateCache(schema.SQLiteBackend, dbPath, 0))
	row = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'aggregate_cache'")
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 0, count)
}

func TestMigrateCacheNoneBackend(t *testing.T) {
	assert.Error(t, MigrateCache(schema.NoneBackend, "", -1))
}

func TestClearCacheSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore("aggregate_cache", schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	require.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))
	// Clearing an already-missing file stays quiet.
	assert.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))

	assert.Error(t, ClearCache(schema.SQLiteBackend, "", ""))
	assert.NoError(t, ClearCache(schema.NoneBackend, "", ""))
}
