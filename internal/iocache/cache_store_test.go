package iocache

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/schema"
)

// newSQLiteStore opens a store backed by a throwaway database file.
func newSQLiteStore(t *testing.T) (contract.CacheStore, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	s, err := NewCacheStore("aggregate_cache", schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, dbPath
}

func TestSQLiteStoreRoundtrip(t *testing.T) {
	store, _ := newSQLiteStore(t)

	now := time.Now().Unix()
	require.NoError(t, store.Set("key1", []byte(`{"total":4}`), 1, now))

	value, version, ts, err := store.Get("key1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"total":4}`), value)
	assert.Equal(t, 1, version)
	assert.Equal(t, now, ts)

	// Overwrites replace in place.
	require.NoError(t, store.Set("key1", []byte(`{"total":9}`), 2, now+1))
	value, version, _, err = store.Get("key1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"total":9}`), value)
	assert.Equal(t, 2, version)
}

func TestSQLiteStoreMissingKey(t *testing.T) {
	store, _ := newSQLiteStore(t)

	_, _, _, err := store.Get("absent")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSQLiteStoreStatus(t *testing.T) {
	store, _ := newSQLiteStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(0), status.TotalEntries)

	first := time.Now().Add(-time.Hour).Unix()
	last := time.Now().Unix()
	require.NoError(t, store.Set("a", []byte("1"), 1, first))
	require.NoError(t, store.Set("b", []byte("2"), 1, last))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(2), status.TotalEntries)
	assert.Equal(t, time.Unix(first, 0), status.OldestEntryTime)
	assert.Equal(t, time.Unix(last, 0), status.LastEntryTime)
	assert.Greater(t, status.TableSizeBytes, int64(0))
}

func TestNoneBackendStore(t *testing.T) {
	store, err := NewCacheStore("aggregate_cache", schema.NoneBackend, "")
	require.NoError(t, err)

	// Writes are discarded, reads always miss.
	assert.NoError(t, store.Set("key", []byte("data"), 1, time.Now().Unix()))
	_, _, _, err = store.Get("key")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.NoError(t, store.Close())
}

func TestNewCacheStoreRejections(t *testing.T) {
	_, err := NewCacheStore("bad;table", schema.SQLiteBackend, filepath.Join(t.TempDir(), "x.db"))
	assert.Error(t, err)

	_, err = NewCacheStore("aggregate_cache", schema.CacheBackend("oracle"), "")
	assert.Error(t, err)
}
