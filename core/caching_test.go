package core

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/internal/iocache"
	"github.com/tempograph/tempograph/schema"
)

func cacheTestConfig() *contract.Config {
	return &contract.Config{
		VaultPath:   "/vault",
		PropertyID:  "words",
		Granularity: schema.Daily,
	}
}

func TestCachedAggregateWithoutManager(t *testing.T) {
	computed := false
	result, err := cachedAggregate(cacheTestConfig(), nil, schema.PieChart, "stamp", func() (string, error) {
		computed = true
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.True(t, computed)
	assert.Equal(t, "fresh", result)
}

func TestCachedAggregateWithoutStore(t *testing.T) {
	mgr := &iocache.MockCacheManager{}
	mgr.On("GetAggregateStore").Return(nil)

	result, err := cachedAggregate(cacheTestConfig(), mgr, schema.PieChart, "stamp", func() (string, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", result)
}

func TestCachedAggregateMissComputesAndStores(t *testing.T) {
	store := &iocache.MockCacheStore{}
	store.On("Get", mock.AnythingOfType("string")).Return([]byte(nil), 0, int64(0), errors.New("not found"))
	store.On("Set", mock.AnythingOfType("string"), mock.Anything, currentCacheVersion, mock.AnythingOfType("int64")).Return(nil)

	mgr := &iocache.MockCacheManager{}
	mgr.On("GetAggregateStore").Return(store)

	result, err := cachedAggregate(cacheTestConfig(), mgr, schema.PieChart, "stamp", func() (string, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", result)
	store.AssertExpectations(t)
}

func TestCachedAggregateHit(t *testing.T) {
	cached, err := json.Marshal("cached")
	require.NoError(t, err)

	store := &iocache.MockCacheStore{}
	store.On("Get", mock.AnythingOfType("string")).Return(cached, currentCacheVersion, time.Now().Unix(), nil)

	mgr := &iocache.MockCacheManager{}
	mgr.On("GetAggregateStore").Return(store)

	result, err := cachedAggregate(cacheTestConfig(), mgr, schema.PieChart, "stamp", func() (string, error) {
		t.Fatal("compute must not run on a cache hit")
		return "", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "cached", result)
}

func TestCachedAggregateStaleEntryRecomputes(t *testing.T) {
	cached, err := json.Marshal("cached")
	require.NoError(t, err)
	staleTS := time.Now().Add(-cacheMaxAge - time.Hour).Unix()

	store := &iocache.MockCacheStore{}
	store.On("Get", mock.AnythingOfType("string")).Return(cached, currentCacheVersion, staleTS, nil)
	store.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	mgr := &iocache.MockCacheManager{}
	mgr.On("GetAggregateStore").Return(store)

	result, err := cachedAggregate(cacheTestConfig(), mgr, schema.PieChart, "stamp", func() (string, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", result)
}

func TestCachedAggregateVersionMismatchRecomputes(t *testing.T) {
	cached, err := json.Marshal("cached")
	require.NoError(t, err)

	store := &iocache.MockCacheStore{}
	store.On("Get", mock.AnythingOfType("string")).Return(cached, currentCacheVersion+1, time.Now().Unix(), nil)
	store.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	mgr := &iocache.MockCacheManager{}
	mgr.On("GetAggregateStore").Return(store)

	result, err := cachedAggregate(cacheTestConfig(), mgr, schema.PieChart, "stamp", func() (string, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", result)
}

func TestGenerateCacheKeyDiscriminates(t *testing.T) {
	cfg := cacheTestConfig()
	base := generateCacheKey(cfg, schema.PieChart, "stamp")

	// Same inputs, same key.
	assert.Equal(t, base, generateCacheKey(cfg, schema.PieChart, "stamp"))

	// Shape, stamp and options all discriminate.
	assert.NotEqual(t, base, generateCacheKey(cfg, schema.HeatmapChart, "stamp"))
	assert.NotEqual(t, base, generateCacheKey(cfg, schema.PieChart, "other"))

	altered := *cfg
	altered.Granularity = schema.Weekly
	assert.NotEqual(t, base, generateCacheKey(&altered, schema.PieChart, "stamp"))

	altered = *cfg
	altered.CaseSensitivePie = true
	assert.NotEqual(t, base, generateCacheKey(&altered, schema.PieChart, "stamp"))
}
