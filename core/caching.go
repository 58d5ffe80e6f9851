package core

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/schema"
)

// currentCacheVersion defines the version of the durable cache schema.
const currentCacheVersion = 1

// cacheMaxAge is how long a stored aggregate stays usable.
const cacheMaxAge = 7 * 24 * time.Hour

// cachedAggregate wraps an aggregate computation with the durable cache.
// A nil manager or store falls back to direct computation; cache failures
// are never surfaced, a miss just recomputes.
func cachedAggregate[T any](cfg *contract.Config, mgr contract.CacheManager, kind schema.ChartKind, stamp string, compute func() (T, error)) (T, error) {
	var store contract.CacheStore
	if mgr != nil {
		store = mgr.GetAggregateStore()
	}
	if store == nil {
		return compute()
	}

	key := generateCacheKey(cfg, kind, stamp)
	if result, ok := checkCacheHit[T](store, key); ok {
		return result, nil
	}
	return computeAndStore(store, key, compute)
}

// checkCacheHit attempts to retrieve and validate a cached aggregate.
func checkCacheHit[T any](store contract.CacheStore, key string) (T, bool) {
	var result T
	data, version, ts, err := store.Get(key)
	if err != nil {
		return result, false
	}
	if version != currentCacheVersion {
		return result, false
	}
	if time.Since(time.Unix(ts, 0)) > cacheMaxAge {
		return result, false
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, false
	}
	return result, true
}

// computeAndStore computes the aggregate and stores it in the cache.
func computeAndStore[T any](store contract.CacheStore, key string, compute func() (T, error)) (T, error) {
	result, err := compute()
	if err != nil {
		return result, err
	}
	if data, err := json.Marshal(result); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}
	return result, nil
}

// generateCacheKey builds a unique key from everything that affects the
// aggregate: vault, property, shape, bucketing and label options, plus the
// collection stamp so any file change invalidates the entry.
func generateCacheKey(cfg *contract.Config, kind schema.ChartKind, stamp string) string {
	key := fmt.Sprintf("%s:%s:%s:%s:%s:%t:%t:%t:%d:%s:%s",
		cfg.VaultPath,
		cfg.PropertyID,
		kind,
		cfg.Granularity,
		cfg.AnchorProperty,
		cfg.ShowEmpty,
		cfg.CaseSensitivePie,
		cfg.CaseSensitiveTags,
		cfg.LabelDepth,
		cfg.Unknown,
		stamp,
	)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
