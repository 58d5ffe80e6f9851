package iocache

import (
	"sync"

	"github.com/tempograph/tempograph/internal/contract"
)

// CacheStoreManager manages the aggregate CacheStore instance.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	aggregate    contract.CacheStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetAggregateStore returns the aggregate CacheStore.
func (mgr *CacheStoreManager) GetAggregateStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.aggregate
}
