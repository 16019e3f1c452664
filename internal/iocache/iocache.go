// Package iocache is for caching tagger output and tracking scoring runs.
package iocache

import (
	"sync"

	"github.com/huangsam/yomu/internal/contract"
)

// CacheStoreManager manages multiple CacheStore instances.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	tags         contract.CacheStore
	analysis     contract.AnalysisStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetTagStore returns the tag CacheStore.
func (mgr *CacheStoreManager) GetTagStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.tags
}

// GetAnalysisStore returns the analysis AnalysisStore.
func (mgr *CacheStoreManager) GetAnalysisStore() contract.AnalysisStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.analysis
}
