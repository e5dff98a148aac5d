package interfaces

import "github.com/careledger/careledger/pkg/domain/types"

// QueryCache is a read-through cache of listings keyed by query identity
type QueryCache[V any] interface {
	Get(key types.QueryKey) (V, bool)
	Set(key types.QueryKey, value V)
	// Invalidate drops the cached entries so the next read refetches them
	Invalidate(keys ...types.QueryKey)
	// OptimisticUpdate rewrites a cached entry in place. Missing entries are left missing.
	OptimisticUpdate(key types.QueryKey, fn func(current V) V)
}
