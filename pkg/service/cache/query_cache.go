package cache

import (
	"sync"

	"github.com/careledger/careledger/pkg/domain/interfaces"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/hashicorp/golang-lru/v2"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultSize is enough for every query key with room for per-filter listings
const DefaultSize = 64

// QueryCache caches listings by query key with LRU eviction
type QueryCache[V any] struct {
	// mu serializes read-modify-write in OptimisticUpdate
	mu    sync.Mutex
	store *lru.Cache[types.QueryKey, V]
}

var _ interfaces.QueryCache[[]string] = (*QueryCache[[]string])(nil)

// New creates a QueryCache holding at most size entries
func New[V any](size int) (*QueryCache[V], error) {
	store, err := lru.New[types.QueryKey, V](size)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create query cache", goerr.V("size", size))
	}
	return &QueryCache[V]{store: store}, nil
}

func (c *QueryCache[V]) Get(key types.QueryKey) (V, bool) {
	return c.store.Get(key)
}

func (c *QueryCache[V]) Set(key types.QueryKey, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Add(key, value)
}

func (c *QueryCache[V]) Invalidate(keys ...types.QueryKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		c.store.Remove(key)
	}
}

func (c *QueryCache[V]) OptimisticUpdate(key types.QueryKey, fn func(current V) V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.store.Peek(key)
	if !ok {
		return
	}
	c.store.Add(key, fn(current))
}

// Len returns the number of cached entries
func (c *QueryCache[V]) Len() int {
	return c.store.Len()
}
