package fst

import (
	"container/list"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// boundedEntry is the payload held by the LRU list.
type boundedEntry[T any] struct {
	key    uint64
	sig    string
	handle CompiledNode
}

// BoundedNodeHash is an LRU-bounded structural dedup table: a hash table
// holding a fixed number of slots rather than growing without bound. Unlike
// the default NodeHash, entries are evicted once the cache exceeds its
// capacity, trading perfect suffix sharing for bounded memory — appropriate
// when ShareMaxTailLength admits long tails over a very large key set.
type BoundedNodeHash[T any] struct {
	mu       sync.RWMutex
	capacity int
	store    CompiledStore[T]
	cache    map[uint64]*list.Element
	lru      *list.List
}

var _ NodeHash[int64] = (*BoundedNodeHash[int64])(nil)

// NewBoundedNodeHash creates a NodeHash backed by an LRU cache holding at
// most capacity structurally-distinct nodes.
func NewBoundedNodeHash[T any](store CompiledStore[T], capacity int) *BoundedNodeHash[T] {
	return &BoundedNodeHash[T]{
		capacity: capacity,
		store:    store,
		cache:    make(map[uint64]*list.Element),
		lru:      list.New(),
	}
}

// Add implements NodeHash[T], fusing a cache lookup and insert into one call
// since a miss always means compiling and inserting.
func (c *BoundedNodeHash[T]) Add(node *UncompiledNode[T]) (CompiledNode, error) {
	sig := signature(node)
	key := xxhash.Sum64String(sig)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[key]; ok {
		entry := elem.Value.(*boundedEntry[T])
		if entry.sig == sig {
			c.lru.MoveToFront(elem)
			return entry.handle, nil
		}
	}

	handle, err := c.store.AddNode(node)
	if err != nil {
		return NoCompiledNode, err
	}

	entry := &boundedEntry[T]{key: key, sig: sig, handle: handle}
	elem := c.lru.PushFront(entry)
	c.cache[key] = elem

	if c.lru.Len() > c.capacity {
		oldest := c.lru.Back()
		if oldest != nil {
			c.lru.Remove(oldest)
			delete(c.cache, oldest.Value.(*boundedEntry[T]).key)
		}
	}

	return handle, nil
}

// Size returns the current number of cached entries.
func (c *BoundedNodeHash[T]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lru.Len()
}
