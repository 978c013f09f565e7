// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package btree

import (
	"fmt"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/exp/constraints"
)

// Index is a BTree guarded by a reader/writer lock, so any number of
// searches may run alongside a single writer. It can optionally remember
// recent Search results in an LRU cache.
type Index[K constraints.Ordered] struct {
	mu   sync.RWMutex
	tree *BTree[K]

	cache  *lru.Cache[K, bool]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// CacheStats counts lookups answered from, and missed by, the lookup cache.
type CacheStats struct {
	Hits   uint64
	Misses uint64
}

// NewIndex returns an empty Index of the given degree.
func NewIndex[K constraints.Ordered](degree int, opts ...Option) (*Index[K], error) {
	o := applyOptions(opts)
	tree, err := New[K](degree, opts...)
	if err != nil {
		return nil, err
	}

	idx := &Index[K]{tree: tree}
	switch {
	case o.cacheSize < 0:
		o.logger.Warn("rejecting lookup cache", "size", o.cacheSize)
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCacheSize, o.cacheSize)
	case o.cacheSize > 0:
		idx.cache, err = lru.New[K, bool](o.cacheSize)
		if err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// Search reports whether key is present.
func (i *Index[K]) Search(key K) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if i.cache == nil {
		return i.tree.Search(key)
	}
	if found, ok := i.cache.Get(key); ok {
		i.hits.Add(1)
		return found
	}
	i.misses.Add(1)

	// Filled under the read lock so a concurrent Insert cannot be
	// overwritten by a stale negative result.
	found := i.tree.Search(key)
	i.cache.Add(key, found)
	return found
}

// Insert adds key and reports whether it was not already present.
func (i *Index[K]) Insert(key K) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	added := i.tree.Insert(key)
	if i.cache != nil && added {
		// Keys are never removed, so only this key's entry can go stale.
		if _, ok := i.cache.Peek(key); ok {
			i.cache.Add(key, true)
		}
	}
	return added
}

// Len returns the number of keys in the index.
func (i *Index[K]) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.tree.Len()
}

// Height returns the number of levels in the underlying tree.
func (i *Index[K]) Height() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.tree.Height()
}

// Verify checks the underlying tree's invariants.
func (i *Index[K]) Verify() error {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.tree.Verify()
}

// CacheStats returns lookup cache counters. Both are zero when the cache
// is disabled.
func (i *Index[K]) CacheStats() CacheStats {
	return CacheStats{
		Hits:   i.hits.Load(),
		Misses: i.misses.Load(),
	}
}
