// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package btree

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndex_New(t *testing.T) {
	t.Parallel()

	_, err := NewIndex[int](1)
	require.ErrorIs(t, err, ErrInvalidDegree)

	_, err = NewIndex[int](3, WithLookupCache(-1))
	require.ErrorIs(t, err, ErrInvalidCacheSize)

	idx, err := NewIndex[int](3)
	require.NoError(t, err)
	require.Nil(t, idx.cache)
	require.False(t, idx.Search(1))
	require.Equal(t, CacheStats{}, idx.CacheStats())
}

func TestIndex_InsertAndSearch(t *testing.T) {
	t.Parallel()

	idx, err := NewIndex[int](3)
	require.NoError(t, err)
	for _, k := range []int{1, 3, 5, 7, 9, 11} {
		require.True(t, idx.Insert(k))
	}
	require.False(t, idx.Insert(5))
	require.Equal(t, 6, idx.Len())
	require.Equal(t, 2, idx.Height())
	require.True(t, idx.Search(11))
	require.False(t, idx.Search(4))
	require.NoError(t, idx.Verify())
}

func TestIndex_LookupCache(t *testing.T) {
	t.Parallel()

	idx, err := NewIndex[int](3, WithLookupCache(16))
	require.NoError(t, err)

	idx.Insert(1)
	require.True(t, idx.Search(1))
	require.True(t, idx.Search(1))
	require.Equal(t, CacheStats{Hits: 1, Misses: 1}, idx.CacheStats())

	// A cached negative result must not survive the key's insertion.
	require.False(t, idx.Search(2))
	require.False(t, idx.Search(2))
	require.True(t, idx.Insert(2))
	require.True(t, idx.Search(2))
	require.Equal(t, CacheStats{Hits: 3, Misses: 2}, idx.CacheStats())
}

func TestIndex_LookupCacheEviction(t *testing.T) {
	t.Parallel()

	idx, err := NewIndex[int](2, WithLookupCache(4))
	require.NoError(t, err)
	for k := 0; k < 100; k += 2 {
		idx.Insert(k)
	}
	for k := 0; k < 100; k++ {
		require.Equal(t, k%2 == 0, idx.Search(k))
	}
	require.Equal(t, 4, idx.cache.Len())
	require.Equal(t, uint64(100), idx.CacheStats().Misses)
}

func TestIndex_ConcurrentReadersAndWriter(t *testing.T) {
	t.Parallel()

	idx, err := NewIndex[int](4, WithLookupCache(64))
	require.NoError(t, err)

	const n = 2000
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for k := 0; k < n; k++ {
			idx.Insert(k)
		}
	}()
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			for k := r; k < n; k += 4 {
				idx.Search(k)
				idx.Search(-k - 1)
			}
		}(r)
	}
	wg.Wait()

	require.Equal(t, n, idx.Len())
	require.NoError(t, idx.Verify())
	for k := 0; k < n; k++ {
		require.True(t, idx.Search(k), "key %d", k)
	}
	require.False(t, idx.Search(-1))
}
