// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package btree

import (
	"sort"

	"golang.org/x/exp/constraints"
)

const defaultSearchThreshold = 32

func maxKeys(degree int) int {
	return 2*degree - 1
}

// findIndex returns the first index i such that keys[i] >= key, or
// len(keys) when every key is smaller. Small nodes are scanned linearly,
// larger ones are binary searched.
func findIndex[K constraints.Ordered](keys []K, key K, threshold int) int {
	if len(keys) < threshold {
		i := 0
		for i < len(keys) && keys[i] < key {
			i++
		}
		return i
	}
	return sort.Search(len(keys), func(i int) bool {
		return keys[i] >= key
	})
}

// insertAt inserts v at position i, shifting the tail right by one.
func insertAt[T any](s []T, i int, v T) []T {
	var zero T
	s = append(s, zero)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
