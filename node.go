// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package btree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// node is a single B-tree node. Internal nodes always carry exactly one
// more child than they have keys; leaves carry no children at all.
type node[K constraints.Ordered] struct {
	leaf     bool
	keys     []K
	children []*node[K]
}

func newNode[K constraints.Ordered](leaf bool) *node[K] {
	return &node[K]{leaf: leaf}
}

func (n *node[K]) isFull(degree int) bool {
	return len(n.keys) >= maxKeys(degree)
}

// search reports whether key is stored in the subtree rooted at n.
func (n *node[K]) search(key K, threshold int) bool {
	for n != nil {
		i := findIndex(n.keys, key, threshold)
		if i < len(n.keys) && n.keys[i] == key {
			return true
		}
		if n.leaf || i >= len(n.children) {
			return false
		}
		n = n.children[i]
	}
	return false
}

// insertNonFull places key into the subtree rooted at n. The caller must
// guarantee that n has room for one more key; any full child met on the
// way down is split before descending into it.
func (n *node[K]) insertNonFull(key K, degree, threshold int) {
	if n.isFull(degree) {
		panic(fmt.Sprintf("btree: insertNonFull on full node (%d keys, degree %d)", len(n.keys), degree))
	}
	for {
		i := findIndex(n.keys, key, threshold)
		if n.leaf {
			n.keys = insertAt(n.keys, i, key)
			return
		}

		if n.children[i].isFull(degree) {
			n.splitChild(i, degree)
			// The promoted median may now sit left of key.
			if key > n.keys[i] {
				i++
			}
		}
		n = n.children[i]
	}
}

// splitChild splits the full child at index i around its median. The
// median moves up into n at position i and the new right sibling is
// linked in at children[i+1].
func (n *node[K]) splitChild(i, degree int) {
	y := n.children[i]
	if len(y.keys) != maxKeys(degree) {
		panic(fmt.Sprintf("btree: splitChild on non-full child (%d keys, degree %d)", len(y.keys), degree))
	}

	mid := degree - 1
	median := y.keys[mid]

	z := newNode[K](y.leaf)
	z.keys = make([]K, len(y.keys)-degree, maxKeys(degree))
	copy(z.keys, y.keys[degree:])
	if !y.leaf {
		z.children = make([]*node[K], len(y.children)-degree, maxKeys(degree)+1)
		copy(z.children, y.children[degree:])
		clear(y.children[degree:])
		y.children = y.children[:degree]
	}

	var zero K
	for j := mid; j < len(y.keys); j++ {
		y.keys[j] = zero
	}
	y.keys = y.keys[:mid]

	n.keys = insertAt(n.keys, i, median)
	n.children = insertAt(n.children, i+1, z)
}

// height returns the number of levels below and including n. Every leaf
// sits at the same depth, so following the leftmost spine is enough.
func (n *node[K]) height() int {
	h := 0
	for n != nil {
		h++
		if n.leaf || len(n.children) == 0 {
			break
		}
		n = n.children[0]
	}
	return h
}
