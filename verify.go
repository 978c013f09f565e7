// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package btree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Verify walks the whole tree and checks its structural invariants: keys
// strictly increasing, node capacity, child counts, the key partition
// between siblings, equal leaf depth and the cached key count. The first
// violation found is returned wrapped in ErrCorrupt.
func (t *BTree[K]) Verify() error {
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty root with size %d", ErrCorrupt, t.size)
		}
		return nil
	}

	v := verifier[K]{degree: t.degree, leafDepth: -1}
	if err := v.check(t.root, 0, nil, nil); err != nil {
		return err
	}
	if v.count != t.size {
		return fmt.Errorf("%w: counted %d keys, size is %d", ErrCorrupt, v.count, t.size)
	}
	return nil
}

type verifier[K constraints.Ordered] struct {
	degree    int
	leafDepth int
	count     uint64
}

// check validates n, whose keys must lie strictly between lo and hi when
// those bounds are set.
func (v *verifier[K]) check(n *node[K], depth int, lo, hi *K) error {
	if n == nil {
		return fmt.Errorf("%w: nil child at depth %d", ErrCorrupt, depth)
	}
	if len(n.keys) > maxKeys(v.degree) {
		return fmt.Errorf("%w: node at depth %d holds %d keys, max %d", ErrCorrupt, depth, len(n.keys), maxKeys(v.degree))
	}
	if depth > 0 && len(n.keys) == 0 {
		return fmt.Errorf("%w: empty non-root node at depth %d", ErrCorrupt, depth)
	}
	for i, k := range n.keys {
		if i > 0 && n.keys[i-1] >= k {
			return fmt.Errorf("%w: keys out of order at depth %d index %d", ErrCorrupt, depth, i)
		}
		if lo != nil && *lo >= k {
			return fmt.Errorf("%w: key %v not above separator %v", ErrCorrupt, k, *lo)
		}
		if hi != nil && k >= *hi {
			return fmt.Errorf("%w: key %v not below separator %v", ErrCorrupt, k, *hi)
		}
	}
	v.count += uint64(len(n.keys))

	if n.leaf {
		if len(n.children) != 0 {
			return fmt.Errorf("%w: leaf at depth %d has %d children", ErrCorrupt, depth, len(n.children))
		}
		if v.leafDepth == -1 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return fmt.Errorf("%w: leaf at depth %d, expected %d", ErrCorrupt, depth, v.leafDepth)
		}
		return nil
	}

	if len(n.children) != len(n.keys)+1 {
		return fmt.Errorf("%w: internal node at depth %d has %d keys and %d children", ErrCorrupt, depth, len(n.keys), len(n.children))
	}
	for i, child := range n.children {
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			childHi = &n.keys[i]
		}
		if err := v.check(child, depth+1, childLo, childHi); err != nil {
			return err
		}
	}
	return nil
}
