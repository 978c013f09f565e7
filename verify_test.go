// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package btree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBTree_Verify_DetectsCorruption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		corrupt func(tree *BTree[int])
	}{
		{"unsorted leaf", func(tree *BTree[int]) {
			leaf := tree.root.children[1].children[2]
			leaf.keys[0], leaf.keys[1] = leaf.keys[1], leaf.keys[0]
		}},
		{"key outside separator range", func(tree *BTree[int]) {
			tree.root.children[0].keys = append(tree.root.children[0].keys, 1000)
		}},
		{"overfull node", func(tree *BTree[int]) {
			leaf := tree.root.children[len(tree.root.children)-1]
			last := leaf.keys[len(leaf.keys)-1]
			for i := 1; i <= 5; i++ {
				leaf.keys = append(leaf.keys, last+i)
			}
		}},
		{"missing child", func(tree *BTree[int]) {
			tree.root.children = tree.root.children[:len(tree.root.children)-1]
		}},
		{"nil child", func(tree *BTree[int]) {
			tree.root.children[1] = nil
		}},
		{"unbalanced leaves", func(tree *BTree[int]) {
			tree.root.children[0] = leafOf(20)
		}},
		{"size mismatch", func(tree *BTree[int]) {
			tree.size++
		}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tree := newTree[int](t, 2)
			for k := 10; k <= 100; k += 10 {
				tree.Insert(k)
			}
			require.NoError(t, tree.Verify())
			require.Equal(t, 3, tree.Height())

			tc.corrupt(tree)
			require.ErrorIs(t, tree.Verify(), ErrCorrupt)
		})
	}
}

func TestBTree_Verify_EmptyTreeWithSize(t *testing.T) {
	t.Parallel()

	tree := newTree[int](t, 2)
	tree.size = 3
	require.ErrorIs(t, tree.Verify(), ErrCorrupt)
}
