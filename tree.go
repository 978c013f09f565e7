// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package btree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// BTree is an in-memory B-tree holding a set of ordered keys. Nodes are
// split proactively on the way down during insertion, so an insert never
// has to walk back up the tree.
//
// A BTree is not safe for concurrent use; see Index for a synchronized
// handle.
type BTree[K constraints.Ordered] struct {
	degree int
	root   *node[K]
	size   uint64

	logger          Logger
	searchThreshold int
}

// New returns an empty tree with the given degree (minimum degree t).
// Every node holds at most 2t-1 keys.
func New[K constraints.Ordered](degree int, opts ...Option) (*BTree[K], error) {
	o := applyOptions(opts)
	if degree < 2 {
		o.logger.Warn("rejecting btree construction", "degree", degree)
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDegree, degree)
	}
	return &BTree[K]{
		degree:          degree,
		logger:          o.logger,
		searchThreshold: o.searchThreshold,
	}, nil
}

// Degree returns the branching parameter the tree was built with.
func (t *BTree[K]) Degree() int {
	return t.degree
}

// MaxKeys returns the capacity of a single node.
func (t *BTree[K]) MaxKeys() int {
	return maxKeys(t.degree)
}

// Len is used to return the number of keys in the tree
func (t *BTree[K]) Len() int {
	return int(t.size)
}

// Height returns the number of levels, 0 for an empty tree.
func (t *BTree[K]) Height() int {
	return t.root.height()
}

// Search reports whether key is present. It never mutates the tree.
func (t *BTree[K]) Search(key K) bool {
	if t.root == nil {
		return false
	}
	return t.root.search(key, t.searchThreshold)
}

// Insert adds key to the tree and reports whether it was added. Keys are
// kept as a set: inserting a key that is already present is a no-op and
// returns false.
func (t *BTree[K]) Insert(key K) bool {
	if t.Search(key) {
		return false
	}
	t.insert(key)
	t.size++
	return true
}

func (t *BTree[K]) insert(key K) {
	if t.root == nil {
		t.root = newNode[K](true)
		t.root.keys = make([]K, 0, t.MaxKeys())
		t.root.keys = append(t.root.keys, key)
		return
	}

	if !t.root.isFull(t.degree) {
		t.root.insertNonFull(key, t.degree, t.searchThreshold)
		return
	}

	// The old root moves under a fresh internal root and is split there.
	// This is the only place the tree gets taller.
	newRoot := newNode[K](false)
	newRoot.keys = make([]K, 0, t.MaxKeys())
	newRoot.children = make([]*node[K], 0, t.MaxKeys()+1)
	newRoot.children = append(newRoot.children, t.root)
	newRoot.splitChild(0, t.degree)

	i := 0
	if newRoot.keys[0] < key {
		i = 1
	}
	newRoot.children[i].insertNonFull(key, t.degree, t.searchThreshold)
	t.root = newRoot

	t.logger.Info("btree height increased", "height", t.Height(), "keys", t.size+1)
}
