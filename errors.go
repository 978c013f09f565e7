// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package btree

import "errors"

var (
	ErrInvalidDegree    = errors.New("degree must be at least 2")
	ErrInvalidCacheSize = errors.New("lookup cache size must be positive")
	ErrCorrupt          = errors.New("btree invariant violated")
)
