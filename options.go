// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package btree

type options struct {
	logger          Logger
	searchThreshold int
	cacheSize       int
}

func defaultOptions() options {
	return options{
		logger:          DiscardLogger{},
		searchThreshold: defaultSearchThreshold,
	}
}

// Option configures a BTree or an Index using the functional options pattern.
type Option func(*options)

// WithLogger routes tree events (height growth, rejected construction) to l.
// A nil logger restores the default, which discards everything.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l == nil {
			l = DiscardLogger{}
		}
		o.logger = l
	}
}

// WithSearchThreshold sets the number of keys at which position lookups
// inside a node switch from a linear scan to a binary search.
func WithSearchThreshold(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.searchThreshold = n
	}
}

// WithLookupCache enables an LRU of recent Search results on an Index.
// It has no effect on a plain BTree.
func WithLookupCache(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
