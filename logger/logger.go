// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package logger adapts popular logging libraries to btree.Logger.
//
// The standard library's *slog.Logger already satisfies btree.Logger and
// needs no adapter.
//
//	zapLogger, _ := zap.NewProduction()
//	tree, err := btree.New[int](32, btree.WithLogger(logger.NewZap(zapLogger)))
package logger
