// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package btree

// Logger matches the method set of *slog.Logger, so a slog logger can be
// passed directly. See package logger for zap and logrus adapters.
type Logger interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
}

// DiscardLogger is the default logger and drops everything.
type DiscardLogger struct{}

func (d DiscardLogger) Error(string, ...any) {}

func (d DiscardLogger) Warn(string, ...any) {}

func (d DiscardLogger) Info(string, ...any) {}
