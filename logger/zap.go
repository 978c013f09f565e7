// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package logger

import (
	"go.uber.org/zap"

	"github.com/absolutelightning/go-btree"
)

// Zap wraps a zap.Logger to implement btree.Logger.
type Zap struct {
	logger *zap.SugaredLogger
}

// NewZap creates a btree.Logger from a zap.Logger.
func NewZap(logger *zap.Logger) btree.Logger {
	return &Zap{logger: logger.Sugar()}
}

func (z *Zap) Error(msg string, args ...any) {
	z.logger.Errorw(msg, args...)
}

func (z *Zap) Warn(msg string, args ...any) {
	z.logger.Warnw(msg, args...)
}

func (z *Zap) Info(msg string, args ...any) {
	z.logger.Infow(msg, args...)
}
