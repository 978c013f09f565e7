// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package logger

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/absolutelightning/go-btree"
)

// Logrus wraps a logrus.Logger to implement btree.Logger.
type Logrus struct {
	logger *logrus.Logger
}

// NewLogrus creates a btree.Logger from a logrus.Logger.
func NewLogrus(logger *logrus.Logger) btree.Logger {
	return &Logrus{logger: logger}
}

func (l *Logrus) Error(msg string, args ...any) {
	l.logger.WithFields(argsToFields(args)).Error(msg)
}

func (l *Logrus) Warn(msg string, args ...any) {
	l.logger.WithFields(argsToFields(args)).Warn(msg)
}

func (l *Logrus) Info(msg string, args ...any) {
	l.logger.WithFields(argsToFields(args)).Info(msg)
}

// argsToFields pairs up slog-style key/value arguments. Non-string keys
// are formatted; a trailing key without a value is dropped.
func argsToFields(args []any) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		fields[key] = args[i+1]
	}
	return fields
}
