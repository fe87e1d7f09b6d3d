// Package rlog is a thin structured-logging wrapper over zap, matching the
// sugared-logger idiom the rest of roki's ambient stack uses: key/value
// pairs rather than format strings, one logger per component.
package rlog

import (
	"go.uber.org/zap"
)

// Logger wraps a zap.SugaredLogger. The zero value is safe to use: every
// method degrades to a no-op when no underlying logger was installed,
// matching the "nil logger is fine" convention components rely on when a
// caller doesn't care about logs.
type Logger struct {
	s *zap.SugaredLogger
}

// New builds a Logger named after a component, inheriting its fields from
// base. A nil base is fine.
func New(base *zap.Logger, name string) Logger {
	if base == nil {
		return Logger{}
	}
	return Logger{s: base.Named(name).Sugar()}
}

// Default builds a Logger backed by zap's production configuration.
func Default(name string) Logger {
	base, err := zap.NewProduction()
	if err != nil {
		return Logger{}
	}
	return New(base, name)
}

// Nop returns a Logger that discards everything.
func Nop() Logger { return Logger{} }

func (l Logger) Debugw(msg string, kv ...interface{}) {
	if l.s != nil {
		l.s.Debugw(msg, kv...)
	}
}

func (l Logger) Infow(msg string, kv ...interface{}) {
	if l.s != nil {
		l.s.Infow(msg, kv...)
	}
}

func (l Logger) Warnw(msg string, kv ...interface{}) {
	if l.s != nil {
		l.s.Warnw(msg, kv...)
	}
}

func (l Logger) Errorw(msg string, kv ...interface{}) {
	if l.s != nil {
		l.s.Errorw(msg, kv...)
	}
}

// With returns a Logger with additional structured fields bound.
func (l Logger) With(kv ...interface{}) Logger {
	if l.s == nil {
		return l
	}
	return Logger{s: l.s.With(kv...)}
}

// Sync flushes any buffered log entries.
func (l Logger) Sync() error {
	if l.s == nil {
		return nil
	}
	return l.s.Sync()
}
