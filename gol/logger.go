package gol

import (
	"context"
	"log/slog"
)

// nopHandler discards everything so logging is free until SetLogger is called.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Set once at startup, before any window opens
var logger = slog.New(nopHandler{})

// SetLogger configures the logger used by the frame loop and the displays.
// Pass nil to go back to silent.
//
//   - [slog.LevelDebug]: every generation
//   - [slog.LevelInfo]: state changes, seeding, quitting
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger = l
}

// Logger returns the current logger
func Logger() *slog.Logger {
	return logger
}
