package rlefnt

import "context"
import "log/slog"
import "sync/atomic"

// nopHandler discards all records. Enabled returns false, so
// disabled logging doesn't even format messages.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Sets the logger used by rlefnt. By default nothing is logged.
// Passing nil restores the silent default.
//
// Levels in use:
//  - [slog.LevelDebug]: glyph lookups that miss, decode failures,
//    parsed font headers.
//  - [slog.LevelInfo]: output files written by the command line tools.
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(nopHandler{})
	}
	loggerPtr.Store(logger)
}

// Returns the logger currently in use. Subpackages and commands
// share it through this function.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
