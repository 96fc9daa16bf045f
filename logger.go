package assdraw

import (
	"log/slog"
	"sync/atomic"
)

var (
	discard = slog.New(slog.DiscardHandler)
	logger  atomic.Pointer[slog.Logger]
)

// SetLogger installs the logger used by the editor and renderers, nil silences them again.
// Debug records tool switches, pointer capture and zoom clamping. Warn records rejected loads and tool selections.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// Logger returns the installed logger, or one that discards everything.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return discard
}
