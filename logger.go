package draw2d

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with image loads.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the package-wide logger for draw2d.
// By default, draw2d produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent default.
//
// Only the image loading path logs. LoadImage, LoadImageFS and DecodeImage
// write to the logger given by [WithLoadLogger] when set, and to this one
// otherwise:
//   - [slog.LevelDebug]: "draw2d: image decoded" with path, format, width and height
//   - [slog.LevelWarn]: "draw2d: image load failed" with path and error, emitted
//     just before the *LoadError is returned
//
// Drawing primitives, Surface and blits never log, so a per-pixel hot loop
// pays nothing for logging.
//
// Example:
//
//	draw2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by draw2d.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
