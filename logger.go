package fractal

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so slog never
// formats the attributes of a render log line nobody reads.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

// current holds the logger shared by the engine, session, viewer and
// export code. Renders read it from pool goroutines.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes fractal's log output to l. Nothing is logged until it
// is called; SetLogger(nil) silences the package again.
//
// Levels:
//   - [slog.LevelDebug]: one line per rendered frame, zoom steps refused at a bound
//   - [slog.LevelInfo]: session started, window opened, frame exported
//   - [slog.LevelWarn]: window resizes the view rejected
//
// Example:
//
//	fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}

// tracing reports whether per-frame Debug lines are recorded.
func tracing() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}
