package circuit

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with circuit-specific field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable records to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithMode adds a mode field to the logger.
func (l *Logger) WithMode(mode Mode) *Logger {
	return &Logger{
		Logger: l.Logger.With("mode", string(mode)),
	}
}

// LogEdges logs the edge generation and ranking stage.
func (l *Logger) LogEdges(points, edges, workers int, elapsed time.Duration) {
	l.Debug("edges ranked",
		"points", points,
		"edges", edges,
		"workers", workers,
		"elapsed", elapsed,
	)
}

// LogGroups logs the outcome of budgeted grouping.
func (l *Logger) LogGroups(budget, groups, merges int) {
	l.Debug("groups reconciled",
		"budget", budget,
		"groups", groups,
		"merges", merges,
	)
}

// LogSpan logs the outcome of full connectivity.
func (l *Logger) LogSpan(r *SpanResult) {
	l.Debug("points connected",
		"applied", r.Applied,
		"terminal_u", r.Terminal.U,
		"terminal_v", r.Terminal.V,
		"terminal_distance", r.Terminal.Distance,
	)
}

// LogSolve logs the final answer, or the error that prevented one. Errors
// are logged at debug level; presenting them is left to the caller.
func (l *Logger) LogSolve(mode Mode, result int, err error) {
	if err != nil {
		l.Debug("solve failed",
			"mode", string(mode),
			"error", err,
		)
	} else {
		l.Info("solve completed",
			"mode", string(mode),
			"result", result,
		)
	}
}
