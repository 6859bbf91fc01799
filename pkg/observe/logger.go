package observe

import (
	"log/slog"
	"time"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/internal/logging"
)

// Logger is an Observer that logs the four lifecycle events with structured
// attributes.
type Logger struct {
	logger *slog.Logger
}

// NewLogger creates a logging observer. A nil logger defaults to a no-op.
func NewLogger(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Logger{logger: logger}
}

// NewStderrLogger creates a logging observer writing to stderr at the given
// level, for wiring lifecycle visibility without building a slog.Logger
// first.
func NewStderrLogger(level slog.Level) *Logger {
	return &Logger{logger: logging.New(level)}
}

// ContextEnding logs that the observed context started ending.
func (l *Logger) ContextEnding(ctx *canopy.Context) {
	l.logger.Info("context ending", "context_id", ctx.ID())
}

// ContextEnded logs that the observed context ended.
func (l *Logger) ContextEnded(ctx *canopy.Context) {
	l.logger.Info("context ended",
		"context_id", ctx.ID(),
		"lifetime", time.Since(ctx.CreatedAt()),
	)
}

// ChildContextEnding logs that a child of the observed context started
// ending.
func (l *Logger) ChildContextEnding(child *canopy.Context) {
	l.logger.Info("child context ending", "context_id", child.ID())
}

// ChildContextEnded logs that a child of the observed context ended.
func (l *Logger) ChildContextEnded(child *canopy.Context) {
	l.logger.Info("child context ended", "context_id", child.ID())
}
