// SPDX-License-Identifier: MIT

package erfinv

import (
	"log/slog"
	"os"

	"github.com/katalvlaran/compute/dtype"
)

// Strategy names the evaluation route Evaluate selected.
type Strategy string

const (
	StrategyScalar   Strategy = "scalar"
	StrategyMatrix   Strategy = "matrix"
	StrategyPath     Strategy = "path"
	StrategyAccessor Strategy = "accessor"
	StrategyFlat     Strategy = "flat"
)

// Logger wraps slog.Logger with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at debug level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// LogEvaluate records one resolved call.
func (l *Logger) LogEvaluate(s Strategy, k Kind, n int, copied bool, dt dtype.DType, err error) {
	if err != nil {
		l.Debug("erfinv: evaluate failed",
			"strategy", string(s),
			"kind", k.String(),
			"len", n,
			"copy", copied,
			"dtype", dt.String(),
			"error", err,
		)
		return
	}
	l.Debug("erfinv: evaluate",
		"strategy", string(s),
		"kind", k.String(),
		"len", n,
		"copy", copied,
		"dtype", dt.String(),
	)
}
