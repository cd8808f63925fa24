// Package logger implements the logging adapter on top of zap.
package logger

import (
	"github.com/voltlab/strata/internal/core/ports"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger implements ports.Logger using a zap SugaredLogger. Every line
// carries the rank so interleaved output from multiple ranks stays
// attributable.
type Logger struct {
	log *zap.SugaredLogger
}

// New creates a production console logger writing to stderr.
func New(verbose bool) *Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	log, err := cfg.Build()
	if err != nil {
		// zap only fails on a malformed config, which is static here.
		panic(err)
	}
	return &Logger{log: log.Sugar()}
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() *Logger {
	return &Logger{log: zap.NewNop().Sugar()}
}

// WithRank returns a logger whose every line is stamped with the rank.
func (l *Logger) WithRank(rank int) *Logger {
	return &Logger{log: l.log.With("rank", rank)}
}

func (l *Logger) Debug(msg string, kv ...any) {
	l.log.Debugw(msg, kv...)
}

func (l *Logger) Info(msg string, kv ...any) {
	l.log.Infow(msg, kv...)
}

func (l *Logger) Warn(msg string, kv ...any) {
	l.log.Warnw(msg, kv...)
}

func (l *Logger) Error(err error, msg string, kv ...any) {
	l.log.Errorw(msg, append([]any{"error", err}, kv...)...)
}

// Sync flushes buffered log entries. Errors from syncing stderr are
// harmless and ignored.
func (l *Logger) Sync() {
	_ = l.log.Sync()
}

var _ ports.Logger = (*Logger)(nil)
