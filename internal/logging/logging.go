package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a deliberately small, framework-agnostic logging interface.
// Components depend on this rather than on zap directly.
type Logger interface {
	// Debug logs a debug-level message.
	Debug(msg string, fields ...Field)

	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Warn logs a warning.
	Warn(msg string, fields ...Field)

	// Error logs an error.
	Error(msg string, fields ...Field)

	// With returns a child logger with persistent fields.
	With(fields ...Field) Logger
}

// Field is a simple key/value pair for structured logging fields.
type Field struct {
	Key   string
	Value any
}

// Options controls how NewZapLogger builds the underlying zap logger.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string

	// Format is "production" (JSON lines) or "development" (console).
	Format string

	// Component is attached to every entry as the logger name.
	Component string
}

// ZapLogger implements Logger on top of a *zap.Logger.
type ZapLogger struct {
	log *zap.Logger
}

// NewZapLogger builds a zap-backed Logger writing to stdout.
func NewZapLogger(opts Options) (*ZapLogger, error) {
	var cfg zap.Config
	if opts.Format == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	}

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if opts.Level != "" {
		parsed, err := zap.ParseAtomicLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level %q: %w", opts.Level, err)
		}
		level = parsed
	}
	cfg.Level = level
	cfg.OutputPaths = []string{"stdout"}
	cfg.DisableStacktrace = true

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building zap logger: %w", err)
	}
	if opts.Component != "" {
		log = log.Named(opts.Component)
	}
	return &ZapLogger{log: log}, nil
}

// NewFromZap wraps an existing zap logger, e.g. one built by zaptest.
func NewFromZap(log *zap.Logger) *ZapLogger {
	return &ZapLogger{log: log}
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() *ZapLogger {
	return &ZapLogger{log: zap.NewNop()}
}

func (z *ZapLogger) Debug(msg string, fields ...Field) {
	z.log.Debug(msg, toZap(fields)...)
}

func (z *ZapLogger) Info(msg string, fields ...Field) {
	z.log.Info(msg, toZap(fields)...)
}

func (z *ZapLogger) Warn(msg string, fields ...Field) {
	z.log.Warn(msg, toZap(fields)...)
}

func (z *ZapLogger) Error(msg string, fields ...Field) {
	z.log.Error(msg, toZap(fields)...)
}

func (z *ZapLogger) With(fields ...Field) Logger {
	return &ZapLogger{log: z.log.With(toZap(fields)...)}
}

// Sync flushes buffered entries. Errors from syncing stdout on some
// platforms are expected and ignored by callers.
func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}

func toZap(fields []Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			out = append(out, zap.NamedError(f.Key, err))
			continue
		}
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}
