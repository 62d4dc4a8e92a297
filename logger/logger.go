// Package logger holds the process-wide zap logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var base = zap.NewNop()

// Init builds the logger: JSON output in production, console output otherwise.
// Errors and above carry the caller and a stack trace.
func Init(production bool) error {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	enc := cfg.EncoderConfig
	enc.TimeKey = "timestamp"
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.EncodeCaller = zapcore.ShortCallerEncoder

	quiet := enc
	quiet.CallerKey = ""

	var plain, withCaller zapcore.Encoder
	if production {
		plain = zapcore.NewJSONEncoder(quiet)
		withCaller = zapcore.NewJSONEncoder(enc)
	} else {
		plain = zapcore.NewConsoleEncoder(quiet)
		withCaller = zapcore.NewConsoleEncoder(enc)
	}

	out := zapcore.Lock(zapcore.AddSync(os.Stdout))
	minLevel := cfg.Level.Level()

	core := zapcore.NewTee(
		zapcore.NewCore(plain, out, zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= minLevel && l < zapcore.ErrorLevel
		})),
		zapcore.NewCore(withCaller, out, zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= zapcore.ErrorLevel
		})),
	)

	base = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return nil
}

// L returns the current logger. Before Init it is a no-op logger.
func L() *zap.Logger {
	return base
}

// Sync flushes buffered entries.
func Sync() {
	_ = base.Sync()
}

// Replace swaps the logger, mostly for tests, and returns a func restoring the previous one.
func Replace(l *zap.Logger) func() {
	prev := base
	base = l
	return func() { base = prev }
}
