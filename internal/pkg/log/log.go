// Package log creates the loggers used by the CLI and the library.
package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates logger for the stdout/stderr pair.
// Debug and info messages go to stdout, debug only if verbose output is enabled.
// Warnings and errors go to stderr.
func NewLogger(stdout io.Writer, stderr io.Writer, verbose bool) *zap.SugaredLogger {
	cores := []zapcore.Core{
		stdoutCore(stdout, verbose),
		stderrCore(stderr, verbose),
	}
	return zap.New(zapcore.NewTee(cores...)).Sugar()
}

// NewNopLogger creates logger that discards all messages.
func NewNopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func stdoutCore(stdout io.Writer, verbose bool) zapcore.Core {
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		if verbose {
			return l == zapcore.DebugLevel || l == zapcore.InfoLevel
		}
		return l == zapcore.InfoLevel
	})

	// Prefix messages with the level only when verbose output is enabled
	levelKey := ""
	if verbose {
		levelKey = "level"
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         levelKey,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "\t",
	})
	return zapcore.NewCore(encoder, zapcore.AddSync(stdout), levels)
}

func stderrCore(stderr io.Writer, verbose bool) zapcore.Core {
	levelKey := ""
	if verbose {
		levelKey = "level"
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         levelKey,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "\t",
	})
	return zapcore.NewCore(encoder, zapcore.AddSync(stderr), zapcore.WarnLevel)
}
