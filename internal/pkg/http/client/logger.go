package client

import (
	"fmt"
	"regexp"

	"go.uber.org/zap"
)

const loggerPrefix = "HTTP%s\t"

var tokenPattern = regexp.MustCompile(`(?i)(token:?\s*)\S+`)

// Logger adapts zap to the resty logger interface.
// All messages go to the debug level, the auth token is never logged.
type Logger struct {
	logger *zap.SugaredLogger
}

func (l *Logger) Debugf(format string, v ...any) {
	l.logWithoutSecrets("", format, v...)
}

func (l *Logger) Warnf(format string, v ...any) {
	l.logWithoutSecrets("-WARN", format, v...)
}

func (l *Logger) Errorf(format string, v ...any) {
	l.logWithoutSecrets("-ERROR", format, v...)
}

func (l *Logger) logWithoutSecrets(level string, format string, v ...any) {
	v = append([]any{level}, v...)
	msg := fmt.Sprintf(loggerPrefix+format, v...)
	msg = tokenPattern.ReplaceAllString(msg, "$1*****")
	l.logger.Debug(msg)
}
