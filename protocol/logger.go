package protocol

import "github.com/sirupsen/logrus"

// Logger is the debug packet-trace hook: when a Context has Debug enabled,
// Receive logs the state, source, packet id and framed length of every
// dispatched packet (packet names are not logged). Kept as a small
// interface so callers can substitute their own sink.
type Logger interface {
	Debugf(format string, args ...any)
}

// logrusLogger adapts a *logrus.Logger to Logger.
type logrusLogger struct {
	log *logrus.Logger
}

// NewLogrusLogger returns a Logger backed by logrus, logging at debug
// level. Pass nil to get a standard logrus.New() with debug level enabled.
func NewLogrusLogger(log *logrus.Logger) Logger {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.DebugLevel)
	}
	return &logrusLogger{log: log}
}

func (l *logrusLogger) Debugf(format string, args ...any) {
	l.log.Debugf(format, args...)
}
