package whatsapp

import (
	"fmt"
	"log/slog"

	waLog "go.mau.fi/whatsmeow/util/log"
)

// logAdapter bridges whatsmeow's logger interface onto slog.
type logAdapter struct {
	log *slog.Logger
}

func newLogAdapter(log *slog.Logger) waLog.Logger {
	return logAdapter{log: log}
}

func (a logAdapter) Errorf(msg string, args ...interface{}) {
	a.log.Error(fmt.Sprintf(msg, args...))
}

func (a logAdapter) Warnf(msg string, args ...interface{}) {
	a.log.Warn(fmt.Sprintf(msg, args...))
}

func (a logAdapter) Infof(msg string, args ...interface{}) {
	a.log.Info(fmt.Sprintf(msg, args...))
}

func (a logAdapter) Debugf(msg string, args ...interface{}) {
	a.log.Debug(fmt.Sprintf(msg, args...))
}

func (a logAdapter) Sub(module string) waLog.Logger {
	return logAdapter{log: a.log.With("module", module)}
}
