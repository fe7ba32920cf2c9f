package inspector

import "github.com/fftrace/fftrace/pkg/internal/types"

// NotifyLoggers emits a log event to all configured loggers.
func (t *TraceInspector) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	t.loggersLock.Lock()
	loggers := append([]types.Logger(nil), t.loggers...)
	t.loggersLock.Unlock()

	if len(loggers) == 0 {
		return
	}

	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		if logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}
