package inspector

import "github.com/fftrace/fftrace/pkg/internal/types"

// ConnectLogger registers loggers for the inspector and its collaborators.
func (t *TraceInspector) ConnectLogger(loggers ...types.Logger) {
	if len(loggers) == 0 {
		return
	}

	n := 0
	for _, l := range loggers {
		if l != nil {
			loggers[n] = l
			n++
		}
	}
	if n == 0 {
		return
	}
	loggers = loggers[:n]

	t.loggersLock.Lock()
	t.loggers = append(t.loggers, loggers...)
	t.loggersLock.Unlock()

	if t.scanner != nil {
		t.scanner.ConnectLogger(loggers...)
	}
	if t.analyzer != nil {
		t.analyzer.ConnectLogger(loggers...)
	}
}
