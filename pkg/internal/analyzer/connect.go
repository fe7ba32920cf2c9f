package analyzer

import "github.com/fftrace/fftrace/pkg/internal/types"

// ConnectLogger registers loggers for the analyzer.
func (a *AccuracyAnalyzer) ConnectLogger(loggers ...types.Logger) {
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

	a.loggersLock.Lock()
	a.loggers = append(a.loggers, loggers...)
	a.loggersLock.Unlock()
}
