package tracefile

import "github.com/fftrace/fftrace/pkg/internal/types"

// ConnectLogger registers loggers for the scanner.
func (s *TraceScanner) ConnectLogger(loggers ...types.Logger) {
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

	s.loggersLock.Lock()
	s.loggers = append(s.loggers, loggers...)
	s.loggersLock.Unlock()
}
