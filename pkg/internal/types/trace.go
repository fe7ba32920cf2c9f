package types

import "io"

// ScanResult holds everything a single sequential pass over a trace recovers:
// the sentinel-delimited line groups, in the order they were opened, and the
// last line seen that carries the transform-size marker (empty when absent).
type ScanResult struct {
	Segments [][]string
	SizeLine string
}

// TraceScanner segments an instruction trace into regions of interest. The
// scan is a single ordered pass; sentinel-toggle state makes line order
// significant, so implementations must not reorder input.
type TraceScanner interface {
	ConnectLogger(...Logger)

	GetComponentMetadata() ComponentMetadata

	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	Scan(r io.Reader) (ScanResult, error)

	ScanFile(path string) (ScanResult, error)

	SetComponentMetadata(name string, id string)
}
