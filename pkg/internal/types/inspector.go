package types

// TraceInspector orchestrates the full extraction-and-validation pipeline:
// trace file -> scanner -> complex arrays -> reference transform -> accuracy
// statistics. Every stage materializes its output before the next runs.
type TraceInspector interface {
	ConnectLogger(...Logger)

	GetComponentMetadata() ComponentMetadata

	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	Inspect(path string) (*InspectionReport, error)

	SetComponentMetadata(name string, id string)
}
