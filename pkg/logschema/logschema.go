package logschema

// Log schema constants for fftrace structured logs.
const (
	SchemaID    = "fftrace.log.v1"
	FieldSchema = "log_schema"

	FieldTimestamp = "ts"
	FieldLevel     = "level"
	FieldMessage   = "msg"
	FieldLogger    = "logger"
	FieldCaller    = "caller"
	FieldStack     = "stack"

	FieldComponent = "component"
	FieldEvent     = "event"
	FieldResult    = "result"
	FieldError     = "error"
	FieldTraceFile = "trace_file"
	FieldSegment   = "segment"
)

// LogRecord is a generic map representation of a log entry.
type LogRecord map[string]interface{}
