package tracefile

import "github.com/fftrace/fftrace/pkg/internal/types"

// GetComponentMetadata returns the scanner metadata.
func (s *TraceScanner) GetComponentMetadata() types.ComponentMetadata {
	return s.componentMetadata
}

// SetComponentMetadata sets the scanner's name and id.
func (s *TraceScanner) SetComponentMetadata(name string, id string) {
	s.componentMetadata.Name = name
	s.componentMetadata.ID = id
}
