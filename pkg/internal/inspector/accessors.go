package inspector

import "github.com/fftrace/fftrace/pkg/internal/types"

// GetComponentMetadata returns the inspector metadata.
func (t *TraceInspector) GetComponentMetadata() types.ComponentMetadata {
	return t.componentMetadata
}

// SetComponentMetadata sets the inspector's name and id.
func (t *TraceInspector) SetComponentMetadata(name string, id string) {
	t.componentMetadata.Name = name
	t.componentMetadata.ID = id
}
