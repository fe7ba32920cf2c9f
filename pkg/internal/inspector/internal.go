package inspector

import (
	"sync"

	"github.com/fftrace/fftrace/pkg/internal/arraybuilder"
	"github.com/fftrace/fftrace/pkg/internal/types"
)

// buildArrays decodes every segment into a complex array, preserving segment
// order. Segments are independent once the sequential scan has produced
// them, so decoding may fan out when concurrency is enabled.
func (t *TraceInspector) buildArrays(segments [][]string, size int) [][]complex128 {
	arrays := make([][]complex128, len(segments))

	if !t.concurrent || len(segments) < 2 {
		for i, seg := range segments {
			arrays[i] = t.buildOne(i, seg, size)
		}
		return arrays
	}

	var wg sync.WaitGroup
	for i, seg := range segments {
		wg.Add(1)
		go func(i int, seg []string) {
			defer wg.Done()
			arrays[i] = t.buildOne(i, seg, size)
		}(i, seg)
	}
	wg.Wait()

	return arrays
}

func (t *TraceInspector) buildOne(index int, segment []string, size int) []complex128 {
	samples, dropped := arraybuilder.Build(segment, size, t.floatLoad)

	if len(dropped) > 0 {
		t.NotifyLoggers(types.WarnLevel,
			"buildArrays: dropped undecodable payloads",
			"component", t.componentMetadata,
			"segment", index,
			"dropped", len(dropped))
	}
	t.NotifyLoggers(types.DebugLevel,
		"buildArrays: segment decoded",
		"component", t.componentMetadata,
		"segment", index,
		"samples", len(samples))

	return samples
}
