package types

// InspectionReport is the fully materialized result of one trace inspection:
// the detected transform size, the recovered arrays, the reference transform
// of the input, and the accuracy statistics. Partial reports are possible when
// extraction fails midway; absent arrays are nil.
type InspectionReport struct {
	Size      int
	Input     []complex128
	Output    []complex128
	Reference []complex128
	Stats     ErrorStats
}

// Reporter renders an inspection report for human consumption. Rendering is a
// collaborator concern: a failing Reporter never affects the computed verdict.
type Reporter interface {
	Render(report *InspectionReport) error
}
