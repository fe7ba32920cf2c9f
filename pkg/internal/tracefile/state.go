package tracefile

// scanState is the two-variant toggle driven by sentinel transitions.
type scanState int

const (
	scanIdle scanState = iota
	scanCapturing
)

// step advances the toggle for one line. transition reports whether the
// previous/current line pair matched the sentinel values. emit is true when a
// complete open-to-close pair has been observed and the open segment must be
// closed; a lone transition with no prior open segment only opens capture.
func step(state scanState, transition bool) (next scanState, emit bool) {
	if !transition {
		return state, false
	}
	if state == scanCapturing {
		return scanIdle, true
	}
	return scanCapturing, false
}
