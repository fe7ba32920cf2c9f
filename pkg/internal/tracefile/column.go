package tracefile

import (
	"strings"

	"github.com/fftrace/fftrace/pkg/internal/utils"
)

// dataColumnIndex is the 0-based whitespace-split field holding the data /
// opcode-tag payload in a trace line.
const dataColumnIndex = 6

// DataColumn splits a trace line on arbitrary whitespace and returns its data
// column. Lines without enough fields report ok == false and are excluded
// from extraction entirely.
func DataColumn(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) <= dataColumnIndex {
		return "", false
	}
	return fields[dataColumnIndex], true
}

// DataColumns extracts the data column from each line that has one. Short
// lines are silently dropped.
func DataColumns(lines []string) []string {
	cols := make([]string, 0, len(lines))
	for _, line := range lines {
		if col, ok := DataColumn(line); ok {
			cols = append(cols, col)
		}
	}
	return cols
}

// FilterFloatLoads keeps only the lines carrying a floating-load instruction.
func FilterFloatLoads(lines []string, marker string) []string {
	return utils.Filter(lines, func(line string) bool {
		return strings.Contains(line, marker)
	})
}
