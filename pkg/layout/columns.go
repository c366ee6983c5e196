package layout

// ColumnPolicy selects how a token's x-origin is mapped to a column index.
type ColumnPolicy int

const (
	// ColumnFirstMatch scans baselines in ascending order and takes the
	// first one within tolerance. Compatibility behavior and the default.
	ColumnFirstMatch ColumnPolicy = iota

	// ColumnNearest takes the baseline with the smallest distance to the
	// token, regardless of tolerance.
	ColumnNearest
)

// String returns a string representation of the policy.
func (p ColumnPolicy) String() string {
	switch p {
	case ColumnNearest:
		return "nearest"
	default:
		return "first-match"
	}
}

// ColumnIndex maps a token's x-origin to a 1-based column index by
// scanning the baselines in ascending order and returning the first one
// within xTolerance. This is a first-match scan, not a nearest-baseline
// search: a token sitting between two baselines, within tolerance of both,
// is assigned the lower-indexed one. When no baseline qualifies (or the
// baseline set is empty) the token falls back to column 1.
func ColumnIndex(x float64, baselines []float64, xTolerance float64) int {
	for i, b := range baselines {
		if abs(x-b) <= xTolerance {
			return i + 1
		}
	}
	return 1
}

// NearestColumnIndex maps a token's x-origin to the 1-based index of the
// baseline closest to it. Since baselines ascend, the scan stops as soon
// as the distance starts growing. Falls back to column 1 when the
// baseline set is empty.
func NearestColumnIndex(x float64, baselines []float64) int {
	if len(baselines) == 0 {
		return 1
	}
	best := 0
	for i := 1; i < len(baselines); i++ {
		if abs(x-baselines[i]) >= abs(x-baselines[best]) {
			break
		}
		best = i
	}
	return best + 1
}
