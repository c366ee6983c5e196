package layout

import "sort"

// ClusterPolicy selects how x-coordinates are clustered into column
// baselines.
type ClusterPolicy int

const (
	// ClusterGreedy compares each coordinate against the last accepted
	// baseline and keeps cluster seeds as baselines. This is the
	// compatibility behavior and the default.
	ClusterGreedy ClusterPolicy = iota

	// ClusterCentroid compares against the running mean of the current
	// cluster and emits the mean as the baseline. Opt-in correction for
	// the greedy variant's drift; produces different baselines.
	ClusterCentroid
)

// String returns a string representation of the policy.
func (p ClusterPolicy) String() string {
	switch p {
	case ClusterCentroid:
		return "centroid"
	default:
		return "greedy"
	}
}

// ClusterCoordinates reduces the x-origins of all tokens on a page to an
// ascending sequence of column baselines, one per discovered column.
//
// The coordinates are sorted ascending and the smallest seeds the first
// cluster. Each subsequent coordinate c starts a new baseline iff
// c > lastBaseline + xTolerance; otherwise it is absorbed and discarded,
// so only the seed of each cluster survives. Because each coordinate is
// compared against the last accepted baseline rather than the cluster's
// seed, clusters can widen by accumulation; adjacent baselines are still
// strictly more than xTolerance apart by construction.
//
// Empty input yields nil. A negative tolerance behaves like zero, giving
// one baseline per distinct coordinate.
func ClusterCoordinates(xs []float64, xTolerance float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	if xTolerance < 0 {
		xTolerance = 0
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	baselines := []float64{sorted[0]}
	for _, c := range sorted[1:] {
		if c > baselines[len(baselines)-1]+xTolerance {
			baselines = append(baselines, c)
		}
	}
	return baselines
}

// ClusterCentroids is the centroid-based alternative to
// ClusterCoordinates. A coordinate joins the current cluster while it lies
// within xTolerance of the cluster's running mean; the mean of each closed
// cluster becomes its baseline. This removes the greedy variant's drift
// but is not output-compatible with it, so it is never used unless
// explicitly selected.
func ClusterCentroids(xs []float64, xTolerance float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	if xTolerance < 0 {
		xTolerance = 0
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	var baselines []float64
	sum := sorted[0]
	count := 1

	for _, c := range sorted[1:] {
		mean := sum / float64(count)
		if c-mean > xTolerance {
			baselines = append(baselines, mean)
			sum, count = c, 1
			continue
		}
		sum += c
		count++
	}
	baselines = append(baselines, sum/float64(count))

	return baselines
}
