package wasserstein

import (
	"fmt"
	"math"
)

// IsNonDecreasing reports whether g[i] <= g[i+1] for every i.
// It is the cheap gate in front of Repair.
func IsNonDecreasing(g []float64) bool {
	for i := 1; i < len(g); i++ {
		if !(g[i-1] <= g[i]) {
			return false
		}
	}

	return true
}

// Repair returns the least-squares projection of g onto the cone of
// non-decreasing sequences (isotonic regression).
//
// Implementation:
//   - Stage 1: Reject non-finite input; return a copy of g when it is
//     already non-decreasing (identity, no work).
//   - Stage 2: Pool adjacent violators: push values as unit-weight blocks,
//     merging the last two blocks into their weighted mean while they are
//     out of order.
//   - Stage 3: Expand blocks and verify the result.
//
// Errors:
//   - ErrMonotonicityRepair — NaN/Inf in g, or a result that fails the
//     non-decreasing check.
//
// Complexity:
//   - Time O(n) amortized, Space O(n).
func Repair(g []float64) ([]float64, error) {
	for i, v := range g {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: g[%d] = %g", ErrMonotonicityRepair, i, v)
		}
	}
	if IsNonDecreasing(g) {
		return append([]float64(nil), g...), nil
	}

	q := pav(g)
	if !IsNonDecreasing(q) {
		return nil, ErrMonotonicityRepair
	}

	return q, nil
}

// pav runs pool-adjacent-violators with unit weights.
func pav(g []float64) []float64 {
	means := make([]float64, 0, len(g))
	sizes := make([]int, 0, len(g))
	for _, v := range g {
		means = append(means, v)
		sizes = append(sizes, 1)
		for k := len(means) - 1; k > 0 && means[k-1] > means[k]; k-- {
			n := sizes[k-1] + sizes[k]
			means[k-1] = (means[k-1]*float64(sizes[k-1]) + means[k]*float64(sizes[k])) / float64(n)
			sizes[k-1] = n
			means, sizes = means[:k], sizes[:k]
		}
	}

	out := make([]float64, 0, len(g))
	for i, m := range means {
		for j := 0; j < sizes[i]; j++ {
			out = append(out, m)
		}
	}

	return out
}
