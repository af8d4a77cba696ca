package wasserstein

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid returns n evenly spaced probabilities t[0] = 0 … t[n-1] = 1.
// The end point is set exactly so that Quantile lands on the last support
// point. n must be at least 2.
func Grid(n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: probability grid needs >= 2 points, got %d", ErrInvalidGrid, n)
	}
	t := floats.Span(make([]float64, n), 0, 1)
	t[n-1] = 1

	return t, nil
}

// Quantile converts a non-negative weight function f over x into its
// quantile function evaluated at the probabilities t.
//
// Implementation:
//   - Stage 1: Validate x (len ≥ 2, strictly increasing), f (same length,
//     no negative weight) and t (strictly increasing from exactly 0 to 1).
//   - Stage 2: G = CumulativeTrapezoid(x, f) / G[last], so f need not be
//     normalized beforehand.
//   - Stage 3: Q[i] = interp(t[i], G, x); Q[last] = x[last].
//
// Behavior highlights:
//   - Pinning Q[last] to x[last] makes the transport land exactly on the
//     contact point whatever the rounding of the integral.
//   - Leading zero mass is skipped: for t = 0 the right-most x with G = 0 is
//     returned.
//
// Errors:
//   - ErrInvalidGrid            — malformed x or t.
//   - ErrNegativeWeight         — some f[i] < 0.
//   - ErrDegenerateDistribution — f integrates to zero or a non-finite value.
//
// Complexity:
//   - Time O(len(x) + len(t)·log len(x)), Space O(len(x) + len(t)).
func Quantile(x, f, t []float64) ([]float64, error) {
	if err := checkSupport(x, f); err != nil {
		return nil, err
	}
	if err := checkProbabilities(t); err != nil {
		return nil, err
	}
	for i, v := range f {
		if v < 0 {
			return nil, fmt.Errorf("%w: f[%d] = %g", ErrNegativeWeight, i, v)
		}
	}
	q := make([]float64, len(t))
	if err := quantileInto(q, make([]float64, len(x)), x, f, t); err != nil {
		return nil, err
	}

	return q, nil
}

// quantileInto is Quantile without validation. g is scratch of len(x).
func quantileInto(dst, g, x, f, t []float64) error {
	g = cumulativeTrapezoidInto(g, x, f)
	total := g[len(g)-1]
	if !(total > 0) || math.IsInf(total, 0) {
		return fmt.Errorf("%w: total mass %g", ErrDegenerateDistribution, total)
	}
	for i := range g {
		g[i] /= total
	}
	for i, p := range t {
		dst[i] = interp(p, g, x)
	}
	dst[len(dst)-1] = x[len(x)-1]

	return nil
}

func checkSupport(x, f []float64) error {
	switch {
	case len(x) < 2:
		return fmt.Errorf("%w: support needs >= 2 points, got %d", ErrInvalidGrid, len(x))
	case len(f) != len(x):
		return fmt.Errorf("%w: len(x)=%d, len(f)=%d", ErrInvalidGrid, len(x), len(f))
	case !strictlyIncreasing(x):
		return fmt.Errorf("%w: x must be strictly increasing", ErrInvalidGrid)
	}

	return nil
}

func checkProbabilities(t []float64) error {
	switch {
	case len(t) < 2:
		return fmt.Errorf("%w: probability grid needs >= 2 points", ErrInvalidGrid)
	case t[0] != 0 || t[len(t)-1] != 1:
		return fmt.Errorf("%w: probability grid must span [0, 1]", ErrInvalidGrid)
	case !strictlyIncreasing(t):
		return fmt.Errorf("%w: probability grid must be strictly increasing", ErrInvalidGrid)
	}

	return nil
}
