// SPDX-License-Identifier: MIT

package wasserstein

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Accumulator is the running state of a streaming Fréchet mean: the sum of
// quantile functions on a fixed probability grid, the sum of profile areas
// and the profile count. Its size depends only on the grid, never on the
// number of profiles added.
//
// An Accumulator is not safe for concurrent use.
type Accumulator struct {
	t    []float64 // probability grid
	sum  []float64 // Σ Q_k(t)
	area float64   // Σ A_k
	n    int

	// scratch, reused across Add calls
	q []float64
	g []float64
	f []float64
}

// NewAccumulator returns an empty accumulator on a grid of gridNum
// probabilities (see Grid).
func NewAccumulator(gridNum int) (*Accumulator, error) {
	t, err := Grid(gridNum)
	if err != nil {
		return nil, err
	}

	return &Accumulator{
		t:   t,
		sum: make([]float64, gridNum),
		q:   make([]float64, gridNum),
	}, nil
}

// Add folds one profile into the accumulator. x and y must be the valid
// prefix of the profile (padding excluded) and have equal length.
//
// Implementation:
//   - Stage 1: area A = ∫ y dx (trapezoid over x).
//   - Stage 2: density f = y / A; Q = quantile of f on the shared grid.
//   - Stage 3: sum += Q, area += A, n++.
//
// Errors:
//   - ErrDegenerateDistribution — fewer than two samples, or A ≤ 0 / not finite.
//   - ErrInvalidGrid            — x not strictly increasing or lengths differ.
//   - ErrNegativeWeight         — some y[i] < 0.
//
// On error the accumulator is left unchanged.
func (a *Accumulator) Add(x, y []float64) error {
	if len(y) < 2 {
		return fmt.Errorf("%w: profile has %d valid samples", ErrDegenerateDistribution, len(y))
	}
	if err := checkSupport(x, y); err != nil {
		return err
	}
	for i, v := range y {
		if v < 0 {
			return fmt.Errorf("%w: y[%d] = %g", ErrNegativeWeight, i, v)
		}
	}

	area := integrate.Trapezoidal(x, y)
	if !(area > 0) || math.IsInf(area, 0) {
		return fmt.Errorf("%w: area %g", ErrDegenerateDistribution, area)
	}

	a.f = grow(a.f, len(y))
	a.g = grow(a.g, len(x))
	floats.ScaleTo(a.f, 1/area, y)
	if err := quantileInto(a.q, a.g, x, a.f, a.t); err != nil {
		return err
	}

	floats.Add(a.sum, a.q)
	a.area += area
	a.n++

	return nil
}

// Count returns the number of profiles added so far.
func (a *Accumulator) Count() int { return a.n }

// MeanArea returns the plain mean of the areas added so far (0 when empty).
func (a *Accumulator) MeanArea() float64 {
	if a.n == 0 {
		return 0
	}

	return a.area / float64(a.n)
}

// MeanQuantile returns the averaged quantile function g = Σ Q_k / N,
// repaired onto the non-decreasing cone when averaging broke monotonicity.
func (a *Accumulator) MeanQuantile() ([]float64, error) {
	if a.n == 0 {
		return nil, ErrEmptyDataset
	}
	g := make([]float64, len(a.sum))
	for i, v := range a.sum {
		g[i] = v / float64(a.n)
	}
	if IsNonDecreasing(g) {
		return g, nil
	}

	return Repair(g)
}

// Result recovers the barycenter profile on the spatial grid x.
// It returns the profile and its valid length L (not padded to len(x)).
//
// Errors:
//   - ErrEmptyDataset       — nothing was added.
//   - ErrMonotonicityRepair — from Repair.
func (a *Accumulator) Result(x []float64) ([]float64, int, error) {
	q, err := a.MeanQuantile()
	if err != nil {
		return nil, 0, err
	}
	f, l := Recover(x, a.t, q, a.MeanArea())

	return f, l, nil
}

// contactSnap is the fraction of the grid spacing by which q[last] may fall
// short of a grid point and still count as reaching it.
const contactSnap = 1e-6

// Recover converts a non-decreasing quantile function q over probabilities
// t back into a profile on the spatial grid x, scaled to the given area.
//
// Implementation:
//   - Stage 1: L = #{i : x[i] ≤ q[last] + ε} (floor(q[last])+1 on an integer
//     grid), ε = contactSnap·(x[1]-x[0]). Averaging N copies of a grid point
//     can land a few ulps below it, and the contact sample must survive.
//   - Stage 2: cdf[i] = interp(x[i], q, t) for i < L.
//   - Stage 3: f[i] = area·(cdf[i+1]-cdf[i])/(x[i+1]-x[i]); f[L-1] = 0 so
//     the result ends at its contact point like its inputs.
//
// Complexity:
//   - Time O(L·log len(q)), Space O(L).
func Recover(x, t, q []float64, area float64) ([]float64, int) {
	last := q[len(q)-1]
	if len(x) > 1 {
		last += contactSnap * (x[1] - x[0])
	}
	l := sort.Search(len(x), func(i int) bool { return x[i] > last })
	if l == 0 {
		return nil, 0
	}

	cdf := make([]float64, l)
	for i := range cdf {
		cdf[i] = interp(x[i], q, t)
	}
	f := make([]float64, l)
	for i := 0; i < l-1; i++ {
		f[i] = area * (cdf[i+1] - cdf[i]) / (x[i+1] - x[i])
	}

	return f, l
}

// Mean computes the barycenter of in-memory profiles ys with valid lengths
// ls over the shared grid x. It is the non-streaming counterpart of feeding
// an Accumulator and calling Result.
func Mean(x []float64, ys [][]float64, ls []int, gridNum int) ([]float64, int, error) {
	if len(ys) != len(ls) {
		return nil, 0, fmt.Errorf("%w: %d profiles, %d lengths", ErrInvalidGrid, len(ys), len(ls))
	}
	acc, err := NewAccumulator(gridNum)
	if err != nil {
		return nil, 0, err
	}
	for i, y := range ys {
		l := ls[i]
		if l < 0 || l > len(y) || l > len(x) {
			return nil, 0, fmt.Errorf("%w: profile %d: length %d outside grid", ErrInvalidGrid, i, l)
		}
		if err = acc.Add(x[:l], y[:l]); err != nil {
			return nil, 0, fmt.Errorf("profile %d: %w", i, err)
		}
	}

	return acc.Result(x)
}

func grow(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}

	return s[:n]
}
