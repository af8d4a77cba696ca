// SPDX-License-Identifier: MIT

package segreg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const maxFinite = math.MaxFloat64

// numCoef is the width of the design matrix: 1, x, U(psi), V(psi).
const numCoef = 4

// minPoints is one observation per unknown.
const minPoints = numCoef

// Params are the coefficients of y = B0 + B1·x + B2·(x − Psi)₊.
type Params struct {
	B0  float64 // intercept
	B1  float64 // slope left of the breakpoint
	B2  float64 // change of slope at the breakpoint
	Psi float64 // breakpoint
}

// At evaluates the model at a single abscissa.
func (p Params) At(x float64) float64 {
	return p.B0 + p.B1*x + p.B2*math.Max(x-p.Psi, 0)
}

// Predict evaluates the model at every x.
func (p Params) Predict(x []float64) []float64 {
	return Predict(x, p.B0, p.B1, p.B2, p.Psi)
}

// Predict evaluates b0 + b1·x + b2·(x − psi)₊ at every x. It is pure.
func Predict(x []float64, b0, b1, b2, psi float64) []float64 {
	p := Params{B0: b0, B1: b1, B2: b2, Psi: psi}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = p.At(v)
	}

	return out
}

// Fit estimates the two-segment model on (x, y) starting from the
// breakpoint guess psi0.
//
// Implementation:
//   - Stage 1: validate the series and require x[0] < psi0 < x[last].
//   - Stage 2: solve [1, x, (x−psi)₊, −1{x>psi}]·(b0,b1,b2,gamma) ≈ y by
//     QR least squares; reject |b2| ≤ SlopeEpsilon·max(1, max|y|).
//   - Stage 3: RSS at psi with the refitted (b0,b1,b2); propose
//     psi + λ·gamma/b2 for λ = 1, ½, ¼ … (at most MaxHalvings times) until
//     the candidate is strictly inside the domain and its RSS is no larger.
//   - Stage 4: stop when the accepted move is ≤ Tolerance, otherwise
//     rebuild the breakpoint columns and repeat.
//
// The returned coefficients are those of the last solve together with the
// last accepted breakpoint. reachedMax is true when MaxIter iterations ran
// without meeting the tolerance; that is not an error.
//
// Errors:
//   - ErrInvalidInput     — fewer than 4 points, mismatched lengths, x not
//     strictly increasing, or non-finite values.
//   - ErrBreakpointDomain — psi0 outside (x[0], x[last]), vanishing slope
//     change, singular design, or step-halving budget exhausted.
//
// Complexity:
//   - Time O(MaxIter·n·(1 + MaxHalvings)), Space O(n).
func Fit(x, y []float64, psi0 float64, opts ...Option) (Params, bool, error) {
	o := gather(opts)
	if err := checkSeries(x, y); err != nil {
		return Params{}, false, err
	}
	lo, hi := x[0], x[len(x)-1]
	if !(psi0 > lo && psi0 < hi) {
		return Params{}, false, fmt.Errorf("%w: psi0=%g not in (%g, %g)", ErrBreakpointDomain, psi0, lo, hi)
	}

	n := len(x)
	design := mat.NewDense(n, numCoef, nil)
	for i, v := range x {
		design.Set(i, 0, 1)
		design.Set(i, 1, v)
	}
	target := mat.NewVecDense(n, y)
	var coef mat.VecDense

	scale := math.Max(1, math.Max(math.Abs(floats.Max(y)), math.Abs(floats.Min(y))))
	slopeEps := o.SlopeEpsilon * scale

	var p Params
	psi := psi0
	for iter := 1; iter <= o.MaxIter; iter++ {
		setBreakpointColumns(design, x, psi)
		if err := coef.SolveVec(design, target); err != nil {
			return Params{}, false, fmt.Errorf("%w: iteration %d: psi=%g: %v", ErrBreakpointDomain, iter, psi, err)
		}
		b0, b1, b2, gamma := coef.AtVec(0), coef.AtVec(1), coef.AtVec(2), coef.AtVec(3)
		if !(math.Abs(b2) > slopeEps) {
			return Params{}, false, fmt.Errorf("%w: iteration %d: slope change %g below %g", ErrBreakpointDomain, iter, b2, slopeEps)
		}

		p = Params{B0: b0, B1: b1, B2: b2, Psi: psi}
		rss := p.rss(x, y)
		cand, ok := p.lineSearch(x, y, gamma/b2, rss, o.MaxHalvings)
		if !ok {
			return Params{}, false, fmt.Errorf("%w: iteration %d: no admissible step after %d halvings", ErrBreakpointDomain, iter, o.MaxHalvings)
		}

		p.Psi = cand
		if math.Abs(cand-psi) <= o.Tolerance {
			return p, false, nil
		}
		psi = cand
	}

	return p, true, nil
}

// lineSearch halves the step until psi+λ·step is strictly inside the domain
// and its RSS does not exceed rss. p.Psi is the current breakpoint.
func (p Params) lineSearch(x, y []float64, step, rss float64, budget int) (float64, bool) {
	lo, hi := x[0], x[len(x)-1]
	lambda := 1.0
	for h := 0; h < budget; h++ {
		cand := p.Psi + lambda*step
		lambda /= 2
		if !(cand > lo && cand < hi) {
			continue
		}
		q := p
		q.Psi = cand
		if q.rss(x, y) <= rss {
			return cand, true
		}
	}

	return 0, false
}

func (p Params) rss(x, y []float64) float64 {
	var s float64
	for i, v := range x {
		r := y[i] - p.At(v)
		s += r * r
	}

	return s
}

func setBreakpointColumns(design *mat.Dense, x []float64, psi float64) {
	for i, v := range x {
		if v > psi {
			design.Set(i, 2, v-psi)
			design.Set(i, 3, -1)
		} else {
			design.Set(i, 2, 0)
			design.Set(i, 3, 0)
		}
	}
}

func checkSeries(x, y []float64) error {
	switch {
	case len(x) != len(y):
		return fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrInvalidInput, len(x), len(y))
	case len(x) < minPoints:
		return fmt.Errorf("%w: need >= %d points, got %d", ErrInvalidInput, minPoints, len(x))
	}
	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return fmt.Errorf("%w: non-finite value at %d", ErrInvalidInput, i)
		}
		if i > 0 && !(x[i-1] < x[i]) {
			return fmt.Errorf("%w: x must be strictly increasing (index %d)", ErrInvalidInput, i)
		}
	}

	return nil
}
