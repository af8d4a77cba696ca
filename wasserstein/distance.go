package wasserstein

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Distance returns the Wasserstein-2 distance between the densities f1 over
// x1 and f2 over x2:
//
//	d(f1, f2)² = ∫₀¹ (Q1(t) − Q2(t))² dt
//
// approximated with gridNum probabilities and the trapezoidal rule. The
// weights need not be normalized.
//
// Errors are those of Grid and Quantile.
func Distance(x1, f1, x2, f2 []float64, gridNum int) (float64, error) {
	t, err := Grid(gridNum)
	if err != nil {
		return 0, err
	}
	q1, err := Quantile(x1, f1, t)
	if err != nil {
		return 0, err
	}
	q2, err := Quantile(x2, f2, t)
	if err != nil {
		return 0, err
	}

	d := floats.SubTo(make([]float64, gridNum), q1, q2)
	floats.Mul(d, d)

	return math.Sqrt(integrate.Trapezoidal(t, d)), nil
}
