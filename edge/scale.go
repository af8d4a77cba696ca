// SPDX-License-Identifier: MIT

package edge

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/heavyedge/profile"
)

// ScaleArea divides every profile of src by its trapezoid area over the
// whole grid, samples past the contact point counted as 0. Padding is
// scaled along with the row, so NaN stays NaN.
func ScaleArea(src profile.Source, fn func(profile.Batch) error, opts ...profile.Option) error {
	_, m := src.Shape()
	x := src.X()[:m]
	tmp := make([]float64, m)

	return profile.Batches(src, func(b profile.Batch) error {
		for i, y := range b.Ys {
			copy(tmp, y)
			profile.FillAfter(tmp, b.Ls[i], 0)
			area := integrate.Trapezoidal(x, tmp)
			if area == 0 || math.IsNaN(area) || math.IsInf(area, 0) {
				return fmt.Errorf("%w: %q: area %g", ErrZeroArea, b.Names[i], area)
			}
			floats.Scale(1/area, y)
		}

		return fn(b)
	}, opts...)
}

// ScalePlateau divides every profile of src by its first sample.
func ScalePlateau(src profile.Source, fn func(profile.Batch) error, opts ...profile.Option) error {
	return profile.Batches(src, func(b profile.Batch) error {
		for i, y := range b.Ys {
			h := y[0]
			if h == 0 || math.IsNaN(h) || math.IsInf(h, 0) {
				return fmt.Errorf("%w: %q: y[0] = %g", ErrZeroPlateau, b.Names[i], h)
			}
			for j := range y {
				y[j] /= h
			}
		}

		return fn(b)
	}, opts...)
}
