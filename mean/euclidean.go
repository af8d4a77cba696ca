// SPDX-License-Identifier: MIT

package mean

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/heavyedge/profile"
)

// Euclidean returns the pointwise mean of every profile of src over the
// full width M.
//
// Samples at index >= L of a profile are read as 0, so NaN padding does not
// poison the mean. Progress goes to the optional profile.WithLogger callback.
//
// Errors:
//   - ErrEmptyDataset — src has no profile.
//   - any read or batch validation error of src, wrapped with the batch index.
func Euclidean(src profile.Source, opts ...profile.Option) ([]float64, error) {
	n, m := src.Shape()
	if n == 0 {
		return nil, ErrEmptyDataset
	}

	sum := make([]float64, m)
	row := make([]float64, m)
	err := profile.Batches(src, func(b profile.Batch) error {
		if err := b.Validate(m); err != nil {
			return err
		}
		for i, y := range b.Ys {
			copy(row, y)
			profile.FillAfter(row, b.Ls[i], 0)
			floats.Add(sum, row)
		}

		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	for j := range sum {
		sum[j] /= float64(n)
	}

	return sum, nil
}
