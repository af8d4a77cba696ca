// SPDX-License-Identifier: MIT

package mean

import (
	"fmt"

	"github.com/katalvlaran/heavyedge/profile"
	"github.com/katalvlaran/heavyedge/wasserstein"
)

// Wasserstein returns the Fréchet mean of the profiles of src under the
// Wasserstein-2 metric, sampled on src.X(), together with its valid length L.
// The result has exactly L samples; its last sample is the contact point 0.
//
// Implementation:
//   - Stage 1: stream src in batches (profile.WithBatchSize; 0 = one batch).
//   - Stage 2: for every profile, wasserstein.Accumulator.Add(x[:L], y[:L])
//     adds its quantile function on a gridNum-point probability grid and its
//     trapezoid area.
//   - Stage 3: average, repair monotonicity if needed, recover the density
//     on x and rescale by the mean area.
//
// Errors:
//   - ErrEmptyDataset                       — src has no profile.
//   - wasserstein.ErrInvalidGrid            — gridNum < 2.
//   - wasserstein.ErrDegenerateDistribution — a profile with zero,
//     negative or non-finite area; the first one aborts the call.
//   - wasserstein.ErrMonotonicityRepair     — repair failed.
//
// Complexity:
//   - Time O(N·(M + gridNum·log M)), Space O(BatchSize·M + gridNum).
func Wasserstein(src profile.Source, gridNum int, opts ...profile.Option) ([]float64, int, error) {
	acc, err := wasserstein.NewAccumulator(gridNum)
	if err != nil {
		return nil, 0, err
	}
	n, m := src.Shape()
	if n == 0 {
		return nil, 0, ErrEmptyDataset
	}
	x := src.X()

	err = profile.Batches(src, func(b profile.Batch) error {
		if err := b.Validate(m); err != nil {
			return err
		}
		for i, y := range b.Ys {
			l := b.Ls[i]
			if err := acc.Add(x[:l], y[:l]); err != nil {
				return fmt.Errorf("profile %q: %w", b.Names[i], err)
			}
		}

		return nil
	}, opts...)
	if err != nil {
		return nil, 0, err
	}

	return acc.Result(x)
}
