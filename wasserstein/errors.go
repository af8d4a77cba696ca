package wasserstein

import "errors"

var (
	// ErrEmptyDataset indicates that a barycenter was requested over zero profiles.
	ErrEmptyDataset = errors.New("wasserstein: empty dataset")

	// ErrDegenerateDistribution indicates a profile whose area is zero,
	// negative or not finite, so no density (and no quantile) exists.
	ErrDegenerateDistribution = errors.New("wasserstein: degenerate distribution")

	// ErrMonotonicityRepair indicates that the isotonic projection could not
	// produce a non-decreasing sequence (e.g. non-finite input).
	ErrMonotonicityRepair = errors.New("wasserstein: monotonicity repair failed")

	// ErrInvalidGrid indicates a spatial or probability grid that violates
	// its contract (too short, mismatched lengths, not strictly increasing,
	// or a probability grid not spanning [0, 1]).
	ErrInvalidGrid = errors.New("wasserstein: invalid grid")

	// ErrNegativeWeight indicates a negative sample in a weight function.
	ErrNegativeWeight = errors.New("wasserstein: negative weight")
)
