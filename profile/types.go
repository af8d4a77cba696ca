package profile

// Batch is a contiguous block of profiles read from a Source.
//
// Fields:
//   - Ys    — rows of M samples each; only Ys[i][:Ls[i]] is meaningful.
//   - Ls    — valid length of every row (1 ≤ Ls[i] ≤ M).
//   - Names — identifier of every row.
//
// The three slices always have equal length.
type Batch struct {
	Ys    [][]float64
	Ls    []int
	Names []string
}

// Len returns the number of profiles in the batch.
func (b Batch) Len() int { return len(b.Ys) }

// Validate checks the structural invariants of b against dataset width m.
func (b Batch) Validate(m int) error {
	if len(b.Ls) != len(b.Ys) || len(b.Names) != len(b.Ys) {
		return ErrBatchMismatch
	}
	for i, y := range b.Ys {
		if len(y) != m {
			return ErrWidthMismatch
		}
		if b.Ls[i] < 1 || b.Ls[i] > m {
			return ErrInvalidLength
		}
	}

	return nil
}

// Source is a sequential, read-only profile dataset.
//
// Contract:
//   - X returns the shared spatial grid; len(X()) >= M.
//   - Shape returns (N, M): number of profiles and row width.
//   - Resolution returns the number of samples per unit length.
//   - Slice returns profiles [start, end); end is clamped to N. The batch
//     is owned by the caller, which may modify its rows.
//
// Engines never write through a Source.
type Source interface {
	X() []float64
	Shape() (n, m int)
	Resolution() float64
	Slice(start, end int) (Batch, error)
}

// Logger receives free-text progress messages ("i/total"). It has no
// effect on results.
type Logger func(msg string)
