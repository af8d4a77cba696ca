package profile

import "fmt"

// Batches streams src in contiguous batches and hands each one to fn.
//
// Implementation:
//   - Stage 1: Resolve options; BatchSize 0 means a single batch of N rows.
//   - Stage 2: For i in [0, total): read Slice(i*size, (i+1)*size), call fn,
//     then report "i+1/total" to the logger.
//
// Behavior highlights:
//   - Strictly sequential; only the current batch is referenced, so memory
//     is bounded by one batch regardless of N.
//   - The first error (read or callback) aborts the iteration and is
//     returned wrapped with the failing batch index.
//   - An empty source calls fn zero times and returns nil.
//
// Complexity:
//   - Time O(N·M) reads, Space O(BatchSize·M).
func Batches(src Source, fn func(Batch) error, opts ...Option) error {
	o := Gather(opts...)
	n, _ := src.Shape()
	if n == 0 {
		return nil
	}

	size := o.BatchSize
	if size == 0 || size > n {
		size = n
	}
	total := NumBatches(n, size)

	for i := 0; i < total; i++ {
		b, err := src.Slice(i*size, (i+1)*size)
		if err != nil {
			return fmt.Errorf("batch %d/%d: %w", i+1, total, err)
		}
		if err = fn(b); err != nil {
			return fmt.Errorf("batch %d/%d: %w", i+1, total, err)
		}
		o.log(fmt.Sprintf("%d/%d", i+1, total))
	}

	return nil
}

// NumBatches returns ceil(n/size). size must be positive.
func NumBatches(n, size int) int {
	return n/size + boolToInt(n%size != 0)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
