package profile

import "math"

// Grid returns the spatial grid x[i] = i / resolution for i in [0, m).
func Grid(m int, resolution float64) []float64 {
	x := make([]float64, m)
	for i := range x {
		x[i] = float64(i) / resolution
	}

	return x
}

// Valid returns the meaningful prefix y[:l]. l is clamped to [0, len(y)].
func Valid(y []float64, l int) []float64 {
	switch {
	case l < 0:
		l = 0
	case l > len(y):
		l = len(y)
	}

	return y[:l]
}

// FillAfter overwrites every sample at index >= l with v, in place.
// It is typically used to turn NaN padding into zeros before integration.
func FillAfter(y []float64, l int, v float64) {
	for i := l; i < len(y); i++ {
		y[i] = v
	}
}

// PadTo returns y extended to width m with v. Rows already wider than m are
// returned unchanged (not truncated).
func PadTo(y []float64, m int, v float64) []float64 {
	if len(y) >= m {
		return y
	}
	out := make([]float64, m)
	copy(out, y)
	FillAfter(out, len(y), v)

	return out
}

// checkResolution validates a dataset resolution.
func checkResolution(res float64) error {
	if !(res > 0) || math.IsInf(res, 0) {
		return ErrInvalidResolution
	}

	return nil
}
