package wasserstein_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/heavyedge/wasserstein"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arange returns [0, 1, ..., n-1] as float64.
func arange(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}

	return x
}

// TestQuantile_Uniform checks the quantile of a uniform density on [0, 10].
func TestQuantile_Uniform(t *testing.T) {
	x := arange(11)
	f := make([]float64, len(x))
	for i := range f {
		f[i] = 0.1
	}

	q, err := wasserstein.Quantile(x, f, []float64{0, 0.5, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 5, 10}, q, 1e-9)
}

// TestQuantile_Unnormalized shows that weights are normalized internally.
func TestQuantile_Unnormalized(t *testing.T) {
	x := arange(11)
	f := make([]float64, len(x))
	for i := range f {
		f[i] = 42
	}
	grid, err := wasserstein.Grid(5)
	require.NoError(t, err)

	q, err := wasserstein.Quantile(x, f, grid)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 2.5, 5, 7.5, 10}, q, 1e-9)
}

// TestQuantile_LeadingZeroMass verifies the generalized inverse skips a
// zero-mass prefix and pins the last value to the last support point.
func TestQuantile_LeadingZeroMass(t *testing.T) {
	x := arange(5)
	q, err := wasserstein.Quantile(x, []float64{0, 0, 1, 1, 1}, []float64{0, 0.5, 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, q[0])
	assert.InDelta(t, 2.75, q[1], 1e-12)
	assert.Equal(t, 4.0, q[2])
}

func TestQuantile_Errors(t *testing.T) {
	t3 := []float64{0, 0.5, 1}

	_, err := wasserstein.Quantile([]float64{0}, []float64{1}, t3)
	assert.ErrorIs(t, err, wasserstein.ErrInvalidGrid, "single-point support")

	_, err = wasserstein.Quantile([]float64{0, 1, 2}, []float64{1, 1}, t3)
	assert.ErrorIs(t, err, wasserstein.ErrInvalidGrid, "length mismatch")

	_, err = wasserstein.Quantile([]float64{0, 2, 1}, []float64{1, 1, 1}, t3)
	assert.ErrorIs(t, err, wasserstein.ErrInvalidGrid, "unsorted x")

	_, err = wasserstein.Quantile([]float64{0, 1, 1}, []float64{1, 1, 1}, t3)
	assert.ErrorIs(t, err, wasserstein.ErrInvalidGrid, "duplicate x")

	_, err = wasserstein.Quantile(arange(3), []float64{1, 1, 1}, []float64{0.1, 0.5, 1})
	assert.ErrorIs(t, err, wasserstein.ErrInvalidGrid, "t must start at 0")

	_, err = wasserstein.Quantile(arange(3), []float64{1, 1, 1}, []float64{0, 0.5, 0.5, 1})
	assert.ErrorIs(t, err, wasserstein.ErrInvalidGrid, "t must be strictly increasing")

	_, err = wasserstein.Quantile(arange(3), []float64{1, -1, 1}, t3)
	assert.ErrorIs(t, err, wasserstein.ErrNegativeWeight)

	_, err = wasserstein.Quantile(arange(3), []float64{0, 0, 0}, t3)
	assert.ErrorIs(t, err, wasserstein.ErrDegenerateDistribution)

	_, err = wasserstein.Quantile(arange(3), []float64{1, math.Inf(1), 1}, t3)
	assert.ErrorIs(t, err, wasserstein.ErrDegenerateDistribution)
}

func TestGrid(t *testing.T) {
	for _, n := range []int{2, 3, 10, 999, 1000} {
		g, err := wasserstein.Grid(n)
		require.NoError(t, err)
		require.Len(t, g, n)
		assert.Equal(t, 0.0, g[0])
		assert.Equal(t, 1.0, g[n-1], "end point must be exact for n=%d", n)
		assert.True(t, wasserstein.IsNonDecreasing(g))
	}

	_, err := wasserstein.Grid(1)
	assert.ErrorIs(t, err, wasserstein.ErrInvalidGrid)
}

func TestCumulativeTrapezoid(t *testing.T) {
	g := wasserstein.CumulativeTrapezoid([]float64{0, 1, 3}, []float64{2, 2, 4})
	assert.Equal(t, []float64{0, 2, 8}, g)

	assert.Empty(t, wasserstein.CumulativeTrapezoid(nil, nil))
}
