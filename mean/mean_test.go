package mean_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/heavyedge/mean"
	"github.com/katalvlaran/heavyedge/profile"
	"github.com/katalvlaran/heavyedge/wasserstein"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edge builds a plateau of height h up to index p, a linear descent to 0 at
// the contact point l-1 and NaN padding up to width m.
func edge(m, p, l int, h float64) []float64 {
	y := make([]float64, m)
	for i := range y {
		switch {
		case i < p:
			y[i] = h
		case i < l:
			y[i] = h * float64(l-1-i) / float64(l-1-p)
		default:
			y[i] = math.NaN()
		}
	}

	return y
}

// dataset returns n edge profiles of width m with varying plateaus,
// contact points and heights.
func dataset(t *testing.T, n, m int) *profile.Memory {
	t.Helper()
	src, err := profile.NewMemory(m, 1)
	require.NoError(t, err)
	for k := 0; k < n; k++ {
		l := m/2 + (k*7)%(m/2)
		p := l/3 + k%5
		h := 1 + 0.25*float64(k%4)
		require.NoError(t, src.Append(edge(m, p, l, h), l, fmt.Sprintf("P%02d", k)))
	}

	return src
}

func TestWasserstein_BatchingInvariance(t *testing.T) {
	src := dataset(t, 11, 120)

	ref, refL, err := mean.Wasserstein(src, 500)
	require.NoError(t, err)
	require.Greater(t, refL, 1)

	for _, size := range []int{1, 2, 3, 5, 11, 50} {
		got, l, err := mean.Wasserstein(src, 500, profile.WithBatchSize(size))
		require.NoError(t, err, "batch size %d", size)
		require.Equal(t, refL, l, "batch size %d", size)
		for i := range ref {
			assert.InEpsilon(t, ref[i]+1, got[i]+1, 1e-9, "batch size %d sample %d", size, i)
		}
	}
}

func TestWasserstein_ShiftedPlateaus(t *testing.T) {
	src, err := profile.NewMemory(100, 1)
	require.NoError(t, err)
	for _, l := range []int{40, 60} {
		y := make([]float64, 100)
		for i := 0; i < l; i++ {
			y[i] = 1
		}
		require.NoError(t, src.Append(y, l, fmt.Sprint(l)))
	}

	f, l, err := mean.Wasserstein(src, 1000, profile.WithBatchSize(1))
	require.NoError(t, err)
	assert.Equal(t, 50, l)
	assert.InDelta(t, 1.0, f[0], 1e-9)
	assert.InDelta(t, 1.0, f[l-2], 1e-9)
	assert.Equal(t, 0.0, f[l-1])

	// the blended mean is a staircase instead
	e, err := mean.Euclidean(src)
	require.NoError(t, err)
	assert.Equal(t, 1.0, e[10])
	assert.Equal(t, 0.5, e[50])
	assert.Equal(t, 0.0, e[70])
}

func TestWasserstein_IdenticalProfiles(t *testing.T) {
	const m, p, l = 100, 60, 80
	y := edge(m, p, l, 1)
	src, err := profile.NewMemory(m, 1)
	require.NoError(t, err)
	for k := 0; k < 3; k++ {
		require.NoError(t, src.Append(y, l, ""))
	}

	f, gotL, err := mean.Wasserstein(src, 2000, profile.WithBatchSize(2))
	require.NoError(t, err)
	require.Equal(t, l, gotL)
	for i := 0; i < l-1; i++ {
		assert.InDelta(t, (y[i]+y[i+1])/2, f[i], 0.02, "sample %d", i)
	}
}

func TestWasserstein_IdenticalProfilesDecimalResolution(t *testing.T) {
	for _, res := range []float64{10, 3, 7} {
		for n := 1; n <= 6; n++ {
			for l := 20; l < 60; l += 7 {
				src, err := profile.NewMemory(80, res)
				require.NoError(t, err)
				y := edge(80, l/2, l, 1)
				for k := 0; k < n; k++ {
					require.NoError(t, src.Append(y, l, ""))
				}

				_, gotL, err := mean.Wasserstein(src, 200)
				require.NoError(t, err)
				assert.Equal(t, l, gotL, "res=%g n=%d l=%d", res, n, l)
			}
		}
	}
}

func TestWasserstein_Progress(t *testing.T) {
	src := dataset(t, 10, 60)
	var msgs []string
	logger := func(msg string) { msgs = append(msgs, msg) }

	_, _, err := mean.Wasserstein(src, 100, profile.WithBatchSize(3), profile.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, []string{"1/4", "2/4", "3/4", "4/4"}, msgs)

	msgs = nil
	_, _, err = mean.Wasserstein(src, 100, profile.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, []string{"1/1"}, msgs)
}

func TestWasserstein_DegenerateAborts(t *testing.T) {
	src := dataset(t, 2, 40)
	require.NoError(t, src.Append(make([]float64, 40), 5, "flat"))
	require.NoError(t, src.Append(edge(40, 10, 30, 1), 30, "late"))

	var msgs []string
	_, _, err := mean.Wasserstein(src, 100, profile.WithBatchSize(2),
		profile.WithLogger(func(msg string) { msgs = append(msgs, msg) }))
	require.Error(t, err)
	assert.ErrorIs(t, err, wasserstein.ErrDegenerateDistribution)
	assert.Contains(t, err.Error(), "batch 2/2")
	assert.Contains(t, err.Error(), `"flat"`)
	assert.Equal(t, []string{"1/2"}, msgs, "no progress after the failing batch")
}

func TestEmptyDataset(t *testing.T) {
	src, err := profile.NewMemory(10, 1)
	require.NoError(t, err)

	_, _, err = mean.Wasserstein(src, 100)
	assert.ErrorIs(t, err, mean.ErrEmptyDataset)
	assert.ErrorIs(t, err, wasserstein.ErrEmptyDataset)

	_, err = mean.Euclidean(src)
	assert.ErrorIs(t, err, mean.ErrEmptyDataset)
}

func TestWasserstein_InvalidGrid(t *testing.T) {
	_, _, err := mean.Wasserstein(dataset(t, 2, 20), 1)
	assert.ErrorIs(t, err, wasserstein.ErrInvalidGrid)
}

func TestEuclidean_IdenticalProfiles(t *testing.T) {
	// dyadic samples keep every partial sum exact
	y := []float64{2, 2, 1.5, 0.75, 0.25, 0, math.NaN(), math.NaN()}
	src, err := profile.NewMemory(len(y), 1)
	require.NoError(t, err)
	for k := 0; k < 4; k++ {
		require.NoError(t, src.Append(y, 6, ""))
	}

	got, err := mean.Euclidean(src, profile.WithBatchSize(3))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 1.5, 0.75, 0.25, 0, 0, 0}, got)
}

func TestEuclidean_BatchingInvariance(t *testing.T) {
	src := dataset(t, 9, 64)

	ref, err := mean.Euclidean(src)
	require.NoError(t, err)
	require.Len(t, ref, 64)
	for _, v := range ref {
		require.False(t, math.IsNaN(v), "padding must not leak into the mean")
	}

	for _, size := range []int{1, 4, 9, 100} {
		got, err := mean.Euclidean(src, profile.WithBatchSize(size))
		require.NoError(t, err)
		assert.Equal(t, ref, got, "batch size %d", size)
	}
}
