package store

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowCodec(t *testing.T) {
	y := []float64{0, 1.5, -2.25, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(-1), math.NaN()}
	blob := encodeRow(y)

	got := make([]float64, len(y))
	require.NoError(t, decodeRow(got, blob))
	for i := range y {
		assert.Equal(t, math.Float64bits(y[i]), math.Float64bits(got[i]), "bit pattern of sample %d", i)
	}

	err := decodeRow(make([]float64, len(y)+1), blob)
	assert.ErrorIs(t, err, ErrCorrupt, "wrong width")

	err = decodeRow(got, []byte{0xff, 0xff, 0xff})
	assert.ErrorIs(t, err, ErrCorrupt, "not snappy")
}

func TestRowCodec_Compresses(t *testing.T) {
	y := make([]float64, 4096)
	for i := range y {
		y[i] = math.NaN()
	}
	for i := 0; i < 1000; i++ {
		y[i] = 1
	}

	assert.Less(t, len(encodeRow(y)), 8*len(y)/10)
}
