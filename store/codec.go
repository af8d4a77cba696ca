package store

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/golang/snappy"
)

// encodeRow packs y as little-endian float64 and compresses it.
func encodeRow(y []float64) []byte {
	raw := make([]byte, 8*len(y))
	for i, v := range y {
		binary.LittleEndian.PutUint64(raw[8*i:], math.Float64bits(v))
	}

	return snappy.Encode(nil, raw)
}

// decodeRow reverses encodeRow into dst, which must have the row width.
func decodeRow(dst []float64, blob []byte) error {
	raw, err := snappy.Decode(nil, blob)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if len(raw) != 8*len(dst) {
		return fmt.Errorf("%w: row has %d bytes, want %d", ErrCorrupt, len(raw), 8*len(dst))
	}
	for i := range dst {
		dst[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[8*i:]))
	}

	return nil
}
