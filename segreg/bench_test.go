package segreg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/heavyedge/segreg"
)

func benchmarkFit(b *testing.B, n int) {
	x := make([]float64, n)
	y := make([]float64, n)
	knee := float64(n) / 2
	for i := range x {
		x[i] = float64(i)
		y[i] = 1 + 0.01*x[i] - 0.5*math.Max(x[i]-knee, 0) + 1e-3*math.Sin(x[i])
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := segreg.Fit(x, y, knee*0.7); err != nil {
			b.Fatalf("Fit: %v", err)
		}
	}
}

func BenchmarkFit_100(b *testing.B)   { benchmarkFit(b, 100) }
func BenchmarkFit_1000(b *testing.B)  { benchmarkFit(b, 1000) }
func BenchmarkFit_10000(b *testing.B) { benchmarkFit(b, 10000) }
