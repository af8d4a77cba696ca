package mean_test

import (
	"fmt"

	"github.com/katalvlaran/heavyedge/mean"
	"github.com/katalvlaran/heavyedge/profile"
)

// ExampleWasserstein streams two plateau profiles one at a time.
func ExampleWasserstein() {
	src, _ := profile.NewMemory(100, 1)
	for _, l := range []int{40, 60} {
		y := make([]float64, 100)
		for i := 0; i < l; i++ {
			y[i] = 1
		}
		_ = src.Append(y, l, fmt.Sprintf("plateau-%d", l))
	}

	f, l, err := mean.Wasserstein(src, 1000,
		profile.WithBatchSize(1),
		profile.WithLogger(func(msg string) { fmt.Println("batch", msg) }))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("L=%d height=%.3f\n", l, f[l/2])
	// Output:
	// batch 1/2
	// batch 2/2
	// L=50 height=1.000
}
