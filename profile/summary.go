package profile

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// LengthSummary describes the distribution of valid lengths in a dataset.
type LengthSummary struct {
	Count  int
	Min    int
	Max    int
	Mean   float64
	StdDev float64
	Median float64
}

// Summarize computes a LengthSummary of ls. An empty input yields the zero value.
func Summarize(ls []int) LengthSummary {
	if len(ls) == 0 {
		return LengthSummary{}
	}
	v := make([]float64, len(ls))
	for i, l := range ls {
		v[i] = float64(l)
	}
	sort.Float64s(v)
	mean, std := stat.MeanStdDev(v, nil)
	if len(v) < 2 {
		std = 0
	}

	return LengthSummary{
		Count:  len(v),
		Min:    int(floats.Min(v)),
		Max:    int(floats.Max(v)),
		Mean:   mean,
		StdDev: std,
		Median: stat.Quantile(0.5, stat.Empirical, v, nil),
	}
}
