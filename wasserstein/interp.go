package wasserstein

import "sort"

// interp evaluates the piecewise-linear function through (xp, fp) at v.
// xp must be non-decreasing. Values left of xp[0] clamp to fp[0], values at
// or right of xp[last] clamp to fp[last]. On a run of equal knots the
// right-most one is used, which makes interp a generalized inverse when
// (xp, fp) = (G, x) and G has flat parts.
func interp(v float64, xp, fp []float64) float64 {
	n := len(xp)
	j := sort.Search(n, func(i int) bool { return xp[i] > v })
	switch j {
	case 0:
		return fp[0]
	case n:
		return fp[n-1]
	}
	x0, x1 := xp[j-1], xp[j]

	return fp[j-1] + (fp[j]-fp[j-1])*(v-x0)/(x1-x0)
}

// CumulativeTrapezoid returns G with G[0] = 0 and
// G[i] = G[i-1] + (x[i]-x[i-1])·(f[i]+f[i-1])/2. x and f must have equal length.
func CumulativeTrapezoid(x, f []float64) []float64 {
	return cumulativeTrapezoidInto(make([]float64, len(x)), x, f)
}

func cumulativeTrapezoidInto(dst, x, f []float64) []float64 {
	if len(x) == 0 {
		return dst[:0]
	}
	dst = dst[:len(x)]
	dst[0] = 0
	for i := 1; i < len(x); i++ {
		dst[i] = dst[i-1] + 0.5*(x[i]-x[i-1])*(f[i]+f[i-1])
	}

	return dst
}

// strictlyIncreasing reports whether s[i] < s[i+1] for every i.
// NaN entries make it false.
func strictlyIncreasing(s []float64) bool {
	for i := 1; i < len(s); i++ {
		if !(s[i-1] < s[i]) {
			return false
		}
	}

	return true
}
