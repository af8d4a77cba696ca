// Package wasserstein implements optimal-transport tools for 1-D edge
// profiles: quantile transforms, monotonicity repair, the Fréchet
// (Wasserstein-2) barycenter and the Wasserstein distance.
//
// 🚀 Why quantile space?
//
//	A non-negative profile over x, scaled to unit area, is a probability
//	density. Its quantile function Q(t) = G⁻¹(t) carries the same
//	information, and in one dimension the optimal transport map between two
//	densities is the monotone rearrangement Q₂∘G₁. Consequently:
//	  • the Wasserstein-2 distance is the L² distance between quantiles;
//	  • the Fréchet mean of N densities is the density whose quantile is
//	    the pointwise mean of the N quantiles.
//	Averaging densities directly would blur shapes (two plateaus ending at
//	40 and 60 average to a staircase); averaging quantiles moves mass
//	instead, so the mean plateau simply ends at 50.
//
// ✨ Key pieces:
//   - Grid / Quantile     — probability grid and the density → quantile transform;
//   - IsNonDecreasing / Repair — pool-adjacent-violators projection onto
//     the non-decreasing cone;
//   - Accumulator         — constant-memory running sum of quantiles and
//     areas, the sufficient statistic of a streaming barycenter;
//   - Recover             — quantile → cumulative → density on the spatial grid;
//   - Mean / Distance     — in-memory barycenter and W₂ distance.
//
// ⚙️ Usage:
//
//	acc, _ := wasserstein.NewAccumulator(1000)
//	for each profile y with valid length l {
//	    if err := acc.Add(x[:l], y[:l]); err != nil { ... }
//	}
//	mean, L, err := acc.Result(x)
//
// Complexity:
//
//   - Quantile: O(len(x) + len(t)·log len(x))
//   - Repair:   O(n)
//   - Result:   O(gridNum + L·log gridNum)
package wasserstein
