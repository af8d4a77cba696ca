// Package mean computes the average profile of a dataset that may be too
// large to hold in memory.
//
// Two estimators are provided, both streaming over a profile.Source in
// batches of profile.WithBatchSize rows:
//
//   - Wasserstein: the Fréchet mean under the Wasserstein-2 metric. Each
//     profile is scaled to unit area, mapped to its quantile function on a
//     shared probability grid and folded into a wasserstein.Accumulator; the
//     averaged quantile is mapped back to a profile and rescaled by the mean
//     area. Shapes are transported, not blurred.
//   - Euclidean: the pointwise arithmetic mean over the full row width, with
//     samples past each contact point read as substrate height 0.
//
// Only the accumulator survives between batches, so memory is bounded by
// one batch plus O(gridNum) (Wasserstein) or O(M) (Euclidean). Batching
// never changes the result: profiles are folded in dataset order whatever
// the batch size.
package mean
