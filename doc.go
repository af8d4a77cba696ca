// Package heavyedge analyzes edge profiles of coated substrates: height
// curves that run along a plateau, fall off at the coating edge and end at a
// contact point, after which only bare substrate remains.
//
// 🚀 What is heavyedge?
//
//	A pure-Go toolkit for datasets of thousands of such profiles:
//		• Fréchet mean in quantile space (Wasserstein-2), streamed in batches
//		• Pointwise (Euclidean) mean for comparison
//		• Monotonicity repair of averaged quantile functions
//		• Two-segment breakpoint regression locating the plateau end
//		• Area/plateau scaling, edge trimming and padding
//		• SQLite-backed profile stores, plots and a CLI
//
// ✨ Why quantile space?
//
//   - Averaging profiles pointwise blurs their edges into staircases.
//   - Averaging quantile functions transports mass instead, so the mean of
//     plateaus ending at 40 and 60 is a plateau ending at 50.
//
// Packages:
//
//	profile/     — dataset contract (Source, Batch), in-memory datasets, batching
//	wasserstein/ — quantile transform, repair, accumulator, barycenter, distance
//	mean/        — streaming Wasserstein and Euclidean means over a Source
//	segreg/      — Muggeo-style breakpoint fit and prediction
//	edge/        — area/plateau scaling, trimming and padding
//	store/       — SQLite profile store with embedded migrations
//	chart/       — profile and fitted-model plots
//	config/      — viper-backed configuration
//	logging/     — zerolog-backed structured logging
//	cli/         — cobra commands behind cmd/heavyedge
//
// Quick ASCII example:
//
//	 ─────────╮
//	          ╰──╮
//	             ╰─ ·  ·  ·
//	plateau   edge  contact point, then padding
//
//	go install github.com/katalvlaran/heavyedge/cmd/heavyedge@latest
package heavyedge
