// Package profile defines the data model shared by every heavyedge engine:
// edge profiles sampled on a common spatial grid, the batched Source
// abstraction that streams them, and small helpers around valid lengths.
//
// What is an edge profile?
//
//	A profile is a row of M non-negative height samples taken on the grid
//	x[i] = i / resolution. Only the first L samples (1 ≤ L ≤ M) are valid;
//	the last valid sample is the contact point and everything after it is
//	padding (zero or NaN) standing for substrate / no data.
//
//	      plateau
//	  ───────────╮
//	             ╰──╮  edge
//	                ╰─●  contact point (index L-1)
//	                    · · · · padding · · · ·
//
// Sources and batches:
//
//	Engines never hold a whole dataset. They pull contiguous [start,end)
//	ranges from a Source through Batches, which hands exactly one Batch at a
//	time to a callback and reports "i/total" progress to an optional Logger.
//
//	err := profile.Batches(src, func(b profile.Batch) error {
//	    for i, y := range b.Ys {
//	        use(y[:b.Ls[i]])
//	    }
//	    return nil
//	}, profile.WithBatchSize(512))
//
// Implementations of Source in this module:
//   - Memory      — in-memory rows, used by tests and small tools;
//   - store.Store — SQLite-backed dataset (see package store).
package profile
