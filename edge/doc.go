// Package edge reshapes edge profiles before averaging or comparison.
//
// Every transform streams a profile.Source batch by batch and hands the
// transformed batch to a callback, so datasets larger than memory can be
// rewritten into a new store one batch at a time.
//
//   - ScaleArea    — divide each profile by its area (padding read as 0).
//   - ScalePlateau — divide each profile by its plateau height y[0].
//   - Trim         — cut every profile to w1 samples before its contact point
//     and w2 substrate samples after it.
//   - Pad          — left-pad every profile with its plateau height so that
//     all contact points line up at index w1.
//
// After Trim and Pad every output row has width w1+w2 and valid length w1.
package edge
