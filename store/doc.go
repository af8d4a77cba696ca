// Package store keeps profile datasets in a single SQLite file and serves
// them as a profile.Source.
//
// Layout:
//
//	dataset  (id, name, m, resolution)      one row per file
//	profiles (idx, name, len, data)         one row per profile, idx = 0..N-1
//
// data holds the M samples of a row as little-endian float64 values,
// snappy-compressed. Samples past len are kept as written (usually NaN).
// The schema is versioned with golang-migrate from embedded migrations and
// brought up to date on every Create and Open.
//
// A Store is meant for one goroutine at a time; the engines read it
// sequentially through Slice.
package store
