// SPDX-License-Identifier: MIT

package profile

import "errors"

// Sentinel errors. Every message is prefixed with "profile:"; callers match
// them with errors.Is, wrapping with context is allowed at outer boundaries.
var (
	// ErrInvalidLength is returned when a valid length L is outside [1, M].
	ErrInvalidLength = errors.New("profile: valid length out of range")

	// ErrWidthMismatch is returned when a row does not have exactly M samples.
	ErrWidthMismatch = errors.New("profile: row width does not match dataset")

	// ErrBatchMismatch is returned when Ys, Ls and Names have different lengths.
	ErrBatchMismatch = errors.New("profile: batch slices have different lengths")

	// ErrInvalidResolution is returned for a non-positive or non-finite resolution.
	ErrInvalidResolution = errors.New("profile: resolution must be finite and > 0")

	// ErrInvalidWidth is returned when a dataset is declared with M < 1.
	ErrInvalidWidth = errors.New("profile: dataset width must be >= 1")

	// ErrRange is returned by Slice when start/end do not describe a valid range.
	ErrRange = errors.New("profile: invalid index range")
)
