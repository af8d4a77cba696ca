package edge

import "errors"

var (
	// ErrZeroArea is returned by ScaleArea for a profile whose area is zero
	// or not finite.
	ErrZeroArea = errors.New("edge: profile area is zero")

	// ErrZeroPlateau is returned by ScalePlateau for a profile whose first
	// sample is zero or not finite.
	ErrZeroPlateau = errors.New("edge: plateau height is zero")

	// ErrWidth is returned by Trim and Pad when the requested width does not
	// fit a profile.
	ErrWidth = errors.New("edge: width does not fit profile")
)
