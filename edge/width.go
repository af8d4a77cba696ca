// SPDX-License-Identifier: MIT

package edge

import (
	"fmt"

	"github.com/katalvlaran/heavyedge/profile"
)

// Widths are the output geometry of Trim and Pad: W1 samples up to and
// including the contact point, W2 substrate samples after it.
type Widths struct {
	W1 int
	W2 int
}

// TrimWidths resolves the geometry of Trim over src. A width ≤ 0 selects
// the shortest valid length; otherwise W1 = int(width·resolution).
// W2 is the smallest substrate length M−L of the dataset.
func TrimWidths(src profile.Source, width float64, opts ...profile.Option) (Widths, error) {
	return widths(src, width, func(ls []int) int { return minInt(ls) }, opts)
}

// PadWidths resolves the geometry of Pad over src. A width ≤ 0 selects the
// longest valid length; otherwise W1 = int(width·resolution).
func PadWidths(src profile.Source, width float64, opts ...profile.Option) (Widths, error) {
	return widths(src, width, func(ls []int) int { return maxInt(ls) }, opts)
}

func widths(src profile.Source, width float64, auto func([]int) int, opts []profile.Option) (Widths, error) {
	_, m := src.Shape()
	ls, err := profile.Lengths(src, opts...)
	if err != nil {
		return Widths{}, err
	}
	if len(ls) == 0 {
		return Widths{}, nil
	}

	w := Widths{W2: m - maxInt(ls)}
	if width > 0 {
		w.W1 = int(width * src.Resolution())
	} else {
		w.W1 = auto(ls)
	}
	if w.W1 < 1 {
		return Widths{}, fmt.Errorf("%w: width %g gives %d samples", ErrWidth, width, w.W1)
	}

	return w, nil
}

// Trim cuts every profile to Y[L−W1 : L+W2] and hands the batch to fn.
// The output rows have width W1+W2 and valid length W1.
//
// Errors:
//   - ErrWidth — some profile is shorter than W1.
func Trim(src profile.Source, width float64, fn func(profile.Batch) error, opts ...profile.Option) error {
	w, err := TrimWidths(src, width, opts...)
	if err != nil {
		return err
	}

	return profile.Batches(src, func(b profile.Batch) error {
		for i, y := range b.Ys {
			l := b.Ls[i]
			if l < w.W1 {
				return fmt.Errorf("%w: %q: length %d < %d", ErrWidth, b.Names[i], l, w.W1)
			}
			b.Ys[i] = append([]float64(nil), y[l-w.W1:l+w.W2]...)
			b.Ls[i] = w.W1
		}

		return fn(b)
	}, opts...)
}

// Pad shifts every profile right so that its contact point lands at index
// W1−1, fills the gap with the plateau height y[0] and keeps W2 substrate
// samples. The output rows have width W1+W2 and valid length W1.
//
// Errors:
//   - ErrWidth — some profile is longer than W1.
func Pad(src profile.Source, width float64, fn func(profile.Batch) error, opts ...profile.Option) error {
	w, err := PadWidths(src, width, opts...)
	if err != nil {
		return err
	}

	return profile.Batches(src, func(b profile.Batch) error {
		for i, y := range b.Ys {
			l := b.Ls[i]
			if l > w.W1 {
				return fmt.Errorf("%w: %q: length %d > %d", ErrWidth, b.Names[i], l, w.W1)
			}
			row := make([]float64, w.W1+w.W2)
			shift := w.W1 - l
			for j := 0; j < shift; j++ {
				row[j] = y[0]
			}
			copy(row[shift:], y[:l+w.W2])
			b.Ys[i] = row
			b.Ls[i] = w.W1
		}

		return fn(b)
	}, opts...)
}

func minInt(s []int) int {
	v := s[0]
	for _, x := range s[1:] {
		if x < v {
			v = x
		}
	}

	return v
}

func maxInt(s []int) int {
	v := s[0]
	for _, x := range s[1:] {
		if x > v {
			v = x
		}
	}

	return v
}
