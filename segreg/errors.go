// SPDX-License-Identifier: MIT

package segreg

import "errors"

var (
	// ErrBreakpointDomain indicates that the breakpoint search left, or could
	// not stay inside, the open data domain (x[0], x[last]): an initial guess
	// outside it, a vanishing slope change, a singular design, or an
	// exhausted step-halving budget.
	ErrBreakpointDomain = errors.New("segreg: breakpoint outside data domain")

	// ErrInvalidInput indicates malformed series: too few points, mismatched
	// lengths, x not strictly increasing or non-finite values.
	ErrInvalidInput = errors.New("segreg: invalid input")
)
