// SPDX-License-Identifier: MIT

package segreg

// Defaults of the breakpoint search.
const (
	DefaultTolerance    = 1e-5
	DefaultMaxIter      = 30
	DefaultMaxHalvings  = 64
	DefaultSlopeEpsilon = 1e-10
)

const (
	panicToleranceInvalid    = "segreg: WithTolerance: tol must be finite and >= 0"
	panicMaxIterInvalid      = "segreg: WithMaxIter: n must be >= 1"
	panicMaxHalvingsInvalid  = "segreg: WithMaxHalvings: n must be >= 1"
	panicSlopeEpsilonInvalid = "segreg: WithSlopeEpsilon: eps must be finite and >= 0"
)

// Options configures Fit.
type Options struct {
	// Tolerance stops the search once |psi_new − psi| ≤ Tolerance.
	Tolerance float64

	// MaxIter caps the outer iterations; reaching it sets reachedMax.
	MaxIter int

	// MaxHalvings caps the step-halving line search of one iteration.
	MaxHalvings int

	// SlopeEpsilon is the smallest accepted |b2|, relative to max(1, max|y|).
	SlopeEpsilon float64
}

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// DefaultOptions returns tol=1e-5, 30 iterations, 64 halvings, slope
// epsilon 1e-10.
func DefaultOptions() Options {
	return Options{
		Tolerance:    DefaultTolerance,
		MaxIter:      DefaultMaxIter,
		MaxHalvings:  DefaultMaxHalvings,
		SlopeEpsilon: DefaultSlopeEpsilon,
	}
}

// WithTolerance sets the convergence tolerance on the breakpoint.
func WithTolerance(tol float64) Option {
	if !(tol >= 0) || tol > maxFinite {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIter sets the outer iteration cap.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.MaxIter = n }
}

// WithMaxHalvings sets the step-halving budget per iteration.
func WithMaxHalvings(n int) Option {
	if n < 1 {
		panic(panicMaxHalvingsInvalid)
	}

	return func(o *Options) { o.MaxHalvings = n }
}

// WithSlopeEpsilon sets the relative threshold under which the slope change
// b2 is treated as zero.
func WithSlopeEpsilon(eps float64) Option {
	if !(eps >= 0) || eps > maxFinite {
		panic(panicSlopeEpsilonInvalid)
	}

	return func(o *Options) { o.SlopeEpsilon = eps }
}

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
