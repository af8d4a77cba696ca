// SPDX-License-Identifier: MIT

package profile

// DefaultBatchSize is the zero value of the batch size policy: load the
// whole dataset as a single batch.
const DefaultBatchSize = 0

const panicBatchSizeInvalid = "profile: WithBatchSize: size must be >= 0"

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error).
type Option func(*Options)

// Options is the resolved batching policy shared by the streaming engines.
type Options struct {
	// BatchSize is the number of profiles per batch; 0 loads everything at once.
	BatchSize int

	// Logger receives "i/total" progress messages; nil discards them.
	Logger Logger
}

// DefaultOptions returns the zero-configuration policy: one batch, no logger.
func DefaultOptions() Options {
	return Options{BatchSize: DefaultBatchSize}
}

// WithBatchSize sets the number of profiles loaded per batch.
// A size of 0 means "whole dataset". Negative sizes panic.
func WithBatchSize(size int) Option {
	if size < 0 {
		panic(panicBatchSizeInvalid)
	}

	return func(o *Options) { o.BatchSize = size }
}

// WithLogger installs a progress callback.
func WithLogger(fn Logger) Option {
	return func(o *Options) { o.Logger = fn }
}

// Gather applies opts over DefaultOptions, left to right.
func Gather(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func (o Options) log(msg string) {
	if o.Logger != nil {
		o.Logger(msg)
	}
}
