// SPDX-License-Identifier: MIT

package budget

// Option configures a Budget at construction.
type Option func(*options)

type options struct {
	clock Clock
}

// WithClock replaces the monotonic clock, typically with a fake in tests.
// A nil clock keeps the default.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

func gatherOptions(opts ...Option) options {
	o := options{clock: SystemClock()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
