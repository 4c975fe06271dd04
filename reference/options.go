// SPDX-License-Identifier: MIT

package reference

// Defaults for Integral.
const (
	// DefaultNodes is the Gauss–Legendre point count. Smooth integrands
	// converge to machine precision far below this; the margin serves
	// endpoint-singular ones.
	DefaultNodes = 512

	// DefaultConcurrency of 0 evaluates the integrand serially.
	DefaultConcurrency = 0
)

const (
	panicNodesInvalid       = "reference: WithNodes: n must be > 0"
	panicConcurrencyInvalid = "reference: WithConcurrency: c must be >= 0"
)

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error).
type Option func(*Options)

// Options is the resolved configuration of Integral.
type Options struct {
	nodes       int // > 0; DefaultNodes
	concurrency int // >= 0; DefaultConcurrency
}

// WithNodes sets the number of Gauss–Legendre points.
// Panics when n ≤ 0.
func WithNodes(n int) Option {
	if n <= 0 {
		panic(panicNodesInvalid)
	}

	return func(o *Options) { o.nodes = n }
}

// WithConcurrency sets how many goroutines evaluate the integrand.
// 0 and 1 both mean serial evaluation; the integrand must then be safe for
// concurrent use when c > 1. Panics when c < 0.
func WithConcurrency(c int) Option {
	if c < 0 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *Options) { o.concurrency = c }
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := Options{
		nodes:       DefaultNodes,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
