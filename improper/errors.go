package improper

import "errors"

var (
	// ErrExponentRange indicates a singularity exponent p outside [0, 1),
	// for which the algebraic substitution does not produce a finite integral.
	ErrExponentRange = errors.New("improper: exponent must satisfy 0 <= p < 1")

	// ErrNonPositiveBound indicates a lower bound a ≤ 0, where ln a is undefined.
	ErrNonPositiveBound = errors.New("improper: lower bound must be positive")
)
