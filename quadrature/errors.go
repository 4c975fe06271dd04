// SPDX-License-Identifier: MIT

package quadrature

import "errors"

var (
	// ErrUnsupportedOrder is returned when Gauss–Legendre quadrature is
	// requested for a point count that has no tabulated nodes and weights.
	ErrUnsupportedOrder = errors.New("quadrature: unsupported Gauss-Legendre order")

	// ErrUnknownRule indicates a Rule value (or rule name) outside the
	// supported set.
	ErrUnknownRule = errors.New("quadrature: unknown rule")
)
