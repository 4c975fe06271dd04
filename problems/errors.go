// SPDX-License-Identifier: MIT

package problems

import "errors"

var (
	// ErrUnknownIntegrand indicates a catalog name with no registered function.
	ErrUnknownIntegrand = errors.New("problems: unknown integrand")

	// ErrUnknownKind indicates a Problem.Kind outside the supported set.
	ErrUnknownKind = errors.New("problems: unknown problem kind")

	// ErrInvalidProblem indicates a structurally invalid Problem
	// (missing name, non-positive n or m, unsupported rule for the kind).
	ErrInvalidProblem = errors.New("problems: invalid problem")

	// ErrNoReference indicates a problem for which no reference value can
	// be computed and none was supplied.
	ErrNoReference = errors.New("problems: no reference value")
)
