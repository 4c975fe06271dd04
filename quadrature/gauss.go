// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// legendre holds Gauss–Legendre nodes on [-1,1] and their weights, in
// matching order.
type legendre struct {
	nodes   []float64
	weights []float64
}

// legendreTable is keyed by point count. Values are the 15-digit
// tabulated constants; adding an order here extends Gauss and GaussNodes
// without touching callers.
var legendreTable = map[int]legendre{
	3: {
		nodes:   []float64{-0.774596669241483, 0, 0.774596669241483},
		weights: []float64{0.555555555555556, 0.888888888888889, 0.555555555555556},
	},
	4: {
		nodes:   []float64{-0.339981043584856, 0.339981043584856, -0.861136311594053, 0.861136311594053},
		weights: []float64{0.652145154862546, 0.652145154862546, 0.347854845137454, 0.347854845137454},
	},
}

// GaussNodes returns copies of the Gauss–Legendre nodes and weights on
// [-1,1] for an n-point rule. Orders without a table entry return
// ErrUnsupportedOrder.
func GaussNodes(n int) (nodes, weights []float64, err error) {
	rule, ok := legendreTable[n]
	if !ok {
		return nil, nil, fmt.Errorf("%w: n=%d", ErrUnsupportedOrder, n)
	}
	nodes = append([]float64(nil), rule.nodes...)
	weights = append([]float64(nil), rule.weights...)

	return nodes, weights, nil
}

// Gauss approximates ∫_a^b f(x) dx with n-point Gauss–Legendre quadrature.
//
// Algorithm:
//  1. Look up nodes ξᵢ and weights wᵢ on [-1,1] (n ∈ {3,4}).
//  2. Map each node: xᵢ = ½(b-a)ξᵢ + ½(b+a).
//  3. Return ½(b-a) · Σ wᵢ f(xᵢ).
//
// The rule is exact for polynomials of degree ≤ 2n-1, up to the precision
// of the tabulated constants.
//
// Errors:
//   - ErrUnsupportedOrder — n has no tabulated nodes.
func Gauss(f Func, a, b float64, n int) (float64, error) {
	rule, ok := legendreTable[n]
	if !ok {
		return 0, fmt.Errorf("%w: n=%d", ErrUnsupportedOrder, n)
	}

	half, mid := 0.5*(b-a), 0.5*(b+a)
	samples := make([]float64, len(rule.nodes))
	for i, xi := range rule.nodes {
		samples[i] = f(half*xi + mid)
	}

	return half * floats.Dot(rule.weights, samples), nil
}
