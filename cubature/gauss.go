// SPDX-License-Identifier: MIT

package cubature

import (
	"github.com/katalvlaran/quadra/quadrature"
	"gonum.org/v1/gonum/floats"
)

// Gauss approximates ∫_a^b ∫_{g1(x)}^{g2(x)} f(x,y) dy dx with a tensor
// Gauss–Legendre rule of n points in x and m points in y.
//
// Algorithm:
//  1. Fetch (ξᵢ, wᵢ) for n and (ηⱼ, vⱼ) for m from quadrature.GaussNodes.
//  2. xᵢ = ½(b-a)ξᵢ + ½(b+a).
//  3. At each xᵢ: yᵢⱼ = ½(g2−g1)ηⱼ + ½(g2+g1), inner = ½(g2−g1)·Σⱼ vⱼ f(xᵢ, yᵢⱼ).
//  4. Return ½(b-a) · Σᵢ wᵢ·innerᵢ.
//
// Errors:
//   - quadrature.ErrUnsupportedOrder — n or m has no tabulated nodes.
func Gauss(f Func2, g1, g2 Bound, a, b float64, n, m int) (float64, error) {
	xNodes, xWeights, err := quadrature.GaussNodes(n)
	if err != nil {
		return 0, err
	}
	yNodes, yWeights, err := quadrature.GaussNodes(m)
	if err != nil {
		return 0, err
	}

	halfX, midX := 0.5*(b-a), 0.5*(b+a)
	inner := make([]float64, len(xNodes))
	samples := make([]float64, len(yNodes))
	for i, xi := range xNodes {
		x := halfX*xi + midX
		lo, hi := g1(x), g2(x)
		halfY, midY := 0.5*(hi-lo), 0.5*(hi+lo)
		for j, eta := range yNodes {
			samples[j] = f(x, halfY*eta+midY)
		}
		inner[i] = halfY * floats.Dot(yWeights, samples)
	}

	return halfX * floats.Dot(xWeights, inner), nil
}
