// Package problems turns integration exercises into data: a catalog of
// named integrands, a YAML-decodable Problem definition, evaluation of a
// Problem into an error-annotated Result, and the built-in Homework set.
//
// Problem kinds:
//
//	definite     ∫_a^b f(x) dx with any quadrature.Rule
//	algebraic    ∫_a^b f(x)·(x−a)^(−p) dx via improper.Algebraic
//	logarithmic  ∫_a^b f(x)/x dx via improper.Logarithmic
//	double       ∫_a^b ∫_{lower(x)}^{upper(x)} f(x,y) dy dx via cubature
//
// Problem-set file (YAML):
//
//	problems:
//	  - name: exp-sin-simpson
//	    kind: definite
//	    integrand: exp_sin4x
//	    rule: simpson
//	    a: 1
//	    b: 2
//	    n: 10
//	  - name: region
//	    kind: double
//	    integrand: 2y_sinx_cosx
//	    rule: gaussian
//	    lower: sin
//	    upper: cos
//	    a: 0
//	    b: 0.7853981633974483
//	    n: 3
//	    m: 3
//	    exact: 0.125
//
// Results are compared against Exact when given; otherwise against
// reference.Integral of the untransformed integrand. Double problems have
// no automatic reference and must carry Exact.
package problems
