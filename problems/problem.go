package problems

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quadra/cubature"
	"github.com/katalvlaran/quadra/improper"
	"github.com/katalvlaran/quadra/quadrature"
	"github.com/katalvlaran/quadra/reference"
)

// Kind selects which engine evaluates a Problem.
type Kind string

const (
	// KindDefinite is a plain 1D integral; the empty Kind means the same.
	KindDefinite Kind = "definite"

	// KindAlgebraic is ∫_a^b f(x)·(x−a)^(−Exponent) dx.
	KindAlgebraic Kind = "algebraic"

	// KindLogarithmic is ∫_a^b f(x)/x dx.
	KindLogarithmic Kind = "logarithmic"

	// KindDouble is ∫_a^b ∫_{Lower(x)}^{Upper(x)} f(x,y) dy dx.
	KindDouble Kind = "double"
)

// Problem is one integration exercise.
//
// Fields by kind:
//   - all:          Name, Integrand, A, B, N, optional Exact
//   - definite:     Rule (defaults to trapezoidal when omitted)
//   - algebraic:    Exponent p ∈ [0,1); always composite Simpson
//   - logarithmic:  always composite Simpson; A > 0
//   - double:       Rule ∈ {simpson, gaussian}, Lower, Upper, M, Exact
type Problem struct {
	Name      string          `yaml:"name"`
	Kind      Kind            `yaml:"kind,omitempty"`
	Integrand string          `yaml:"integrand"`
	Rule      quadrature.Rule `yaml:"rule"`
	A         float64         `yaml:"a"`
	B         float64         `yaml:"b"`
	N         int             `yaml:"n"`
	M         int             `yaml:"m,omitempty"`
	Exponent  float64         `yaml:"exponent,omitempty"`
	Lower     string          `yaml:"lower,omitempty"`
	Upper     string          `yaml:"upper,omitempty"`
	Exact     *float64        `yaml:"exact,omitempty"`
}

// Result is an evaluated Problem.
type Result struct {
	Problem Problem
	reference.Comparison
}

// kind resolves the empty Kind to KindDefinite.
func (p Problem) kind() Kind {
	if p.Kind == "" {
		return KindDefinite
	}

	return p.Kind
}

// Validate checks the structure of p without evaluating any integrand.
//
// Errors:
//   - ErrInvalidProblem   — empty name, n ≤ 0, m ≤ 0 (double), or a rule the kind does not support.
//   - ErrUnknownKind      — Kind outside the declared set.
//   - ErrUnknownIntegrand — Integrand, Lower or Upper not in the catalog.
func (p Problem) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidProblem)
	}
	if p.N <= 0 {
		return fmt.Errorf("%w: %s: n must be > 0, got %d", ErrInvalidProblem, p.Name, p.N)
	}

	switch p.kind() {
	case KindDefinite, KindAlgebraic, KindLogarithmic:
		if _, err := Lookup(p.Integrand); err != nil {
			return fmt.Errorf("%s: %w", p.Name, err)
		}
	case KindDouble:
		if p.M <= 0 {
			return fmt.Errorf("%w: %s: m must be > 0, got %d", ErrInvalidProblem, p.Name, p.M)
		}
		if p.Rule != quadrature.RuleSimpson && p.Rule != quadrature.RuleGaussian {
			return fmt.Errorf("%w: %s: double integrals support simpson or gaussian, got %s",
				ErrInvalidProblem, p.Name, p.Rule)
		}
		if _, err := Lookup2(p.Integrand); err != nil {
			return fmt.Errorf("%s: %w", p.Name, err)
		}
		for _, bound := range []string{p.Lower, p.Upper} {
			if _, err := LookupBound(bound); err != nil {
				return fmt.Errorf("%s: bound: %w", p.Name, err)
			}
		}
	default:
		return fmt.Errorf("%w: %s: %q", ErrUnknownKind, p.Name, p.Kind)
	}

	return nil
}

// Evaluate runs p through its engine and compares the result with Exact,
// or with reference.Integral of the untransformed integrand when Exact is
// nil. Engine errors (unsupported Gauss order, exponent range, ...) are
// returned wrapped with the problem name.
func Evaluate(p Problem) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if p.kind() == KindDouble && p.Exact == nil {
		return Result{}, fmt.Errorf("%w: %s: double integrals need an exact value", ErrNoReference, p.Name)
	}

	approx, ref, err := p.run()
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", p.Name, err)
	}
	var exact float64
	if p.Exact != nil {
		exact = *p.Exact
	} else {
		exact = reference.Integral(ref, p.A, p.B)
	}

	return Result{Problem: p, Comparison: reference.Compare(approx, exact)}, nil
}

// run evaluates the approximation and returns the 1D integrand the
// reference value should be computed from (nil for double integrals).
// Validate must have passed.
func (p Problem) run() (approx float64, ref quadrature.Func, err error) {
	switch p.kind() {
	case KindAlgebraic:
		f, _ := Lookup(p.Integrand)
		a, pw := p.A, p.Exponent
		ref = func(x float64) float64 { return f(x) * math.Pow(x-a, -pw) }
		approx, err = improper.Algebraic(f, p.A, p.B, p.Exponent, p.N)

	case KindLogarithmic:
		f, _ := Lookup(p.Integrand)
		ref = func(x float64) float64 { return f(x) / x }
		approx, err = improper.Logarithmic(f, p.A, p.B, p.N)

	case KindDouble:
		f, _ := Lookup2(p.Integrand)
		lower, _ := LookupBound(p.Lower)
		upper, _ := LookupBound(p.Upper)
		if p.Rule == quadrature.RuleGaussian {
			approx, err = cubature.Gauss(f, lower, upper, p.A, p.B, p.N, p.M)
		} else {
			approx = cubature.Simpson(f, lower, upper, p.A, p.B, p.N, p.M)
		}

	default:
		f, _ := Lookup(p.Integrand)
		ref = f
		approx, err = quadrature.Integrate(p.Rule, f, p.A, p.B, p.N)
	}

	return approx, ref, err
}
