// Package quadrature defines the integrand and rule types.
package quadrature

import (
	"fmt"
	"strings"
)

// Func is a real integrand f(x). It must be free of side effects for the
// rules to stay referentially transparent.
type Func func(x float64) float64

// Rule selects one of the fixed quadrature formulas.
//
//   - RuleTrapezoidal — composite trapezoid, O(h²).
//   - RuleSimpson     — composite Simpson 1/3, O(h⁴), odd n coerced to n+1.
//   - RuleMidpoint    — composite midpoint, O(h²).
//   - RuleGaussian    — Gauss–Legendre with n ∈ {3,4} points.
type Rule int

const (
	// RuleTrapezoidal is the composite trapezoidal rule.
	RuleTrapezoidal Rule = iota

	// RuleSimpson is the composite Simpson 1/3 rule.
	RuleSimpson

	// RuleMidpoint is the composite midpoint rule.
	RuleMidpoint

	// RuleGaussian is fixed-order Gauss–Legendre quadrature.
	RuleGaussian
)

// ruleNames maps every accepted spelling to its Rule; lookup is on the
// lower-cased, trimmed input.
var ruleNames = map[string]Rule{
	"trapezoidal": RuleTrapezoidal,
	"trapezoid":   RuleTrapezoidal,
	"trap":        RuleTrapezoidal,
	"simpson":     RuleSimpson,
	"midpoint":    RuleMidpoint,
	"mid":         RuleMidpoint,
	"gaussian":    RuleGaussian,
	"gauss":       RuleGaussian,
}

// String returns the canonical lower-case name of r.
func (r Rule) String() string {
	switch r {
	case RuleTrapezoidal:
		return "trapezoidal"
	case RuleSimpson:
		return "simpson"
	case RuleMidpoint:
		return "midpoint"
	case RuleGaussian:
		return "gaussian"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// ParseRule resolves a rule name such as "simpson" or "Gauss".
// Unknown names return ErrUnknownRule.
func ParseRule(s string) (Rule, error) {
	r, ok := ruleNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRule, s)
	}

	return r, nil
}

// UnmarshalText lets a Rule be decoded from YAML/JSON/flag text.
func (r *Rule) UnmarshalText(text []byte) error {
	parsed, err := ParseRule(string(text))
	if err != nil {
		return err
	}
	*r = parsed

	return nil
}

// MarshalText encodes r by its canonical name.
func (r Rule) MarshalText() ([]byte, error) {
	if r < RuleTrapezoidal || r > RuleGaussian {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRule, int(r))
	}

	return []byte(r.String()), nil
}
