package problems

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/quadra/cubature"
	"github.com/katalvlaran/quadra/quadrature"
)

// integrands is the 1D catalog. Names are stable identifiers used by
// problem-set files and the CLI.
var integrands = map[string]quadrature.Func{
	// polynomials
	"zero": func(float64) float64 { return 0 },
	"one":  func(float64) float64 { return 1 },
	"x":    func(x float64) float64 { return x },
	"x^2":  func(x float64) float64 { return x * x },
	"x^3":  func(x float64) float64 { return x * x * x },
	"x^4":  func(x float64) float64 { return x * x * x * x },

	// elementary
	"sin": math.Sin,
	"cos": math.Cos,
	"exp": math.Exp,
	"ln":  math.Log,

	// exercises
	"exp_sin4x":      func(x float64) float64 { return math.Exp(x) * math.Sin(4*x) },
	"x_ln_x":         func(x float64) float64 { return x * math.Log(x) },
	"sin_over_x":     func(x float64) float64 { return math.Sin(x) / x },
	"sin_x_pow_-1/4": func(x float64) float64 { return math.Sin(x) * math.Pow(x, -0.25) },
	"exp_-x^2":       func(x float64) float64 { return math.Exp(-x * x) },
	"1/(1+x^2)":      func(x float64) float64 { return 1 / (1 + x*x) },
}

// integrands2 is the 2D catalog.
var integrands2 = map[string]cubature.Func2{
	"one":          func(float64, float64) float64 { return 1 },
	"x+y":          func(x, y float64) float64 { return x + y },
	"x_y^2":        func(x, y float64) float64 { return x * y * y },
	"2y_sinx_cosx": func(x, y float64) float64 { return 2 * y * math.Sin(x) * math.Cos(x) },
	"exp_-x^2-y^2": func(x, y float64) float64 { return math.Exp(-x*x - y*y) },
}

// Lookup returns the 1D integrand registered under name.
func Lookup(name string) (quadrature.Func, error) {
	f, ok := integrands[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntegrand, name)
	}

	return f, nil
}

// Lookup2 returns the 2D integrand registered under name.
func Lookup2(name string) (cubature.Func2, error) {
	f, ok := integrands2[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntegrand, name)
	}

	return f, nil
}

// LookupBound resolves an inner limit for double integrals: a numeric
// literal ("0", "-1.5") becomes a constant bound, anything else is a 1D
// catalog name ("sin", "x").
func LookupBound(s string) (cubature.Bound, error) {
	s = strings.TrimSpace(s)
	if c, err := strconv.ParseFloat(s, 64); err == nil {
		return cubature.Const(c), nil
	}
	f, err := Lookup(s)
	if err != nil {
		return nil, err
	}

	return cubature.Bound(f), nil
}

// Names returns the sorted 1D catalog names.
func Names() []string { return sortedKeys(integrands) }

// Names2 returns the sorted 2D catalog names.
func Names2() []string { return sortedKeys(integrands2) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
