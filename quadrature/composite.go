package quadrature

// Composite Newton–Cotes rules.
//
// All three share the same grid: h = (b-a)/n and xᵢ = a + i·h, with the
// right endpoint sampled as b itself so that rounding in i·h never moves
// the last node off the interval.
//
// Complexity:
//
//	Time   = O(n) evaluations of f
//	Memory = O(1)

// Trapezoidal approximates ∫_a^b f(x) dx with n equal subintervals:
//
//	h · (½f(x₀) + Σ_{i=1}^{n-1} f(xᵢ) + ½f(xₙ))
//
// Exact for polynomials of degree ≤ 1; error O(h²).
func Trapezoidal(f Func, a, b float64, n int) float64 {
	h := (b - a) / float64(n)

	sum := 0.5*f(a) + 0.5*f(b)
	for i := 1; i < n; i++ {
		sum += f(a + float64(i)*h)
	}

	return h * sum
}

// Simpson approximates ∫_a^b f(x) dx with the composite Simpson 1/3 rule:
//
//	h/3 · (f(x₀) + 4·Σ_{odd i} f(xᵢ) + 2·Σ_{even i, 0<i<n} f(xᵢ) + f(xₙ))
//
// The rule pairs subintervals, so an odd n is silently raised to n+1;
// Simpson(f, a, b, 5) and Simpson(f, a, b, 6) are the same computation.
// Exact for polynomials of degree ≤ 3; error O(h⁴).
func Simpson(f Func, a, b float64, n int) float64 {
	n = EvenCount(n)
	h := (b - a) / float64(n)

	var odd, even float64
	for i := 1; i < n; i++ {
		y := f(a + float64(i)*h)
		if i%2 == 1 {
			odd += y
		} else {
			even += y
		}
	}

	return h / 3 * (f(a) + 4*odd + 2*even + f(b))
}

// Midpoint approximates ∫_a^b f(x) dx by sampling f at the centre of each
// of the n subintervals, xᵢ = a + (i+½)h, and returning h·Σ f(xᵢ).
// Exact for polynomials of degree ≤ 1; error O(h²).
func Midpoint(f Func, a, b float64, n int) float64 {
	h := (b - a) / float64(n)

	var sum float64
	for i := 0; i < n; i++ {
		sum += f(a + (float64(i)+0.5)*h)
	}

	return h * sum
}

// EvenCount returns the subdivision count Simpson-type rules actually use
// for n: n itself when even, n+1 otherwise.
func EvenCount(n int) int {
	if n%2 != 0 {
		return n + 1
	}

	return n
}
