package cubature

// Func2 is a real integrand f(x, y).
type Func2 func(x, y float64) float64

// Bound gives an inner integration limit as a function of the outer
// variable x. Constant limits are plain closures: func(float64) float64 { return c }.
type Bound func(x float64) float64

// Const returns a Bound that ignores x and always yields c.
func Const(c float64) Bound {
	return func(float64) float64 { return c }
}
