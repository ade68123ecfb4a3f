package numeric

import "math"

// Flt bundles the floating-point behaviour used by downstream code: every Flt
// type is Numeric, has an epsilon tolerance through Feq, supports the compound
// assignment operators and has the named constants below.
type Flt interface {
	Float
}

// IsNaN reports whether v is not a number.
func IsNaN[T Flt](v T) bool {
	return math.IsNaN(float64(v))
}

// IsInf reports whether v is an infinity of the given sign. A sign of zero
// matches either infinity.
func IsInf[T Flt](v T, sign int) bool {
	return math.IsInf(float64(v), sign)
}

// IsFinite reports whether v is neither an infinity nor NaN.
func IsFinite[T Flt](v T) bool {
	return !IsNaN(v) && !IsInf(v, 0)
}

// Inf returns positive infinity if sign >= 0 and negative infinity otherwise.
func Inf[T Flt](sign int) T {
	return T(math.Inf(sign))
}

// NaN returns a value that is not a number.
func NaN[T Flt]() T {
	return T(math.NaN())
}

// Named constants, rounded to the precision of T.
func Pi[T Flt]() T { return T(math.Pi) }
func Tau[T Flt]() T { return T(2 * math.Pi) }
func E[T Flt]() T { return T(math.E) }
func Sqrt2[T Flt]() T { return T(math.Sqrt2) }
func FracOneSqrt2[T Flt]() T { return T(1 / math.Sqrt2) }
func FracPi2[T Flt]() T { return T(math.Pi / 2) }
func FracPi4[T Flt]() T { return T(math.Pi / 4) }
func Ln2[T Flt]() T { return T(math.Ln2) }
func Ln10[T Flt]() T { return T(math.Ln10) }
func Log2E[T Flt]() T { return T(math.Log2E) }
func Log10E[T Flt]() T { return T(math.Log10E) }
