package numeric

import "math"

// Cast converts v to U, reporting whether the conversion succeeded.
//
// Integer conversions fail when v is outside the range of U. Float to integer
// conversions truncate toward zero and fail for NaN, infinities and values
// outside the range of U. Integer to float conversions always succeed but may
// round. Float to float conversions fail when a finite v is outside the finite
// range of U; NaN and infinities carry over.
func Cast[U, T Numeric](v T) (U, bool) {
	switch {
	case IsFloat[T]() && IsFloat[U]():
		f := float64(v)
		if !math.IsNaN(f) && !math.IsInf(f, 0) &&
			(f > float64(MaxValue[U]()) || f < float64(MinValue[U]())) {
			return 0, false
		}
		return U(f), true
	case IsFloat[T]():
		f := float64(v)
		if math.IsNaN(f) {
			return 0, false
		}
		f = math.Trunc(f)
		// MinValue of a signed integer is -2^(n-1), which float64 holds exactly.
		lo := float64(MinValue[U]())
		if f < lo || f >= -lo {
			return 0, false
		}
		return U(f), true
	case IsFloat[U]():
		return U(v), true
	default:
		n := int64(v)
		if n < int64(MinValue[U]()) || n > int64(MaxValue[U]()) {
			return 0, false
		}
		return U(n), true
	}
}
