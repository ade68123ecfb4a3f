package numeric

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Signed is a constraint that permits any signed integer type.
type Signed = constraints.Signed

// Float is a constraint that permits any floating-point type.
type Float = constraints.Float

// Ordered is a constraint that permits any type supporting the ordering operators.
type Ordered = constraints.Ordered

// Numeric is the set of types accepted by the comparison functions in this package:
// signed, bounded, ordered scalars that support the arithmetic operators.
// Every such value is copied on assignment and prints with %v.
type Numeric interface {
	Signed | Float
}

// IsFloat reports whether the underlying type of T is a floating-point type.
func IsFloat[T Numeric]() bool {
	var one T = 1
	return one/(one+one) != 0
}

// BitSize returns the width of T in bits.
func BitSize[T Numeric]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}

// Zero returns the additive identity of T.
func Zero[T Numeric]() T {
	return 0
}

// One returns the multiplicative identity of T.
func One[T Numeric]() T {
	return 1
}

// IsZero reports whether v equals the additive identity. Both signed zeros count.
func IsZero[T Numeric](v T) bool {
	return v == 0
}

// Abs returns the absolute value of v.
// For floats the sign bit is cleared, so Abs(-0) is +0 and Abs(-Inf) is +Inf.
// For integers Abs(MinValue) wraps around to MinValue.
func Abs[T Numeric](v T) T {
	if IsFloat[T]() {
		return T(math.Abs(float64(v)))
	}
	if v < 0 {
		return -v
	}
	return v
}

// Signum returns the sign of v.
//
// For integers the result is -1, 0 or 1. For floats the result is 1 for +0 and
// +Inf, -1 for -0 and -Inf, and NaN for NaN.
func Signum[T Numeric](v T) T {
	if IsFloat[T]() {
		f := float64(v)
		if math.IsNaN(f) {
			return v
		}
		if math.Signbit(f) {
			return -1
		}
		return 1
	}
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// IsPositive reports whether v is positive. For floats this includes +0 and +Inf.
// NaN is neither positive nor negative.
func IsPositive[T Numeric](v T) bool {
	if IsFloat[T]() {
		f := float64(v)
		return !math.IsNaN(f) && !math.Signbit(f)
	}
	return v > 0
}

// IsNegative reports whether v is negative. For floats this includes -0 and -Inf.
func IsNegative[T Numeric](v T) bool {
	if IsFloat[T]() {
		f := float64(v)
		return !math.IsNaN(f) && math.Signbit(f)
	}
	return v < 0
}

// AbsSub returns a - b if a is greater than b, and zero otherwise.
func AbsSub[T Numeric](a, b T) T {
	if a <= b {
		return 0
	}
	return a - b
}

func isNaN[T Numeric](v T) bool {
	return IsFloat[T]() && math.IsNaN(float64(v))
}
