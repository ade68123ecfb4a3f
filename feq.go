package numeric

// defaultFloatEpsilon is the tolerance used by Feq for floating-point types.
const defaultFloatEpsilon = 1.0e-12

// Feqer is implemented by types that carry their own equality tolerance.
type Feqer[T any] interface {
	// Epsilon returns the largest difference at which two values are still
	// considered equal.
	Epsilon() T

	// FeqEps reports whether the receiver and other are equal within eps.
	FeqEps(other T, eps T) bool

	// Feq reports whether the receiver and other are equal within Epsilon.
	Feq(other T) bool
}

// Epsilon returns the default equality tolerance of T: 1e-12 for floats and
// zero for integers.
func Epsilon[T Numeric]() T {
	if IsFloat[T]() {
		eps := defaultFloatEpsilon
		return T(eps)
	}
	return 0
}

// FeqEps reports whether a and b are equal, or, for floating-point types,
// whether the absolute difference between them is strictly less than eps.
// The exact check comes first so that infinities compare equal to themselves.
// Integers are always compared exactly and eps is ignored.
func FeqEps[T Numeric](a, b, eps T) bool {
	if a == b {
		return true
	}
	if !IsFloat[T]() {
		return false
	}
	return Abs(a-b) < eps
}

// Feq reports whether a and b are equal within the default tolerance of T.
func Feq[T Numeric](a, b T) bool {
	return FeqEps(a, b, Epsilon[T]())
}
