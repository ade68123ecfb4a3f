package numeric

import "math"

// MaxValue returns the largest finite value representable by T.
func MaxValue[T Numeric]() T {
	if IsFloat[T]() {
		if BitSize[T]() == 32 {
			f := math.MaxFloat32
			return T(f)
		}
		f := math.MaxFloat64
		return T(f)
	}
	n := int64(1)<<(BitSize[T]()-1) - 1
	return T(n)
}

// MinValue returns the smallest finite value representable by T.
// For floats this is the negation of MaxValue, not the smallest positive value.
func MinValue[T Numeric]() T {
	if IsFloat[T]() {
		return -MaxValue[T]()
	}
	n := int64(-1) << (BitSize[T]() - 1)
	return T(n)
}
