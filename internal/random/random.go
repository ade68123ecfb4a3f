package random

import (
	"math"
	"math/rand"

	"github.com/jmsadair/numeric"
)

// Value returns a random value of T drawn from r.
// Integers are drawn uniformly from the full range of T. Floats are drawn with a random sign
// and a magnitude spread across many orders of magnitude, so that both tiny and huge values appear.
func Value[T numeric.Numeric](r *rand.Rand) T {
	if numeric.IsFloat[T]() {
		exp := r.Intn(2*maxExponent[T]()+1) - maxExponent[T]()
		f := r.Float64() * math.Pow(10, float64(exp))
		if r.Intn(2) == 0 {
			f = -f
		}
		return T(f)
	}
	bits := numeric.BitSize[T]()
	n := int64(r.Uint64())
	// Keep the low bits and sign-extend so the value fits in T.
	n = n << (64 - bits) >> (64 - bits)
	return T(n)
}

// Pair returns two random values of T, equal to each other with probability 1/8 so that
// ties show up in property checks.
func Pair[T numeric.Numeric](r *rand.Rand) (T, T) {
	a := Value[T](r)
	if r.Intn(8) == 0 {
		return a, a
	}
	return a, Value[T](r)
}

func maxExponent[T numeric.Numeric]() int {
	if numeric.BitSize[T]() == 32 {
		return 37
	}
	return 300
}
