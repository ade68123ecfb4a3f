package numeric

// Max returns the larger of a and b. If the two compare equal, a is returned.
// The result is always one of the operands unchanged.
func Max[T Numeric](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// Min returns the smaller of a and b. If the two compare equal, a is returned.
// The result is always one of the operands unchanged.
func Min[T Numeric](a, b T) T {
	if b < a {
		return b
	}
	return a
}
