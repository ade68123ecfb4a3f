/*
Package numeric provides small generic helpers for signed integer and floating-point values.

Every type that satisfies the Numeric constraint (the signed integers and the floats, including
named types built on them) can be used with Min and Max. Both functions select one of their
operands without computing a new value, and the left operand wins when the two compare equal:

	numeric.Min(3, 4)              // 3
	numeric.Max(-3.783, 0.4736624) // 0.4736624

Floating-point values are rarely equal after arithmetic, so the package also offers equality within
a tolerance. Each type has a default tolerance returned by Epsilon: 1e-12 for floats and zero for
integers. Integers are always compared exactly, whatever tolerance is supplied:

	numeric.Feq(1.0, 1.0+1e-13)      // true
	numeric.FeqEps(5, 6, 100)        // false

A Comparer fixes a tolerance once for callers that need something other than the default:

	comparer, err := numeric.NewComparer(numeric.WithEpsilon(1e-6))
	if err != nil {
		panic(err)
	}
	comparer.Equal(1.0, 1.0000001) // true

Code that only works with floats can require the Flt constraint, which also gives access to the
named constants such as Pi and E. The remaining helpers (MinValue, MaxValue, Cast, Abs, Signum
and friends) cover the bounded, signed and casting behaviour shared by all Numeric types.
*/
package numeric
