package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEpsilon(t *testing.T) {
	require.Equal(t, 1e-12, Epsilon[float64]())
	require.Equal(t, float32(1e-12), Epsilon[float32]())
	require.Equal(t, int64(0), Epsilon[int64]())
	require.Equal(t, int32(0), Epsilon[int32]())
	require.Equal(t, 0, Epsilon[int]())
}

func TestFeqFloat(t *testing.T) {
	require.True(t, Feq(1.0, 1.0+1e-13))
	require.False(t, Feq(1.0, 1.0+1e-6))
	require.True(t, Feq(-2.5, -2.5))
	require.True(t, Feq(1.0+1e-13, 1.0))
}

func TestFeqEpsFloat(t *testing.T) {
	require.True(t, FeqEps(1.0, 1.05, 0.1))
	require.False(t, FeqEps(1.0, 1.2, 0.1))

	// The difference must be strictly smaller than the tolerance.
	require.False(t, FeqEps(1.0, 2.0, 1.0))

	// Exact matches hold even with a zero tolerance.
	require.True(t, FeqEps(3.5, 3.5, 0))
}

func TestFeqInfinities(t *testing.T) {
	inf := math.Inf(1)

	require.True(t, Feq(inf, inf))
	require.True(t, Feq(-inf, -inf))
	require.False(t, Feq(inf, -inf))
	require.False(t, FeqEps(inf, math.MaxFloat64, math.MaxFloat64))
}

func TestFeqNaN(t *testing.T) {
	nan := math.NaN()

	require.False(t, Feq(nan, nan))
	require.False(t, FeqEps(nan, 1, math.Inf(1)))
}

// TestFeqEpsInteger checks that integers are compared exactly and the tolerance is ignored.
func TestFeqEpsInteger(t *testing.T) {
	require.True(t, FeqEps(5, 5, 100))
	require.False(t, FeqEps(5, 6, 100))
	require.False(t, FeqEps(int64(math.MinInt64), math.MaxInt64, math.MaxInt64))
	require.True(t, Feq(int32(-7), -7))
	require.False(t, Feq(int32(-7), 7))
}

func TestFeqFloat32(t *testing.T) {
	a := float32(0.1)
	b := float32(0.2)

	require.True(t, Feq(a+b, a+b))
	require.True(t, FeqEps(a+b, 0.3, 1e-6))
}

func TestFeqReflexive(t *testing.T) {
	for _, x := range []float64{0, -0.0, 1, -1, math.SmallestNonzeroFloat64, math.MaxFloat64, -math.MaxFloat64, 1e300} {
		require.True(t, Feq(x, x), "x = %v", x)
	}
}

// bearing is an angle in degrees that compares with a coarser tolerance than float64.
type bearing float64

func (b bearing) Epsilon() bearing { return 1e-3 }
func (b bearing) FeqEps(other, eps bearing) bool { return FeqEps(b, other, eps) }
func (b bearing) Feq(other bearing) bool { return b.FeqEps(other, b.Epsilon()) }

var _ Feqer[bearing] = bearing(0)

func TestFeqer(t *testing.T) {
	require.True(t, bearing(90).Feq(90.0004))
	require.False(t, bearing(90).Feq(90.01))
	require.False(t, Feq(bearing(90), 90.0004))
}
