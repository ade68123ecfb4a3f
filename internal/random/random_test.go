package random

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueFitsType(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		f := Value[float32](r)
		require.False(t, math.IsInf(float64(f), 0))
		require.False(t, math.IsNaN(float64(f)))

		d := Value[float64](r)
		require.False(t, math.IsInf(d, 0))
	}
}

func TestValueCoversSigns(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	var negative, positive bool
	for i := 0; i < 1000; i++ {
		v := Value[int8](r)
		negative = negative || v < 0
		positive = positive || v > 0
	}
	require.True(t, negative)
	require.True(t, positive)
}

func TestPairTies(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	ties := 0
	for i := 0; i < 1000; i++ {
		a, b := Pair[int64](r)
		if a == b {
			ties++
		}
	}
	require.Greater(t, ties, 0)
}
