package numeric

import (
	"math"
	"testing"

	"github.com/jmsadair/numeric/logging"
	"github.com/stretchr/testify/require"
)

// TestWithEpsilon checks that the epsilon option only accepts non-negative numbers.
func TestWithEpsilon(t *testing.T) {
	options := &options[float64]{}

	// Test negative input
	require.Error(t, WithEpsilon(-1e-9)(options))

	// Test NaN input
	require.Error(t, WithEpsilon(math.NaN())(options))

	// Test valid input
	require.NoError(t, WithEpsilon(1e-9)(options))
	require.Equal(t, 1e-9, options.epsilon)
	require.True(t, options.epsilonSet)

	// Zero is a valid tolerance
	require.NoError(t, WithEpsilon(0.0)(options))
}

func TestWithEpsilonInteger(t *testing.T) {
	options := &options[int]{}

	require.Error(t, WithEpsilon(-1)(options))
	require.NoError(t, WithEpsilon(100)(options))
}

// TestWithLogger checks that the logger option only accepts non-nil loggers.
func TestWithLogger(t *testing.T) {
	options := &options[float32]{}

	// Test nil input
	require.Error(t, WithLogger[float32](nil)(options))

	// Test valid input
	logger, err := logging.NewLogger()
	require.NoError(t, err)
	require.NoError(t, WithLogger[float32](logger)(options))
	require.Equal(t, logger, options.logger)
}

func TestWithLogLevel(t *testing.T) {
	options := &options[int64]{}

	require.NoError(t, WithLogLevel[int64](logging.Warn)(options))
	require.Equal(t, logging.Warn, options.logLevel)
	require.True(t, options.levelSet)
}
