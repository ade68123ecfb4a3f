package numeric

import (
	"github.com/jmsadair/numeric/internal/errors"
	"github.com/jmsadair/numeric/logging"
)

type options[T Numeric] struct {
	// The tolerance used when comparing values for equality.
	epsilon T

	// Indicates if the tolerance was set or not.
	epsilonSet bool

	// A provided logger that can be used by the comparer.
	logger *logging.Logger

	// The level of logged messages.
	logLevel logging.Level

	// Indicates if log level was set or not.
	levelSet bool
}

// Option is a function that updates the options associated with a Comparer.
type Option[T Numeric] func(options *options[T]) error

// WithEpsilon sets the tolerance used by Comparer.Equal. The tolerance must not be
// negative or NaN. Integer comparers accept it but always compare exactly.
func WithEpsilon[T Numeric](eps T) Option[T] {
	return func(options *options[T]) error {
		if isNaN(eps) || eps < 0 {
			return errors.Errorf("epsilon must be a non-negative number: got %v", eps)
		}
		options.epsilon = eps
		options.epsilonSet = true
		return nil
	}
}

// WithLogger sets the logger used by the comparer.
func WithLogger[T Numeric](logger *logging.Logger) Option[T] {
	return func(options *options[T]) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		options.logger = logger
		return nil
	}
}

// WithLogLevel sets the level of the logger created by the comparer when
// no logger is provided.
func WithLogLevel[T Numeric](level logging.Level) Option[T] {
	return func(options *options[T]) error {
		options.logLevel = level
		options.levelSet = true
		return nil
	}
}
