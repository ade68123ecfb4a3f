package numeric

import (
	"github.com/jmsadair/numeric/internal/errors"
	"github.com/jmsadair/numeric/logging"
)

// Comparer compares values of T using a fixed equality tolerance.
// A Comparer is immutable once created and may be shared between goroutines.
type Comparer[T Numeric] struct {
	// The tolerance used by Equal.
	epsilon T

	logger *logging.Logger
}

// NewComparer creates a comparer with the provided options. Without WithEpsilon
// the comparer uses the default tolerance of T, see Epsilon.
func NewComparer[T Numeric](opts ...Option[T]) (*Comparer[T], error) {
	var options options[T]
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return nil, errors.WrapError(err, "failed to create comparer")
		}
	}

	if !options.epsilonSet {
		options.epsilon = Epsilon[T]()
	}

	if options.logger == nil {
		if !options.levelSet {
			options.logLevel = logging.Info
		}
		logger, err := logging.NewLogger(logging.WithLevel(options.logLevel))
		if err != nil {
			return nil, errors.WrapError(err, "failed to create logger")
		}
		options.logger = logger
	}

	return &Comparer[T]{epsilon: options.epsilon, logger: options.logger}, nil
}

// Epsilon returns the tolerance used by Equal.
func (c *Comparer[T]) Epsilon() T {
	return c.epsilon
}

// Equal reports whether a and b are equal within the tolerance of the comparer.
func (c *Comparer[T]) Equal(a, b T) bool {
	if c.logger.Enabled(logging.Debug) && (isNaN(a) || isNaN(b)) {
		c.logger.Debugf("equality check on NaN operand: a = %v, b = %v", a, b)
	}
	return FeqEps(a, b, c.epsilon)
}

// Min returns the smaller of a and b, preferring a on ties.
func (c *Comparer[T]) Min(a, b T) T {
	return Min(a, b)
}

// Max returns the larger of a and b, preferring a on ties.
func (c *Comparer[T]) Max(a, b T) T {
	return Max(a, b)
}
