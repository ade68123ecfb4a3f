package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// NumericError is returned when a value, option or argument handed to the
// library is rejected.
type NumericError struct {
	Inner   error
	Message string
}

func New(text string) *NumericError {
	return &NumericError{Message: text}
}

func Errorf(format string, args ...interface{}) *NumericError {
	return &NumericError{Message: fmt.Sprintf(format, args...)}
}

func WrapError(inner error, messagef string, messageArgs ...interface{}) *NumericError {
	return &NumericError{
		Inner:   errors.WithStack(inner),
		Message: fmt.Sprintf(messagef, messageArgs...),
	}
}

func (e *NumericError) Unwrap() error {
	return e.Inner
}

func (e *NumericError) Error() string {
	if e.Inner == nil {
		return e.Message
	}
	return e.Message + ": " + errors.Cause(e.Inner).Error()
}
