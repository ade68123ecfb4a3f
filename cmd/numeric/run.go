package main

import (
	"fmt"
	"strconv"

	"github.com/jmsadair/numeric"
	"github.com/jmsadair/numeric/internal/errors"
	"github.com/jmsadair/numeric/logging"
)

// request describes a single command invocation.
type request struct {
	// One of min, max, feq, cast or bounds.
	op string

	// The positional operands, unparsed.
	args []string

	// Tolerance for feq. Empty means the default of the type.
	eps string

	// Target type name for cast.
	to string

	logger *logging.Logger
}

// dispatch runs the request with operands of the named type.
func dispatch(typeName string, req request) (string, error) {
	switch typeName {
	case "int":
		return run[int](req)
	case "int8":
		return run[int8](req)
	case "int16":
		return run[int16](req)
	case "int32":
		return run[int32](req)
	case "int64":
		return run[int64](req)
	case "float32":
		return run[float32](req)
	case "float64":
		return run[float64](req)
	default:
		return "", errors.Errorf("unsupported type %q", typeName)
	}
}

func run[T numeric.Numeric](req request) (string, error) {
	values := make([]T, 0, len(req.args))
	for _, arg := range req.args {
		v, err := parse[T](arg)
		if err != nil {
			return "", err
		}
		values = append(values, v)
	}

	switch req.op {
	case "min":
		return format(numeric.Min(values[0], values[1])), nil
	case "max":
		return format(numeric.Max(values[0], values[1])), nil
	case "feq":
		var opts []numeric.Option[T]
		if req.eps != "" {
			eps, err := parse[T](req.eps)
			if err != nil {
				return "", errors.WrapError(err, "invalid tolerance")
			}
			opts = append(opts, numeric.WithEpsilon(eps))
		}
		if req.logger != nil {
			opts = append(opts, numeric.WithLogger[T](req.logger))
		}
		comparer, err := numeric.NewComparer[T](opts...)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(comparer.Equal(values[0], values[1])), nil
	case "cast":
		return castTo(req.to, values[0])
	case "bounds":
		return fmt.Sprintf("%s %s", format(numeric.MinValue[T]()), format(numeric.MaxValue[T]())), nil
	default:
		return "", errors.Errorf("unknown operation %q", req.op)
	}
}

func castTo[T numeric.Numeric](typeName string, v T) (string, error) {
	switch typeName {
	case "int":
		return convert[int](v, typeName)
	case "int8":
		return convert[int8](v, typeName)
	case "int16":
		return convert[int16](v, typeName)
	case "int32":
		return convert[int32](v, typeName)
	case "int64":
		return convert[int64](v, typeName)
	case "float32":
		return convert[float32](v, typeName)
	case "float64":
		return convert[float64](v, typeName)
	default:
		return "", errors.Errorf("unsupported type %q", typeName)
	}
}

// convert casts v to U, or reports the value that could not be converted.
func convert[U, T numeric.Numeric](v T, typeName string) (string, error) {
	u, ok := numeric.Cast[U](v)
	if !ok {
		return "", errors.Errorf("%s cannot be represented as %s", format(v), typeName)
	}
	return format(u), nil
}

func parse[T numeric.Numeric](s string) (T, error) {
	bits := numeric.BitSize[T]()
	if numeric.IsFloat[T]() {
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return 0, errors.WrapError(err, "invalid float%d %q", bits, s)
		}
		return T(f), nil
	}
	n, err := strconv.ParseInt(s, 0, bits)
	if err != nil {
		return 0, errors.WrapError(err, "invalid int%d %q", bits, s)
	}
	return T(n), nil
}

func format[T numeric.Numeric](v T) string {
	if numeric.IsFloat[T]() {
		return strconv.FormatFloat(float64(v), 'g', -1, numeric.BitSize[T]())
	}
	return strconv.FormatInt(int64(v), 10)
}
