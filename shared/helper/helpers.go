package helper

import (
	"fmt"
)

// ArgAs safely asserts the i-th positional argument to the expected type T.
// Returns an error when the argument is missing or of another type.
func ArgAs[T any](args []any, i int) (T, error) {
	var zero T

	if i >= len(args) {
		return zero, fmt.Errorf("missing argument %d", i)
	}

	val, ok := args[i].(T)
	if !ok {
		return zero, fmt.Errorf("argument %d: unexpected type %T", i, args[i])
	}

	return val, nil
}

// MustArgAs is the panic-on-failure variant of ArgAs.
// Use when failure should be fatal (e.g., when the argument shape is guaranteed by the caller).
func MustArgAs[T any](args []any, i int) T {
	val, err := ArgAs[T](args, i)
	if err != nil {
		panic(err)
	}
	return val
}
