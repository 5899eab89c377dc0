package helper

import (
	"fmt"
)

// GetTypedValueOf safely asserts v to the expected type T.
// A nil v yields the zero value of T, so nil interface arguments survive a
// round trip through []any. Returns an error if type assertion fails.
func GetTypedValueOf[T any](v any) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}
	val, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", v)
	}
	return val, nil
}

// ArgAt returns args[i] as T. It panics when i is out of range or the
// argument has another type.
func ArgAt[T any](args []any, i int) T {
	if i >= len(args) {
		panic(fmt.Sprintf("argument %d missing, got %d arguments", i, len(args)))
	}
	val, err := GetTypedValueOf[T](args[i])
	if err != nil {
		panic(fmt.Errorf("argument %d: %w", i, err))
	}
	return val
}
