package adt

import (
	"reflect"

	"github.com/pkg/errors"
)

// Const returns a function that produces a. Useful for fallback cases:
//
//     x.MatchWith(adt.Pattern{ adt.Any: adt.Const[any]("default") })
//
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Lift turns a typed function into an untyped one, as needed for calling
// behavior of instances (see Instance.Call). An argument not of type T
// is passed as the zero value of T.
func Lift[T, S any](f func(T) S) func(any) any {
	return func(x any) any {
		t, _ := x.(T)
		return f(t)
	}
}

// Cast converts an untyped value to type T, using the zero value of T
// if x is not of type T (or nil). Use Convert if a mismatch is an error.
func Cast[T any](x any) T {
	t, _ := x.(T)
	return t
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Convert converts an untyped value to type T. A value of another type is
// reported as an error wrapping ErrInvalidArgument, with two exceptions:
//
//   - numbers are converted between numeric types, as long as an integer
//     target type holds the number exactly (floats may lose precision)
//   - a string is converted to an error, if T is error
//
// nil converts to the zero value of interface, pointer, slice, map, chan
// and func types.
func Convert[T any](x any) (T, error) {
	var zero T
	if t, ok := x.(T); ok {
		return t, nil
	}
	target := typeOf[T]()
	if x == nil {
		if nillable(target) {
			return zero, nil
		}
		return zero, errors.Wrapf(ErrInvalidArgument, "cannot convert nil to %s", target)
	}
	if s, ok := x.(string); ok && target == errorType {
		return any(errors.New(s)).(T), nil
	}
	v := reflect.ValueOf(x)
	if isNumber(v.Kind()) && isNumber(target.Kind()) {
		c := v.Convert(target)
		if isFloat(target.Kind()) && isFloat(v.Kind()) {
			return c.Interface().(T), nil
		}
		if sign(c) == sign(v) && c.Convert(v.Type()).Interface() == v.Interface() {
			return c.Interface().(T), nil
		}
		return zero, errors.Wrapf(ErrInvalidArgument, "%v does not fit into %s", x, target)
	}
	return zero, errors.Wrapf(ErrInvalidArgument, "cannot convert %v (%T) to %s", x, x, target)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return true
	}
	return false
}

func isNumber(k reflect.Kind) bool {
	return (k >= reflect.Int && k <= reflect.Uintptr) || isFloat(k)
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func sign(v reflect.Value) int {
	switch {
	case v.CanInt():
		return cmp(v.Int(), 0)
	case v.CanUint():
		return cmp(v.Uint(), 0)
	case v.CanFloat():
		return cmp(v.Float(), 0)
	}
	return 0
}

func cmp[N int64 | uint64 | float64](a, b N) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}
