/*
Package conversions converts between the data types built on package adt:
Maybe, Either, Result and Validation, and from nullable values (pointers).

Conversions are written in terms of case analysis on the underlying
instances, i.e. they use only the public contract of package adt.
*/
package conversions

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"

	"github.com/npillmayer/adt"
	"github.com/npillmayer/adt/either"
	"github.com/npillmayer/adt/maybe"
	"github.com/npillmayer/adt/result"
	"github.com/npillmayer/adt/validation"
)

// tracer traces with key 'adt.conversions'.
func tracer() tracing.Trace {
	return tracing.Select("adt.conversions")
}

// ErrNull is used by conversions from nullables if no error value is given.
var ErrNull = errors.New("value is nil")

// convert dispatches on the variants of i. Completeness of the cases is
// the responsibility of the caller, an incomplete match is a programming error.
func convert[R any](i *adt.Instance, cases adt.Cases[R]) R {
	r, err := adt.Match(i, cases)
	if err != nil {
		tracer().Errorf("conversion of %v failed: %v", i, err)
		panic(err)
	}
	return r
}

func value[T any](i *adt.Instance) T {
	return adt.Cast[T](i.Get("value"))
}

// --- From Either -----------------------------------------------------------

// EitherToMaybe converts Right(x) to Just(x) and any Left to Nothing.
func EitherToMaybe[L, R any](e either.Either[L, R]) maybe.Maybe[R] {
	return convert(e.Instance(), adt.Cases[maybe.Maybe[R]]{
		"Left":  func(*adt.Instance) maybe.Maybe[R] { return maybe.Nothing[R]() },
		"Right": func(i *adt.Instance) maybe.Maybe[R] { return maybe.Just(value[R](i)) },
	})
}

// EitherToValidation converts Left(a) to Failure(a) and Right(x) to Success(x).
func EitherToValidation[L, R any](e either.Either[L, R]) validation.Validation[L, R] {
	return convert(e.Instance(), adt.Cases[validation.Validation[L, R]]{
		"Left": func(i *adt.Instance) validation.Validation[L, R] {
			return validation.Failure[L, R](value[L](i))
		},
		"Right": func(i *adt.Instance) validation.Validation[L, R] {
			return validation.Success[L](value[R](i))
		},
	})
}

// EitherToResult converts Left(err) to Error(err) and Right(x) to Ok(x).
func EitherToResult[R any](e either.Either[error, R]) result.Result[R] {
	return convert(e.Instance(), adt.Cases[result.Result[R]]{
		"Left":  func(i *adt.Instance) result.Result[R] { return result.Err[R](value[error](i)) },
		"Right": func(i *adt.Instance) result.Result[R] { return result.Ok(value[R](i)) },
	})
}

// --- From Maybe ------------------------------------------------------------

// MaybeToEither converts Just(x) to Right(x) and Nothing to Left(fallback).
func MaybeToEither[L, T any](m maybe.Maybe[T], fallback L) either.Either[L, T] {
	return convert(m.Instance(), adt.Cases[either.Either[L, T]]{
		"Just":    func(i *adt.Instance) either.Either[L, T] { return either.Right[L](value[T](i)) },
		"Nothing": func(*adt.Instance) either.Either[L, T] { return either.Left[L, T](fallback) },
	})
}

// MaybeToValidation converts Just(x) to Success(x) and Nothing to Failure(fallback).
func MaybeToValidation[E, T any](m maybe.Maybe[T], fallback E) validation.Validation[E, T] {
	return convert(m.Instance(), adt.Cases[validation.Validation[E, T]]{
		"Just": func(i *adt.Instance) validation.Validation[E, T] {
			return validation.Success[E](value[T](i))
		},
		"Nothing": func(*adt.Instance) validation.Validation[E, T] {
			return validation.Failure[E, T](fallback)
		},
	})
}

// MaybeToResult converts Just(x) to Ok(x) and Nothing to Error(err).
func MaybeToResult[T any](m maybe.Maybe[T], err error) result.Result[T] {
	return convert(m.Instance(), adt.Cases[result.Result[T]]{
		"Just":    func(i *adt.Instance) result.Result[T] { return result.Ok(value[T](i)) },
		"Nothing": func(*adt.Instance) result.Result[T] { return result.Err[T](err) },
	})
}

// --- From Result -----------------------------------------------------------

// ResultToMaybe converts Ok(x) to Just(x) and any Error to Nothing.
func ResultToMaybe[T any](r result.Result[T]) maybe.Maybe[T] {
	return convert(r.Instance(), adt.Cases[maybe.Maybe[T]]{
		"Ok": func(i *adt.Instance) maybe.Maybe[T] { return maybe.Just(value[T](i)) },
		adt.Any: func(*adt.Instance) maybe.Maybe[T] {
			return maybe.Nothing[T]()
		},
	})
}

// ResultToEither converts Ok(x) to Right(x) and Error(err) to Left(err).
func ResultToEither[T any](r result.Result[T]) either.Either[error, T] {
	x, err := r.Get()
	if err != nil {
		return either.Left[error, T](err)
	}
	return either.Right[error](x)
}

// ResultToValidation converts Ok(x) to Success(x) and Error(err) to Failure(err).
func ResultToValidation[T any](r result.Result[T]) validation.Validation[error, T] {
	x, err := r.Get()
	if err != nil {
		return validation.Failure[error, T](err)
	}
	return validation.Success[error](x)
}

// --- From Validation -------------------------------------------------------

// ValidationToEither converts Success(x) to Right(x) and a Failure to Left
// holding all failures.
func ValidationToEither[E, T any](v validation.Validation[E, T]) either.Either[[]E, T] {
	return convert(v.Instance(), adt.Cases[either.Either[[]E, T]]{
		"Success": func(i *adt.Instance) either.Either[[]E, T] { return either.Right[[]E](value[T](i)) },
		"Failure": func(*adt.Instance) either.Either[[]E, T] { return either.Left[[]E, T](v.Failures()) },
	})
}

// ValidationToMaybe converts Success(x) to Just(x) and any Failure to Nothing.
func ValidationToMaybe[E, T any](v validation.Validation[E, T]) maybe.Maybe[T] {
	return convert(v.Instance(), adt.Cases[maybe.Maybe[T]]{
		"Success": func(i *adt.Instance) maybe.Maybe[T] { return maybe.Just(value[T](i)) },
		"Failure": func(*adt.Instance) maybe.Maybe[T] { return maybe.Nothing[T]() },
	})
}

// ValidationToResult converts Success(x) to Ok(x) and a Failure to an Error
// listing all failures.
func ValidationToResult[E, T any](v validation.Validation[E, T]) result.Result[T] {
	return convert(v.Instance(), adt.Cases[result.Result[T]]{
		"Success": func(i *adt.Instance) result.Result[T] { return result.Ok(value[T](i)) },
		"Failure": func(*adt.Instance) result.Result[T] {
			msgs := make([]string, 0, len(v.Failures()))
			for _, f := range v.Failures() {
				msgs = append(msgs, fmt.Sprint(f))
			}
			return result.Err[T](errors.Wrap(validation.ErrFailure, strings.Join(msgs, "; ")))
		},
	})
}

// --- From nullables --------------------------------------------------------

// NullableToMaybe converts a non-nil pointer to Just(*p) and nil to Nothing.
func NullableToMaybe[T any](p *T) maybe.Maybe[T] {
	if p == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(*p)
}

// NullableToEither converts a non-nil pointer to Right(*p) and nil to Left(fallback).
func NullableToEither[L, T any](p *T, fallback L) either.Either[L, T] {
	if p == nil {
		return either.Left[L, T](fallback)
	}
	return either.Right[L](*p)
}

// NullableToValidation converts a non-nil pointer to Success(*p) and nil to
// Failure(fallback).
func NullableToValidation[E, T any](p *T, fallback E) validation.Validation[E, T] {
	if p == nil {
		return validation.Failure[E, T](fallback)
	}
	return validation.Success[E](*p)
}

// NullableToResult converts a non-nil pointer to Ok(*p) and nil to an Error
// wrapping ErrNull.
func NullableToResult[T any](p *T) result.Result[T] {
	if p == nil {
		return result.Err[T](errors.Wrapf(ErrNull, "expected a %T", *new(T)))
	}
	return result.Ok(*p)
}
