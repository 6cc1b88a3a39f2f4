/*
Package validation implements a result type which accumulates failures.

Other than with Result or Either, combining two failed validations keeps the
failures of both:

    v := validation.Collect(
        checkName(name),
        checkAge(age),
    )
    // => Failure([name is empty, age is negative]) if both checks failed

Failures are kept as a slice of E.
*/
package validation

import (
	"github.com/pkg/errors"

	"github.com/npillmayer/adt"
	"github.com/npillmayer/adt/derive"
)

// Type is the union for validations. Variant "Failure" holds a []any.
var Type = adt.MustDeclare("adt:Validation",
	adt.Spec("Success", adt.Record("value")),
	adt.Spec("Failure", adt.Record("value")),
).Derive(derive.Equality, derive.Show, derive.Serialization, algebra)

// Variant factories of Type.
var (
	SuccessVariant = Type.Variant("Success")
	FailureVariant = Type.Variant("Failure")
)

// ErrFailure is returned when extracting a value from a Failure.
var ErrFailure = errors.New("validation failed")

func algebra(p *adt.Prototype, u *adt.Union) {
	v := p.Variant()
	failure := u.Variant("Failure")
	switch p.Tag() {
	case "Success":
		p.Define("Map", func(i *adt.Instance, args ...any) any {
			return v.New(adt.Fn(args, 0)(i.Get("value")))
		})
		p.Define("MapFailure", func(i *adt.Instance, args ...any) any {
			adt.Fn(args, 0)
			return i
		})
		// Success ⊕ x = x
		p.Define("Concat", func(i *adt.Instance, args ...any) any { return adt.InstanceArg(u, args, 0) })
		// Success(f).Ap(x) = x.Map(f)
		p.Define("Ap", func(i *adt.Instance, args ...any) any {
			x := adt.InstanceArg(u, args, 0)
			f, ok := i.Get("value").(func(any) any)
			if !ok || f == nil {
				adt.InvalidArgument("%v does not hold a function", i)
			}
			return x.MustCall("Map", f)
		})
		p.Define("GetOrElse", func(i *adt.Instance, args ...any) any { return i.Get("value") })
	case "Failure":
		p.Define("Map", func(i *adt.Instance, args ...any) any {
			adt.Fn(args, 0)
			return i
		})
		p.Define("MapFailure", func(i *adt.Instance, args ...any) any {
			f := adt.Fn(args, 0)
			fs := failures(i)
			mapped := make([]any, len(fs))
			for n, x := range fs {
				mapped[n] = f(x)
			}
			return v.New(mapped)
		})
		// Failure(a) ⊕ Success = Failure(a), Failure(a) ⊕ Failure(b) = Failure(a ++ b)
		concat := func(i *adt.Instance, args ...any) any {
			other := adt.InstanceArg(u, args, 0)
			if !failure.HasInstance(other) {
				return i
			}
			fs := append(append([]any{}, failures(i)...), failures(other)...)
			return v.New(fs)
		}
		p.Define("Concat", concat)
		p.Define("Ap", concat)
		p.Define("GetOrElse", func(i *adt.Instance, args ...any) any { return adt.Arg[any](args, 0) })
	}
}

func failures(i *adt.Instance) []any {
	fs, _ := i.Get("value").([]any)
	return fs
}

// Validation is a typed view onto an instance of Type, with failures of type E
// and a success value of type T.
type Validation[E, T any] struct {
	inst *adt.Instance
}

// Success creates a successful validation.
func Success[E, T any](x T) Validation[E, T] {
	return Validation[E, T]{inst: SuccessVariant.New(x)}
}

// Failure creates a failed validation with one or more failures.
func Failure[E, T any](failure E, more ...E) Validation[E, T] {
	fs := make([]any, 0, 1+len(more))
	fs = append(fs, failure)
	for _, f := range more {
		fs = append(fs, f)
	}
	return Validation[E, T]{inst: FailureVariant.New(fs)}
}

// Of is an alias for Success.
func Of[E, T any](x T) Validation[E, T] {
	return Success[E](x)
}

// FromInstance wraps an instance of Type. It returns an error if i is not a
// Validation, or if its values do not convert to T or E, respectively
// (see adt.Convert).
func FromInstance[E, T any](i *adt.Instance) (Validation[E, T], error) {
	if !Type.HasInstance(i) {
		return Validation[E, T]{}, errors.Wrapf(adt.ErrInvalidArgument, "%v is not a Validation", i)
	}
	if SuccessVariant.HasInstance(i) {
		x, err := adt.Convert[T](i.Get("value"))
		if err != nil {
			return Validation[E, T]{}, errors.Wrapf(err, "value of %v", i)
		}
		return Success[E](x), nil
	}
	fs, ok := i.Get("value").([]any)
	if !ok {
		return Validation[E, T]{}, errors.Wrapf(adt.ErrInvalidArgument, "%v does not hold a list of failures", i)
	}
	converted := make([]any, len(fs))
	for n, f := range fs {
		e, err := adt.Convert[E](f)
		if err != nil {
			return Validation[E, T]{}, errors.Wrapf(err, "failure #%d of %v", n, i)
		}
		converted[n] = e
	}
	return Validation[E, T]{inst: FailureVariant.New(converted)}, nil
}

// Instance returns the underlying instance. The zero value is a Success
// holding the zero value of T.
func (v Validation[E, T]) Instance() *adt.Instance {
	if v.inst == nil {
		var x T
		return SuccessVariant.New(x)
	}
	return v.inst
}

// IsSuccess is a predicate.
func (v Validation[E, T]) IsSuccess() bool {
	return !v.IsFailure()
}

// IsFailure is a predicate.
func (v Validation[E, T]) IsFailure() bool {
	return FailureVariant.HasInstance(v.inst)
}

// Failures returns the accumulated failures, or nil for a Success.
func (v Validation[E, T]) Failures() []E {
	if !v.IsFailure() {
		return nil
	}
	fs := failures(v.inst)
	es := make([]E, len(fs))
	for n, f := range fs {
		es[n] = adt.Cast[E](f)
	}
	return es
}

// Get returns the value of a Success, or an error wrapping ErrFailure.
func (v Validation[E, T]) Get() (T, error) {
	if v.IsFailure() {
		var zero T
		return zero, errors.Wrapf(ErrFailure, "%d failure(s): %v", len(v.Failures()), v.Failures())
	}
	return adt.Convert[T](v.Instance().Get("value"))
}

// GetOrElse returns the value of a Success, or def.
func (v Validation[E, T]) GetOrElse(def T) T {
	return adt.Cast[T](v.Instance().MustCall("GetOrElse", def))
}

// Concat combines two validations, accumulating failures. If both are
// successful, the result is other.
func (v Validation[E, T]) Concat(other Validation[E, T]) Validation[E, T] {
	return Validation[E, T]{inst: v.Instance().MustCall("Concat", other.Instance()).(*adt.Instance)}
}

// Map transforms the value of a Success.
func (v Validation[E, T]) Map(f func(T) T) Validation[E, T] {
	return Map(f, v)
}

// MapFailure transforms every failure of a Failure.
func (v Validation[E, T]) MapFailure(f func(E) E) Validation[E, T] {
	return Validation[E, T]{inst: v.Instance().MustCall("MapFailure", adt.Lift(f)).(*adt.Instance)}
}

// Equals compares structurally.
func (v Validation[E, T]) Equals(other Validation[E, T]) bool {
	return derive.Equal(v.Instance(), other.Instance())
}

func (v Validation[E, T]) String() string {
	return v.Instance().String()
}

// Map transforms the value of a Success.
func Map[E, T, S any](f func(T) S, v Validation[E, T]) Validation[E, S] {
	return Validation[E, S]{inst: v.Instance().MustCall("Map", adt.Lift(f)).(*adt.Instance)}
}

// Ap applies the function held by vf to the value held by x. Other than for
// Result or Either, the failures of both are kept if both are Failures.
func Ap[E, T, S any](vf Validation[E, func(T) S], x Validation[E, T]) Validation[E, S] {
	lifted := Map(adt.Lift[T, S], vf)
	return Validation[E, S]{inst: lifted.Instance().MustCall("Ap", x.Instance()).(*adt.Instance)}
}

// Sequence turns a list of validations into a validation of a list,
// accumulating the failures of all of them.
func Sequence[E, T any](vs []Validation[E, T]) Validation[E, []T] {
	acc := Success[E](make([]T, 0, len(vs)))
	for _, v := range vs {
		appendTo := func(ts []T) func(T) []T {
			return func(t T) []T { return append(ts[:len(ts):len(ts)], t) }
		}
		acc = Ap(Map(appendTo, acc), v)
	}
	return acc
}

// MapM applies f to every element of xs and sequences the results.
func MapM[E, T, S any](f func(T) Validation[E, S], xs []T) Validation[E, []S] {
	vs := make([]Validation[E, S], len(xs))
	for n, x := range xs {
		vs[n] = f(x)
	}
	return Sequence(vs)
}

// Collect concatenates a list of validations. The result is the last
// validation if all are successful, or a Failure holding all failures.
func Collect[E, T any](vs ...Validation[E, T]) Validation[E, T] {
	if len(vs) == 0 {
		var x T
		return Success[E](x)
	}
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = acc.Concat(v)
	}
	return acc
}

// --- Matching --------------------------------------------------------------

// Matcher supports matching in a switch statement.
type Matcher[E, T any] interface {
	Success(*T) Matcher[E, T]
	Failure(*[]E) Matcher[E, T]
}

type matcher[E, T any] struct {
	v Validation[E, T]
}

// Match returns a matcher for v.
func (v Validation[E, T]) Match() Matcher[E, T] {
	return matcher[E, T]{v: Validation[E, T]{inst: v.Instance()}}
}

func (vm matcher[E, T]) Success(x *T) Matcher[E, T] {
	if vm.v.IsSuccess() {
		*x = adt.Cast[T](vm.v.inst.Get("value"))
		return vm
	}
	return nil
}

func (vm matcher[E, T]) Failure(fs *[]E) Matcher[E, T] {
	if vm.v.IsFailure() {
		*fs = vm.v.Failures()
		return vm
	}
	return nil
}
