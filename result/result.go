package result

/*
{-| A `Result` is the result of a computation that may fail.

# Type and Constructors
@docs Result

# Mapping
@docs map, mapError

# Chaining
@docs chain

# Handling Errors
@docs getOrElse, try
-}
*/

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/npillmayer/adt"
	"github.com/npillmayer/adt/derive"
)

// Type is the union for results. Variant "Error" holds a Go error.
var Type = adt.MustDeclare("adt:Result",
	adt.Spec("Ok", adt.Record("value")),
	adt.Spec("Error", adt.Record("value")),
).Derive(derive.Equality, derive.Show, derive.Serialization, algebra)

// Variant factories of Type.
var (
	OkVariant    = Type.Variant("Ok")
	ErrorVariant = Type.Variant("Error")
)

// ErrPanic wraps a value recovered from a panic by Try.
var ErrPanic = errors.New("panic")

func algebra(p *adt.Prototype, u *adt.Union) {
	v := p.Variant()
	switch p.Tag() {
	case "Ok":
		p.Define("Map", func(i *adt.Instance, args ...any) any {
			return v.New(adt.Fn(args, 0)(i.Get("value")))
		})
		p.Define("MapError", func(i *adt.Instance, args ...any) any {
			adt.Fn(args, 0)
			return i
		})
		p.Define("Chain", func(i *adt.Instance, args ...any) any {
			return adt.Fn(args, 0)(i.Get("value"))
		})
		// Ok(f).Ap(x) = x.Map(f)
		p.Define("Ap", func(i *adt.Instance, args ...any) any {
			x := adt.InstanceArg(u, args, 0)
			f, ok := i.Get("value").(func(any) any)
			if !ok || f == nil {
				adt.InvalidArgument("%v does not hold a function", i)
			}
			return x.MustCall("Map", f)
		})
		p.Define("GetOrElse", func(i *adt.Instance, args ...any) any { return i.Get("value") })
		p.Define("Get", func(i *adt.Instance, args ...any) any { return i.Get("value") })
	case "Error":
		p.Define("Map", func(i *adt.Instance, args ...any) any {
			adt.Fn(args, 0)
			return i
		})
		p.Define("MapError", func(i *adt.Instance, args ...any) any {
			return v.New(adt.Fn(args, 0)(i.Get("value")))
		})
		p.Define("Chain", func(i *adt.Instance, args ...any) any {
			adt.Fn(args, 0)
			return i
		})
		p.Define("Ap", func(i *adt.Instance, args ...any) any {
			adt.InstanceArg(u, args, 0)
			return i
		})
		p.Define("GetOrElse", func(i *adt.Instance, args ...any) any { return adt.Arg[any](args, 0) })
		p.Define("Get", func(i *adt.Instance, args ...any) any { return i.Get("value") })
	}
}

// Result is a typed view onto an instance of Type.
type Result[T any] struct {
	inst *adt.Instance
}

// Ok creates a successful result.
func Ok[T any](x T) Result[T] {
	return Result[T]{inst: OkVariant.New(x)}
}

// Err creates a failed result. A nil error is replaced by a generic one, as
// an Error must carry an error.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("unknown error")
	}
	return Result[T]{inst: ErrorVariant.New(err)}
}

// Of is an alias for Ok.
func Of[T any](x T) Result[T] {
	return Ok(x)
}

// FromInstance wraps an instance of Type. It returns an error if i is not a
// Result, or if the value of an Ok does not convert to T (see adt.Convert).
// The value of an Error is turned into an error.
func FromInstance[T any](i *adt.Instance) (Result[T], error) {
	if !Type.HasInstance(i) {
		return Result[T]{}, errors.Wrapf(adt.ErrInvalidArgument, "%v is not a Result", i)
	}
	if ErrorVariant.HasInstance(i) {
		return Err[T](errorOf(i.Get("value"))), nil
	}
	x, err := adt.Convert[T](i.Get("value"))
	if err != nil {
		return Result[T]{}, errors.Wrapf(err, "value of %v", i)
	}
	return Ok(x), nil
}

// Try runs f and captures its outcome as a Result. A panic within f is
// recovered and results in an Error wrapping ErrPanic.
func Try[T any](f func() (T, error)) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			r = Err[T](errors.Wrapf(ErrPanic, "%v", p))
		}
	}()
	x, err := f()
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

// Instance returns the underlying instance. The zero value of Result is Ok
// with the zero value of T.
func (r Result[T]) Instance() *adt.Instance {
	if r.inst == nil {
		var x T
		return OkVariant.New(x)
	}
	return r.inst
}

// IsOk is a predicate.
func (r Result[T]) IsOk() bool {
	return !ErrorVariant.HasInstance(r.inst)
}

// IsError is a predicate.
func (r Result[T]) IsError() bool {
	return ErrorVariant.HasInstance(r.inst)
}

// Get returns the value of an Ok, or the error of an Error.
func (r Result[T]) Get() (T, error) {
	x := r.Instance().MustCall("Get")
	if r.IsError() {
		var zero T
		return zero, errorOf(x)
	}
	return adt.Convert[T](x)
}

// GetOrElse returns the value of an Ok, or def.
func (r Result[T]) GetOrElse(def T) T {
	return adt.Cast[T](r.Instance().MustCall("GetOrElse", def))
}

// Map transforms the value of an Ok.
func (r Result[T]) Map(f func(T) T) Result[T] {
	return Map(f, r)
}

// MapError transforms the error of an Error.
func (r Result[T]) MapError(f func(error) error) Result[T] {
	g := func(x any) any { return f(errorOf(x)) }
	return Result[T]{inst: r.Instance().MustCall("MapError", g).(*adt.Instance)}
}

// Equals compares structurally.
func (r Result[T]) Equals(other Result[T]) bool {
	return derive.Equal(r.Instance(), other.Instance())
}

func (r Result[T]) String() string {
	return r.Instance().String()
}

// Map transforms the value of an Ok result.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	return Result[S]{inst: r.Instance().MustCall("Map", adt.Lift(f)).(*adt.Instance)}
}

// Chain sequences a computation which may fail.
func Chain[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	g := func(t T) *adt.Instance { return f(t).Instance() }
	return Result[S]{inst: r.Instance().MustCall("Chain", adt.Lift(g)).(*adt.Instance)}
}

// Ap applies the function held by rf to the value held by x. If rf is an
// Error, it is the result; otherwise x.Map(f).
func Ap[T, S any](rf Result[func(T) S], x Result[T]) Result[S] {
	lifted := Map(adt.Lift[T, S], rf)
	return Result[S]{inst: lifted.Instance().MustCall("Ap", x.Instance()).(*adt.Instance)}
}

// Sequence turns a list of Results into a Result of a list. The result is the
// first Error in rs, if any.
func Sequence[T any](rs []Result[T]) Result[[]T] {
	acc := Ok(make([]T, 0, len(rs)))
	for _, r := range rs {
		r := r
		acc = Chain(func(vs []T) Result[[]T] {
			return Map(func(v T) []T { return append(vs[:len(vs):len(vs)], v) }, r)
		}, acc)
	}
	return acc
}

// MapM applies f to every element of xs and sequences the results.
func MapM[T, S any](f func(T) Result[S], xs []T) Result[[]S] {
	rs := make([]Result[S], len(xs))
	for n, x := range xs {
		rs[n] = f(x)
	}
	return Sequence(rs)
}

// errorOf turns the value of an Error variant into an error. Values revived
// from JSON are strings.
func errorOf(x any) error {
	switch e := x.(type) {
	case error:
		return e
	case nil:
		return errors.New("unknown error")
	}
	return errors.New(fmt.Sprint(x))
}

// --- Matching --------------------------------------------------------------

// Matcher supports matching in a switch statement.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	inst *adt.Instance
}

// Match returns a matcher for r:
//
//     switch m := r.Match(); m {
//     case m.Ok(&v):
//         …
//     case m.Err(&err):
//         …
//     }
//
func (r Result[T]) Match() Matcher[T] {
	return matcher[T]{inst: r.Instance()}
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if OkVariant.HasInstance(rm.inst) {
		*v = adt.Cast[T](rm.inst.Get("value"))
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if ErrorVariant.HasInstance(rm.inst) {
		*err = errorOf(rm.inst.Get("value"))
		return rm
	}
	return nil
}
