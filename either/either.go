package either

import (
	"github.com/pkg/errors"

	"github.com/npillmayer/adt"
	"github.com/npillmayer/adt/derive"
)

// Clients should be able to define a sum type:
//
// Haskell:
//
//     type Either a b = Left a | Right b
//
// Pseudo-Go:
//
//     type Either[A, B any] union {
//         Left  A
//         Right B
//     }
//
// Stand-in with package adt:
//
//     adt.MustDeclare("adt:Either",
//         adt.Spec("Left", adt.Record("value")),
//         adt.Spec("Right", adt.Record("value")),
//     )
//
// By convention Left holds a failure and Right holds a successful value, and
// the operations of Either act on Right values.

// Type is the union for Either values.
var Type = adt.MustDeclare("adt:Either",
	adt.Spec("Left", adt.Record("value")),
	adt.Spec("Right", adt.Record("value")),
).Derive(derive.Equality, derive.Show, derive.Serialization, algebra)

// Variant factories of Type.
var (
	LeftVariant  = Type.Variant("Left")
	RightVariant = Type.Variant("Right")
)

// ErrLeft is returned when extracting a Right value from a Left.
var ErrLeft = errors.New("cannot extract the value of a Left")

func algebra(p *adt.Prototype, u *adt.Union) {
	left, right := u.Variant("Left"), u.Variant("Right")
	self := p.Variant()
	value := func(i *adt.Instance) any { return i.Get("value") }
	// operations acting on one side only
	keep := func(i *adt.Instance, args ...any) any {
		adt.Fn(args, 0)
		return i
	}
	apply := func(i *adt.Instance, args ...any) any {
		return self.New(adt.Fn(args, 0)(value(i)))
	}
	switch p.Tag() {
	case "Left":
		p.Define("Map", keep)
		p.Define("Chain", keep)
		p.Define("LeftMap", apply)
		p.Define("Ap", func(i *adt.Instance, args ...any) any {
			adt.InstanceArg(u, args, 0)
			return i
		})
		p.Define("GetOrElse", func(i *adt.Instance, args ...any) any { return adt.Arg[any](args, 0) })
		p.Define("OrElse", func(i *adt.Instance, args ...any) any {
			return adt.Fn(args, 0)(value(i))
		})
		p.Define("Get", func(i *adt.Instance, args ...any) any {
			return errors.Wrapf(ErrLeft, "Left holds %v; consider GetOrElse instead of Get", value(i))
		})
		p.Define("Swap", func(i *adt.Instance, args ...any) any { return right.New(value(i)) })
		p.Define("Fold", func(i *adt.Instance, args ...any) any {
			adt.Fn(args, 1)
			return adt.Fn(args, 0)(value(i))
		})
	case "Right":
		p.Define("Map", apply)
		p.Define("Chain", func(i *adt.Instance, args ...any) any {
			return adt.Fn(args, 0)(value(i))
		})
		p.Define("LeftMap", keep)
		// Right(f).Ap(x) = x.Map(f)
		p.Define("Ap", func(i *adt.Instance, args ...any) any {
			x := adt.InstanceArg(u, args, 0)
			f, ok := value(i).(func(any) any)
			if !ok || f == nil {
				adt.InvalidArgument("%v does not hold a function", i)
			}
			return x.MustCall("Map", f)
		})
		p.Define("GetOrElse", func(i *adt.Instance, args ...any) any { return value(i) })
		p.Define("OrElse", keep)
		p.Define("Get", func(i *adt.Instance, args ...any) any { return value(i) })
		p.Define("Swap", func(i *adt.Instance, args ...any) any { return left.New(value(i)) })
		p.Define("Fold", func(i *adt.Instance, args ...any) any {
			adt.Fn(args, 0)
			return adt.Fn(args, 1)(value(i))
		})
	}
	p.Define("Merge", func(i *adt.Instance, args ...any) any { return value(i) })
}

// Either is a typed view onto an instance of Type, holding either a value of
// type L (Left) or of type R (Right).
type Either[L, R any] struct {
	inst *adt.Instance
}

// Left creates a Left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{inst: LeftVariant.New(l)}
}

// Right creates a Right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{inst: RightVariant.New(r)}
}

// Of is an alias for Right.
func Of[L, R any](r R) Either[L, R] {
	return Right[L](r)
}

// FromInstance wraps an instance of Type. It returns an error if i is not an
// Either, or if its value does not convert to L or R, respectively
// (see adt.Convert).
func FromInstance[L, R any](i *adt.Instance) (Either[L, R], error) {
	if !Type.HasInstance(i) {
		return Either[L, R]{}, errors.Wrapf(adt.ErrInvalidArgument, "%v is not an Either", i)
	}
	if LeftVariant.HasInstance(i) {
		l, err := adt.Convert[L](i.Get("value"))
		if err != nil {
			return Either[L, R]{}, errors.Wrapf(err, "value of %v", i)
		}
		return Left[L, R](l), nil
	}
	r, err := adt.Convert[R](i.Get("value"))
	if err != nil {
		return Either[L, R]{}, errors.Wrapf(err, "value of %v", i)
	}
	return Right[L](r), nil
}

// Instance returns the underlying instance. The zero value of Either is
// treated as Left holding the zero value of L.
func (e Either[L, R]) Instance() *adt.Instance {
	if e.inst == nil {
		var l L
		return LeftVariant.New(l)
	}
	return e.inst
}

// IsLeft is a predicate.
func (e Either[L, R]) IsLeft() bool {
	return !e.IsRight()
}

// IsRight is a predicate.
func (e Either[L, R]) IsRight() bool {
	return RightVariant.HasInstance(e.inst)
}

// Map transforms a Right value; Left values are passed through.
func (e Either[L, R]) Map(f func(R) R) Either[L, R] {
	return Map(f, e)
}

// LeftMap transforms a Left value; Right values are passed through.
func (e Either[L, R]) LeftMap(f func(L) L) Either[L, R] {
	return LeftMap(f, e)
}

// GetOrElse returns the Right value or def.
func (e Either[L, R]) GetOrElse(def R) R {
	return adt.Cast[R](e.Instance().MustCall("GetOrElse", def))
}

// Get returns the Right value, or an error wrapping ErrLeft.
func (e Either[L, R]) Get() (R, error) {
	x := e.Instance().MustCall("Get")
	if e.IsLeft() {
		var zero R
		return zero, x.(error)
	}
	return adt.Convert[R](x)
}

// OrElse recovers from a Left value with handler.
func (e Either[L, R]) OrElse(handler func(L) Either[L, R]) Either[L, R] {
	h := func(l L) *adt.Instance { return handler(l).Instance() }
	return Either[L, R]{inst: e.Instance().MustCall("OrElse", adt.Lift(h)).(*adt.Instance)}
}

// Swap turns a Left into a Right and vice versa.
func (e Either[L, R]) Swap() Either[R, L] {
	return Either[R, L]{inst: e.Instance().MustCall("Swap").(*adt.Instance)}
}

// Merge returns the value held, whichever side.
func (e Either[L, R]) Merge() any {
	return e.Instance().MustCall("Merge")
}

// Equals compares structurally.
func (e Either[L, R]) Equals(other Either[L, R]) bool {
	return derive.Equal(e.Instance(), other.Instance())
}

func (e Either[L, R]) String() string {
	return e.Instance().String()
}

// Map transforms the Right value of e.
func Map[L, R, S any](f func(R) S, e Either[L, R]) Either[L, S] {
	return Either[L, S]{inst: e.Instance().MustCall("Map", adt.Lift(f)).(*adt.Instance)}
}

// LeftMap transforms the Left value of e.
func LeftMap[L, R, M any](f func(L) M, e Either[L, R]) Either[M, R] {
	return Either[M, R]{inst: e.Instance().MustCall("LeftMap", adt.Lift(f)).(*adt.Instance)}
}

// Bimap transforms either side of e.
func Bimap[L, R, M, S any](f func(L) M, g func(R) S, e Either[L, R]) Either[M, S] {
	if e.IsLeft() {
		return Either[M, S]{inst: e.Instance().MustCall("LeftMap", adt.Lift(f)).(*adt.Instance)}
	}
	return Either[M, S]{inst: e.Instance().MustCall("Map", adt.Lift(g)).(*adt.Instance)}
}

// Chain sequences a computation on the Right value of e.
func Chain[L, R, S any](f func(R) Either[L, S], e Either[L, R]) Either[L, S] {
	g := func(r R) *adt.Instance { return f(r).Instance() }
	return Either[L, S]{inst: e.Instance().MustCall("Chain", adt.Lift(g)).(*adt.Instance)}
}

// Fold collapses e to a single value, applying f to a Left and g to a Right.
func Fold[L, R, T any](f func(L) T, g func(R) T, e Either[L, R]) T {
	return adt.Cast[T](e.Instance().MustCall("Fold", adt.Lift(f), adt.Lift(g)))
}

// Ap applies the function held by ef to the value held by x. If ef is a Left,
// it is the result; otherwise x.Map(f).
func Ap[L, T, S any](ef Either[L, func(T) S], x Either[L, T]) Either[L, S] {
	lifted := Map(adt.Lift[T, S], ef)
	return Either[L, S]{inst: lifted.Instance().MustCall("Ap", x.Instance()).(*adt.Instance)}
}

// Sequence turns a list of Eithers into an Either of a list. The result is the
// first Left in es, if any.
func Sequence[L, R any](es []Either[L, R]) Either[L, []R] {
	acc := Right[L](make([]R, 0, len(es)))
	for _, e := range es {
		e := e
		acc = Chain(func(rs []R) Either[L, []R] {
			return Map(func(r R) []R { return append(rs[:len(rs):len(rs)], r) }, e)
		}, acc)
	}
	return acc
}

// MapM applies f to every element of xs and sequences the results.
func MapM[L, T, S any](f func(T) Either[L, S], xs []T) Either[L, []S] {
	es := make([]Either[L, S], len(xs))
	for n, x := range xs {
		es[n] = f(x)
	}
	return Sequence(es)
}

// --- Matching --------------------------------------------------------------

// Matcher supports matching in a switch statement:
//
//     var n int
//     var s string
//     switch m := e.Match(); m {
//     case m.Left(&n):
//         …
//     case m.Right(&s):
//         …
//     }
//
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	inst *adt.Instance
}

// Match returns a matcher for e.
func (e Either[L, R]) Match() Matcher[L, R] {
	return matcher[L, R]{inst: e.Instance()}
}

func (em matcher[L, R]) Left(l *L) Matcher[L, R] {
	if LeftVariant.HasInstance(em.inst) {
		*l = adt.Cast[L](em.inst.Get("value"))
		return em
	}
	return nil
}

func (em matcher[L, R]) Right(r *R) Matcher[L, R] {
	if RightVariant.HasInstance(em.inst) {
		*r = adt.Cast[R](em.inst.Get("value"))
		return em
	}
	return nil
}
