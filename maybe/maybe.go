/*
Package maybe implements an optional value: a Maybe is either Just a value
or Nothing.

Maybe is a union of package adt, with variants "Just" and "Nothing":

    x := maybe.Just(7)
    maybe.Type.HasInstance(x.Instance())   // => true

Type Maybe[T] is a typed view onto instances of this union. The zero value
of Maybe[T] is Nothing.
*/
package maybe

import (
	"github.com/pkg/errors"

	"github.com/npillmayer/adt"
	"github.com/npillmayer/adt/derive"
)

// Type is the union for optional values.
var Type = adt.MustDeclare("adt:Maybe",
	adt.Spec("Just", adt.Record("value")),
	adt.Spec("Nothing", nil),
).Derive(derive.Equality, derive.Show, derive.Serialization, algebra)

// Variant factories of Type.
var (
	JustVariant    = Type.Variant("Just")
	NothingVariant = Type.Variant("Nothing")
)

// ErrNothing is returned when extracting a value from Nothing.
var ErrNothing = errors.New("cannot extract the value of Nothing")

// algebra installs the operations of Maybe, which differ between Just and Nothing.
func algebra(p *adt.Prototype, u *adt.Union) {
	switch p.Tag() {
	case "Just":
		just := p.Variant()
		p.Define("Map", func(self *adt.Instance, args ...any) any {
			f := adt.Fn(args, 0)
			return just.New(f(self.Get("value")))
		})
		p.Define("Chain", func(self *adt.Instance, args ...any) any {
			f := adt.Fn(args, 0)
			return f(self.Get("value"))
		})
		// Just(f).Ap(x) = x.Map(f)
		p.Define("Ap", func(self *adt.Instance, args ...any) any {
			x := adt.InstanceArg(u, args, 0)
			f, ok := self.Get("value").(func(any) any)
			if !ok || f == nil {
				adt.InvalidArgument("%v does not hold a function", self)
			}
			return x.MustCall("Map", f)
		})
		p.Define("GetOrElse", func(self *adt.Instance, args ...any) any {
			return self.Get("value")
		})
		p.Define("OrElse", func(self *adt.Instance, args ...any) any {
			return self
		})
		p.Define("Get", func(self *adt.Instance, args ...any) any {
			return self.Get("value")
		})
		p.Define("Filter", func(self *adt.Instance, args ...any) any {
			pred := adt.Fn(args, 0)
			if keep, _ := pred(self.Get("value")).(bool); keep {
				return self
			}
			return u.Variant("Nothing").New()
		})
	case "Nothing":
		p.Define("Map", func(self *adt.Instance, args ...any) any {
			adt.Fn(args, 0)
			return self
		})
		p.Define("Chain", func(self *adt.Instance, args ...any) any {
			adt.Fn(args, 0)
			return self
		})
		p.Define("Ap", func(self *adt.Instance, args ...any) any {
			adt.InstanceArg(u, args, 0)
			return self
		})
		p.Define("GetOrElse", func(self *adt.Instance, args ...any) any {
			return adt.Arg[any](args, 0)
		})
		p.Define("OrElse", func(self *adt.Instance, args ...any) any {
			return adt.Arg[func() any](args, 0)()
		})
		p.Define("Get", func(self *adt.Instance, args ...any) any {
			return ErrNothing
		})
		p.Define("Filter", func(self *adt.Instance, args ...any) any {
			adt.Fn(args, 0)
			return self
		})
	}
}

// Maybe is a typed view onto an instance of Type.
type Maybe[T any] struct {
	inst *adt.Instance
}

// Just creates a Maybe holding x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{inst: JustVariant.New(x)}
}

// Nothing creates an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{inst: NothingVariant.New()}
}

// Of is an alias for Just.
func Of[T any](x T) Maybe[T] {
	return Just(x)
}

// FromInstance wraps an instance of Type, e.g. one revived by derive.Unmarshal.
// It returns an error if i is not a Maybe, or if the value of a Just does not
// convert to T (see adt.Convert).
func FromInstance[T any](i *adt.Instance) (Maybe[T], error) {
	if !Type.HasInstance(i) {
		return Maybe[T]{}, errors.Wrapf(adt.ErrInvalidArgument, "%v is not a Maybe", i)
	}
	if NothingVariant.HasInstance(i) {
		return Maybe[T]{inst: i}, nil
	}
	x, err := adt.Convert[T](i.Get("value"))
	if err != nil {
		return Maybe[T]{}, errors.Wrapf(err, "value of %v", i)
	}
	return Just(x), nil
}

// Instance returns the underlying instance of union Type.
func (m Maybe[T]) Instance() *adt.Instance {
	if m.inst == nil {
		return NothingVariant.New()
	}
	return m.inst
}

// IsJust is a predicate: does m hold a value?
func (m Maybe[T]) IsJust() bool {
	return JustVariant.HasInstance(m.inst)
}

// IsNothing is a predicate: is m empty?
func (m Maybe[T]) IsNothing() bool {
	return !m.IsJust()
}

// WithDefault returns the value of m, or def if m is Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	return adt.Cast[T](m.Instance().MustCall("GetOrElse", def))
}

// GetOrElse is an alias for WithDefault.
func (m Maybe[T]) GetOrElse(def T) T {
	return m.WithDefault(def)
}

// Get returns the value of m, or ErrNothing.
func (m Maybe[T]) Get() (T, error) {
	x := m.Instance().MustCall("Get")
	if err, isErr := x.(error); isErr && m.IsNothing() {
		var zero T
		return zero, err
	}
	return adt.Convert[T](x)
}

// Map applies f to the value of m, if any.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	return Map(f, m)
}

// OrElse returns m if it holds a value, or the result of f otherwise.
func (m Maybe[T]) OrElse(f func() Maybe[T]) Maybe[T] {
	r := m.Instance().MustCall("OrElse", func() any { return f().Instance() })
	return Maybe[T]{inst: r.(*adt.Instance)}
}

// Filter turns m into Nothing if its value does not satisfy pred.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	r := m.Instance().MustCall("Filter", adt.Lift(pred))
	return Maybe[T]{inst: r.(*adt.Instance)}
}

// Equals compares m to other structurally.
func (m Maybe[T]) Equals(other Maybe[T]) bool {
	return derive.Equal(m.Instance(), other.Instance())
}

func (m Maybe[T]) String() string {
	return m.Instance().String()
}

// Map applies f to the value of x, if any.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	r := x.Instance().MustCall("Map", adt.Lift(f))
	return Maybe[S]{inst: r.(*adt.Instance)}
}

// AndThen chains a computation which may produce Nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	g := func(t T) *adt.Instance { return f(t).Instance() }
	r := x.Instance().MustCall("Chain", adt.Lift(g))
	return Maybe[S]{inst: r.(*adt.Instance)}
}

// Ap applies the function held by mf to the value held by x. The result is
// Nothing if either of them is Nothing.
func Ap[T, S any](mf Maybe[func(T) S], x Maybe[T]) Maybe[S] {
	lifted := Map(adt.Lift[T, S], mf)
	r := lifted.Instance().MustCall("Ap", x.Instance())
	return Maybe[S]{inst: r.(*adt.Instance)}
}

// Sequence turns a list of Maybes into a Maybe of a list. The result is
// Nothing if any element is Nothing.
func Sequence[T any](xs []Maybe[T]) Maybe[[]T] {
	acc := Just(make([]T, 0, len(xs)))
	for _, x := range xs {
		x := x
		acc = AndThen(func(vs []T) Maybe[[]T] {
			return Map(func(v T) []T { return append(vs[:len(vs):len(vs)], v) }, x)
		}, acc)
	}
	return acc
}

// MapM applies f to every element of xs and sequences the results.
func MapM[T, S any](f func(T) Maybe[S], xs []T) Maybe[[]S] {
	ms := make([]Maybe[S], len(xs))
	for n, x := range xs {
		ms[n] = f(x)
	}
	return Sequence(ms)
}

// --- Matching --------------------------------------------------------------

// Matcher supports matching in a switch statement:
//
//     var v int
//     switch m := x.Match(); m {
//     case m.Just(&v):
//         …
//     case m.Nothing():
//         …
//     }
//
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	inst *adt.Instance
}

// Match returns a matcher for m.
func (m Maybe[T]) Match() Matcher[T] {
	return matcher[T]{inst: m.Instance()}
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if JustVariant.HasInstance(mm.inst) {
		*v = adt.Cast[T](mm.inst.Get("value"))
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if NothingVariant.HasInstance(mm.inst) {
		return mm
	}
	return nil
}
