package adt

import (
	"reflect"

	"github.com/pkg/errors"
)

// Method is behavior installed for a variant by a derivation. It receives
// the instance it is invoked on and the arguments of the call.
type Method func(self *Instance, args ...any) any

// Derivation attaches behavior to a variant. It is called once per variant of
// a union by Union.Derive, with the prototype of the variant being processed.
//
// Structural derivations inspect the fields of instances generically and install
// identical behavior for every variant. Per-variant derivations look at the
// variant's tag and install different behavior for different variants.
type Derivation func(p *Prototype, u *Union)

// Prototype is the behavior surface of a variant, handed to derivations.
// It allows installing and overriding behavior of the variant's instances,
// but offers no way to change identity: tag, union and the instance check of a
// variant are read-only.
type Prototype struct {
	variant *Variant
}

// Variant returns the variant this prototype belongs to.
func (p *Prototype) Variant() *Variant {
	return p.variant
}

// Tag is a shortcut for p.Variant().Tag().
func (p *Prototype) Tag() string {
	return p.variant.tag
}

// Define installs behavior under a name, overriding any behavior of the same
// name installed before. It panics if m is nil.
func (p *Prototype) Define(name string, m Method) *Prototype {
	if m == nil || name == "" {
		err := errors.Wrapf(ErrInvalidArgument, "%s: cannot define method %q", p.variant, name)
		tracer().Errorf("%v", err)
		panic(err)
	}
	if _, exists := p.variant.methods[name]; exists {
		tracer().Debugf("%s: overriding method %s", p.variant, name)
	}
	p.variant.methods[name] = m
	return p
}

// Lookup returns the behavior currently installed under a name.
func (p *Prototype) Lookup(name string) (Method, bool) {
	m, ok := p.variant.methods[name]
	return m, ok
}

// --- Arguments of methods --------------------------------------------------

// argumentError is raised by methods rejecting their arguments and turned into
// an error return by Instance.Call.
type argumentError struct {
	error
}

// InvalidArgument aborts the method being called. Instance.Call then returns
// an error wrapping ErrInvalidArgument, with a message formatted from format
// and args.
func InvalidArgument(format string, args ...any) {
	panic(argumentError{errors.Wrapf(ErrInvalidArgument, format, args...)})
}

// Arg returns argument n of a method call as type T. It aborts the method
// with InvalidArgument if the argument is missing or not of type T. nil is
// accepted for interface types T.
func Arg[T any](args []any, n int) T {
	var zero T
	if n >= len(args) {
		InvalidArgument("missing argument #%d of type %s", n, typeOf[T]())
	}
	if args[n] == nil && typeOf[T]().Kind() == reflect.Interface {
		return zero
	}
	t, ok := args[n].(T)
	if !ok {
		InvalidArgument("argument #%d is of type %T, not %s", n, args[n], typeOf[T]())
	}
	return t
}

// Fn returns argument n of a method call as an untyped function, as produced
// by Lift. See Arg.
func Fn(args []any, n int) func(any) any {
	f := Arg[func(any) any](args, n)
	if f == nil {
		InvalidArgument("argument #%d is a nil function", n)
	}
	return f
}

// InstanceArg returns argument n of a method call, which must be an instance
// of union u. See Arg.
func InstanceArg(u *Union, args []any, n int) *Instance {
	i := Arg[*Instance](args, n)
	if !u.HasInstance(i) {
		InvalidArgument("argument #%d is not a %s: %v", n, u.TypeID(), i)
	}
	return i
}
