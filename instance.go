package adt

import (
	"fmt"

	"github.com/pkg/errors"
)

// Instance is a value of a variant of a union. Instances are created by
// calling New on a variant factory.
//
// An instance is never re-tagged and never modified by this package
// after creation. Field values which are themselves mutable (slices,
// pointers, …) are the business of the client.
type Instance struct {
	variant *Variant
	fields  Fields
}

// Tag returns the name of the variant i belongs to, or "" for nil.
func (i *Instance) Tag() string {
	if i == nil || i.variant == nil {
		return ""
	}
	return i.variant.tag
}

// TypeID returns the type identifier of the union i belongs to, or "" for nil.
func (i *Instance) TypeID() string {
	if i == nil || i.variant == nil {
		return ""
	}
	return i.variant.union.typeID
}

// Variant returns the factory which created i.
func (i *Instance) Variant() *Variant {
	return i.variant
}

// Union returns the union i belongs to.
func (i *Instance) Union() *Union {
	return i.variant.union
}

// Fields returns a copy of the fields of i.
func (i *Instance) Fields() Fields {
	f := make(Fields, len(i.fields))
	for k, x := range i.fields {
		f[k] = x
	}
	return f
}

// FieldNames returns the names of the fields of i, sorted.
func (i *Instance) FieldNames() []string {
	return sortedKeys(i.fields)
}

// Get returns the value of a field, or nil if i has no such field.
func (i *Instance) Get(name string) any {
	return i.fields[name]
}

// Lookup returns the value of a field and whether i has a field of this name.
func (i *Instance) Lookup(name string) (any, bool) {
	x, ok := i.fields[name]
	return x, ok
}

// Method returns the behavior installed under name for the variant of i.
func (i *Instance) Method(name string) (Method, bool) {
	m, ok := i.variant.methods[name]
	return m, ok
}

// Call invokes the behavior installed under name for the variant of i.
// If no derivation installed such a behavior, ErrNoSuchMethod is returned.
// If the method rejects its arguments (see Arg and InvalidArgument), an error
// wrapping ErrInvalidArgument is returned.
func (i *Instance) Call(name string, args ...any) (r any, err error) {
	if i == nil || i.variant == nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "cannot call %q on a nil instance", name)
	}
	m, ok := i.variant.methods[name]
	if !ok {
		return nil, errors.Wrapf(ErrNoSuchMethod, "%s has no method %q", i.variant, name)
	}
	defer func() {
		if p := recover(); p != nil {
			ae, ok := p.(argumentError)
			if !ok {
				panic(p)
			}
			r, err = nil, errors.Wrapf(ae.error, "%s#%s", i.variant, name)
			tracer().Debugf("%v", err)
		}
	}()
	return m(i, args...), nil
}

// MustCall is like Call, but panics if Call returns an error.
func (i *Instance) MustCall(name string, args ...any) any {
	r, err := i.Call(name, args...)
	if err != nil {
		tracer().Errorf("%v", err)
		panic(err)
	}
	return r
}

// Is reports whether i is of the variant with the given name.
//
// Deprecated: Use HasInstance of the variant factory instead, which checks
// union identity as well.
func (i *Instance) Is(name string) bool {
	warnDeprecation("%s.Is(%q) is deprecated, use %s.HasInstance(value) to check if a value belongs to a variant",
		i.variant, name, name)
	return i.variant.tag == name
}

// String renders i with the "String" behavior, if a derivation installed one.
// Otherwise i is rendered as "TypeID.Tag".
func (i *Instance) String() string {
	if i == nil || i.variant == nil {
		return "<nil>"
	}
	if m, ok := i.variant.methods["String"]; ok {
		if s, ok := m(i).(string); ok {
			return s
		}
	}
	return i.variant.String()
}

// GoString is used for %#v.
func (i *Instance) GoString() string {
	if i == nil || i.variant == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s%#v", i.variant, map[string]any(i.fields))
}
