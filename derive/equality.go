package derive

import (
	"reflect"

	"github.com/npillmayer/adt"
)

// Equality installs behavior "Equals" for every variant of a union.
// Two instances are equal if they are of the same variant of the same union,
// have the same set of field names and pairwise equal field values.
// Field values which are instances themselves are compared with their own
// "Equals" behavior, if present, or else structurally; other values are
// compared with reflect.DeepEqual.
func Equality(p *adt.Prototype, u *adt.Union) {
	v := p.Variant()
	p.Define("Equals", func(self *adt.Instance, args ...any) any {
		if len(args) == 0 {
			return false
		}
		other, ok := args[0].(*adt.Instance)
		if !ok || !v.HasInstance(other) {
			return false
		}
		return fieldsEqual(self, other)
	})
}

// Equal compares two values. If a is an instance with behavior "Equals",
// it is used. Instances without it are compared structurally, other values
// with reflect.DeepEqual.
func Equal(a, b any) bool {
	ia, ok := a.(*adt.Instance)
	if !ok || ia == nil {
		return reflect.DeepEqual(a, b)
	}
	ib, ok := b.(*adt.Instance)
	if !ok || ib == nil {
		return false
	}
	if eq, ok := ia.Method("Equals"); ok {
		r, _ := eq(ia, ib).(bool)
		return r
	}
	return ia.Variant().HasInstance(ib) && fieldsEqual(ia, ib)
}

func fieldsEqual(a, b *adt.Instance) bool {
	fa, fb := a.Fields(), b.Fields()
	if len(fa) != len(fb) {
		return false
	}
	for k, x := range fa {
		y, ok := fb[k]
		if !ok || !Equal(x, y) {
			return false
		}
	}
	return true
}
