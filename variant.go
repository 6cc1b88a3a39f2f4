package adt

import "fmt"

// Variant is the factory for the instances of one variant of a union.
//
// Identity facts of a variant (its tag and its union) are fixed at declaration
// time. Derivations may change the behavior of a variant's instances, but
// never its identity.
type Variant struct {
	tag     string
	union   *Union
	ctor    Constructor
	methods map[string]Method // behavior installed by derivations
}

// New creates an instance of variant v. The arguments are passed to the
// constructor of v, and the fields it returns become the fields of the new
// instance. A nil result creates an instance without fields.
func (v *Variant) New(args ...any) *Instance {
	var fields Fields
	if v.ctor != nil {
		fields = v.ctor(args...)
	}
	return v.instance(fields)
}

// Restore creates an instance of variant v with the given fields, without
// calling the constructor. It is meant for re-creating instances from a
// serialized form, where the fields are known but the constructor arguments
// are not.
func (v *Variant) Restore(fields Fields) *Instance {
	return v.instance(fields)
}

func (v *Variant) instance(fields Fields) *Instance {
	inst := &Instance{
		variant: v,
		fields:  make(Fields, len(fields)),
	}
	for k, x := range fields {
		inst.fields[k] = x
	}
	return inst
}

// Tag returns the name of the variant.
func (v *Variant) Tag() string {
	return v.tag
}

// TypeID returns the type identifier of the union v belongs to.
func (v *Variant) TypeID() string {
	return v.union.typeID
}

// Union returns the union v belongs to.
func (v *Variant) Union() *Union {
	return v.union
}

// HasInstance is a predicate: has value been created by v?
//
// This holds only if value belongs to the union of v and carries the tag
// of v. Instances of sibling variants, as well as instances of variants of
// other unions with the same name, are rejected, whatever their fields.
func (v *Variant) HasInstance(value any) bool {
	inst, ok := value.(*Instance)
	return ok && inst != nil && v.union.HasInstance(inst) && inst.variant.tag == v.tag
}

// Methods returns the names of the behavior installed for v, sorted.
func (v *Variant) Methods() []string {
	return sortedKeys(v.methods)
}

func (v *Variant) String() string {
	return fmt.Sprintf("%s.%s", v.union.typeID, v.tag)
}
