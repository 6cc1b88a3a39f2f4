package adt

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/xlab/treeprint"
)

// Fields is the visible data of an instance: a mapping from field name to value.
type Fields map[string]any

// Constructor produces the fields of a new instance from the arguments given
// to the variant factory. Its signature is the "shape" of the variant.
// A constructor may return nil for variants without fields.
type Constructor func(args ...any) Fields

// Record returns a constructor assigning its positional arguments to the
// given field names:
//
//     Point := adt.Spec("Point", adt.Record("x", "y"))
//     … Point.New(1, 2)  // fields: {x: 1, y: 2}
//
// Missing arguments leave the field set to nil, surplus arguments are dropped.
func Record(names ...string) Constructor {
	return func(args ...any) Fields {
		f := make(Fields, len(names))
		for i, name := range names {
			if i < len(args) {
				f[name] = args[i]
			} else {
				f[name] = nil
			}
		}
		return f
	}
}

// VariantSpec declares one variant of a union. Use Spec to create one.
type VariantSpec struct {
	Name string
	Ctor Constructor // may be nil for variants without fields
}

// Spec declares a variant with a name and a constructor.
func Spec(name string, ctor Constructor) VariantSpec {
	return VariantSpec{Name: name, Ctor: ctor}
}

// --- Union -----------------------------------------------------------------

// Union is the namespace of a sum type. It owns the variant factories and the
// union's identity. Every instance of every variant belongs to exactly one Union.
//
// The set of variants is fixed at declaration time.
type Union struct {
	typeID   string
	variants []*Variant          // in declaration order
	byTag    map[string]*Variant // same variants, by tag
}

// Declare creates a union with a type identifier and a list of variants.
// Variants will keep the order of declaration.
//
// Variant names must be identifiers, i.e. start with a letter or underscore,
// followed by letters, digits or underscores. They must be unique within the union;
// a duplicate name will result in ErrDuplicateVariant.
//
// The type identifier is a name for the union, used for rendering and serialization.
// It is not used for identity checks: two unions declared with the same
// type identifier are distinct unions.
func Declare(typeID string, specs ...VariantSpec) (*Union, error) {
	u := &Union{
		typeID:   typeID,
		variants: make([]*Variant, 0, len(specs)),
		byTag:    make(map[string]*Variant, len(specs)),
	}
	for _, spec := range specs {
		if !isIdentifier(spec.Name) {
			return nil, errors.Wrapf(ErrInvalidArgument, "union %s: variant name %q is not an identifier",
				typeID, spec.Name)
		}
		if _, exists := u.byTag[spec.Name]; exists {
			return nil, errors.Wrapf(ErrDuplicateVariant, "union %s: variant %q declared more than once",
				typeID, spec.Name)
		}
		v := &Variant{
			tag:     spec.Name,
			union:   u,
			ctor:    spec.Ctor,
			methods: make(map[string]Method),
		}
		u.variants = append(u.variants, v)
		u.byTag[spec.Name] = v
	}
	tracer().Debugf("declared union %s with %d variant(s)", typeID, len(u.variants))
	return u, nil
}

// MustDeclare is like Declare, but panics on error. It is intended for package
// level declarations:
//
//     var Shape = adt.MustDeclare("Shape", …)
//
func MustDeclare(typeID string, specs ...VariantSpec) *Union {
	u, err := Declare(typeID, specs...)
	if err != nil {
		tracer().Errorf("%v", err)
		panic(err)
	}
	return u
}

// TypeID returns the type identifier the union has been declared with.
func (u *Union) TypeID() string {
	return u.typeID
}

// Variants returns the variant factories of u, in order of declaration.
func (u *Union) Variants() []*Variant {
	vs := make([]*Variant, len(u.variants))
	copy(vs, u.variants)
	return vs
}

// Variant returns the variant factory for a tag, or nil if u has no such variant.
func (u *Union) Variant(tag string) *Variant {
	return u.byTag[tag]
}

// Lookup returns the variant factory for a tag.
func (u *Union) Lookup(tag string) (*Variant, bool) {
	v, ok := u.byTag[tag]
	return v, ok
}

// HasInstance is a predicate: does value belong to any variant of u?
func (u *Union) HasInstance(value any) bool {
	inst, ok := value.(*Instance)
	return ok && inst != nil && inst.variant != nil && inst.variant.union == u
}

// Derive applies derivations to every variant of u, in order: for each
// derivation, every variant is processed in order of declaration. A derivation
// applied later will see (and may override) behavior installed by earlier ones.
// Applying a derivation twice is not prevented.
//
// Derive returns u, to allow chaining. It panics if a derivation is nil.
//
// Derive must not be called concurrently with any other operation on u or its
// instances.
func (u *Union) Derive(derivations ...Derivation) *Union {
	for n, derivation := range derivations {
		if derivation == nil {
			err := errors.Wrapf(ErrInvalidArgument, "union %s: derivation #%d is nil", u.typeID, n)
			tracer().Errorf("%v", err)
			panic(err)
		}
		for _, v := range u.variants {
			derivation(&Prototype{variant: v}, u)
		}
	}
	if settings.traceDerive.Load() {
		tracer().Debugf("derived union\n%s", u.Dump())
	}
	return u
}

func (u *Union) String() string {
	tags := make([]string, len(u.variants))
	for i, v := range u.variants {
		tags[i] = v.tag
	}
	return fmt.Sprintf("%s{%s}", u.typeID, strings.Join(tags, " | "))
}

// Dump renders the union as a tree of variants and their installed behavior.
// Intended for debugging.
func (u *Union) Dump() string {
	tree := treeprint.NewWithRoot(u.typeID)
	for _, v := range u.variants {
		branch := tree.AddBranch(v.tag)
		for _, name := range v.Methods() {
			branch.AddNode(name)
		}
	}
	return tree.String()
}

// isIdentifier checks that a variant name is a valid identifier. As Any is not
// an identifier, no variant may collide with the fallback case of a pattern.
func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
