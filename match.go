package adt

import (
	"github.com/pkg/errors"
)

// Any is the key of the fallback case of a Pattern. It is not an identifier,
// thus never collides with the name of a variant.
const Any = "@@adt:any"

// Handler is a case of a pattern: it receives the instance matched.
type Handler func(*Instance) any

// Fallback is the handler for the Any case of a pattern. It receives no arguments.
type Fallback func() any

// Pattern maps variant names to handlers. Handlers may be of type Handler
// (or func(*Instance) any), or of type Fallback (or func() any) for cases not
// interested in the instance. The entry for key Any, if present, must be a
// Fallback and is used for variants without a case of their own.
//
//     area, err := shape.MatchWith(adt.Pattern{
//         "Circle": func(c *adt.Instance) any { return 3.14 * sq(c.Get("r")) },
//         adt.Any:  adt.Const[any](0.0),
//     })
//
type Pattern map[string]any

// MatchWith selects and calls a single handler from pattern p:
// the case for the variant of i, if present; otherwise the Any case, if present.
// The result of the handler is returned.
//
// If neither case is present, an *IncompleteMatchError is returned.
// A nil instance or pattern results in ErrInvalidArgument, as does a case
// which is not a function of the accepted signatures.
func (i *Instance) MatchWith(p Pattern) (any, error) {
	if i == nil || i.variant == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "cannot match a nil instance")
	}
	if p == nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s#MatchWith: pattern is nil", i.variant)
	}
	if h, ok := p[i.variant.tag]; ok {
		switch f := h.(type) {
		case Handler:
			if f != nil {
				return f(i), nil
			}
		case func(*Instance) any:
			if f != nil {
				return f(i), nil
			}
		case Fallback:
			if f != nil {
				return f(), nil
			}
		case func() any:
			if f != nil {
				return f(), nil
			}
		}
		return nil, errors.Wrapf(ErrInvalidArgument, "%s#MatchWith: case %q is not a handler (%T)",
			i.variant, i.variant.tag, h)
	}
	if h, ok := p[Any]; ok {
		switch f := h.(type) {
		case Fallback:
			if f != nil {
				return f(), nil
			}
		case func() any:
			if f != nil {
				return f(), nil
			}
		}
		return nil, errors.Wrapf(ErrInvalidArgument, "%s#MatchWith: fallback case is not a handler (%T)",
			i.variant, h)
	}
	err := &IncompleteMatchError{TypeID: i.variant.union.typeID, Tag: i.variant.tag}
	tracer().Errorf("%s#MatchWith: variant %s not covered", i.variant, i.variant.tag)
	return nil, err
}

// Cata is an alias for MatchWith.
func (i *Instance) Cata(p Pattern) (any, error) {
	return i.MatchWith(p)
}

// --- Typed matching --------------------------------------------------------

// Cases is a typed pattern. The case with key Any is the fallback case and will
// be called with a nil instance.
type Cases[R any] map[string]func(*Instance) R

// Match is the typed counterpart of MatchWith:
//
//     r, err := adt.Match(circle, adt.Cases[int]{
//         "Circle": func(c *adt.Instance) int { return c.Get("r").(int) },
//         adt.Any:  func(*adt.Instance) int { return 0 },
//     })
//
func Match[R any](i *Instance, cases Cases[R]) (R, error) {
	var r R
	if i == nil || i.variant == nil {
		return r, errors.Wrap(ErrInvalidArgument, "cannot match a nil instance")
	}
	if cases == nil {
		return r, errors.Wrapf(ErrInvalidArgument, "%s#Match: cases are nil", i.variant)
	}
	p := make(Pattern, len(cases))
	for tag, h := range cases {
		h := h
		if tag == Any {
			p[tag] = Fallback(func() any { return h(nil) })
		} else {
			p[tag] = Handler(func(i *Instance) any { return h(i) })
		}
	}
	x, err := i.MatchWith(p)
	if err != nil {
		return r, err
	}
	r, _ = x.(R)
	return r, nil
}
