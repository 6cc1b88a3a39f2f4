package derive

import (
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/npillmayer/adt"
)

var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Keys of the JSON representation of an instance.
const (
	TypeKey  = "@@type"
	TagKey   = "@@tag"
	ValueKey = "@@value"
)

// Errors returned by Unmarshal.
var (
	ErrMalformed   = errors.New("malformed serialization of instance")
	ErrUnknownType = errors.New("unknown union type")
	ErrUnknownTag  = errors.New("unknown variant")
)

// Serialization installs behavior "ToJSON" for every variant of a union.
// It returns a JSON-compatible map
//
//     { "@@type": TypeID, "@@tag": Tag, "@@value": { field: value, … } }
//
// where field values which are instances are converted recursively.
func Serialization(p *adt.Prototype, u *adt.Union) {
	p.Define("ToJSON", func(self *adt.Instance, args ...any) any {
		return toJSON(self)
	})
}

func toJSON(i *adt.Instance) map[string]any {
	fields := i.Fields()
	value := make(map[string]any, len(fields))
	for k, x := range fields {
		value[k] = jsonValue(x)
	}
	return map[string]any{
		TypeKey:  i.TypeID(),
		TagKey:   i.Tag(),
		ValueKey: value,
	}
}

func jsonValue(x any) any {
	switch v := x.(type) {
	case *adt.Instance:
		if v == nil {
			return nil
		}
		if m, ok := v.Method("ToJSON"); ok {
			return m(v)
		}
		return toJSON(v)
	case []any:
		vs := make([]any, len(v))
		for n, y := range v {
			vs[n] = jsonValue(y)
		}
		return vs
	case error:
		return v.Error()
	}
	return x
}

// Marshal encodes an instance as JSON. If the instance has behavior "ToJSON"
// (see Serialization), it is used, otherwise the instance is converted structurally.
func Marshal(i *adt.Instance) ([]byte, error) {
	if i == nil {
		return nil, errors.Wrap(adt.ErrInvalidArgument, "cannot marshal nil instance")
	}
	data, err := json.Marshal(jsonValue(i))
	if err != nil {
		return nil, errors.Wrapf(err, "marshaling %s", i.Variant())
	}
	return data, nil
}

// Unmarshal decodes an instance from its JSON representation, as produced by
// Marshal. The unions given are used to look up the union of the instance by
// type identifier, including nested instances. Instances are re-created
// without calling the variant constructors.
//
// JSON numbers are decoded as int64 if they are integral and fit, and as
// float64 otherwise. Typed views (e.g. maybe.FromInstance) convert them to
// their element types.
func Unmarshal(data []byte, unions ...*adt.Union) (*adt.Instance, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	known := make(map[string]*adt.Union, len(unions))
	for _, u := range unions {
		known[u.TypeID()] = u
	}
	return revive(raw, known)
}

func revive(raw map[string]any, known map[string]*adt.Union) (*adt.Instance, error) {
	typeID, ok := raw[TypeKey].(string)
	if !ok {
		return nil, errors.Wrapf(ErrMalformed, "missing %s", TypeKey)
	}
	tag, ok := raw[TagKey].(string)
	if !ok {
		return nil, errors.Wrapf(ErrMalformed, "missing %s", TagKey)
	}
	u, ok := known[typeID]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "%s", typeID)
	}
	v, ok := u.Lookup(tag)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTag, "%s.%s", typeID, tag)
	}
	fields := adt.Fields{}
	if value, present := raw[ValueKey]; present && value != nil {
		m, ok := value.(map[string]any)
		if !ok {
			return nil, errors.Wrapf(ErrMalformed, "%s of %s.%s is not an object", ValueKey, typeID, tag)
		}
		for k, x := range m {
			y, err := reviveValue(x, known)
			if err != nil {
				return nil, err
			}
			fields[k] = y
		}
	}
	tracer().Debugf("revived %s with %d field(s)", v, len(fields))
	return v.Restore(fields), nil
}

func reviveValue(x any, known map[string]*adt.Union) (any, error) {
	switch v := x.(type) {
	case map[string]any:
		if _, ok := v[TypeKey]; ok {
			inst, err := revive(v, known)
			if err != nil {
				return nil, err
			}
			return inst, nil
		}
	case stdjson.Number:
		return number(v), nil
	case []any:
		vs := make([]any, len(v))
		for n, y := range v {
			z, err := reviveValue(y, known)
			if err != nil {
				return nil, err
			}
			vs[n] = z
		}
		return vs, nil
	}
	return x, nil
}

func number(n stdjson.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
