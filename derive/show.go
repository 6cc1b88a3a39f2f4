package derive

import (
	"fmt"
	"strings"

	"github.com/npillmayer/adt"
)

// Show installs behavior "String" for every variant of a union, which renders
// instances as
//
//     TypeID.Tag({ field1: value1, field2: value2 })
//
// with fields sorted by name. Strings are quoted, nested instances are rendered
// recursively. Variants without fields are rendered as "TypeID.Tag".
// As Instance.String uses this behavior, instances will print nicely with
// the fmt package.
func Show(p *adt.Prototype, u *adt.Union) {
	p.Define("String", func(self *adt.Instance, args ...any) any {
		return render(self)
	})
}

func render(i *adt.Instance) string {
	names := i.FieldNames()
	if len(names) == 0 {
		return i.Variant().String()
	}
	var b strings.Builder
	b.WriteString(i.Variant().String())
	b.WriteString("({ ")
	for n, name := range names {
		if n > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(showValue(i.Get(name)))
	}
	b.WriteString(" })")
	return b.String()
}

func showValue(x any) string {
	switch v := x.(type) {
	case nil:
		return "nil"
	case *adt.Instance:
		return v.String()
	case string:
		return fmt.Sprintf("%q", v)
	case fmt.Stringer:
		return v.String()
	case error:
		return fmt.Sprintf("error(%q)", v.Error())
	}
	return fmt.Sprintf("%v", x)
}
