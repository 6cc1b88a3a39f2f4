/*
Package adt implements closed tagged unions (sum types) as runtime values,
together with pattern dispatch over them and a derivation protocol to attach
behavior to every variant of a union.

Go has no native sum types. The usual stand-in is a sealed interface with one
struct per case, which gives the compiler a fighting chance but no way to attach
behavior uniformly to all cases after the fact. This package takes the dynamic
route: a union is declared once with a type identifier and a constructor per
variant,

    Shape := adt.MustDeclare("Shape",
        adt.Spec("Circle", adt.Record("r")),
        adt.Spec("Square", adt.Record("s")),
    )
    Circle, Square := Shape.Variant("Circle"), Shape.Variant("Square")

and values are produced by calling the variant factories:

    c := Circle.New(5)
    Circle.HasInstance(c)   // => true
    Square.HasInstance(c)   // => false

Case analysis is done with MatchWith, which is checked for completeness at
call time:

    r, err := c.MatchWith(adt.Pattern{
        "Circle": func(c *adt.Instance) any { return c.Get("r") },
        adt.Any:  func() any { return 0 },
    })

Derivations attach behavior to each variant after declaration. Package
adt/derive provides structural equality, rendering and serialization;
data types like adt/maybe install per-variant algebraic operations.

Instance identity is made of two hidden facts: the union an instance belongs to
and the variant tag. Unions declared with equal names are still distinct, and
instances are never recognized by the shape of their fields.

Concurrency

Declare and Derive must have completed before instances are created. After
that, all operations are read-only and may be called from concurrent goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package adt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adt'.
func tracer() tracing.Trace {
	return tracing.Select("adt")
}
