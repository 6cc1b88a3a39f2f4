/*
Package derive provides structural derivations for unions of package adt.

Structural derivations do not care about the meaning of a variant. They look
at the fields of an instance generically and may thus be applied to any union:

    Shape := adt.MustDeclare("Shape", …).Derive(derive.Equality, derive.Show)

Equality installs behavior "Equals", Show installs "String" and Serialization
installs "ToJSON". Helpers Equal, Marshal and Unmarshal use these.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package derive

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adt.derive'.
func tracer() tracing.Trace {
	return tracing.Select("adt.derive")
}
