/*
Package jarray implements a resizable sequence container in the spirit of
JavaScript arrays, with array-class algorithms (filter, sort, reduce, splice,
join, concat, search) driven by user-supplied capability callbacks.

A container is created empty or from existing data and configured with
options:

    arr := jarray.New[int](jarray.WithCapabilities(jarray.Capabilities[int]{
        Compare: func(a, b int) int { return a - b },
        Equal:   func(a, b int) bool { return a == b },
    }))

Optional capabilities unlock algorithm families: Compare unlocks Sort,
Equal unlocks Contains/IndexesOf/RemoveAll, Stringify unlocks Join, Print
unlocks Print. A missing capability is reported as an error of the matching
kind, never a panic.

Containers declare an element kind. KindValue elements are copied slot by
slot; KindOwnedPointer elements hold owned references and every structural
copy routes through the Clone capability, so two containers never share a
pointee. See Capabilities and Kind.

Every fallible operation returns a *Error carrying a kind from the taxonomy
in this package. The outcome of the most recent operation is additionally
recorded on the container and can be inspected with Status, reset with
ClearStatus, and rendered with PrintStatus.

The container is not safe for concurrent use.

Status

Work in progress.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package jarray

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jarray'.
func tracer() tracing.Trace {
	return tracing.Select("jarray")
}
