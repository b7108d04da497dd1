/*
Package presets provides ready-made capability bundles for common element
types. Each constructor returns an empty container with Print, Stringify,
Compare and Equal installed, so every algorithm family of the engine is
unlocked out of the box:

    arr := presets.Int()
    arr.AddMany(5, 3, 1)
    arr.Sort(jarray.QuickSort, nil)

ByteSlices returns a pointer-kind container whose Clone capability copies
the underlying bytes, the analogue of an owned-string element type.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package presets

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jarray.presets'.
func tracer() tracing.Trace {
	return tracing.Select("jarray.presets")
}
