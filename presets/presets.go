package presets

import (
	"bytes"
	"fmt"
	"io"

	"github.com/npillmayer/jarray"
)

// ordered covers the element types with a natural total order.
type ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// Of returns an empty container for any naturally ordered element type, with
// the full capability bundle installed. The named constructors below are
// shorthands for the common instantiations.
func Of[T ordered](opts ...jarray.Option[T]) *jarray.Array[T] {
	tracer().Debugf("creating preset array of %T elements", *new(T))
	caps := jarray.WithCapabilities(jarray.Capabilities[T]{
		Print: func(w io.Writer, elem T) {
			fmt.Fprintf(w, "%v ", elem)
		},
		Stringify: func(elem T) string {
			return fmt.Sprintf("%v", elem)
		},
		Compare: func(a, b T) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			}
			return 0
		},
		Equal: func(a, b T) bool {
			return a == b
		},
	})
	return jarray.New(append([]jarray.Option[T]{caps}, opts...)...)
}

func Int(opts ...jarray.Option[int]) *jarray.Array[int]             { return Of(opts...) }
func Int16(opts ...jarray.Option[int16]) *jarray.Array[int16]       { return Of(opts...) }
func Int32(opts ...jarray.Option[int32]) *jarray.Array[int32]       { return Of(opts...) }
func Int64(opts ...jarray.Option[int64]) *jarray.Array[int64]       { return Of(opts...) }
func Uint(opts ...jarray.Option[uint]) *jarray.Array[uint]          { return Of(opts...) }
func Uint16(opts ...jarray.Option[uint16]) *jarray.Array[uint16]    { return Of(opts...) }
func Uint64(opts ...jarray.Option[uint64]) *jarray.Array[uint64]    { return Of(opts...) }
func Float32(opts ...jarray.Option[float32]) *jarray.Array[float32] { return Of(opts...) }
func Float64(opts ...jarray.Option[float64]) *jarray.Array[float64] { return Of(opts...) }
func Byte(opts ...jarray.Option[byte]) *jarray.Array[byte]          { return Of(opts...) }
func Rune(opts ...jarray.Option[rune]) *jarray.Array[rune]          { return Of(opts...) }

// String returns a container of Go strings. Strings are immutable values in
// Go, so this is a value-kind container; no Clone capability is needed.
func String(opts ...jarray.Option[string]) *jarray.Array[string] { return Of(opts...) }

// ByteSlices returns a pointer-kind container of byte slices with an
// owning Clone capability, the closest analogue of the classic owned-string
// element type: every structural copy duplicates the underlying bytes, so
// two containers never share a buffer.
func ByteSlices(opts ...jarray.Option[[]byte]) *jarray.Array[[]byte] {
	tracer().Debugf("creating pointer-kind preset array of byte slices")
	caps := jarray.WithCapabilities(jarray.Capabilities[[]byte]{
		Print: func(w io.Writer, elem []byte) {
			fmt.Fprintf(w, "%s ", elem)
		},
		Stringify: func(elem []byte) string {
			return string(elem)
		},
		Compare: bytes.Compare,
		Equal:   bytes.Equal,
		Clone: func(elem []byte) []byte {
			return append([]byte(nil), elem...)
		},
	})
	base := []jarray.Option[[]byte]{jarray.OwnedPointers[[]byte](), caps}
	return jarray.New(append(base, opts...)...)
}
