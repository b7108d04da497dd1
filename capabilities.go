package jarray

import "io"

// Kind declares how a container treats its slots.
type Kind int8

const (
	// KindValue slots hold plain values; structural copies are slot copies.
	KindValue Kind = iota
	// KindOwnedPointer slots hold owned references. Every structural copy
	// routes through the Clone capability so that no two containers ever
	// share a pointee. Clone is mandatory for this kind.
	KindOwnedPointer
)

// Capabilities is the per-container table of optional callbacks. Each slot
// unlocks one algorithm family; a missing slot is reported as an error of the
// matching kind when the family is used.
type Capabilities[T any] struct {
	// Print renders one element. Mandatory for Array.Print.
	Print func(w io.Writer, elem T)
	// Stringify converts one element to its textual form. Mandatory for Join.
	Stringify func(elem T) string
	// Compare returns negative/zero/positive. Mandatory for Sort, unless the
	// call supplies its own comparator.
	Compare func(a, b T) int
	// Equal tests element equality. Mandatory for Contains, IndexesOf and
	// RemoveAll.
	Equal func(a, b T) bool
	// Clone produces an independent owned duplicate of an element. Mandatory
	// whenever the container's kind is KindOwnedPointer; it is invoked once
	// per occupied slot on every structural copy. Nil references are stored
	// as-is without invoking Clone.
	Clone func(elem T) T
}

// Overrides replace whole-container behaviors.
type Overrides[T any] struct {
	// PrintArray, if set, replaces the default rendering of Array.Print.
	PrintArray func(w io.Writer, arr *Array[T])
	// RenderError, if set, replaces the default rendering of status records
	// originating from this container.
	RenderError func(err *Error) string
}
