package jarray

import (
	"fmt"
	"reflect"
)

// copyElements is the element copy primitive all structural operations funnel
// through. For KindValue it is a plain slot copy. For KindOwnedPointer it
// walks the slots and deep-copies every non-nil reference through the Clone
// capability, so the destination never aliases a pointee with the source.
// dst and src must have equal length and must not overlap for pointer kind.
func (a *Array[T]) copyElements(dst, src []T) *Error {
	assertThat(len(dst) == len(src), "copy primitive called with mismatched slot counts %d/%d", len(dst), len(src))
	if a.kind == KindValue {
		copy(dst, src)
		return nil
	}
	if a.caps.Clone == nil {
		return a.fail(InvalidArgument, "Clone capability is mandatory for pointer-kind arrays")
	}
	for i, elem := range src {
		if isNilRef(elem) {
			dst[i] = elem
			continue
		}
		dst[i] = a.caps.Clone(elem)
	}
	return nil
}

// cloneValue applies the copy primitive to a single element.
func (a *Array[T]) cloneValue(elem T) (T, *Error) {
	if a.kind == KindValue {
		return elem, nil
	}
	var out [1]T
	if err := a.copyElements(out[:], []T{elem}); err != nil {
		var none T
		return none, err
	}
	return out[0], nil
}

// isNilRef reports whether elem is a nil reference of some kind. The copy
// primitive stores nil references verbatim instead of handing them to Clone.
func isNilRef(elem interface{}) bool {
	if elem == nil {
		return true
	}
	v := reflect.ValueOf(elem)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// ensureCapacity grows the backing store, if necessary, until it holds
// length+n slots. Growth applies the multiplier repeatedly (at least one slot
// per step, so a factor of 1 still terminates) and reallocates once at the
// final capacity. Existing slots are moved, not re-copied, since ownership
// stays with this container.
func (a *Array[T]) ensureCapacity(n int) {
	need := a.length + n
	capacity := len(a.buf)
	if capacity >= need {
		return
	}
	for capacity < need {
		next := int(float64(capacity) * a.factor)
		if next <= capacity {
			next = capacity + 1
		}
		capacity = next
	}
	newBuf := make([]T, capacity)
	copy(newBuf, a.buf[:a.length])
	tracer().Debugf("array grew from %d to %d slots", len(a.buf), capacity)
	a.buf = newBuf
}

// shrinkAfterRemoval applies the shrink rule after a removal. At length zero
// the store is released unless a reservation floor keeps it allocated; above
// zero the store shrinks to max(capacity/factor, floor, length) once the
// length falls to a factor's worth below the capacity.
func (a *Array[T]) shrinkAfterRemoval() {
	if a.length == 0 {
		if a.minReserve > 0 {
			if len(a.buf) != a.minReserve {
				a.buf = make([]T, a.minReserve)
			}
			return
		}
		a.buf = nil
		tracer().Debugf("array emptied, backing store released")
		return
	}
	capacity := len(a.buf)
	if a.length < a.minReserve {
		return
	}
	if float64(a.length)*a.factor > float64(capacity) {
		return
	}
	target := int(float64(capacity) / a.factor)
	if target < a.minReserve {
		target = a.minReserve
	}
	if target < a.length {
		target = a.length
	}
	if target >= capacity {
		return
	}
	newBuf := make([]T, target)
	copy(newBuf, a.buf[:a.length])
	tracer().Debugf("array shrank from %d to %d slots", capacity, target)
	a.buf = newBuf
}

// assertThat guards internal invariants. Expected failure modes never come
// through here; see the ErrorKind taxonomy for those.
func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("jarray: "+msg, msgargs...)
		panic(msg)
	}
}
