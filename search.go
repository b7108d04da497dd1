package jarray

// Predicate tests one element. Context travels in the closure.
type Predicate[T any] func(elem T) bool

// FindFirst scans forward and returns the first element satisfying the
// predicate. The returned value is a slot copy; for pointer-kind containers
// it references the container-owned pointee and must not be retained across
// a mutation or Free.
func (a *Array[T]) FindFirst(predicate Predicate[T]) (T, *Error) {
	var none T
	if a == nil {
		return none, a.fail(InvalidArgument, "cannot search a nil array")
	}
	if predicate == nil {
		return none, a.fail(InvalidArgument, "predicate must not be nil")
	}
	if a.length == 0 {
		return none, a.fail(Empty, "cannot find element in an empty array")
	}
	for i := 0; i < a.length; i++ {
		if predicate(a.buf[i]) {
			a.succeed()
			return a.buf[i], nil
		}
	}
	return none, a.fail(ElementNotFound, "no element satisfies the predicate")
}

// FindLast scans backward and returns the last element satisfying the
// predicate. Same retention caveat as FindFirst.
func (a *Array[T]) FindLast(predicate Predicate[T]) (T, *Error) {
	var none T
	if a == nil {
		return none, a.fail(InvalidArgument, "cannot search a nil array")
	}
	if predicate == nil {
		return none, a.fail(InvalidArgument, "predicate must not be nil")
	}
	if a.length == 0 {
		return none, a.fail(Empty, "cannot find element in an empty array")
	}
	for i := a.length - 1; i >= 0; i-- {
		if predicate(a.buf[i]) {
			a.succeed()
			return a.buf[i], nil
		}
	}
	return none, a.fail(ElementNotFound, "no element satisfies the predicate")
}

// FindFirstIndex returns the index of the first element satisfying the
// predicate. When nothing matches, the container's length is returned as a
// sentinel together with an ElementNotFound error; callers must check the
// error, since the length is a legitimate-looking number as well.
func (a *Array[T]) FindFirstIndex(predicate Predicate[T]) (int, *Error) {
	if a == nil {
		return 0, a.fail(InvalidArgument, "cannot search a nil array")
	}
	if predicate == nil {
		return a.length, a.fail(InvalidArgument, "predicate must not be nil")
	}
	if a.length == 0 {
		return a.length, a.fail(Empty, "cannot find element in an empty array")
	}
	for i := 0; i < a.length; i++ {
		if predicate(a.buf[i]) {
			a.succeed()
			return i, nil
		}
	}
	return a.length, a.fail(ElementNotFound, "no element satisfies the predicate")
}

// FindLastIndex is the backward-scanning analogue of FindFirstIndex.
func (a *Array[T]) FindLastIndex(predicate Predicate[T]) (int, *Error) {
	if a == nil {
		return 0, a.fail(InvalidArgument, "cannot search a nil array")
	}
	if predicate == nil {
		return a.length, a.fail(InvalidArgument, "predicate must not be nil")
	}
	if a.length == 0 {
		return a.length, a.fail(Empty, "cannot find element in an empty array")
	}
	for i := a.length - 1; i >= 0; i-- {
		if predicate(a.buf[i]) {
			a.succeed()
			return i, nil
		}
	}
	return a.length, a.fail(ElementNotFound, "no element satisfies the predicate")
}

// IndexesOf returns the indices of all elements equal to elem, in encounter
// order. The returned slice is owned by the caller. Requires the Equal
// capability.
func (a *Array[T]) IndexesOf(elem T) ([]int, *Error) {
	if a == nil {
		return nil, a.fail(InvalidArgument, "cannot search a nil array")
	}
	if a.length == 0 {
		return nil, a.fail(Empty, "cannot search in an empty array")
	}
	if a.caps.Equal == nil {
		return nil, a.fail(EqualityCallbackMissing, "Equal callback not set")
	}
	var indexes []int
	for i := 0; i < a.length; i++ {
		if a.caps.Equal(a.buf[i], elem) {
			indexes = append(indexes, i)
		}
	}
	if len(indexes) == 0 {
		return nil, a.fail(ElementNotFound, "no matching elements found")
	}
	a.succeed()
	return indexes, nil
}

// Contains reports whether the array holds an element equal to elem,
// short-circuiting on the first match. Requires the Equal capability.
func (a *Array[T]) Contains(elem T) (bool, *Error) {
	if a == nil {
		return false, a.fail(InvalidArgument, "cannot search a nil array")
	}
	if a.length == 0 {
		return false, a.fail(Empty, "cannot check containment in an empty array")
	}
	if a.caps.Equal == nil {
		return false, a.fail(EqualityCallbackMissing, "Equal callback not set")
	}
	for i := 0; i < a.length; i++ {
		if a.caps.Equal(a.buf[i], elem) {
			a.succeed()
			return true, nil
		}
	}
	a.succeed()
	return false, nil
}

// Any reports whether any element satisfies the predicate, short-circuiting
// on the first match.
func (a *Array[T]) Any(predicate Predicate[T]) (bool, *Error) {
	if a == nil {
		return false, a.fail(InvalidArgument, "cannot search a nil array")
	}
	if a.length == 0 {
		return false, a.fail(Empty, "cannot check any on an empty array")
	}
	if predicate == nil {
		return false, a.fail(InvalidArgument, "predicate must not be nil")
	}
	for i := 0; i < a.length; i++ {
		if predicate(a.buf[i]) {
			a.succeed()
			return true, nil
		}
	}
	a.succeed()
	return false, nil
}

// ForEach applies fn to every element in order. fn receives a pointer into
// the live buffer, valid only for the duration of the call, and may mutate
// the element in place.
func (a *Array[T]) ForEach(fn func(elem *T)) *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot iterate over a nil array")
	}
	if fn == nil {
		return a.fail(InvalidArgument, "callback must not be nil")
	}
	if a.length == 0 {
		return a.fail(Empty, "cannot iterate over an empty array")
	}
	for i := 0; i < a.length; i++ {
		fn(&a.buf[i])
	}
	return a.succeed()
}
