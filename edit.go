package jarray

import "sort"

// Splice removes removeCount elements starting at index, then inserts the
// given elements at index in their given order. Removal past the end of the
// array is clamped: the call stops removing, without error, once the array
// runs out of elements. Index itself must not exceed the length.
func (a *Array[T]) Splice(index, removeCount int, insert ...T) *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot splice a nil array")
	}
	if index < 0 || index > a.length {
		return a.fail(InvalidArgument, "index (%d) must be <= length (%d)", index, a.length)
	}
	for i := 0; i < removeCount && index < a.length; i++ {
		if err := a.RemoveAt(index); err != nil {
			return err
		}
	}
	for offset, elem := range insert {
		if err := a.AddAt(index+offset, elem); err != nil {
			return err
		}
	}
	return a.succeed()
}

// AddMany appends the given elements in argument order.
func (a *Array[T]) AddMany(elems ...T) *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot add elements to a nil array")
	}
	for _, elem := range elems {
		if err := a.Add(elem); err != nil {
			return err
		}
	}
	return a.succeed()
}

// RemoveAll removes every occurrence of every candidate in data (multiset
// semantics). For each candidate all matching indices are collected, sorted
// ascending and removed highest index first, so earlier removals never
// invalidate later indices. A candidate without matches is skipped; an array
// that runs empty mid-way stops the operation early. Neither case is an
// error. Requires the Equal capability.
func (a *Array[T]) RemoveAll(data []T) *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot remove elements from a nil array")
	}
	if len(data) == 0 {
		return a.fail(InvalidArgument, "data is empty")
	}
	for _, candidate := range data {
		indexes, err := a.IndexesOf(candidate)
		if err != nil {
			if err.Kind == ElementNotFound {
				continue
			}
			if err.Kind == Empty {
				break
			}
			return err
		}
		sort.Ints(indexes)
		for j := len(indexes) - 1; j >= 0; j-- {
			if rerr := a.RemoveAt(indexes[j]); rerr != nil {
				return rerr
			}
		}
	}
	return a.succeed()
}

// Shift drops the first element and compacts the rest to the left, applying
// the shrink rule.
func (a *Array[T]) Shift() *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot shift a nil array")
	}
	if a.length == 0 {
		return a.fail(Empty, "cannot shift an empty array")
	}
	return a.RemoveAt(0)
}

// ShiftRight grows the array by one slot, shifts every element one position
// to the right and inserts a copy of elem at slot 0.
func (a *Array[T]) ShiftRight(elem T) *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot shift a nil array")
	}
	return a.AddAt(0, elem)
}
