package jarray

// Add appends a copy of elem to the end of the array, growing the backing
// store by the growth rule if the capacity is exhausted.
func (a *Array[T]) Add(elem T) *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot add element to a nil array")
	}
	a.ensureCapacity(1)
	if err := a.copyElements(a.buf[a.length:a.length+1], []T{elem}); err != nil {
		return err
	}
	a.length++
	return a.succeed()
}

// AddAt inserts a copy of elem at index, shifting later elements one slot to
// the right. An index equal to the length appends.
func (a *Array[T]) AddAt(index int, elem T) *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot add element to a nil array")
	}
	if index < 0 || index > a.length {
		return a.fail(IndexOutOfBound, "index %d out of bound for insert", index)
	}
	a.ensureCapacity(1)
	copy(a.buf[index+1:a.length+1], a.buf[index:a.length])
	if err := a.copyElements(a.buf[index:index+1], []T{elem}); err != nil {
		return err
	}
	a.length++
	return a.succeed()
}

// RemoveAt removes the element at index, shifting later elements one slot to
// the left and applying the shrink rule.
func (a *Array[T]) RemoveAt(index int) *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot remove element from a nil array")
	}
	if index < 0 || index >= a.length {
		return a.fail(IndexOutOfBound, "index %d out of bound for remove", index)
	}
	copy(a.buf[index:a.length-1], a.buf[index+1:a.length])
	var zero T
	a.buf[a.length-1] = zero // drop the duplicated tail reference
	a.length--
	a.shrinkAfterRemoval()
	return a.succeed()
}

// Remove removes the last element.
func (a *Array[T]) Remove() *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot remove element from a nil array")
	}
	if a.length == 0 {
		return a.fail(Empty, "cannot remove from an empty array")
	}
	return a.RemoveAt(a.length - 1)
}

// AddAll appends copies of all elements of data, growing the backing store
// for the whole batch in one step.
func (a *Array[T]) AddAll(data []T) *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot add elements to a nil array")
	}
	if len(data) == 0 {
		return a.fail(InvalidArgument, "data is empty")
	}
	a.ensureCapacity(len(data))
	if err := a.copyElements(a.buf[a.length:a.length+len(data)], data); err != nil {
		return err
	}
	a.length += len(data)
	return a.succeed()
}

// Reserve sets the reservation floor to capacity and, if the current
// capacity is smaller, grows the backing store to exactly that many slots.
// Reservation is an exact request; the growth multiplier does not apply.
// The floor survives shrink-triggering removals and Clear.
func (a *Array[T]) Reserve(capacity int) *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot reserve capacity on a nil array")
	}
	if capacity < 0 {
		return a.fail(InvalidArgument, "capacity %d must not be negative", capacity)
	}
	a.minReserve = capacity
	if capacity > len(a.buf) {
		newBuf := make([]T, capacity)
		copy(newBuf, a.buf[:a.length])
		a.buf = newBuf
		tracer().Debugf("reserved %d slots", capacity)
	}
	return a.succeed()
}
