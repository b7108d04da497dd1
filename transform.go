package jarray

import (
	"sort"
	"strings"
)

// SortMethod selects one of four interchangeable sort strategies. All produce
// the same total order for the same comparator; stability differs between
// strategies (InsertionSort and BubbleSort are stable, QuickSort and
// SelectionSort are not) and callers must not rely on tie-break order unless
// they pin a stable method.
type SortMethod int

const (
	QuickSort SortMethod = iota // the library sort
	BubbleSort
	InsertionSort
	SelectionSort
)

// Sort orders the elements using the given method. The comparator is the
// Compare capability, unless custom is non-nil, which takes precedence.
// Sorting operates on a freshly allocated copy of the buffer; the container
// adopts the sorted copy only after the strategy completes, so a failing call
// leaves the container untouched.
func (a *Array[T]) Sort(method SortMethod, custom func(x, y T) int) *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot sort a nil array")
	}
	if a.length == 0 {
		return a.fail(Empty, "cannot sort an empty array")
	}
	compare := custom
	if compare == nil {
		compare = a.caps.Compare
	}
	if compare == nil {
		return a.fail(CompareCallbackMissing, "either Compare capability or a custom comparator must be set")
	}
	capacity := a.length
	if a.minReserve > capacity {
		capacity = a.minReserve
	}
	working := make([]T, capacity)
	if err := a.copyElements(working[:a.length], a.buf[:a.length]); err != nil {
		return err
	}
	elems := working[:a.length]

	switch method {
	case QuickSort:
		sort.Slice(elems, func(i, j int) bool {
			return compare(elems[i], elems[j]) < 0
		})
	case BubbleSort:
		for i := 0; i < len(elems)-1; i++ {
			for j := 0; j < len(elems)-i-1; j++ {
				if compare(elems[j], elems[j+1]) > 0 {
					elems[j], elems[j+1] = elems[j+1], elems[j]
				}
			}
		}
	case InsertionSort:
		for i := 1; i < len(elems); i++ {
			key := elems[i]
			j := i
			for j > 0 && compare(elems[j-1], key) > 0 {
				elems[j] = elems[j-1]
				j--
			}
			elems[j] = key
		}
	case SelectionSort:
		for i := 0; i < len(elems)-1; i++ {
			min := i
			for j := i + 1; j < len(elems); j++ {
				if compare(elems[j], elems[min]) < 0 {
					min = j
				}
			}
			if min != i {
				elems[i], elems[min] = elems[min], elems[i]
			}
		}
	default:
		return a.fail(UnimplementedFunction, "sort method %d not implemented", int(method))
	}

	a.buf = working
	return a.succeed()
}

// Filter returns a new container holding copies of the elements accepted by
// the predicate, in order, sized exactly to the match count. The new
// container inherits the capability and override tables; the source is
// unmodified.
func (a *Array[T]) Filter(predicate Predicate[T]) (*Array[T], *Error) {
	if a == nil {
		return nil, a.fail(InvalidArgument, "cannot filter a nil array")
	}
	if predicate == nil {
		return nil, a.fail(InvalidArgument, "predicate must not be nil")
	}
	count := 0
	for i := 0; i < a.length; i++ {
		if predicate(a.buf[i]) {
			count++
		}
	}
	result := &Array[T]{
		factor: a.factor,
		kind:   a.kind,
		caps:   a.caps,
		over:   a.over,
	}
	if count > 0 {
		result.buf = make([]T, count)
		result.length = count
		j := 0
		for i := 0; i < a.length; i++ {
			if !predicate(a.buf[i]) {
				continue
			}
			if err := a.copyElements(result.buf[j:j+1], a.buf[i:i+1]); err != nil {
				return nil, err
			}
			j++
		}
	}
	a.succeed()
	return result, nil
}

// Reducer folds one element into the accumulator and returns the next
// accumulator value. Reducers must return a fresh value rather than mutate
// the accumulator's pointee in place; for pointer-kind containers the engine
// re-copies the returned value into its persistent accumulator slot.
type Reducer[T any] func(accumulator, elem T) T

// Reduce folds the array left to right, seeding the accumulator with the
// first element and starting from the second. Use ReduceFrom to supply an
// initial value.
func (a *Array[T]) Reduce(reducer Reducer[T]) (T, *Error) {
	var none T
	if a == nil {
		return none, a.fail(InvalidArgument, "cannot reduce a nil array")
	}
	if reducer == nil {
		return none, a.fail(InvalidArgument, "reducer must not be nil")
	}
	if a.length == 0 {
		return none, a.fail(Empty, "cannot reduce an empty array")
	}
	acc, err := a.cloneValue(a.buf[0])
	if err != nil {
		return none, err
	}
	return a.foldForward(acc, 1, reducer)
}

// ReduceFrom folds the array left to right starting from an initial
// accumulator value.
func (a *Array[T]) ReduceFrom(initial T, reducer Reducer[T]) (T, *Error) {
	var none T
	if a == nil {
		return none, a.fail(InvalidArgument, "cannot reduce a nil array")
	}
	if reducer == nil {
		return none, a.fail(InvalidArgument, "reducer must not be nil")
	}
	if a.length == 0 {
		return none, a.fail(Empty, "cannot reduce an empty array")
	}
	acc, err := a.cloneValue(initial)
	if err != nil {
		return none, err
	}
	return a.foldForward(acc, 0, reducer)
}

func (a *Array[T]) foldForward(acc T, start int, reducer Reducer[T]) (T, *Error) {
	var none T
	for i := start; i < a.length; i++ {
		next, err := a.cloneValue(reducer(acc, a.buf[i]))
		if err != nil {
			return none, err
		}
		acc = next
	}
	a.succeed()
	return acc, nil
}

// ReduceRight folds the array right to left, seeding the accumulator with
// the last element and starting from the second-to-last.
func (a *Array[T]) ReduceRight(reducer Reducer[T]) (T, *Error) {
	var none T
	if a == nil {
		return none, a.fail(InvalidArgument, "cannot reduce a nil array")
	}
	if reducer == nil {
		return none, a.fail(InvalidArgument, "reducer must not be nil")
	}
	if a.length == 0 {
		return none, a.fail(Empty, "cannot reduce an empty array")
	}
	acc, err := a.cloneValue(a.buf[a.length-1])
	if err != nil {
		return none, err
	}
	return a.foldBackward(acc, a.length-2, reducer)
}

// ReduceRightFrom folds the array right to left starting from an initial
// accumulator value.
func (a *Array[T]) ReduceRightFrom(initial T, reducer Reducer[T]) (T, *Error) {
	var none T
	if a == nil {
		return none, a.fail(InvalidArgument, "cannot reduce a nil array")
	}
	if reducer == nil {
		return none, a.fail(InvalidArgument, "reducer must not be nil")
	}
	if a.length == 0 {
		return none, a.fail(Empty, "cannot reduce an empty array")
	}
	acc, err := a.cloneValue(initial)
	if err != nil {
		return none, err
	}
	return a.foldBackward(acc, a.length-1, reducer)
}

func (a *Array[T]) foldBackward(acc T, start int, reducer Reducer[T]) (T, *Error) {
	var none T
	for i := start; i >= 0; i-- {
		next, err := a.cloneValue(reducer(acc, a.buf[i]))
		if err != nil {
			return none, err
		}
		acc = next
	}
	a.succeed()
	return acc, nil
}

// Fill sets every slot in [start, end] (inclusive) to a copy of elem. An end
// at or beyond the current length grows the container, through the regular
// growth rule, to end+1 slots and extends the length accordingly.
func (a *Array[T]) Fill(elem T, start, end int) *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot fill a nil array")
	}
	if start < 0 || start > end {
		return a.fail(InvalidArgument, "start (%d) cannot be higher than end (%d)", start, end)
	}
	if start >= a.length {
		return a.fail(InvalidArgument, "start (%d) must be strictly lower than the length of the array (%d)", start, a.length)
	}
	if end >= a.length {
		a.ensureCapacity(end + 1 - a.length)
		a.length = end + 1
	}
	for i := start; i <= end; i++ {
		if err := a.copyElements(a.buf[i:i+1], []T{elem}); err != nil {
			return err
		}
	}
	return a.succeed()
}

// Join converts every element to text through the Stringify capability and
// concatenates the results with separator between them.
func (a *Array[T]) Join(separator string) (string, *Error) {
	if a == nil {
		return "", a.fail(InvalidArgument, "cannot join a nil array")
	}
	if a.length == 0 {
		return "", a.fail(Empty, "cannot join elements of an empty array")
	}
	if a.caps.Stringify == nil {
		return "", a.fail(StringifyCallbackMissing, "Stringify callback not set")
	}
	var b strings.Builder
	for i := 0; i < a.length; i++ {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(a.caps.Stringify(a.buf[i]))
	}
	a.succeed()
	return b.String(), nil
}

// Reverse reverses the element order in place.
func (a *Array[T]) Reverse() *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot reverse a nil array")
	}
	if a.length == 0 {
		return a.fail(Empty, "cannot reverse an empty array")
	}
	for i, j := 0, a.length-1; i < j; i, j = i+1, j-1 {
		a.buf[i], a.buf[j] = a.buf[j], a.buf[i]
	}
	return a.succeed()
}

// Subarray returns a new container holding copies of the elements from low
// to high, both inclusive. A high beyond the last element is clamped to it.
// The new container inherits the capability and override tables.
func (a *Array[T]) Subarray(low, high int) (*Array[T], *Error) {
	if a == nil {
		return nil, a.fail(InvalidArgument, "cannot take a subarray of a nil array")
	}
	if a.length == 0 {
		return nil, a.fail(Empty, "cannot take a subarray of an empty array")
	}
	if low < 0 || low > high {
		return nil, a.fail(InvalidArgument, "low (%d) cannot be higher than high (%d)", low, high)
	}
	if low >= a.length {
		return nil, a.fail(InvalidArgument, "low (%d) cannot be higher or equal to the length of the array (%d)", low, a.length)
	}
	if high >= a.length {
		high = a.length - 1
	}
	n := high - low + 1
	sub := &Array[T]{
		buf:    make([]T, n),
		length: n,
		factor: a.factor,
		kind:   a.kind,
		caps:   a.caps,
		over:   a.over,
	}
	if err := a.copyElements(sub.buf, a.buf[low:high+1]); err != nil {
		return nil, err
	}
	a.succeed()
	return sub, nil
}

// CopyData returns an owned copy of the occupied slots, deep-copied for
// pointer-kind containers. An empty array yields a nil slice without error.
func (a *Array[T]) CopyData() ([]T, *Error) {
	if a == nil {
		return nil, a.fail(InvalidArgument, "cannot copy data of a nil array")
	}
	if a.length == 0 {
		a.succeed()
		return nil, nil
	}
	out := make([]T, a.length)
	if err := a.copyElements(out, a.buf[:a.length]); err != nil {
		return nil, err
	}
	a.succeed()
	return out, nil
}

// Concat returns a new container holding deep copies of a's elements
// followed by b's. The operands must agree on element kind; their common
// element type is enforced by the type system. The result inherits a's
// capability and override tables and reserves its combined length.
func Concat[T any](a, b *Array[T]) (*Array[T], *Error) {
	if a == nil {
		return nil, a.fail(InvalidArgument, "cannot concatenate a nil array")
	}
	if b == nil {
		return nil, a.fail(InvalidArgument, "cannot concatenate with a nil array")
	}
	if a.kind != b.kind {
		return nil, a.fail(InvalidArgument, "element kinds do not match for concatenation")
	}
	n := a.length + b.length
	result := &Array[T]{
		length:     n,
		minReserve: n,
		factor:     a.factor,
		kind:       a.kind,
		caps:       a.caps,
		over:       a.over,
	}
	if n > 0 {
		result.buf = make([]T, n)
	}
	if err := a.copyElements(result.buf[:a.length], a.buf[:a.length]); err != nil {
		return nil, err
	}
	if err := b.copyElements(result.buf[a.length:], b.buf[:b.length]); err != nil {
		return nil, err
	}
	a.succeed()
	return result, nil
}
