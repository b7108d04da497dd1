package jarray

// defaultGrowthFactor is applied when no WithGrowthFactor option is given.
const defaultGrowthFactor = 2.0

// Array is a resizable sequence container. The zero value is not usable;
// create instances with New, FromSlice, Adopt or NewReserve.
//
// Invariants maintained by every operation: length ≤ capacity, and
// capacity ≥ the reservation floor whenever a backing store is allocated.
// The backing store is absent exactly when the capacity is zero.
type Array[T any] struct {
	buf        []T // backing store; len(buf) is the capacity, nil iff capacity 0
	length     int
	minReserve int
	factor     float64
	kind       Kind
	caps       Capabilities[T]
	over       Overrides[T]
	status     *Error
}

// Option configures a container at creation time.
type Option[T any] struct {
	config func(*Array[T])
}

// WithCapabilities installs the capability table.
func WithCapabilities[T any](caps Capabilities[T]) Option[T] {
	return Option[T]{config: func(a *Array[T]) {
		a.caps = caps
	}}
}

// WithOverrides installs the override table.
func WithOverrides[T any](over Overrides[T]) Option[T] {
	return Option[T]{config: func(a *Array[T]) {
		a.over = over
	}}
}

// WithGrowthFactor sets the growth multiplier applied when the backing store
// has to grow. Factors below 1 are clamped to 1; a factor of 1 degrades to
// one-slot growth steps.
func WithGrowthFactor[T any](f float64) Option[T] {
	return Option[T]{config: func(a *Array[T]) {
		if f < 1 {
			f = 1
		}
		a.factor = f
	}}
}

// WithCapacity grants an initial capacity and sets the reservation floor,
// like an immediate Reserve on the fresh container.
func WithCapacity[T any](capacity int) Option[T] {
	return Option[T]{config: func(a *Array[T]) {
		if capacity <= 0 {
			return
		}
		a.minReserve = capacity
		a.buf = make([]T, capacity)
	}}
}

// OwnedPointers declares the container's slots to hold owned references.
// The Clone capability becomes mandatory for all structural copies.
func OwnedPointers[T any]() Option[T] {
	return Option[T]{config: func(a *Array[T]) {
		a.kind = KindOwnedPointer
	}}
}

// New creates an empty container.
//
//	arr := jarray.New[int](jarray.WithCapabilities(caps), jarray.WithCapacity(32))
func New[T any](opts ...Option[T]) *Array[T] {
	a := &Array[T]{factor: defaultGrowthFactor}
	for _, option := range opts {
		option.config(a)
	}
	return a
}

// FromSlice creates a container holding a copy of data. The copy is a slot
// copy even for pointer-kind containers: pointees stay aliased with the
// caller's slice. Use Adopt to transfer ownership instead, or AddAll on an
// empty container for a deep copy-in.
func FromSlice[T any](data []T, opts ...Option[T]) *Array[T] {
	a := New(opts...)
	if len(data) > len(a.buf) {
		a.buf = make([]T, len(data))
	}
	copy(a.buf, data)
	a.length = len(data)
	return a
}

// Adopt creates a container taking ownership of the caller's slice without
// copying. The caller must not use data afterwards.
func Adopt[T any](data []T, opts ...Option[T]) *Array[T] {
	a := New(opts...)
	a.buf = data[:len(data):len(data)]
	a.length = len(data)
	if a.minReserve > len(a.buf) {
		// a reservation floor above the adopted capacity forces one grow
		grown := make([]T, a.minReserve)
		copy(grown, data)
		a.buf = grown
	}
	return a
}

// NewReserve creates an empty container with a capacity grant, equivalent to
// New followed by Reserve.
func NewReserve[T any](capacity int, opts ...Option[T]) *Array[T] {
	opts = append(opts, WithCapacity[T](capacity))
	return New(opts...)
}

// --- Element access --------------------------------------------------------

// Len returns the number of occupied slots.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.length
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	if a == nil {
		return 0
	}
	return len(a.buf)
}

// Reservation returns the current reservation floor.
func (a *Array[T]) Reservation() int {
	if a == nil {
		return 0
	}
	return a.minReserve
}

// ElementKind reports whether slots hold values or owned references.
func (a *Array[T]) ElementKind() Kind {
	if a == nil {
		return KindValue
	}
	return a.kind
}

// At returns the element at index. The returned value is a slot copy; for
// pointer-kind containers it still references the container-owned pointee
// and must not be retained across a mutation or Free.
func (a *Array[T]) At(index int) (T, *Error) {
	var none T
	if a == nil {
		return none, a.fail(InvalidArgument, "cannot access element of a nil array")
	}
	if a.buf == nil {
		return none, a.fail(DataNull, "backing store of array is absent")
	}
	if index < 0 || index >= a.length {
		return none, a.fail(IndexOutOfBound, "index %d is out of bound", index)
	}
	a.succeed()
	return a.buf[index], nil
}

// Set replaces the element at index with a copy of elem (a deep copy for
// pointer-kind containers).
func (a *Array[T]) Set(index int, elem T) *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot set element of a nil array")
	}
	if a.length == 0 {
		return a.fail(Empty, "cannot set element in an empty array")
	}
	if index < 0 || index >= a.length {
		return a.fail(InvalidArgument, "index %d must be lower than the length of the array (%d)", index, a.length)
	}
	if err := a.copyElements(a.buf[index:index+1], []T{elem}); err != nil {
		return err
	}
	return a.succeed()
}

// --- Lifecycle -------------------------------------------------------------

// Clone returns a deep copy of the container: occupied slots are copied
// through the element copy primitive, slack capacity is preserved up to the
// reservation floor, and both callback tables are carried over.
func (a *Array[T]) Clone() (*Array[T], *Error) {
	if a == nil {
		return nil, a.fail(InvalidArgument, "cannot clone a nil array")
	}
	if a.length == 0 {
		return nil, a.fail(Empty, "cannot clone an empty array")
	}
	capacity := a.length
	if a.minReserve > capacity {
		capacity = a.minReserve
	}
	clone := &Array[T]{
		buf:        make([]T, capacity),
		length:     a.length,
		minReserve: a.minReserve,
		factor:     a.factor,
		kind:       a.kind,
		caps:       a.caps,
		over:       a.over,
	}
	if err := a.copyElements(clone.buf[:a.length], a.buf[:a.length]); err != nil {
		return nil, err
	}
	a.succeed()
	return clone, nil
}

// Clear resets the container to length zero. The backing store is released,
// unless a reservation floor is active, in which case a fresh store of floor
// capacity replaces it.
func (a *Array[T]) Clear() *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot clear a nil array")
	}
	if a.buf == nil {
		return a.fail(DataNull, "backing store of array is absent")
	}
	if a.minReserve > 0 {
		a.buf = make([]T, a.minReserve)
	} else {
		a.buf = nil
	}
	a.length = 0
	tracer().Debugf("cleared array, capacity now %d", len(a.buf))
	return a.succeed()
}

// Free releases the backing store and resets all fields, including the
// callback tables and the reservation floor. Pointer-kind containers drop
// their ownership of all pointees. The container may be re-initialized
// afterwards through the constructors only.
func (a *Array[T]) Free() {
	if a == nil {
		return
	}
	a.buf = nil
	a.length = 0
	a.minReserve = 0
	a.factor = 0
	a.kind = KindValue
	a.caps = Capabilities[T]{}
	a.over = Overrides[T]{}
	a.status = nil
}
