package contiguous

import (
	"iter"
	"unsafe"
)

// Vector is a growable contiguous sequence of T.
// The zero value is an empty vector ready to use. Not goroutine-safe.
//
// Slots [0, Len) hold live elements; slots [Len, Cap) are allocated but
// unconstructed and always hold the zero value of T. The storage block is
// nil if and only if Cap is 0.
//
// Positions passed to Insert and Erase are indexes. A position, like any
// slice obtained from Slice, is only valid until the next call that shifts
// elements or changes capacity.
//
// A nil *Vector reads as empty: the length, capacity, iteration, Clone,
// Release, Metrics and checked accessor methods accept it. Mutators and
// the unchecked accessors do not.
type Vector[T any] struct {
	data     []T // len(data) is the capacity
	size     int
	reallocs int
}

// New returns an empty vector with no storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithCapacity returns an empty vector with room for n elements.
// If n <= 0, no storage is allocated.
func WithCapacity[T any](n int) *Vector[T] {
	v := &Vector[T]{}
	v.Reserve(n)
	return v
}

// Filled returns a vector holding count copies of value.
// If count <= 0, the vector is empty.
func Filled[T any](count int, value T) *Vector[T] {
	v := &Vector[T]{data: allocSlots[T](count)}
	constructFill(v.data, value)
	v.size = len(v.data)
	return v
}

// FromSlice returns a vector holding copies of the elements of src.
// Capacity equals len(src).
func FromSlice[T any](src []T) *Vector[T] {
	v := &Vector[T]{data: allocSlots[T](len(src))}
	constructCopies(v.data, src)
	v.size = len(src)
	return v
}

// Of returns a vector holding copies of values, in order.
// If copying an element panics, the elements already built are destroyed
// and the panic continues.
func Of[T any](values ...T) *Vector[T] {
	return FromSlice(values)
}

// Collect returns a vector holding copies of the values yielded by seq.
func Collect[T any](seq iter.Seq[T]) *Vector[T] {
	v := &Vector[T]{}
	for x := range seq {
		v.PushBack(x)
	}
	return v
}

// Len returns the number of live elements. A nil vector has length 0.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Cap returns the number of allocated slots. A nil vector has capacity 0.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// IsEmpty reports whether the vector has no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Get returns the element at index i without checking i against Len.
// Reading past Len is a contract violation; use At when i is untrusted.
func (v *Vector[T]) Get(i int) T {
	return v.data[i]
}

// Set overwrites the element at index i without checking i against Len.
// The previous value is not released.
func (v *Vector[T]) Set(i int, x T) {
	v.data[i] = x
}

// Ptr returns a pointer to the slot at index i without checking i against Len.
func (v *Vector[T]) Ptr(i int) *T {
	return &v.data[i]
}

// UnsafeGet returns the element at index i with no bounds check at all.
// It must only be used with 0 <= i < Len.
func (v *Vector[T]) UnsafeGet(i int) T {
	base := unsafe.Pointer(unsafe.SliceData(v.data))
	return *(*T)(unsafe.Add(base, uintptr(i)*elemSize[T]()))
}

// At returns the element at index i, or a *RangeError if i is not in [0, Len).
// A nil vector behaves as an empty one.
func (v *Vector[T]) At(i int) (T, error) {
	if n := v.Len(); i < 0 || i >= n {
		var zero T
		return zero, rangeError("Vector.At", i, n)
	}
	return v.data[i], nil
}

// AtPtr returns a pointer to the element at index i, or a *RangeError if i
// is not in [0, Len).
func (v *Vector[T]) AtPtr(i int) (*T, error) {
	if n := v.Len(); i < 0 || i >= n {
		return nil, rangeError("Vector.AtPtr", i, n)
	}
	return &v.data[i], nil
}

// Front returns the first element, or a *RangeError if the vector is empty.
func (v *Vector[T]) Front() (T, error) {
	if v.Len() == 0 {
		var zero T
		return zero, rangeError("Vector.Front", -1, 0)
	}
	return v.data[0], nil
}

// Back returns the last element, or a *RangeError if the vector is empty.
func (v *Vector[T]) Back() (T, error) {
	if v.Len() == 0 {
		var zero T
		return zero, rangeError("Vector.Back", -1, 0)
	}
	return v.data[v.size-1], nil
}

// Slice returns the live elements as a slice sharing the vector's storage.
// Writes through it are visible in the vector; its capacity is clipped to
// Len so appends never touch unconstructed slots.
func (v *Vector[T]) Slice() []T {
	if v == nil {
		return nil
	}
	return v.data[:v.size:v.size]
}

// All returns an iterator over index/element pairs in storage order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in storage order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs from the last
// element to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Reserve makes room for at least n elements. It is a no-op if n <= Cap.
// Otherwise a block of exactly n slots replaces the current one and the live
// elements are moved into it in index order.
func (v *Vector[T]) Reserve(n int) {
	if n <= len(v.data) {
		return
	}
	v.reallocate(n)
}

// ShrinkToFit reallocates the storage down to exactly Len slots. An empty
// vector drops its storage entirely.
func (v *Vector[T]) ShrinkToFit() {
	if v.size == len(v.data) {
		return
	}
	v.reallocate(v.size)
}

// reallocate moves the live elements into a fresh block of n slots.
// Moves never fail, so the old block is simply dropped afterwards.
func (v *Vector[T]) reallocate(n int) {
	next := allocSlots[T](n)
	copy(next, v.data[:v.size])
	v.data = next
	v.reallocs++
}

// Clear destroys all live elements. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	destroySlots(v.data[:v.size])
	v.size = 0
}

// Release destroys all live elements and drops the storage block.
// The vector remains usable as an empty vector. Safe on a nil vector.
func (v *Vector[T]) Release() {
	if v == nil {
		return
	}
	v.Clear()
	v.data = nil
}

// Swap exchanges the contents of v and other in O(1). The reallocation
// counts travel with the storage blocks.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data, other.data = other.data, v.data
	v.size, other.size = other.size, v.size
	v.reallocs, other.reallocs = other.reallocs, v.reallocs
}

// Clone returns a deep copy of v with the same capacity. Elements
// implementing Cloner are copied with Clone. A nil vector clones to nil.
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return nil
	}
	c := &Vector[T]{data: allocSlots[T](len(v.data))}
	constructCopies(c.data, v.data[:v.size])
	c.size = v.size
	return c
}

// Assign replaces the contents of v with a deep copy of src.
// The copy is built before v is touched, so a panic while copying leaves v
// unchanged. The copy lives in a fresh block, so v's reallocation count
// starts over at 0.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := src.Clone()
	if tmp == nil {
		tmp = &Vector[T]{}
	}
	v.Swap(tmp)
	tmp.Release()
}

// Move returns a new vector that owns v's storage and its reallocation
// count, and resets v to the empty state (no storage, length 0, capacity 0,
// no reallocations).
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{data: v.data, size: v.size, reallocs: v.reallocs}
	v.data, v.size, v.reallocs = nil, 0, 0
	return m
}

// MoveFrom releases the contents of v, takes over src's storage and its
// reallocation count, and resets src to the empty state. A nil src leaves v
// empty.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Release()
	if src == nil {
		v.reallocs = 0
		return
	}
	v.data, v.size, v.reallocs = src.data, src.size, src.reallocs
	src.data, src.size, src.reallocs = nil, 0, 0
}
