package contiguous

import (
	"fmt"
	"iter"
)

// Array is a fixed-length contiguous sequence of T. Its length N is chosen
// when the array is built and never changes; the storage block is allocated
// once and never reallocated. Not goroutine-safe.
type Array[T any] struct {
	data []T
}

// NewArray returns an array of n zero values. If n <= 0, the array is empty.
func NewArray[T any](n int) *Array[T] {
	return &Array[T]{data: allocSlots[T](n)}
}

// ArrayFrom returns an array of length n holding copies of the first n
// elements of src. A shorter src is padded with zero values; a longer one is
// silently truncated.
func ArrayFrom[T any](n int, src []T) *Array[T] {
	a := NewArray[T](n)
	constructCopies(a.data, src[:min(len(src), len(a.data))])
	return a
}

// ArrayOf returns an array of length n initialized from values with the same
// truncate and pad policy as ArrayFrom.
func ArrayOf[T any](n int, values ...T) *Array[T] {
	return ArrayFrom(n, values)
}

// Len returns N. A nil array has length 0.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.data)
}

// IsEmpty reports whether N is 0.
func (a *Array[T]) IsEmpty() bool {
	return a.Len() == 0
}

// Get returns the element at index i. i is not validated.
func (a *Array[T]) Get(i int) T {
	return a.data[i]
}

// Set overwrites the element at index i. i is not validated.
func (a *Array[T]) Set(i int, x T) {
	a.data[i] = x
}

// Ptr returns a pointer to the element at index i. i is not validated.
func (a *Array[T]) Ptr(i int) *T {
	return &a.data[i]
}

// At returns the element at index i, or a *RangeError if i is not in [0, N).
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.data) {
		var zero T
		return zero, rangeError("Array.At", i, len(a.data))
	}
	return a.data[i], nil
}

// AtPtr returns a pointer to the element at index i, or a *RangeError if i
// is not in [0, N).
func (a *Array[T]) AtPtr(i int) (*T, error) {
	if i < 0 || i >= len(a.data) {
		return nil, rangeError("Array.AtPtr", i, len(a.data))
	}
	return &a.data[i], nil
}

// Front returns the first element. N must be greater than 0.
func (a *Array[T]) Front() T {
	return a.data[0]
}

// Back returns the last element. N must be greater than 0.
func (a *Array[T]) Back() T {
	return a.data[len(a.data)-1]
}

// Slice returns all N elements as a slice sharing the array's storage.
func (a *Array[T]) Slice() []T {
	if a == nil {
		return nil
	}
	return a.data[:len(a.data):len(a.data)]
}

// All returns an iterator over index/element pairs in storage order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.Len(); i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in storage order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.Len(); i++ {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs in reverse
// storage order.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.Len() - 1; i >= 0; i-- {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Swap exchanges every element with the element at the same index of other.
// Both arrays must have the same length.
func (a *Array[T]) Swap(other *Array[T]) {
	mustSameLen("Array.Swap", len(a.data), len(other.data))
	for i := range a.data {
		a.data[i], other.data[i] = other.data[i], a.data[i]
	}
}

// Clone returns an element-wise copy of a. A nil array clones to nil.
func (a *Array[T]) Clone() *Array[T] {
	if a == nil {
		return nil
	}
	c := &Array[T]{data: allocSlots[T](len(a.data))}
	constructCopies(c.data, a.data)
	return c
}

// CopyFrom replaces every element of a with a copy of the element at the
// same index of src. Copies are built before a is touched.
func (a *Array[T]) CopyFrom(src *Array[T]) {
	if a == src {
		return
	}
	mustSameLen("Array.CopyFrom", len(a.data), len(src.data))
	tmp := allocSlots[T](len(src.data))
	constructCopies(tmp, src.data)
	destroySlots(a.data)
	copy(a.data, tmp)
}

// MoveFrom transfers every element of src into a and resets src's slots to
// zero values. The previous elements of a are destroyed.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	mustSameLen("Array.MoveFrom", len(a.data), len(src.data))
	destroySlots(a.data)
	copy(a.data, src.data)
	clear(src.data)
}

// Release destroys every element, leaving N zero values. Safe on a nil array.
func (a *Array[T]) Release() {
	if a == nil {
		return
	}
	destroySlots(a.data)
}

func mustSameLen(op string, n, m int) {
	if n != m {
		panic(fmt.Sprintf("contiguous: %s: length mismatch %d != %d", op, n, m))
	}
}
