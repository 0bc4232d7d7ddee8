package contiguous

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same length and equal elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like Equal but compares elements with eq. Use it for
// containers of containers:
//
//	contiguous.EqualFunc(a, b, contiguous.Equal[int])
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare compares a and b lexicographically. The first unequal pair
// decides; if one is a prefix of the other, the shorter is less.
// The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is like Compare but orders elements with compare.
func CompareFunc[T any](a, b *Vector[T], compare func(T, T) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), compare)
}

// ArrayEqual reports whether every pair of elements of a and b is equal.
// Arrays of different lengths are never equal.
func ArrayEqual[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// ArrayEqualFunc is like ArrayEqual but compares elements with eq.
func ArrayEqualFunc[T any](a, b *Array[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// ArrayCompare returns the comparison of the first unequal pair of elements
// in storage order, or 0 if all are equal.
func ArrayCompare[T cmp.Ordered](a, b *Array[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// ArrayCompareFunc is like ArrayCompare but orders elements with compare.
func ArrayCompareFunc[T any](a, b *Array[T], compare func(T, T) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), compare)
}
