// Package contiguous implements two generic contiguous containers for Go:
// Array, a fixed-length array, and Vector, a growable dynamic array with
// explicit capacity management.
//
// # Overview
//
// Both containers keep their elements in a single storage block. Vector
// separates the number of live elements (Len) from the number of allocated
// slots (Cap) and manages element lifetimes explicitly, which makes it useful
// for:
//
//   - Containers of resources that must be released when elements go away
//   - Workloads that want predictable, observable reallocation
//   - Deep-copying nested containers
//   - Comparing container strategies against builtin slices
//
// # Basic Usage
//
//	v := contiguous.Of(1, 3)
//	v.Insert(1, 2)        // [1 2 3]
//	v.PushBack(4)         // [1 2 3 4]
//	x, err := v.At(10)    // err wraps contiguous.ErrOutOfRange
//
//	a := contiguous.ArrayOf(4, "a", "b") // ["a" "b" "" ""]
//	last := a.Back()
//
// # Growth Policy
//
// Reserve(n) allocates exactly n slots when n exceeds the capacity and moves
// the live elements into the new block. Appending to a full vector doubles
// the capacity, starting from 1. ShrinkToFit trims the block to Len and
// drops it entirely when the vector is empty.
//
// # Element Lifetimes
//
// Slots outside [0, Len) always hold the zero value. Copying an element uses
// its Clone method when the element implements Cloner; destroying an
// element calls Release when it implements Releaser and then zeroes the
// slot. Both *Vector and *Array implement Cloner and Releaser, so
//
//	vv := contiguous.New[*contiguous.Vector[int]]()
//	vv.PushBack(contiguous.Of(1, 2))
//	last, _ := vv.Back()
//	vv.PushBack(last) // independent deep copy
//
// The same holds for containers stored by value, such as
// Vector[Vector[int]], and for containers held in interface elements.
//
// Bulk construction (Of, FromSlice, Filled, Clone, InsertRange, ResizeWith)
// is failure safe: if a Clone panics partway, the elements already built are
// destroyed and the length is left unchanged before the panic continues.
//
// # Errors
//
// Checked access (At, AtPtr, Front, Back on Vector), PopBack on an empty
// vector and invalid Insert/Erase positions return a *RangeError that
// unwraps to ErrOutOfRange. Get, Set, Ptr and UnsafeGet are unchecked;
// calling them out of range is a contract violation. Allocation failure
// panics and is never retried.
//
// # Thread Safety
//
// Neither container is safe for concurrent use. Callers sharing an instance
// between goroutines must serialize access themselves.
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
package contiguous
