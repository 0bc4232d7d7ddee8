package contiguous

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"
)

// Cloner is implemented by element types whose copy must not share state with
// the original. Containers copy-construct such elements with Clone instead of
// plain assignment. A value type T whose pointer implements Cloner[*T] is
// copied through that method, and interface elements use the Clone method
// of their dynamic value. *Vector and *Array implement it, so containers of
// containers deep-copy whether the inner containers are held by pointer or
// by value.
//
// An element type that implements Releaser but has no Clone method is copied
// by assignment, and its copies share whatever Release frees.
type Cloner[T any] interface {
	Clone() T
}

// Releaser is implemented by element types that hold resources which must be
// dropped when the element is destroyed (popped, erased, cleared, truncated
// or released together with its container).
type Releaser interface {
	Release()
}

// elemSize returns the storage footprint of one T slot.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// maxSlots returns the largest slot count a single block of T may hold.
func maxSlots[T any]() int {
	size := elemSize[T]()
	if size == 0 {
		return math.MaxInt
	}
	return int(uintptr(math.MaxInt) / size)
}

// allocSlots returns a block of n unconstructed (zero value) slots.
// Returns nil if n <= 0. Requests the address space cannot hold panic;
// allocation failure is never reported as an error.
func allocSlots[T any](n int) []T {
	if n <= 0 {
		return nil
	}
	if n > maxSlots[T]() {
		panic(fmt.Sprintf("contiguous: cannot allocate %d slots of %d bytes", n, elemSize[T]()))
	}
	return make([]T, n)
}

// growCapacity returns the next capacity for an append into a full block.
func growCapacity(c int) int {
	if c == 0 {
		return 1
	}
	if c > math.MaxInt/2 {
		panic(fmt.Sprintf("contiguous: capacity %d cannot double", c))
	}
	return c * 2
}

// copyElem copy-constructs a new element from x. It looks for Clone
// wherever destroySlot can find Release: on the value, through a pointer to
// the value (so Vector[T] and Array[T] held by value deep-copy), and on the
// dynamic value of an interface element. Nil pointers are copied as is.
func copyElem[T any](x T) T {
	if c, ok := any(x).(Cloner[T]); ok {
		if isNil(c) {
			return x
		}
		return c.Clone()
	}
	if c, ok := any(&x).(Cloner[*T]); ok {
		if y := c.Clone(); y != nil {
			return *y
		}
		var zero T
		return zero
	}
	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		if y, ok := cloneDynamic(x); ok {
			return y
		}
	}
	return x
}

// cloneDynamic calls the Clone method of the value held by the interface
// element x, provided it takes no arguments and its single result can be
// stored back into a T.
func cloneDynamic[T any](x T) (T, bool) {
	v := reflect.ValueOf(any(x))
	if !v.IsValid() || isNil(any(x)) {
		return x, false
	}
	m := v.MethodByName("Clone")
	if !m.IsValid() {
		return x, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 || !mt.Out(0).AssignableTo(reflect.TypeFor[T]()) {
		return x, false
	}
	var y T
	reflect.ValueOf(&y).Elem().Set(m.Call(nil)[0])
	return y, true
}

// destroySlot ends the lifetime of the element at p and leaves the slot
// unconstructed.
func destroySlot[T any](p *T) {
	if r, ok := any(*p).(Releaser); ok {
		if !isNil(r) {
			r.Release()
		}
	} else if r, ok := any(p).(Releaser); ok {
		r.Release()
	}
	var zero T
	*p = zero
}

// isNil reports whether x holds a nil pointer-like value. Only called for
// elements implementing Cloner or Releaser.
func isNil(x any) bool {
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// releasable reports whether destroying a T may involve a Release call.
// Interface element types are checked per value.
func releasable[T any]() bool {
	t := reflect.TypeFor[T]()
	return t.Kind() == reflect.Interface || t.Implements(releaserType) || reflect.PointerTo(t).Implements(releaserType)
}

// cloneable reports whether copying a T may involve a Clone call, either on
// the value or through a pointer to it.
func cloneable[T any]() bool {
	t := reflect.TypeFor[T]()
	return t.Kind() == reflect.Interface ||
		t.Implements(reflect.TypeFor[Cloner[T]]()) ||
		reflect.PointerTo(t).Implements(reflect.TypeFor[Cloner[*T]]())
}

var releaserType = reflect.TypeFor[Releaser]()

// destroySlots destroys every element of s in index order.
func destroySlots[T any](s []T) {
	if !releasable[T]() {
		clear(s)
		return
	}
	for i := range s {
		destroySlot(&s[i])
	}
}

// constructCopies copy-constructs src into the unconstructed slots of dst.
// If a copy panics, the elements already built are destroyed before the
// panic continues, so dst holds no live elements.
func constructCopies[T any](dst, src []T) {
	if !cloneable[T]() {
		copy(dst, src)
		return
	}
	built := 0
	defer func() {
		if built != len(src) {
			destroySlots(dst[:built])
		}
	}()
	for i := range src {
		dst[i] = copyElem(src[i])
		built++
	}
}

// constructFill copy-constructs value into every unconstructed slot of dst
// with the same rollback rule as constructCopies.
func constructFill[T any](dst []T, value T) {
	if !cloneable[T]() {
		for i := range dst {
			dst[i] = value
		}
		return
	}
	built := 0
	defer func() {
		if built != len(dst) {
			destroySlots(dst[:built])
		}
	}()
	for i := range dst {
		dst[i] = copyElem(value)
		built++
	}
}

// overlaps reports whether a and b share any backing slot.
func overlaps[T any](a, b []T) bool {
	size := elemSize[T]()
	if len(a) == 0 || len(b) == 0 || size == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	a1 := a0 + uintptr(len(a))*size
	b1 := b0 + uintptr(len(b))*size
	return a0 < b1 && b0 < a1
}
