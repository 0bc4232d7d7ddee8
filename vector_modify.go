package contiguous

import "fmt"

// grow doubles the capacity (or sets it to 1) when the block is full.
func (v *Vector[T]) grow() {
	if v.size == len(v.data) {
		v.reallocate(growCapacity(len(v.data)))
	}
}

// PushBack appends a copy of x. The copy is made before any reallocation,
// so x may be an element of v itself.
func (v *Vector[T]) PushBack(x T) {
	v.PushBackMove(copyElem(x))
}

// PushBackMove appends x and takes ownership of it without copying.
func (v *Vector[T]) PushBackMove(x T) {
	v.grow()
	v.data[v.size] = x
	v.size++
}

// EmplaceBack builds a new last element in place: init receives a pointer
// to the unconstructed slot. If init panics, the slot is destroyed and the
// length is unchanged.
func (v *Vector[T]) EmplaceBack(init func(*T)) {
	v.grow()
	slot := &v.data[v.size]
	done := false
	defer func() {
		if !done {
			destroySlot(slot)
		}
	}()
	init(slot)
	done = true
	v.size++
}

// PopBack destroys the last element. It returns a *RangeError if the vector
// is empty.
func (v *Vector[T]) PopBack() error {
	if v.size == 0 {
		return rangeError("Vector.PopBack", -1, 0)
	}
	v.size--
	destroySlot(&v.data[v.size])
	return nil
}

// Insert places a copy of x at position pos, shifting the elements at and
// after pos one slot right. pos must be in [0, Len]. It returns the position
// of the inserted element, or -1 and a *RangeError.
func (v *Vector[T]) Insert(pos int, x T) (int, error) {
	if pos < 0 || pos > v.size {
		return -1, rangeError("Vector.Insert", pos, v.size)
	}
	elem := copyElem(x)
	v.grow()
	copy(v.data[pos+1:v.size+1], v.data[pos:v.size])
	v.data[pos] = elem
	v.size++
	return pos, nil
}

// InsertRange places copies of values at position pos, shifting the tail
// right by len(values). pos must be in [0, Len]. It returns the position of
// the first inserted element, or -1 and a *RangeError.
//
// If copying a value panics, the copies already built are destroyed and the
// tail is shifted back before the panic continues; Len is unchanged.
func (v *Vector[T]) InsertRange(pos int, values []T) (int, error) {
	if pos < 0 || pos > v.size {
		return -1, rangeError("Vector.InsertRange", pos, v.size)
	}
	count := len(values)
	if count == 0 {
		return pos, nil
	}
	if overlaps(values, v.data) {
		values = append([]T(nil), values...)
	}
	if v.size+count > len(v.data) {
		v.Reserve(max(len(v.data)*2, v.size+count))
	}

	copy(v.data[pos+count:v.size+count], v.data[pos:v.size])
	built := 0
	defer func() {
		if built == count {
			return
		}
		destroySlots(v.data[pos : pos+built])
		copy(v.data[pos:v.size], v.data[pos+count:v.size+count])
		clear(v.data[v.size : v.size+count])
	}()
	for i, x := range values {
		v.data[pos+i] = copyElem(x)
		built++
	}
	v.size += count
	return pos, nil
}

// Erase destroys the element at pos and shifts the later elements one slot
// left. pos must be in [0, Len). It returns pos, which now holds the element
// that followed the erased one (or equals Len), or -1 and a *RangeError.
func (v *Vector[T]) Erase(pos int) (int, error) {
	if pos < 0 || pos >= v.size {
		return -1, rangeError("Vector.Erase", pos, v.size)
	}
	destroySlot(&v.data[pos])
	copy(v.data[pos:v.size-1], v.data[pos+1:v.size])
	v.size--
	clear(v.data[v.size : v.size+1])
	return pos, nil
}

// EraseRange destroys the elements in [first, last) and shifts the tail left
// to close the gap. It requires 0 <= first <= last <= Len and returns first,
// or -1 and a *RangeError.
func (v *Vector[T]) EraseRange(first, last int) (int, error) {
	switch {
	case first < 0 || first > v.size:
		return -1, rangeError("Vector.EraseRange", first, v.size)
	case last < first || last > v.size:
		return -1, rangeError("Vector.EraseRange", last, v.size)
	}
	count := last - first
	if count == 0 {
		return first, nil
	}
	destroySlots(v.data[first:last])
	copy(v.data[first:v.size-count], v.data[last:v.size])
	v.size -= count
	clear(v.data[v.size : v.size+count])
	return first, nil
}

// Resize sets the length to count. Excess elements are destroyed; new slots
// hold the zero value of T.
func (v *Vector[T]) Resize(count int) {
	var zero T
	v.ResizeWith(count, zero)
}

// ResizeWith sets the length to count. Excess elements are destroyed; new
// slots receive copies of value. If a copy panics, the new slots are
// destroyed and the length is unchanged.
func (v *Vector[T]) ResizeWith(count int, value T) {
	if count < 0 {
		panic(fmt.Sprintf("contiguous: Vector.Resize: negative length %d", count))
	}
	switch {
	case count < v.size:
		destroySlots(v.data[count:v.size])
	case count > v.size:
		v.Reserve(count)
		constructFill(v.data[v.size:count], value)
	}
	v.size = count
}
