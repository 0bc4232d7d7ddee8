package contiguous

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if v.Cap() == 0 {
		return 0
	}
	return float64(v.Len()) / float64(v.Cap())
}

// Reallocations returns how many times the storage block has been replaced
// by Reserve, ShrinkToFit or growth on append/insert.
func (v *Vector[T]) Reallocations() int {
	if v == nil {
		return 0
	}
	return v.reallocs
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	size := int(elemSize[T]())
	return VectorMetrics{
		Len:           v.Len(),
		Cap:           v.Cap(),
		ElemSize:      size,
		BytesInUse:    v.Len() * size,
		BytesReserved: v.Cap() * size,
		Utilization:   v.Utilization(),
		Reallocations: v.Reallocations(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           int     // Live elements
	Cap           int     // Allocated slots
	ElemSize      int     // Bytes per slot
	BytesInUse    int     // Bytes held by live elements
	BytesReserved int     // Bytes held by the whole block
	Utilization   float64 // Ratio of live elements to slots (0.0-1.0)
	Reallocations int     // Storage blocks replaced so far
}
