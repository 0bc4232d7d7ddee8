package contiguous

import (
	"testing"
)

func TestVectorMetrics(t *testing.T) {
	v := New[int64]()

	// Test initial state
	if v.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", v.Utilization())
	}
	if v.Reallocations() != 0 {
		t.Errorf("Initial Reallocations = %d, want 0", v.Reallocations())
	}

	v.Reserve(8)
	for i := 0; i < 6; i++ {
		v.PushBack(int64(i))
	}

	utilization := v.Utilization()
	if utilization != 0.75 {
		t.Errorf("Utilization = %f, want 0.75", utilization)
	}

	// Force growth
	v.PushBack(6)
	v.PushBack(7)
	v.PushBack(8)
	if v.Cap() != 16 {
		t.Errorf("Cap after growth = %d, want 16", v.Cap())
	}

	// Test metrics snapshot
	m := v.Metrics()
	if m.Len != 9 {
		t.Errorf("Metrics.Len = %d, want 9", m.Len)
	}
	if m.Cap != 16 {
		t.Errorf("Metrics.Cap = %d, want 16", m.Cap)
	}
	if m.ElemSize != 8 {
		t.Errorf("Metrics.ElemSize = %d, want 8", m.ElemSize)
	}
	if m.BytesInUse != 72 {
		t.Errorf("Metrics.BytesInUse = %d, want 72", m.BytesInUse)
	}
	if m.BytesReserved != 128 {
		t.Errorf("Metrics.BytesReserved = %d, want 128", m.BytesReserved)
	}
	if m.Utilization != v.Utilization() {
		t.Errorf("Metrics.Utilization = %f, want %f", m.Utilization, v.Utilization())
	}
	if m.Reallocations != 2 {
		t.Errorf("Metrics.Reallocations = %d, want 2", m.Reallocations)
	}
}

func TestVectorMetricsAfterShrink(t *testing.T) {
	v := Of(1, 2, 3)
	v.Reserve(10)
	v.ShrinkToFit()

	m := v.Metrics()
	if m.Utilization != 1 {
		t.Errorf("Utilization after ShrinkToFit = %f, want 1", m.Utilization)
	}
	if m.Reallocations != 2 {
		t.Errorf("Reallocations = %d, want 2", m.Reallocations)
	}

	v.Release()
	m = v.Metrics()
	if m.Cap != 0 || m.BytesReserved != 0 || m.Utilization != 0 {
		t.Errorf("metrics after Release = %+v", m)
	}
}

func TestNilVectorMetrics(t *testing.T) {
	var v *Vector[string]
	m := v.Metrics()
	if m.Len != 0 || m.Cap != 0 || m.Reallocations != 0 {
		t.Errorf("nil vector metrics = %+v", m)
	}
}
