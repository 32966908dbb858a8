package cpu

import (
	"testing"

	"github.com/syheliel/cupy/internal/array"
)

// Helper to create test backend.
func newTestBackend() *CPUBackend {
	return New()
}

// Helper to check float32 slices are equal within epsilon.
func float32SliceEqual(a, b []float32) bool {
	const epsilon = 1e-6
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > epsilon {
			return false
		}
	}
	return true
}

// Helper to check float64 slices are equal within epsilon.
func float64SliceEqual(a, b []float64) bool {
	const epsilon = 1e-9
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > epsilon {
			return false
		}
	}
	return true
}

// Helper to build a Float64 raw array from literal values.
func rawFloat64(t *testing.T, shape array.Shape, values []float64) *array.RawArray {
	t.Helper()
	raw, err := array.NewRaw(shape, array.Float64, array.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	copy(raw.AsFloat64(), values)
	return raw
}

// Helper asserting that fn panics.
func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, got none", name)
		}
	}()
	fn()
}

// TestCPUBackend_New tests backend creation.
func TestCPUBackend_New(t *testing.T) {
	backend := New()
	if backend == nil {
		t.Fatal("New() returned nil")
	}
	if backend.Name() != "CPU" {
		t.Errorf("Expected name 'CPU', got '%s'", backend.Name())
	}
	if backend.Device() != array.CPU {
		t.Errorf("Expected device CPU, got %v", backend.Device())
	}
}

// TestCPUBackend_Add tests element-wise addition.
func TestCPUBackend_Add(t *testing.T) {
	backend := newTestBackend()

	t.Run("Float32", func(t *testing.T) {
		a, _ := array.NewRaw(array.Shape{2, 3}, array.Float32, array.CPU)
		b, _ := array.NewRaw(array.Shape{2, 3}, array.Float32, array.CPU)

		aData := a.AsFloat32()
		bData := b.AsFloat32()
		for i := range aData {
			aData[i] = float32(i + 1)  // 1, 2, 3, 4, 5, 6
			bData[i] = float32(i + 10) // 10, 11, 12, 13, 14, 15
		}

		result := backend.Add(a, b)

		expected := []float32{11, 13, 15, 17, 19, 21}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("Add failed: got %v, expected %v", result.AsFloat32(), expected)
		}
	})

	t.Run("Float64", func(t *testing.T) {
		a := rawFloat64(t, array.Shape{4}, []float64{1, 2, 3, 4})
		b := rawFloat64(t, array.Shape{4}, []float64{0.5, 0.5, 0.5, 0.5})

		result := backend.Add(a, b)

		expected := []float64{1.5, 2.5, 3.5, 4.5}
		if !float64SliceEqual(result.AsFloat64(), expected) {
			t.Errorf("Add failed: got %v, expected %v", result.AsFloat64(), expected)
		}
	})

	// Test inplace optimization
	t.Run("InplaceOptimization", func(t *testing.T) {
		a, _ := array.NewRaw(array.Shape{3}, array.Float32, array.CPU)
		b, _ := array.NewRaw(array.Shape{3}, array.Float32, array.CPU)

		aData := a.AsFloat32()
		bData := b.AsFloat32()
		aData[0], aData[1], aData[2] = 1, 2, 3
		bData[0], bData[1], bData[2] = 10, 20, 30

		// a is unique (refCount == 1), should modify inplace
		if !a.IsUnique() {
			t.Skip("Test requires unique array for inplace path")
		}

		result := backend.Add(a, b)

		if result != a {
			t.Log("Note: inplace optimization may not trigger (this is OK)")
		}

		expected := []float32{11, 22, 33}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("Add with inplace failed: got %v, expected %v", result.AsFloat32(), expected)
		}
	})

	t.Run("SharedBufferAllocates", func(t *testing.T) {
		a := rawFloat64(t, array.Shape{3}, []float64{1, 2, 3})
		b := rawFloat64(t, array.Shape{3}, []float64{10, 20, 30})

		a.ForceNonUnique()
		result := backend.Add(a, b)

		if result == a {
			t.Error("Add mutated a shared buffer")
		}
		if !float64SliceEqual(a.AsFloat64(), []float64{1, 2, 3}) {
			t.Errorf("Add clobbered its input: %v", a.AsFloat64())
		}
	})

	t.Run("ShapeMismatchPanics", func(t *testing.T) {
		a := rawFloat64(t, array.Shape{3}, []float64{1, 2, 3})
		b := rawFloat64(t, array.Shape{4}, []float64{1, 2, 3, 4})
		expectPanic(t, "Add", func() { backend.Add(a, b) })
	})
}

// TestCPUBackend_Sub tests subtraction.
func TestCPUBackend_Sub(t *testing.T) {
	backend := newTestBackend()

	a := rawFloat64(t, array.Shape{3}, []float64{10, 20, 30})
	b := rawFloat64(t, array.Shape{3}, []float64{1, 2, 3})

	result := backend.Sub(a, b)

	expected := []float64{9, 18, 27}
	if !float64SliceEqual(result.AsFloat64(), expected) {
		t.Errorf("Sub failed: got %v, expected %v", result.AsFloat64(), expected)
	}
}

// TestCPUBackend_Mul tests multiplication.
func TestCPUBackend_Mul(t *testing.T) {
	backend := newTestBackend()

	a := rawFloat64(t, array.Shape{3}, []float64{2, 3, 4})
	b := rawFloat64(t, array.Shape{3}, []float64{10, 10, 10})

	result := backend.Mul(a, b)

	expected := []float64{20, 30, 40}
	if !float64SliceEqual(result.AsFloat64(), expected) {
		t.Errorf("Mul failed: got %v, expected %v", result.AsFloat64(), expected)
	}
}

// TestCPUBackend_Div tests division.
func TestCPUBackend_Div(t *testing.T) {
	backend := newTestBackend()

	a := rawFloat64(t, array.Shape{3}, []float64{20, 30, 40})
	b := rawFloat64(t, array.Shape{3}, []float64{2, 3, 4})

	result := backend.Div(a, b)

	expected := []float64{10, 10, 10}
	if !float64SliceEqual(result.AsFloat64(), expected) {
		t.Errorf("Div failed: got %v, expected %v", result.AsFloat64(), expected)
	}
}

// TestCPUBackend_IntOps tests element-wise operations on integer dtypes.
func TestCPUBackend_IntOps(t *testing.T) {
	backend := newTestBackend()

	a, _ := array.NewRaw(array.Shape{4}, array.Int32, array.CPU)
	b, _ := array.NewRaw(array.Shape{4}, array.Int32, array.CPU)
	copy(a.AsInt32(), []int32{6, 8, 10, 12})
	copy(b.AsInt32(), []int32{2, 2, 2, 2})

	sum := backend.Add(a.Clone(), b)
	if got := sum.AsInt32(); got[0] != 8 || got[3] != 14 {
		t.Errorf("int32 Add failed: got %v", got)
	}

	prod := backend.Mul(a.Clone(), b)
	if got := prod.AsInt32(); got[0] != 12 || got[3] != 24 {
		t.Errorf("int32 Mul failed: got %v", got)
	}
}

// TestCPUBackend_Sum tests full reduction to a scalar.
func TestCPUBackend_Sum(t *testing.T) {
	backend := newTestBackend()

	t.Run("Float64", func(t *testing.T) {
		x := rawFloat64(t, array.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
		result := backend.Sum(x)

		if len(result.Shape()) != 0 {
			t.Fatalf("Sum result should be scalar, got shape %v", result.Shape())
		}
		if got := result.AsFloat64()[0]; got != 21 {
			t.Errorf("Sum failed: got %v, expected 21", got)
		}
	})

	t.Run("Int32", func(t *testing.T) {
		x, _ := array.NewRaw(array.Shape{3}, array.Int32, array.CPU)
		copy(x.AsInt32(), []int32{7, 8, 9})

		result := backend.Sum(x)
		if got := result.AsInt32()[0]; got != 24 {
			t.Errorf("Sum failed: got %v, expected 24", got)
		}
	})
}

// TestCPUBackend_Mean tests the scalar mean.
func TestCPUBackend_Mean(t *testing.T) {
	backend := newTestBackend()

	x := rawFloat64(t, array.Shape{5}, []float64{2, 4, 6, 8, 10})
	result := backend.Mean(x)

	if len(result.Shape()) != 0 {
		t.Fatalf("Mean result should be scalar, got shape %v", result.Shape())
	}
	if got := result.AsFloat64()[0]; got != 6 {
		t.Errorf("Mean failed: got %v, expected 6", got)
	}
}

// TestCPUBackend_Cast tests dtype conversion.
func TestCPUBackend_Cast(t *testing.T) {
	backend := newTestBackend()

	t.Run("Int32ToFloat64", func(t *testing.T) {
		x, _ := array.NewRaw(array.Shape{3}, array.Int32, array.CPU)
		copy(x.AsInt32(), []int32{1, 2, 3})

		result := backend.Cast(x, array.Float64)

		if result.DType() != array.Float64 {
			t.Fatalf("Cast dtype: got %s", result.DType())
		}
		if !float64SliceEqual(result.AsFloat64(), []float64{1, 2, 3}) {
			t.Errorf("Cast values: got %v", result.AsFloat64())
		}
	})

	t.Run("Float64ToUint8", func(t *testing.T) {
		x := rawFloat64(t, array.Shape{3}, []float64{0, 127.9, 255})
		result := backend.Cast(x, array.Uint8)

		got := result.AsUint8()
		if got[0] != 0 || got[1] != 127 || got[2] != 255 {
			t.Errorf("Cast truncation: got %v", got)
		}
	})

	t.Run("BoolToFloat64", func(t *testing.T) {
		x, _ := array.NewRaw(array.Shape{3}, array.Bool, array.CPU)
		copy(x.AsBool(), []bool{true, false, true})

		result := backend.Cast(x, array.Float64)
		if !float64SliceEqual(result.AsFloat64(), []float64{1, 0, 1}) {
			t.Errorf("Cast values: got %v", result.AsFloat64())
		}
	})

	t.Run("SameDTypeIsNoOp", func(t *testing.T) {
		x := rawFloat64(t, array.Shape{2}, []float64{1, 2})
		result := backend.Cast(x, array.Float64)
		if result != x {
			t.Error("Cast to same dtype should return the input array")
		}
	})
}
