package array

import "fmt"

// Array is a generic N-D array with element type T and backend B.
// It provides type-safe operations over multi-dimensional data.
//
// Type Parameters:
//   - T: Element type (must satisfy DType constraint)
//   - B: Computation backend (must implement Backend interface)
//
// Example:
//
//	backend := cpu.New()
//	a := array.Zeros[float64](array.Shape{3, 4}, backend)
//	b := a.Mul(a) // Type-safe element-wise multiply
type Array[T DType, B Backend] struct {
	raw     *RawArray
	backend B
}

// New creates an Array from a RawArray and backend.
func New[T DType, B Backend](raw *RawArray, b B) *Array[T, B] {
	return &Array[T, B]{
		raw:     raw,
		backend: b,
	}
}

// FromSlice creates an array from a Go slice.
// The slice is copied into the array's memory.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Array[T, B], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		return nil, err
	}

	// Copy data into raw array
	a := New[T, B](raw, b)
	copy(a.Data(), data)

	return a, nil
}

// Shape returns the array's shape.
func (a *Array[T, B]) Shape() Shape {
	return a.raw.Shape()
}

// DType returns the array's data type.
func (a *Array[T, B]) DType() DataType {
	return a.raw.DType()
}

// Device returns the array's compute device.
func (a *Array[T, B]) Device() Device {
	return a.raw.Device()
}

// NumElements returns the total number of elements.
func (a *Array[T, B]) NumElements() int {
	return a.raw.NumElements()
}

// Raw returns the underlying RawArray.
// Used by backend implementations for low-level operations.
func (a *Array[T, B]) Raw() *RawArray {
	return a.raw
}

// Backend returns the computation backend.
func (a *Array[T, B]) Backend() B {
	return a.backend
}

// Data returns a typed slice view of the array's data.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the array.
func (a *Array[T, B]) Data() []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(a.raw.AsFloat32()).([]T)
	case float64:
		return any(a.raw.AsFloat64()).([]T)
	case int32:
		return any(a.raw.AsInt32()).([]T)
	case int64:
		return any(a.raw.AsInt64()).([]T)
	case uint8:
		return any(a.raw.AsUint8()).([]T)
	case bool:
		return any(a.raw.AsBool()).([]T)
	default:
		panic("unsupported type")
	}
}

// Item returns the scalar value of a 0-D array.
// Panics if the array is not a scalar.
func (a *Array[T, B]) Item() T {
	if len(a.Shape()) != 0 || a.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for scalar arrays, got shape %v", a.Shape()))
	}
	return a.Data()[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	a := array.Zeros[float64](array.Shape{3, 4}, backend)
//	value := a.At(1, 2) // Row 1, column 2
func (a *Array[T, B]) At(indices ...int) T {
	if len(indices) != len(a.Shape()) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(a.Shape()), len(indices)))
	}

	// Calculate flat index using strides
	offset := 0
	strides := a.raw.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= a.Shape()[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, a.Shape()[i]))
		}
		offset += idx * strides[i]
	}

	return a.Data()[offset]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (a *Array[T, B]) Set(value T, indices ...int) {
	if len(indices) != len(a.Shape()) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(a.Shape()), len(indices)))
	}

	offset := 0
	strides := a.raw.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= a.Shape()[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, a.Shape()[i]))
		}
		offset += idx * strides[i]
	}

	a.Data()[offset] = value
}

// String returns a human-readable representation of the array.
func (a *Array[T, B]) String() string {
	return fmt.Sprintf("Array[%s]%v on %s", a.raw.DType(), a.raw.Shape(), a.raw.Device())
}

// Clone creates a copy of the array (copy-on-write, cheap until modified).
func (a *Array[T, B]) Clone() *Array[T, B] {
	return &Array[T, B]{
		raw:     a.raw.Clone(),
		backend: a.backend,
	}
}
