package array

import (
	"fmt"
	"sort"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements all operations naively for correctness verification; the
// optimized CPU backend is tested against it.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition.
func (m *MockBackend) Add(a, b *RawArray) *RawArray {
	return m.elementWise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction.
func (m *MockBackend) Sub(a, b *RawArray) *RawArray {
	return m.elementWise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication.
func (m *MockBackend) Mul(a, b *RawArray) *RawArray {
	return m.elementWise(a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division.
func (m *MockBackend) Div(a, b *RawArray) *RawArray {
	return m.elementWise(a, b, func(x, y float64) float64 { return x / y })
}

// elementWise performs same-shape element-wise operations through float64.
func (m *MockBackend) elementWise(a, b *RawArray, op func(float64, float64) float64) *RawArray {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("shape mismatch: %v vs %v", a.Shape(), b.Shape()))
	}

	result, err := NewRaw(a.Shape(), a.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	aData := m.toFloat64Slice(a)
	bData := m.toFloat64Slice(b)
	resultData := make([]float64, a.NumElements())

	for i := range resultData {
		resultData[i] = op(aData[i], bData[i])
	}

	m.fromFloat64Slice(resultData, result)
	return result
}

// RankFilter replaces each element with the rank-th smallest value of its
// footprint-selected neighborhood (naive per-position gather and sort).
// Out-of-bounds neighbors read as zero.
func (m *MockBackend) RankFilter(x *RawArray, rank int, footprint *RawArray, output DataType) *RawArray {
	shape := x.Shape()
	ndim := len(shape)
	strides := shape.ComputeStrides()

	fpShape := footprint.Shape()
	fpMask := footprint.AsBool()
	fpStrides := fpShape.ComputeStrides()

	result, err := NewRaw(shape, output, m.Device())
	if err != nil {
		panic(err)
	}

	src := m.toFloat64Slice(x)
	dst := make([]float64, x.NumElements())

	coords := make([]int, ndim)
	fpCoords := make([]int, ndim)
	window := make([]float64, 0, footprint.NumElements())

	for i := 0; i < x.NumElements(); i++ {
		// Decode flat index into coordinates
		temp := i
		for d := 0; d < ndim; d++ {
			coords[d] = temp / strides[d]
			temp %= strides[d]
		}

		// Gather the neighborhood
		window = window[:0]
		for j := 0; j < footprint.NumElements(); j++ {
			if !fpMask[j] {
				continue
			}
			temp = j
			srcIdx := 0
			inBounds := true
			for d := 0; d < ndim; d++ {
				fpCoords[d] = temp / fpStrides[d]
				temp %= fpStrides[d]
				c := coords[d] + fpCoords[d] - fpShape[d]/2
				if c < 0 || c >= shape[d] {
					inBounds = false
					break
				}
				srcIdx += c * strides[d]
			}
			if inBounds {
				window = append(window, src[srcIdx])
			} else {
				window = append(window, 0)
			}
		}

		sort.Float64s(window)
		dst[i] = window[rank]
	}

	m.fromFloat64Slice(dst, result)
	return result
}

// UniformFilter replaces each element with the mean of its rectangular
// neighborhood (naive per-position sum). Out-of-bounds neighbors contribute
// zero while the divisor stays the full window size.
func (m *MockBackend) UniformFilter(x *RawArray, size []int, output DataType) *RawArray {
	shape := x.Shape()
	ndim := len(shape)
	strides := shape.ComputeStrides()

	winShape := Shape(size)
	winStrides := winShape.ComputeStrides()
	winSize := winShape.NumElements()

	result, err := NewRaw(shape, output, m.Device())
	if err != nil {
		panic(err)
	}

	src := m.toFloat64Slice(x)
	dst := make([]float64, x.NumElements())

	coords := make([]int, ndim)
	winCoords := make([]int, ndim)

	for i := 0; i < x.NumElements(); i++ {
		temp := i
		for d := 0; d < ndim; d++ {
			coords[d] = temp / strides[d]
			temp %= strides[d]
		}

		sum := 0.0
		for j := 0; j < winSize; j++ {
			temp = j
			srcIdx := 0
			inBounds := true
			for d := 0; d < ndim; d++ {
				winCoords[d] = temp / winStrides[d]
				temp %= winStrides[d]
				c := coords[d] + winCoords[d] - size[d]/2
				if c < 0 || c >= shape[d] {
					inBounds = false
					break
				}
				srcIdx += c * strides[d]
			}
			if inBounds {
				sum += src[srcIdx]
			}
		}
		dst[i] = sum / float64(winSize)
	}

	m.fromFloat64Slice(dst, result)
	return result
}

// Sum computes the total sum of all elements (scalar result).
func (m *MockBackend) Sum(x *RawArray) *RawArray {
	result, err := NewRaw(Shape{}, x.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	sum := 0.0
	for _, v := range m.toFloat64Slice(x) {
		sum += v
	}

	m.fromFloat64Slice([]float64{sum}, result)
	return result
}

// Mean computes the arithmetic mean of all elements (scalar result).
func (m *MockBackend) Mean(x *RawArray) *RawArray {
	result, err := NewRaw(Shape{}, x.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	sum := 0.0
	for _, v := range m.toFloat64Slice(x) {
		sum += v
	}

	m.fromFloat64Slice([]float64{sum / float64(x.NumElements())}, result)
	return result
}

// Cast converts the array to a different data type.
func (m *MockBackend) Cast(x *RawArray, dtype DataType) *RawArray {
	if x.DType() == dtype {
		return x
	}

	result, err := NewRaw(x.Shape(), dtype, m.Device())
	if err != nil {
		panic(err)
	}

	m.fromFloat64Slice(m.toFloat64Slice(x), result)
	return result
}

// Helper functions

func (m *MockBackend) toFloat64Slice(x *RawArray) []float64 {
	switch x.DType() {
	case Float32:
		src := x.AsFloat32()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Float64:
		return x.AsFloat64()
	case Int32:
		src := x.AsInt32()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Int64:
		src := x.AsInt64()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Uint8:
		src := x.AsUint8()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Bool:
		src := x.AsBool()
		dst := make([]float64, len(src))
		for i, v := range src {
			if v {
				dst[i] = 1
			}
		}
		return dst
	default:
		panic(fmt.Sprintf("unsupported dtype: %s", x.DType()))
	}
}

func (m *MockBackend) fromFloat64Slice(src []float64, x *RawArray) {
	switch x.DType() {
	case Float32:
		dst := x.AsFloat32()
		for i, v := range src {
			dst[i] = float32(v)
		}
	case Float64:
		copy(x.AsFloat64(), src)
	case Int32:
		dst := x.AsInt32()
		for i, v := range src {
			dst[i] = int32(v)
		}
	case Int64:
		dst := x.AsInt64()
		for i, v := range src {
			dst[i] = int64(v)
		}
	case Uint8:
		dst := x.AsUint8()
		for i, v := range src {
			dst[i] = uint8(v)
		}
	case Bool:
		dst := x.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	}
}
