// Copyright 2026 The cupy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the public API for N-dimensional arrays in the cupy
// signal processing library.
//
// The package defines core interfaces and types for type-safe array
// operations:
//   - Array[T, B]: High-level generic array with type safety
//   - RawArray: Low-level array representation for advanced use cases
//   - Backend: Interface for device-specific compute implementations
//   - Shape, DataType, Device: Core type definitions
//
// Example:
//
//	backend := cpu.New()
//	x := array.Zeros[float64](array.Shape{2, 3}, backend)
//	y := array.Ones[float64](array.Shape{2, 3}, backend)
//	z := x.Add(y)  // Element-wise addition
package array

import (
	"github.com/syheliel/cupy/internal/array"
)

// Type aliases for public API

// DType is a constraint for array element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = array.DType

// Numeric is the DType constraint without bool. Windowed filters order their
// window elements, so they are defined on Numeric arrays only.
type Numeric = array.Numeric

// DataType represents the underlying data type of an array.
type DataType = array.DataType

// Data type constants.
const (
	Float32 DataType = array.Float32
	Float64 DataType = array.Float64
	Int32   DataType = array.Int32
	Int64   DataType = array.Int64
	Uint8   DataType = array.Uint8
	Bool    DataType = array.Bool
)

// Device represents the device where array data resides.
type Device = array.Device

// Device constants.
const (
	CPU  Device = array.CPU
	CUDA Device = array.CUDA
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = array.Shape

// Backend is defined in backend.go as a proper interface.

// Array is a generic type-safe N-dimensional array.
//
// T is the element type (float32, float64, int32, int64, uint8, bool).
// B is the backend implementation (CPU today, device backends later).
//
// Array provides a high-level API with:
//   - Type safety via Go generics
//   - Multiple backend support through the Backend interface
//   - Efficient memory management with reference-counted buffers
//
// Example:
//
//	backend := cpu.New()
//	x := array.Zeros[float64](array.Shape{2, 3}, backend)
//	y := array.Ones[float64](array.Shape{2, 3}, backend)
//	z := x.Add(y)  // Element-wise addition
type Array[T DType, B Backend] = array.Array[T, B]

// Creation functions

// Zeros creates an array filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x := array.Zeros[float64](array.Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Array[T, B] {
	return array.Zeros[T, B](shape, b)
}

// Ones creates an array filled with ones. For bool arrays every element is
// true, which makes Ones the natural constructor for rectangular filter
// footprints.
//
// Example:
//
//	backend := cpu.New()
//	domain := array.Ones[bool](array.Shape{3, 3}, backend)
func Ones[T DType, B Backend](shape Shape, b B) *Array[T, B] {
	return array.Ones[T, B](shape, b)
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	backend := cpu.New()
//	x := array.Full[float64](array.Shape{2, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Array[T, B] {
	return array.Full[T, B](shape, value, b)
}

// Randn creates an array filled with random values from the standard normal
// distribution N(0, 1). Only float element types are supported.
//
// Example:
//
//	backend := cpu.New()
//	noise := array.Randn[float64](array.Shape{2, 3}, backend)
func Randn[T DType, B Backend](shape Shape, b B) *Array[T, B] {
	return array.Randn[T, B](shape, b)
}

// Rand creates an array filled with random values from the uniform
// distribution U(0, 1). Only float element types are supported.
//
// Example:
//
//	backend := cpu.New()
//	x := array.Rand[float64](array.Shape{2, 3}, backend)
func Rand[T DType, B Backend](shape Shape, b B) *Array[T, B] {
	return array.Rand[T, B](shape, b)
}

// FromSlice creates an array from a Go slice.
//
// Example:
//
//	backend := cpu.New()
//	data := []float64{1, 2, 3, 4, 5, 6}
//	x, err := array.FromSlice(data, array.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Array[T, B], error) {
	return array.FromSlice[T, B](data, shape, b)
}

// Cast converts an array to element type U on the same backend. Values are
// converted with Go conversion semantics; casting to the array's own type is
// a no-op that shares the underlying buffer.
//
// Example:
//
//	img := array.Zeros[uint8](array.Shape{32, 32}, backend)
//	f := array.Cast[float64](img)
func Cast[U DType, T DType, B Backend](a *Array[T, B]) *Array[U, B] {
	return array.Cast[U, T, B](a)
}

// New creates an array from a raw array.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Ones, or FromSlice instead.
func New[T DType, B Backend](raw *RawArray, b B) *Array[T, B] {
	return array.New[T, B](raw, b)
}

// NewRaw creates a new raw array with the given shape, dtype, and device.
//
// This is a low-level function. Most users should use high-level creation
// functions instead.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawArray, error) {
	return array.NewRaw(shape, dtype, device)
}

// DataTypeOf returns the DataType tag for element type T.
func DataTypeOf[T DType]() DataType {
	return array.DataTypeOf[T]()
}
