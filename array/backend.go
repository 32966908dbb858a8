// Copyright 2026 The cupy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for array operations.
//
// Implementations:
//   - backend/cpu: pure Go kernels with data-parallel execution
//   - backend/cuda: runtime-compiled device kernels (planned)
//
// Example:
//
//	import (
//	    "github.com/syheliel/cupy/array"
//	    "github.com/syheliel/cupy/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := array.Zeros[float64](array.Shape{2, 3}, backend)
//	y := array.Ones[float64](array.Shape{2, 3}, backend)
//	z := x.Add(y)  // Uses backend.Add under the hood
type Backend interface {
	// Element-wise binary operations.
	Add(a, b *RawArray) *RawArray // Element-wise addition.
	Sub(a, b *RawArray) *RawArray // Element-wise subtraction.
	Mul(a, b *RawArray) *RawArray // Element-wise multiplication.
	Div(a, b *RawArray) *RawArray // Element-wise division.

	// Windowed operations.
	//
	// RankFilter replaces every element with the rank-th smallest value of
	// its footprint-selected neighborhood. Out-of-bounds neighbors read as
	// zero. The footprint must be a Bool array of the input's rank with odd
	// extents; output selects the result element type.
	RankFilter(x *RawArray, rank int, footprint *RawArray, output DataType) *RawArray

	// UniformFilter replaces every element with the mean of its size-shaped
	// rectangular neighborhood. Out-of-bounds neighbors contribute zero to
	// the numerator while the denominator stays the full window size.
	UniformFilter(x *RawArray, size []int, output DataType) *RawArray

	// Reduction operations (scalar result).
	Sum(x *RawArray) *RawArray  // Sum of all elements.
	Mean(x *RawArray) *RawArray // Arithmetic mean of all elements.

	// Type conversion.
	Cast(x *RawArray, dtype DataType) *RawArray // Cast to a different data type.

	// Metadata.
	Name() string
	Device() Device
}
