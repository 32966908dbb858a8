// Copyright 2026 The cupy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides type-safe N-dimensional arrays for the cupy
// signal processing library.
//
// # Overview
//
// Arrays are the fundamental data structure in cupy. This package provides:
//   - Generic type-safe arrays (Array[T, B])
//   - Row-major layout with precomputed strides
//   - Zero-copy operations where possible
//   - Device abstraction (CPU today, CUDA reserved)
//
// # Basic Usage
//
//	import (
//	    "github.com/syheliel/cupy/array"
//	    "github.com/syheliel/cupy/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create arrays
//	    x := array.Zeros[float64](array.Shape{64, 64}, backend)
//	    y := array.Ones[float64](array.Shape{64, 64}, backend)
//
//	    // Element-wise operations
//	    z := x.Add(y)
//	    m := z.Mean()
//	}
//
// # Supported Data Types
//
// The array package supports the following element types via the DType
// constraint:
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers, useful for images)
//   - bool (filter footprints and masks)
//
// The Numeric constraint is DType without bool; windowed filters operate on
// Numeric arrays and take their footprints as Array[bool, B].
//
// # Device Support
//
// Arrays carry a device tag:
//   - CPU: Pure Go implementation
//   - CUDA: reserved for a runtime-compiled kernel backend
//
// # Memory Management
//
// Arrays use zero-copy operations where possible. The underlying buffer is
// reference-counted: Clone shares the buffer, and backends may reuse a
// uniquely-owned operand buffer for the result of an element-wise operation.
// Call ForceNonUnique on a RawArray to pin its buffer against such reuse.
package array
