// Copyright 2026 The cupy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/syheliel/cupy/internal/array"
)

// RawArray is the low-level array representation.
//
// RawArray provides:
//   - Shape, stride, and type information via Shape(), Strides(), DType(), Device()
//   - Type-safe data access via AsFloat64(), AsUint8(), etc.
//   - Buffer sharing via Clone() and reference counting
//   - ForceNonUnique() to pin a buffer against in-place reuse by backends
//
// Most users should use the high-level Array[T, B] type instead.
//
// Example:
//
//	raw, _ := array.NewRaw(array.Shape{2, 3}, array.Float64, array.CPU)
//	data := raw.AsFloat64()  // Type-safe access
//	clone := raw.Clone()     // Shares buffer via reference counting
type RawArray = array.RawArray
