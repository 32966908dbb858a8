// Copyright 2026 The cupy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for array operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Running-sum separable uniform filtering
//   - Specialized rank selection kernels per window size
//   - Data-parallel execution across goroutines
//
// # Basic Usage
//
//	import (
//	    "github.com/syheliel/cupy/array"
//	    "github.com/syheliel/cupy/backend/cpu"
//	    "github.com/syheliel/cupy/signal"
//	)
//
//	func main() {
//	    // Create CPU backend
//	    backend := cpu.New()
//
//	    // Use with arrays
//	    x := array.Rand[float64](array.Shape{256, 256}, backend)
//	    y, err := signal.Medfilt2d(x, 5)
//	    _ = err
//	    _ = y
//	}
//
// # Performance
//
// Filter loops split their output across worker goroutines; the split is
// controlled by a ParallelConfig. New() picks defaults from the CPU count,
// and NewWithParallel() accepts an explicit configuration for benchmarking
// or for capping worker counts in shared environments.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each array operation is
// isolated and does not share mutable state.
package cpu
