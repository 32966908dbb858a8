// Copyright 2026 The cupy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/syheliel/cupy/array"
	internalcpu "github.com/syheliel/cupy/internal/backend/cpu"
	"github.com/syheliel/cupy/internal/parallel"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend provides pure Go implementations of all array operations
// with data-parallel execution where the work is large enough to pay for it.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements array.Backend.
var _ array.Backend = (*Backend)(nil)

// ParallelConfig controls how filter loops are split across goroutines.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns the parallel configuration New uses,
// derived from the machine's CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// New creates a new CPU backend with default parallel settings.
//
// Example:
//
//	import (
//	    "github.com/syheliel/cupy/array"
//	    "github.com/syheliel/cupy/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := array.Zeros[float64](array.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithParallel creates a CPU backend with an explicit parallel
// configuration. Pass a config with Enabled set to false to force
// sequential execution.
func NewWithParallel(cfg ParallelConfig) *Backend {
	return internalcpu.NewWithParallel(cfg)
}
