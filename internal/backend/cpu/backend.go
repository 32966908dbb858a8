// Package cpu implements the pure-Go CPU backend for the cupy signal
// processing library.
package cpu

import (
	"fmt"

	"github.com/syheliel/cupy/internal/array"
	"github.com/syheliel/cupy/internal/parallel"
)

// CPUBackend implements array operations on CPU with data-parallel kernels.
type CPUBackend struct {
	device array.Device
	par    parallel.Config
}

// New creates a new CPU backend with default parallelism.
func New() *CPUBackend {
	return &CPUBackend{
		device: array.CPU,
		par:    parallel.DefaultConfig(),
	}
}

// NewWithParallel creates a CPU backend with explicit parallel configuration.
// Useful for forcing sequential execution in tests and benchmarks.
func NewWithParallel(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device: array.CPU,
		par:    cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() array.Device {
	return cpu.device
}

// Add performs element-wise addition. Shapes must match.
func (cpu *CPUBackend) Add(a, b *array.RawArray) *array.RawArray {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("add: shape mismatch: %v vs %v", a.Shape(), b.Shape()))
	}

	if a.IsUnique() {
		// Inplace add into a
		addInplace(a, b)
		return a
	}

	result, err := array.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("add: failed to create result array: %v", err))
	}

	addVectorized(result, a, b)
	return result
}

// Sub performs element-wise subtraction. Shapes must match.
func (cpu *CPUBackend) Sub(a, b *array.RawArray) *array.RawArray {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("sub: shape mismatch: %v vs %v", a.Shape(), b.Shape()))
	}

	if a.IsUnique() {
		subInplace(a, b)
		return a
	}

	result, err := array.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sub: failed to create result array: %v", err))
	}

	subVectorized(result, a, b)
	return result
}

// Mul performs element-wise multiplication. Shapes must match.
func (cpu *CPUBackend) Mul(a, b *array.RawArray) *array.RawArray {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("mul: shape mismatch: %v vs %v", a.Shape(), b.Shape()))
	}

	if a.IsUnique() {
		mulInplace(a, b)
		return a
	}

	result, err := array.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("mul: failed to create result array: %v", err))
	}

	mulVectorized(result, a, b)
	return result
}

// Div performs element-wise division. Shapes must match.
func (cpu *CPUBackend) Div(a, b *array.RawArray) *array.RawArray {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("div: shape mismatch: %v vs %v", a.Shape(), b.Shape()))
	}

	if a.IsUnique() {
		divInplace(a, b)
		return a
	}

	result, err := array.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("div: failed to create result array: %v", err))
	}

	divVectorized(result, a, b)
	return result
}
