package cpu

import (
	"fmt"

	"github.com/syheliel/cupy/internal/array"
	"github.com/syheliel/cupy/internal/parallel"
)

// UniformFilter replaces every element of x with the mean of its size-shaped
// rectangular neighborhood. Out-of-bounds neighbors contribute zero to the
// numerator while the denominator stays the full window size (constant
// boundary). The filter is separable: one sliding-window pass per axis,
// accumulating in float64, cast to output at the end.
func (cpu *CPUBackend) UniformFilter(x *array.RawArray, size []int, output array.DataType) *array.RawArray {
	shape := x.Shape()
	ndim := len(shape)

	if len(size) != ndim {
		panic(fmt.Sprintf("uniformfilter: size length %d does not match input rank %d", len(size), ndim))
	}
	for d, k := range size {
		if k < 1 {
			panic(fmt.Sprintf("uniformfilter: size dimension %d is %d, must be >= 1", d, k))
		}
	}

	cur, err := array.NewRaw(shape, array.Float64, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("uniformfilter: %v", err))
	}
	next, err := array.NewRaw(shape, array.Float64, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("uniformfilter: %v", err))
	}

	if x.DType() == array.Float64 {
		copy(cur.AsFloat64(), x.AsFloat64())
	} else {
		castImpl(cur, x, array.Float64)
	}

	strides := shape.ComputeStrides()
	for axis := 0; axis < ndim; axis++ {
		if size[axis] == 1 {
			continue // Window of one is the identity.
		}
		uniformPass(next.AsFloat64(), cur.AsFloat64(), shape, strides, axis, size[axis], cpu.par)
		cur, next = next, cur
	}

	if output == array.Float64 {
		return cur
	}
	return cpu.Cast(cur, output)
}

// uniformPass runs one sliding-window mean along the given axis. Every line
// parallel to the axis is independent; a running sum makes the pass O(n) per
// line regardless of window size. Position i averages the window
// [i-size/2, i-size/2+size), with out-of-bounds entries counting as zero.
func uniformPass(dst, src []float64, shape array.Shape, strides []int, axis, size int, par parallel.Config) {
	n := shape[axis]
	stride := strides[axis]
	r := size / 2
	k := float64(size)
	numLines := len(src) / n

	parallel.ForChunk(numLines, func(start, end int) {
		for line := start; line < end; line++ {
			// Base offset of this line (decode over the non-axis dims).
			base := 0
			remaining := line
			for d := 0; d < len(shape); d++ {
				if d == axis {
					continue
				}
				coord := remaining % shape[d]
				remaining /= shape[d]
				base += coord * strides[d]
			}

			// Initial window for position 0 covers [-r, size-r).
			sum := 0.0
			for j := 0; j < size-r && j < n; j++ {
				sum += src[base+j*stride]
			}
			dst[base] = sum / k

			for i := 1; i < n; i++ {
				if add := i + size - r - 1; add < n {
					sum += src[base+add*stride]
				}
				if drop := i - r - 1; drop >= 0 {
					sum -= src[base+drop*stride]
				}
				dst[base+i*stride] = sum / k
			}
		}
	}, par)
}
