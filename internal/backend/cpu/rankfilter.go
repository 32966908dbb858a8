package cpu

import (
	"fmt"

	"github.com/syheliel/cupy/internal/array"
	"github.com/syheliel/cupy/internal/parallel"
)

// fpOffset locates one selected footprint cell relative to the window center.
type fpOffset struct {
	rel []int // per-axis displacement from the center
	lin int   // flattened displacement, valid for interior positions only
}

// RankFilter replaces every element of x with the rank-th smallest value of
// its footprint-selected neighborhood. Out-of-bounds neighbors read as zero
// (constant boundary). The footprint must be a Bool array of x's rank with
// odd extents; rank must lie in [0, popcount(footprint)).
//
// The result has dtype output. Selection always happens in the input type;
// values are converted on the way out, so an int32 input filtered to Float64
// yields exact float values.
func (cpu *CPUBackend) RankFilter(x *array.RawArray, rank int, footprint *array.RawArray, output array.DataType) *array.RawArray {
	shape := x.Shape()
	ndim := len(shape)

	if footprint.DType() != array.Bool {
		panic(fmt.Sprintf("rankfilter: footprint dtype must be bool, got %s", footprint.DType()))
	}
	fpShape := footprint.Shape()
	if len(fpShape) != ndim {
		panic(fmt.Sprintf("rankfilter: footprint rank %d does not match input rank %d", len(fpShape), ndim))
	}
	for d, k := range fpShape {
		if k%2 == 0 {
			panic(fmt.Sprintf("rankfilter: footprint dimension %d has even extent %d", d, k))
		}
	}

	offsets := footprintOffsets(footprint, shape.ComputeStrides())
	if len(offsets) == 0 {
		panic("rankfilter: footprint selects no elements")
	}
	if rank < 0 || rank >= len(offsets) {
		panic(fmt.Sprintf("rankfilter: rank %d not within footprint size %d", rank, len(offsets)))
	}

	result, err := array.NewRaw(shape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("rankfilter: %v", err))
	}

	// Interior positions gather neighbors through precomputed flat offsets;
	// the margins fall back to per-axis bounds checks.
	lo := make([]int, ndim)
	hi := make([]int, ndim)
	for d := 0; d < ndim; d++ {
		lo[d] = fpShape[d] / 2
		hi[d] = shape[d] - fpShape[d]/2
	}

	switch x.DType() {
	case array.Float32:
		rankFilterKernel(result.AsFloat32(), x.AsFloat32(), shape, offsets, rank, lo, hi, cpu.par)
	case array.Float64:
		rankFilterKernel(result.AsFloat64(), x.AsFloat64(), shape, offsets, rank, lo, hi, cpu.par)
	case array.Int32:
		rankFilterKernel(result.AsInt32(), x.AsInt32(), shape, offsets, rank, lo, hi, cpu.par)
	case array.Int64:
		rankFilterKernel(result.AsInt64(), x.AsInt64(), shape, offsets, rank, lo, hi, cpu.par)
	case array.Uint8:
		rankFilterKernel(result.AsUint8(), x.AsUint8(), shape, offsets, rank, lo, hi, cpu.par)
	default:
		panic(fmt.Sprintf("rankfilter: unsupported dtype %s", x.DType()))
	}

	if output != x.DType() {
		return cpu.Cast(result, output)
	}
	return result
}

// footprintOffsets collects the displacements of all true footprint cells.
func footprintOffsets(footprint *array.RawArray, strides []int) []fpOffset {
	fpShape := footprint.Shape()
	ndim := len(fpShape)
	fpStrides := fpShape.ComputeStrides()
	mask := footprint.AsBool()

	offsets := make([]fpOffset, 0, len(mask))
	for j, selected := range mask {
		if !selected {
			continue
		}
		rel := make([]int, ndim)
		lin := 0
		temp := j
		for d := 0; d < ndim; d++ {
			rel[d] = temp/fpStrides[d] - fpShape[d]/2
			temp %= fpStrides[d]
			lin += rel[d] * strides[d]
		}
		offsets = append(offsets, fpOffset{rel: rel, lin: lin})
	}
	return offsets
}

// rankFilterKernel runs the gather-and-select loop for one element type.
// Output positions are independent, so the flat range splits across workers;
// each chunk reuses one window buffer for all its gathers.
func rankFilterKernel[T array.Numeric](dst, src []T, shape array.Shape, offsets []fpOffset, rank int, lo, hi []int, par parallel.Config) {
	ndim := len(shape)
	strides := shape.ComputeStrides()

	parallel.ForChunk(len(src), func(start, end int) {
		window := make([]T, len(offsets))
		coords := make([]int, ndim)

		for i := start; i < end; i++ {
			// Decode the flat index and classify the position.
			interior := true
			temp := i
			for d := 0; d < ndim; d++ {
				c := temp / strides[d]
				temp %= strides[d]
				coords[d] = c
				if c < lo[d] || c >= hi[d] {
					interior = false
				}
			}

			if interior {
				for j := range offsets {
					window[j] = src[i+offsets[j].lin]
				}
			} else {
				for j := range offsets {
					var v T
					idx := 0
					inBounds := true
					for d := 0; d < ndim; d++ {
						c := coords[d] + offsets[j].rel[d]
						if c < 0 || c >= shape[d] {
							inBounds = false
							break
						}
						idx += c * strides[d]
					}
					if inBounds {
						v = src[idx]
					}
					window[j] = v // zero for padded neighbors
				}
			}

			dst[i] = selectRank(window, rank)
		}
	}, par)
}
