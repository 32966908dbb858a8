package ndimage

import (
	"fmt"

	"github.com/syheliel/cupy/internal/array"
)

// RankFilter replaces every element of x with the rank-th smallest value of
// its rectangular neighborhood. Rank 0 selects the minimum. The window
// extents follow NormalizeSizes; out-of-bounds neighbors read as zero.
//
// Example:
//
//	y, err := ndimage.RankFilter(x, 1, 3)     // 3x3x... window, second smallest
//	y, err := ndimage.RankFilter(x, 0, 3, 5)  // per-axis extents
func RankFilter[T array.Numeric, B array.Backend](x *array.Array[T, B], rank int, size ...int) (*array.Array[T, B], error) {
	raw, err := rankFilterRaw(x, func(int) int { return rank }, size, x.DType())
	if err != nil {
		return nil, err
	}
	return array.New[T, B](raw, x.Backend()), nil
}

// RankFilterTo is RankFilter with an explicit output element type. Selection
// still happens among the input values; only the stored results convert.
//
// Example:
//
//	y, err := ndimage.RankFilterTo[float64](x, 4, 3) // x may be integer
func RankFilterTo[O array.Numeric, T array.Numeric, B array.Backend](x *array.Array[T, B], rank int, size ...int) (*array.Array[O, B], error) {
	raw, err := rankFilterRaw(x, func(int) int { return rank }, size, array.DataTypeOf[O]())
	if err != nil {
		return nil, err
	}
	return array.New[O, B](raw, x.Backend()), nil
}

// RankFilterFootprint runs the rank filter with an explicit neighborhood
// mask instead of a rectangular window. The footprint must have the input's
// rank and odd extents; rank indexes the ascending-sorted values of the
// footprint-selected neighbors.
func RankFilterFootprint[T array.Numeric, B array.Backend](x *array.Array[T, B], rank int, footprint *array.Array[bool, B]) (*array.Array[T, B], error) {
	shape := x.Shape()
	fpShape := footprint.Shape()

	if len(fpShape) != len(shape) {
		return nil, fmt.Errorf("%w: footprint rank %d, input rank %d", ErrFootprintRank, len(fpShape), len(shape))
	}
	for d, k := range fpShape {
		if k%2 != 1 {
			return nil, fmt.Errorf("%w: dimension %d has %d elements", ErrEvenFootprint, d, k)
		}
	}

	popcount := 0
	for _, selected := range footprint.Data() {
		if selected {
			popcount++
		}
	}
	if rank < 0 || rank >= popcount {
		return nil, fmt.Errorf("%w: rank %d with %d selected elements", ErrRankRange, rank, popcount)
	}

	raw := x.Backend().RankFilter(x.Raw(), rank, footprint.Raw(), x.DType())
	return array.New[T, B](raw, x.Backend()), nil
}

// MedianFilter replaces every element with the median of its rectangular
// neighborhood (rank popcount/2 of the zero-padded window).
func MedianFilter[T array.Numeric, B array.Backend](x *array.Array[T, B], size ...int) (*array.Array[T, B], error) {
	return rankFilterSized(x, func(popcount int) int { return popcount / 2 }, size)
}

// MinimumFilter replaces every element with the smallest value of its
// rectangular neighborhood.
func MinimumFilter[T array.Numeric, B array.Backend](x *array.Array[T, B], size ...int) (*array.Array[T, B], error) {
	return rankFilterSized(x, func(int) int { return 0 }, size)
}

// MaximumFilter replaces every element with the largest value of its
// rectangular neighborhood.
func MaximumFilter[T array.Numeric, B array.Backend](x *array.Array[T, B], size ...int) (*array.Array[T, B], error) {
	return rankFilterSized(x, func(popcount int) int { return popcount - 1 }, size)
}

// PercentileFilter replaces every element with the given percentile of its
// rectangular neighborhood. Negative percentiles count from 100, so -25
// means the 75th percentile.
func PercentileFilter[T array.Numeric, B array.Backend](x *array.Array[T, B], percentile float64, size ...int) (*array.Array[T, B], error) {
	if percentile < 0 {
		percentile += 100
	}
	if percentile < 0 || percentile > 100 {
		return nil, fmt.Errorf("%w: %v", ErrPercentile, percentile)
	}
	return rankFilterSized(x, func(popcount int) int {
		if percentile == 100 {
			return popcount - 1
		}
		return int(float64(popcount) * percentile / 100)
	}, size)
}

// UniformFilter replaces every element with the mean of its rectangular
// neighborhood. The mean is computed in float64 and converted back to the
// input's element type.
func UniformFilter[T array.Numeric, B array.Backend](x *array.Array[T, B], size ...int) (*array.Array[T, B], error) {
	sizes, err := NormalizeSizes(size, len(x.Shape()))
	if err != nil {
		return nil, err
	}
	raw := x.Backend().UniformFilter(x.Raw(), sizes, x.DType())
	return array.New[T, B](raw, x.Backend()), nil
}

// rankFilterSized resolves the window sizes, expands them to a full
// rectangular footprint and derives the rank from the footprint's element
// count.
func rankFilterSized[T array.Numeric, B array.Backend](x *array.Array[T, B], rankFor func(popcount int) int, size []int) (*array.Array[T, B], error) {
	raw, err := rankFilterRaw(x, rankFor, size, x.DType())
	if err != nil {
		return nil, err
	}
	return array.New[T, B](raw, x.Backend()), nil
}

func rankFilterRaw[T array.Numeric, B array.Backend](x *array.Array[T, B], rankFor func(popcount int) int, size []int, output array.DataType) (*array.RawArray, error) {
	sizes, err := NormalizeSizes(size, len(x.Shape()))
	if err != nil {
		return nil, err
	}

	footprint := array.Ones[bool](array.Shape(sizes), x.Backend())
	popcount := footprint.NumElements()

	rank := rankFor(popcount)
	if rank < 0 || rank >= popcount {
		return nil, fmt.Errorf("%w: rank %d with %d selected elements", ErrRankRange, rank, popcount)
	}

	return x.Backend().RankFilter(x.Raw(), rank, footprint.Raw(), output), nil
}
