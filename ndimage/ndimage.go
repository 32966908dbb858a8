// Copyright 2026 The cupy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndimage provides the public API for N-dimensional windowed filters
// in the cupy signal processing library.
//
// The package mirrors the scipy.ndimage filter family: rank-order filters
// (median, minimum, maximum, percentile, arbitrary rank) and a separable
// uniform filter. All filters pad out-of-bounds neighbors with zero and
// return a new array of the input's shape.
//
// Example:
//
//	backend := cpu.New()
//	x := array.Rand[float64](array.Shape{128, 128}, backend)
//	y, err := ndimage.MedianFilter(x, 3)
package ndimage

import (
	"github.com/syheliel/cupy/array"
	"github.com/syheliel/cupy/internal/ndimage"
)

// Common errors.
var (
	// ErrKernelRank reports a window-size list whose length does not match
	// the input's rank.
	ErrKernelRank = ndimage.ErrKernelRank
	// ErrEvenKernelSize reports an even window extent.
	ErrEvenKernelSize = ndimage.ErrEvenKernelSize
	// ErrFootprintRank reports a footprint whose rank does not match the
	// input's rank.
	ErrFootprintRank = ndimage.ErrFootprintRank
	// ErrEvenFootprint reports a footprint with an even extent.
	ErrEvenFootprint = ndimage.ErrEvenFootprint
	// ErrRankRange reports a rank outside [0, footprint popcount).
	ErrRankRange = ndimage.ErrRankRange
	// ErrPercentile reports a percentile outside [0, 100] after negative
	// wrapping.
	ErrPercentile = ndimage.ErrPercentile
)

// NormalizeSizes expands a window-size specification to one odd extent per
// axis. No sizes means 3 per axis; a single size broadcasts to every axis;
// otherwise one size per axis is required.
func NormalizeSizes(sizes []int, ndim int) ([]int, error) {
	return ndimage.NormalizeSizes(sizes, ndim)
}

// RankFilter replaces every element of x with the rank-th smallest value of
// its rectangular neighborhood. Rank 0 selects the minimum. The window
// extents follow NormalizeSizes; out-of-bounds neighbors read as zero.
//
// Example:
//
//	y, err := ndimage.RankFilter(x, 1, 3)     // 3x3x... window, second smallest
//	y, err := ndimage.RankFilter(x, 0, 3, 5)  // per-axis extents
func RankFilter[T array.Numeric, B array.Backend](x *array.Array[T, B], rank int, size ...int) (*array.Array[T, B], error) {
	return ndimage.RankFilter(x, rank, size...)
}

// RankFilterTo is RankFilter with an explicit output element type. Selection
// still happens among the input values; only the stored results convert.
//
// Example:
//
//	y, err := ndimage.RankFilterTo[float64](x, 4, 3) // x may be integer
func RankFilterTo[O array.Numeric, T array.Numeric, B array.Backend](x *array.Array[T, B], rank int, size ...int) (*array.Array[O, B], error) {
	return ndimage.RankFilterTo[O](x, rank, size...)
}

// RankFilterFootprint runs the rank filter with an explicit neighborhood
// mask instead of a rectangular window. The footprint must have the input's
// rank and odd extents; rank indexes the ascending-sorted values of the
// footprint-selected neighbors.
func RankFilterFootprint[T array.Numeric, B array.Backend](x *array.Array[T, B], rank int, footprint *array.Array[bool, B]) (*array.Array[T, B], error) {
	return ndimage.RankFilterFootprint(x, rank, footprint)
}

// MedianFilter replaces every element with the median of its rectangular
// neighborhood.
func MedianFilter[T array.Numeric, B array.Backend](x *array.Array[T, B], size ...int) (*array.Array[T, B], error) {
	return ndimage.MedianFilter(x, size...)
}

// MinimumFilter replaces every element with the smallest value of its
// rectangular neighborhood.
func MinimumFilter[T array.Numeric, B array.Backend](x *array.Array[T, B], size ...int) (*array.Array[T, B], error) {
	return ndimage.MinimumFilter(x, size...)
}

// MaximumFilter replaces every element with the largest value of its
// rectangular neighborhood.
func MaximumFilter[T array.Numeric, B array.Backend](x *array.Array[T, B], size ...int) (*array.Array[T, B], error) {
	return ndimage.MaximumFilter(x, size...)
}

// PercentileFilter replaces every element with the given percentile of its
// rectangular neighborhood. Negative percentiles count from 100, so -25
// means the 75th percentile.
func PercentileFilter[T array.Numeric, B array.Backend](x *array.Array[T, B], percentile float64, size ...int) (*array.Array[T, B], error) {
	return ndimage.PercentileFilter(x, percentile, size...)
}

// UniformFilter replaces every element with the mean of its rectangular
// neighborhood. The mean is computed in float64 and converted back to the
// input's element type.
func UniformFilter[T array.Numeric, B array.Backend](x *array.Array[T, B], size ...int) (*array.Array[T, B], error) {
	return ndimage.UniformFilter(x, size...)
}
