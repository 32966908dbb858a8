// Package signal provides SciPy-signal-compatible filtering entry points
// for the cupy signal processing library: median filters, the order filter,
// the Wiener adaptive filter and the convolution method chooser.
package signal

import (
	"fmt"

	"github.com/syheliel/cupy/internal/array"
	"github.com/syheliel/cupy/internal/ndimage"
)

// Medfilt applies a median filter to an N-dimensional array using a local
// window of kernelSize (one odd extent per axis; a single value broadcasts
// to every axis; none means 3 per axis). The array is zero-padded at the
// boundary and the result is always float64, matching the legacy numeric
// convention.
//
// A kernel extent larger than the corresponding volume extent is not an
// error: the filter warns through the package logger and the result
// reflects the implicit zero padding.
func Medfilt[T array.Numeric, B array.Backend](volume *array.Array[T, B], kernelSize ...int) (*array.Array[float64, B], error) {
	shape := volume.Shape()
	sizes, err := ndimage.NormalizeSizes(kernelSize, len(shape))
	if err != nil {
		return nil, err
	}

	for d := range sizes {
		if sizes[d] > shape[d] {
			log.Warnw("kernel_size exceeds volume extent: volume will be zero-padded",
				"kernel_size", sizes, "volume_shape", shape)
			break
		}
	}

	popcount := 1
	for _, k := range sizes {
		popcount *= k
	}
	return ndimage.RankFilterTo[float64](volume, popcount/2, sizes...)
}

// Medfilt2d median filters a 2-dimensional array. Unlike Medfilt the output
// keeps the input's element type.
func Medfilt2d[T array.Numeric, B array.Backend](input *array.Array[T, B], kernelSize ...int) (*array.Array[T, B], error) {
	if len(input.Shape()) != 2 {
		return nil, fmt.Errorf("%w: got rank %d", ErrNot2D, len(input.Shape()))
	}

	sizes, err := ndimage.NormalizeSizes(kernelSize, 2)
	if err != nil {
		return nil, err
	}
	return ndimage.RankFilter(input, sizes[0]*sizes[1]/2, sizes...)
}
