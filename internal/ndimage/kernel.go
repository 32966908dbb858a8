// Package ndimage provides N-dimensional windowed filters over backend
// arrays: rank-order filters (median, minimum, maximum, percentile) and a
// separable uniform filter. All filters pad out-of-bounds neighbors with
// zero and return a new array of the input's shape.
package ndimage

import "fmt"

// NormalizeSizes expands a window-size specification to one odd extent per
// axis. No sizes means 3 per axis; a single size broadcasts to every axis;
// otherwise one size per axis is required.
func NormalizeSizes(sizes []int, ndim int) ([]int, error) {
	out := make([]int, ndim)

	switch len(sizes) {
	case 0:
		for d := range out {
			out[d] = 3
		}
	case 1:
		for d := range out {
			out[d] = sizes[0]
		}
	case ndim:
		copy(out, sizes)
	default:
		return nil, fmt.Errorf("%w: got %d sizes for rank %d", ErrKernelRank, len(sizes), ndim)
	}

	for d, k := range out {
		if k%2 != 1 {
			return nil, fmt.Errorf("%w: dimension %d has size %d", ErrEvenKernelSize, d, k)
		}
	}
	return out, nil
}
