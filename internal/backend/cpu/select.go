package cpu

import "github.com/syheliel/cupy/internal/array"

// Window size below which insertion sort beats quickselect.
const smallWindow = 32

// selectRank returns the rank-th smallest element of w.
// The slice is reordered in place; callers rebuild it per position anyway.
func selectRank[T array.Numeric](w []T, rank int) T {
	if len(w) == 9 && rank == 4 {
		return median9(w)
	}
	if len(w) <= smallWindow {
		insertionSort(w)
		return w[rank]
	}
	return quickSelect(w, rank)
}

// insertionSort sorts small windows without allocations.
func insertionSort[T array.Numeric](w []T) {
	for i := 1; i < len(w); i++ {
		v := w[i]
		j := i - 1
		for j >= 0 && w[j] > v {
			w[j+1] = w[j]
			j--
		}
		w[j+1] = v
	}
}

// quickSelect partitions w around median-of-three pivots until the wanted
// rank is in place.
func quickSelect[T array.Numeric](w []T, rank int) T {
	lo, hi := 0, len(w)-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if w[mid] < w[lo] {
			w[mid], w[lo] = w[lo], w[mid]
		}
		if w[hi] < w[lo] {
			w[hi], w[lo] = w[lo], w[hi]
		}
		if w[hi] < w[mid] {
			w[hi], w[mid] = w[mid], w[hi]
		}
		pivot := w[mid]

		i, j := lo, hi
		for i <= j {
			for w[i] < pivot {
				i++
			}
			for w[j] > pivot {
				j--
			}
			if i <= j {
				w[i], w[j] = w[j], w[i]
				i++
				j--
			}
		}

		switch {
		case rank <= j:
			hi = j
		case rank >= i:
			lo = i
		default:
			return w[rank]
		}
	}
	return w[rank]
}

// median9 computes the median of a 9-element window with a fixed min/max
// network (optimal 9-element median network). The full 3x3 median case hits
// this path. Elements must not contain IEEE NaN.
func median9[T array.Numeric](a []T) T {
	if a[0] > a[1] {
		a[0], a[1] = a[1], a[0]
	}
	if a[3] > a[4] {
		a[3], a[4] = a[4], a[3]
	}
	if a[6] > a[7] {
		a[6], a[7] = a[7], a[6]
	}
	if a[1] > a[2] {
		a[1], a[2] = a[2], a[1]
	}
	if a[4] > a[5] {
		a[4], a[5] = a[5], a[4]
	}
	if a[7] > a[8] {
		a[7], a[8] = a[8], a[7]
	}
	if a[0] > a[1] {
		a[0], a[1] = a[1], a[0]
	}
	if a[3] > a[4] {
		a[3], a[4] = a[4], a[3]
	}
	if a[6] > a[7] {
		a[6], a[7] = a[7], a[6]
	}
	if a[0] > a[3] {
		a[3] = a[0]
	}
	if a[3] > a[6] {
		a[6] = a[3]
	}
	if a[1] > a[4] {
		a[1], a[4] = a[4], a[1]
	}
	if a[4] > a[7] {
		a[4] = a[7]
	}
	if a[1] > a[4] {
		a[4] = a[1]
	}
	if a[5] > a[8] {
		a[5] = a[8]
	}
	if a[2] > a[5] {
		a[2] = a[5]
	}
	if a[2] > a[4] {
		a[2], a[4] = a[4], a[2]
	}
	if a[4] > a[6] {
		a[4] = a[6]
	}
	if a[2] > a[4] {
		a[4] = a[2]
	}
	return a[4]
}
