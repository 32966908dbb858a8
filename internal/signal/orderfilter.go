package signal

import (
	"fmt"

	"github.com/syheliel/cupy/internal/array"
	"github.com/syheliel/cupy/internal/ndimage"
)

// OrderFilter performs an order filter on an N-dimensional array. The
// domain mask is centered over each position and selects the neighbors
// considered there; the output is the rank-th element of the selected
// values sorted ascending (rank 0 is the smallest). Every domain dimension
// must have an odd number of elements.
func OrderFilter[T array.Numeric, B array.Backend](a *array.Array[T, B], domain *array.Array[bool, B], rank int) (*array.Array[T, B], error) {
	for d, k := range domain.Shape() {
		if k%2 != 1 {
			return nil, fmt.Errorf("%w: domain dimension %d has %d elements", ndimage.ErrEvenFootprint, d, k)
		}
	}
	return ndimage.RankFilterFootprint(a, rank, domain)
}
