package ndimage

import "errors"

// Common errors.
var (
	ErrKernelRank     = errors.New("kernel size must have length equal to input rank")
	ErrEvenKernelSize = errors.New("each element of kernel size should be odd")
	ErrFootprintRank  = errors.New("footprint rank must match input rank")
	ErrEvenFootprint  = errors.New("each dimension of footprint should have an odd number of elements")
	ErrRankRange      = errors.New("rank not within footprint size")
	ErrPercentile     = errors.New("invalid percentile")
)
