package signal

import (
	"github.com/syheliel/cupy/internal/array"
	"github.com/syheliel/cupy/internal/ndimage"
)

// Wiener applies a Wiener filter to an N-dimensional array. mysize gives
// the filter window (nil means 3 per axis; a single element broadcasts to
// every axis). noise is the optional noise-power estimate; when absent it
// is estimated as the mean of the local variance over the whole array.
//
// Where the local variance falls below the noise power, or is exactly
// zero, the output is the local mean; everywhere else the input is shrunk
// toward the local mean by the noise share of the local variance. The
// variance test runs before any division, so flat neighborhoods never
// divide by zero.
func Wiener[T array.Numeric, B array.Backend](im *array.Array[T, B], mysize []int, noise ...float64) (*array.Array[float64, B], error) {
	shape := im.Shape()
	sizes, err := ndimage.NormalizeSizes(mysize, len(shape))
	if err != nil {
		return nil, err
	}

	b := im.Backend()

	work := array.Cast[float64](im).Raw()
	// The raw ops reuse unique buffers in place; work and the local mean
	// are both read again after later ops run, so pin them.
	defer work.ForceNonUnique()()

	localMean := b.UniformFilter(work, sizes, array.Float64)
	defer localMean.ForceNonUnique()()

	sq := b.Mul(work, work)
	localVar := b.Sub(b.UniformFilter(sq, sizes, array.Float64), b.Mul(localMean, localMean))

	var noisePower float64
	if len(noise) > 0 {
		noisePower = noise[0]
	} else {
		noisePower = b.Mean(localVar).AsFloat64()[0]
	}

	result, err := array.NewRaw(shape, array.Float64, b.Device())
	if err != nil {
		return nil, err
	}

	out := result.AsFloat64()
	x := work.AsFloat64()
	mean := localMean.AsFloat64()
	variance := localVar.AsFloat64()
	for i := range out {
		v := variance[i]
		if v < noisePower || v == 0 {
			out[i] = mean[i]
			continue
		}
		out[i] = mean[i] + (x[i]-mean[i])*(1-noisePower/v)
	}

	return array.New[float64, B](result, b), nil
}
