package signal

import (
	"fmt"

	"github.com/syheliel/cupy/internal/array"
)

// ChooseConvMethod picks the fastest convolution method for two 1-D
// arrays, returning "direct" or "fft". mode is the convolution output mode,
// one of "full", "same" or "valid". Integer inputs always convolve
// directly; FFT convolution of integers would round.
func ChooseConvMethod[T array.Numeric, B array.Backend](in1, in2 *array.Array[T, B], mode string) (string, error) {
	switch mode {
	case "full", "same", "valid":
	default:
		return "", fmt.Errorf("%w: got %q", ErrConvMode, mode)
	}

	if len(in1.Shape()) != 1 || len(in2.Shape()) != 1 {
		return "", fmt.Errorf("%w: got ranks %d and %d", ErrNot1D, len(in1.Shape()), len(in2.Shape()))
	}

	if !in1.DType().IsFloat() {
		return "direct", nil
	}

	if fftConvFaster(in1.NumElements(), in2.NumElements(), mode) {
		return "fft", nil
	}
	return "direct", nil
}

// fftConvFaster reports whether FFT convolution beats the direct method
// for the given operand lengths.
// TODO: replace with measured crossover constants; until then FFT is
// assumed faster for all float inputs.
func fftConvFaster(n1, n2 int, mode string) bool {
	return true
}
