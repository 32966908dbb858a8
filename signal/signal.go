// Copyright 2026 The cupy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package signal provides the public API for SciPy-signal-compatible
// filtering in the cupy signal processing library.
//
// # Overview
//
// The package covers the windowed smoothing entry points of
// scipy.signal:
//   - Medfilt, Medfilt2d: median filtering with zero padding
//   - OrderFilter: rank selection over an arbitrary domain mask
//   - Wiener: adaptive noise suppression from local statistics
//   - ChooseConvMethod: convolution method selection
//
// # Basic Usage
//
//	import (
//	    "github.com/syheliel/cupy/array"
//	    "github.com/syheliel/cupy/backend/cpu"
//	    "github.com/syheliel/cupy/signal"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    img := array.Rand[float64](array.Shape{256, 256}, backend)
//
//	    smoothed, err := signal.Medfilt2d(img, 5)
//	    if err != nil {
//	        panic(err)
//	    }
//	    _ = smoothed
//	}
//
// # Diagnostics
//
// The package is silent by default. Install a logger with SetLogger to
// surface non-fatal warnings, like a median kernel exceeding the volume
// extent.
package signal

import (
	"go.uber.org/zap"

	"github.com/syheliel/cupy/array"
	"github.com/syheliel/cupy/internal/signal"
)

// Common errors.
var (
	// ErrNot2D reports a Medfilt2d input that is not two-dimensional.
	ErrNot2D = signal.ErrNot2D
	// ErrNot1D reports a ChooseConvMethod input that is not one-dimensional.
	ErrNot1D = signal.ErrNot1D
	// ErrConvMode reports an unknown convolution output mode.
	ErrConvMode = signal.ErrConvMode
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
//
// Example:
//
//	y, err := signal.Medfilt(volume)        // 3 per axis
//	y, err := signal.Medfilt(volume, 5)     // 5 per axis
//	y, err := signal.Medfilt(volume, 3, 5)  // per-axis extents
func Medfilt[T array.Numeric, B array.Backend](volume *array.Array[T, B], kernelSize ...int) (*array.Array[float64, B], error) {
	return signal.Medfilt(volume, kernelSize...)
}

// Medfilt2d median filters a 2-dimensional array. Unlike Medfilt the output
// keeps the input's element type.
//
// Example:
//
//	y, err := signal.Medfilt2d(img)     // 3x3 kernel
//	y, err := signal.Medfilt2d(img, 5)  // 5x5 kernel
func Medfilt2d[T array.Numeric, B array.Backend](input *array.Array[T, B], kernelSize ...int) (*array.Array[T, B], error) {
	return signal.Medfilt2d(input, kernelSize...)
}

// OrderFilter performs an order filter on an N-dimensional array. The
// domain mask is centered over each position and selects the neighbors
// considered there; the output is the rank-th element of the selected
// values sorted ascending (rank 0 is the smallest). Every domain dimension
// must have an odd number of elements.
//
// Example:
//
//	domain := array.Ones[bool](array.Shape{3, 3}, backend)
//	y, err := signal.OrderFilter(img, domain, 4)  // 3x3 median
func OrderFilter[T array.Numeric, B array.Backend](a *array.Array[T, B], domain *array.Array[bool, B], rank int) (*array.Array[T, B], error) {
	return signal.OrderFilter(a, domain, rank)
}

// Wiener applies a Wiener filter to an N-dimensional array. mysize gives
// the filter window (nil means 3 per axis; a single element broadcasts to
// every axis). noise is the optional noise-power estimate; when absent it
// is estimated as the mean of the local variance over the whole array.
//
// Where the local variance falls below the noise power, or is exactly
// zero, the output is the local mean; everywhere else the input is shrunk
// toward the local mean by the noise share of the local variance.
//
// Example:
//
//	y, err := signal.Wiener(img, nil)            // 3 per axis, estimated noise
//	y, err := signal.Wiener(img, []int{5}, 0.1)  // 5 per axis, known noise power
func Wiener[T array.Numeric, B array.Backend](im *array.Array[T, B], mysize []int, noise ...float64) (*array.Array[float64, B], error) {
	return signal.Wiener(im, mysize, noise...)
}

// ChooseConvMethod picks the fastest convolution method for two 1-D
// arrays, returning "direct" or "fft". mode is the convolution output mode,
// one of "full", "same" or "valid". Integer inputs always convolve
// directly; FFT convolution of integers would round.
func ChooseConvMethod[T array.Numeric, B array.Backend](in1, in2 *array.Array[T, B], mode string) (string, error) {
	return signal.ChooseConvMethod(in1, in2, mode)
}

// SetLogger installs a logger for the package's warnings. Passing nil
// restores the silent default.
func SetLogger(logger *zap.SugaredLogger) {
	signal.SetLogger(logger)
}
