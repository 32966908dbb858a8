package cpu

import "gonum.org/v1/gonum/floats"

// Float64 operations lean on gonum's floats package, which carries the
// unrolled loops the hand-written float32 kernels approximate.

func addInplaceFloat64(a, b []float64) {
	floats.Add(a, b)
}

func subInplaceFloat64(a, b []float64) {
	floats.Sub(a, b)
}

func mulInplaceFloat64(a, b []float64) {
	floats.Mul(a, b)
}

func divInplaceFloat64(a, b []float64) {
	floats.Div(a, b)
}

func addVectorizedFloat64(dst, a, b []float64) {
	floats.AddTo(dst, a, b)
}

func subVectorizedFloat64(dst, a, b []float64) {
	floats.SubTo(dst, a, b)
}

func mulVectorizedFloat64(dst, a, b []float64) {
	floats.MulTo(dst, a, b)
}

func divVectorizedFloat64(dst, a, b []float64) {
	floats.DivTo(dst, a, b)
}
