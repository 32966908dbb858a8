package cpu

import (
	"github.com/syheliel/cupy/internal/array"
)

// addInplace performs inplace addition (a += b).
// Requires: a.Shape().Equal(b.Shape()) && a.IsUnique().
func addInplace(a, b *array.RawArray) {
	switch a.DType() {
	case array.Float32:
		addInplaceFloat32(a.AsFloat32(), b.AsFloat32())
	case array.Float64:
		addInplaceFloat64(a.AsFloat64(), b.AsFloat64())
	case array.Int32:
		addInplaceInt32(a.AsInt32(), b.AsInt32())
	case array.Int64:
		addInplaceInt64(a.AsInt64(), b.AsInt64())
	default:
		panic("addInplace: unsupported dtype")
	}
}

// addVectorized performs vectorized addition: result = a + b.
// Requires: a.Shape().Equal(b.Shape()).
func addVectorized(result, a, b *array.RawArray) {
	switch a.DType() {
	case array.Float32:
		addVectorizedFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case array.Float64:
		addVectorizedFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case array.Int32:
		addVectorizedInt32(result.AsInt32(), a.AsInt32(), b.AsInt32())
	case array.Int64:
		addVectorizedInt64(result.AsInt64(), a.AsInt64(), b.AsInt64())
	default:
		panic("addVectorized: unsupported dtype")
	}
}

// Similar functions for sub, mul, div.
func subInplace(a, b *array.RawArray) {
	switch a.DType() {
	case array.Float32:
		subInplaceFloat32(a.AsFloat32(), b.AsFloat32())
	case array.Float64:
		subInplaceFloat64(a.AsFloat64(), b.AsFloat64())
	case array.Int32:
		subInplaceInt32(a.AsInt32(), b.AsInt32())
	case array.Int64:
		subInplaceInt64(a.AsInt64(), b.AsInt64())
	default:
		panic("subInplace: unsupported dtype")
	}
}

func subVectorized(result, a, b *array.RawArray) {
	switch a.DType() {
	case array.Float32:
		subVectorizedFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case array.Float64:
		subVectorizedFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case array.Int32:
		subVectorizedInt32(result.AsInt32(), a.AsInt32(), b.AsInt32())
	case array.Int64:
		subVectorizedInt64(result.AsInt64(), a.AsInt64(), b.AsInt64())
	default:
		panic("subVectorized: unsupported dtype")
	}
}

func mulInplace(a, b *array.RawArray) {
	switch a.DType() {
	case array.Float32:
		mulInplaceFloat32(a.AsFloat32(), b.AsFloat32())
	case array.Float64:
		mulInplaceFloat64(a.AsFloat64(), b.AsFloat64())
	case array.Int32:
		mulInplaceInt32(a.AsInt32(), b.AsInt32())
	case array.Int64:
		mulInplaceInt64(a.AsInt64(), b.AsInt64())
	default:
		panic("mulInplace: unsupported dtype")
	}
}

func mulVectorized(result, a, b *array.RawArray) {
	switch a.DType() {
	case array.Float32:
		mulVectorizedFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case array.Float64:
		mulVectorizedFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case array.Int32:
		mulVectorizedInt32(result.AsInt32(), a.AsInt32(), b.AsInt32())
	case array.Int64:
		mulVectorizedInt64(result.AsInt64(), a.AsInt64(), b.AsInt64())
	default:
		panic("mulVectorized: unsupported dtype")
	}
}

func divInplace(a, b *array.RawArray) {
	switch a.DType() {
	case array.Float32:
		divInplaceFloat32(a.AsFloat32(), b.AsFloat32())
	case array.Float64:
		divInplaceFloat64(a.AsFloat64(), b.AsFloat64())
	case array.Int32:
		divInplaceInt32(a.AsInt32(), b.AsInt32())
	case array.Int64:
		divInplaceInt64(a.AsInt64(), b.AsInt64())
	default:
		panic("divInplace: unsupported dtype")
	}
}

func divVectorized(result, a, b *array.RawArray) {
	switch a.DType() {
	case array.Float32:
		divVectorizedFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case array.Float64:
		divVectorizedFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case array.Int32:
		divVectorizedInt32(result.AsInt32(), a.AsInt32(), b.AsInt32())
	case array.Int64:
		divVectorizedInt64(result.AsInt64(), a.AsInt64(), b.AsInt64())
	default:
		panic("divVectorized: unsupported dtype")
	}
}
