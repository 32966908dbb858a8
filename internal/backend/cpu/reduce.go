package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/syheliel/cupy/internal/array"
)

// Sum computes the total sum of all elements in the array (scalar result).
func (cpu *CPUBackend) Sum(x *array.RawArray) *array.RawArray {
	// Result is a scalar (empty shape)
	result, err := array.NewRaw(array.Shape{}, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}

	switch x.DType() {
	case array.Float32:
		src := x.AsFloat32()
		var sum float32
		for _, v := range src {
			sum += v
		}
		result.AsFloat32()[0] = sum
	case array.Float64:
		result.AsFloat64()[0] = floats.Sum(x.AsFloat64())
	case array.Int32:
		src := x.AsInt32()
		var sum int32
		for _, v := range src {
			sum += v
		}
		result.AsInt32()[0] = sum
	case array.Int64:
		src := x.AsInt64()
		var sum int64
		for _, v := range src {
			sum += v
		}
		result.AsInt64()[0] = sum
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}

	return result
}

// Mean computes the mean of all elements in the array (scalar result).
func (cpu *CPUBackend) Mean(x *array.RawArray) *array.RawArray {
	result, err := array.NewRaw(array.Shape{}, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("mean: %v", err))
	}

	switch x.DType() {
	case array.Float32:
		src := x.AsFloat32()
		var sum float32
		for _, v := range src {
			sum += v
		}
		result.AsFloat32()[0] = sum / float32(len(src))
	case array.Float64:
		result.AsFloat64()[0] = stat.Mean(x.AsFloat64(), nil)
	default:
		panic(fmt.Sprintf("mean: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}
