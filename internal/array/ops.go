package array

// Add performs element-wise addition. Shapes must match.
func (a *Array[T, B]) Add(other *Array[T, B]) *Array[T, B] {
	result := a.backend.Add(a.raw, other.raw)
	return New[T, B](result, a.backend)
}

// Sub performs element-wise subtraction. Shapes must match.
func (a *Array[T, B]) Sub(other *Array[T, B]) *Array[T, B] {
	result := a.backend.Sub(a.raw, other.raw)
	return New[T, B](result, a.backend)
}

// Mul performs element-wise multiplication. Shapes must match.
func (a *Array[T, B]) Mul(other *Array[T, B]) *Array[T, B] {
	result := a.backend.Mul(a.raw, other.raw)
	return New[T, B](result, a.backend)
}

// Div performs element-wise division. Shapes must match.
func (a *Array[T, B]) Div(other *Array[T, B]) *Array[T, B] {
	result := a.backend.Div(a.raw, other.raw)
	return New[T, B](result, a.backend)
}

// Sum returns the total sum of all elements as a 0-D array.
func (a *Array[T, B]) Sum() *Array[T, B] {
	result := a.backend.Sum(a.raw)
	return New[T, B](result, a.backend)
}

// Mean returns the arithmetic mean of all elements as a 0-D array.
// Only float element types are supported by the CPU backend.
func (a *Array[T, B]) Mean() *Array[T, B] {
	result := a.backend.Mean(a.raw)
	return New[T, B](result, a.backend)
}

// Cast converts an array to element type U on the same backend.
// Values are converted with Go conversion semantics; casting to the
// array's own type is a no-op that shares the underlying buffer.
//
// Example:
//
//	f := array.Cast[float64](img) // img is *Array[uint8, B]
func Cast[U DType, T DType, B Backend](a *Array[T, B]) *Array[U, B] {
	var dummy U
	raw := a.Backend().Cast(a.Raw(), inferDataType(dummy))
	return New[U, B](raw, a.Backend())
}
