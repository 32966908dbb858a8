package array

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for array operations.
//
// Implementations:
//   - CPU: pure Go kernels with data-parallel execution
//   - CUDA: runtime-compiled device kernels (planned)
type Backend interface {
	// Element-wise binary operations (operands must share a shape)
	Add(a, b *RawArray) *RawArray
	Sub(a, b *RawArray) *RawArray
	Mul(a, b *RawArray) *RawArray
	Div(a, b *RawArray) *RawArray

	// Windowed operations.
	//
	// RankFilter replaces every element with the rank-th smallest value of
	// its footprint-selected neighborhood. Out-of-bounds neighbors read as
	// zero. The footprint must be a Bool array of the input's rank with odd
	// extents; output selects the result element type.
	RankFilter(x *RawArray, rank int, footprint *RawArray, output DataType) *RawArray

	// UniformFilter replaces every element with the mean of its size-shaped
	// rectangular neighborhood. Out-of-bounds neighbors contribute zero to
	// the numerator while the denominator stays the full window size.
	UniformFilter(x *RawArray, size []int, output DataType) *RawArray

	// Reduction operations (scalar result)
	Sum(x *RawArray) *RawArray
	Mean(x *RawArray) *RawArray

	// Type conversion
	Cast(x *RawArray, dtype DataType) *RawArray // cast to different data type

	// Metadata
	Name() string
	Device() Device
}
