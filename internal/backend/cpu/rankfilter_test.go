package cpu

import (
	"math/rand"
	"testing"

	"github.com/syheliel/cupy/internal/array"
	"github.com/syheliel/cupy/internal/parallel"
)

// Helper to build an all-true Bool footprint.
func fullFootprint(t *testing.T, shape array.Shape) *array.RawArray {
	t.Helper()
	fp, err := array.NewRaw(shape, array.Bool, array.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	mask := fp.AsBool()
	for i := range mask {
		mask[i] = true
	}
	return fp
}

// Helper to fill a Float64 raw array with small random integers. Integer
// values keep the naive and optimized filters bit-identical.
func randomIntValued(t *testing.T, shape array.Shape, rng *rand.Rand) *array.RawArray {
	t.Helper()
	raw, err := array.NewRaw(shape, array.Float64, array.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	data := raw.AsFloat64()
	for i := range data {
		data[i] = float64(rng.Intn(100))
	}
	return raw
}

// TestRankFilter_Median1D tests the 1-D median with zero boundary padding.
func TestRankFilter_Median1D(t *testing.T) {
	backend := newTestBackend()

	x := rawFloat64(t, array.Shape{5}, []float64{5, 1, 9, 2, 8})
	fp := fullFootprint(t, array.Shape{3})

	result := backend.RankFilter(x, 1, fp, array.Float64)

	// Windows: [0 5 1] [5 1 9] [1 9 2] [9 2 8] [2 8 0]
	expected := []float64{1, 5, 2, 8, 2}
	if !float64SliceEqual(result.AsFloat64(), expected) {
		t.Errorf("median failed: got %v, expected %v", result.AsFloat64(), expected)
	}
}

// TestRankFilter_MinMax1D tests the extreme ranks.
func TestRankFilter_MinMax1D(t *testing.T) {
	backend := newTestBackend()

	x := rawFloat64(t, array.Shape{5}, []float64{3, 1, 4, 1, 5})
	fp := fullFootprint(t, array.Shape{3})

	minResult := backend.RankFilter(x, 0, fp, array.Float64)
	expected := []float64{0, 1, 1, 1, 0}
	if !float64SliceEqual(minResult.AsFloat64(), expected) {
		t.Errorf("rank 0 failed: got %v, expected %v", minResult.AsFloat64(), expected)
	}

	maxResult := backend.RankFilter(x, 2, fp, array.Float64)
	expected = []float64{3, 4, 4, 5, 5}
	if !float64SliceEqual(maxResult.AsFloat64(), expected) {
		t.Errorf("rank 2 failed: got %v, expected %v", maxResult.AsFloat64(), expected)
	}
}

// TestRankFilter_Median2D tests the 3x3 median on a 2-D grid. The boundary
// windows hang over the edge, so their medians are dominated by padding.
func TestRankFilter_Median2D(t *testing.T) {
	backend := newTestBackend()

	x := rawFloat64(t, array.Shape{3, 3}, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	fp := fullFootprint(t, array.Shape{3, 3})

	result := backend.RankFilter(x, 4, fp, array.Float64)

	expected := []float64{
		0, 2, 0,
		2, 5, 3,
		0, 5, 0,
	}
	if !float64SliceEqual(result.AsFloat64(), expected) {
		t.Errorf("median2d failed: got %v, expected %v", result.AsFloat64(), expected)
	}
}

// TestRankFilter_CrossFootprint tests a non-rectangular footprint against the
// naive reference.
func TestRankFilter_CrossFootprint(t *testing.T) {
	backend := newTestBackend()
	mock := array.NewMockBackend()
	rng := rand.New(rand.NewSource(7))

	x := randomIntValued(t, array.Shape{6, 7}, rng)

	fp, _ := array.NewRaw(array.Shape{3, 3}, array.Bool, array.CPU)
	copy(fp.AsBool(), []bool{
		false, true, false,
		true, true, true,
		false, true, false,
	})

	for rank := 0; rank < 5; rank++ {
		got := backend.RankFilter(x, rank, fp, array.Float64)
		want := mock.RankFilter(x, rank, fp, array.Float64)
		if !float64SliceEqual(got.AsFloat64(), want.AsFloat64()) {
			t.Errorf("rank %d: got %v, expected %v", rank, got.AsFloat64(), want.AsFloat64())
		}
	}
}

// TestRankFilter_MatchesNaive cross-checks the optimized filter against the
// naive reference across footprint sizes. The window sizes route through all
// three selection strategies (median network, insertion sort, quickselect).
func TestRankFilter_MatchesNaive(t *testing.T) {
	backend := newTestBackend()
	mock := array.NewMockBackend()
	rng := rand.New(rand.NewSource(42))

	shapes := []array.Shape{{40}, {11, 13}, {5, 6, 7}}
	for _, shape := range shapes {
		x := randomIntValued(t, shape, rng)

		extents := []int{3, 5, 7}
		for _, k := range extents {
			fpShape := make(array.Shape, len(shape))
			for d := range fpShape {
				fpShape[d] = k
			}
			fp := fullFootprint(t, fpShape)
			popcount := fpShape.NumElements()

			for _, rank := range []int{0, popcount / 2, popcount - 1} {
				got := backend.RankFilter(x, rank, fp, array.Float64)
				want := mock.RankFilter(x, rank, fp, array.Float64)
				if !float64SliceEqual(got.AsFloat64(), want.AsFloat64()) {
					t.Errorf("shape %v footprint %v rank %d: mismatch with naive filter",
						shape, fpShape, rank)
				}
			}
		}
	}
}

// TestRankFilter_OutputDType tests that selection happens in the input type
// before conversion to the requested output.
func TestRankFilter_OutputDType(t *testing.T) {
	backend := newTestBackend()

	x, _ := array.NewRaw(array.Shape{5}, array.Int32, array.CPU)
	copy(x.AsInt32(), []int32{5, 1, 9, 2, 8})
	fp := fullFootprint(t, array.Shape{3})

	result := backend.RankFilter(x, 1, fp, array.Float64)

	if result.DType() != array.Float64 {
		t.Fatalf("output dtype: got %s, expected float64", result.DType())
	}
	expected := []float64{1, 5, 2, 8, 2}
	if !float64SliceEqual(result.AsFloat64(), expected) {
		t.Errorf("median failed: got %v, expected %v", result.AsFloat64(), expected)
	}
}

// TestRankFilter_Uint8 tests the uint8 kernel instantiation.
func TestRankFilter_Uint8(t *testing.T) {
	backend := newTestBackend()

	x, _ := array.NewRaw(array.Shape{5}, array.Uint8, array.CPU)
	copy(x.AsUint8(), []uint8{200, 10, 255, 30, 250})
	fp := fullFootprint(t, array.Shape{3})

	result := backend.RankFilter(x, 1, fp, array.Uint8)

	got := result.AsUint8()
	expected := []uint8{10, 200, 30, 250, 30}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("uint8 median: got %v, expected %v", got, expected)
			break
		}
	}
}

// TestRankFilter_ParallelMatchesSequential tests that chunked execution does
// not change results.
func TestRankFilter_ParallelMatchesSequential(t *testing.T) {
	seq := NewWithParallel(parallel.Config{Enabled: false})
	par := NewWithParallel(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16})
	rng := rand.New(rand.NewSource(99))

	x := randomIntValued(t, array.Shape{64, 65}, rng)
	fp := fullFootprint(t, array.Shape{5, 5})

	got := par.RankFilter(x, 12, fp, array.Float64)
	want := seq.RankFilter(x, 12, fp, array.Float64)
	if !float64SliceEqual(got.AsFloat64(), want.AsFloat64()) {
		t.Error("parallel and sequential rank filters disagree")
	}
}

// TestRankFilter_Validation tests the panics for malformed arguments.
func TestRankFilter_Validation(t *testing.T) {
	backend := newTestBackend()
	x := rawFloat64(t, array.Shape{5}, []float64{1, 2, 3, 4, 5})

	t.Run("NonBoolFootprint", func(t *testing.T) {
		fp := rawFloat64(t, array.Shape{3}, []float64{1, 1, 1})
		expectPanic(t, "RankFilter", func() { backend.RankFilter(x, 0, fp, array.Float64) })
	})

	t.Run("RankMismatch", func(t *testing.T) {
		fp := fullFootprint(t, array.Shape{3, 3})
		expectPanic(t, "RankFilter", func() { backend.RankFilter(x, 0, fp, array.Float64) })
	})

	t.Run("EvenExtent", func(t *testing.T) {
		fp := fullFootprint(t, array.Shape{4})
		expectPanic(t, "RankFilter", func() { backend.RankFilter(x, 0, fp, array.Float64) })
	})

	t.Run("EmptyFootprint", func(t *testing.T) {
		fp, _ := array.NewRaw(array.Shape{3}, array.Bool, array.CPU)
		expectPanic(t, "RankFilter", func() { backend.RankFilter(x, 0, fp, array.Float64) })
	})

	t.Run("RankOutOfRange", func(t *testing.T) {
		fp := fullFootprint(t, array.Shape{3})
		expectPanic(t, "RankFilter", func() { backend.RankFilter(x, 3, fp, array.Float64) })
		expectPanic(t, "RankFilter", func() { backend.RankFilter(x, -1, fp, array.Float64) })
	})
}

// TestSelectRank tests the selection strategies directly.
func TestSelectRank(t *testing.T) {
	t.Run("Median9Network", func(t *testing.T) {
		w := []float64{9, 3, 7, 1, 5, 8, 2, 6, 4}
		if got := selectRank(w, 4); got != 5 {
			t.Errorf("median of 9: got %v, expected 5", got)
		}
	})

	t.Run("InsertionSort", func(t *testing.T) {
		w := []int32{5, 3, 1, 4, 2}
		if got := selectRank(w, 0); got != 1 {
			t.Errorf("rank 0: got %v", got)
		}
		w = []int32{5, 3, 1, 4, 2}
		if got := selectRank(w, 4); got != 5 {
			t.Errorf("rank 4: got %v", got)
		}
	})

	t.Run("QuickSelect", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		w := make([]float64, 49)
		for i := range w {
			w[i] = float64(rng.Intn(1000))
		}
		sorted := make([]float64, len(w))
		copy(sorted, w)
		insertionSort(sorted)

		for _, rank := range []int{0, 10, 24, 48} {
			probe := make([]float64, len(w))
			copy(probe, w)
			if got := quickSelect(probe, rank); got != sorted[rank] {
				t.Errorf("quickselect rank %d: got %v, expected %v", rank, got, sorted[rank])
			}
		}
	})

	t.Run("Duplicates", func(t *testing.T) {
		w := []float64{2, 2, 2, 1, 3, 2, 2, 2, 2}
		if got := selectRank(w, 4); got != 2 {
			t.Errorf("median with duplicates: got %v, expected 2", got)
		}
	})
}
