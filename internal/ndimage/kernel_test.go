package ndimage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSizes(t *testing.T) {
	cases := []struct {
		name  string
		sizes []int
		ndim  int
		want  []int
	}{
		{"DefaultIsThrees", nil, 3, []int{3, 3, 3}},
		{"EmptyIsThrees", []int{}, 2, []int{3, 3}},
		{"ScalarBroadcasts", []int{5}, 3, []int{5, 5, 5}},
		{"PerAxis", []int{3, 5, 7}, 3, []int{3, 5, 7}},
		{"OneDim", []int{9}, 1, []int{9}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeSizes(tc.sizes, tc.ndim)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeSizes_LengthMismatch(t *testing.T) {
	_, err := NormalizeSizes([]int{3, 3}, 3)
	assert.ErrorIs(t, err, ErrKernelRank)
}

func TestNormalizeSizes_EvenSize(t *testing.T) {
	_, err := NormalizeSizes([]int{4}, 2)
	assert.ErrorIs(t, err, ErrEvenKernelSize)

	_, err = NormalizeSizes([]int{3, 2, 3}, 3)
	assert.ErrorIs(t, err, ErrEvenKernelSize)
}

func TestNormalizeSizes_DoesNotAliasInput(t *testing.T) {
	sizes := []int{3, 5}
	got, err := NormalizeSizes(sizes, 2)
	require.NoError(t, err)

	got[0] = 99
	assert.Equal(t, []int{3, 5}, sizes)
}
