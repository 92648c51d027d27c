package seqs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/seqs"
)

var sample = []int{3, 1, 4, 1, 5, 9, 2, 6, 5}

func TestFindMinMax(t *testing.T) {
	lo, err := seqs.FindMin(sample)
	require.NoError(t, err)
	assert.Equal(t, 1, lo)

	hi, err := seqs.FindMax(sample)
	require.NoError(t, err)
	assert.Equal(t, 9, hi)

	f, err := seqs.FindMin([]float64{2.5, -0.5, 7})
	require.NoError(t, err)
	assert.Equal(t, -0.5, f)

	s, err := seqs.FindMax([]string{"pear", "apple", "zucchini"})
	require.NoError(t, err)
	assert.Equal(t, "zucchini", s)
}

func TestFindMinMax_Empty(t *testing.T) {
	_, err := seqs.FindMin([]int{})
	assert.ErrorIs(t, err, seqs.ErrEmptyInput)

	_, err = seqs.FindMax[int](nil)
	assert.ErrorIs(t, err, seqs.ErrEmptyInput)
}

func TestFindMinMax_SingleElement(t *testing.T) {
	lo, err := seqs.FindMin([]int{42})
	require.NoError(t, err)
	hi, err := seqs.FindMax([]int{42})
	require.NoError(t, err)
	assert.Equal(t, 42, lo)
	assert.Equal(t, 42, hi)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 2, seqs.Count(sample, 1))
	assert.Equal(t, 2, seqs.Count(sample, 5))
	assert.Equal(t, 0, seqs.Count(sample, 7))
	assert.Equal(t, 0, seqs.Count([]string{}, "x"))
	assert.Equal(t, 3, seqs.Count([]string{"a", "b", "a", "a"}, "a"))
}
