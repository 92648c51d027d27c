package arith_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/arith"
)

func TestFibonacciSequence_FirstTen(t *testing.T) {
	seq, err := arith.FibonacciSequence(10)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}, seq)
}

func TestFibonacciSequence_SmallN(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		seq, err := arith.FibonacciSequence(n)
		require.NoError(t, err)
		assert.NotNil(t, seq)
		assert.Empty(t, seq)
	}

	seq, err := arith.FibonacciSequence(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, seq)

	seq, err = arith.FibonacciSequence(2)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1}, seq)
}

// TestFibonacciSequence_Recurrence checks length n and F(i)=F(i-1)+F(i-2)
// for every length that fits in int64.
func TestFibonacciSequence_Recurrence(t *testing.T) {
	for n := 0; n <= 93; n++ {
		seq, err := arith.FibonacciSequence(n)
		require.NoError(t, err)
		require.Len(t, seq, n)
		for i := 2; i < n; i++ {
			assert.Equal(t, seq[i-1]+seq[i-2], seq[i], "n=%d i=%d", n, i)
		}
	}

	_, err := arith.FibonacciSequence(94)
	assert.ErrorIs(t, err, arith.ErrOverflow)
}

func TestFibonacciNth(t *testing.T) {
	tests := []struct {
		n    int
		want int64
	}{
		{-5, 0}, {0, 0}, {1, 1}, {2, 1}, {10, 55}, {92, 7540113804746346429},
	}
	for _, tc := range tests {
		got, err := arith.FibonacciNth(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "n=%d", tc.n)
	}

	_, err := arith.FibonacciNth(93)
	assert.ErrorIs(t, err, arith.ErrOverflow)
}

func TestFibonacciNth_MatchesSequenceAndBig(t *testing.T) {
	seq, err := arith.FibonacciSequence(93)
	require.NoError(t, err)
	for n := 0; n <= 92; n++ {
		nth, err := arith.FibonacciNth(n)
		require.NoError(t, err)
		assert.Equal(t, seq[n], nth, "n=%d", n)
		assert.True(t, arith.FibonacciBig(n).IsInt64())
		assert.Equal(t, nth, arith.FibonacciBig(n).Int64(), "n=%d", n)
	}
}

func TestFibonacciBig(t *testing.T) {
	assert.Equal(t, "0", arith.FibonacciBig(-1).String())
	assert.Equal(t, "354224848179261915075", arith.FibonacciBig(100).String())
}
