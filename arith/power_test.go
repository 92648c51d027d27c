package arith_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/arith"
)

func TestPower_Table(t *testing.T) {
	tests := []struct {
		name string
		base float64
		exp  int
		want float64
	}{
		{"2^10", 2, 10, 1024},
		{"2^-2", 2, -2, 0.25},
		{"0^0", 0, 0, 1},
		{"0^5", 0, 5, 0},
		{"(-3)^3", -3, 3, -27},
		{"1.5^2", 1.5, 2, 2.25},
		{"x^1", 7.25, 1, 7.25},
		{"2^MinInt", 2, math.MinInt, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := arith.Power(tc.base, tc.exp)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPower_ZeroBaseNegativeExponent(t *testing.T) {
	_, err := arith.Power(0, -1)
	assert.ErrorIs(t, err, arith.ErrDomain)

	_, err = arith.PowerRecursive(0, -3)
	assert.ErrorIs(t, err, arith.ErrDomain)
}

// TestPowerRecursive_MatchesIterative uses bases whose powers are exact in
// float64 so the two multiplication orders must agree bit for bit.
func TestPowerRecursive_MatchesIterative(t *testing.T) {
	for _, base := range []float64{2, 3, -2, 0.5} {
		for exp := -30; exp <= 30; exp++ {
			if base == 3 && exp < 0 {
				continue // 3^-k is not exact
			}
			it, err := arith.Power(base, exp)
			require.NoError(t, err)
			rec, err := arith.PowerRecursive(base, exp)
			require.NoError(t, err)
			assert.Equal(t, it, rec, "base=%v exp=%d", base, exp)
		}
	}
}

func TestPowerRecursive_DepthBound(t *testing.T) {
	_, err := arith.PowerRecursive(2, 1024, arith.WithMaxRecursionDepth(3))
	assert.ErrorIs(t, err, arith.ErrRecursionDepth)

	// 1024 → 512 → … → 1 → 0 is 12 frames.
	got, err := arith.PowerRecursive(2, 1024, arith.WithMaxRecursionDepth(12))
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))
}

func TestModPow(t *testing.T) {
	got, err := arith.ModPow(2, 10, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(24), got)

	got, err = arith.ModPow(3, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got, "anything mod 1 is 0")

	got, err = arith.ModPow(-2, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got, "(-8) mod 5 floored")

	_, err = arith.ModPow(2, 3, 0)
	assert.ErrorIs(t, err, arith.ErrDomain)
	_, err = arith.ModPow(2, -1, 7)
	assert.ErrorIs(t, err, arith.ErrDomain)
}

// TestModPow_MatchesBigExp cross-checks large operands where a naive int64
// product would overflow.
func TestModPow_MatchesBigExp(t *testing.T) {
	cases := [][3]int64{
		{123456789, 987654321, 1_000_000_007},
		{math.MaxInt64 - 1, 65537, math.MaxInt64},
		{7, 1 << 40, 998_244_353},
	}
	for _, c := range cases {
		got, err := arith.ModPow(c[0], c[1], c[2])
		require.NoError(t, err)
		want := new(big.Int).Exp(big.NewInt(c[0]), big.NewInt(c[1]), big.NewInt(c[2]))
		assert.Equal(t, want.Int64(), got, "case %v", c)
	}
}
