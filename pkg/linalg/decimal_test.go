package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinate(t *testing.T) {
	x, err := ParseCoordinate(" 7.204 ")
	require.NoError(t, err)
	assert.Equal(t, 7.204, x)

	x, err = ParseCoordinate("-3")
	require.NoError(t, err)
	assert.Equal(t, -3.0, x)

	for _, bad := range []string{"", "abc", "1e5", "1.2.3"} {
		_, err := ParseCoordinate(bad)
		require.ErrorIs(t, err, ErrInvalidCoordinate, bad)
	}
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		x      float64
		places int
		want   string
	}{
		{5, 3, "5"},
		{1.25, 3, "1.25"},
		{-0.0001, 3, "0"},
		{1.0625, 3, "1.062"}, // half-even
		{1.0635, 2, "1.06"},
		{2.5, 0, "2"},
		{3.5, 0, "4"},
		{-7.5, 0, "-8"},
		{123456.789, 1, "123456.8"},
		{math.Inf(1), 3, "+Inf"},
		{1e60, 3, "1e+60"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDecimal(tt.x, tt.places), "%v @ %d", tt.x, tt.places)
	}
}

func TestRoundHalfEvenRange(t *testing.T) {
	_, err := RoundHalfEven(1, -1)
	require.ErrorIs(t, err, ErrInvalidCoordinate)
	_, err = RoundHalfEven(1, 19)
	require.ErrorIs(t, err, ErrInvalidCoordinate)
	_, err = RoundHalfEven(math.NaN(), 3)
	require.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestTolerance(t *testing.T) {
	require.NoError(t, DefaultTolerance().Validate())

	bad := []Tolerance{
		{Zero: 0, Orthogonal: 1, Parallel: 1},
		{Zero: 1, Orthogonal: -1, Parallel: 1},
		{Zero: 1, Orthogonal: 1, Parallel: math.Inf(1)},
		{Zero: math.NaN(), Orthogonal: 1, Parallel: 1},
	}
	for _, tol := range bad {
		require.ErrorIs(t, tol.Validate(), ErrInvalidTolerance, "%+v", tol)
	}
}

func TestFirstNonzeroIndex(t *testing.T) {
	i, ok := FirstNonzeroIndex([]float64{0, 1e-11, -2, 3}, DefaultEpsilon)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = FirstNonzeroIndex([]float64{0, -1e-12}, DefaultEpsilon)
	assert.False(t, ok)

	assert.True(t, IsNearZero(-5e-11, DefaultEpsilon))
	assert.False(t, IsNearZero(1e-10, DefaultEpsilon))
}
