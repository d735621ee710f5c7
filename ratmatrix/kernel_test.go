// Copyright (c) 2025 Colin McRae

package ratmatrix

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blocktri/util"
)

func TestDetKnownValues(t *testing.T) {
	type testCase struct {
		name     string
		entries  []int64
		dim      int
		expected *big.Rat
	}
	testCases := []testCase{
		{name: "oneByOne", entries: []int64{-7}, dim: 1, expected: big.NewRat(-7, 1)},
		{name: "twoByTwo", entries: []int64{1, 2, 3, 4}, dim: 2, expected: big.NewRat(-2, 1)},
		{name: "singular", entries: []int64{1, 2, 2, 4}, dim: 2, expected: big.NewRat(0, 1)},
		{
			name: "upperTriangular",
			entries: []int64{
				2, 17, -5,
				0, 3, 11,
				0, 0, 5,
			},
			dim:      3,
			expected: big.NewRat(30, 1),
		},
		{
			name: "needsRowSwap",
			entries: []int64{
				0, 1,
				1, 0,
			},
			dim:      2,
			expected: big.NewRat(-1, 1),
		},
	}
	for _, tc := range testCases {
		m, err := NewFromInt64Array(tc.entries, tc.dim, tc.dim)
		require.NoError(t, err)
		det, err := Det(m)
		require.NoError(t, err)
		assert.Zero(t, det.Cmp(tc.expected), "%s: det = %s", tc.name, det.RatString())
	}

	// The determinant of the empty matrix is the empty product
	det, err := Det(NewEmpty(0, 0))
	require.NoError(t, err)
	assert.Zero(t, det.Cmp(big.NewRat(1, 1)))

	// Non-square input
	m, err := NewFromInt64Array([]int64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	_, err = Det(m)
	assert.Error(t, err)
}

func TestDetRationalEntries(t *testing.T) {
	m, err := NewFromStringArray([]string{"1/2", "1", "0", "2/3"}, 2, 2)
	require.NoError(t, err)
	det, err := Det(m)
	require.NoError(t, err)
	assert.Zero(t, det.Cmp(big.NewRat(1, 3)))
}

func TestDetDoesNotMutateInput(t *testing.T) {
	entries := []int64{
		0, 1, 2,
		3, 4, 5,
		6, 7, 9,
	}
	m, err := NewFromInt64Array(entries, 3, 3)
	require.NoError(t, err)
	original := NewEmpty(0, 0).Copy(m)
	_, err = Det(m)
	require.NoError(t, err)
	equals, err := m.Equals(original)
	assert.NoError(t, err)
	assert.True(t, equals)
}

func TestInverseKnownValues(t *testing.T) {
	m, err := NewFromInt64Array([]int64{2, 1, 1, 1}, 2, 2)
	require.NoError(t, err)
	inverse, err := Inverse(m)
	require.NoError(t, err)
	expected, err := NewFromInt64Array([]int64{1, -1, -1, 2}, 2, 2)
	require.NoError(t, err)
	equals, err := inverse.Equals(expected)
	assert.NoError(t, err)
	assert.True(t, equals)

	// The inverse of the empty matrix is the empty matrix
	emptyInverse, err := Inverse(NewEmpty(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, emptyInverse.NumRows())
}

func TestInverseSingular(t *testing.T) {
	m, err := NewFromInt64Array([]int64{1, 2, 2, 4}, 2, 2)
	require.NoError(t, err)
	_, err = Inverse(m)
	assert.True(t, errors.Is(err, ErrSingular))

	zero := NewEmpty(3, 3)
	_, err = Inverse(zero)
	assert.True(t, errors.Is(err, ErrSingular))
}

func TestInverseRandomUnimodular(t *testing.T) {
	for dim := 1; dim <= 6; dim++ {
		forward, backward, err := util.CreateInversePair(dim)
		require.NoError(t, err)
		m, err := NewFromInt64Array(forward, dim, dim)
		require.NoError(t, err)
		expectedInverse, err := NewFromInt64Array(backward, dim, dim)
		require.NoError(t, err)

		// Inverses are unique, so Inverse must reproduce the known pair
		inverse, err := Inverse(m)
		require.NoError(t, err)
		equals, err := inverse.Equals(expectedInverse)
		assert.NoError(t, err)
		assert.True(t, equals, "dim = %d", dim)

		// And multiplying back must give the identity exactly
		product, err := NewEmpty(dim, dim).Mul(m, inverse)
		require.NoError(t, err)
		identity, err := NewIdentity(dim)
		require.NoError(t, err)
		equals, err = product.Equals(identity)
		assert.NoError(t, err)
		assert.True(t, equals, "dim = %d", dim)
	}
}

func TestInverseRationalEntries(t *testing.T) {
	m, err := NewFromStringArray([]string{"1/2", "0", "1/3", "4"}, 2, 2)
	require.NoError(t, err)
	inverse, err := Inverse(m)
	require.NoError(t, err)
	product, err := NewEmpty(2, 2).Mul(m, inverse)
	require.NoError(t, err)
	identity, err := NewIdentity(2)
	require.NoError(t, err)
	equals, err := product.Equals(identity)
	assert.NoError(t, err)
	assert.True(t, equals)
}
