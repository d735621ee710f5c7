// Copyright (c) 2025 Colin McRae

package blockops

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blocktri/ratmatrix"
)

func TestIsBlockTriangular(t *testing.T) {
	// Labels {0, 0, 1}: the last row may not reference the first two columns
	b := Labeling{0, 0, 1}
	valid, err := ratmatrix.NewFromInt64Array([]int64{
		1, 2, 3,
		4, 5, 6,
		0, 0, 7,
	}, 3, 3)
	require.NoError(t, err)
	isTriangular, err := IsBlockTriangular(valid, b)
	assert.NoError(t, err)
	assert.True(t, isTriangular)

	invalid, err := ratmatrix.NewFromInt64Array([]int64{
		1, 2, 3,
		4, 5, 6,
		0, 8, 7,
	}, 3, 3)
	require.NoError(t, err)
	isTriangular, err = IsBlockTriangular(invalid, b)
	assert.NoError(t, err)
	assert.False(t, isTriangular)
}

func TestValidateBlockTriangular(t *testing.T) {
	b := Labeling{0, 0, 1}
	valid, err := ratmatrix.NewFromInt64Array([]int64{
		1, 2, 3,
		4, 5, 6,
		0, 0, 7,
	}, 3, 3)
	require.NoError(t, err)
	assert.NoError(t, ValidateBlockTriangular(valid, b))

	invalid, err := ratmatrix.NewFromInt64Array([]int64{
		1, 2, 3,
		4, 5, 6,
		8, 0, 7,
	}, 3, 3)
	require.NoError(t, err)
	err = ValidateBlockTriangular(invalid, b)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestShapeChecks(t *testing.T) {
	rect, err := ratmatrix.NewFromInt64Array([]int64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	_, err = IsBlockTriangular(rect, Labeling{0, 1})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	square, err := ratmatrix.NewIdentity(2)
	require.NoError(t, err)
	err = ValidateBlockTriangular(square, Labeling{0, 1, 2})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	err = ValidateBlockTriangular(nil, Labeling{})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestEveryLabelingAcceptsDiagonal(t *testing.T) {
	// A diagonal matrix is block triangular for any labeling of its indices
	m, err := ratmatrix.NewFromInt64Array([]int64{
		2, 0, 0,
		0, 3, 0,
		0, 0, 5,
	}, 3, 3)
	require.NoError(t, err)
	labelings := []Labeling{
		{0, 1, 2},
		{2, 1, 0},
		{1, 1, 1},
		{5, -5, 0},
	}
	for _, b := range labelings {
		isTriangular, err := IsBlockTriangular(m, b)
		assert.NoError(t, err)
		assert.True(t, isTriangular, "labeling %v", b)
	}
}
