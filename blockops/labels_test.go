// Copyright (c) 2025 Colin McRae

package blockops

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImage(t *testing.T) {
	assert.Equal(t, []int{-2, 0, 3, 7}, Labeling{3, 0, 7, 0, -2, 3}.Image())
	assert.Equal(t, []int{5}, Labeling{5, 5, 5}.Image())
	assert.Nil(t, Labeling{}.Image())
}

func TestMaxLabel(t *testing.T) {
	max, err := Labeling{3, 0, 7, 0, -2, 3}.MaxLabel()
	assert.NoError(t, err)
	assert.Equal(t, 7, max)

	max, err = Labeling{-4}.MaxLabel()
	assert.NoError(t, err)
	assert.Equal(t, -4, max)

	_, err = Labeling{}.MaxLabel()
	assert.True(t, errors.Is(err, ErrEmptyDomain))
}

func TestBelowAtAtMost(t *testing.T) {
	b := Labeling{3, 0, 7, 0, -2, 3}

	assert.Equal(t, []int{1, 3, 4}, b.Below(3))
	assert.Equal(t, []int{0, 5}, b.At(3))
	assert.Equal(t, []int{0, 1, 3, 4, 5}, b.AtMost(3))

	// Thresholds outside the image behave like any other threshold
	assert.Nil(t, b.Below(-2))
	assert.Nil(t, b.At(100))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, b.AtMost(7))
}

func TestSplitAt(t *testing.T) {
	b := Labeling{1, 0, 2, 0, 2}
	support := []int{0, 1, 2, 3, 4}
	assert.Equal(t, 2, maxLabelOn(b, support))
	prefix, diag := splitAt(b, support, 2)
	assert.Equal(t, []int{0, 1, 3}, prefix)
	assert.Equal(t, []int{2, 4}, diag)

	// After removing the maximal block the next split peels label 1
	assert.Equal(t, 1, maxLabelOn(b, prefix))
	prefix, diag = splitAt(b, prefix, 1)
	assert.Equal(t, []int{1, 3}, prefix)
	assert.Equal(t, []int{0}, diag)
}
