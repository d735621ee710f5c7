// Copyright (c) 2025 Colin McRae

// Package blockops computes determinants and inverses of block-triangular
// matrices by recursion over the labels that define the blocks.
//
// A labeling b assigns an integer label to each index of a square matrix M.
// M is block triangular with respect to b when M[i][j] = 0 whenever
// b(j) < b(i); an entry may be nonzero only when its column's label is at
// least its row's label. The indices sharing one label form a diagonal block,
// and the recursion in this package peels off the block with the maximum
// remaining label at each step. Since each step removes one label from the
// set of labels still present, the recursion terminates after at most as many
// steps as there are distinct labels.
package blockops

import (
	"fmt"
	"sort"
)

// Labeling assigns a label to each index of a matrix: the label of index i is
// b[i]. The index set is {0,...,len(b)-1}; an empty Labeling describes the
// empty (0 x 0) matrix.
type Labeling []int

// Image returns the sorted set of labels that actually occur, without
// duplicates. The image is empty exactly when the index set is empty.
func (b Labeling) Image() []int {
	if len(b) == 0 {
		return nil
	}
	present := make(map[int]bool, len(b))
	for _, label := range b {
		present[label] = true
	}
	image := make([]int, 0, len(present))
	for label := range present {
		image = append(image, label)
	}
	sort.Ints(image)
	return image
}

// MaxLabel returns the maximum label occurring in b. If the index set is
// empty there is no maximum and an error wrapping ErrEmptyDomain is returned.
func (b Labeling) MaxLabel() (int, error) {
	if len(b) == 0 {
		return 0, fmt.Errorf("MaxLabel: labeling covers no indices: %w", ErrEmptyDomain)
	}
	max := b[0]
	for _, label := range b[1:] {
		if label > max {
			max = label
		}
	}
	return max, nil
}

// Below returns the ascending list of indices with label strictly less than
// k: the prefix block for threshold k.
func (b Labeling) Below(k int) []int {
	var retVal []int
	for i, label := range b {
		if label < k {
			retVal = append(retVal, i)
		}
	}
	return retVal
}

// At returns the ascending list of indices with label equal to k: the
// diagonal block at label k.
func (b Labeling) At(k int) []int {
	var retVal []int
	for i, label := range b {
		if label == k {
			retVal = append(retVal, i)
		}
	}
	return retVal
}

// AtMost returns the ascending list of indices with label at most k.
func (b Labeling) AtMost(k int) []int {
	var retVal []int
	for i, label := range b {
		if label <= k {
			retVal = append(retVal, i)
		}
	}
	return retVal
}

// maxLabelOn returns the maximum label among the given indices. support must
// be non-empty and contain valid indices into b; both are guaranteed by the
// engines, which construct support from b itself.
func maxLabelOn(b Labeling, support []int) int {
	max := b[support[0]]
	for _, i := range support[1:] {
		if b[i] > max {
			max = b[i]
		}
	}
	return max
}

// splitAt partitions support into the indices with label strictly below k and
// the indices with label equal to k, each in the order they appear in
// support. The engines call it with k the maximum label on support, so the
// two parts cover all of support.
func splitAt(b Labeling, support []int, k int) (prefix, diag []int) {
	for _, i := range support {
		if b[i] < k {
			prefix = append(prefix, i)
		} else if b[i] == k {
			diag = append(diag, i)
		}
	}
	return prefix, diag
}
