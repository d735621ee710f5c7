// Copyright (c) 2025 Colin McRae

package ratmatrix

import (
	"fmt"
)

// Extract returns the submatrix of m consisting of the rows listed in rows and
// the columns listed in cols, in the listed order. The returned matrix has
// dimensions len(rows) x len(cols), and position p in rows (or cols)
// corresponds to row (or column) p of the result; the lists therefore serve
// as the bijection between the selected index subset and {0,...,len-1}.
//
// Empty rows or cols yields the 0 x 0 matrix. Entries are deep copies, so the
// result does not alias m.
func Extract(m *RatMatrix, rows, cols []int) (*RatMatrix, error) {
	if m == nil {
		return nil, fmt.Errorf("Extract: input matrix is nil")
	}
	if len(rows) == 0 || len(cols) == 0 {
		return NewEmpty(0, 0), nil
	}
	for _, i := range rows {
		if i < 0 || m.numRows <= i {
			return nil, fmt.Errorf(
				"Extract: row %d is not in {0,...,%d}", i, m.numRows-1,
			)
		}
	}
	for _, j := range cols {
		if j < 0 || m.numCols <= j {
			return nil, fmt.Errorf(
				"Extract: column %d is not in {0,...,%d}", j, m.numCols-1,
			)
		}
	}
	retVal := NewEmpty(len(rows), len(cols))
	for p, i := range rows {
		for q, j := range cols {
			retVal.values[p*retVal.numCols+q].Set(m.values[i*m.numCols+j])
		}
	}
	return retVal, nil
}

// Combine assembles the block matrix
//
//	[ topLeft    topRight    ]
//	[ bottomLeft bottomRight ]
//
// from its four blocks. Blocks in the same block-row must have equal row
// counts and blocks in the same block-column must have equal column counts,
// where a 0 x 0 block contributes zero rows and zero columns. In particular
// a 0 x 0 topLeft forces topRight and bottomLeft to be 0 x 0, and the result
// is then just bottomRight.
func Combine(topLeft, topRight, bottomLeft, bottomRight *RatMatrix) (*RatMatrix, error) {
	if topLeft == nil || topRight == nil || bottomLeft == nil || bottomRight == nil {
		return nil, fmt.Errorf("Combine: an input block is nil")
	}

	// A 0 x 0 block carries no dimension information (NewEmpty collapses
	// n x 0 and 0 x n to 0 x 0), so each block-row's row count and each
	// block-column's column count is taken from whichever of its two blocks
	// is non-empty.
	topRows := max(topLeft.numRows, topRight.numRows)
	bottomRows := max(bottomLeft.numRows, bottomRight.numRows)
	leftCols := max(topLeft.numCols, bottomLeft.numCols)
	rightCols := max(topRight.numCols, bottomRight.numCols)
	blockDims := []struct {
		name             string
		block            *RatMatrix
		numRows, numCols int
	}{
		{"topLeft", topLeft, topRows, leftCols},
		{"topRight", topRight, topRows, rightCols},
		{"bottomLeft", bottomLeft, bottomRows, leftCols},
		{"bottomRight", bottomRight, bottomRows, rightCols},
	}
	for _, bd := range blockDims {
		if bd.numRows == 0 || bd.numCols == 0 {
			// The corresponding region of the result is empty, which the
			// 0 x 0 block represents
			if bd.block.numRows != 0 || bd.block.numCols != 0 {
				return nil, fmt.Errorf(
					"Combine: %s is %d x %d but its region is empty",
					bd.name, bd.block.numRows, bd.block.numCols,
				)
			}
			continue
		}
		if bd.block.numRows != bd.numRows || bd.block.numCols != bd.numCols {
			return nil, fmt.Errorf(
				"Combine: %s is %d x %d but %d x %d was required",
				bd.name, bd.block.numRows, bd.block.numCols, bd.numRows, bd.numCols,
			)
		}
	}
	retVal := NewEmpty(topRows+bottomRows, leftCols+rightCols)
	blocks := []struct {
		block                *RatMatrix
		rowOffset, colOffset int
	}{
		{topLeft, 0, 0},
		{topRight, 0, leftCols},
		{bottomLeft, topRows, 0},
		{bottomRight, topRows, leftCols},
	}
	for _, b := range blocks {
		for i := 0; i < b.block.numRows; i++ {
			for j := 0; j < b.block.numCols; j++ {
				retVal.values[(b.rowOffset+i)*retVal.numCols+(b.colOffset+j)].Set(
					b.block.values[i*b.block.numCols+j],
				)
			}
		}
	}
	return retVal, nil
}

// Reindex returns the matrix whose entry in row i, column j is
// m[order[i]][order[j]]. The input must be square and order must be a
// permutation of {0,...,n-1}; this is simultaneous conjugation of the rows
// and columns by the permutation, so reindexing by order and then by the
// inverse permutation recovers m.
func Reindex(m *RatMatrix, order []int) (*RatMatrix, error) {
	if m == nil {
		return nil, fmt.Errorf("Reindex: input matrix is nil")
	}
	if m.numRows != m.numCols {
		return nil, fmt.Errorf("Reindex: matrix is %d x %d, not square", m.numRows, m.numCols)
	}
	n := m.numRows
	if len(order) != n {
		return nil, fmt.Errorf("Reindex: order has length %d but the matrix has %d rows", len(order), n)
	}
	seen := make([]bool, n)
	for _, i := range order {
		if i < 0 || n <= i {
			return nil, fmt.Errorf("Reindex: order contains %d, which is not in {0,...,%d}", i, n-1)
		}
		if seen[i] {
			return nil, fmt.Errorf("Reindex: order contains %d twice", i)
		}
		seen[i] = true
	}
	if n == 0 {
		return NewEmpty(0, 0), nil
	}
	retVal := NewEmpty(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			retVal.values[i*n+j].Set(m.values[order[i]*n+order[j]])
		}
	}
	return retVal, nil
}
