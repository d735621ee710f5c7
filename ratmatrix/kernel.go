// Copyright (c) 2025 Colin McRae

package ratmatrix

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrSingular is returned by Inverse when the input matrix has no inverse.
// Callers that need to distinguish singularity from malformed input should
// test with errors.Is.
var ErrSingular = errors.New("matrix is singular")

// Det returns the determinant of a square matrix, computed by exact Gaussian
// elimination with row swaps. Because entries are rationals there is no
// pivoting strategy to choose: any nonzero pivot is as good as any other, and
// the first one found is used. The determinant of the 0 x 0 matrix is 1, the
// empty product. A singular input is not an error; its determinant is 0.
func Det(m *RatMatrix) (*big.Rat, error) {
	if m == nil {
		return nil, fmt.Errorf("Det: input matrix is nil")
	}
	if m.numRows != m.numCols {
		return nil, fmt.Errorf("Det: matrix is %d x %d, not square", m.numRows, m.numCols)
	}
	n := m.numRows
	if n == 0 {
		return big.NewRat(1, 1), nil
	}

	// Work on a deep copy; Det never mutates its input.
	work := NewEmpty(0, 0).Copy(m)
	sign := int64(1)
	factor := new(big.Rat)
	term := new(big.Rat)
	for col := 0; col < n; col++ {
		// Find a row at or below the diagonal with a nonzero entry in this column
		pivotRow := -1
		for row := col; row < n; row++ {
			if work.values[row*n+col].Sign() != 0 {
				pivotRow = row
				break
			}
		}
		if pivotRow == -1 {
			// The column is all zeros from the diagonal down
			return big.NewRat(0, 1), nil
		}
		if pivotRow != col {
			// Swapping two rows negates the determinant
			for k := col; k < n; k++ {
				work.values[col*n+k], work.values[pivotRow*n+k] =
					work.values[pivotRow*n+k], work.values[col*n+k]
			}
			sign = -sign
		}

		// Eliminate the entries below the pivot
		pivot := work.values[col*n+col]
		for row := col + 1; row < n; row++ {
			if work.values[row*n+col].Sign() == 0 {
				continue
			}
			factor.Quo(work.values[row*n+col], pivot)
			for k := col; k < n; k++ {
				term.Mul(factor, work.values[col*n+k])
				work.values[row*n+k].Sub(work.values[row*n+k], term)
			}
		}
	}

	// The determinant is the sign times the product of the diagonal
	retVal := big.NewRat(sign, 1)
	for i := 0; i < n; i++ {
		retVal.Mul(retVal, work.values[i*n+i])
	}
	return retVal, nil
}

// Inverse returns the inverse of a square matrix, computed by Gauss-Jordan
// elimination on the augmented matrix [m | I]. The inverse of the 0 x 0
// matrix is the 0 x 0 matrix. If m is not invertible, an error wrapping
// ErrSingular is returned. m is never mutated.
func Inverse(m *RatMatrix) (*RatMatrix, error) {
	if m == nil {
		return nil, fmt.Errorf("Inverse: input matrix is nil")
	}
	if m.numRows != m.numCols {
		return nil, fmt.Errorf("Inverse: matrix is %d x %d, not square", m.numRows, m.numCols)
	}
	n := m.numRows
	if n == 0 {
		return NewEmpty(0, 0), nil
	}

	// Build the augmented workspace [m | I], 2n columns wide
	width := 2 * n
	work := make([]*big.Rat, n*width)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			work[i*width+j] = new(big.Rat).Set(m.values[i*n+j])
			if i == j {
				work[i*width+n+j] = big.NewRat(1, 1)
			} else {
				work[i*width+n+j] = big.NewRat(0, 1)
			}
		}
	}

	factor := new(big.Rat)
	term := new(big.Rat)
	for col := 0; col < n; col++ {
		// Find a row at or below the diagonal with a nonzero entry in this column
		pivotRow := -1
		for row := col; row < n; row++ {
			if work[row*width+col].Sign() != 0 {
				pivotRow = row
				break
			}
		}
		if pivotRow == -1 {
			return nil, fmt.Errorf("Inverse: no pivot in column %d: %w", col, ErrSingular)
		}
		if pivotRow != col {
			for k := 0; k < width; k++ {
				work[col*width+k], work[pivotRow*width+k] =
					work[pivotRow*width+k], work[col*width+k]
			}
		}

		// Scale the pivot row so the pivot becomes 1
		pivot := new(big.Rat).Set(work[col*width+col])
		for k := 0; k < width; k++ {
			work[col*width+k].Quo(work[col*width+k], pivot)
		}

		// Eliminate this column from every other row
		for row := 0; row < n; row++ {
			if row == col || work[row*width+col].Sign() == 0 {
				continue
			}
			factor.Set(work[row*width+col])
			for k := 0; k < width; k++ {
				term.Mul(factor, work[col*width+k])
				work[row*width+k].Sub(work[row*width+k], term)
			}
		}
	}

	// The right half of the workspace is now the inverse
	retVal := NewEmpty(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			retVal.values[i*n+j].Set(work[i*width+n+j])
		}
	}
	return retVal, nil
}
