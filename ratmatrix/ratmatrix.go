// Copyright (c) 2025 Colin McRae

// Package ratmatrix represents a dense matrix with exact rational entries.
// All arithmetic is performed with big.Rat, so there is no roundoff anywhere
// in this package: equality of two matrices is true mathematical equality.
package ratmatrix

import (
	"fmt"
	"math/big"
	"strings"
)

type RatMatrix struct {
	values  []*big.Rat
	numRows int
	numCols int
}

// NewFromInt64Array creates a matrix with integer-valued entries from input
// with dimensions numRowsIn x numColsIn. If the number of rows and columns are
// not positive and/or do not match the length of the input, an error is returned.
func NewFromInt64Array(input []int64, numRowsIn int, numColsIn int) (*RatMatrix, error) {
	if len(input) != numRowsIn*numColsIn {
		return nil, fmt.Errorf("RatMatrix.NewFromInt64Array: length of input does not match dimensions")
	}
	if numRowsIn <= 0 || numColsIn <= 0 {
		return nil, fmt.Errorf(
			"RatMatrix.NewFromInt64Array: illegal number of rows %d or columns %d",
			numRowsIn, numColsIn,
		)
	}
	retVal := &RatMatrix{
		values:  make([]*big.Rat, numRowsIn*numColsIn),
		numRows: numRowsIn,
		numCols: numColsIn,
	}
	for index, value := range input {
		retVal.values[index] = big.NewRat(value, 1)
	}
	return retVal, nil
}

// NewFromStringArray creates a matrix from input with dimensions
// numRowsIn x numColsIn. Each entry may be an integer like "-7", a fraction
// like "22/7" or a finite decimal like "0.125"; anything big.Rat can parse.
func NewFromStringArray(input []string, numRowsIn int, numColsIn int) (*RatMatrix, error) {
	if len(input) != numRowsIn*numColsIn {
		return nil, fmt.Errorf("RatMatrix.NewFromStringArray: length of input does not match dimensions")
	}
	if numRowsIn <= 0 || numColsIn <= 0 {
		return nil, fmt.Errorf(
			"RatMatrix.NewFromStringArray: illegal number of rows %d or columns %d",
			numRowsIn, numColsIn,
		)
	}
	retVal := &RatMatrix{
		values:  make([]*big.Rat, numRowsIn*numColsIn),
		numRows: numRowsIn,
		numCols: numColsIn,
	}
	for index, value := range input {
		r, ok := new(big.Rat).SetString(value)
		if !ok {
			return nil, fmt.Errorf(
				"RatMatrix.NewFromStringArray: could not parse %q as a rational number", value,
			)
		}
		retVal.values[index] = r
	}
	return retVal, nil
}

// NewEmpty returns a numRows x numCols matrix with 0s in each value. Negative numRows
// or numCols is interpreted as 0, and a 0 x n or n x 0 matrix is interpreted as 0 x 0.
func NewEmpty(numRows int, numCols int) *RatMatrix {
	if numRows < 0 {
		numRows = 0
	}
	if numCols < 0 {
		numCols = 0
	}
	if numRows == 0 {
		numCols = 0
	}
	if numCols == 0 {
		numRows = 0
	}
	if numRows*numCols == 0 {
		return &RatMatrix{
			values:  nil,
			numRows: 0,
			numCols: 0,
		}
	}
	retVal := &RatMatrix{
		values:  make([]*big.Rat, numRows*numCols),
		numRows: numRows,
		numCols: numCols,
	}
	for i := 0; i < numRows*numCols; i++ {
		retVal.values[i] = big.NewRat(0, 1)
	}
	return retVal
}

// NewIdentity returns a dim x dim identity matrix. If dim < 1,
// an error is returned.
func NewIdentity(dim int) (*RatMatrix, error) {
	if dim < 1 {
		return nil, fmt.Errorf("RatMatrix.NewIdentity: dimension < 1")
	}
	retVal := NewEmpty(dim, dim)
	for i := 0; i < dim; i++ {
		retVal.values[i*dim+i].SetInt64(1)
	}
	return retVal, nil
}

func (rm *RatMatrix) Add(x *RatMatrix, y *RatMatrix) (*RatMatrix, error) {
	return rm.addOrSub(x, y, "Add")
}

func (rm *RatMatrix) Sub(x *RatMatrix, y *RatMatrix) (*RatMatrix, error) {
	return rm.addOrSub(x, y, "Sub")
}

// DotProduct returns sum(x[row][k] y[k][col]) over k in {start,...,end-1}
func DotProduct(
	x *RatMatrix, y *RatMatrix, row, column, start, end int, trustXandY bool,
) (*big.Rat, error) {
	if !trustXandY {
		if len(x.values) != x.numRows*x.numCols {
			return nil, fmt.Errorf("DotProduct: invalid x %d x %d with %d values",
				x.numRows, x.numCols, len(x.values),
			)
		}
		if len(y.values) != y.numRows*y.numCols {
			return nil, fmt.Errorf("DotProduct: invalid y %d y %d with %d values",
				y.numRows, y.numCols, len(y.values),
			)
		}
	}
	if start < 0 || end <= start || x.numCols < end || y.numRows < end {
		return nil, fmt.Errorf("DotProduct: invalid range {%d,...,%d} for x %dx%d and y %dx%d",
			start, end-1, x.numRows, x.numCols, y.numRows, y.numCols,
		)
	}
	retVal := new(big.Rat).Mul(
		// Start with x[row][start] y[start][column]
		x.values[row*x.numCols+start], y.values[start*y.numCols+column],
	)
	term := new(big.Rat)
	for k := start + 1; k < end; k++ {
		term.Mul(x.values[row*x.numCols+k], y.values[k*y.numCols+column])
		retVal.Add(retVal, term)
	}
	return retVal, nil
}

// Mul replaces the contents of rm with the matrix xy and returns rm. If
// dimensions of x and y are invalid or do not match, an error is returned.
func (rm *RatMatrix) Mul(x *RatMatrix, y *RatMatrix) (*RatMatrix, error) {
	err := checkInput(x, y, "Mul")
	if err != nil {
		return nil, err
	}
	retVal := NewEmpty(x.numRows, y.numCols)
	for i := 0; i < x.numRows; i++ {
		for j := 0; j < y.numCols; j++ {
			resultIndex := i*retVal.numCols + j
			retVal.values[resultIndex], err = DotProduct(x, y, i, j, 0, x.numCols, true)
			if err != nil {
				return nil, fmt.Errorf("RatMatrix.Mul: error when computing dot product: %q", err.Error())
			}
		}
	}
	rm.Copy(retVal)
	return rm, nil
}

// Copy copies x to rm and returns rm. This is a deep copy.
func (rm *RatMatrix) Copy(x *RatMatrix) *RatMatrix {
	if x.numRows <= 0 || x.numCols <= 0 {
		rm.numRows = 0
		rm.numCols = 0
		rm.values = nil
		return rm
	}
	rm.numRows = x.numRows
	rm.numCols = x.numCols
	rm.values = make([]*big.Rat, rm.numRows*rm.numCols)
	for i := 0; i < rm.numRows*rm.numCols; i++ {
		rm.values[i] = new(big.Rat).Set(x.values[i])
	}
	return rm
}

// Transpose replaces the contents of rm with the transpose of matrix x. If
// dimensions of x are invalid, an error is returned.
func (rm *RatMatrix) Transpose(x *RatMatrix) (*RatMatrix, error) {
	err := checkInput(x, nil, "Transpose")
	if err != nil {
		return nil, err
	}
	retVal := NewEmpty(x.numCols, x.numRows)
	for i := 0; i < retVal.numRows; i++ {
		for j := 0; j < retVal.numCols; j++ {
			retVal.values[i*retVal.numCols+j].Set(x.values[j*x.numCols+i])
		}
	}
	rm.Copy(retVal)
	return rm, nil
}

// Set sets the value in row i, column j to x. This is a deep copy.
func (rm *RatMatrix) Set(i int, j int, x *big.Rat) error {
	if i < 0 || rm.numRows <= i {
		return fmt.Errorf("RatMatrix.Set: index i = %d outside range {0, ... %d}", i, rm.numRows-1)
	}
	if j < 0 || rm.numCols <= j {
		return fmt.Errorf("RatMatrix.Set: index j = %d outside range {0, ... %d}", j, rm.numCols-1)
	}
	rm.values[i*rm.numCols+j].Set(x)
	return nil
}

// Get returns the pointer to the value in row i, column j of rm.
// This is not a deep copy.
func (rm *RatMatrix) Get(i int, j int) (*big.Rat, error) {
	if i < 0 || rm.numRows <= i {
		return nil, fmt.Errorf("RatMatrix.Get: index i = %d outside range {0, ... %d}", i, rm.numRows-1)
	}
	if j < 0 || rm.numCols <= j {
		return nil, fmt.Errorf("RatMatrix.Get: index j = %d outside range {0, ... %d}", j, rm.numCols-1)
	}
	return rm.values[i*rm.numCols+j], nil
}

// Equals returns whether all corresponding elements of rm and x are equal.
// Equality is exact, since entries are exact rationals.
//
// If x has invalid or different dimensions, an error is returned. Two empty
// matrices are equal.
func (rm *RatMatrix) Equals(x *RatMatrix) (bool, error) {
	if rm.values == nil && x.values == nil {
		return true, nil
	}
	err := checkInput(x, nil, "Equals")
	if err != nil {
		return false, err
	}
	if rm.values == nil || x.values == nil {
		return false, fmt.Errorf("RatMatrix.Equals: cannot compare empty to non-empty matrices")
	}
	if (rm.numRows != x.numRows) || (rm.numCols != x.numCols) {
		return false, fmt.Errorf("RatMatrix.Equals: cannot compare rm[%d][%d] to x[%d][%d]",
			rm.numRows, rm.numCols, x.numRows, x.numCols)
	}
	valuesLen := len(rm.values)
	for i := 0; i < valuesLen; i++ {
		if rm.values[i].Cmp(x.values[i]) != 0 {
			return false, nil
		}
	}
	return true, nil
}

// Dimensions returns the number of rows and columns in rm, in that order.
func (rm *RatMatrix) Dimensions() (int, int) {
	return rm.numRows, rm.numCols
}

// NumRows returns the number of rows in rm
func (rm *RatMatrix) NumRows() int {
	return rm.numRows
}

// NumCols returns the number of columns in rm
func (rm *RatMatrix) NumCols() int {
	return rm.numCols
}

// String returns a string representing rm with rows separated by newlines.
func (rm *RatMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < rm.numRows; i++ {
		for j := 0; j < rm.numCols; j++ {
			sb.WriteString(fmt.Sprintf("%s, ", rm.values[i*rm.numCols+j].RatString()))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func checkInput(x, y *RatMatrix, caller string) error {
	// Binary operators Add, Sub and Mul must have non-empty input x and y
	// with valid dimensions.
	if x == nil {
		return fmt.Errorf("RatMatrix.%s: input matrix x is nil", caller)
	}
	if len(x.values) != x.numRows*x.numCols {
		return fmt.Errorf(
			"RatMatrix.%s: malformed input matrix x[%d][%d] with %d entries",
			caller, x.numRows, x.numCols, len(x.values),
		)
	}
	if caller == "Add" || caller == "Sub" || caller == "Mul" || caller == "Transpose" {
		if x.numRows <= 0 || x.numCols <= 0 {
			return fmt.Errorf(
				"RatMatrix.%s: malformed input matrix x[%d][%d] with %d entries",
				caller, x.numRows, x.numCols, len(x.values),
			)
		}
		if y != nil {
			if len(y.values) != y.numRows*y.numCols {
				return fmt.Errorf(
					"RatMatrix.%s: malformed matrix y[%d][%d] with %d entries",
					caller, y.numRows, y.numCols, len(y.values),
				)
			}
			if y.numRows <= 0 || y.numCols <= 0 {
				return fmt.Errorf(
					"RatMatrix.%s: malformed input matrix y[%d][%d] with %d entries",
					caller, y.numRows, y.numCols, len(y.values),
				)
			}
			if caller == "Mul" && (x.numCols != y.numRows) {
				return fmt.Errorf(
					"RatMatrix.Mul: mismatched dimensions for operands x (%d x %d) and y (%d x %d)",
					x.numRows, x.numCols, y.numRows, y.numCols,
				)
			}
		}
	}

	// Operators Add and Sub must have input x and y with equal dimensions
	if (caller == "Add" || caller == "Sub") &&
		((x.numRows != y.numRows) || (x.numCols != y.numCols)) {
		return fmt.Errorf(
			"RatMatrix.%s: mismatched dimensions for operands x (%d x %d) and y (%d x %d)",
			caller, x.numRows, x.numCols, y.numRows, y.numCols,
		)
	}
	return nil
}

func (rm *RatMatrix) addOrSub(x *RatMatrix, y *RatMatrix, whichFunc string) (*RatMatrix, error) {
	err := checkInput(x, y, whichFunc)
	if err != nil {
		return nil, err
	}

	// Having passed checkInput(), x and y must be at least 1x1, and
	// have matching dimensions. rm must either have dimensions matching
	// x and y with len(rm.values) matching those dimensions, or rm.values
	// is reconstructed in this code block.
	valuesLen := x.numRows * x.numCols
	if (rm.numRows != x.numRows) || (rm.numCols != x.numCols) {
		rm.numRows = x.numRows
		rm.numCols = x.numCols
		rm.values = make([]*big.Rat, valuesLen)
	}
	for i := 0; i < valuesLen; i++ {
		if rm.values[i] == nil {
			rm.values[i] = big.NewRat(0, 1)
		}
		if whichFunc == "Add" {
			rm.values[i].Add(x.values[i], y.values[i])
		} else {
			rm.values[i].Sub(x.values[i], y.values[i])
		}
	}
	return rm, nil
}
