// Copyright (c) 2025 Colin McRae

package blockops

import (
	"fmt"

	"blocktri/ratmatrix"
)

// IsBlockTriangular reports whether m is block triangular with respect to b:
// every entry m[i][j] with b(j) < b(i) is zero. The check visits every entry
// once. An error is returned only when m and b do not describe the same index
// set; a violating entry makes the answer false, not an error.
func IsBlockTriangular(m *ratmatrix.RatMatrix, b Labeling) (bool, error) {
	if err := checkShape(m, b, "IsBlockTriangular"); err != nil {
		return false, err
	}
	i, j, ok, err := firstViolation(m, b)
	if err != nil {
		return false, fmt.Errorf("IsBlockTriangular: could not scan m[%d][%d]: %q", i, j, err.Error())
	}
	return !ok, nil
}

// ValidateBlockTriangular returns nil when m is block triangular with respect
// to b, and an error wrapping ErrInvalidInput naming the first violating
// entry otherwise. Both engines call it before recursing, so a caller that
// has already validated pays the O(n^2) scan twice; callers on a hot path
// can scan once themselves and trust the engines' own scan.
func ValidateBlockTriangular(m *ratmatrix.RatMatrix, b Labeling) error {
	if err := checkShape(m, b, "ValidateBlockTriangular"); err != nil {
		return err
	}
	i, j, ok, err := firstViolation(m, b)
	if err != nil {
		return fmt.Errorf("ValidateBlockTriangular: could not scan m[%d][%d]: %q", i, j, err.Error())
	}
	if ok {
		return fmt.Errorf(
			"ValidateBlockTriangular: m[%d][%d] is nonzero but label %d of column %d "+
				"is less than label %d of row %d: %w",
			i, j, b[j], j, b[i], i, ErrInvalidInput,
		)
	}
	return nil
}

// firstViolation scans for the first entry (in row-major order) that is
// nonzero where the block-triangular invariant requires zero. It returns the
// coordinates and whether a violation was found.
func firstViolation(m *ratmatrix.RatMatrix, b Labeling) (int, int, bool, error) {
	n := m.NumRows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if b[j] >= b[i] {
				continue
			}
			entry, err := m.Get(i, j)
			if err != nil {
				return i, j, false, err
			}
			if entry.Sign() != 0 {
				return i, j, true, nil
			}
		}
	}
	return 0, 0, false, nil
}

// checkShape verifies that m is square and that b labels exactly the rows of
// m. Violations are reported as ErrInvalidInput.
func checkShape(m *ratmatrix.RatMatrix, b Labeling, caller string) error {
	if m == nil {
		return fmt.Errorf("%s: input matrix is nil: %w", caller, ErrInvalidInput)
	}
	numRows, numCols := m.Dimensions()
	if numRows != numCols {
		return fmt.Errorf(
			"%s: matrix is %d x %d, not square: %w", caller, numRows, numCols, ErrInvalidInput,
		)
	}
	if len(b) != numRows {
		return fmt.Errorf(
			"%s: labeling covers %d indices but the matrix has %d rows: %w",
			caller, len(b), numRows, ErrInvalidInput,
		)
	}
	return nil
}
