// Copyright (c) 2025 Colin McRae

package blockops

import (
	"fmt"
	"math/big"

	"blocktri/ratmatrix"
)

// BlockTriangularDet returns the determinant of a matrix that is block
// triangular with respect to b. The inputs are validated upfront: the matrix
// must be square, b must cover its indices and the block-triangular invariant
// must hold, or an error wrapping ErrInvalidInput is returned.
//
// The determinant is computed without ever eliminating across a block
// boundary. Let k be the maximum label present and order the indices so that
// the indices labeled k come last. Because every entry from a row labeled k
// to a column with a smaller label is zero, the reordered matrix has the form
//
//	[ A  B ]     A: indices with label < k
//	[ 0  D ]     D: indices with label = k
//
// and det(M) = det(A) det(D). D's determinant comes from the dense kernel;
// A is block triangular for the same labeling restricted to {b < k}, whose
// image is one label smaller, so the recursion terminates after one step per
// distinct label. The result equals the product over the image of b of the
// diagonal block determinants, in particular it does not depend on the order
// in which the labels are peeled off.
//
// The determinant of the 0 x 0 matrix is 1, the empty product.
func BlockTriangularDet(m *ratmatrix.RatMatrix, b Labeling) (*big.Rat, error) {
	if err := checkShape(m, b, "BlockTriangularDet"); err != nil {
		return nil, err
	}
	if err := ValidateBlockTriangular(m, b); err != nil {
		return nil, fmt.Errorf("BlockTriangularDet: %w", err)
	}
	support := make([]int, m.NumRows())
	for i := range support {
		support[i] = i
	}
	return detOnSupport(m, b, support)
}

// detOnSupport returns the determinant of the principal submatrix of m on
// support. support must be closed under the labeling in the sense that it is
// the full index set minus zero or more complete maximal-label blocks; the
// public entry point starts with everything and each recursive call removes
// exactly the current maximal block, so this holds throughout.
func detOnSupport(m *ratmatrix.RatMatrix, b Labeling, support []int) (*big.Rat, error) {
	if len(support) == 0 {
		return big.NewRat(1, 1), nil
	}
	k := maxLabelOn(b, support)
	prefix, diag := splitAt(b, support, k)

	// det of the diagonal block at the maximum label, from the dense kernel
	block, err := ratmatrix.Extract(m, diag, diag)
	if err != nil {
		return nil, fmt.Errorf(
			"detOnSupport: could not extract the diagonal block at label %d: %q", k, err.Error(),
		)
	}
	blockDet, err := ratmatrix.Det(block)
	if err != nil {
		return nil, fmt.Errorf(
			"detOnSupport: could not compute det of the %d x %d block at label %d: %q",
			len(diag), len(diag), k, err.Error(),
		)
	}

	// det of the prefix block on {b < k}, by recursion on a smaller label set
	prefixDet, err := detOnSupport(m, b, prefix)
	if err != nil {
		return nil, err
	}
	return new(big.Rat).Mul(blockDet, prefixDet), nil
}
