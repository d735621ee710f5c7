// Copyright (c) 2025 Colin McRae

package blockops

import (
	"errors"
	"fmt"
	"math/big"

	"blocktri/ratmatrix"
)

// InvertBlockTriangular returns the inverse of an invertible matrix that is
// block triangular with respect to b. The shape and the block-triangular
// invariant are validated upfront and violations are reported as
// ErrInvalidInput. Invertibility is the caller's precondition; when it fails,
// some diagonal block is singular and the recursion reports an error
// wrapping ErrInternalInconsistency naming that block's label.
//
// The returned matrix is block triangular with respect to the same b. To see
// why, let k be the maximum label present and order the indices so those
// labeled k come last, giving
//
//	    [ A  B ]              [ A⁻¹   -A⁻¹ B D⁻¹ ]
//	M = [ 0  D ]  and  M⁻¹ =  [ 0      D⁻¹       ]
//
// The lower-left zero cross block survives inversion, A⁻¹ is block
// triangular by the recursion on the labels below k, and the upper-right
// block only connects rows of smaller label to columns of label k, which the
// invariant permits. The same factorization shows the prefix property: the
// restriction of M⁻¹ to the indices with label < k is exactly the inverse of
// the prefix block A, for every threshold k. PrefixInverse exposes that
// restriction directly.
//
// The inverse of the 0 x 0 matrix is the 0 x 0 matrix. m is never mutated;
// the result shares no storage with m.
func InvertBlockTriangular(m *ratmatrix.RatMatrix, b Labeling) (*ratmatrix.RatMatrix, error) {
	if err := checkShape(m, b, "InvertBlockTriangular"); err != nil {
		return nil, err
	}
	if err := ValidateBlockTriangular(m, b); err != nil {
		return nil, fmt.Errorf("InvertBlockTriangular: %w", err)
	}
	n := m.NumRows()
	if n == 0 {
		return ratmatrix.NewEmpty(0, 0), nil
	}
	support := make([]int, n)
	for i := range support {
		support[i] = i
	}
	retVal := ratmatrix.NewEmpty(n, n)
	if err := invertOnSupport(m, b, support, retVal); err != nil {
		return nil, fmt.Errorf("InvertBlockTriangular: %w", err)
	}
	return retVal, nil
}

// PrefixInverse returns the inverse of the principal submatrix of m on the
// indices with label strictly below k. By the prefix property established by
// the inversion recursion, the result equals the restriction of the full
// inverse to those indices; computing it directly just runs the same
// recursion on the smaller support. The result has dimensions equal to the
// number of indices below k, in ascending index order; when no index has
// label below k it is the 0 x 0 matrix.
func PrefixInverse(m *ratmatrix.RatMatrix, b Labeling, k int) (*ratmatrix.RatMatrix, error) {
	if err := checkShape(m, b, "PrefixInverse"); err != nil {
		return nil, err
	}
	if err := ValidateBlockTriangular(m, b); err != nil {
		return nil, fmt.Errorf("PrefixInverse: %w", err)
	}
	prefix := b.Below(k)
	if len(prefix) == 0 {
		return ratmatrix.NewEmpty(0, 0), nil
	}

	// The recursion writes at global index positions; extract the prefix
	// rows and columns afterwards to get the prefix-sized inverse.
	scratch := ratmatrix.NewEmpty(m.NumRows(), m.NumCols())
	if err := invertOnSupport(m, b, prefix, scratch); err != nil {
		return nil, fmt.Errorf("PrefixInverse: %w", err)
	}
	retVal, err := ratmatrix.Extract(scratch, prefix, prefix)
	if err != nil {
		return nil, fmt.Errorf("PrefixInverse: could not extract the prefix block: %q", err.Error())
	}
	return retVal, nil
}

// invertOnSupport inverts the principal submatrix of m on support, writing
// the entries of the inverse into out at their global index positions.
// Entries of out at support positions not written here are exactly the zero
// cross blocks of the inverse, so out must arrive zero-filled on
// support x support. As in detOnSupport, support shrinks by one complete
// maximal-label block per recursive call.
func invertOnSupport(m *ratmatrix.RatMatrix, b Labeling, support []int, out *ratmatrix.RatMatrix) error {
	if len(support) == 0 {
		return nil
	}
	k := maxLabelOn(b, support)
	prefix, diag := splitAt(b, support, k)

	// Invert the prefix block A on {b < k} first; its entries land in out at
	// prefix x prefix and serve as A⁻¹ below.
	if err := invertOnSupport(m, b, prefix, out); err != nil {
		return err
	}

	// Invert the diagonal block D at label k with the dense kernel
	block, err := ratmatrix.Extract(m, diag, diag)
	if err != nil {
		return fmt.Errorf(
			"invertOnSupport: could not extract the diagonal block at label %d: %q", k, err.Error(),
		)
	}
	blockInv, err := ratmatrix.Inverse(block)
	if err != nil {
		if errors.Is(err, ratmatrix.ErrSingular) {
			// The caller asserted the whole matrix invertible, and a
			// block-triangular matrix is invertible exactly when every
			// diagonal block is. Reaching this branch means the
			// precondition did not hold.
			return fmt.Errorf(
				"invertOnSupport: the %d x %d diagonal block at label %d is singular: %w",
				len(diag), len(diag), k, ErrInternalInconsistency,
			)
		}
		return fmt.Errorf(
			"invertOnSupport: could not invert the diagonal block at label %d: %q", k, err.Error(),
		)
	}
	if err = writeBlock(out, diag, diag, blockInv, false); err != nil {
		return fmt.Errorf(
			"invertOnSupport: could not write the inverted block at label %d: %q", k, err.Error(),
		)
	}
	if len(prefix) == 0 {
		return nil
	}

	// Upper-right cross block of the inverse: -A⁻¹ B D⁻¹, where B is the
	// prefix x diag cross block of m. The diag x prefix cross block of the
	// inverse is zero and out already holds zeros there.
	prefixInv, err := ratmatrix.Extract(out, prefix, prefix)
	if err != nil {
		return fmt.Errorf(
			"invertOnSupport: could not extract the prefix inverse below label %d: %q", k, err.Error(),
		)
	}
	cross, err := ratmatrix.Extract(m, prefix, diag)
	if err != nil {
		return fmt.Errorf(
			"invertOnSupport: could not extract the cross block at label %d: %q", k, err.Error(),
		)
	}
	product, err := ratmatrix.NewEmpty(len(prefix), len(diag)).Mul(prefixInv, cross)
	if err != nil {
		return fmt.Errorf(
			"invertOnSupport: could not multiply the prefix inverse by the cross block at label %d: %q", k, err.Error(),
		)
	}
	product, err = product.Mul(product, blockInv)
	if err != nil {
		return fmt.Errorf(
			"invertOnSupport: could not multiply the cross product by D⁻¹ at label %d: %q", k, err.Error(),
		)
	}
	if err = writeBlock(out, prefix, diag, product, true); err != nil {
		return fmt.Errorf(
			"invertOnSupport: could not write the cross block at label %d: %q", k, err.Error(),
		)
	}
	return nil
}

// writeBlock copies block into out, sending block[p][q] to
// out[rows[p]][cols[q]], negating each entry when negate is set.
func writeBlock(out *ratmatrix.RatMatrix, rows, cols []int, block *ratmatrix.RatMatrix, negate bool) error {
	scratch := new(big.Rat)
	for p, i := range rows {
		for q, j := range cols {
			entry, err := block.Get(p, q)
			if err != nil {
				return err
			}
			if negate {
				entry = scratch.Neg(entry)
			}
			if err = out.Set(i, j, entry); err != nil {
				return err
			}
		}
	}
	return nil
}
