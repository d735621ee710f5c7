// Copyright (c) 2025 Colin McRae

package util

import (
	"fmt"
	"math/rand"
)

// CreateInversePair creates a pair of inverse matrices with integer entries
// and determinant 1 or -1, as flat dim x dim arrays. The pair is built by
// composing random elementary row operations, whose inverses are known in
// closed form, so the product of the two results is exactly the identity.
func CreateInversePair(dim int) ([]int64, []int64, error) {
	const maxRowOpEntry = 10
	const maxRowOps = 10
	const maxMatrixEntry = 100
	if dim < 1 {
		return []int64{}, []int64{}, fmt.Errorf("CreateInversePair: dimension %d < 1", dim)
	}
	if dim == 1 {
		// No off-diagonal row operations exist; the only unimodular choices
		// are [1] and [-1], which are their own inverses.
		if rand.Intn(2) == 0 {
			return []int64{1}, []int64{1}, nil
		}
		return []int64{-1}, []int64{-1}, nil
	}
	retValA := make([]int64, dim*dim)
	retValB := make([]int64, dim*dim)

	// The inverse operation to adding c times row i to row j is to add −c times row i to
	// row j
	for i := 0; i < maxRowOps; i++ {
		srcRow := rand.Intn(dim)
		destRow := rand.Intn(dim)
		multiple := int64(rand.Intn(maxRowOpEntry) - (maxRowOpEntry / 2))
		if multiple == 0 {
			multiple = 1
		}
		if srcRow == destRow {
			if destRow < dim/2 {
				destRow += dim / 2
			} else {
				destRow -= dim / 2
			}
		}
		rowOpMatrixA := make([]int64, dim*dim)
		rowOpMatrixB := make([]int64, dim*dim)
		for j := 0; j < dim; j++ {
			rowOpMatrixA[j*dim+j] = 1
			rowOpMatrixB[j*dim+j] = 1
			if i == 0 {
				// retValA and retValB are all 0
				retValA[j*dim+j] = 1
				retValB[j*dim+j] = 1
			}
		}
		rowOpMatrixA[destRow*dim+srcRow] = multiple
		rowOpMatrixB[destRow*dim+srcRow] = -multiple
		if i == 0 {
			// retValA and retValB are both the identity
			retValA[destRow*dim+srcRow] = multiple
			retValB[destRow*dim+srcRow] = -multiple
			continue
		}

		// i > 0, so an update of retValA and retValB is required
		var tmpB []int64
		tmpA, err := MultiplyIntInt(rowOpMatrixA, retValA, dim)
		if err != nil {
			return []int64{}, []int64{}, fmt.Errorf(
				"CreateInversePair: could not multiply retValA by rowOpMatrixA: %q",
				err.Error(),
			)
		}
		tmpB, err = MultiplyIntInt(retValB, rowOpMatrixB, dim)
		if err != nil {
			return []int64{}, []int64{}, fmt.Errorf(
				"CreateInversePair: could not multiply retValB by rowOpMatrixB: %q",
				err.Error(),
			)
		}

		// An entry in tmpA or tmpB may exceed the maximum desired
		for j := 0; j < dim*dim; j++ {
			if (tmpA[j] > maxMatrixEntry) || (tmpA[j] < -maxMatrixEntry) {
				return retValA, retValB, nil
			}
			if (tmpB[j] > maxMatrixEntry) || (tmpB[j] < -maxMatrixEntry) {
				return retValA, retValB, nil
			}
		}

		// No entry in tmpA or tmpB exceeds the maximum desired, so continue on
		retValA = tmpA
		retValB = tmpB
	}

	// The maximum number of iterations has been reached
	return retValA, retValB, nil
}

// GetPermutation returns a pseudo-random permutation of {0,...,size-1}
// that is guaranteed not to be the identity.
func GetPermutation(size int) []int {
	permutation := rand.Perm(size)

	// Return the random permutation if it is not the identity
	isIdentity := true
	for i := 0; i < size; i++ {
		if permutation[i] != i {
			isIdentity = false
		}
	}
	if !isIdentity {
		return permutation
	}

	// The random permutation is the identity. Return a random swap.
	src := rand.Intn(size)
	var dest int
	if size == 2 {
		dest = 0
	} else {
		dest = rand.Intn(size - 1)
	}
	if src <= dest {
		dest++
	}
	permutation[src] = dest
	permutation[dest] = src
	return permutation
}

// ScatterBlock writes the numIndices x numIndices subMatrix into the
// numRows x numRows flat matrix full, at the row and column positions listed
// in indices: subMatrix[p][q] lands at full[indices[p]][indices[q]]. Entries
// of full outside indices x indices are untouched.
func ScatterBlock(full []int64, indices []int, subMatrix []int64, numRows int) error {
	numIndices := len(indices)
	if len(subMatrix) != numIndices*numIndices {
		return fmt.Errorf(
			"ScatterBlock: subMatrix has %d entries but %d indices were provided",
			len(subMatrix), numIndices,
		)
	}
	if len(full) != numRows*numRows {
		return fmt.Errorf(
			"ScatterBlock: full has %d entries, which is not %d squared", len(full), numRows,
		)
	}
	for p := 0; p < numIndices; p++ {
		for q := 0; q < numIndices; q++ {
			if indices[p] < 0 || numRows <= indices[p] || indices[q] < 0 || numRows <= indices[q] {
				return fmt.Errorf(
					"ScatterBlock: index pair (%d, %d) is outside {0,...,%d}",
					indices[p], indices[q], numRows-1,
				)
			}
			full[indices[p]*numRows+indices[q]] = subMatrix[p*numIndices+q]
		}
	}
	return nil
}

// RandomBlockTriangular creates a random invertible integer matrix that is
// block triangular for the given labels: each diagonal block is a random
// unimodular matrix from CreateInversePair, entries with a column label
// strictly greater than the row label are random in
// {-crossRange,...,crossRange}, and entries with a smaller column label are
// zero. The result is returned as a flat len(labels) x len(labels) array.
func RandomBlockTriangular(labels []int, crossRange int) ([]int64, error) {
	numRows := len(labels)
	retVal := make([]int64, numRows*numRows)

	// One unimodular block per distinct label
	done := make(map[int]bool)
	for _, label := range labels {
		if done[label] {
			continue
		}
		done[label] = true
		var indices []int
		for i, l := range labels {
			if l == label {
				indices = append(indices, i)
			}
		}
		block, _, err := CreateInversePair(len(indices))
		if err != nil {
			return []int64{}, fmt.Errorf(
				"RandomBlockTriangular: could not create the block at label %d: %q",
				label, err.Error(),
			)
		}
		if err = ScatterBlock(retVal, indices, block, numRows); err != nil {
			return []int64{}, fmt.Errorf(
				"RandomBlockTriangular: could not scatter the block at label %d: %q",
				label, err.Error(),
			)
		}
	}

	// Random entries where the column label exceeds the row label
	for i := 0; i < numRows; i++ {
		for j := 0; j < numRows; j++ {
			if labels[j] > labels[i] {
				retVal[i*numRows+j] = int64(rand.Intn(2*crossRange+1) - crossRange)
			}
		}
	}
	return retVal, nil
}
