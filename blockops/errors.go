// Copyright (c) 2025 Colin McRae

package blockops

import "errors"

var (
	// ErrEmptyDomain is returned by MaxLabel when the labeling covers no
	// indices at all. The engines never propagate it: the determinant of the
	// empty matrix is defined to be 1 (the empty product) and its inverse is
	// the empty matrix, so both handle the empty case before asking for a
	// maximum label.
	ErrEmptyDomain = errors.New("empty index set")

	// ErrInvalidInput is returned when a caller-supplied matrix or labeling
	// fails the upfront checks: a non-square matrix, a labeling whose length
	// does not match the matrix dimension, or a matrix that is not block
	// triangular with respect to the labeling.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternalInconsistency is returned when a diagonal block turns out to
	// be singular during the inversion recursion. After the upfront checks
	// pass, this can only happen when the whole matrix was not invertible,
	// which violates the caller's precondition rather than indicating a
	// recoverable condition.
	ErrInternalInconsistency = errors.New("internal inconsistency")
)
