// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
//
// All constructors and converters return these sentinels, optionally wrapped
// with a method tag via fmt.Errorf("Method: ...: %w", ErrX). Tests and callers
// MUST match with errors.Is. Nothing in this package panics on user input.
//
// ERROR PRIORITY (enforced by the constructors):
// shape -> index range -> value (non-binary) -> duplicates.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned for negative dimensions, ragged dense rows,
	// malformed pointer arrays (CSR/CSC) or shapes a target format cannot hold.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrNonBinary indicates an entry that is neither 0 nor 1.
	ErrNonBinary = errors.New("sparse: non-binary entry")

	// ErrDuplicateEntry indicates that the same (row, col) pair was given twice.
	ErrDuplicateEntry = errors.New("sparse: duplicate entry")

	// ErrDimensionMismatch indicates incompatible operand lengths, e.g. a vector
	// passed to MulVec whose length differs from Cols().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates a nil receiver or argument.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

// sparseErrorf tags err with the public method that detected it.
func sparseErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{method}, args...)...)
}
