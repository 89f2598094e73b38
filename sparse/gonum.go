// SPDX-License-Identifier: MIT
// Package sparse: gonum interop.
//
// gonum's mat.Dense is the lingua franca for numeric Go code; accepting any
// mat.Matrix lets callers hand over matrices produced by linear-algebra
// pipelines without a manual copy. gonum cannot represent zero-length
// dimensions, so ToGonum rejects degenerate shapes with ErrBadShape.

package sparse

import (
	"gonum.org/v1/gonum/mat"
)

// FromGonum builds a BinaryMatrix from any gonum matrix whose entries are
// exactly 0 or 1.
//
// Errors: ErrNilMatrix for a nil argument, ErrNonBinary otherwise.
// Complexity: O(rows·cols) At calls.
func FromGonum(a mat.Matrix) (*BinaryMatrix, error) {
	if a == nil {
		return nil, sparseErrorf("FromGonum", "%w", ErrNilMatrix)
	}
	rows, cols := a.Dims()

	rowPtr := make([]int, rows+1)
	colIdx := make([]int, 0, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			switch v := a.At(i, j); v {
			case 0:
			case 1:
				colIdx = append(colIdx, j)
			default:
				return nil, sparseErrorf("FromGonum", "entry (%d,%d)=%v: %w", i, j, v, ErrNonBinary)
			}
		}
		rowPtr[i+1] = len(colIdx)
	}

	return finalize(rows, cols, rowPtr, colIdx, "FromGonum")
}

// ToGonum returns a dense gonum copy with 1.0 at every non-zero.
//
// Errors: ErrBadShape when Rows() or Cols() is zero.
// Complexity: O(rows·cols) allocation + O(nnz) writes.
func (m *BinaryMatrix) ToGonum() (*mat.Dense, error) {
	if m.rows == 0 || m.cols == 0 {
		return nil, sparseErrorf("ToGonum", "shape %dx%d: %w", m.rows, m.cols, ErrBadShape)
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ {
		for _, j := range m.Row(i) {
			d.Set(i, j, 1)
		}
	}

	return d, nil
}
