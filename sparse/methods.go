// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"slices"
	"strings"
)

// Rows returns the number of rows (checks).
func (m *BinaryMatrix) Rows() int { return m.rows }

// Cols returns the number of columns (bits).
func (m *BinaryMatrix) Cols() int { return m.cols }

// NNZ returns the number of non-zero entries.
func (m *BinaryMatrix) NNZ() int { return len(m.colIdx) }

// Row returns the ascending column indices of the ones in row i.
// The slice aliases internal storage and must not be modified; its capacity
// is clipped so appends never clobber the neighbor row.
// Complexity: O(1).
func (m *BinaryMatrix) Row(i int) []int {
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	return m.colIdx[lo:hi:hi]
}

// Col returns the ascending row indices of the ones in column j.
// Same aliasing contract as Row.
// Complexity: O(1).
func (m *BinaryMatrix) Col(j int) []int {
	lo, hi := m.colPtr[j], m.colPtr[j+1]
	return m.rowIdx[lo:hi:hi]
}

// RowDegree returns the number of ones in row i.
func (m *BinaryMatrix) RowDegree(i int) int { return m.rowPtr[i+1] - m.rowPtr[i] }

// ColDegree returns the number of ones in column j.
func (m *BinaryMatrix) ColDegree(j int) int { return m.colPtr[j+1] - m.colPtr[j] }

// At returns the entry at (i, j).
// Returns ErrOutOfRange for indices outside the matrix.
// Complexity: O(log(row degree)).
func (m *BinaryMatrix) At(i, j int) (uint8, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, sparseErrorf("At", "(%d,%d) outside %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}
	if _, found := slices.BinarySearch(m.Row(i), j); found {
		return 1, nil
	}

	return 0, nil
}

// Entries returns all non-zeros in row-major order.
// Complexity: O(nnz).
func (m *BinaryMatrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.colIdx))
	for i := 0; i < m.rows; i++ {
		for _, j := range m.Row(i) {
			out = append(out, Entry{Row: i, Col: j})
		}
	}

	return out
}

// Equal reports whether m and o have the same shape and the same entries.
// Two nil matrices are equal.
func (m *BinaryMatrix) Equal(o *BinaryMatrix) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.rows == o.rows && m.cols == o.cols &&
		slices.Equal(m.rowPtr, o.rowPtr) && slices.Equal(m.colIdx, o.colIdx)
}

// MulVec returns H·x over GF(2). For a parity-check matrix and an error
// pattern x this is the syndrome.
//
// Errors: ErrDimensionMismatch if len(x) != Cols(); ErrNonBinary if x holds
// anything other than 0 or 1.
// Complexity: O(rows + nnz).
func (m *BinaryMatrix) MulVec(x []uint8) ([]uint8, error) {
	if len(x) != m.cols {
		return nil, sparseErrorf("MulVec", "len(x)=%d, want %d: %w", len(x), m.cols, ErrDimensionMismatch)
	}
	for j, v := range x {
		if v > 1 {
			return nil, sparseErrorf("MulVec", "x[%d]=%d: %w", j, v, ErrNonBinary)
		}
	}

	out := make([]uint8, m.rows)
	for i := 0; i < m.rows; i++ {
		var parity uint8
		for _, j := range m.Row(i) {
			parity ^= x[j]
		}
		out[i] = parity
	}

	return out, nil
}

// String renders the matrix densely, one bracketed row per line, matching the
// format of a dense float matrix ("[1, 0]\n[0, 1]\n"). Meant for small
// matrices in tests and examples.
func (m *BinaryMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		row := m.Row(i)
		k := 0
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			if k < len(row) && row[k] == j {
				sb.WriteByte('1')
				k++
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// GoString makes %#v output compact in test failure messages.
func (m *BinaryMatrix) GoString() string {
	return fmt.Sprintf("sparse.BinaryMatrix{%dx%d, nnz=%d}", m.rows, m.cols, len(m.colIdx))
}
