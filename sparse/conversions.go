// SPDX-License-Identifier: MIT
// Package sparse: converters back to dense and compressed forms.
//
// Each converter is the exact inverse of the constructor of the same format:
//
//	NewFromDense(h.ToDense())                 ≡ h   (for rows > 0)
//	NewFromRowMajor(r, c, h.ToRowMajor())     ≡ h   (every shape)
//	NewFromCSR(r, c, h.ToCSR())               ≡ h
//	NewFromCSC(r, c, h.ToCSC())               ≡ h
//
// All returned slices are fresh copies owned by the caller.

package sparse

import "slices"

// ToDense returns a rows×cols [][]uint8 copy of the matrix.
// Complexity: O(rows·cols).
func (m *BinaryMatrix) ToDense() [][]uint8 {
	out := make([][]uint8, m.rows)
	flat := make([]uint8, m.rows*m.cols) // single backing allocation
	for i := 0; i < m.rows; i++ {
		line := flat[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
		for _, j := range m.Row(i) {
			line[j] = 1
		}
		out[i] = line
	}

	return out
}

// ToRowMajor returns the matrix as a flat row-major buffer of length rows·cols.
// Complexity: O(rows·cols).
func (m *BinaryMatrix) ToRowMajor() []uint8 {
	out := make([]uint8, m.rows*m.cols)
	for i := 0; i < m.rows; i++ {
		for _, j := range m.Row(i) {
			out[i*m.cols+j] = 1
		}
	}

	return out
}

// ToCSR returns copies of the row-pointer and column-index arrays.
// Column indices ascend within each row.
// Complexity: O(rows + nnz).
func (m *BinaryMatrix) ToCSR() (rowPtr, colIdx []int) {
	return slices.Clone(m.rowPtr), slices.Clone(m.colIdx)
}

// ToCSC returns copies of the column-pointer and row-index arrays.
// Row indices ascend within each column.
// Complexity: O(cols + nnz).
func (m *BinaryMatrix) ToCSC() (colPtr, rowIdx []int) {
	return slices.Clone(m.colPtr), slices.Clone(m.rowIdx)
}
