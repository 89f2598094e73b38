// SPDX-License-Identifier: MIT

package sparse

// Bit is the set of element types accepted by the dense constructors.
// Any value must be exactly 0 or 1 after comparison in its own type;
// everything else (including NaN) is rejected with ErrNonBinary.
type Bit interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Entry is a single non-zero (Row, Col) coordinate.
type Entry struct {
	Row int // check index
	Col int // bit index
}

// BinaryMatrix is an immutable sparse 0/1 matrix stored twice: row-major
// (CSR) for check→bit enumeration and column-major (CSC) for bit→check
// enumeration. Both index arrays are canonical (ascending within a line).
//
// Memory: O(rows + cols + nnz).
type BinaryMatrix struct {
	rows, cols int

	rowPtr []int // len rows+1; row i owns colIdx[rowPtr[i]:rowPtr[i+1]]
	colIdx []int // len nnz; ascending within each row

	colPtr []int // len cols+1; column j owns rowIdx[colPtr[j]:colPtr[j+1]]
	rowIdx []int // len nnz; ascending within each column
}
