// SPDX-License-Identifier: MIT
// Package sparse: constructors.
//
// Every public constructor funnels into finalize(), which owns the canonical
// layout: columns sorted within rows, duplicates rejected, CSC mirror built by
// a counting pass. Inputs are never retained; callers may reuse their slices.
//
// Complexity: O(rows + cols + nnz·log(maxRowDegree)) for the sparse inputs,
// plus O(rows·cols) scanning for the dense ones.

package sparse

import (
	"slices"
)

const (
	methodNewFromDense    = "NewFromDense"
	methodNewFromRowMajor = "NewFromRowMajor"
	methodNewFromCSR      = "NewFromCSR"
	methodNewFromCSC      = "NewFromCSC"
	methodNewFromEntries  = "NewFromEntries"
)

// NewFromDense builds a BinaryMatrix from a row-major dense matrix.
// All rows must have the same length; an empty outer slice yields a 0×0
// matrix (use NewFromRowMajor for 0×N shapes).
//
// Errors: ErrBadShape for ragged rows, ErrNonBinary for values ∉ {0,1}.
func NewFromDense[T Bit](dense [][]T) (*BinaryMatrix, error) {
	rows := len(dense)
	cols := 0
	if rows > 0 {
		cols = len(dense[0])
	}

	rowPtr := make([]int, rows+1)
	colIdx := make([]int, 0, rows) // grows with nnz
	for i, line := range dense {
		if len(line) != cols {
			return nil, sparseErrorf(methodNewFromDense, "row %d has %d columns, want %d: %w", i, len(line), cols, ErrBadShape)
		}
		for j, v := range line {
			switch v {
			case 0:
			case 1:
				colIdx = append(colIdx, j)
			default:
				return nil, sparseErrorf(methodNewFromDense, "entry (%d,%d)=%v: %w", i, j, v, ErrNonBinary)
			}
		}
		rowPtr[i+1] = len(colIdx)
	}

	return finalize(rows, cols, rowPtr, colIdx, methodNewFromDense)
}

// NewFromRowMajor builds a rows×cols BinaryMatrix from a flat row-major
// buffer. Unlike NewFromDense it can express 0×N and N×0 shapes.
//
// Errors: ErrBadShape if rows<0, cols<0 or len(data) != rows*cols;
// ErrNonBinary for values ∉ {0,1}.
func NewFromRowMajor[T Bit](rows, cols int, data []T) (*BinaryMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf(methodNewFromRowMajor, "shape %dx%d: %w", rows, cols, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, sparseErrorf(methodNewFromRowMajor, "len(data)=%d, want %d: %w", len(data), rows*cols, ErrBadShape)
	}

	rowPtr := make([]int, rows+1)
	colIdx := make([]int, 0, rows)
	for i := 0; i < rows; i++ {
		line := data[i*cols : (i+1)*cols]
		for j, v := range line {
			switch v {
			case 0:
			case 1:
				colIdx = append(colIdx, j)
			default:
				return nil, sparseErrorf(methodNewFromRowMajor, "entry (%d,%d)=%v: %w", i, j, v, ErrNonBinary)
			}
		}
		rowPtr[i+1] = len(colIdx)
	}

	return finalize(rows, cols, rowPtr, colIdx, methodNewFromRowMajor)
}

// NewFromCSR builds a BinaryMatrix from compressed-sparse-row arrays:
// row i owns colIdx[rowPtr[i]:rowPtr[i+1]]. Column indices inside a row may
// come in any order; they are stored sorted.
//
// Errors:
//   - ErrBadShape: negative shape, len(rowPtr) != rows+1, rowPtr[0] != 0,
//     decreasing rowPtr, or rowPtr[rows] != len(colIdx).
//   - ErrOutOfRange: a column index outside [0, cols).
//   - ErrDuplicateEntry: the same column twice in one row.
func NewFromCSR(rows, cols int, rowPtr, colIdx []int) (*BinaryMatrix, error) {
	if err := validatePointers(rows, cols, rowPtr, colIdx); err != nil {
		return nil, sparseErrorf(methodNewFromCSR, "%w", err)
	}
	for k, c := range colIdx {
		if c < 0 || c >= cols {
			return nil, sparseErrorf(methodNewFromCSR, "colIdx[%d]=%d not in [0,%d): %w", k, c, cols, ErrOutOfRange)
		}
	}

	return finalize(rows, cols, slices.Clone(rowPtr), slices.Clone(colIdx), methodNewFromCSR)
}

// NewFromCSC builds a BinaryMatrix from compressed-sparse-column arrays:
// column j owns rowIdx[colPtr[j]:colPtr[j+1]]. Same error contract as
// NewFromCSR with rows and columns swapped.
func NewFromCSC(rows, cols int, colPtr, rowIdx []int) (*BinaryMatrix, error) {
	if err := validatePointers(cols, rows, colPtr, rowIdx); err != nil {
		return nil, sparseErrorf(methodNewFromCSC, "%w", err)
	}

	// Transpose into CSR by counting rows.
	counts := make([]int, rows+1)
	for k, r := range rowIdx {
		if r < 0 || r >= rows {
			return nil, sparseErrorf(methodNewFromCSC, "rowIdx[%d]=%d not in [0,%d): %w", k, r, rows, ErrOutOfRange)
		}
		counts[r+1]++
	}
	for i := 0; i < rows; i++ {
		counts[i+1] += counts[i]
	}
	rowPtr := slices.Clone(counts)
	colIdx := make([]int, len(rowIdx))
	next := counts[:rows] // write cursor per row
	for j := 0; j < cols; j++ {
		for k := colPtr[j]; k < colPtr[j+1]; k++ {
			r := rowIdx[k]
			colIdx[next[r]] = j
			next[r]++
		}
	}

	return finalize(rows, cols, rowPtr, colIdx, methodNewFromCSC)
}

// NewFromEntries builds a rows×cols BinaryMatrix from a coordinate list.
// Entries may arrive in any order.
//
// Errors: ErrBadShape (negative shape), ErrOutOfRange, ErrDuplicateEntry.
func NewFromEntries(rows, cols int, entries []Entry) (*BinaryMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf(methodNewFromEntries, "shape %dx%d: %w", rows, cols, ErrBadShape)
	}

	rowPtr := make([]int, rows+1)
	for k, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, sparseErrorf(methodNewFromEntries, "entries[%d]=(%d,%d) outside %dx%d: %w", k, e.Row, e.Col, rows, cols, ErrOutOfRange)
		}
		rowPtr[e.Row+1]++
	}
	for i := 0; i < rows; i++ {
		rowPtr[i+1] += rowPtr[i]
	}
	colIdx := make([]int, len(entries))
	next := slices.Clone(rowPtr[:rows])
	for _, e := range entries {
		colIdx[next[e.Row]] = e.Col
		next[e.Row]++
	}

	return finalize(rows, cols, rowPtr, colIdx, methodNewFromEntries)
}

// validatePointers checks a compressed pointer array for `lines` major lines
// whose minor indices live in [0, width). Index ranges are checked by callers.
func validatePointers(lines, width int, ptr, idx []int) error {
	if lines < 0 || width < 0 {
		return ErrBadShape
	}
	if len(ptr) != lines+1 {
		return ErrBadShape
	}
	if ptr[0] != 0 || ptr[lines] != len(idx) {
		return ErrBadShape
	}
	for i := 0; i < lines; i++ {
		if ptr[i+1] < ptr[i] {
			return ErrBadShape
		}
	}

	return nil
}

// finalize takes ownership of a CSR layout whose columns are in range but not
// necessarily sorted, canonicalizes it, rejects duplicates and derives CSC.
func finalize(rows, cols int, rowPtr, colIdx []int, method string) (*BinaryMatrix, error) {
	for i := 0; i < rows; i++ {
		line := colIdx[rowPtr[i]:rowPtr[i+1]]
		if !slices.IsSorted(line) {
			slices.Sort(line)
		}
		for k := 1; k < len(line); k++ {
			if line[k] == line[k-1] {
				return nil, sparseErrorf(method, "entry (%d,%d): %w", i, line[k], ErrDuplicateEntry)
			}
		}
	}

	colPtr := make([]int, cols+1)
	for _, c := range colIdx {
		colPtr[c+1]++
	}
	for j := 0; j < cols; j++ {
		colPtr[j+1] += colPtr[j]
	}
	rowIdx := make([]int, len(colIdx))
	next := slices.Clone(colPtr[:cols])
	// Rows are visited in ascending order, so each column's rows come out sorted.
	for i := 0; i < rows; i++ {
		for k := rowPtr[i]; k < rowPtr[i+1]; k++ {
			c := colIdx[k]
			rowIdx[next[c]] = i
			next[c]++
		}
	}

	return &BinaryMatrix{
		rows:   rows,
		cols:   cols,
		rowPtr: rowPtr,
		colIdx: colIdx,
		colPtr: colPtr,
		rowIdx: rowIdx,
	}, nil
}
