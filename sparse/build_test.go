// SPDX-License-Identifier: MIT
// Package sparse_test covers constructor validation and canonical layout.
package sparse_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ldpc/sparse"
	"github.com/stretchr/testify/require"
)

// TestNewFromDense_Basic checks shape, nnz and neighbor lists of a 3×4 matrix.
func TestNewFromDense_Basic(t *testing.T) {
	h, err := sparse.NewFromDense([][]int{
		{1, 0, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 1, 1},
	})
	require.NoError(t, err)

	require.Equal(t, 3, h.Rows())
	require.Equal(t, 4, h.Cols())
	require.Equal(t, 6, h.NNZ())

	require.Equal(t, []int{0, 2}, h.Row(0))
	require.Equal(t, []int{1, 2}, h.Row(1))
	require.Equal(t, []int{2, 3}, h.Row(2))

	require.Equal(t, []int{0}, h.Col(0))
	require.Equal(t, []int{1}, h.Col(1))
	require.Equal(t, []int{0, 1, 2}, h.Col(2)) // column 2 is shared by all checks
	require.Equal(t, []int{2}, h.Col(3))

	require.Equal(t, 3, h.ColDegree(2))
	require.Equal(t, 2, h.RowDegree(0))
}

// TestNewFromDense_FloatAndUnsigned verifies 0/1 coercion across element types.
func TestNewFromDense_FloatAndUnsigned(t *testing.T) {
	hf, err := sparse.NewFromDense([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	hu, err := sparse.NewFromDense([][]uint8{{1, 0}, {0, 1}})
	require.NoError(t, err)
	require.True(t, hf.Equal(hu))
}

// TestNewFromDense_Errors is a table of malformed dense inputs.
func TestNewFromDense_Errors(t *testing.T) {
	tests := []struct {
		name  string
		dense [][]float64
		want  error
	}{
		{"ragged", [][]float64{{1, 0}, {1}}, sparse.ErrBadShape},
		{"two", [][]float64{{1, 2}}, sparse.ErrNonBinary},
		{"negative", [][]float64{{-1, 0}}, sparse.ErrNonBinary},
		{"fraction", [][]float64{{0.5}}, sparse.ErrNonBinary},
		{"nan", [][]float64{{math.NaN()}}, sparse.ErrNonBinary},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sparse.NewFromDense(tc.dense)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNewFromRowMajor_DegenerateShapes covers 0×N and N×0 shapes, which a
// [][]T input cannot describe unambiguously.
func TestNewFromRowMajor_DegenerateShapes(t *testing.T) {
	h, err := sparse.NewFromRowMajor[uint8](0, 5, nil)
	require.NoError(t, err)
	require.Equal(t, 0, h.Rows())
	require.Equal(t, 5, h.Cols())
	for j := 0; j < 5; j++ {
		require.Empty(t, h.Col(j))
	}

	h, err = sparse.NewFromRowMajor[uint8](4, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 4, h.Rows())
	require.Equal(t, 0, h.Cols())
	require.Equal(t, 0, h.NNZ())

	_, err = sparse.NewFromRowMajor(2, 2, []int{1, 0, 1})
	require.ErrorIs(t, err, sparse.ErrBadShape)

	_, err = sparse.NewFromRowMajor[int](-1, 2, nil)
	require.ErrorIs(t, err, sparse.ErrBadShape)

	_, err = sparse.NewFromRowMajor(1, 2, []int{1, 3})
	require.ErrorIs(t, err, sparse.ErrNonBinary)
}

// TestNewFromCSR_Errors validates pointer, index and duplicate checks.
func TestNewFromCSR_Errors(t *testing.T) {
	tests := []struct {
		name   string
		rows   int
		cols   int
		rowPtr []int
		colIdx []int
		want   error
	}{
		{"negative rows", -1, 2, []int{0}, nil, sparse.ErrBadShape},
		{"short rowPtr", 2, 2, []int{0, 1}, []int{0}, sparse.ErrBadShape},
		{"nonzero start", 1, 2, []int{1, 1}, []int{0}, sparse.ErrBadShape},
		{"decreasing", 2, 2, []int{0, 2, 1}, []int{0, 1}, sparse.ErrBadShape},
		{"end mismatch", 1, 2, []int{0, 1}, []int{0, 1}, sparse.ErrBadShape},
		{"column too big", 1, 2, []int{0, 1}, []int{2}, sparse.ErrOutOfRange},
		{"column negative", 1, 2, []int{0, 1}, []int{-1}, sparse.ErrOutOfRange},
		{"duplicate", 1, 3, []int{0, 2}, []int{1, 1}, sparse.ErrDuplicateEntry},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sparse.NewFromCSR(tc.rows, tc.cols, tc.rowPtr, tc.colIdx)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNewFromCSR_UnsortedIsCanonicalized checks that storage is sorted and
// that the caller's slices are neither retained nor modified.
func TestNewFromCSR_UnsortedIsCanonicalized(t *testing.T) {
	rowPtr := []int{0, 3, 4}
	colIdx := []int{3, 0, 2, 1}
	h, err := sparse.NewFromCSR(2, 4, rowPtr, colIdx)
	require.NoError(t, err)

	require.Equal(t, []int{0, 2, 3}, h.Row(0))
	require.Equal(t, []int{3, 0, 2, 1}, colIdx, "input must be left untouched")

	rp, ci := h.ToCSR()
	require.Equal(t, []int{0, 3, 4}, rp)
	require.Equal(t, []int{0, 2, 3, 1}, ci)
}

// TestNewFromCSC_MatchesCSR builds the same matrix from both compressed forms.
func TestNewFromCSC_MatchesCSR(t *testing.T) {
	// [1 1 0]
	// [0 1 1]
	fromCSR, err := sparse.NewFromCSR(2, 3, []int{0, 2, 4}, []int{0, 1, 1, 2})
	require.NoError(t, err)
	fromCSC, err := sparse.NewFromCSC(2, 3, []int{0, 1, 3, 4}, []int{0, 0, 1, 1})
	require.NoError(t, err)
	require.True(t, fromCSR.Equal(fromCSC))

	_, err = sparse.NewFromCSC(2, 3, []int{0, 1, 3, 4}, []int{0, 0, 2, 1})
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, err = sparse.NewFromCSC(2, 3, []int{0, 2, 3, 4}, []int{1, 1, 0, 1})
	require.ErrorIs(t, err, sparse.ErrDuplicateEntry)
}

// TestNewFromEntries exercises unordered input and its failure modes.
func TestNewFromEntries(t *testing.T) {
	h, err := sparse.NewFromEntries(2, 3, []sparse.Entry{{1, 2}, {0, 1}, {1, 1}, {0, 0}})
	require.NoError(t, err)
	require.Equal(t, []sparse.Entry{{0, 0}, {0, 1}, {1, 1}, {1, 2}}, h.Entries())

	_, err = sparse.NewFromEntries(2, 3, []sparse.Entry{{2, 0}})
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, err = sparse.NewFromEntries(2, 3, []sparse.Entry{{0, 1}, {0, 1}})
	require.ErrorIs(t, err, sparse.ErrDuplicateEntry)

	_, err = sparse.NewFromEntries(2, -3, nil)
	require.ErrorIs(t, err, sparse.ErrBadShape)
}
