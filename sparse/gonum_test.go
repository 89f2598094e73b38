// SPDX-License-Identifier: MIT
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/ldpc/sparse"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestGonum_RoundTrip converts to gonum and back.
func TestGonum_RoundTrip(t *testing.T) {
	h := mustMatrix(t, [][]int{
		{1, 0, 1, 0, 1},
		{0, 1, 1, 0, 0},
		{0, 0, 0, 1, 1},
	})

	d, err := h.ToGonum()
	require.NoError(t, err)
	r, c := d.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 5, c)
	require.Equal(t, 1.0, d.At(0, 4))
	require.Equal(t, 0.0, d.At(2, 0))

	back, err := sparse.FromGonum(d)
	require.NoError(t, err)
	require.True(t, back.Equal(h))

	// A transposed view is still a mat.Matrix.
	ht, err := sparse.FromGonum(d.T())
	require.NoError(t, err)
	require.Equal(t, 5, ht.Rows())
	require.Equal(t, h.Col(2), ht.Row(2))
}

func TestGonum_Errors(t *testing.T) {
	_, err := sparse.FromGonum(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)

	_, err = sparse.FromGonum(mat.NewDense(1, 2, []float64{1, 0.25}))
	require.ErrorIs(t, err, sparse.ErrNonBinary)

	empty, err := sparse.NewFromRowMajor[uint8](0, 4, nil)
	require.NoError(t, err)
	_, err = empty.ToGonum()
	require.ErrorIs(t, err, sparse.ErrBadShape)
}
