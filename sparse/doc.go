// SPDX-License-Identifier: MIT

// Package sparse provides BinaryMatrix, an immutable sparse matrix over GF(2)
// tuned for parity-check matrices of LDPC codes.
//
// 🚀 What is it for?
//
//	A parity-check matrix H has one row per check and one column per bit.
//	Belief propagation only ever walks the non-zeros of H, so storage and
//	neighbor enumeration must scale with the number of ones, not rows×cols:
//	  • Row(i) lists the bits constrained by check i   (O(row degree))
//	  • Col(j) lists the checks that constrain bit j    (O(column degree))
//
// ✨ Key features:
//   - builds from dense ([][]T or flat row-major) and sparse (CSR, CSC,
//     coordinate list) inputs, plus gonum mat.Matrix interop
//   - exact round trips: ToDense/ToRowMajor/ToCSR/ToCSC/ToGonum invert the
//     matching constructor for every shape, including 0×N and N×0
//   - canonical storage: column indices ascend within each row and row
//     indices ascend within each column, so iteration order is stable
//   - H·x mod 2 (MulVec) for syndrome computation
//
// ⚙️ Usage:
//
//	h, err := sparse.NewFromDense([][]int{
//	  {1, 1, 0},
//	  {0, 1, 1},
//	})
//	if err != nil { ... }
//	s, _ := h.MulVec([]uint8{0, 1, 0}) // [1 1]
//
// Errors are package-level sentinels (ErrBadShape, ErrOutOfRange,
// ErrNonBinary, ErrDuplicateEntry, ErrDimensionMismatch, ErrNilMatrix);
// branch on them with errors.Is.
//
// A BinaryMatrix is never mutated after construction and is safe for
// concurrent readers.
package sparse
