// SPDX-License-Identifier: MIT

// Package tanner derives the Tanner graph of a parity-check matrix: the
// bipartite graph joining every check (row) to the bits (columns) it
// constrains.
//
// The graph is an edge arena. Each non-zero of H becomes one Edge addressed
// by an integer id; checks and bits refer to edges by id only, so the cyclic
// check↔bit relation needs no owning pointers in either direction.
//
//	edge id  = position of the entry in row-major (CSR) order
//	check c  → ids CheckSpan(c) = [lo, hi), contiguous, ascending bit
//	bit b    → ids BitEdges(b), ascending check
//
// Message-passing decoders keep per-edge state in flat []float64 slices
// indexed by edge id; the contiguous check spans let a check update work on
// plain sub-slices.
//
// A Graph is immutable and safe to share between decoders and goroutines.
package tanner
