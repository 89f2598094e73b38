// SPDX-License-Identifier: MIT

package tanner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ldpc/sparse"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNilMatrix is returned when New receives a nil matrix.
	ErrNilMatrix = errors.New("tanner: matrix is nil")

	// ErrDimensionMismatch is returned when a vector length does not match
	// BitCount or CheckCount.
	ErrDimensionMismatch = errors.New("tanner: dimension mismatch")
)

// Edge joins one check to one bit (a single non-zero of H).
type Edge struct {
	Check int // row index in H
	Bit   int // column index in H
}

// Graph is the Tanner graph of a parity-check matrix.
type Graph struct {
	h *sparse.BinaryMatrix

	edges    []Edge
	checkPtr []int // len checks+1; check c owns edge ids [checkPtr[c], checkPtr[c+1])
	bitPtr   []int // len bits+1; bit b owns bitEdges[bitPtr[b]:bitPtr[b+1]]
	bitEdges []int // edge ids grouped by bit, ascending check within a bit
	checkIDs []int // identity 0..E-1, backing store for CheckEdges views
}

// New builds the Tanner graph of h in O(checks + bits + nnz).
// The graph keeps a reference to h; BinaryMatrix is immutable, so sharing is safe.
func New(h *sparse.BinaryMatrix) (*Graph, error) {
	if h == nil {
		return nil, ErrNilMatrix
	}
	m, n, e := h.Rows(), h.Cols(), h.NNZ()

	g := &Graph{
		h:        h,
		edges:    make([]Edge, 0, e),
		checkPtr: make([]int, m+1),
		bitPtr:   make([]int, n+1),
		bitEdges: make([]int, e),
		checkIDs: make([]int, e),
	}

	// Stage 1: edge arena in row-major order.
	for c := 0; c < m; c++ {
		for _, b := range h.Row(c) {
			g.edges = append(g.edges, Edge{Check: c, Bit: b})
		}
		g.checkPtr[c+1] = len(g.edges)
	}
	for id := range g.checkIDs {
		g.checkIDs[id] = id
	}

	// Stage 2: bit-side index. Checks are scanned in ascending order, so each
	// bit's list comes out ordered by check.
	for b := 0; b < n; b++ {
		g.bitPtr[b+1] = g.bitPtr[b] + h.ColDegree(b)
	}
	next := make([]int, n)
	copy(next, g.bitPtr[:n])
	for id, ed := range g.edges {
		g.bitEdges[next[ed.Bit]] = id
		next[ed.Bit]++
	}

	return g, nil
}

// Matrix returns the parity-check matrix the graph was built from.
func (g *Graph) Matrix() *sparse.BinaryMatrix { return g.h }

// CheckCount returns the number of checks (rows of H).
func (g *Graph) CheckCount() int { return len(g.checkPtr) - 1 }

// BitCount returns the number of bits (columns of H).
func (g *Graph) BitCount() int { return len(g.bitPtr) - 1 }

// EdgeCount returns the number of edges (non-zeros of H).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns the endpoints of edge id.
func (g *Graph) Edge(id int) Edge { return g.edges[id] }

// CheckSpan returns the half-open edge id range [lo, hi) of check c.
func (g *Graph) CheckSpan(c int) (lo, hi int) { return g.checkPtr[c], g.checkPtr[c+1] }

// CheckEdges returns the edge ids of check c in ascending bit order.
// The slice is a read-only view.
func (g *Graph) CheckEdges(c int) []int {
	lo, hi := g.checkPtr[c], g.checkPtr[c+1]
	return g.checkIDs[lo:hi:hi]
}

// BitEdges returns the edge ids of bit b in ascending check order.
// The slice is a read-only view.
func (g *Graph) BitEdges(b int) []int {
	lo, hi := g.bitPtr[b], g.bitPtr[b+1]
	return g.bitEdges[lo:hi:hi]
}

// CheckDegree returns the number of bits in check c.
func (g *Graph) CheckDegree(c int) int { return g.checkPtr[c+1] - g.checkPtr[c] }

// BitDegree returns the number of checks on bit b.
func (g *Graph) BitDegree(b int) int { return g.bitPtr[b+1] - g.bitPtr[b] }

// Syndrome writes H·bits mod 2 into dst. Any non-zero bit counts as a one.
// Returns ErrDimensionMismatch if len(bits) != BitCount or len(dst) != CheckCount.
// Complexity: O(checks + edges), no allocations.
func (g *Graph) Syndrome(bits, dst []uint8) error {
	if len(bits) != g.BitCount() {
		return fmt.Errorf("Syndrome: len(bits)=%d, want %d: %w", len(bits), g.BitCount(), ErrDimensionMismatch)
	}
	if len(dst) != g.CheckCount() {
		return fmt.Errorf("Syndrome: len(dst)=%d, want %d: %w", len(dst), g.CheckCount(), ErrDimensionMismatch)
	}
	for c := range dst {
		var parity uint8
		for id := g.checkPtr[c]; id < g.checkPtr[c+1]; id++ {
			if bits[g.edges[id].Bit] != 0 {
				parity ^= 1
			}
		}
		dst[c] = parity
	}

	return nil
}
