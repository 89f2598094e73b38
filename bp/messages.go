// SPDX-License-Identifier: MIT
// Package bp: per-edge message store.
//
// Both directions live in flat []float64 arrays indexed by tanner edge id.
// Edges are laid out check-major, so the messages of check c occupy the
// contiguous window [lo, hi) = graph.CheckSpan(c) and a check update is a
// pure function over two slices.

package bp

import "github.com/katalvlaran/ldpc/tanner"

// messages holds the bit→check and check→bit LLR of every edge.
type messages struct {
	toCheck []float64
	toBit   []float64
}

func newMessages(edges int) messages {
	return messages{
		toCheck: make([]float64, edges),
		toBit:   make([]float64, edges),
	}
}

// reset seeds every bit→check message with its bit's prior and clears every
// check→bit message.
func (m *messages) reset(g *tanner.Graph, prior []float64) {
	for id := range m.toCheck {
		m.toCheck[id] = prior[g.Edge(id).Bit]
		m.toBit[id] = 0
	}
}

// checkWindow returns the two message windows of check c.
func (m *messages) checkWindow(g *tanner.Graph, c int) (in, out []float64) {
	lo, hi := g.CheckSpan(c)

	return m.toCheck[lo:hi:hi], m.toBit[lo:hi:hi]
}
