// SPDX-License-Identifier: MIT
// Package bp: parallel and serial update schedules.
//
// Parallel round:
//
//	bit→check  (fan out over bits)   toCheck[e] = prior + Σ_{e'≠e} toBit[e']
//	check→bit  (fan out over checks) rule.span per check window
//	decision   (fan out over bits)   posterior = prior + Σ toBit
//
// Each goroutine writes only the messages of the nodes in its contiguous
// index range, and every sum runs in the node's fixed edge order. Results are
// therefore bit-identical for every worker count.
//
// Serial round: for each bit b in sweep order, every check message into b is
// recomputed from the current bit→check messages, then b's own outgoing
// messages are refreshed before the next bit runs.

package bp

import "golang.org/x/sync/errgroup"

// rounds is indexed by Schedule.
var rounds = [...]func(*Decoder, float64){
	Parallel: (*Decoder).parallelRound,
	Serial:   (*Decoder).serialRound,
}

// fanOut splits [0, n) into at most d.workers contiguous chunks and runs fn
// on each; it returns after every chunk is done.
func (d *Decoder) fanOut(n int, fn func(lo, hi int)) {
	w := min(d.workers, n)
	if w <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + w - 1) / w
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // workers never fail
}

func (d *Decoder) parallelRound(alpha float64) {
	n, m := d.graph.BitCount(), d.graph.CheckCount()

	d.fanOut(n, d.bitToCheck)
	d.fanOut(m, func(lo, hi int) { d.checkToBit(lo, hi, alpha) })
	d.fanOut(n, d.decide)
}

// bitToCheck refreshes the outgoing messages of bits [lo, hi) with a forward
// prefix pass and a backward suffix pass over each bit's edges.
func (d *Decoder) bitToCheck(lo, hi int) {
	for b := lo; b < hi; b++ {
		ids := d.graph.BitEdges(b)
		sum := d.prior[b]
		for _, id := range ids {
			d.msg.toCheck[id] = sum
			sum += d.msg.toBit[id]
		}
		d.suffixBit(ids)
	}
}

// suffixBit adds the suffix sums of ids to their prefix values and saturates.
func (d *Decoder) suffixBit(ids []int) {
	sum := 0.0
	for k := len(ids) - 1; k >= 0; k-- {
		id := ids[k]
		d.msg.toCheck[id] = clampLLR(d.msg.toCheck[id] + sum)
		sum += d.msg.toBit[id]
	}
}

func (d *Decoder) checkToBit(lo, hi int, alpha float64) {
	for c := lo; c < hi; c++ {
		in, out := d.msg.checkWindow(d.graph, c)
		d.rule.span(in, out, d.syndrome[c] == 1, alpha)
	}
}

func (d *Decoder) decide(lo, hi int) {
	for b := lo; b < hi; b++ {
		sum := d.prior[b]
		for _, id := range d.graph.BitEdges(b) {
			sum += d.msg.toBit[id]
		}
		d.posterior[b] = sum
		d.decoding[b] = hardDecision(sum)
	}
}

func (d *Decoder) serialRound(alpha float64) {
	if d.random {
		shuffleInPlace(d.sweep, d.rng)
	}

	for _, b := range d.sweep {
		var (
			ids = d.graph.BitEdges(b)
			sum = d.prior[b]
		)
		for _, id := range ids {
			c := d.graph.Edge(id).Check
			lo, hi := d.graph.CheckSpan(c)
			// b owns exactly one edge in this window, the skipped one.
			d.msg.toBit[id] = d.rule.edge(d.msg.toCheck[lo:hi], id-lo, d.syndrome[c] == 1, alpha)
			d.msg.toCheck[id] = sum
			sum += d.msg.toBit[id]
		}
		d.posterior[b] = sum
		d.decoding[b] = hardDecision(sum)
		d.suffixBit(ids)
	}
}
