// SPDX-License-Identifier: MIT
// Package bp: the Decode loop.

package bp

import "slices"

// Decode searches for an error pattern e with H·e = syndrome (mod 2).
//
// Every call starts from scratch: messages, iteration counter and the
// shuffle RNG are reset, so equal inputs on an equally configured decoder
// always give equal results. The loop stops at the first round whose hard
// decision reproduces the syndrome, or after MaxIter rounds.
//
// Errors: ErrSyndromeLength (wraps ErrDimensionMismatch), ErrInvalidSyndrome.
// Non-convergence is reported by Result.Converged, not by an error.
//
// Complexity: O(MaxIter · edges) time, no allocation beyond Result.Decoding.
func (d *Decoder) Decode(syndrome []uint8) (Result, error) {
	if len(syndrome) != d.graph.CheckCount() {
		return Result{}, bpErrorf("Decode", "len=%d, checks=%d: %w",
			len(syndrome), d.graph.CheckCount(), ErrSyndromeLength)
	}
	for i, s := range syndrome {
		if s > 1 {
			return Result{}, bpErrorf("Decode", "index %d holds %d: %w", i, s, ErrInvalidSyndrome)
		}
	}

	d.state = Initializing
	copy(d.syndrome, syndrome)
	d.msg.reset(d.graph, d.prior)
	copy(d.posterior, d.prior)
	for b, p := range d.prior {
		d.decoding[b] = hardDecision(p)
	}
	copy(d.sweep, d.order)
	d.rng = rngFromSeed(d.seed)
	d.iterations, d.converged = 0, false

	d.state = Iterating
	round := rounds[d.schedule]
	for it := 1; it <= d.maxIter; it++ {
		d.iterations = it
		round(d, d.alpha(it))
		if d.satisfied() {
			d.converged = true
			break
		}
	}

	if d.converged {
		d.state = Converged
	} else {
		d.state = MaxIterExceeded
	}
	d.metrics.observe(d.method, d.schedule, d.iterations, d.converged)
	log.Debugf("decode done: method=%s schedule=%s iterations=%d converged=%t",
		d.method, d.schedule, d.iterations, d.converged)

	return Result{
		Decoding:   slices.Clone(d.decoding),
		Converged:  d.converged,
		Iterations: d.iterations,
	}, nil
}

// alpha is the min-sum scaling for iteration it; SumProduct ignores it.
func (d *Decoder) alpha(it int) float64 {
	if d.method != MinSum {
		return 1
	}

	return minSumAlpha(d.scaling, it)
}

// satisfied reports H·decoding == syndrome.
func (d *Decoder) satisfied() bool {
	if err := d.graph.Syndrome(d.decoding, d.implied); err != nil {
		return false // lengths are fixed at construction
	}

	return slices.Equal(d.implied, d.syndrome)
}
