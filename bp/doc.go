// SPDX-License-Identifier: MIT

// Package bp implements belief-propagation (BP) decoding of binary LDPC
// codes: given a parity-check matrix H, per-bit channel error probabilities
// and an observed syndrome s, it searches for the most likely error pattern e
// with H·e = s (mod 2).
//
// 🚀 How it works
//
//	Every edge of the Tanner graph carries two log-likelihood ratios (LLRs):
//	bit→check and check→bit. One round of Decode
//	  1. sends each bit's prior plus all *other* incoming check messages to
//	     each of its checks (extrinsic exclusion),
//	  2. lets each check answer every bit from its *other* bits with the
//	     configured rule (SumProduct: tanh product; MinSum: sign × min),
//	  3. hard-decides every bit from prior + all incoming messages
//	     (posterior ≤ 0 ⇒ 1),
//	  4. stops as soon as the hard decision reproduces s.
//
// ✨ Schedules
//   - Parallel: synchronous halves, fanned out over WorkerCount goroutines.
//     Each node sums its own edges in a fixed order, so the result is
//     bit-identical for any worker count.
//   - Serial: bit by bit in SerialScheduleOrder; every update is visible to
//     the next one. With RandomSerialSchedule the order is reshuffled every
//     round from the decoder's own seeded *rand.Rand, re-seeded per Decode.
//
// Non-convergence is an outcome, not an error: Result.Converged reports it
// and Result.Decoding still holds the last hard decision.
//
// ⚙️ Usage:
//
//	h, _ := codes.Repetition(3)
//	dec, err := bp.NewDecoder(h, bp.WithErrorRate(0.1))
//	if err != nil { ... }
//	res, err := dec.Decode([]uint8{1, 1}) // res.Decoding == [0 1 0]
//
// Configuration errors (sentinels under ErrInvalidConfig) are raised by
// NewDecoder and by the Set* methods, never by Decode. Decode only fails on
// a malformed syndrome (ErrSyndromeLength, ErrInvalidSyndrome).
//
// Numeric policy: LLRs are float64 and saturate at ±MaxLLR, so probability 0
// or 1 priors and degree-one checks never produce ±Inf.
//
// Concurrency: a Decoder is not safe for concurrent Decode calls. Decoders
// built with NewDecoderFromGraph may share one read-only *tanner.Graph.
package bp
