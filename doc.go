// Package ldpc is a belief-propagation decoding toolkit for binary LDPC
// codes, classical and quantum alike: hand it a parity-check matrix, per-bit
// error probabilities and a syndrome, and it returns the most likely error
// pattern.
//
// 🚀 What is inside?
//
//	sparse/ — immutable binary matrices in CSR+CSC form, dense/CSR/CSC/
//	          entry-list constructors, GF(2) products, gonum interop and
//	          bit-vector helpers
//	tanner/ — the bipartite check/bit graph over an edge arena, syndrome
//	          evaluation and girth
//	bp/     — the decoder: sum-product and min-sum rules, parallel, serial
//	          and random-serial schedules, functional options, YAML config
//	          and Prometheus metrics
//	codes/  — repetition, ring and Hamming parity-check matrices for tests
//	          and experiments
//
// ✨ Guarantees
//
//   - Deterministic: parallel decoding is bit-identical for any worker
//     count; random serial decoding reproduces for a fixed seed.
//   - Validated on write: a constructed decoder is always validly
//     configured, and errors are errors.Is-matchable sentinels.
//   - Saturated arithmetic: no ±Inf or NaN ever reaches a message.
//
// Quick example, a single flip in a 3-bit repetition code:
//
//	h, _ := codes.Repetition(3)          // checks: b0⊕b1, b1⊕b2
//	dec, _ := bp.NewDecoder(h, bp.WithErrorRate(0.1))
//	res, _ := dec.Decode([]uint8{1, 1})  // both checks fire
//	// res.Decoding == [0 1 0], res.Converged == true
//
//	go get github.com/katalvlaran/ldpc
package ldpc
