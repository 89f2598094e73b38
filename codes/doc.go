// SPDX-License-Identifier: MIT

// Package codes builds canonical parity-check matrices for small code
// families used as fixtures and baselines for the bp decoder:
//
//	Repetition(n) — (n−1)×n, check i constrains bits i and i+1
//	Ring(n)       — n×n, check i constrains bits i and (i+1) mod n
//	Hamming(r)    — r×(2^r−1), column j holds the binary digits of j+1
//
// Constructors are pure combinatorics: no decoding logic, no randomness.
// Each returns a *sparse.BinaryMatrix or ErrTooSmall, and entries are emitted
// in a stable order so repeated calls yield identical matrices.
package codes
