// SPDX-License-Identifier: MIT
// Package: ldpc/codes
//
// codes.go: Repetition, Ring and Hamming constructors.
//
// Contract:
//   • Parameters below the family minimum return ErrTooSmall (wrapped with the
//     constructor name); nothing panics.
//   • Entries are generated row by row in ascending order and handed to
//     sparse.NewFromEntries, the single place that validates layout.
//
// Complexity:
//   • Repetition/Ring: O(n). Hamming: O(r·2^r).

package codes

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ldpc/sparse"
)

// ErrTooSmall indicates a size parameter below the family minimum.
var ErrTooSmall = errors.New("codes: parameter too small")

const (
	methodRepetition = "Repetition"
	methodRing       = "Ring"
	methodHamming    = "Hamming"

	minRepetitionBits = 2
	minRingBits       = 2
	minHammingRank    = 2

	// maxHammingRank keeps 2^r−1 columns well inside int on every platform.
	maxHammingRank = 24
)

// Repetition returns the (n−1)×n parity-check matrix of the length-n
// repetition code: check i enforces bit i == bit i+1.
func Repetition(n int) (*sparse.BinaryMatrix, error) {
	if n < minRepetitionBits {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRepetition, n, minRepetitionBits, ErrTooSmall)
	}
	entries := make([]sparse.Entry, 0, 2*(n-1))
	for i := 0; i < n-1; i++ {
		entries = append(entries, sparse.Entry{Row: i, Col: i}, sparse.Entry{Row: i, Col: i + 1})
	}

	h, err := sparse.NewFromEntries(n-1, n, entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRepetition, err)
	}

	return h, nil
}

// Ring returns the n×n parity-check matrix of the closed-loop repetition
// code: check i enforces bit i == bit (i+1) mod n. For n == 2 both checks
// coincide, and the matrix has two identical rows.
func Ring(n int) (*sparse.BinaryMatrix, error) {
	if n < minRingBits {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingBits, ErrTooSmall)
	}
	entries := make([]sparse.Entry, 0, 2*n)
	for i := 0; i < n; i++ {
		entries = append(entries, sparse.Entry{Row: i, Col: i}, sparse.Entry{Row: i, Col: (i + 1) % n})
	}

	h, err := sparse.NewFromEntries(n, n, entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRing, err)
	}

	return h, nil
}

// Hamming returns the r×(2^r−1) parity-check matrix of the Hamming code of
// rank r. Column j is the binary expansion of j+1, least significant bit in
// row 0, so every non-zero r-bit pattern appears exactly once.
func Hamming(r int) (*sparse.BinaryMatrix, error) {
	if r < minHammingRank {
		return nil, fmt.Errorf("%s: r=%d < min=%d: %w", methodHamming, r, minHammingRank, ErrTooSmall)
	}
	if r > maxHammingRank {
		return nil, fmt.Errorf("%s: r=%d > max=%d: %w", methodHamming, r, maxHammingRank, sparse.ErrBadShape)
	}
	n := 1<<r - 1

	entries := make([]sparse.Entry, 0, r*(n+1)/2)
	for j := 0; j < n; j++ {
		for _, row := range sparse.DecimalToBinarySparse(j+1, r) {
			entries = append(entries, sparse.Entry{Row: row, Col: j})
		}
	}

	h, err := sparse.NewFromEntries(r, n, entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodHamming, err)
	}

	return h, nil
}
