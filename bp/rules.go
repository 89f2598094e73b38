// SPDX-License-Identifier: MIT
// Package bp: check-node update rules and LLR helpers.
//
// A rule turns the bit→check messages of one check into its check→bit
// answers. Every answer excludes the receiving edge's own input.
//
//	SumProduct: out_k = s · 2·atanh( Π_{j≠k} tanh(in_j / 2) )
//	MinSum:     out_k = s · α · Π_{j≠k} sign(in_j) · min_{j≠k} |in_j|
//
// where s = −1 if the syndrome bit is 1. For MinSum, in_j ≤ 0 counts as
// negative, and α is the scaling factor (or 1 − 2^(−it) in adaptive mode).
//
// The span variants compute every answer of a check in O(degree) using
// forward/backward products (SumProduct) or the two smallest magnitudes
// (MinSum). The single-edge variants serve the serial sweep.

package bp

import "math"

// spanRule fills out[k] for every edge of one check.
type spanRule func(in, out []float64, flip bool, alpha float64)

// edgeRule returns the answer to edge skip of one check.
type edgeRule func(in []float64, skip int, flip bool, alpha float64) float64

// checkRule binds both shapes of one Method.
type checkRule struct {
	span spanRule
	edge edgeRule
}

// rules is indexed by Method.
var rules = [...]checkRule{
	SumProduct: {span: sumProductSpan, edge: sumProductEdge},
	MinSum:     {span: minSumSpan, edge: minSumEdge},
}

// clampLLR saturates x to [−MaxLLR, MaxLLR].
func clampLLR(x float64) float64 {
	switch {
	case x > MaxLLR:
		return MaxLLR
	case x < -MaxLLR:
		return -MaxLLR
	default:
		return x
	}
}

// priorLLR returns log((1−p)/p), saturated. p = 0 gives +MaxLLR, p = 1 gives −MaxLLR.
func priorLLR(p float64) float64 {
	switch {
	case p <= 0:
		return MaxLLR
	case p >= 1:
		return -MaxLLR
	}

	return clampLLR(math.Log((1 - p) / p))
}

// hardDecision maps a posterior LLR to a bit. Zero decides 1.
func hardDecision(llr float64) uint8 {
	if llr <= 0 {
		return 1
	}

	return 0
}

// tanhToLLR maps a tanh product t ∈ [−1,1] back to a saturated LLR.
func tanhToLLR(t float64, flip bool) float64 {
	v := math.Log((1 + t) / (1 - t))
	if flip {
		v = -v
	}

	return clampLLR(v)
}

func sumProductSpan(in, out []float64, flip bool, _ float64) {
	prod := 1.0
	for k, m := range in {
		out[k] = prod
		prod *= math.Tanh(m / 2)
	}
	prod = 1.0
	for k := len(in) - 1; k >= 0; k-- {
		out[k] = tanhToLLR(out[k]*prod, flip)
		prod *= math.Tanh(in[k] / 2)
	}
}

func sumProductEdge(in []float64, skip int, flip bool, _ float64) float64 {
	prod := 1.0
	for k, m := range in {
		if k != skip {
			prod *= math.Tanh(m / 2)
		}
	}

	return tanhToLLR(prod, flip)
}

func minSumSpan(in, out []float64, flip bool, alpha float64) {
	var (
		min1, min2 = math.Inf(1), math.Inf(1)
		argMin     = -1
		negative   = flip
		a          float64
	)
	for k, m := range in {
		if m <= 0 {
			negative = !negative
		}
		a = math.Abs(m)
		if a < min1 {
			min2, min1, argMin = min1, a, k
		} else if a < min2 {
			min2 = a
		}
	}

	for k, m := range in {
		mag := min1
		if k == argMin {
			mag = min2
		}
		neg := negative
		if m <= 0 {
			neg = !neg // remove own sign
		}
		out[k] = signedScaled(mag, neg, alpha)
	}
}

func minSumEdge(in []float64, skip int, flip bool, alpha float64) float64 {
	mag := math.Inf(1)
	negative := flip
	for k, m := range in {
		if k == skip {
			continue
		}
		if m <= 0 {
			negative = !negative
		}
		if a := math.Abs(m); a < mag {
			mag = a
		}
	}

	return signedScaled(mag, negative, alpha)
}

func signedScaled(mag float64, negative bool, alpha float64) float64 {
	v := alpha * mag
	if negative {
		v = -v
	}

	return clampLLR(v)
}

// minSumAlpha returns the scaling factor for iteration it (1-based).
func minSumAlpha(scaling float64, it int) float64 {
	if scaling == 0 {
		return 1 - math.Pow(2, -float64(it))
	}

	return scaling
}
