// SPDX-License-Identifier: MIT
// Package bp: functional options for decoder construction.
//
// Shape-independent validation happens inside each With* option; the first
// violation is recorded and surfaced by NewDecoder, never by Decode.
// Shape-dependent checks (channel length, serial order permutation) run in
// NewDecoder once the bit count is known.

package bp

import (
	"math"
	"slices"
)

// Default configuration values.
const (
	DefaultMethod        = SumProduct
	DefaultSchedule      = Parallel
	DefaultScalingFactor = 1.0
	DefaultWorkers       = 1
	// DefaultMaxIter selects max_iter = bit count (at least 1).
	DefaultMaxIter = 0
)

// Option configures a Decoder at construction time.
type Option func(*Options)

// Options collects decoder settings. Build it through DefaultOptions and the
// With* helpers; the zero value is not a valid configuration.
type Options struct {
	method       Method
	maxIter      int // 0 selects the bit count
	scaling      float64
	schedule     Schedule
	order        []int // nil selects the identity order
	randomSerial bool
	seed         int64
	workers      int
	errorRate    float64
	hasRate      bool
	channel      []float64
	metrics      *Metrics

	// err keeps the first option violation.
	err error
}

// DefaultOptions returns the baseline configuration:
//   - SumProduct, Parallel
//   - max_iter = bit count
//   - ms_scaling_factor = 1
//   - identity serial order, no shuffling, seed 0
//   - one worker
//   - no channel: WithErrorRate or WithErrorChannel is required.
func DefaultOptions() Options {
	return Options{
		method:   DefaultMethod,
		maxIter:  DefaultMaxIter,
		scaling:  DefaultScalingFactor,
		schedule: DefaultSchedule,
		workers:  DefaultWorkers,
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// WithMethod selects the check-node rule.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if !m.valid() {
			o.fail(bpErrorf("WithMethod", "%v: %w", m, ErrInvalidMethod))
			return
		}
		o.method = m
	}
}

// WithMaxIter bounds the number of rounds per Decode; n must be > 0.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.fail(bpErrorf("WithMaxIter", "n=%d: %w", n, ErrInvalidMaxIter))
			return
		}
		o.maxIter = n
	}
}

// WithScalingFactor sets the min-sum scaling factor.
//
//	f > 0:  constant factor
//	f == 0: adaptive factor 1 − 2^(−iteration)
//	f < 0, NaN or ±Inf: ErrInvalidScaling
func WithScalingFactor(f float64) Option {
	return func(o *Options) {
		if err := checkScaling("WithScalingFactor", f); err != nil {
			o.fail(err)
			return
		}
		o.scaling = f
	}
}

// WithSchedule selects Parallel or Serial updates.
func WithSchedule(s Schedule) Option {
	return func(o *Options) {
		if !s.valid() {
			o.fail(bpErrorf("WithSchedule", "%v: %w", s, ErrInvalidSchedule))
			return
		}
		o.schedule = s
	}
}

// WithSerialScheduleOrder fixes the bit order of the serial sweep. It must be
// a permutation of [0, bit count); this is verified by NewDecoder.
func WithSerialScheduleOrder(order []int) Option {
	return func(o *Options) {
		o.order = slices.Clone(order)
		if o.order == nil {
			o.order = []int{}
		}
	}
}

// WithRandomSerialSchedule reshuffles the serial order every round.
func WithRandomSerialSchedule(on bool) Option {
	return func(o *Options) { o.randomSerial = on }
}

// WithSeed seeds the decoder-owned shuffle RNG. Seed 0 selects a fixed
// default seed, so runs stay reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithWorkers sets the goroutine fan-out of parallel rounds; n must be >= 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail(bpErrorf("WithWorkers", "n=%d: %w", n, ErrInvalidWorkers))
			return
		}
		o.workers = n
	}
}

// WithErrorRate assigns the same error probability p ∈ [0,1] to every bit.
// A later WithErrorChannel takes precedence.
func WithErrorRate(p float64) Option {
	return func(o *Options) {
		if err := checkProbability("WithErrorRate", p); err != nil {
			o.fail(err)
			return
		}
		o.errorRate = p
		o.hasRate = true
		o.channel = nil
	}
}

// WithErrorChannel assigns per-bit error probabilities. The slice is copied;
// its length is verified against the bit count by NewDecoder.
func WithErrorChannel(p []float64) Option {
	return func(o *Options) {
		for i, v := range p {
			if checkProbability("WithErrorChannel", v) != nil {
				o.fail(bpErrorf("WithErrorChannel", "bit %d, p=%v: %w", i, v, ErrInvalidProbability))
				return
			}
		}
		o.channel = slices.Clone(p)
		if o.channel == nil {
			o.channel = []float64{}
		}
		o.hasRate = false
	}
}

// WithMetrics attaches Prometheus collectors updated after every Decode.
// A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

func checkProbability(method string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return bpErrorf(method, "p=%v: %w", p, ErrInvalidProbability)
	}

	return nil
}

func checkScaling(method string, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return bpErrorf(method, "f=%v: %w", f, ErrInvalidScaling)
	}

	return nil
}

// checkOrder verifies that order is a permutation of [0, n).
func checkOrder(method string, order []int, n int) error {
	if len(order) != n {
		return bpErrorf(method, "len=%d, bits=%d: %w", len(order), n, ErrInvalidScheduleOrder)
	}
	seen := make([]bool, n)
	for i, b := range order {
		if b < 0 || b >= n || seen[b] {
			return bpErrorf(method, "position %d holds %d: %w", i, b, ErrInvalidScheduleOrder)
		}
		seen[b] = true
	}

	return nil
}
