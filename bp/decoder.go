// SPDX-License-Identifier: MIT
// Package bp: decoder construction, accessors and validated setters.

package bp

import (
	"fmt"
	"math/rand"
	"slices"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/ldpc/sparse"
	"github.com/katalvlaran/ldpc/tanner"
)

var log = logging.Logger("bp")

// Decoder is a configured belief-propagation engine bound to one Tanner graph.
// Create one with NewDecoder, NewDecoderFromDense or NewDecoderFromGraph.
type Decoder struct {
	graph *tanner.Graph

	method   Method
	rule     checkRule
	schedule Schedule
	maxIter  int
	scaling  float64
	random   bool
	seed     int64
	workers  int
	metrics  *Metrics

	channel []float64 // per-bit error probability
	prior   []float64 // saturated log((1-p)/p)
	order   []int     // serial sweep order

	// per-decode working state
	msg        messages
	posterior  []float64
	decoding   []uint8
	syndrome   []uint8
	implied    []uint8
	sweep      []int
	rng        *rand.Rand
	state      State
	iterations int
	converged  bool
}

// NewDecoder builds the Tanner graph of h and a decoder over it.
//
// Errors: ErrNilMatrix, ErrMissingChannel, ErrChannelLength,
// ErrInvalidScheduleOrder, or the first violation recorded by an Option;
// all wrap ErrInvalidConfig.
//
// Complexity: O(nnz(h)) time and memory.
func NewDecoder(h *sparse.BinaryMatrix, opts ...Option) (*Decoder, error) {
	if h == nil {
		return nil, bpErrorf("NewDecoder", "%w", ErrNilMatrix)
	}
	g, err := tanner.New(h)
	if err != nil {
		return nil, bpErrorf("NewDecoder", "%w: %v", ErrInvalidMatrix, err)
	}

	return newDecoder("NewDecoder", g, opts)
}

// NewDecoderFromDense accepts a dense 0/1 matrix in any numeric element type.
// Matrix errors from package sparse are wrapped in ErrInvalidMatrix and stay
// matchable with errors.Is.
func NewDecoderFromDense[T sparse.Bit](dense [][]T, opts ...Option) (*Decoder, error) {
	h, err := sparse.NewFromDense(dense)
	if err != nil {
		return nil, fmt.Errorf("NewDecoderFromDense: %w: %w", ErrInvalidMatrix, err)
	}

	return NewDecoder(h, opts...)
}

// NewDecoderFromGraph builds a decoder over an existing graph. The graph is
// never mutated, so any number of decoders may share it.
func NewDecoderFromGraph(g *tanner.Graph, opts ...Option) (*Decoder, error) {
	if g == nil {
		return nil, bpErrorf("NewDecoderFromGraph", "%w", ErrNilMatrix)
	}

	return newDecoder("NewDecoderFromGraph", g, opts)
}

func newDecoder(method string, g *tanner.Graph, opts []Option) (*Decoder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, fmt.Errorf("%s: %w", method, o.err)
	}

	n := g.BitCount()
	channel := o.channel
	switch {
	case channel != nil:
		if len(channel) != n {
			return nil, bpErrorf(method, "len=%d, bits=%d: %w", len(channel), n, ErrChannelLength)
		}
	case o.hasRate:
		channel = make([]float64, n)
		for i := range channel {
			channel[i] = o.errorRate
		}
	default:
		return nil, bpErrorf(method, "%w", ErrMissingChannel)
	}

	order := o.order
	if order == nil {
		order = identityOrder(n)
	} else if err := checkOrder(method, order, n); err != nil {
		return nil, err
	}

	maxIter := o.maxIter
	if maxIter == DefaultMaxIter {
		maxIter = max(n, 1)
	}

	d := &Decoder{
		graph:     g,
		method:    o.method,
		rule:      rules[o.method],
		schedule:  o.schedule,
		maxIter:   maxIter,
		scaling:   o.scaling,
		random:    o.randomSerial,
		seed:      o.seed,
		workers:   o.workers,
		metrics:   o.metrics,
		channel:   channel,
		prior:     make([]float64, n),
		order:     order,
		msg:       newMessages(g.EdgeCount()),
		posterior: make([]float64, n),
		decoding:  make([]uint8, n),
		syndrome:  make([]uint8, g.CheckCount()),
		implied:   make([]uint8, g.CheckCount()),
		sweep:     make([]int, n),
		state:     Idle,
	}
	d.refreshPrior()

	log.Debugf("decoder ready: checks=%d bits=%d edges=%d method=%s schedule=%s max_iter=%d workers=%d",
		g.CheckCount(), n, g.EdgeCount(), d.method, d.schedule, d.maxIter, d.workers)

	return d, nil
}

func (d *Decoder) refreshPrior() {
	for i, p := range d.channel {
		d.prior[i] = priorLLR(p)
	}
}

// Graph returns the shared read-only Tanner graph.
func (d *Decoder) Graph() *tanner.Graph { return d.graph }

// CheckCount returns the number of parity checks (syndrome length).
func (d *Decoder) CheckCount() int { return d.graph.CheckCount() }

// BitCount returns the number of bits (decoding length).
func (d *Decoder) BitCount() int { return d.graph.BitCount() }

func (d *Decoder) Method() Method { return d.method }
func (d *Decoder) Schedule() Schedule { return d.schedule }
func (d *Decoder) MaxIter() int { return d.maxIter }
func (d *Decoder) ScalingFactor() float64 { return d.scaling }
func (d *Decoder) RandomSerialSchedule() bool { return d.random }
func (d *Decoder) Seed() int64 { return d.seed }
func (d *Decoder) WorkerCount() int { return d.workers }

// ErrorChannel returns a copy of the per-bit error probabilities.
func (d *Decoder) ErrorChannel() []float64 { return slices.Clone(d.channel) }

// SerialScheduleOrder returns a copy of the configured serial order.
func (d *Decoder) SerialScheduleOrder() []int { return slices.Clone(d.order) }

// State reports where the last Decode stopped.
func (d *Decoder) State() State { return d.state }

// Iterations returns the iteration count of the last Decode.
func (d *Decoder) Iterations() int { return d.iterations }

// Converged reports whether the last Decode matched its syndrome.
func (d *Decoder) Converged() bool { return d.converged }

// Decoding returns a copy of the last hard decision.
func (d *Decoder) Decoding() []uint8 { return slices.Clone(d.decoding) }

// LogProbRatios returns a copy of the last posterior LLRs; positive favours 0.
func (d *Decoder) LogProbRatios() []float64 { return slices.Clone(d.posterior) }

// SetErrorChannel replaces the per-bit error probabilities.
func (d *Decoder) SetErrorChannel(p []float64) error {
	if len(p) != d.BitCount() {
		return bpErrorf("SetErrorChannel", "len=%d, bits=%d: %w", len(p), d.BitCount(), ErrChannelLength)
	}
	for i, v := range p {
		if checkProbability("SetErrorChannel", v) != nil {
			return bpErrorf("SetErrorChannel", "bit %d, p=%v: %w", i, v, ErrInvalidProbability)
		}
	}
	copy(d.channel, p)
	d.refreshPrior()

	return nil
}

// SetErrorRate assigns probability p to every bit.
func (d *Decoder) SetErrorRate(p float64) error {
	if err := checkProbability("SetErrorRate", p); err != nil {
		return err
	}
	for i := range d.channel {
		d.channel[i] = p
	}
	d.refreshPrior()

	return nil
}

// SetSerialScheduleOrder replaces the serial order; it must be a permutation
// of [0, BitCount()).
func (d *Decoder) SetSerialScheduleOrder(order []int) error {
	if err := checkOrder("SetSerialScheduleOrder", order, d.BitCount()); err != nil {
		return err
	}
	copy(d.order, order)

	return nil
}

func (d *Decoder) SetSchedule(s Schedule) error {
	if !s.valid() {
		return bpErrorf("SetSchedule", "%v: %w", s, ErrInvalidSchedule)
	}
	d.schedule = s

	return nil
}

// SetMethod switches the check rule; the rule functions are rebound here,
// not per message.
func (d *Decoder) SetMethod(m Method) error {
	if !m.valid() {
		return bpErrorf("SetMethod", "%v: %w", m, ErrInvalidMethod)
	}
	d.method = m
	d.rule = rules[m]

	return nil
}

func (d *Decoder) SetMaxIter(n int) error {
	if n <= 0 {
		return bpErrorf("SetMaxIter", "n=%d: %w", n, ErrInvalidMaxIter)
	}
	d.maxIter = n

	return nil
}

// SetScalingFactor follows WithScalingFactor: 0 selects the adaptive factor.
func (d *Decoder) SetScalingFactor(f float64) error {
	if err := checkScaling("SetScalingFactor", f); err != nil {
		return err
	}
	d.scaling = f

	return nil
}

func (d *Decoder) SetRandomSerialSchedule(on bool) { d.random = on }

func (d *Decoder) SetSeed(seed int64) { d.seed = seed }

func (d *Decoder) SetWorkerCount(n int) error {
	if n < 1 {
		return bpErrorf("SetWorkerCount", "n=%d: %w", n, ErrInvalidWorkers)
	}
	d.workers = n

	return nil
}
