// SPDX-License-Identifier: MIT
// Package bp: enumerations, decode result and numeric limits.

package bp

import (
	"fmt"
	"strings"
)

// MaxLLR is the saturation bound applied to every prior and message.
const MaxLLR = 1000.0

// Method selects the check-node update rule.
type Method int

const (
	// SumProduct is the exact tanh-product rule.
	SumProduct Method = iota
	// MinSum approximates SumProduct by sign × smallest magnitude × scaling.
	MinSum
)

// String returns the canonical name of m.
func (m Method) String() string {
	switch m {
	case SumProduct:
		return "sum_product"
	case MinSum:
		return "min_sum"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

func (m Method) valid() bool { return m == SumProduct || m == MinSum }

// ParseMethod maps a textual rule name onto a Method. Accepted (any case):
// "sum_product", "product_sum", "ps", "min_sum", "minimum_sum", "ms".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sum_product", "product_sum", "ps":
		return SumProduct, nil
	case "min_sum", "minimum_sum", "ms":
		return MinSum, nil
	}

	return 0, bpErrorf("ParseMethod", "%q: %w", s, ErrInvalidMethod)
}

// Schedule selects the message-update order.
type Schedule int

const (
	// Parallel updates all bit→check then all check→bit messages per round.
	Parallel Schedule = iota
	// Serial updates bit by bit in the configured order.
	Serial
)

// String returns the canonical name of s.
func (s Schedule) String() string {
	switch s {
	case Parallel:
		return "parallel"
	case Serial:
		return "serial"
	default:
		return fmt.Sprintf("Schedule(%d)", int(s))
	}
}

func (s Schedule) valid() bool { return s == Parallel || s == Serial }

// ParseSchedule maps "parallel" or "serial" (any case) onto a Schedule.
func ParseSchedule(s string) (Schedule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "parallel":
		return Parallel, nil
	case "serial":
		return Serial, nil
	}

	return 0, bpErrorf("ParseSchedule", "%q: %w", s, ErrInvalidSchedule)
}

// State is the decoder lifecycle position.
//
//	Idle → Initializing → Iterating → Converged | MaxIterExceeded
//
// Each Decode call restarts from Initializing.
type State int

const (
	Idle State = iota
	Initializing
	Iterating
	Converged
	MaxIterExceeded
)

// String returns a lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Initializing:
		return "initializing"
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	case MaxIterExceeded:
		return "max_iter_exceeded"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result is the outcome of one Decode call.
type Result struct {
	// Decoding is the hard decision after the last executed iteration.
	// The slice is owned by the caller.
	Decoding []uint8
	// Converged reports H·Decoding == syndrome.
	Converged bool
	// Iterations is the 1-based index of the last executed iteration.
	Iterations int
}
