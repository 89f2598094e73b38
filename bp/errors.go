// SPDX-License-Identifier: MIT
// Package bp: sentinel error set.
//
// Two category sentinels sit at the root of the taxonomy:
//
//	ErrInvalidConfig:     anything wrong with the decoder setup; raised by
//	                       NewDecoder*, functional options and Set* methods.
//	ErrDimensionMismatch: a per-call input of the wrong length.
//
// Every specific sentinel wraps its category, so callers may branch either on
// the precise condition or on the category:
//
//	errors.Is(err, bp.ErrInvalidScheduleOrder) // precise
//	errors.Is(err, bp.ErrInvalidConfig)        // any configuration problem
//
// Non-convergence is never an error; see Result.Converged.

package bp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is the category of all configuration errors.
	ErrInvalidConfig = errors.New("bp: invalid configuration")

	// ErrDimensionMismatch is the category of per-call length errors.
	ErrDimensionMismatch = errors.New("bp: dimension mismatch")
)

var (
	// ErrNilMatrix indicates a nil parity-check matrix or Tanner graph.
	ErrNilMatrix = fmt.Errorf("%w: parity-check matrix is nil", ErrInvalidConfig)

	// ErrInvalidMatrix wraps a malformed dense or sparse matrix input.
	ErrInvalidMatrix = fmt.Errorf("%w: malformed parity-check matrix", ErrInvalidConfig)

	// ErrInvalidMethod indicates an unknown update rule.
	ErrInvalidMethod = fmt.Errorf("%w: unknown bp method", ErrInvalidConfig)

	// ErrInvalidSchedule indicates an unknown schedule.
	ErrInvalidSchedule = fmt.Errorf("%w: unknown schedule", ErrInvalidConfig)

	// ErrInvalidMaxIter indicates max_iter <= 0.
	ErrInvalidMaxIter = fmt.Errorf("%w: max_iter must be > 0", ErrInvalidConfig)

	// ErrInvalidWorkers indicates worker_count < 1.
	ErrInvalidWorkers = fmt.Errorf("%w: worker_count must be >= 1", ErrInvalidConfig)

	// ErrInvalidScaling indicates a negative or non-finite min-sum scaling factor.
	ErrInvalidScaling = fmt.Errorf("%w: ms_scaling_factor must be finite and >= 0", ErrInvalidConfig)

	// ErrInvalidProbability indicates an error probability outside [0,1] or NaN.
	ErrInvalidProbability = fmt.Errorf("%w: error probability out of [0,1]", ErrInvalidConfig)

	// ErrChannelLength indicates an error channel whose length differs from the bit count.
	ErrChannelLength = fmt.Errorf("%w: error channel length != bit count", ErrInvalidConfig)

	// ErrMissingChannel indicates that neither an error rate nor a channel was supplied.
	ErrMissingChannel = fmt.Errorf("%w: error rate or error channel is required", ErrInvalidConfig)

	// ErrInvalidScheduleOrder indicates a serial order that is not a
	// permutation of [0, bit count).
	ErrInvalidScheduleOrder = fmt.Errorf("%w: serial schedule order is not a permutation", ErrInvalidConfig)
)

var (
	// ErrSyndromeLength indicates len(syndrome) != check count.
	ErrSyndromeLength = fmt.Errorf("%w: syndrome length != check count", ErrDimensionMismatch)

	// ErrInvalidSyndrome indicates a syndrome entry other than 0 or 1.
	ErrInvalidSyndrome = errors.New("bp: syndrome entries must be 0 or 1")
)

// bpErrorf tags a sentinel with the method that raised it.
// Usage: bpErrorf("SetMaxIter", "n=%d: %w", n, ErrInvalidMaxIter).
func bpErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{method}, args...)...)
}
