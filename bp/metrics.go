// SPDX-License-Identifier: MIT
// Package bp: Prometheus instrumentation.

package bp

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts decodes and records their iteration counts. One Metrics
// may be shared by many decoders; it is safe for concurrent use.
type Metrics struct {
	decodes    *prometheus.CounterVec
	iterations *prometheus.HistogramVec
}

// NewMetrics creates the bp collectors and registers them with reg. A nil reg
// leaves them unregistered, which is handy for tests and custom exporters.
//
// Exposed series:
//
//	ldpc_bp_decodes_total{method,schedule,converged}
//	ldpc_bp_iterations{method,schedule}
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		decodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ldpc",
				Subsystem: "bp",
				Name:      "decodes_total",
				Help:      "Number of Decode calls by rule, schedule and outcome",
			},
			[]string{"method", "schedule", "converged"},
		),
		iterations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ldpc",
				Subsystem: "bp",
				Name:      "iterations",
				Help:      "Iterations executed per Decode call",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"method", "schedule"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.decodes, m.iterations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// observe is a no-op on a nil receiver.
func (m *Metrics) observe(method Method, schedule Schedule, iterations int, converged bool) {
	if m == nil {
		return
	}
	m.decodes.WithLabelValues(method.String(), schedule.String(), strconv.FormatBool(converged)).Inc()
	m.iterations.WithLabelValues(method.String(), schedule.String()).Observe(float64(iterations))
}
