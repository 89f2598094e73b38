// SPDX-License-Identifier: MIT
// Package bp: YAML configuration.
//
// A Config mirrors the functional options one to one:
//
//	bp_method: min_sum            # sum_product | product_sum | ps | min_sum | minimum_sum | ms
//	max_iter: 50                  # 0 or absent: bit count
//	ms_scaling_factor: 0.625      # 0: adaptive 1 - 2^-iteration
//	schedule: serial              # parallel | serial
//	serial_schedule_order: [2, 1, 0]
//	random_serial_schedule: false
//	random_seed: 42
//	worker_count: 4
//	error_rate: 0.05              # or error_channel: [0.1, 0.01, ...]
//
// Unknown keys are rejected.

package bp

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ldpc/sparse"
)

// Config is the file form of a decoder configuration.
type Config struct {
	Method        Method    `yaml:"bp_method"`
	MaxIter       int       `yaml:"max_iter,omitempty"`
	ScalingFactor *float64  `yaml:"ms_scaling_factor,omitempty"`
	Schedule      Schedule  `yaml:"schedule"`
	SerialOrder   []int     `yaml:"serial_schedule_order,omitempty"`
	RandomSerial  bool      `yaml:"random_serial_schedule,omitempty"`
	Seed          int64     `yaml:"random_seed,omitempty"`
	Workers       int       `yaml:"worker_count,omitempty"`
	ErrorRate     *float64  `yaml:"error_rate,omitempty"`
	ErrorChannel  []float64 `yaml:"error_channel,omitempty"`
}

// LoadConfig decodes one YAML document from r. An empty document yields the
// zero Config. Malformed input wraps ErrInvalidConfig.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("LoadConfig: %w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Options converts c into functional options. Zero MaxIter and Workers keep
// their defaults; an ErrorChannel overrides ErrorRate.
func (c Config) Options() []Option {
	opts := []Option{
		WithMethod(c.Method),
		WithSchedule(c.Schedule),
		WithRandomSerialSchedule(c.RandomSerial),
		WithSeed(c.Seed),
	}
	if c.MaxIter != 0 {
		opts = append(opts, WithMaxIter(c.MaxIter))
	}
	if c.ScalingFactor != nil {
		opts = append(opts, WithScalingFactor(*c.ScalingFactor))
	}
	if c.SerialOrder != nil {
		opts = append(opts, WithSerialScheduleOrder(c.SerialOrder))
	}
	if c.Workers != 0 {
		opts = append(opts, WithWorkers(c.Workers))
	}
	if c.ErrorRate != nil {
		opts = append(opts, WithErrorRate(*c.ErrorRate))
	}
	if c.ErrorChannel != nil {
		opts = append(opts, WithErrorChannel(c.ErrorChannel))
	}

	return opts
}

// NewDecoderFromConfig is NewDecoder(h, c.Options()..., extra...).
func NewDecoderFromConfig(h *sparse.BinaryMatrix, c Config, extra ...Option) (*Decoder, error) {
	return NewDecoder(h, append(c.Options(), extra...)...)
}

// MarshalYAML implements yaml.Marshaler for Method.
func (m Method) MarshalYAML() (interface{}, error) {
	if !m.valid() {
		return nil, bpErrorf("MarshalYAML", "%v: %w", m, ErrInvalidMethod)
	}

	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Method.
func (m *Method) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseMethod(s)
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler for Schedule.
func (s Schedule) MarshalYAML() (interface{}, error) {
	if !s.valid() {
		return nil, bpErrorf("MarshalYAML", "%v: %w", s, ErrInvalidSchedule)
	}

	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Schedule.
func (s *Schedule) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	parsed, err := ParseSchedule(str)
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}
