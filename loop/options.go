// SPDX-License-Identifier: MIT
// Package: diskloop/loop
//
// options.go - functional options for Cycle.
//
// Contract:
//   - Options are functional (type Option func(*config)), applied in order,
//     last wins.
//   - Option constructors validate and panic on meaningless inputs (nil
//     sources or loggers). Engine operations themselves never panic.
//   - Determinism is explicit: WithSeed or WithRand/WithSource. Without them a
//     clock-seeded generator is used.

package loop

import (
	"log/slog"
	"math/rand"
)

// config aggregates the knobs of a Cycle.
type config struct {
	// src drives point draws, shuffles and target picks.
	src Source
	// logger receives Debug records for seeds, pulls and covers.
	logger *slog.Logger
	// checks validates the loop after every transition.
	checks bool
}

// Option customizes a Cycle.
type Option func(*config)

// newConfig resolves defaults and applies opts in order.
func newConfig(opts ...Option) config {
	cfg := config{
		src:    nil,
		logger: slog.New(slog.DiscardHandler),
		checks: false,
	}

	return cfg.with(opts...)
}

// with returns a copy of cfg with opts applied. A nil source resolves to a
// clock-seeded one.
func (cfg config) with(opts ...Option) config {
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = newClockSource()
	}

	return cfg
}

// WithSource sets the random Source. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("loop: WithSource(nil)")
	}
	return func(c *config) { c.src = src }
}

// WithRand sets an explicit *rand.Rand as the Source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("loop: WithRand(nil)")
	}
	return func(c *config) { c.src = r }
}

// WithSeed uses a new *rand.Rand seeded with seed. Use it in tests and
// examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) { c.src = rand.New(rand.NewSource(seed)) }
}

// WithLogger routes Debug records to logger. Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("loop: WithLogger(nil)")
	}
	return func(c *config) { c.logger = logger }
}

// WithInvariantChecks validates the loop after every pull. A violation fails
// the pull with ErrBrokenLoop and leaves the previous loop in place.
func WithInvariantChecks() Option {
	return func(c *config) { c.checks = true }
}
