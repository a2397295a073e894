// SPDX-License-Identifier: MIT
// Package: idfsweep/sampling
//
// options.go — functional options and resolved configuration.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Strategies themselves never panic.
//   • Determinism is explicit: WithSeed or WithRand; without either the
//     default seed is used, so unseeded calls are reproducible too.
//   • Later options override earlier ones.

package sampling

import (
	"fmt"
	"math/rand"
)

// LHSType selects how a point is placed inside its Latin-hypercube stratum.
type LHSType string

const (
	// LHSClassic draws a uniform point inside each stratum.
	LHSClassic LHSType = "classic"
	// LHSCentered places each point at its stratum midpoint.
	LHSCentered LHSType = "centered"
)

// Valid reports whether t is a known LHS type.
func (t LHSType) Valid() bool {
	return t == LHSClassic || t == LHSCentered
}

// Criterion selects the optimality criterion used to pick the best of
// several candidate Latin-hypercube designs.
type Criterion string

const (
	// CriterionMaximin maximizes the minimum pairwise distance.
	CriterionMaximin Criterion = "maximin"
	// CriterionCorrelation minimizes the largest absolute pairwise column correlation.
	CriterionCorrelation Criterion = "correlation"
	// CriterionRatio minimizes the max/min pairwise distance ratio.
	CriterionRatio Criterion = "ratio"
	// CriterionNone keeps the first candidate.
	CriterionNone Criterion = "none"
)

// Valid reports whether c is a known criterion.
func (c Criterion) Valid() bool {
	switch c {
	case CriterionMaximin, CriterionCorrelation, CriterionRatio, CriterionNone:
		return true
	}
	return false
}

// Defaults.
const (
	DefaultLHSType    = LHSClassic
	DefaultCriterion  = CriterionMaximin
	DefaultIterations = 1000
)

// Option customizes a sampling call by mutating config before generation.
type Option func(*config)

// config aggregates every knob; passed by value into strategies.
type config struct {
	rng        *rand.Rand
	lhsType    LHSType
	criterion  Criterion
	iterations int
	maxRows    int // 0 = no ceiling
}

// WithSeed seeds a fresh *rand.Rand (seed 0 maps to the default seed).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampling: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithLHSType selects the stratum placement of LatinHypercube.
// Panics on an unknown type.
func WithLHSType(t LHSType) Option {
	if !t.Valid() {
		panic(fmt.Sprintf("sampling: WithLHSType(%q)", t))
	}
	return func(c *config) {
		c.lhsType = t
	}
}

// WithCriterion selects the LatinHypercube optimality criterion.
// Panics on an unknown criterion.
func WithCriterion(cr Criterion) Option {
	if !cr.Valid() {
		panic(fmt.Sprintf("sampling: WithCriterion(%q)", cr))
	}
	return func(c *config) {
		c.criterion = cr
	}
}

// WithIterations sets how many candidate designs LatinHypercube scores.
// Panics if n < 1.
func WithIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("sampling: WithIterations(%d)", n))
	}
	return func(c *config) {
		c.iterations = n
	}
}

// WithMaxRows makes FullFactorial fail with ErrTooManyRows before
// generating more than limit rows. 0 disables the ceiling. Panics if limit < 0.
func WithMaxRows(limit int) Option {
	if limit < 0 {
		panic(fmt.Sprintf("sampling: WithMaxRows(%d)", limit))
	}
	return func(c *config) {
		c.maxRows = limit
	}
}

// newConfig applies opts over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		lhsType:    DefaultLHSType,
		criterion:  DefaultCriterion,
		iterations: DefaultIterations,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	return cfg
}
