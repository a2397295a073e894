package idf

import (
	"github.com/katalvlaran/idfsweep/geometry"
	"github.com/katalvlaran/idfsweep/infiltration"
)

// Option customizes Render and Resolve.
type Option func(*config)

type config struct {
	geometry     []geometry.Option
	infiltration infiltration.Options
}

// WithOpeningWidth sets the casement vent strip width used for the
// windowOpeningArea_* tokens. Panics on negative or non-finite w.
func WithOpeningWidth(w float64) Option {
	opt := geometry.WithOpeningWidth(w)
	return func(c *config) {
		c.geometry = append(c.geometry, opt)
	}
}

// WithInfiltration replaces the infiltration conversion options, e.g. to
// split the coefficient across zones or enable leakage-area tokens.
func WithInfiltration(o infiltration.Options) Option {
	return func(c *config) {
		c.infiltration = o
	}
}

// WithLeakageArea switches the infiltration mode to FlowAndLeakageArea so
// the ELA_* tokens are resolved as well.
func WithLeakageArea() Option {
	return func(c *config) {
		c.infiltration.Mode = infiltration.FlowAndLeakageArea
	}
}

func newConfig(opts ...Option) config {
	cfg := config{infiltration: infiltration.DefaultOptions()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
