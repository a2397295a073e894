package infiltration

import (
	"fmt"
	"math"

	"github.com/katalvlaran/idfsweep/geometry"
)

// ACHToFlowCoefficient converts a 50 Pa air-change rate into the per-zone
// power-law flow coefficient.
//
//	Q50 = ach50 · volume / 3600
//	c   = Q50 / 50^n / zones
//
// A nil opts uses DefaultOptions. The result is linear in volume and scales
// as 1/zones.
//
// Errors: ErrBadInput (ach50 < 0 or non-finite), ErrBadVolume, ErrBadOptions.
// Complexity: O(1).
func ACHToFlowCoefficient(ach50, volume float64, opts *Options) (float64, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, err
	}
	if !finite(ach50) || ach50 < 0 {
		return 0, fmt.Errorf("ACHToFlowCoefficient: ach50=%g: %w", ach50, ErrBadInput)
	}
	if !finite(volume) || volume <= 0 {
		return 0, fmt.Errorf("ACHToFlowCoefficient: volume=%g: %w", volume, ErrBadVolume)
	}

	q50 := ach50 * volume / secondsPerHour
	c := q50 / math.Pow(TestPressure, o.Exponent)

	return c / float64(o.Zones), nil
}

// FlowCoefficientToLeakageArea converts a flow coefficient into effective
// leakage areas at 10 Pa and apportions them over the envelope of b by area
// share.
//
// Errors: ErrBadInput, geometry.ErrInvalidDimension, ErrBadOptions.
// Complexity: O(1).
func FlowCoefficientToLeakageArea(c float64, b geometry.Building, opts *Options) (LeakageAreas, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return LeakageAreas{}, err
	}
	if !finite(c) || c < 0 {
		return LeakageAreas{}, fmt.Errorf("FlowCoefficientToLeakageArea: c=%g: %w", c, ErrBadInput)
	}
	if err = b.Validate(); err != nil {
		return LeakageAreas{}, fmt.Errorf("FlowCoefficientToLeakageArea: %w", err)
	}

	ela := c / o.DischargeCoefficient * math.Sqrt(o.AirDensity/2) * math.Pow(LeakagePressure, o.Exponent-0.5)
	total := b.EnvelopeArea()
	share := func(area float64) float64 { return area / total * ela }

	return LeakageAreas{
		North: share(b.WallArea(geometry.North)),
		South: share(b.WallArea(geometry.South)),
		East:  share(b.WallArea(geometry.East)),
		West:  share(b.WallArea(geometry.West)),
		Roof:  share(b.RoofArea()),
	}, nil
}

// Convert runs the conversions enabled by opts.Mode for building b: the zone
// flow coefficient always, leakage areas only in FlowAndLeakageArea mode.
// The leakage areas are derived from the zone coefficient.
func Convert(ach50 float64, b geometry.Building, opts *Options) (Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = b.Validate(); err != nil {
		return Result{}, fmt.Errorf("Convert: %w", err)
	}

	c, err := ACHToFlowCoefficient(ach50, b.Volume(), &o)
	if err != nil {
		return Result{}, err
	}
	res := Result{FlowCoefficient: c}

	switch o.Mode {
	case FlowCoefficientOnly:
	case FlowAndLeakageArea:
		areas, err := FlowCoefficientToLeakageArea(c, b, &o)
		if err != nil {
			return Result{}, err
		}
		res.LeakageAreas = &areas
	default:
		return Result{}, fmt.Errorf("Convert: mode %d: %w", o.Mode, ErrBadOptions)
	}

	return res, nil
}

// resolveOptions returns a validated copy of opts (DefaultOptions when nil).
func resolveOptions(opts *Options) (Options, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	o := *opts
	switch {
	case o.Zones < 1:
		return o, fmt.Errorf("zones=%d: %w", o.Zones, ErrBadOptions)
	case !finite(o.Exponent) || o.Exponent <= 0:
		return o, fmt.Errorf("exponent=%g: %w", o.Exponent, ErrBadOptions)
	case !finite(o.AirDensity) || o.AirDensity <= 0:
		return o, fmt.Errorf("air density=%g: %w", o.AirDensity, ErrBadOptions)
	case !finite(o.DischargeCoefficient) || o.DischargeCoefficient <= 0:
		return o, fmt.Errorf("discharge coefficient=%g: %w", o.DischargeCoefficient, ErrBadOptions)
	}
	return o, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
