// SPDX-License-Identifier: MIT
// Package: idfsweep/geometry
//
// window.go — centred window rectangles, vent areas, internal mass and the
// daylighting reference point.
//
// Contract:
//   • WindowOnWall is the single kernel; ResolveWindows applies it per wall.
//   • wwr ∈ [0,1]; 0 yields a zero-size window at the wall centre, 1 the full wall.
//   • Opposite walls share one formula, so N≡S and E≡W coordinate-wise.

package geometry

import (
	"fmt"
	"math"
)

// Method names used as error prefixes.
const (
	methodBuilding       = "Building"
	methodWindowOnWall   = "WindowOnWall"
	methodResolveWindows = "ResolveWindows"
)

// DefaultOpeningWidth is the casement vent strip width [m]. Wider strips make
// the simulated zone oscillate between venting and heating.
const DefaultOpeningWidth = 0.15

// Option customizes ResolveWindows.
type Option func(*config)

type config struct {
	openingWidth float64
}

// WithOpeningWidth overrides the operable vent strip width.
// Panics if w is negative, NaN or infinite.
func WithOpeningWidth(w float64) Option {
	if w < 0 || !isFinite(w) {
		panic(fmt.Sprintf("geometry: WithOpeningWidth(%g)", w))
	}
	return func(c *config) {
		c.openingWidth = w
	}
}

func newConfig(opts ...Option) config {
	cfg := config{openingWidth: DefaultOpeningWidth}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WindowOnWall centres a window of fractional area wwr on a wallWidth×wallHeight
// wall and returns its bounds. OpeningArea and Orientation are left zero.
//
// Steps:
//  1. alpha = √wwr
//  2. window extents = alpha·wallWidth, alpha·wallHeight
//  3. offsets = (wall − window)/2 on each axis
//  4. bounds = (offset, wall − offset)
//
// Errors: ErrInvalidDimension, ErrInvalidRatio.
// Complexity: O(1).
func WindowOnWall(wallWidth, wallHeight, wwr float64) (Window, error) {
	if err := validateDimension(methodWindowOnWall, "wall width", wallWidth); err != nil {
		return Window{}, err
	}
	if err := validateDimension(methodWindowOnWall, "wall height", wallHeight); err != nil {
		return Window{}, err
	}
	if err := ValidateRatio(wwr); err != nil {
		return Window{}, err
	}

	alpha := math.Sqrt(wwr)
	uOffset := (wallWidth - alpha*wallWidth) / 2
	zOffset := (wallHeight - alpha*wallHeight) / 2

	return Window{
		U0: uOffset,
		U1: wallWidth - uOffset,
		Z0: zOffset,
		Z1: wallHeight - zOffset,
	}, nil
}

// ResolveWindows resolves one window per orientation for building b.
// Each window's OpeningArea is its vertical extent times the opening width
// (DefaultOpeningWidth unless WithOpeningWidth is given).
//
// Errors: ErrInvalidDimension, ErrInvalidRatio (wrapped with method context).
// Complexity: O(1).
func ResolveWindows(b Building, wwr float64, opts ...Option) (Facade, error) {
	var facade Facade
	if err := b.Validate(); err != nil {
		return facade, fmt.Errorf("%s: %w", methodResolveWindows, err)
	}
	cfg := newConfig(opts...)

	for _, o := range Orientations {
		u, z := b.WallSize(o)
		w, err := WindowOnWall(u, z, wwr)
		if err != nil {
			return Facade{}, fmt.Errorf("%s: %s: %w", methodResolveWindows, o, err)
		}
		w.Orientation = o
		w.OpeningArea = w.Height() * cfg.openingWidth
		facade[o] = w
	}

	return facade, nil
}

// InternalMassArea models one interior partition along each footprint axis:
// (Length + Width) · Height [m²].
func InternalMassArea(b Building) float64 {
	return (b.Length + b.Width) * b.Height
}

// DaylightPoint returns the plan centroid (Width/2, Length/2).
func DaylightPoint(b Building) Point {
	return Point{X: b.Width / 2, Y: b.Length / 2}
}

// ValidateRatio reports ErrInvalidRatio unless wwr is a finite value in [0,1].
func ValidateRatio(wwr float64) error {
	if !isFinite(wwr) || wwr < 0 || wwr > 1 {
		return geometryErrorf(methodWindowOnWall, ErrInvalidRatio, "wwr must be in [0,1], got %g", wwr)
	}
	return nil
}

// validateDimension enforces a finite, strictly positive length.
func validateDimension(method, name string, v float64) error {
	if !isFinite(v) || v <= 0 {
		return geometryErrorf(method, ErrInvalidDimension, "%s must be > 0, got %g", name, v)
	}
	return nil
}
