package geometry

import "math"

// Orientation identifies one of the four exterior walls of the building.
type Orientation int

const (
	// North wall: spans Width × Height (x–z plane).
	North Orientation = iota
	// East wall: spans Length × Height (y–z plane).
	East
	// South wall: spans Width × Height, mirror of North.
	South
	// West wall: spans Length × Height, mirror of East.
	West
)

// Orientations lists every wall in the canonical N, E, S, W order.
var Orientations = [4]Orientation{North, East, South, West}

// String returns the capitalised orientation name ("North", "East", ...).
func (o Orientation) String() string {
	switch o {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Initial returns the single-letter orientation code ("N", "E", "S", "W").
func (o Orientation) Initial() string {
	return o.String()[:1]
}

// Axis returns the horizontal coordinate axis the wall runs along:
// "x" for North/South, "y" for East/West.
func (o Orientation) Axis() string {
	if o == East || o == West {
		return "y"
	}
	return "x"
}

// Building holds the outer dimensions of a rectangular single-zone building.
//
//   - Width  — extent along x [m]; North/South wall width.
//   - Length — extent along y [m]; East/West wall width.
//   - Height — extent along z [m]; all wall heights.
type Building struct {
	Width  float64
	Length float64
	Height float64
}

// Validate reports ErrInvalidDimension if any dimension is not finite and > 0.
// Complexity: O(1).
func (b Building) Validate() error {
	if err := validateDimension(methodBuilding, "width", b.Width); err != nil {
		return err
	}
	if err := validateDimension(methodBuilding, "length", b.Length); err != nil {
		return err
	}
	return validateDimension(methodBuilding, "height", b.Height)
}

// Volume returns Width·Length·Height [m³].
func (b Building) Volume() float64 {
	return b.Width * b.Length * b.Height
}

// FootprintArea returns Width·Length [m²].
func (b Building) FootprintArea() float64 {
	return b.Width * b.Length
}

// RoofArea equals the footprint for a flat roof [m²].
func (b Building) RoofArea() float64 {
	return b.FootprintArea()
}

// WallSize returns the (horizontal, vertical) extent of the wall facing o.
func (b Building) WallSize(o Orientation) (float64, float64) {
	if o == East || o == West {
		return b.Length, b.Height
	}
	return b.Width, b.Height
}

// WallArea returns the gross area of the wall facing o [m²].
func (b Building) WallArea(o Orientation) float64 {
	u, z := b.WallSize(o)
	return u * z
}

// EnvelopeArea returns the above-grade envelope: four walls plus roof [m²].
func (b Building) EnvelopeArea() float64 {
	total := b.RoofArea()
	for _, o := range Orientations {
		total += b.WallArea(o)
	}
	return total
}

// Window is an axis-aligned glazing rectangle in wall-local coordinates.
//
//   - U0, U1 — horizontal bounds along the wall (x for N/S, y for E/W).
//   - Z0, Z1 — vertical bounds.
//   - OpeningArea — operable vent area (vertical extent × opening width).
type Window struct {
	Orientation Orientation
	U0, U1      float64
	Z0, Z1      float64
	OpeningArea float64
}

// Width returns U1−U0.
func (w Window) Width() float64 { return w.U1 - w.U0 }

// Height returns Z1−Z0.
func (w Window) Height() float64 { return w.Z1 - w.Z0 }

// Area returns the glazed area Width·Height.
func (w Window) Area() float64 { return w.Width() * w.Height() }

// Center returns the rectangle midpoint (u, z).
func (w Window) Center() (float64, float64) {
	return (w.U0 + w.U1) / 2, (w.Z0 + w.Z1) / 2
}

// Facade groups the four resolved windows, indexed by Orientation.
type Facade [4]Window

// Window returns the resolved window for o.
func (f Facade) Window(o Orientation) Window {
	return f[o]
}

// Point is a plan-view coordinate [m].
type Point struct {
	X, Y float64
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
